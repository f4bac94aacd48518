package services

import (
	"sync"

	"backend/entity"
)

// TabProjection = สำเนาในหน่วยความจำของ open set จาก snapshot ล่าสุด
// Apply แทนที่ทั้งก้อนทุกครั้ง ไม่ merge กับของเก่า — พลาด snapshot ไปกี่รอบ
// ก็หายเองรอบถัดไป แลกกับการทิ้ง local edit ที่ยังไม่ถึง server
type TabProjection struct {
	mu   sync.Mutex
	ids  []string
	byID map[string]entity.Tab
}

func NewTabProjection() *TabProjection {
	return &TabProjection{byID: make(map[string]entity.Tab)}
}

func (p *TabProjection) Apply(snapshot []entity.Tab) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ids = p.ids[:0]
	p.byID = make(map[string]entity.Tab, len(snapshot))
	for _, tab := range snapshot {
		p.ids = append(p.ids, tab.ID)
		p.byID[tab.ID] = tab
	}
}

// List คืน tab ตามลำดับเดิมของ snapshot (ไม่ sort เอง)
func (p *TabProjection) List() []entity.Tab {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]entity.Tab, 0, len(p.ids))
	for _, id := range p.ids {
		out = append(out, p.byID[id])
	}
	return out
}

func (p *TabProjection) Get(tabID string) (entity.Tab, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	tab, ok := p.byID[tabID]
	return tab, ok
}

func (p *TabProjection) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ids)
}
