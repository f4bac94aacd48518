package services

import (
	"sync"

	"backend/entity"
	"backend/repository"
)

// TabSnapshot = ชุดผลลัพธ์ทั้งก้อนของ live query หนึ่งรอบ
// Seq เพิ่มขึ้นเรื่อย ๆ ต่อโต๊ะ ฝั่ง client ใช้ตรวจ snapshot เก่าที่หลงมา
type TabSnapshot struct {
	Seq  uint64       `json:"seq"`
	Tabs []entity.Tab `json:"tabs"`
}

// TabFeed คือศูนย์กลาง subscription ของ open tabs รายโต๊ะ
// พฤติกรรมเดียวกับ live query ฝั่ง store: ข้อมูลของโต๊ะเปลี่ยนเมื่อไหร่
// จะ query ชุดปัจจุบันใหม่ทั้งก้อน แล้วส่งให้ทุก subscriber ของโต๊ะนั้น
// ไม่ส่ง diff — snapshot คือความจริงทั้งหมด ณ ตอนนั้น
type TabFeed struct {
	repo *repository.TabRepository

	mu     sync.Mutex
	tables map[string]*tableFeed
}

// สถานะรายโต๊ะ: lock ของโต๊ะคุมทั้ง requery + fanout
// ทำให้ลำดับ snapshot ต่อโต๊ะเป็น monotonic เสมอ
type tableFeed struct {
	mu   sync.Mutex
	seq  uint64
	subs map[*tabSub]struct{}
}

type tabSub struct {
	mu         sync.Mutex
	closed     bool
	onSnapshot func(TabSnapshot)
	onError    func(error)
}

func NewTabFeed(repo *repository.TabRepository) *TabFeed {
	return &TabFeed{
		repo:   repo,
		tables: make(map[string]*tableFeed),
	}
}

func (f *TabFeed) table(tableID string) *tableFeed {
	f.mu.Lock()
	defer f.mu.Unlock()
	tf, ok := f.tables[tableID]
	if !ok {
		tf = &tableFeed{subs: make(map[*tabSub]struct{})}
		f.tables[tableID] = tf
	}
	return tf
}

// Subscribe เปิด live query ของโต๊ะหนึ่ง แล้วส่ง snapshot แรกทันที
//   - tableID ว่าง = ไม่ subscribe คืน unsubscribe เปล่า (ไม่ใช่ error)
//   - query พัง = ส่งเข้า onError ช่องเดียวเท่านั้น ถือว่า subscription ตาย
//     ต้อง Subscribe ใหม่เอง
//   - unsubscribe เรียกซ้ำได้ และหลัง return จะไม่มี callback ยิงเข้ามาอีก
func (f *TabFeed) Subscribe(tableID string, onSnapshot func(TabSnapshot), onError func(error)) (unsubscribe func()) {
	if tableID == "" {
		return func() {}
	}
	if onSnapshot == nil {
		onSnapshot = func(TabSnapshot) {}
	}
	if onError == nil {
		onError = func(error) {}
	}

	sub := &tabSub{onSnapshot: onSnapshot, onError: onError}
	tf := f.table(tableID)

	tf.mu.Lock()
	tabs, err := f.repo.ListOpenByTable(tableID)
	if err != nil {
		tf.mu.Unlock()
		sub.fail(err)
		return func() {}
	}
	tf.subs[sub] = struct{}{}
	tf.seq++
	sub.deliver(TabSnapshot{Seq: tf.seq, Tabs: tabs})
	tf.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			// รอ fanout ที่กำลังวิ่งอยู่ให้จบก่อน (ติด lock โต๊ะ)
			// พอถอดออกจาก subs แล้วจะไม่มีรอบใหม่แน่นอน
			tf.mu.Lock()
			delete(tf.subs, sub)
			tf.mu.Unlock()

			sub.mu.Lock()
			sub.closed = true
			sub.mu.Unlock()
		})
	}
}

// Notify แจ้งว่าข้อมูล tab ของโต๊ะนี้เปลี่ยน (service เรียกหลัง commit เท่านั้น)
func (f *TabFeed) Notify(tableID string) {
	if tableID == "" {
		return
	}

	f.mu.Lock()
	tf := f.tables[tableID]
	f.mu.Unlock()
	if tf == nil {
		return
	}

	tf.mu.Lock()
	defer tf.mu.Unlock()
	if len(tf.subs) == 0 {
		return
	}

	tabs, err := f.repo.ListOpenByTable(tableID)
	if err != nil {
		// query พัง: แจ้งทุก subscriber ทาง onError แล้วตัดทิ้งทั้งหมด
		// ใคร retry ต้อง Subscribe ใหม่
		for sub := range tf.subs {
			delete(tf.subs, sub)
			sub.fail(err)
		}
		return
	}

	tf.seq++
	snap := TabSnapshot{Seq: tf.seq, Tabs: tabs}
	for sub := range tf.subs {
		sub.deliver(snap)
	}
}

func (s *tabSub) deliver(snap TabSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onSnapshot(snap)
}

func (s *tabSub) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.onError(err)
}
