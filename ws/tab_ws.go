package ws

import (
	"log"
	"net/http"
	"sync"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TabStream ส่ง snapshot ของ open tabs รายโต๊ะลง websocket
// 1 connection = 1 subscription + 1 projection เป็นของ connection นั้นเท่านั้น
type TabStream struct {
	feed *services.TabFeed
}

func NewTabStream(feed *services.TabFeed) *TabStream {
	return &TabStream{feed: feed}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/tables/:tableId/tabs
func (h *TabStream) HandleWebSocket(c *gin.Context) {
	tableID := c.Param("tableId")
	if tableID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "tableId is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	proj := services.NewTabProjection()
	var writeMu sync.Mutex

	unsubscribe := h.feed.Subscribe(tableID,
		func(snap services.TabSnapshot) {
			proj.Apply(snap.Tabs)

			views, err := services.BuildTabViews(proj.List())
			if err != nil {
				// ข้อมูลเพี้ยน: ไม่ส่งยอดผิด ๆ ออกไป คงจอเดิมไว้
				log.Printf("tab view error (table %s): %v", tableID, err)
				return
			}

			writeMu.Lock()
			werr := conn.WriteJSON(gin.H{"type": "snapshot", "seq": snap.Seq, "tabs": views})
			writeMu.Unlock()
			if werr != nil {
				log.Printf("ws write error: %v", werr)
			}
		},
		func(err error) {
			// subscription ตายแล้ว แจ้ง client ให้ reconnect เอง
			log.Printf("tab feed error (table %s): %v", tableID, err)
			writeMu.Lock()
			_ = conn.WriteJSON(gin.H{"type": "error", "error": err.Error()})
			writeMu.Unlock()
			conn.Close()
		},
	)
	defer unsubscribe()
	defer conn.Close()

	// ฝั่งนี้ push อย่างเดียว — อ่านแค่รอ client วางสาย
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
