package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/pkg/billing"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type serviceFixture struct {
	db   *gorm.DB
	svc  *TabService
	feed *TabFeed
	rest entity.Restaurant
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewTabRepository(db)
	feed := NewTabFeed(repo)
	svc := NewTabService(db, repo, feed)

	rest := entity.Restaurant{Name: "Demo Cafe"}
	require.NoError(t, db.Create(&rest).Error)

	return &serviceFixture{db: db, svc: svc, feed: feed, rest: rest}
}

func TestCreateTab(t *testing.T) {
	f := newServiceFixture(t)

	tab, err := f.svc.CreateTab(f.rest.ID, "5", "  Alice  ")
	require.NoError(t, err)
	assert.NotEmpty(t, tab.ID)
	assert.Equal(t, "5", tab.TableID)
	assert.Equal(t, "Alice", tab.CustomerName)
	assert.Equal(t, entity.TabOpen, tab.Status)
	assert.Equal(t, "1", tab.ReferenceNumber)
	assert.Nil(t, tab.ClosedAt)

	// เลขอ้างอิงวิ่งต่อภายในวันเดียวกัน
	tab2, err := f.svc.CreateTab(f.rest.ID, "5", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "2", tab2.ReferenceNumber)

	t.Run("rejects blank input", func(t *testing.T) {
		_, err := f.svc.CreateTab(f.rest.ID, "", "Alice")
		assert.Error(t, err)
		_, err = f.svc.CreateTab(f.rest.ID, "5", "   ")
		assert.Error(t, err)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		_, err := f.svc.CreateTab(999, "5", "Alice")
		assert.Error(t, err)
	})
}

func TestCreateTabResetsReferenceDaily(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.CreateTab(f.rest.ID, "5", "Alice")
	require.NoError(t, err)
	_, err = f.svc.CreateTab(f.rest.ID, "5", "Bob")
	require.NoError(t, err)

	// ย้อน lastTabReset ไปเมื่อวาน = วันใหม่ต้องเริ่มนับ 1
	yesterday := time.Now().Add(-24 * time.Hour)
	require.NoError(t, f.db.Model(&entity.Restaurant{}).
		Where("id = ?", f.rest.ID).
		Update("last_tab_reset", yesterday).Error)

	tab, err := f.svc.CreateTab(f.rest.ID, "5", "Carol")
	require.NoError(t, err)
	assert.Equal(t, "1", tab.ReferenceNumber)
}

func TestAddOrder(t *testing.T) {
	f := newServiceFixture(t)
	tab, err := f.svc.CreateTab(f.rest.ID, "5", "Alice")
	require.NoError(t, err)

	order, err := f.svc.AddOrder(tab.ID, []entity.OrderItem{
		{Name: "Cola", Price: 250, Quantity: 2},
		{Name: "Fries", Price: 300}, // ไม่ส่ง quantity = 1
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	open, err := f.svc.ListOpenByTable("5")
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Len(t, open[0].Orders, 1)
	assert.Len(t, open[0].Orders[0].Items, 2)

	total, err := billing.TabTotal(open[0])
	require.NoError(t, err)
	assert.Equal(t, int64(800), total)

	t.Run("unknown tab", func(t *testing.T) {
		_, err := f.svc.AddOrder("missing", []entity.OrderItem{{Name: "Cola", Price: 100}})
		assert.ErrorIs(t, err, ErrTabNotFound)
	})

	t.Run("closed tab rejects orders", func(t *testing.T) {
		require.NoError(t, f.svc.CloseTab(tab.ID))
		_, err := f.svc.AddOrder(tab.ID, []entity.OrderItem{{Name: "Cola", Price: 100}})
		assert.ErrorIs(t, err, ErrTabClosed)
	})
}

func TestAddOrderValidatesBeforeWrite(t *testing.T) {
	f := newServiceFixture(t)
	tab, err := f.svc.CreateTab(f.rest.ID, "5", "Alice")
	require.NoError(t, err)

	_, err = f.svc.AddOrder(tab.ID, []entity.OrderItem{{Name: "Fries", Price: -1, Quantity: 1}})
	require.ErrorIs(t, err, billing.ErrNegativePrice)

	// ห้ามมีอะไรหลุดลง store
	var count int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCloseTab(t *testing.T) {
	f := newServiceFixture(t)
	tab, err := f.svc.CreateTab(f.rest.ID, "5", "Alice")
	require.NoError(t, err)

	require.NoError(t, f.svc.CloseTab(tab.ID))

	var got entity.Tab
	require.NoError(t, f.db.First(&got, "id = ?", tab.ID).Error)
	assert.Equal(t, entity.TabClosed, got.Status)
	require.NotNil(t, got.ClosedAt)

	// ปิดแล้วหายจาก open set แต่ไม่หายจากประวัติ
	open, err := f.svc.ListOpenByTable("5")
	require.NoError(t, err)
	assert.Empty(t, open)

	t.Run("closing twice", func(t *testing.T) {
		assert.ErrorIs(t, f.svc.CloseTab(tab.ID), ErrTabClosed)
	})

	t.Run("unknown tab", func(t *testing.T) {
		assert.ErrorIs(t, f.svc.CloseTab("missing"), ErrTabNotFound)
	})
}

// ไล่ loop เต็ม: mutation → snapshot → projection (แบบที่จอ waiter เห็นจริง)
func TestLifecycleThroughFeed(t *testing.T) {
	f := newServiceFixture(t)

	proj := NewTabProjection()
	var snapshots int
	unsubscribe := f.feed.Subscribe("5",
		func(snap TabSnapshot) {
			snapshots++
			proj.Apply(snap.Tabs)
		},
		func(err error) { t.Errorf("unexpected feed error: %v", err) },
	)
	defer unsubscribe()

	require.Equal(t, 1, snapshots)
	assert.Empty(t, proj.List())

	tab, err := f.svc.CreateTab(f.rest.ID, "5", "Alice")
	require.NoError(t, err)
	require.Equal(t, 2, snapshots)
	require.Len(t, proj.List(), 1)

	_, err = f.svc.AddOrder(tab.ID, []entity.OrderItem{{Name: "Cola", Price: 250, Quantity: 2}})
	require.NoError(t, err)
	require.Equal(t, 3, snapshots)

	got, ok := proj.Get(tab.ID)
	require.True(t, ok)
	total, err := billing.TabTotal(got)
	require.NoError(t, err)
	assert.Equal(t, int64(500), total)

	// ปิดไม่สำเร็จ = projection ต้องไม่ขยับแม้แต่นิดเดียว
	require.ErrorIs(t, f.svc.CloseTab("missing"), ErrTabNotFound)
	assert.Equal(t, 3, snapshots)
	require.Len(t, proj.List(), 1)

	// ปิดสำเร็จ = tab หายจาก projection ผ่าน snapshot รอบถัดไปเท่านั้น
	require.NoError(t, f.svc.CloseTab(tab.ID))
	require.Equal(t, 4, snapshots)
	assert.Empty(t, proj.List())
}
