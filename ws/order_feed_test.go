package ws

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type feedFixture struct {
	DB        *gorm.DB
	Notifier  *livequery.Notifier
	OrderRepo *repository.OrderRepository
	Server    *httptest.Server
	RestID    uint
}

func newFeedFixture(t *testing.T) *feedFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.RegistrationRequest{}, &entity.Restaurant{},
		&entity.Order{}, &entity.OrderItem{},
	))

	rest := &entity.Restaurant{Name: "Spice Garden", Slug: "spice-garden", Email: "x@example.in", Status: entity.RestaurantActive}
	require.NoError(t, db.Create(rest).Error)

	f := &feedFixture{
		DB:        db,
		Notifier:  livequery.NewNotifier(),
		OrderRepo: repository.NewOrderRepository(db),
		RestID:    rest.ID,
	}
	feed := NewFeed(f.Notifier, f.OrderRepo, repository.NewRegistrationRepository(db), repository.NewRestaurantRepository(db))

	r := gin.New()
	// stand-in for the auth middleware
	r.GET("/ws/orders", func(c *gin.Context) {
		c.Set("restaurantId", f.RestID)
		c.Next()
	}, feed.HandleOrders)
	r.GET("/ws/requests", feed.HandleRequests)
	r.GET("/ws/restaurants", feed.HandleRestaurants)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *feedFixture) dial(t *testing.T, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.Server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func (f *feedFixture) placeOrder(t *testing.T, status string) *entity.Order {
	t.Helper()
	o := &entity.Order{
		RestaurantID: f.RestID,
		OrderNumber:  "ORD" + uuid.NewString()[:9],
		PublicToken:  uuid.NewString(),
		OrderType:    entity.OrderTypeTakeaway,
		CustomerName: "Asha",
		Status:       status,
		Total:        100,
	}
	require.NoError(t, f.OrderRepo.Create(o))
	f.Notifier.Notify(livequery.OrdersTopic(f.RestID))
	return o
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	var msg map[string]any
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestOrdersFeed(t *testing.T) {
	f := newFeedFixture(t)
	f.placeOrder(t, entity.OrderPending)

	conn := f.dial(t, "/ws/orders")

	// connect delivers the current snapshot, and pre-existing pending orders
	// never trigger an alert
	msg := readMessage(t, conn)
	assert.Equal(t, "orders", msg["type"])
	require.Len(t, msg["orders"], 1)

	fresh := f.placeOrder(t, entity.OrderPending)

	var sawSnapshot, sawAlert bool
	for !sawSnapshot || !sawAlert {
		msg = readMessage(t, conn)
		switch msg["type"] {
		case "orders":
			if len(msg["orders"].([]any)) == 2 {
				sawSnapshot = true
			}
		case "new_orders":
			ids := msg["newOrderIds"].([]any)
			require.Len(t, ids, 1)
			assert.Equal(t, float64(fresh.ID), ids[0])
			sawAlert = true
		}
	}
}

func TestOrdersFeedNoAlertOnStatusChange(t *testing.T) {
	f := newFeedFixture(t)
	order := f.placeOrder(t, entity.OrderPending)

	conn := f.dial(t, "/ws/orders")
	readMessage(t, conn)

	// accepting the order shrinks the pending set; a snapshot follows but no
	// alert does
	ok, err := f.OrderRepo.TransitionStatus(order.ID, entity.OrderPending, entity.OrderAccepted, nil)
	require.NoError(t, err)
	require.True(t, ok)
	f.Notifier.Notify(livequery.OrdersTopic(f.RestID))

	msg := readMessage(t, conn)
	assert.Equal(t, "orders", msg["type"])

	conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var stray map[string]any
	err = conn.ReadJSON(&stray)
	require.Error(t, err, "no further message expected, got %v", stray)
}

func TestRequestsFeed(t *testing.T) {
	f := newFeedFixture(t)
	regRepo := repository.NewRegistrationRepository(f.DB)

	conn := f.dial(t, "/ws/requests")

	msg := readMessage(t, conn)
	assert.Equal(t, "requests", msg["type"])
	assert.Empty(t, msg["requests"])

	require.NoError(t, regRepo.Create(&entity.RegistrationRequest{
		RestaurantName: "Spice Garden",
		OwnerName:      "Ravi",
		Phone:          "9876543210",
		Status:         entity.RequestPending,
	}))
	f.Notifier.Notify(livequery.RequestsTopic())

	msg = readMessage(t, conn)
	assert.Equal(t, "requests", msg["type"])
	require.Len(t, msg["requests"], 1)
}

func TestRestaurantsFeed(t *testing.T) {
	f := newFeedFixture(t)
	restRepo := repository.NewRestaurantRepository(f.DB)

	conn := f.dial(t, "/ws/restaurants")

	msg := readMessage(t, conn)
	assert.Equal(t, "restaurants", msg["type"])
	require.Len(t, msg["restaurants"], 1)

	// blocking shows up without a reload
	require.NoError(t, restRepo.Block(f.RestID, "payment overdue"))
	f.Notifier.Notify(livequery.RestaurantsTopic())

	msg = readMessage(t, conn)
	rests := msg["restaurants"].([]any)
	require.Len(t, rests, 1)
	assert.Equal(t, entity.RestaurantBlocked, rests[0].(map[string]any)["status"])
}
