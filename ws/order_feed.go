// Package ws streams live collections to dashboard clients. Each connection
// owns a livequery watcher; the socket closes when the client navigates away,
// which tears the watcher down and releases its notifier channel.
package ws

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
)

const refetchDebounce = 150 * time.Millisecond

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Feed struct {
	Notifier  *livequery.Notifier
	OrderRepo *repository.OrderRepository
	RegRepo   *repository.RegistrationRepository
	RestRepo  *repository.RestaurantRepository
}

func NewFeed(n *livequery.Notifier, orderRepo *repository.OrderRepository, regRepo *repository.RegistrationRepository, restRepo *repository.RestaurantRepository) *Feed {
	return &Feed{Notifier: n, OrderRepo: orderRepo, RegRepo: regRepo, RestRepo: restRepo}
}

type ordersMessage struct {
	Type   string         `json:"type"`
	Orders []entity.Order `json:"orders"`
}

type alertMessage struct {
	Type        string `json:"type"`
	NewOrderIDs []uint `json:"newOrderIds"`
}

// HandleOrders is the operator dashboard socket: full order snapshot on
// connect, a fresh snapshot after every change, and a separate alert message
// only when previously unseen pending orders appear.
func (f *Feed) HandleOrders(c *gin.Context) {
	restID := utils.CurrentRestaurantID(c)
	if restID == 0 {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	watcher, err := livequery.Watch(ctx, f.Notifier, livequery.OrdersTopic(restID), refetchDebounce,
		func(ctx context.Context) ([]entity.Order, error) {
			return f.OrderRepo.ListForRestaurant(restID, "")
		})
	if err != nil {
		log.Printf("ws initial fetch error: %v", err)
		return
	}
	defer watcher.Close()

	// reads only detect the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	tracker := livequery.NewPendingTracker()
	for snapshot := range watcher.Updates() {
		if err := conn.WriteJSON(ordersMessage{Type: "orders", Orders: snapshot}); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}

		var pending []uint
		for _, o := range snapshot {
			if o.Status == entity.OrderPending {
				pending = append(pending, o.ID)
			}
		}
		if fresh := tracker.Observe(pending); len(fresh) > 0 {
			if err := conn.WriteJSON(alertMessage{Type: "new_orders", NewOrderIDs: fresh}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}
}

type requestsMessage struct {
	Type     string                       `json:"type"`
	Requests []entity.RegistrationRequest `json:"requests"`
}

// HandleRequests streams the pending registration queue to admin dashboards.
func (f *Feed) HandleRequests(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	watcher, err := livequery.Watch(ctx, f.Notifier, livequery.RequestsTopic(), refetchDebounce,
		func(ctx context.Context) ([]entity.RegistrationRequest, error) {
			return f.RegRepo.FindByStatus(entity.RequestPending)
		})
	if err != nil {
		log.Printf("ws initial fetch error: %v", err)
		return
	}
	defer watcher.Close()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for snapshot := range watcher.Updates() {
		if err := conn.WriteJSON(requestsMessage{Type: "requests", Requests: snapshot}); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}

type restaurantsMessage struct {
	Type        string              `json:"type"`
	Restaurants []entity.Restaurant `json:"restaurants"`
}

// HandleRestaurants streams the tenant list to admin dashboards, so
// block/unblock and approvals show up without a reload.
func (f *Feed) HandleRestaurants(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	watcher, err := livequery.Watch(ctx, f.Notifier, livequery.RestaurantsTopic(), refetchDebounce,
		func(ctx context.Context) ([]entity.Restaurant, error) {
			return f.RestRepo.FindAll()
		})
	if err != nil {
		log.Printf("ws initial fetch error: %v", err)
		return
	}
	defer watcher.Close()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for snapshot := range watcher.Updates() {
		if err := conn.WriteJSON(restaurantsMessage{Type: "restaurants", Restaurants: snapshot}); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}
