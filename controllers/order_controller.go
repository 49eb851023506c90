package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /partner/orders?status=pending
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Svc.ListForRestaurant(utils.CurrentRestaurantID(c), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /partner/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := ctl.Svc.Detail(utils.CurrentRestaurantID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /partner/orders/:id/accept
func (ctl *OrderController) Accept(c *gin.Context) {
	ctl.applyTransition(c, func(restID, orderID uint) error {
		return ctl.Svc.Accept(restID, orderID)
	})
}

// PATCH /partner/orders/:id/complete
func (ctl *OrderController) Complete(c *gin.Context) {
	ctl.applyTransition(c, func(restID, orderID uint) error {
		return ctl.Svc.Complete(restID, orderID)
	})
}

// PATCH /partner/orders/:id/reject
func (ctl *OrderController) Reject(c *gin.Context) {
	ctl.applyTransition(c, func(restID, orderID uint) error {
		return ctl.Svc.Reject(restID, orderID)
	})
}

type cancelReq struct {
	Reason string `json:"reason"`
}

// PATCH /partner/orders/:id/cancel
func (ctl *OrderController) Cancel(c *gin.Context) {
	var req cancelReq
	// body is optional; cancellation may carry a reason
	_ = c.ShouldBindJSON(&req)

	ctl.applyTransition(c, func(restID, orderID uint) error {
		return ctl.Svc.Cancel(restID, orderID, req.Reason)
	})
}

func (ctl *OrderController) applyTransition(c *gin.Context, fn func(restID, orderID uint) error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := fn(utils.CurrentRestaurantID(c), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}

	order, err := ctl.Svc.Detail(utils.CurrentRestaurantID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /partner/dashboard
func (ctl *OrderController) Dashboard(c *gin.Context) {
	stats, err := ctl.Svc.Stats(utils.CurrentRestaurantID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}
