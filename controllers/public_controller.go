package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
	"gorm.io/gorm"
)

// PublicController serves the unauthenticated customer surface reached via
// QR code: menu, order submission, order tracking.
type PublicController struct {
	MenuSvc  *services.MenuService
	OrderSvc *services.OrderService
	RestSvc  *services.RestaurantService
}

func NewPublicController(menuSvc *services.MenuService, orderSvc *services.OrderService, restSvc *services.RestaurantService) *PublicController {
	return &PublicController{MenuSvc: menuSvc, OrderSvc: orderSvc, RestSvc: restSvc}
}

// GET /r/:slug/menu
func (ctl *PublicController) Menu(c *gin.Context) {
	rest, err := ctl.RestSvc.Repo.FindBySlug(c.Param("slug"))
	if err != nil {
		// unknown slug is a full-page not-found, never a transient banner
		resp.NotFound(c, "restaurant not found")
		return
	}
	if !rest.Orderable() {
		resp.NotFound(c, "restaurant not found")
		return
	}

	items, err := ctl.MenuSvc.ListAvailable(rest.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"restaurant": gin.H{
			"name": rest.Name,
			"slug": rest.Slug,
			"logo": rest.LogoURL,
		},
		"items": items,
	})
}

// POST /r/:slug/orders
func (ctl *PublicController) SubmitOrder(c *gin.Context) {
	var req services.SubmitOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.OrderSvc.Submit(c.Param("slug"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, services.ErrRestaurantBlocked) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /r/:slug/orders/:token serves the customer tracking page.
func (ctl *PublicController) TrackOrder(c *gin.Context) {
	order, err := ctl.OrderSvc.Track(c.Param("slug"), c.Param("token"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}

	resp.OK(c, gin.H{
		"orderNumber": order.OrderNumber,
		"status":      order.Status,
		// terminal status means the page can stop refreshing
		"final":       entity.IsTerminalStatus(order.Status),
		"orderType":   order.OrderType,
		"tableNumber": order.TableNumber,
		"items":       order.Items,
		"subtotal":    order.Subtotal,
		"tax":         order.Tax,
		"total":       order.Total,
		"createdAt":   order.CreatedAt,
		"acceptedAt":  order.AcceptedAt,
		"completedAt": order.CompletedAt,
		"cancelledAt": order.CancelledAt,
		"rejectedAt":  order.RejectedAt,
	})
}
