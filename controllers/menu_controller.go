package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /partner/menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Svc.ListByRestaurant(utils.CurrentRestaurantID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /partner/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Svc.Create(utils.CurrentRestaurantID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /partner/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Svc.Update(utils.CurrentRestaurantID(c), uint(id), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /partner/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.Svc.Delete(utils.CurrentRestaurantID(c), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

type availabilityReq struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// PATCH /partner/menu/:id/availability
func (ctl *MenuController) SetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.SetAvailability(utils.CurrentRestaurantID(c), uint(id), *req.IsAvailable); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"isAvailable": *req.IsAvailable})
}
