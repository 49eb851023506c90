package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/entity"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
)

type AdminController struct {
	RegSvc   *services.RegistrationService
	RestSvc  *services.RestaurantService
	StatsSvc *services.StatsService
}

func NewAdminController(regSvc *services.RegistrationService, restSvc *services.RestaurantService, statsSvc *services.StatsService) *AdminController {
	return &AdminController{RegSvc: regSvc, RestSvc: restSvc, StatsSvc: statsSvc}
}

// GET /admin/requests?status=pending
func (ctl *AdminController) Requests(c *gin.Context) {
	status := c.DefaultQuery("status", entity.RequestPending)
	reqs, err := ctl.RegSvc.List(status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, reqs)
}

// PATCH /admin/requests/:id/approve
func (ctl *AdminController) ApproveRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.ApproveIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.RegSvc.Approve(uint(id), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	// credentials are shown once for manual dispatch over SMS/WhatsApp/email
	resp.OK(c, out)
}

type rejectReq struct {
	Reason        string `json:"reason" binding:"required"`
	InternalNotes string `json:"internalNotes"`
}

// PATCH /admin/requests/:id/reject
func (ctl *AdminController) RejectRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req rejectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.RegSvc.Reject(uint(id), req.Reason, req.InternalNotes); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.RequestRejected})
}

// GET /admin/restaurants
func (ctl *AdminController) Restaurants(c *gin.Context) {
	rests, err := ctl.RestSvc.ListAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rests)
}

type blockReq struct {
	Reason string `json:"reason" binding:"required"`
}

// PATCH /admin/restaurants/:id/block
func (ctl *AdminController) BlockRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req blockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.RestSvc.Block(uint(id), req.Reason); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.RestaurantBlocked})
}

// PATCH /admin/restaurants/:id/unblock
func (ctl *AdminController) UnblockRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.RestSvc.Unblock(uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.RestaurantActive})
}

// GET /admin/dashboard
func (ctl *AdminController) Dashboard(c *gin.Context) {
	stats, err := ctl.StatsSvc.Platform()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}
