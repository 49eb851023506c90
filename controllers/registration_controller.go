package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
)

type RegistrationController struct {
	Svc *services.RegistrationService
}

func NewRegistrationController(svc *services.RegistrationService) *RegistrationController {
	return &RegistrationController{Svc: svc}
}

// POST /register is the public intake from the marketing site.
func (ctl *RegistrationController) Apply(c *gin.Context) {
	var req services.ApplyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.Apply(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": out.ID, "status": out.Status})
}
