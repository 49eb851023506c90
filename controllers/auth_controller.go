package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.Login(req.Email, req.Password)
	if err != nil {
		// the banner distinguishes wrong credentials from a registration
		// still waiting on review and from a blocked tenant
		switch {
		case errors.Is(err, services.ErrRegistrationPending):
			resp.Forbidden(c, "registration still pending")
		case errors.Is(err, services.ErrRestaurantBlocked):
			resp.Forbidden(c, "restaurant is blocked")
		default:
			resp.Unauthorized(c, "invalid credentials")
		}
		return
	}
	resp.OK(c, out)
}

// POST /auth/admin/login
func (ctl *AuthController) AdminLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.AdminLogin(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, out)
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// PATCH /partner/account/password
func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Svc.ChangePassword(utils.CurrentUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "current password is incorrect")
			return
		}
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"changed": true})
}
