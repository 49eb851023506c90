package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
	"gorm.io/gorm"
)

// writeServiceError maps service-layer failures onto the response taxonomy:
// validation -> 400, invalid transition -> 409, unknown row -> 404, the rest
// -> 500. Every failure leaves the client free to retry.
func writeServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Error())
	case errors.Is(err, services.ErrNotPending):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
