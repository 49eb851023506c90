package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/pkg/resp"
	"github.com/roshanx0/restaurant-ordering-saas/services"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
)

// RestaurantController covers the operator-facing account surface: profile,
// printable QR code and spreadsheet exports.
type RestaurantController struct {
	Svc       *services.RestaurantService
	QR        services.QRGenerator
	ReportSvc *services.ReportService
}

func NewRestaurantController(svc *services.RestaurantService, qr services.QRGenerator, reportSvc *services.ReportService) *RestaurantController {
	return &RestaurantController{Svc: svc, QR: qr, ReportSvc: reportSvc}
}

// GET /partner/restaurant
func (ctl *RestaurantController) Get(c *gin.Context) {
	rest, err := ctl.Svc.Get(utils.CurrentRestaurantID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// PATCH /partner/restaurant is owner-only; staff accounts get read access.
func (ctl *RestaurantController) Update(c *gin.Context) {
	if utils.CurrentRole(c) != "owner" {
		resp.Forbidden(c, "owner account required")
		return
	}

	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Svc.UpdateProfile(utils.CurrentRestaurantID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /partner/qrcode.png?size=512
func (ctl *RestaurantController) QRCode(c *gin.Context) {
	rest, err := ctl.Svc.Get(utils.CurrentRestaurantID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))
	png, err := ctl.QR.MenuPNG(rest.Slug, size)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s-menu-qr.png", rest.Slug))
	c.Data(200, "image/png", png)
}

// GET /partner/reports/orders.xlsx?from=2025-01-01&to=2025-02-01
func (ctl *RestaurantController) OrdersReport(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, -1, 0)

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		// inclusive end date
		to = t.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		resp.BadRequest(c, "from must be before to")
		return
	}

	data, err := ctl.ReportSvc.OrdersXLSX(utils.CurrentRestaurantID(c), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
