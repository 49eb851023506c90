package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/roshanx0/restaurant-ordering-saas/configs"
	"github.com/roshanx0/restaurant-ordering-saas/controllers"
	"github.com/roshanx0/restaurant-ordering-saas/livequery"
	"github.com/roshanx0/restaurant-ordering-saas/middlewares"
	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/roshanx0/restaurant-ordering-saas/services"
	"github.com/roshanx0/restaurant-ordering-saas/ws"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	notifier := livequery.NewNotifier()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, restRepo, regRepo, cfg.JWTSecret, cfg.JWTTTL)
	regSvc := services.NewRegistrationService(regRepo, restRepo, userRepo, notifier, cfg.PublicBaseURL)
	restSvc := services.NewRestaurantService(restRepo, notifier)
	menuSvc := services.NewMenuService(menuRepo, notifier)
	orderSvc := services.NewOrderService(orderRepo, menuRepo, restRepo, notifier, cfg.TaxRate)
	reportSvc := services.NewReportService(orderRepo)
	statsSvc := services.NewStatsService(restRepo, regRepo, orderRepo)
	qrGen := services.QRGenerator{BaseURL: cfg.PublicBaseURL}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	regCtrl := controllers.NewRegistrationController(regSvc)
	adminCtrl := controllers.NewAdminController(regSvc, restSvc, statsSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, qrGen, reportSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	publicCtrl := controllers.NewPublicController(menuSvc, orderSvc, restSvc)
	feed := ws.NewFeed(notifier, orderRepo, regRepo, restRepo)

	// Public: registration intake and logins
	r.POST("/register", regCtrl.Apply)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/admin/login", authCtrl.AdminLogin)
	}

	// Public: customer QR surface
	pub := r.Group("/r/:slug")
	{
		pub.GET("/menu", publicCtrl.Menu)
		pub.POST("/orders", publicCtrl.SubmitOrder)
		pub.GET("/orders/:token", publicCtrl.TrackOrder)
	}

	// Partner (restaurant operators)
	partner := r.Group("/partner", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "staff"))
	{
		partner.GET("/dashboard", orderCtrl.Dashboard)

		partner.GET("/restaurant", restCtrl.Get)
		partner.PATCH("/restaurant", restCtrl.Update)
		partner.GET("/qrcode.png", restCtrl.QRCode)
		partner.GET("/reports/orders.xlsx", restCtrl.OrdersReport)
		partner.PATCH("/account/password", authCtrl.ChangePassword)

		partner.GET("/menu", menuCtrl.List)
		partner.POST("/menu", menuCtrl.Create)
		partner.PATCH("/menu/:id", menuCtrl.Update)
		partner.DELETE("/menu/:id", menuCtrl.Delete)
		partner.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)

		partner.GET("/orders", orderCtrl.List)
		partner.GET("/orders/:id", orderCtrl.Detail)
		partner.PATCH("/orders/:id/accept", orderCtrl.Accept)
		partner.PATCH("/orders/:id/complete", orderCtrl.Complete)
		partner.PATCH("/orders/:id/reject", orderCtrl.Reject)
		partner.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		partner.GET("/ws/orders", feed.HandleOrders)
	}

	// Admin (platform operators)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/requests", adminCtrl.Requests)
		admin.PATCH("/requests/:id/approve", adminCtrl.ApproveRequest)
		admin.PATCH("/requests/:id/reject", adminCtrl.RejectRequest)

		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.PATCH("/restaurants/:id/block", adminCtrl.BlockRestaurant)
		admin.PATCH("/restaurants/:id/unblock", adminCtrl.UnblockRestaurant)

		admin.GET("/ws/requests", feed.HandleRequests)
		admin.GET("/ws/restaurants", feed.HandleRestaurants)
	}
}
