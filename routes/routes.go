package routes

import (
	"github.com/gin-gonic/gin"

	"tableside/configs"
	"tableside/controllers"
	"tableside/middlewares"
	"tableside/repository"
	"tableside/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	dishSvc := services.NewDishService(dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	reportSvc := services.NewReportService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Everything else requires a valid staff token.
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	api := r.Group("/", auth)
	{
		api.GET("/auth/me", authCtrl.Me)

		// Orders
		api.GET("/orders", middlewares.Require(services.ActionRead), orderCtrl.List)
		api.GET("/orders/:id", middlewares.Require(services.ActionRead), orderCtrl.Detail)
		api.POST("/orders", middlewares.Require(services.ActionCreateOrder), orderCtrl.Create)
		api.PATCH("/orders/:id", middlewares.Require(services.ActionUpdateOrder), orderCtrl.Update)
		api.DELETE("/orders/:id", middlewares.Require(services.ActionDeleteOrder), orderCtrl.Delete)
		api.PATCH("/orders/:id/status", middlewares.Require(services.ActionChangeStatus), orderCtrl.ChangeStatus)

		// Dish catalog
		api.GET("/dishes", middlewares.Require(services.ActionRead), dishCtrl.List)
		api.POST("/dishes", middlewares.Require(services.ActionManageDishes), dishCtrl.Create)
		api.POST("/dishes/import", middlewares.Require(services.ActionManageDishes), dishCtrl.Import)
		api.PATCH("/dishes/:id", middlewares.Require(services.ActionEditDishes), dishCtrl.Update)
		api.DELETE("/dishes/:id", middlewares.Require(services.ActionEditDishes), dishCtrl.Delete)

		// Staff provisioning + revenue (admin)
		api.POST("/users", middlewares.Require(services.ActionCreateUser), userCtrl.Create)
		api.GET("/revenue", middlewares.Require(services.ActionViewRevenue), reportCtrl.Revenue)
	}
}
