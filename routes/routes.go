package routes

import (
	"os"
	"strings"

	"laundrypro-backend/config"
	"laundrypro-backend/controllers"
	"laundrypro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/setup", controllers.Setup)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Outlet routes
		outlets := api.Group("/outlets")
		{
			outlets.POST("", controllers.CreateOutlet)
			outlets.GET("", controllers.GetOutlets)
			outlets.PUT("/:id", controllers.UpdateOutlet)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.GET("/:id/summary", controllers.GetCustomerSummary)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id/delivery-notes", controllers.UpdateDeliveryNotes)
			invoices.DELETE("/:id", controllers.DeleteInvoice)

			invoices.POST("/:id/payments", controllers.AddPayment)
			invoices.GET("/:id/payments", controllers.GetPayments)
		}

		// Item routes ("/invoices/items/:id" would collide with the
		// "/invoices/:id" wildcard in gin's router)
		api.PUT("/items/:id/status", controllers.UpdateItemStatus)

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// User management routes
		users := api.Group("/users")
		{
			users.GET("", controllers.GetUsers)
			users.POST("", controllers.CreateUser)
			users.PUT("/:id", controllers.UpdateUser)
		}
	}

	return r
}
