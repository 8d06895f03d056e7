package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelcenter/internal/config"
	h "travelcenter/internal/http/handlers"
	"travelcenter/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		// Trip catalog: reads are public, writes are administrative
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.GET("/code/:code", h.GetTripByCode)
		trips.POST("", middleware.RequireAdmin(), h.CreateTrip)
		trips.PUT("/:id", middleware.RequireAdmin(), h.UpdateTrip)
		trips.DELETE("/:id", middleware.RequireAdmin(), h.DeleteTrip)

		// Bookings: always scoped to the authenticated customer
		bookings := api.Group("/bookings", middleware.RequireAuth())
		bookings.GET("", h.GetMyBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.GET("/:id/eticket", h.GetBookingETicketPDF)

		// Customer directory (admin)
		customers := api.Group("/customers", middleware.RequireAdmin())
		customers.GET("", h.GetCustomers)
		customers.GET("/:id", h.GetCustomerByID)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	return r
}
