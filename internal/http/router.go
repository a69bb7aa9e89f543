package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "busticket/internal/config"
	h "busticket/internal/http/handlers"
	"busticket/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

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

		// Inventory (public reads, open writes kept for the admin UI)
		cities := api.Group("/cities")
		cities.GET("", h.GetCities)
		cities.GET("/:id", h.GetCityByID)
		cities.POST("", h.CreateCity)
		cities.PUT("/:id", h.UpdateCity)
		cities.DELETE("/:id", h.DeleteCity)

		operators := api.Group("/operators")
		operators.GET("", h.GetOperators)
		operators.GET("/:id", h.GetOperatorByID)
		operators.POST("", h.CreateOperator)
		operators.PUT("/:id", h.UpdateOperator)
		operators.DELETE("/:id", h.DeleteOperator)

		buses := api.Group("/buses")
		buses.GET("", h.GetBuses)
		buses.GET("/:id", h.GetBusByID)
		buses.POST("", h.CreateBus)
		buses.PUT("/:id", h.UpdateBus)
		buses.DELETE("/:id", h.DeleteBus)

		routes := api.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.GET("/search", h.SearchRoutes)
		routes.GET("/:id", h.GetRouteByID)
		routes.POST("", h.CreateRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.DELETE("/:id", h.DeleteRoute)

		api.GET("/seats", h.GetSeats)

		// Bookings require an authenticated user.
		bookings := api.Group("/bookings", middleware.AuthRequired())
		bookings.GET("", h.GetBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.GET("/:id/e-ticket", h.GetBookingETicket)

		profile := api.Group("/profile", middleware.AuthRequired())
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)

		admin := api.Group("/admin", middleware.AuthRequired())
		admin.POST("/reconcile", h.RunReconcile)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	origins := env.CORSOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
