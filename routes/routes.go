package routes

import (
	"nivelfit/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, th *handlers.TrainerHandler, bh *handlers.BookingHandler, sh *handlers.StoreHandler) {
	RegisterTrainerRoutes(r, th)
	RegisterBookingRoutes(r, bh)
	RegisterAdminRoutes(r, sh)
	RegisterHealthRoute(r)
}

// RegisterTrainerRoutes registers trainer, schedule and availability endpoints.
func RegisterTrainerRoutes(r *gin.Engine, th *handlers.TrainerHandler) {
	api := r.Group("/api/trainers")
	{
		api.GET("", th.GetTrainersHandler)
		api.GET("/id/:id", th.GetTrainerByIDHandler)
		api.GET("/id/:id/slots", th.GetAvailableSlotsHandler)
		api.GET("/id/:id/schedule", th.GetScheduleHandler)
		api.PUT("/id/:id/schedule", th.SaveScheduleHandler)
	}
}

// RegisterBookingRoutes registers booking CRUD and the wizard session flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", bh.CreateBookingHandler)
		api.GET("/id/:id", bh.GetBookingByIDHandler)
		api.GET("/date/:date", bh.GetBookingsByDateHandler)
		api.GET("/trainer/:trainerID", bh.GetBookingsByTrainerHandler)
		api.PATCH("/id/:id", bh.UpdateBookingHandler)
		api.DELETE("/id/:id", bh.DeleteBookingHandler)
	}

	session := r.Group("/api/booking")
	{
		session.POST("/session", bh.StartSessionHandler)
		session.PUT("/session/:sessionID", bh.UpdateSessionHandler)
		session.POST("/confirm", bh.ConfirmSessionHandler)
		session.DELETE("/session/:sessionID", bh.CancelSessionHandler)
	}
}

// RegisterAdminRoutes registers demo-data management endpoints.
func RegisterAdminRoutes(r *gin.Engine, sh *handlers.StoreHandler) {
	api := r.Group("/api/admin")
	{
		api.POST("/reset", sh.ResetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}
