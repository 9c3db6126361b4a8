package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-reservations/controllers"
	"hotel-reservations/middleware"
)

// SetupRouter wires the controllers onto a gin engine.
func SetupRouter(
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	corsOrigins []string,
	log *logrus.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log))

	origins := corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/chambres")
		{
			rooms.GET("", rc.GetRooms)
			// static segment, registered next to /:id
			rooms.GET("/disponibles", resc.GetAvailableRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.GET("/:id/reservations", rc.GetRoomReservations)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/:id", resc.GetReservation)
			reservations.DELETE("/:id", resc.CancelReservation)
		}
	}

	return r
}
