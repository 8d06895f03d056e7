package handlers

import (
	"net/http"
	"strings"

	"travelcenter/internal/domain/models"
	"travelcenter/internal/http/middleware"
	"travelcenter/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/trips?status=available
func GetTrips(c *gin.Context) {
	svc := tripService(c)

	var (
		trips []models.Trip
		err   error
	)
	if strings.EqualFold(c.Query("status"), models.TripAvailable) {
		trips, err = svc.ListAvailableTrips()
	} else {
		trips, err = svc.ListTrips()
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	trip, err := tripService(c).GetTripByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/trips/code/:code
func GetTripByCode(c *gin.Context) {
	trip, err := tripService(c).GetTripByCode(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var req models.TripInput
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := tripService(c).CreateTrip(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "trip created successfully", "trip": trip})
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req models.TripInput
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := tripService(c).UpdateTrip(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip updated successfully", "trip": trip})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := tripService(c).DeleteTrip(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted successfully"})
}
