package controllers

import (
	"net/http"

	"hotel-reservations/dto"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
	Log            *logrus.Logger
}

func NewReservationController(svc *services.ReservationService, log *logrus.Logger) *ReservationController {
	return &ReservationController{ReservationSvc: svc, Log: log}
}

// GetAvailableRooms (GET /api/chambres/disponibles?date_arrivee=&date_depart=)
func (ctrl *ReservationController) GetAvailableRooms(c *gin.Context) {
	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, services.MsgDatesRequired, err)
		return
	}

	stay, err := services.ParseStay(q.DateArrivee, q.DateDepart)
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}

	rooms, err := ctrl.ReservationSvc.AvailableRooms(c.Request.Context(), stay)
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRoomResponses(rooms))
}

// CreateReservation (POST /api/reservations)
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, services.MsgInvalidRequest, err)
		return
	}

	stay, err := services.ParseStay(req.DateArrivee, req.DateDepart)
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}

	r, err := ctrl.ReservationSvc.Create(c.Request.Context(), req.ClientID, req.RoomID, stay)
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}

	ctrl.Log.WithFields(logrus.Fields{
		"reservation_id": r.ID,
		"room_id":        r.RoomID,
		"client_id":      r.ClientID,
		"nights":         stay.Nights(),
	}).Info("reservation created")
	utils.JSONCreated(c, http.StatusCreated, "Reservation created successfully.", r.ID)
}

// GetReservation (GET /api/reservations/:id)
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := ctrl.ReservationSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReservationResponse(*r))
}

// CancelReservation (DELETE /api/reservations/:id)
func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.ReservationSvc.Cancel(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.Log, err)
		return
	}

	ctrl.Log.WithField("reservation_id", id).Info("reservation cancelled")
	utils.JSONSuccess(c, http.StatusOK, "Reservation cancelled successfully.")
}
