package controllers

import (
	"net/http"

	"hotel-reservations/dto"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RoomController struct {
	RoomSvc *services.RoomService
	Log     *logrus.Logger
}

func NewRoomController(svc *services.RoomService, log *logrus.Logger) *RoomController {
	return &RoomController{RoomSvc: svc, Log: log}
}

// GetRooms (GET /api/chambres)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRoomResponses(rooms))
}

// GetRoom (GET /api/chambres/:id)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRoomResponse(*room))
}

// CreateRoom (POST /api/chambres)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, services.MsgInvalidRoom, err)
		return
	}

	room := req.Model()
	if err := ctrl.RoomSvc.Create(c.Request.Context(), &room); err != nil {
		respondError(c, ctrl.Log, err)
		return
	}

	ctrl.Log.WithFields(logrus.Fields{"room_id": room.ID, "numero": room.Number}).Info("room added")
	utils.JSONCreated(c, http.StatusCreated, "Room added successfully.", room.ID)
}

// UpdateRoom (PUT /api/chambres/:id)
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, services.MsgInvalidRoom, err)
		return
	}

	if _, err := ctrl.RoomSvc.Update(c.Request.Context(), id, req.Patch()); err != nil {
		respondError(c, ctrl.Log, err)
		return
	}

	ctrl.Log.WithField("room_id", id).Info("room updated")
	utils.JSONSuccess(c, http.StatusOK, "Room updated successfully.")
}

// DeleteRoom (DELETE /api/chambres/:id)
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.Log, err)
		return
	}

	ctrl.Log.WithField("room_id", id).Info("room deleted")
	utils.JSONSuccess(c, http.StatusOK, "Room deleted successfully.")
}

// GetRoomReservations (GET /api/chambres/:id/reservations)
func (ctrl *RoomController) GetRoomReservations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := ctrl.RoomSvc.Reservations(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.Log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReservationResponses(list))
}
