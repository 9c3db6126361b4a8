package dto

import (
	"strings"

	"hotel-reservations/models"
	"hotel-reservations/services"
)

type CreateRoomRequest struct {
	Numero string   `json:"numero" binding:"required"`
	Type   string   `json:"type" binding:"required"`
	Prix   *float64 `json:"prix" binding:"required,gte=0"`
}

func (r CreateRoomRequest) Model() models.Room {
	room := models.Room{
		Number: strings.TrimSpace(r.Numero),
		Type:   strings.TrimSpace(r.Type),
	}
	if r.Prix != nil {
		room.Price = *r.Prix
	}
	return room
}

// UpdateRoomRequest only touches the fields present in the body.
type UpdateRoomRequest struct {
	Numero *string  `json:"numero" binding:"omitempty,min=1"`
	Type   *string  `json:"type" binding:"omitempty,min=1"`
	Prix   *float64 `json:"prix" binding:"omitempty,gte=0"`
}

func (r UpdateRoomRequest) Patch() services.RoomPatch {
	return services.RoomPatch{Number: r.Numero, Type: r.Type, Price: r.Prix}
}

// RoomResponse is the public room record {id, numero, type, prix}.
type RoomResponse struct {
	ID     uint    `json:"id"`
	Numero string  `json:"numero"`
	Type   string  `json:"type"`
	Prix   float64 `json:"prix"`
}

func NewRoomResponse(room models.Room) RoomResponse {
	return RoomResponse{ID: room.ID, Numero: room.Number, Type: room.Type, Prix: room.Price}
}

func NewRoomResponses(rooms []models.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, NewRoomResponse(room))
	}
	return out
}
