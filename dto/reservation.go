package dto

import (
	"time"

	"hotel-reservations/models"
	"hotel-reservations/services"
)

// AvailabilityQuery is bound from ?date_arrivee=&date_depart=.
type AvailabilityQuery struct {
	DateArrivee string `form:"date_arrivee" binding:"required,datetime=2006-01-02"`
	DateDepart  string `form:"date_depart" binding:"required,datetime=2006-01-02"`
}

type CreateReservationRequest struct {
	ClientID    uint   `json:"id_client" binding:"required"`
	RoomID      uint   `json:"id_chambre" binding:"required"`
	DateArrivee string `json:"date_arrivee" binding:"required,datetime=2006-01-02"`
	DateDepart  string `json:"date_depart" binding:"required,datetime=2006-01-02"`
}

// ReservationResponse renders stored dates back in the request format.
type ReservationResponse struct {
	ID          uint   `json:"id"`
	ClientID    uint   `json:"id_client"`
	RoomID      uint   `json:"id_chambre"`
	DateArrivee string `json:"date_arrivee"`
	DateDepart  string `json:"date_depart"`
	Statut      string `json:"statut"`
}

func NewReservationResponse(r models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		RoomID:      r.RoomID,
		DateArrivee: time.Time(r.ArrivalDate).Format(services.DateLayout),
		DateDepart:  time.Time(r.DepartureDate).Format(services.DateLayout),
		Statut:      r.Status,
	}
}

func NewReservationResponses(list []models.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, NewReservationResponse(r))
	}
	return out
}
