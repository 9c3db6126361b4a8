package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const ReservationStatusConfirmed = "confirmed"

// Reservation books one room for one client over [ArrivalDate, DepartureDate).
// Rows are never updated in place; cancelling deletes them.
type Reservation struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"column:client_id;not null;index" json:"id_client"`
	RoomID   uint `gorm:"column:room_id;not null;index:idx_reservation_room_stay,priority:1" json:"id_chambre"`

	ArrivalDate   datatypes.Date `gorm:"column:arrival_date;not null;index:idx_reservation_room_stay,priority:2" json:"date_arrivee"`
	DepartureDate datatypes.Date `gorm:"column:departure_date;not null;index:idx_reservation_room_stay,priority:3" json:"date_depart"`
	Status        string         `gorm:"column:status;size:32;not null;default:confirmed" json:"statut"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
