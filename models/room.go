package models

import (
	"time"

	"gorm.io/gorm"
)

// Room is a bookable unit. JSON keys follow the public API (numero/prix).
type Room struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Number string  `gorm:"column:number;size:50;not null" json:"numero"`
	Type   string  `gorm:"column:type;size:100;not null" json:"type"`
	Price  float64 `gorm:"column:price;not null;default:0" json:"prix"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Reservations []Reservation `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
