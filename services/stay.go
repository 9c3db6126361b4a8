package services

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the wire format of every date the API accepts.
const DateLayout = "2006-01-02"

// Stay is the half-open interval [Arrival, Departure) of calendar dates.
// The departure day is free for the next guest.
type Stay struct {
	Arrival   time.Time
	Departure time.Time
}

// ParseStay builds a Stay from two YYYY-MM-DD strings and rejects
// intervals that do not end strictly after they start.
func ParseStay(arrival, departure string) (Stay, error) {
	arrival, departure = strings.TrimSpace(arrival), strings.TrimSpace(departure)
	if arrival == "" || departure == "" {
		return Stay{}, invalid(MsgDatesRequired)
	}

	a, err := time.Parse(DateLayout, arrival)
	if err != nil {
		return Stay{}, NewAppError(KindInvalidRequest, MsgInvalidDate, err)
	}
	d, err := time.Parse(DateLayout, departure)
	if err != nil {
		return Stay{}, NewAppError(KindInvalidRequest, MsgInvalidDate, err)
	}
	if !d.After(a) {
		return Stay{}, invalid(MsgDatesOrder)
	}
	return Stay{Arrival: a, Departure: d}, nil
}

// Overlaps reports whether the two stays share at least one night.
func (s Stay) Overlaps(other Stay) bool {
	return s.Arrival.Before(other.Departure) && s.Departure.After(other.Arrival)
}

func (s Stay) Nights() int {
	return int(s.Departure.Sub(s.Arrival).Hours() / 24)
}

// overlapping restricts a reservations query to rows whose stay overlaps s,
// using the same rule as Overlaps.
func overlapping(s Stay) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("arrival_date < ? AND departure_date > ?",
			datatypes.Date(s.Departure), datatypes.Date(s.Arrival))
	}
}
