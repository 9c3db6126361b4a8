package services

import (
	"context"
	"errors"

	"hotel-reservations/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService answers availability questions and books or cancels
// stays. Booking holds a row lock on the room while it checks for overlaps,
// so two requests for the same room are serialized by the store.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// AvailableRooms returns every room with no reservation overlapping stay.
func (s *ReservationService) AvailableRooms(ctx context.Context, stay Stay) ([]models.Room, error) {
	db := s.DB.WithContext(ctx)

	busy := db.Model(&models.Reservation{}).
		Select("room_id").
		Scopes(overlapping(stay))

	var rooms []models.Room
	if err := db.Where("id NOT IN (?)", busy).Order("id").Find(&rooms).Error; err != nil {
		return nil, classify("list available rooms", err)
	}
	return rooms, nil
}

// Create books roomID for clientID over stay with status "confirmed".
func (s *ReservationService) Create(ctx context.Context, clientID, roomID uint, stay Stay) (*models.Reservation, error) {
	if clientID == 0 || roomID == 0 {
		return nil, invalid(MsgInvalidRequest)
	}

	var created models.Reservation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(MsgRoomNotFound)
			}
			return err
		}

		var overlaps int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ?", roomID).
			Scopes(overlapping(stay)).
			Count(&overlaps).Error; err != nil {
			return err
		}
		if overlaps > 0 {
			return conflict(MsgRoomNotAvailable)
		}

		created = models.Reservation{
			ClientID:      clientID,
			RoomID:        roomID,
			ArrivalDate:   datatypes.Date(stay.Arrival),
			DepartureDate: datatypes.Date(stay.Departure),
			Status:        models.ReservationStatusConfirmed,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, classify("create reservation", err)
	}
	return &created, nil
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgReservationNotFound)
		}
		return nil, classify("get reservation", err)
	}
	return &r, nil
}

// Cancel deletes reservation id. Cancelling an unknown or already cancelled
// reservation is NotFound.
func (s *ReservationService) Cancel(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.First(&r, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(MsgReservationNotFound)
			}
			return err
		}

		res := tx.Delete(&r)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound(MsgReservationNotFound)
		}
		return nil
	})
	return classify("cancel reservation", err)
}
