package services

import (
	"context"
	"errors"
	"strings"

	"hotel-reservations/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomService keeps room CRUD on top of an explicit *gorm.DB handle.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomPatch carries a partial update; nil fields keep their stored value.
type RoomPatch struct {
	Number *string
	Type   *string
	Price  *float64
}

func (p RoomPatch) columns() (map[string]interface{}, error) {
	cols := map[string]interface{}{}
	if p.Number != nil {
		n := strings.TrimSpace(*p.Number)
		if n == "" {
			return nil, invalid(MsgInvalidRoom)
		}
		cols["number"] = n
	}
	if p.Type != nil {
		t := strings.TrimSpace(*p.Type)
		if t == "" {
			return nil, invalid(MsgInvalidRoom)
		}
		cols["type"] = t
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return nil, invalid(MsgInvalidRoom)
		}
		cols["price"] = *p.Price
	}
	return cols, nil
}

func validateRoom(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	room.Type = strings.TrimSpace(room.Type)
	if room.Number == "" || room.Type == "" || room.Price < 0 {
		return invalid(MsgInvalidRoom)
	}
	return nil
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, classify("list rooms", err)
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(MsgRoomNotFound)
		}
		return nil, classify("get room", err)
	}
	return &room, nil
}

// Create persists room and fills in its ID.
func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	room.ID = 0
	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		return classify("create room", err)
	}
	return nil
}

// Update applies patch to room id and returns the stored result.
func (s *RoomService) Update(ctx context.Context, id uint, patch RoomPatch) (*models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(MsgRoomNotFound)
			}
			return err
		}

		cols, err := patch.columns()
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}
		if err := tx.Model(&room).Updates(cols).Error; err != nil {
			return err
		}
		return tx.First(&room, id).Error
	})
	if err != nil {
		return nil, classify("update room", err)
	}
	return &room, nil
}

// Delete removes room id. A room still referenced by reservations is kept
// and reported as a conflict.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(MsgRoomNotFound)
			}
			return err
		}

		var booked int64
		if err := tx.Model(&models.Reservation{}).Where("room_id = ?", id).Count(&booked).Error; err != nil {
			return err
		}
		if booked > 0 {
			return conflict(MsgRoomHasReservations)
		}

		return tx.Delete(&room).Error
	})
	return classify("delete room", err)
}

// Reservations lists the live reservations of room id by arrival date.
func (s *RoomService) Reservations(ctx context.Context, id uint) ([]models.Reservation, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	var list []models.Reservation
	if err := s.DB.WithContext(ctx).
		Where("room_id = ?", id).
		Order("arrival_date, id").
		Find(&list).Error; err != nil {
		return nil, classify("list room reservations", err)
	}
	return list, nil
}
