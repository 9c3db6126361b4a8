package services

import (
	"errors"
	"fmt"

	mysql "github.com/go-sql-driver/mysql"
)

// ErrorKind classifies failures so handlers can pick a status code without
// looking at error text.
type ErrorKind string

const (
	KindInvalidRequest ErrorKind = "INVALID_REQUEST"
	KindConflict       ErrorKind = "CONFLICT"
	KindNotFound       ErrorKind = "NOT_FOUND"
	KindStorage        ErrorKind = "STORAGE_ERROR"
)

const (
	MsgDatesRequired       = "both arrival and departure dates are required"
	MsgDatesOrder          = "departure date must be after arrival date"
	MsgInvalidDate         = "dates must use the YYYY-MM-DD format"
	MsgInvalidRequest      = "Invalid request data"
	MsgInvalidRoom         = "Missing or invalid data in request"
	MsgRoomNotAvailable    = "room not available for selected dates"
	MsgRoomBusy            = "room is being booked by another request, try again"
	MsgRoomHasReservations = "room has existing reservations"
	MsgRoomNotFound        = "Room not found"
	MsgReservationNotFound = "Reservation not found"
	MsgStorage             = "Database error occurred"
)

// MySQL server error numbers we classify instead of reporting as storage failures.
const (
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// GetAppError returns the first *AppError in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Kind == kind
}

func invalid(message string) *AppError  { return NewAppError(KindInvalidRequest, message, nil) }
func conflict(message string) *AppError { return NewAppError(KindConflict, message, nil) }
func notFound(message string) *AppError { return NewAppError(KindNotFound, message, nil) }

// classify passes AppErrors through and turns everything else into a
// StorageError, except for the store-level conflicts callers can act on.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr
	}

	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		switch merr.Number {
		case mysqlLockWaitTimeout, mysqlDeadlock:
			return NewAppError(KindConflict, MsgRoomBusy, err)
		case mysqlRowIsReferenced:
			return NewAppError(KindConflict, MsgRoomHasReservations, err)
		case mysqlNoReferencedRow:
			return NewAppError(KindNotFound, MsgRoomNotFound, err)
		}
	}

	return NewAppError(KindStorage, MsgStorage, fmt.Errorf("%s: %w", op, err))
}
