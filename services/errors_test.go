package services

import (
	"errors"
	"fmt"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
)

func TestClassify(t *testing.T) {
	if classify("op", nil) != nil {
		t.Fatal("nil error should stay nil")
	}

	notFoundErr := notFound(MsgRoomNotFound)
	if got := classify("op", fmt.Errorf("wrapped: %w", notFoundErr)); got != notFoundErr {
		t.Fatalf("AppError should pass through, got %v", got)
	}

	tests := []struct {
		name    string
		err     error
		kind    ErrorKind
		message string
	}{
		{"deadlock", &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}, KindConflict, MsgRoomBusy},
		{"lock wait", &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}, KindConflict, MsgRoomBusy},
		{"referenced row", &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}, KindConflict, MsgRoomHasReservations},
		{"missing parent", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, KindNotFound, MsgRoomNotFound},
		{"other driver error", &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}, KindStorage, MsgStorage},
		{"plain error", errors.New("connection refused"), KindStorage, MsgStorage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GetAppError(classify("create reservation", tc.err))
			if got == nil {
				t.Fatal("expected AppError")
			}
			if got.Kind != tc.kind || got.Message != tc.message {
				t.Fatalf("got %s %q, want %s %q", got.Kind, got.Message, tc.kind, tc.message)
			}
			if !errors.Is(got, tc.err) {
				t.Fatal("underlying error must stay reachable for logging")
			}
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := NewAppError(KindStorage, MsgStorage, errors.New("boom"))
	if got, want := err.Error(), "[STORAGE_ERROR] Database error occurred: boom"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := conflict(MsgRoomNotAvailable).Error(), "[CONFLICT] room not available for selected dates"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
