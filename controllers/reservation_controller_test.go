package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
)

func availableIDs(t *testing.T, api *testAPI, arrival, departure string) map[uint]bool {
	t.Helper()
	resp := api.do(http.MethodGet, fmt.Sprintf("/api/chambres/disponibles?date_arrivee=%s&date_depart=%s", arrival, departure), nil)
	expectStatus(t, resp, http.StatusOK)
	ids := map[uint]bool{}
	for _, r := range decode[[]room](t, resp) {
		ids[r.ID] = true
	}
	return ids
}

func TestAvailableRoomsScenario(t *testing.T) {
	api := newTestAPI(t)
	r101 := api.addRoom("101", "double", 80)

	expectStatus(t, api.reserve(r101, "2024-06-01", "2024-06-05"), http.StatusCreated)

	if !availableIDs(t, api, "2024-06-05", "2024-06-10")[r101] {
		t.Fatal("room 101 should be available from its departure day")
	}
	if availableIDs(t, api, "2024-06-04", "2024-06-06")[r101] {
		t.Fatal("room 101 should not be available over an overlapping interval")
	}
}

func TestAvailableRoomsRecordShape(t *testing.T) {
	api := newTestAPI(t)
	id := api.addRoom("101", "double", 80.5)

	resp := api.do(http.MethodGet, "/api/chambres/disponibles?date_arrivee=2024-06-01&date_depart=2024-06-02", nil)
	expectStatus(t, resp, http.StatusOK)

	rooms := decode[[]map[string]interface{}](t, resp)
	if len(rooms) != 1 {
		t.Fatalf("got %d rooms", len(rooms))
	}
	want := map[string]interface{}{"id": float64(id), "numero": "101", "type": "double", "prix": 80.5}
	if len(rooms[0]) != len(want) {
		t.Fatalf("unexpected keys: %v", rooms[0])
	}
	for k, v := range want {
		if rooms[0][k] != v {
			t.Fatalf("%s: got %v, want %v", k, rooms[0][k], v)
		}
	}
}

func TestAvailableRoomsBadQuery(t *testing.T) {
	api := newTestAPI(t)

	for _, q := range []string{
		"",
		"?date_arrivee=2024-06-01",
		"?date_depart=2024-06-05",
		"?date_arrivee=june&date_depart=2024-06-05",
	} {
		resp := api.do(http.MethodGet, "/api/chambres/disponibles"+q, nil)
		expectError(t, resp, http.StatusBadRequest, "both arrival and departure dates are required")
	}

	resp := api.do(http.MethodGet, "/api/chambres/disponibles?date_arrivee=2024-06-05&date_depart=2024-06-01", nil)
	expectError(t, resp, http.StatusBadRequest, "departure date must be after arrival date")
}

func TestCreateReservationResponses(t *testing.T) {
	api := newTestAPI(t)
	id := api.addRoom("101", "double", 80)

	resp := api.reserve(id, "2024-06-01", "2024-06-05")
	expectStatus(t, resp, http.StatusCreated)
	body := decode[created](t, resp)
	if !body.Success || body.ID == 0 {
		t.Fatalf("unexpected body: %+v", body)
	}

	expectError(t, api.reserve(id, "2024-06-01", "2024-06-05"), http.StatusBadRequest, "room not available for selected dates")
	expectStatus(t, api.reserve(id, "2024-06-05", "2024-06-08"), http.StatusCreated)
	expectStatus(t, api.reserve(id, "2024-05-29", "2024-06-01"), http.StatusCreated)
	expectError(t, api.reserve(id, "2024-06-07", "2024-06-09"), http.StatusBadRequest, "room not available for selected dates")
	expectError(t, api.reserve(999, "2024-06-01", "2024-06-05"), http.StatusNotFound, "Room not found")
}

func TestCreateReservationInvalidBody(t *testing.T) {
	api := newTestAPI(t)
	id := api.addRoom("101", "double", 80)

	bodies := []interface{}{
		`{"id_client": 1`,
		``,
		map[string]interface{}{"id_chambre": id, "date_arrivee": "2024-06-01", "date_depart": "2024-06-05"},
		map[string]interface{}{"id_client": 1, "date_arrivee": "2024-06-01", "date_depart": "2024-06-05"},
		map[string]interface{}{"id_client": 1, "id_chambre": id, "date_depart": "2024-06-05"},
		map[string]interface{}{"id_client": 1, "id_chambre": id, "date_arrivee": "2024-13-01", "date_depart": "2024-06-05"},
		map[string]interface{}{"id_client": "one", "id_chambre": id, "date_arrivee": "2024-06-01", "date_depart": "2024-06-05"},
	}
	for _, b := range bodies {
		resp := api.do(http.MethodPost, "/api/reservations", b)
		expectError(t, resp, http.StatusBadRequest, "Invalid request data")
	}

	expectError(t, api.reserve(id, "2024-06-05", "2024-06-05"), http.StatusBadRequest, "departure date must be after arrival date")
}

func TestGetAndCancelReservation(t *testing.T) {
	api := newTestAPI(t)
	roomID := api.addRoom("101", "double", 80)
	resID := decode[created](t, api.reserve(roomID, "2024-06-01", "2024-06-05")).ID

	resp := api.do(http.MethodGet, fmt.Sprintf("/api/reservations/%d", resID), nil)
	expectStatus(t, resp, http.StatusOK)
	got := decode[map[string]interface{}](t, resp)
	if got["date_arrivee"] != "2024-06-01" || got["date_depart"] != "2024-06-05" || got["statut"] != "confirmed" {
		t.Fatalf("unexpected reservation: %v", got)
	}

	path := fmt.Sprintf("/api/reservations/%d", resID)
	resp = api.do(http.MethodDelete, path, nil)
	expectStatus(t, resp, http.StatusOK)
	if body := decode[created](t, resp); !body.Success {
		t.Fatalf("unexpected body: %+v", body)
	}

	expectError(t, api.do(http.MethodDelete, path, nil), http.StatusNotFound, "Reservation not found")
	expectError(t, api.do(http.MethodDelete, "/api/reservations/777", nil), http.StatusNotFound, "Reservation not found")
	expectError(t, api.do(http.MethodGet, path, nil), http.StatusNotFound, "Reservation not found")
	expectError(t, api.do(http.MethodDelete, "/api/reservations/abc", nil), http.StatusBadRequest, "invalid id")

	if !availableIDs(t, api, "2024-06-01", "2024-06-05")[roomID] {
		t.Fatal("room should be available after cancellation")
	}
}
