package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/occupancy-tracker/internal/model"
	"github.com/classtrack/occupancy-tracker/internal/predictor"
)

// seedRoom builds a room of the given capacity with `occupied` seats
// already taken, starting at seat id base+1.
func seedRoom(store *fakeSeatStore, roomID uint64, base uint64, capacity, occupied int) {
	for i := 1; i <= capacity; i++ {
		status := model.StatusFree
		if i <= occupied {
			status = model.StatusOccupied
		}
		s := model.Seat{
			ID:         base + uint64(i),
			RoomID:     roomID,
			SeatNumber: uint32(i),
			Status:     status,
			UpdatedAt:  time.Now(),
		}
		store.seats[s.ID] = &s
	}
}

func getPath(t *testing.T, h func(echo.Context) error, path, paramName, paramValue string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	require.NoError(t, h(c))
	return rec
}

func TestDashboard_CountsAndPredictions(t *testing.T) {
	rooms := &fakeRoomStore{rooms: []model.Room{
		{ID: 1, Name: "Room 204 (Lab)", Capacity: 20},
		{ID: 2, Name: "Library Study Hall", Capacity: 20},
		{ID: 3, Name: "Room 101 (Lecture)", Capacity: 20},
	}}
	seats := newFakeSeatStore()
	seedRoom(seats, 1, 0, 20, 0)    // 0%  -> Low
	seedRoom(seats, 2, 100, 20, 8)  // 40% -> Moderate
	seedRoom(seats, 3, 200, 20, 15) // 75% -> High
	h := NewRoomHandler(rooms, seats, seats)

	rec := getPath(t, h.Dashboard, "/v1/dashboard", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Rooms []dashboardRoom `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rooms, 3)

	assert.Equal(t, 0, resp.Rooms[0].Occupied)
	assert.Equal(t, predictor.PredictionLow, resp.Rooms[0].Prediction)
	assert.Equal(t, 8, resp.Rooms[1].Occupied)
	assert.Equal(t, predictor.PredictionModerate, resp.Rooms[1].Prediction)
	assert.Equal(t, 15, resp.Rooms[2].Occupied)
	assert.Equal(t, predictor.PredictionHigh, resp.Rooms[2].Prediction)
}

func TestGetRoom_WithSeats(t *testing.T) {
	rooms := &fakeRoomStore{rooms: []model.Room{{ID: 1, Name: "Room 204 (Lab)", Capacity: 5}}}
	seats := newFakeSeatStore()
	seedRoom(seats, 1, 0, 5, 2)
	h := NewRoomHandler(rooms, seats, seats)

	rec := getPath(t, h.GetRoom, "/v1/rooms/1", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp roomDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint32(5), resp.Total)
	assert.Equal(t, 2, resp.Occupied)
	assert.Len(t, resp.Seats, 5)
	assert.Equal(t, predictor.PredictionModerate, resp.Prediction) // 40%
}

func TestGetRoom_NotFound(t *testing.T) {
	h := NewRoomHandler(&fakeRoomStore{}, newFakeSeatStore(), newFakeSeatStore())

	rec := getPath(t, h.GetRoom, "/v1/rooms/99", "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPredict_UnknownRoom(t *testing.T) {
	h := NewRoomHandler(&fakeRoomStore{}, newFakeSeatStore(), newFakeSeatStore())

	rec := getPath(t, h.Predict, "/v1/rooms/99/prediction", "id", "99")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"prediction": "Unknown"}`, rec.Body.String())
}

func TestPredict_MalformedID(t *testing.T) {
	h := NewRoomHandler(&fakeRoomStore{}, newFakeSeatStore(), newFakeSeatStore())

	// Any id the classifier cannot resolve answers "Unknown", including
	// ids other endpoints would reject as malformed.
	for _, id := range []string{"0", "-1", "abc"} {
		rec := getPath(t, h.Predict, "/v1/rooms/"+id+"/prediction", "id", id)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"prediction": "Unknown"}`, rec.Body.String())
	}
}

func TestListRooms_BareRegistryShape(t *testing.T) {
	rooms := &fakeRoomStore{rooms: []model.Room{{ID: 1, Name: "Lab", Capacity: 20}}}
	h := NewRoomHandler(rooms, newFakeSeatStore(), newFakeSeatStore())

	rec := getPath(t, h.ListRooms, "/v1/rooms", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	// The plain registry listing carries no counts or predictions.
	assert.JSONEq(t, `{"rooms": [{"id": 1, "name": "Lab", "total": 20}]}`, rec.Body.String())
}

func TestPredict_KnownRoom(t *testing.T) {
	rooms := &fakeRoomStore{rooms: []model.Room{{ID: 1, Name: "Lab", Capacity: 20}}}
	seats := newFakeSeatStore()
	seedRoom(seats, 1, 0, 20, 15)
	h := NewRoomHandler(rooms, seats, seats)

	rec := getPath(t, h.Predict, "/v1/rooms/1/prediction", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"prediction": "High occupancy expected"}`, rec.Body.String())
}

func TestHistory_ReturnsTrailOldestFirst(t *testing.T) {
	rooms := &fakeRoomStore{rooms: []model.Room{{ID: 1, Name: "Lab", Capacity: 1}}}
	seats := newFakeSeatStore(model.Seat{ID: 7, RoomID: 1, SeatNumber: 1, Status: model.StatusFree})
	h := NewRoomHandler(rooms, seats, seats)

	_, err := seats.SetStatus(context.Background(), 7, model.StatusOccupied, 2)
	require.NoError(t, err)
	_, err = seats.SetStatus(context.Background(), 7, model.StatusFree, 3)
	require.NoError(t, err)

	rec := getPath(t, h.History, "/v1/seats/7/history", "id", "7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		History []historyEntry `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.History, 2)
	assert.Equal(t, model.StatusOccupied, resp.History[0].Status)
	assert.Equal(t, model.StatusFree, resp.History[1].Status)
	assert.Equal(t, uint64(3), resp.History[1].AccountID)
}

func TestHistory_UnknownSeat(t *testing.T) {
	h := NewRoomHandler(&fakeRoomStore{}, newFakeSeatStore(), newFakeSeatStore())

	rec := getPath(t, h.History, "/v1/seats/99/history", "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSeat(t *testing.T) {
	seats := newFakeSeatStore(model.Seat{ID: 7, RoomID: 1, SeatNumber: 1, Status: model.StatusOccupied})
	h := NewRoomHandler(&fakeRoomStore{}, seats, seats)

	rec := getPath(t, h.GetSeat, "/v1/seats/7", "id", "7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"occupied"`)

	rec = getPath(t, h.GetSeat, "/v1/seats/8", "id", "8")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
