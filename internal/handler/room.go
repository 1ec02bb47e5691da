package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/occupancy-tracker/internal/model"
	"github.com/classtrack/occupancy-tracker/internal/predictor"
	"github.com/classtrack/occupancy-tracker/internal/repository"
)

// RoomHandler serves the dashboard and room/seat read endpoints.
type RoomHandler struct {
	Rooms  RoomStore
	Seats  SeatStore
	Ledger LedgerStore
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms RoomStore, seats SeatStore, ledger LedgerStore) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Seats: seats, Ledger: ledger}
}

// ----- response shapes -----

type dashboardRoom struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Total      uint32 `json:"total"`
	Occupied   int    `json:"occupied"`
	Prediction string `json:"prediction"`
}

type roomPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Total uint32 `json:"total"`
}

type seatPart struct {
	ID         uint64    `json:"id"`
	SeatNumber uint32    `json:"seat_number"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type roomDetail struct {
	ID         uint64     `json:"id"`
	Name       string     `json:"name"`
	Total      uint32     `json:"total"`
	Occupied   int        `json:"occupied"`
	Prediction string     `json:"prediction"`
	Seats      []seatPart `json:"seats"`
}

type historyEntry struct {
	ID         uint64    `json:"id"`
	AccountID  uint64    `json:"account_id"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Dashboard returns every room with its live occupied count and the
// classifier's prediction, in registry order.
func (h *RoomHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]dashboardRoom, 0, len(rooms))
	for _, rm := range rooms {
		occupied, err := h.Seats.CountByStatus(ctx, rm.ID, model.StatusOccupied)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		out = append(out, dashboardRoom{
			ID:         rm.ID,
			Name:       rm.Name,
			Total:      rm.Capacity,
			Occupied:   occupied,
			Prediction: predictor.Classify(occupied, int(rm.Capacity)),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}

// ListRooms returns the bare room registry without counts.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]roomPart, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, roomPart{ID: rm.ID, Name: rm.Name, Total: rm.Capacity})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}

// GetRoom returns one room with its seats, live occupied count and
// prediction. Unknown room ids yield 404.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	seats, err := h.Seats.ListByRoom(ctx, rm.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	occupied := 0
	out := make([]seatPart, 0, len(seats))
	for _, s := range seats {
		if s.Status == model.StatusOccupied {
			occupied++
		}
		out = append(out, seatPart{ID: s.ID, SeatNumber: s.SeatNumber, Status: s.Status, UpdatedAt: s.UpdatedAt})
	}

	return c.JSON(http.StatusOK, roomDetail{
		ID:         rm.ID,
		Name:       rm.Name,
		Total:      rm.Capacity,
		Occupied:   occupied,
		Prediction: predictor.Classify(occupied, int(rm.Capacity)),
		Seats:      out,
	})
}

// Predict returns the classifier's label for one room. Unlike the
// other room endpoints an unresolvable room is not an error here: the
// classifier's contract is to answer "Unknown" for any id it cannot
// resolve, malformed ones included.
func (h *RoomHandler) Predict(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"prediction": predictor.PredictionUnknown})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"prediction": predictor.PredictionUnknown})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	occupied, err := h.Seats.CountByStatus(ctx, rm.ID, model.StatusOccupied)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"prediction": predictor.Classify(occupied, int(rm.Capacity))})
}

// ListSeats returns the seats of a room ordered by seat number.
func (h *RoomHandler) ListSeats(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Rooms.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	seats, err := h.Seats.ListByRoom(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]seatPart, 0, len(seats))
	for _, s := range seats {
		out = append(out, seatPart{ID: s.ID, SeatNumber: s.SeatNumber, Status: s.Status, UpdatedAt: s.UpdatedAt})
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": out})
}

// GetSeat returns one seat by id.
func (h *RoomHandler) GetSeat(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Seats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, seatPart{ID: s.ID, SeatNumber: s.SeatNumber, Status: s.Status, UpdatedAt: s.UpdatedAt})
}

// History returns a seat's full audit trail, oldest first.
func (h *RoomHandler) History(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Seats.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	events, err := h.Ledger.History(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]historyEntry, 0, len(events))
	for _, e := range events {
		out = append(out, historyEntry{ID: e.ID, AccountID: e.AccountID, Status: e.Status, RecordedAt: e.RecordedAt})
	}
	return c.JSON(http.StatusOK, echo.Map{"history": out})
}

// parseID parses a positive decimal path parameter.
func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
