package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/classtrack/occupancy-tracker/internal/middleware"
	"github.com/classtrack/occupancy-tracker/internal/queue"
	"github.com/classtrack/occupancy-tracker/internal/repository"
)

// SeatHandler serves the seat status update contract route. Wire shapes
// are fixed: {seat_id, status} in, {"success": true} out, and the exact
// "Seat not found" / "Unauthorized" error bodies.
type SeatHandler struct {
	Seats     SeatStore
	Publisher *queue.Publisher
	Log       *zap.Logger
}

// NewSeatHandler constructs a SeatHandler. publisher may be a disabled
// publisher when seat events are off.
func NewSeatHandler(seats SeatStore, publisher *queue.Publisher, log *zap.Logger) *SeatHandler {
	return &SeatHandler{Seats: seats, Publisher: publisher, Log: log}
}

type updateSeatReq struct {
	SeatID uint64 `json:"seat_id"`
	Status string `json:"status"`
}

// UpdateSeat is the single mutating endpoint. It overwrites the seat's
// status and appends the matching ledger entry in one transaction,
// attributing the change to the authenticated account. Repeated calls
// with the same status are accepted and each appends its own ledger
// entry; concurrent updates resolve last-writer-wins.
func (h *SeatHandler) UpdateSeat(c echo.Context) error {
	var req updateSeatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	actorID := middleware.AccountID(c)
	if actorID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	seat, err := h.Seats.SetStatus(ctx, req.SeatID, req.Status, actorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		case errors.Is(err, repository.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Seat not found"})
		default:
			h.Log.Error("seat update failed", zap.Uint64("seat_id", req.SeatID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}

	// Best effort: a broker failure must not fail the committed update.
	_ = h.Publisher.PublishSeatUpdated(ctx, queue.SeatUpdatedEvent{
		SeatID:     seat.ID,
		RoomID:     seat.RoomID,
		SeatNumber: seat.SeatNumber,
		Status:     seat.Status,
		AccountID:  actorID,
		RecordedAt: seat.UpdatedAt,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
