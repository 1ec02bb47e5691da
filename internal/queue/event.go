// Package queue publishes seat-update notifications to RabbitMQ for
// external dashboards or sinks. Publishing is best-effort: a broker
// failure never fails the originating request.
package queue

import "time"

// QueueName is the durable queue seat updates are published to.
const QueueName = "seat.updated"

// SeatUpdatedEvent is the JSON message emitted after a successful seat
// status change. It mirrors the ledger entry written in the same
// request.
type SeatUpdatedEvent struct {
	SeatID     uint64    `json:"seat_id"`
	RoomID     uint64    `json:"room_id"`
	SeatNumber uint32    `json:"seat_number"`
	Status     string    `json:"status"`
	AccountID  uint64    `json:"account_id"`
	RecordedAt time.Time `json:"recorded_at"`
}
