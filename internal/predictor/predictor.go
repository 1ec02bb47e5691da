// Package predictor derives a coarse textual occupancy prediction from
// the ratio of currently-occupied seats to room capacity. Despite the
// name this is a static threshold classifier over the live count: it
// looks at neither the ledger history nor the time of day. That is the
// documented behavior, not a placeholder for a time-series model.
package predictor

// Prediction labels returned by Classify. PredictionUnknown is used by
// callers when the room itself cannot be resolved.
const (
	PredictionHigh     = "High occupancy expected"
	PredictionModerate = "Moderate occupancy expected"
	PredictionLow      = "Low occupancy expected"
	PredictionUnknown  = "Unknown"
)

// Classify maps an occupied count and a room capacity to a prediction
// label. rate = occupied/capacity*100; rate > 70 is High, rate > 30 is
// Moderate, anything else Low. A capacity of zero short-circuits to a
// 0% rate so there is never a division by zero.
func Classify(occupied, capacity int) string {
	var rate float64
	if capacity > 0 {
		rate = float64(occupied) / float64(capacity) * 100
	}
	switch {
	case rate > 70:
		return PredictionHigh
	case rate > 30:
		return PredictionModerate
	default:
		return PredictionLow
	}
}
