// Package bootstrap prepares an empty deployment for first use.
package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/classtrack/occupancy-tracker/internal/config"
	"github.com/classtrack/occupancy-tracker/internal/model"
	"github.com/classtrack/occupancy-tracker/internal/repository"
)

// SeedRooms provisions the configured demo rooms, each with its full
// run of seats, when the registry is empty. A non-empty registry skips
// seeding entirely: provisioning is a one-time operation and must
// never run twice.
func SeedRooms(ctx context.Context, log *zap.Logger, rooms *repository.RoomRepo, seeds []config.RoomSeed) error {
	n, err := rooms.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Debug("room registry already provisioned", zap.Int("rooms", n))
		return nil
	}

	for _, seed := range seeds {
		rm := model.Room{Name: seed.Name, Capacity: seed.Capacity}
		if err := rooms.Provision(ctx, &rm); err != nil {
			return err
		}
		log.Info("provisioned room",
			zap.Uint64("id", rm.ID),
			zap.String("name", rm.Name),
			zap.Uint32("capacity", rm.Capacity))
	}
	return nil
}
