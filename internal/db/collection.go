package db

import (
	"context"

	"github.com/ukydev/carpark/internal/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RosterCollection defines the interface for fleet roster operations.
type RosterCollection interface {
	InsertVehicle(ctx context.Context, doc models.VehicleDocument) error
	FindVehicles(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (VehicleCursor, error)
}

// VehicleCursor defines the interface for vehicle cursor operations.
type VehicleCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}
