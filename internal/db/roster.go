package db

import (
	"context"
	"fmt"

	"github.com/ukydev/carpark/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadFleet builds a fleet from the stored vehicle definitions, in insertion
// (_id) order. Stored loads become the initial loads.
func LoadFleet(ctx context.Context, coll RosterCollection) (*models.Fleet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := coll.FindVehicles(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("load fleet: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.VehicleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("load fleet: decode: %w", err)
	}

	fleet := models.NewFleet()
	for _, doc := range docs {
		c, err := doc.ToCarrier()
		if err != nil {
			return nil, fmt.Errorf("load fleet: document %s: %w", doc.ID.Hex(), err)
		}
		fleet.AddVehicle(c)
	}
	return fleet, nil
}

// SeedRoster stores the definition of every carrier and returns how many were written.
func SeedRoster(ctx context.Context, coll RosterCollection, carriers []models.Carrier) (int, error) {
	for i, c := range carriers {
		doc, err := models.DocumentFromCarrier(c)
		if err != nil {
			return i, fmt.Errorf("seed roster: %w", err)
		}
		if err := coll.InsertVehicle(ctx, doc); err != nil {
			return i, fmt.Errorf("seed roster: insert %s: %w", c.Name(), err)
		}
	}
	return len(carriers), nil
}
