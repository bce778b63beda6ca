package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dermatlas/dermatlas-api/schema"
)

var (
	ErrClinicNotFound = fmt.Errorf("clinic not found")
)

type Clinic interface {
	UpsertClinic(clinic schema.Clinic) error
	GetClinic(placeID string) (*schema.Clinic, error)
	ListClinics(stateCode, city string, limit int64) ([]schema.Clinic, error)
}

// UpsertClinic inserts a clinic record or replaces the existing one with the
// same place ID. The unique place_id index keeps the collection at exactly
// one record per place.
func (m *mongoDB) UpsertClinic(clinic schema.Clinic) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ClinicCollection)

	_, err := c.ReplaceOne(ctx,
		bson.M{"place_id": clinic.PlaceID},
		clinic,
		options.Replace().SetUpsert(true),
	)
	return err
}

// GetClinic finds one clinic by its place ID.
func (m *mongoDB) GetClinic(placeID string) (*schema.Clinic, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ClinicCollection)

	var clinic schema.Clinic
	if err := c.FindOne(ctx, bson.M{"place_id": placeID}).Decode(&clinic); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrClinicNotFound
		}
		return nil, err
	}

	return &clinic, nil
}

// ListClinics returns clinics optionally narrowed by state code and city,
// sorted by name for a stable directory listing.
func (m *mongoDB) ListClinics(stateCode, city string, limit int64) ([]schema.Clinic, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ClinicCollection)

	query := bson.M{}
	if stateCode != "" {
		query["state_code"] = stateCode
	}
	if city != "" {
		query["city"] = city
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	clinics := []schema.Clinic{}
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, err
	}

	return clinics, nil
}
