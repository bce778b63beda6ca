package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/schema"
)

type Curation interface {
	SetFeatured(placeID string, featured bool) error
	PurgeInvalidStates() (int64, error)
}

// SetFeatured flips the curation flag of one clinic. Only the offline
// maintain command calls this; no user-facing flow does.
func (m *mongoDB) SetFeatured(placeID string, featured bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ClinicCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"place_id": placeID},
		bson.M{"$set": bson.M{"featured": featured}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrClinicNotFound
	}
	return nil
}

// PurgeInvalidStates removes records whose state code is not one of the 50
// states + DC. Such records should never be persisted in the first place;
// the purge is the explicit offline cleanup pass for historical data.
func (m *mongoDB) PurgeInvalidStates() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ClinicCollection)

	result, err := c.DeleteMany(ctx, bson.M{
		"state_code": bson.M{"$nin": consts.AllStateCodes()},
	})
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"deleted": result.DeletedCount,
	}).Info("purged records with invalid state codes")

	return result.DeletedCount, nil
}
