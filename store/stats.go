package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dermatlas/dermatlas-api/schema"
)

type Stats interface {
	StateStats() (*DirectoryStats, error)
}

// DirectoryStats summarizes the clinic collection for the stats endpoint.
type DirectoryStats struct {
	Total   int64               `json:"total"`
	States  int                 `json:"states"`
	ByState []schema.StateCount `json:"by_state"`
}

// StateStats aggregates clinic counts per state.
func (m *mongoDB) StateStats() (*DirectoryStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ClinicCollection)

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$state_code",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := []schema.StateCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}

	stats := &DirectoryStats{
		States:  len(counts),
		ByState: counts,
	}
	for _, s := range counts {
		stats.Total += s.Count
	}

	return stats, nil
}
