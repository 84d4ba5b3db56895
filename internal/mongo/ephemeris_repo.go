package mongo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// codeNamespaceExists is the server error returned by "create" for an
// existing collection.
const codeNamespaceExists = 48

var ErrNamespaceExists = errors.New("collection already exists")

type Location struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type EphemerisDoc struct {
	Date     time.Time `bson:"date"`
	Text     string    `bson:"text"`
	Location *Location `bson:"location,omitempty"` // omitted when nil
}

// EnsureCollection looks the collection up by name and creates it only when
// it is missing. An existing collection is reported as ErrNamespaceExists;
// the caller decides whether that matters. A create that loses a race with
// another writer (server code 48) is reported the same way.
func (c *Client) EnsureCollection(ctx context.Context, name string) (bool, error) {
	names, err := c.DB.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return false, fmt.Errorf("list collections: %w", err)
	}
	if slices.Contains(names, name) {
		return false, fmt.Errorf("%w: %s.%s", ErrNamespaceExists, c.DB.Name(), name)
	}

	err = c.DB.CreateCollection(ctx, name)
	if err == nil {
		return true, nil
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == codeNamespaceExists {
		return false, fmt.Errorf("%w: %s.%s: %w", ErrNamespaceExists, c.DB.Name(), name, err)
	}
	return false, err
}

func (c *Client) CountEphemeris(ctx context.Context, name string) (int64, error) {
	return c.DB.Collection(name).CountDocuments(ctx, bson.D{})
}

// InsertEphemeris writes docs in one ordered InsertMany and returns how many
// ids the server acknowledged.
func (c *Client) InsertEphemeris(ctx context.Context, name string, docs []EphemerisDoc) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	batch := make([]any, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	res, err := c.DB.Collection(name).InsertMany(ctx, batch, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
