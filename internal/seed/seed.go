// Package seed loads the fixed ephemeris batch into MongoDB.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"AlmanacSeed/internal/config"
	mdb "AlmanacSeed/internal/mongo"
)

var (
	ErrCollectionExists   = errors.New("ephemeris collection already exists")
	ErrCollectionNotEmpty = errors.New("ephemeris collection is not empty")
)

type Result struct {
	Database   string
	Collection string
	Created    bool  // create command succeeded
	Existing   int64 // documents present before the insert
	Inserted   int
	Skipped    bool // insert not attempted because of IfNotEmpty=skip
}

// Run ensures the collection, applies the configured policies and inserts
// Entries() in a single batch. It does not retry.
func Run(ctx context.Context, cfg config.Config, mc *mdb.Client) (Result, error) {
	res := Result{Database: mc.DB.Name(), Collection: cfg.EphemerisCollection}
	log := slog.With("db", res.Database, "collection", res.Collection)

	created, err := mc.EnsureCollection(ctx, cfg.EphemerisCollection)
	switch {
	case err == nil:
		log.Info("collection created")
	case errors.Is(err, mdb.ErrNamespaceExists) && cfg.IfCollectionExists == config.IfExistsSkip:
		log.Info("collection exists, continuing")
	case errors.Is(err, mdb.ErrNamespaceExists):
		return res, fmt.Errorf("%w: %w", ErrCollectionExists, err)
	default:
		return res, fmt.Errorf("create collection: %w", err)
	}
	res.Created = created

	// counted even after a successful create so the non-empty policy never
	// rests on how the server answered "create"
	n, err := mc.CountEphemeris(ctx, cfg.EphemerisCollection)
	if err != nil {
		return res, fmt.Errorf("count documents: %w", err)
	}
	res.Existing = n

	if res.Existing > 0 {
		log.Info("collection has documents", "existing", res.Existing, "policy", cfg.IfNotEmpty)
		switch cfg.IfNotEmpty {
		case config.IfNotEmptySkip:
			res.Skipped = true
			return res, nil
		case config.IfNotEmptyFail:
			return res, fmt.Errorf("%w: %d documents in %s.%s", ErrCollectionNotEmpty, res.Existing, res.Database, res.Collection)
		}
	}

	inserted, err := mc.InsertEphemeris(ctx, cfg.EphemerisCollection, Entries())
	if err != nil {
		return res, fmt.Errorf("insert ephemeris: %w", err)
	}
	res.Inserted = inserted
	log.Info("ephemeris inserted", "inserted", inserted, "total", res.Existing+int64(inserted))
	return res, nil
}
