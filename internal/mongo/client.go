package mongo

import (
	"context"
	"fmt"

	"AlmanacSeed/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	DB *mongo.Database
	c  *mongo.Client
}

// NewClient connects to cfg.MongoURI and pings the primary, so that
// connectivity and authentication failures show up before any write.
func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if cred, ok := credential(cfg); ok {
		opts.SetAuth(cred)
	}

	cl, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := cl.Ping(pctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Client{DB: cl.Database(cfg.MongoDB), c: cl}, nil
}

// credential builds explicit auth options. Without MONGO_USER the URI's own
// userinfo (if any) is left to the driver.
func credential(cfg config.Config) (options.Credential, bool) {
	if cfg.MongoUser == "" {
		return options.Credential{}, false
	}
	return options.Credential{
		AuthMechanism: cfg.MongoAuthMechanism,
		AuthSource:    cfg.MongoAuthSource,
		Username:      cfg.MongoUser,
		Password:      cfg.MongoPassword,
	}, true
}

func (c *Client) Close(ctx context.Context) {
	if c.c != nil {
		_ = c.c.Disconnect(ctx)
	}
}
