package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Collection-exists policies.
const (
	IfExistsSkip = "skip"
	IfExistsFail = "fail"
)

// Non-empty collection policies.
const (
	IfNotEmptyAppend = "append"
	IfNotEmptySkip   = "skip"
	IfNotEmptyFail   = "fail"
)

var ErrInvalidPolicy = errors.New("invalid policy")

type Config struct {
	MongoURI           string
	MongoDB            string
	MongoUser          string
	MongoPassword      string
	MongoAuthSource    string
	MongoAuthMechanism string
	ConnectTimeout     time.Duration

	EphemerisCollection string
	IfCollectionExists  string
	IfNotEmpty          string

	LogLevel string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		// invalid values fall through to Validate
		return 0
	}
	return d
}

func Load() Config {
	db := getenv("MONGO_DB", "admin")
	return Config{
		MongoURI:           getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            db,
		MongoUser:          getenv("MONGO_USER", ""),
		MongoPassword:      getenv("MONGO_PASSWORD", ""),
		MongoAuthSource:    getenv("MONGO_AUTH_SOURCE", db),
		MongoAuthMechanism: getenv("MONGO_AUTH_MECHANISM", ""),
		ConnectTimeout:     getduration("MONGO_CONNECT_TIMEOUT", 10*time.Second),

		EphemerisCollection: getenv("EPHEMERIS_COLLECTION", "ephemeris"),
		IfCollectionExists:  getenv("SEED_IF_COLLECTION_EXISTS", IfExistsSkip),
		IfNotEmpty:          getenv("SEED_IF_NOT_EMPTY", IfNotEmptyAppend),

		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

// Validate checks the values Load can't default its way out of.
func (c Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGO_URI is empty")
	}
	if c.MongoDB == "" || c.EphemerisCollection == "" {
		return errors.New("database and collection names are required")
	}
	if c.MongoUser == "" && (c.MongoPassword != "" || c.MongoAuthMechanism != "") {
		return errors.New("MONGO_PASSWORD and MONGO_AUTH_MECHANISM require MONGO_USER")
	}
	if c.ConnectTimeout <= 0 {
		return errors.New("MONGO_CONNECT_TIMEOUT must be a positive duration")
	}
	switch c.IfCollectionExists {
	case IfExistsSkip, IfExistsFail:
	default:
		return fmt.Errorf("%w: SEED_IF_COLLECTION_EXISTS=%q", ErrInvalidPolicy, c.IfCollectionExists)
	}
	switch c.IfNotEmpty {
	case IfNotEmptyAppend, IfNotEmptySkip, IfNotEmptyFail:
	default:
		return fmt.Errorf("%w: SEED_IF_NOT_EMPTY=%q", ErrInvalidPolicy, c.IfNotEmpty)
	}
	return nil
}
