package storage

import (
	"context"
	"errors"
	"fmt"

	"MeAPI_Playground/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailExists     = errors.New("email already exists")
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// ProfileStore is the document store holding portfolio profiles. Readers only
// ever see the most recently created profile.
type ProfileStore interface {
	// LoadLatestProfile returns ErrProfileNotFound when the store is empty.
	LoadLatestProfile(ctx context.Context) (models.Profile, error)
	// CreateProfile assigns ID and timestamps to p before inserting it.
	CreateProfile(ctx context.Context, p *models.Profile) error
	// SaveProfile replaces the stored document with the same ID.
	SaveProfile(ctx context.Context, p *models.Profile) error
	// ReplaceAllProfiles deletes every stored profile and creates p.
	ReplaceAllProfiles(ctx context.Context, p *models.Profile) error
	Ping(ctx context.Context) error
	Close() error
}

type Options struct {
	Driver        string
	SQLitePath    string
	MongoURI      string
	MongoDatabase string
}

// Open connects to the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (ProfileStore, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		s, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMongo:
		s, err := OpenMongo(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
