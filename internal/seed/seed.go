// Package seed loads profile fixtures and writes them to a profile store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"MeAPI_Playground/internal/models"
	"MeAPI_Playground/internal/storage"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var sampleProfile []byte

// Writer is the subset of storage.ProfileStore used for seeding.
type Writer interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
	ReplaceAllProfiles(ctx context.Context, p *models.Profile) error
}

// Decode parses a YAML profile, normalises it and checks required fields.
// Unknown keys are rejected so typos in fixtures do not pass silently.
func Decode(r io.Reader) (models.Profile, error) {
	var p models.Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, errors.New("profile fixture is empty")
		}
		return p, fmt.Errorf("decoding profile fixture: %w", err)
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Sample returns the embedded sample profile.
func Sample() (models.Profile, error) {
	return Decode(bytes.NewReader(sampleProfile))
}

// LoadFile reads a fixture from path, or the embedded sample when path is empty.
func LoadFile(path string) (models.Profile, error) {
	if path == "" {
		return Sample()
	}
	f, err := os.Open(path)
	if err != nil {
		return models.Profile{}, fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Apply writes p to the store. Unless appendOnly is set every existing
// profile is removed first.
func Apply(ctx context.Context, w Writer, p *models.Profile, appendOnly bool) error {
	if appendOnly {
		if err := w.CreateProfile(ctx, p); err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		return nil
	}
	if err := w.ReplaceAllProfiles(ctx, p); err != nil {
		return fmt.Errorf("replacing profiles: %w", err)
	}
	return nil
}

var _ Writer = (storage.ProfileStore)(nil)
