package portfolio

import (
	"context"
	"errors"
	"testing"

	"MeAPI_Playground/internal/models"
	"MeAPI_Playground/internal/storage"
)

type fakeStore struct {
	profile *models.Profile
	loadErr error
	saveErr error
	loads   int
	saved   *models.Profile
	created *models.Profile
}

func (f *fakeStore) LoadLatestProfile(ctx context.Context) (models.Profile, error) {
	f.loads++
	if f.loadErr != nil {
		return models.Profile{}, f.loadErr
	}
	if f.profile == nil {
		return models.Profile{}, storage.ErrProfileNotFound
	}
	return *f.profile, nil
}

func (f *fakeStore) CreateProfile(ctx context.Context, p *models.Profile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	p.ID = "new-id"
	copied := *p
	f.created = &copied
	return nil
}

func (f *fakeStore) SaveProfile(ctx context.Context, p *models.Profile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *p
	f.saved = &copied
	return nil
}

func TestService_EmptyStoreYieldsNotFound(t *testing.T) {
	svc := NewService(&fakeStore{})
	ctx := context.Background()

	if _, err := svc.Profile(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Profile: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Projects(ctx, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Projects: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Search(ctx, "go"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Search: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.TopSkills(ctx, DefaultTopSkillsLimit); !errors.Is(err, ErrNotFound) {
		t.Errorf("TopSkills: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, models.ProfilePatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProfile: expected ErrNotFound, got %v", err)
	}
}

func TestService_SearchValidatesBeforeLoading(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	_, err := svc.Search(context.Background(), "")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if store.loads != 0 {
		t.Errorf("store was read %d times", store.loads)
	}
}

func TestService_StoreFailureIsUnavailable(t *testing.T) {
	cause := errors.New("disk on fire")
	svc := NewService(&fakeStore{loadErr: cause})

	_, err := svc.TopSkills(context.Background(), 10)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected the cause to be kept, got %v", err)
	}
}

func TestService_ReadsFreshProfileEachCall(t *testing.T) {
	p := sampleProfile()
	store := &fakeStore{profile: &p}
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.Projects(ctx, "react"); err != nil {
		t.Fatal(err)
	}
	p.Projects = nil
	projects, err := svc.Projects(ctx, "react")
	if err != nil {
		t.Fatal(err)
	}
	if projects == nil || len(projects) != 0 {
		t.Fatalf("expected empty non-nil projects after store change, got %#v", projects)
	}
	if store.loads != 2 {
		t.Errorf("expected 2 loads, got %d", store.loads)
	}
}

func TestService_CreateProfile(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	got, err := svc.CreateProfile(context.Background(), models.Profile{Name: " Sam ", Email: "SAM@Example.com"})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if got.ID != "new-id" || got.Email != "sam@example.com" || got.Name != "Sam" {
		t.Errorf("unexpected profile: %+v", got)
	}
	if store.created == nil {
		t.Fatal("store was not called")
	}
}

func TestService_CreateProfileInvalid(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	_, err := svc.CreateProfile(context.Background(), models.Profile{Name: "Sam"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if store.created != nil {
		t.Error("invalid profile reached the store")
	}
}

func TestService_CreateProfileDuplicateEmail(t *testing.T) {
	svc := NewService(&fakeStore{saveErr: storage.ErrEmailExists})

	_, err := svc.CreateProfile(context.Background(), models.Profile{Name: "Sam", Email: "sam@example.com"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestService_UpdateProfileMergesPatch(t *testing.T) {
	p := sampleProfile()
	store := &fakeStore{profile: &p}
	svc := NewService(store)

	got, err := svc.UpdateProfile(context.Background(), models.ProfilePatch{Bio: models.Some("  Now writing Rust.  ")})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Bio != "Now writing Rust." {
		t.Errorf("Bio = %q", got.Bio)
	}
	if got.Name != p.Name || len(got.Projects) != len(p.Projects) {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if store.saved == nil || store.saved.ID != p.ID {
		t.Fatalf("expected profile %q to be saved, got %+v", p.ID, store.saved)
	}
}

func TestService_UpdateProfileRejectsBlankName(t *testing.T) {
	p := sampleProfile()
	store := &fakeStore{profile: &p}
	svc := NewService(store)

	_, err := svc.UpdateProfile(context.Background(), models.ProfilePatch{Name: models.Some("  ")})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if store.saved != nil {
		t.Error("invalid profile was saved")
	}
}
