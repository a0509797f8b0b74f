package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"MeAPI_Playground/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// openMongoTestStore connects to MONGODB_TEST_URI and uses a throwaway database.
func openMongoTestStore(t *testing.T) *MongoStore {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	database := fmt.Sprintf("portfolio_test_%d", time.Now().UnixNano())
	s, err := OpenMongo(ctx, uri, database)
	if err != nil {
		t.Fatalf("OpenMongo: %v", err)
	}
	t.Cleanup(func() {
		s.client.Database(database).Drop(context.Background())
		s.Close()
	})
	return s
}

func TestLatestProfileSort_BreaksTiesBySeq(t *testing.T) {
	want := bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: -1}}
	if len(latestProfileSort) != len(want) {
		t.Fatalf("sort = %v, want %v", latestProfileSort, want)
	}
	for i := range want {
		if latestProfileSort[i] != want[i] {
			t.Errorf("sort[%d] = %v, want %v", i, latestProfileSort[i], want[i])
		}
	}
}

func TestMongoStore_SameTimestampUsesInsertOrder(t *testing.T) {
	s := openMongoTestStore(t)
	ctx := context.Background()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	first := testProfile("First", "first@example.com")
	second := testProfile("Second", "second@example.com")
	for _, p := range []*models.Profile{first, second} {
		if err := s.CreateProfile(ctx, p); err != nil {
			t.Fatalf("CreateProfile: %v", err)
		}
	}
	if second.Seq <= first.Seq {
		t.Fatalf("seq not increasing: %d then %d", first.Seq, second.Seq)
	}

	got, err := s.LoadLatestProfile(ctx)
	if err != nil {
		t.Fatalf("LoadLatestProfile: %v", err)
	}
	if got.Name != "Second" {
		t.Errorf("latest = %q, want Second", got.Name)
	}

	// Saving keeps the sequence, so an update does not reorder profiles.
	got.Bio = "updated"
	if err := s.SaveProfile(ctx, &got); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	again, err := s.LoadLatestProfile(ctx)
	if err != nil {
		t.Fatalf("LoadLatestProfile: %v", err)
	}
	if again.Name != "Second" || again.Seq != second.Seq {
		t.Errorf("after save latest = %q seq %d", again.Name, again.Seq)
	}
}
