package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pokesprite/pokesprite/internal/services/findnew/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestGetDistanceMissing(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetDistance(context.Background(), testKey()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPutGetDistanceRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	key := testKey()
	if err := store.PutDistance(context.Background(), key, 0.042); err != nil {
		t.Fatalf("put distance: %v", err)
	}
	got, err := store.GetDistance(context.Background(), key)
	if err != nil {
		t.Fatalf("get distance: %v", err)
	}
	if got != 0.042 {
		t.Fatalf("distance = %v, want 0.042", got)
	}

	if err := store.PutDistance(context.Background(), key, 0.5); err != nil {
		t.Fatalf("replace distance: %v", err)
	}
	got, err = store.GetDistance(context.Background(), key)
	if err != nil || got != 0.5 {
		t.Fatalf("replaced distance = %v, %v", got, err)
	}
}

func TestGetDistanceMissesChangedFile(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	key := testKey()
	if err := store.PutDistance(context.Background(), key, 0.01); err != nil {
		t.Fatalf("put distance: %v", err)
	}

	edited := key
	edited.Old.ModTime = key.Old.ModTime.Add(time.Second)
	if _, err := store.GetDistance(context.Background(), edited); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("edited file err = %v, want ErrNotFound", err)
	}

	otherTool := key
	otherTool.Tool = "/opt/other/puzzle-diff"
	if _, err := store.GetDistance(context.Background(), otherTool); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("other tool err = %v, want ErrNotFound", err)
	}

	swapped := storage.PairKey{Tool: key.Tool, New: key.Old, Old: key.New}
	if _, err := store.GetDistance(context.Background(), swapped); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("swapped pair err = %v, want ErrNotFound", err)
	}
}

func TestPutDistanceRequiresPaths(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.PutDistance(context.Background(), storage.PairKey{}, 1); err == nil {
		t.Fatal("expected missing path error")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "distances.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.PutDistance(context.Background(), testKey(), 0.3); err != nil {
		t.Fatalf("put distance: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	got, err := reopened.GetDistance(context.Background(), testKey())
	if err != nil || got != 0.3 {
		t.Fatalf("distance after reopen = %v, %v", got, err)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.GetDistance(ctx, testKey()); !errors.Is(err, context.Canceled) {
		t.Fatalf("get err = %v, want context.Canceled", err)
	}
	if err := store.PutDistance(ctx, testKey(), 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("put err = %v, want context.Canceled", err)
	}
}

func testKey() storage.PairKey {
	stamp := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	return storage.PairKey{
		Tool: "puzzle-diff",
		New:  storage.FileStamp{Path: "dump/c.png", Size: 1204, ModTime: stamp},
		Old:  storage.FileStamp{Path: "icons/a.png", Size: 980, ModTime: stamp.Add(-time.Hour)},
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "distances.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
