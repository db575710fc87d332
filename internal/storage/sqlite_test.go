package storage

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tennis/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rng := rand.New(rand.NewSource(1))
	saved := engine.RandomOpponent(rng, "Rival", engine.DefaultSkillRange())
	if _, err := store.SaveProfile(saved); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	got, err := store.ProfileByName("Rival")
	if err != nil {
		t.Fatalf("ProfileByName() failed: %v", err)
	}
	if got == nil {
		t.Fatal("ProfileByName() returned nil for saved profile")
	}

	if got.Profile.Name != "Rival" {
		t.Errorf("name = %q", got.Profile.Name)
	}
	if got.Profile.Style != saved.Style {
		t.Errorf("style = %v, want %v", got.Profile.Style, saved.Style)
	}
	for _, shot := range engine.AllShots() {
		if got.Profile.Skill(shot) != saved.Skill(shot) {
			t.Errorf("%v skill = %v, want %v", shot, got.Profile.Skill(shot), saved.Skill(shot))
		}
		if got.Profile.IsStrength(shot) != saved.IsStrength(shot) {
			t.Errorf("%v strength mismatch", shot)
		}
	}
	if err := got.Profile.Validate(); err != nil {
		t.Errorf("loaded profile invalid: %v", err)
	}
}

func TestStoreSaveReplacesByName(t *testing.T) {
	store := openTestStore(t)

	p := engine.DefaultPlayerProfile()
	p.Name = "Rival"
	if _, err := store.SaveProfile(p); err != nil {
		t.Fatal(err)
	}

	p.Skills[engine.Volley] = 0.9
	if _, err := store.SaveProfile(p); err != nil {
		t.Fatal(err)
	}

	got, err := store.ProfileByName("Rival")
	if err != nil {
		t.Fatal(err)
	}
	if got.Profile.Skill(engine.Volley) != 0.9 {
		t.Errorf("volley = %v after replace, want 0.9", got.Profile.Skill(engine.Volley))
	}

	list, err := store.ListProfiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("profiles = %d after replace, want 1", len(list))
	}
}

func TestStoreListOrderedByName(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"Chris", "Andre", "Boris"} {
		p := engine.DefaultPlayerProfile()
		p.Name = name
		if _, err := store.SaveProfile(p); err != nil {
			t.Fatal(err)
		}
	}

	list, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("profiles = %d, want 3", len(list))
	}
	want := []string{"Andre", "Boris", "Chris"}
	for i, sp := range list {
		if sp.Profile.Name != want[i] {
			t.Errorf("profile %d = %q, want %q", i, sp.Profile.Name, want[i])
		}
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	p := engine.DefaultPlayerProfile()
	p.Name = "Gone"
	if _, err := store.SaveProfile(p); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteProfile("Gone"); err != nil {
		t.Fatalf("DeleteProfile() failed: %v", err)
	}
	got, err := store.ProfileByName("Gone")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("profile still present after delete")
	}

	// Deleting an absent name is fine.
	if err := store.DeleteProfile("NeverExisted"); err != nil {
		t.Errorf("deleting absent profile: %v", err)
	}
}

func TestStoreRejectsInvalidProfile(t *testing.T) {
	store := openTestStore(t)

	p := engine.DefaultPlayerProfile()
	p.Name = "Broken"
	delete(p.Skills, engine.Lob)
	if _, err := store.SaveProfile(p); err == nil {
		t.Error("expected error saving profile with missing skill")
	}

	p = engine.DefaultPlayerProfile()
	p.Name = ""
	if _, err := store.SaveProfile(p); err == nil {
		t.Error("expected error saving profile without a name")
	}
}

func TestStoreMissingProfileIsNil(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ProfileByName("Nobody")
	if err != nil {
		t.Fatalf("ProfileByName() failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown profile")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
