// Package storage provides SQLite-based persistence for opponent profiles,
// so a generated opponent can be saved by name and faced again later.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tennis/internal/engine"
)

// Store manages the SQLite database connection for profile persistence.
type Store struct {
	db *sql.DB
}

// SavedProfile is a stored opponent profile with its bookkeeping fields.
type SavedProfile struct {
	ID        int64
	Profile   engine.Profile
	CreatedAt time.Time
}

// shotColumns fixes the column order for the per-shot skill values.
var shotColumns = []struct {
	name string
	shot engine.ShotType
}{
	{"first_serve", engine.FirstServe},
	{"second_serve", engine.SecondServe},
	{"forehand_cc", engine.ForehandCrossCourt},
	{"forehand_dtl", engine.ForehandDownTheLine},
	{"backhand_cc", engine.BackhandCrossCourt},
	{"backhand_dtl", engine.BackhandDownTheLine},
	{"drop_shot", engine.DropShot},
	{"lob", engine.Lob},
	{"slice", engine.Slice},
	{"approach", engine.ApproachShot},
	{"volley", engine.Volley},
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	var cols strings.Builder
	for _, c := range shotColumns {
		fmt.Fprintf(&cols, "%s REAL NOT NULL,\n\t\t\t", c.name)
	}

	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			style TEXT NOT NULL,
			%sstrengths TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);
	`, cols.String())

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProfile stores a profile, replacing any existing profile with the same
// name. The profile is validated first so the table never holds a profile the
// engine would reject. Returns the row ID.
func (s *Store) SaveProfile(p engine.Profile) (int64, error) {
	if p.Name == "" {
		return 0, fmt.Errorf("storage: profile has no name")
	}
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("storage: refusing to save: %w", err)
	}

	cols := []string{"name", "style"}
	args := []any{p.Name, p.Style.String()}
	for _, c := range shotColumns {
		cols = append(cols, c.name)
		args = append(args, p.Skill(c.shot))
	}
	cols = append(cols, "strengths")
	args = append(args, encodeStrengths(p))

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf(
		"INSERT OR REPLACE INTO profiles (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders,
	)

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save profile: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// ProfileByName retrieves a stored profile, or nil if no profile has that name.
func (s *Store) ProfileByName(name string) (*SavedProfile, error) {
	row := s.db.QueryRow(selectQuery()+" WHERE name = ?", name)
	sp, err := scanProfile(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile: %w", err)
	}
	return sp, nil
}

// ListProfiles retrieves every stored profile ordered by name.
func (s *Store) ListProfiles() ([]SavedProfile, error) {
	rows, err := s.db.Query(selectQuery() + " ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var out []SavedProfile
	for rows.Next() {
		sp, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, *sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteProfile removes a stored profile by name. Deleting an absent name is
// not an error.
func (s *Store) DeleteProfile(name string) error {
	if _, err := s.db.Exec("DELETE FROM profiles WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete profile: %w", err)
	}
	return nil
}

func selectQuery() string {
	cols := []string{"id", "name", "style"}
	for _, c := range shotColumns {
		cols = append(cols, c.name)
	}
	cols = append(cols, "strengths", "created_at")
	return "SELECT " + strings.Join(cols, ", ") + " FROM profiles"
}

func scanProfile(scan func(...any) error) (*SavedProfile, error) {
	var (
		sp        SavedProfile
		styleName string
		skills    = make([]float64, len(shotColumns))
		strengths string
		createdAt any
	)

	dest := []any{&sp.ID, &sp.Profile.Name, &styleName}
	for i := range skills {
		dest = append(dest, &skills[i])
	}
	dest = append(dest, &strengths, &createdAt)

	if err := scan(dest...); err != nil {
		return nil, err
	}

	sp.Profile.Skills = make(map[engine.ShotType]float64, len(shotColumns))
	for i, c := range shotColumns {
		sp.Profile.Skills[c.shot] = skills[i]
	}
	sp.Profile.Strengths = decodeStrengths(strengths)
	if style, ok := engine.StyleByName(styleName); ok {
		sp.Profile.Style = style
	}

	// The driver may hand the datetime back as time.Time or string.
	switch v := createdAt.(type) {
	case time.Time:
		sp.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			sp.CreatedAt = parsed
		}
	}

	return &sp, nil
}

// encodeStrengths joins the strength shot columns into a comma-separated list.
func encodeStrengths(p engine.Profile) string {
	var names []string
	for _, c := range shotColumns {
		if p.IsStrength(c.shot) {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, ",")
}

func decodeStrengths(encoded string) map[engine.ShotType]bool {
	out := make(map[engine.ShotType]bool)
	if encoded == "" {
		return out
	}
	for _, name := range strings.Split(encoded, ",") {
		for _, c := range shotColumns {
			if c.name == name {
				out[c.shot] = true
			}
		}
	}
	return out
}
