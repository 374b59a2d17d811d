package watchlist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/scoutarr/internal/media"
)

// Store provides access to watchlist rows.
type Store struct {
	db *sql.DB
}

// NewStore creates a new watchlist store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// mapSQLiteError converts SQLite errors to custom error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	return err
}

// marshalSeasons encodes a season selection for storage. nil stays
// NULL so "no selection" survives a round trip distinct from "empty
// selection".
func marshalSeasons(seasons []int) (any, error) {
	if seasons == nil {
		return nil, nil
	}
	data, err := json.Marshal(seasons)
	if err != nil {
		return nil, fmt.Errorf("marshal seasons: %w", err)
	}
	return string(data), nil
}

func unmarshalSeasons(raw sql.NullString) ([]int, error) {
	if !raw.Valid {
		return nil, nil
	}
	var seasons []int
	if err := json.Unmarshal([]byte(raw.String), &seasons); err != nil {
		return nil, fmt.Errorf("unmarshal seasons: %w", err)
	}
	if seasons == nil {
		seasons = []int{}
	}
	return seasons, nil
}

const itemColumns = `id, tmdb_id, media_type, title, poster_path, notes, status, selected_seasons, is_season_update, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*Item, error) {
	item := &Item{}
	var seasons sql.NullString
	err := row.Scan(
		&item.ID, &item.TMDBID, &item.MediaType, &item.Title, &item.PosterPath,
		&item.Notes, &item.Status, &seasons, &item.IsSeasonUpdate,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.SelectedSeasons, err = unmarshalSeasons(seasons)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Add inserts a new watchlist item. The create is idempotent: if a row
// with the same (tmdb_id, media_type) already exists it is returned
// untouched, with no update-on-conflict.
func (s *Store) Add(item *Item) (*Item, error) {
	seasons, err := marshalSeasons(item.SelectedSeasons)
	if err != nil {
		return nil, err
	}
	if item.Status == "" {
		item.Status = StatusPending
	}

	now := time.Now().UTC()
	result, err := s.db.Exec(`
		INSERT INTO watchlist (tmdb_id, media_type, title, poster_path, notes, status, selected_seasons, is_season_update, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.TMDBID, item.MediaType, item.Title, item.PosterPath, item.Notes,
		item.Status, seasons, item.IsSeasonUpdate, now, now,
	)
	if err != nil {
		if mapped := mapSQLiteError(err); mapped == ErrDuplicate {
			return s.Get(item.TMDBID, item.MediaType)
		}
		return nil, fmt.Errorf("insert watchlist item: %w", mapSQLiteError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now
	return item, nil
}

// Get returns the item for the natural key.
// Returns ErrNotFound if no such item exists.
func (s *Store) Get(tmdbID int64, mediaType media.Type) (*Item, error) {
	row := s.db.QueryRow(`SELECT `+itemColumns+` FROM watchlist WHERE tmdb_id = ? AND media_type = ?`, tmdbID, mediaType)
	item, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("get watchlist item %d/%s: %w", tmdbID, mediaType, mapSQLiteError(err))
	}
	return item, nil
}

// List returns all watchlist items, newest first.
func (s *Store) List() ([]*Item, error) {
	rows, err := s.db.Query(`SELECT ` + itemColumns + ` FROM watchlist ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan watchlist item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatus sets the item's status.
// Returns ErrNotFound if no such item exists.
func (s *Store) UpdateStatus(tmdbID int64, mediaType media.Type, status Status) error {
	result, err := s.db.Exec(`
		UPDATE watchlist SET status = ?, updated_at = ?
		WHERE tmdb_id = ? AND media_type = ?`,
		status, time.Now().UTC(), tmdbID, mediaType,
	)
	if err != nil {
		return fmt.Errorf("update watchlist status %d/%s: %w", tmdbID, mediaType, mapSQLiteError(err))
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("update watchlist status %d/%s: %w", tmdbID, mediaType, ErrNotFound)
	}
	return nil
}

// UpdateSeasons rewrites the stored season selection for a show.
// Returns ErrNotFound if no such item exists.
func (s *Store) UpdateSeasons(tmdbID int64, seasons []int) error {
	encoded, err := marshalSeasons(seasons)
	if err != nil {
		return err
	}
	result, err := s.db.Exec(`
		UPDATE watchlist SET selected_seasons = ?, is_season_update = 1, updated_at = ?
		WHERE tmdb_id = ? AND media_type = ?`,
		encoded, time.Now().UTC(), tmdbID, media.TypeShow,
	)
	if err != nil {
		return fmt.Errorf("update watchlist seasons %d: %w", tmdbID, mapSQLiteError(err))
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("update watchlist seasons %d: %w", tmdbID, ErrNotFound)
	}
	return nil
}

// Delete removes the item for the natural key.
// Returns ErrNotFound if no such item exists.
func (s *Store) Delete(tmdbID int64, mediaType media.Type) error {
	result, err := s.db.Exec(`DELETE FROM watchlist WHERE tmdb_id = ? AND media_type = ?`, tmdbID, mediaType)
	if err != nil {
		return fmt.Errorf("delete watchlist item %d/%s: %w", tmdbID, mediaType, mapSQLiteError(err))
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("delete watchlist item %d/%s: %w", tmdbID, mediaType, ErrNotFound)
	}
	return nil
}

// DeleteBatch removes all items matching the given external IDs and
// media type. Returns the number of rows actually removed, which may
// be fewer than requested.
func (s *Store) DeleteBatch(tmdbIDs []int64, mediaType media.Type) (int64, error) {
	if len(tmdbIDs) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(tmdbIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(tmdbIDs)+1)
	for _, id := range tmdbIDs {
		args = append(args, id)
	}
	args = append(args, mediaType)

	result, err := s.db.Exec(`DELETE FROM watchlist WHERE tmdb_id IN (`+placeholders+`) AND media_type = ?`, args...)
	if err != nil {
		return 0, fmt.Errorf("delete watchlist batch: %w", mapSQLiteError(err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
