package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Keys understood by the rest of the system. Credential keys are the
// ones stored encrypted.
const (
	KeyTMDBAPIKey       = "tmdb_api_key"
	KeyRadarrURL        = "radarr_url"
	KeyRadarrAPIKey     = "radarr_api_key"
	KeyRadarrRootFolder = "radarr_root_folder"
	KeySonarrURL        = "sonarr_url"
	KeySonarrAPIKey     = "sonarr_api_key"
	KeySonarrRootFolder = "sonarr_root_folder"
)

// ErrNotFound indicates the requested key doesn't exist.
var ErrNotFound = errors.New("setting not found")

var encryptedKeys = map[string]bool{
	KeyTMDBAPIKey:   true,
	KeyRadarrAPIKey: true,
	KeySonarrAPIKey: true,
}

// Setting is one key/value row as exposed to callers. Encrypted values
// are masked; use Store.Value for the plaintext.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Encrypted bool      `json:"encrypted"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists settings. Values for credential keys pass through the
// cipher on the way in and out.
type Store struct {
	db     *sql.DB
	cipher *Cipher
}

// NewStore creates a settings store.
func NewStore(db *sql.DB, cipher *Cipher) *Store {
	return &Store{db: db, cipher: cipher}
}

// Set writes a value. Credential keys are encrypted before storage.
func (s *Store) Set(key, value string) error {
	encrypted := encryptedKeys[key]
	if encrypted {
		var err error
		value, err = s.cipher.Encrypt(value)
		if err != nil {
			return fmt.Errorf("encrypt setting %s: %w", key, err)
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (key, value, encrypted, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, encrypted = excluded.encrypted, updated_at = excluded.updated_at`,
		key, value, encrypted, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// Value returns the plaintext value for a key, decrypting if needed.
// This is for internal collaborators that talk to the external
// services; API responses must use List or Get instead.
func (s *Store) Value(key string) (string, error) {
	var value string
	var encrypted bool
	err := s.db.QueryRow(`SELECT value, encrypted FROM settings WHERE key = ?`, key).Scan(&value, &encrypted)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("setting %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}

	if encrypted {
		value, err = s.cipher.Decrypt(value)
		if err != nil {
			return "", fmt.Errorf("decrypt setting %s: %w", key, err)
		}
	}
	return value, nil
}

// Get returns one setting with credential values masked.
func (s *Store) Get(key string) (*Setting, error) {
	row := s.db.QueryRow(`SELECT key, value, encrypted, updated_at FROM settings WHERE key = ?`, key)
	setting, err := s.scanMasked(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("setting %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	return setting, nil
}

// List returns all settings with credential values masked.
func (s *Store) List() ([]*Setting, error) {
	rows, err := s.db.Query(`SELECT key, value, encrypted, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var settings []*Setting
	for rows.Next() {
		setting, err := s.scanMasked(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

// Delete removes a key. Returns ErrNotFound if it doesn't exist.
func (s *Store) Delete(key string) error {
	result, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("delete setting %s: %w", key, ErrNotFound)
	}
	return nil
}

func (s *Store) scanMasked(row interface{ Scan(...any) error }) (*Setting, error) {
	setting := &Setting{}
	if err := row.Scan(&setting.Key, &setting.Value, &setting.Encrypted, &setting.UpdatedAt); err != nil {
		return nil, err
	}
	if setting.Encrypted {
		plaintext, err := s.cipher.Decrypt(setting.Value)
		if err != nil {
			return nil, err
		}
		setting.Value = Mask(plaintext)
	}
	return setting, nil
}

// Mask hides a secret, leaving only the last 4 characters visible.
func Mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
