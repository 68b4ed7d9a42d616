package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// ErrSettingNotFound is returned by GetSetting when the key has no row.
var ErrSettingNotFound = errors.New("setting not found")

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get setting %q: %w", key, ErrSettingNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

// SaveSettings writes theme and duration together. If either write fails
// neither value changes.
func (s *Store) SaveSettings(theme string, minutes int) error {
	err := s.withTx(func(tx *sql.Tx) error {
		return saveSettingsTx(tx, theme, minutes)
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func saveSettingsTx(tx *sql.Tx, theme string, minutes int) error {
	if err := setSettingTx(tx, KeyTheme, theme); err != nil {
		return err
	}
	return setSettingTx(tx, KeyDuration, strconv.Itoa(minutes))
}

func setSettingTx(tx *sql.Tx, key, value string) error {
	res, err := tx.Exec(`UPDATE settings SET value = ? WHERE key = ?`, value, key)
	if err != nil {
		return fmt.Errorf("update setting %q: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	if _, err := tx.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
		return fmt.Errorf("insert setting %q: %w", key, err)
	}
	return nil
}
