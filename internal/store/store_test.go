package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// insertSession is a test helper that inserts a session completed at the given time.
func insertSession(t *testing.T, s *Store, at time.Time, minutes int) int64 {
	t.Helper()
	res, err := s.db.Exec(
		`INSERT INTO sessions (completed_at, duration_minutes) VALUES (?, ?)`,
		at.UTC().Format(time.RFC3339), minutes,
	)
	if err != nil {
		t.Fatalf("insert session: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// failOn installs a trigger that aborts the given statement kind on table.
func failOn(t *testing.T, s *Store, name, when string) {
	t.Helper()
	_, err := s.db.Exec(`CREATE TRIGGER ` + name + ` ` + when + ` BEGIN SELECT RAISE(ABORT, 'disk full'); END`)
	if err != nil {
		t.Fatalf("create trigger: %v", err)
	}
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
	if !s.Persistent() {
		t.Fatal("sqlite store should be persistent")
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/progress.db"
	s, err := New(path, Defaults{Theme: "light", DurationMinutes: 25})
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen, should succeed and not re-migrate
	s2, err := New(path, Defaults{Theme: "light", DurationMinutes: 25})
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestNewUnavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The parent "directory" is a regular file, so it cannot be created.
	_, err := New(filepath.Join(blocker, "progress.db"), Defaults{Theme: "light", DurationMinutes: 25})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
	if err := s.ensureDefaults(Defaults{Theme: "dark", DurationMinutes: 50}); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	theme, _ := s.GetSetting(KeyTheme)
	if theme != "light" {
		t.Fatalf("seeding must not overwrite, got theme %q", theme)
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)

	defaults := map[string]string{
		KeyTheme:    "light",
		KeyDuration: "25",
	}
	for k, expected := range defaults {
		val, err := s.GetSetting(k)
		if err != nil {
			t.Fatalf("GetSetting(%q): %v", k, err)
		}
		if val != expected {
			t.Fatalf("GetSetting(%q) = %q, want %q", k, val, expected)
		}
	}
}

func TestSettingsSeededFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	s, err := New(path, Defaults{Theme: "dark", DurationMinutes: 45})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	theme, _ := s.GetSetting(KeyTheme)
	dur, _ := s.GetSetting(KeyDuration)
	if theme != "dark" || dur != "45" {
		t.Fatalf("got theme=%q duration=%q", theme, dur)
	}
}

func TestGetSettingNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSetting("nonexistent")
	if !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}

func TestSaveSettings(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveSettings("dark", 40); err != nil {
		t.Fatal(err)
	}
	theme, _ := s.GetSetting(KeyTheme)
	dur, _ := s.GetSetting(KeyDuration)
	if theme != "dark" || dur != "40" {
		t.Fatalf("got theme=%q duration=%q", theme, dur)
	}
}

func TestSaveSettingsRestoresMissingRow(t *testing.T) {
	s := newTestStore(t)
	s.db.Exec(`DELETE FROM settings WHERE key = 'duration'`)

	if err := s.SaveSettings("light", 30); err != nil {
		t.Fatal(err)
	}
	dur, err := s.GetSetting(KeyDuration)
	if err != nil || dur != "30" {
		t.Fatalf("got %q, %v", dur, err)
	}
}

func TestSaveSettingsAtomic(t *testing.T) {
	s := newTestStore(t)
	failOn(t, s, "fail_duration", `BEFORE UPDATE ON settings WHEN NEW.key = 'duration'`)

	if err := s.SaveSettings("dark", 40); err == nil {
		t.Fatal("expected error from failing duration write")
	}

	// The theme update ran first and must have been rolled back.
	theme, _ := s.GetSetting(KeyTheme)
	dur, _ := s.GetSetting(KeyDuration)
	if theme != "light" || dur != "25" {
		t.Fatalf("settings should be unchanged, got theme=%q duration=%q", theme, dur)
	}
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	defaults := Defaults{Theme: "light", DurationMinutes: 25}

	s, err := New(path, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSettings("dark", 40); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := New(path, defaults)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	theme, _ := s2.GetSetting(KeyTheme)
	dur, _ := s2.GetSetting(KeyDuration)
	if theme != "dark" || dur != "40" {
		t.Fatalf("after reopen got theme=%q duration=%q", theme, dur)
	}
}

// ============================================================
// Sessions
// ============================================================

func TestCompleteSessionCounts(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.CompleteSession(25, "light")
	if err != nil {
		t.Fatal(err)
	}
	if sess.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if sess.CompletedAt.IsZero() {
		t.Fatal("CompletedAt should be set")
	}

	n, err := s.CountSessions()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 session, got %d", n)
	}
}

func TestCountSessionsEmpty(t *testing.T) {
	s := newTestStore(t)
	n, err := s.CountSessions()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestCompleteSessionInsertFailureLeavesNoRow(t *testing.T) {
	s := newTestStore(t)
	failOn(t, s, "fail_insert", `BEFORE INSERT ON sessions`)

	if _, err := s.CompleteSession(25, "light"); err == nil {
		t.Fatal("expected error")
	}
	n, _ := s.CountSessions()
	if n != 0 {
		t.Fatalf("failed insert must not leave a row, got %d", n)
	}
}

func TestCompleteSession(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.CompleteSession(40, "dark")
	if err != nil {
		t.Fatal(err)
	}
	if sess.DurationMinutes != 40 {
		t.Fatalf("expected 40, got %d", sess.DurationMinutes)
	}
	theme, _ := s.GetSetting(KeyTheme)
	dur, _ := s.GetSetting(KeyDuration)
	if theme != "dark" || dur != "40" {
		t.Fatalf("settings not saved: theme=%q duration=%q", theme, dur)
	}
}

func TestCompleteSessionAtomic(t *testing.T) {
	s := newTestStore(t)
	failOn(t, s, "fail_theme", `BEFORE UPDATE ON settings WHEN NEW.key = 'theme'`)

	if _, err := s.CompleteSession(40, "dark"); err == nil {
		t.Fatal("expected error")
	}
	n, _ := s.CountSessions()
	if n != 0 {
		t.Fatalf("session insert should be rolled back, got %d rows", n)
	}
}

func TestCompleteSessionReturnsStoredRow(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.CompleteSession(30, "light")
	if err != nil {
		t.Fatal(err)
	}
	list, err := s.ListSessions(SessionFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 session, got %d", len(list))
	}
	got := list[0]
	if got.ID != sess.ID || got.DurationMinutes != sess.DurationMinutes || !got.CompletedAt.Equal(sess.CompletedAt) {
		t.Fatalf("returned %+v, stored %+v", *sess, got)
	}
}

func TestListSessions(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()
	insertSession(t, s, now.Add(-48*time.Hour), 25)
	insertSession(t, s, now.Add(-2*time.Hour), 30)
	insertSession(t, s, now.Add(-1*time.Hour), 45)

	all, err := s.ListSessions(SessionFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	if all[0].DurationMinutes != 25 || all[2].DurationMinutes != 45 {
		t.Fatal("sessions should be in insertion order")
	}

	from := now.Add(-24 * time.Hour)
	recent, _ := s.ListSessions(SessionFilter{From: &from})
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent sessions, got %d", len(recent))
	}

	limited, _ := s.ListSessions(SessionFilter{Limit: 1})
	if len(limited) != 1 {
		t.Fatalf("expected 1 session with limit, got %d", len(limited))
	}
}

func TestGetDailyCounts(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	insertSession(t, s, day, 25)
	insertSession(t, s, day.Add(2*time.Hour), 30)
	insertSession(t, s, day.Add(24*time.Hour), 25)
	insertSession(t, s, day.Add(10*24*time.Hour), 25) // outside range

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	counts, err := s.GetDailyCounts(from, from.AddDate(0, 0, 7))
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 days, got %d: %+v", len(counts), counts)
	}
	if counts[0].Date != "2026-03-10" || counts[0].Sessions != 2 || counts[0].Minutes != 55 {
		t.Fatalf("unexpected first day: %+v", counts[0])
	}
	if counts[1].Date != "2026-03-11" || counts[1].Sessions != 1 {
		t.Fatalf("unexpected second day: %+v", counts[1])
	}
}

func TestGetDailyCountsEmpty(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	counts, err := s.GetDailyCounts(now.Add(-time.Hour), now)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected no counts, got %d", len(counts))
	}
}

func TestSessionsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	defaults := Defaults{Theme: "light", DurationMinutes: 25}

	s, _ := New(path, defaults)
	s.CompleteSession(25, "light")
	s.CompleteSession(25, "light")
	s.Close()

	s2, _ := New(path, defaults)
	defer s2.Close()
	n, _ := s2.CountSessions()
	if n != 2 {
		t.Fatalf("expected 2 sessions after reopen, got %d", n)
	}
}

// ============================================================
// Discard
// ============================================================

func TestDiscard(t *testing.T) {
	var d Discard
	if d.Persistent() {
		t.Fatal("Discard must not be persistent")
	}
	if _, err := d.CompleteSession(25, "dark"); err != nil {
		t.Fatalf("writes should be no-ops, got %v", err)
	}
	if err := d.SaveSettings("dark", 40); err != nil {
		t.Fatalf("writes should be no-ops, got %v", err)
	}
	n, _ := d.CountSessions()
	if n != 0 {
		t.Fatalf("Discard should report 0 sessions, got %d", n)
	}
	if _, err := d.GetSetting(KeyTheme); !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}
