package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/antiprocrastinator/internal/store"
)

// ToCSV writes one row per session. sessions must be the full log in
// completion order so that each row lines up with the quote it unlocked.
func ToCSV(sessions []store.Session, quotes []string, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close csv file: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)

	// Header
	if err := w.Write([]string{"ID", "Completed", "Duration (min)", "Duration", "Unlocked Quote"}); err != nil {
		return err
	}

	for i, s := range sessions {
		row := []string{
			strconv.FormatInt(s.ID, 10),
			s.CompletedAt.Local().Format(time.RFC3339),
			strconv.Itoa(s.DurationMinutes),
			formatDuration(s.DurationMinutes),
			unlockedQuote(quotes, i),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	return nil
}

func formatDuration(mins int) string {
	return fmt.Sprintf("%02d:%02d:00", mins/60, mins%60)
}

// unlockedQuote is the quote revealed by the n-th session (0-based), or ""
// once the collection was already complete.
func unlockedQuote(quotes []string, n int) string {
	if n < len(quotes) {
		return quotes[n]
	}
	return ""
}
