package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/antiprocrastinator/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at" yaml:"exported_at"`
	Count      int           `json:"count" yaml:"count"`
	Unlocked   int           `json:"unlocked" yaml:"unlocked"`
	Total      int           `json:"total" yaml:"total"`
	Sessions   []jsonSession `json:"sessions" yaml:"sessions"`
}

type jsonSession struct {
	ID          int64  `json:"id" yaml:"id"`
	CompletedAt string `json:"completed_at" yaml:"completed_at"`
	Minutes     int    `json:"duration_minutes" yaml:"duration_minutes"`
	Duration    string `json:"duration" yaml:"duration"`
	Quote       string `json:"quote,omitempty" yaml:"quote,omitempty"`
}

func buildExport(sessions []store.Session, quotes []string) jsonExport {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
		Unlocked:   min(len(sessions), len(quotes)),
		Total:      len(quotes),
	}

	for i, s := range sessions {
		export.Sessions = append(export.Sessions, jsonSession{
			ID:          s.ID,
			CompletedAt: s.CompletedAt.Local().Format(time.RFC3339),
			Minutes:     s.DurationMinutes,
			Duration:    formatDuration(s.DurationMinutes),
			Quote:       unlockedQuote(quotes, i),
		})
	}
	return export
}

func ToJSON(sessions []store.Session, quotes []string, path string) error {
	data, err := json.MarshalIndent(buildExport(sessions, quotes), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
