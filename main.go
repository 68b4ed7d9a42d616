package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/antiprocrastinator/internal/config"
	"github.com/sadopc/antiprocrastinator/internal/export"
	"github.com/sadopc/antiprocrastinator/internal/pomodoro"
	"github.com/sadopc/antiprocrastinator/internal/quotes"
	"github.com/sadopc/antiprocrastinator/internal/store"
	"github.com/sadopc/antiprocrastinator/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Pomodoro timer that unlocks a quote for every finished session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}

	root.AddCommand(newStatsCmd())
	root.AddCommand(newExportCmd())
	return root
}

// app is everything a command needs, wired from the .env configuration.
type app struct {
	cfg     config.Config
	store   store.Progress
	quotes  *quotes.Set
	session *pomodoro.Session
	logFile *os.File
}

func openApp() *app {
	cfg := config.Load(config.SearchPaths())

	// The terminal belongs to the UI, so log lines go to a file next to the
	// database.
	logPath := filepath.Join(filepath.Dir(cfg.DBPath), config.LogFileName)
	logFile, err := tea.LogToFile(logPath, "")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: cannot open log file: %v\n", err)
		log.SetOutput(io.Discard)
	}
	if cfg.Source != "" {
		log.Printf("config loaded from %s", cfg.Source)
	}

	var st store.Progress
	st, err = store.New(cfg.DBPath, store.Defaults{Theme: cfg.DefaultTheme, DurationMinutes: cfg.DefaultDuration})
	if err != nil {
		log.Printf("warning: %v; progress will not be saved", err)
		st = store.Discard{}
	}

	qs := quotes.Load(cfg.QuotesFilePath)
	sess := pomodoro.Load(st, qs.All(), pomodoro.Options{
		Theme:   cfg.DefaultTheme,
		Minutes: cfg.DefaultDuration,
	})

	return &app{cfg: cfg, store: st, quotes: qs, session: sess, logFile: logFile}
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		log.Printf("warning: close store: %v", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func runTUI() error {
	a := openApp()
	defer a.Close()

	p := tea.NewProgram(tui.NewApp(a.session, a.store), tea.WithAltScreen())
	_, runErr := p.Run()

	// Settings are written on every change; this covers anything the last
	// completion or change could not save.
	if err := a.session.Save(); err != nil {
		log.Printf("warning: save settings on exit: %v", err)
	}
	return runErr
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print session count and collection progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := openApp()
			defer a.Close()
			return printStats(cmd.OutOrStdout(), a, time.Now())
		},
	}
}

func printStats(w io.Writer, a *app, now time.Time) error {
	p := a.session.Progress()

	db := a.cfg.DBPath
	if !a.store.Persistent() {
		db = "unavailable (" + db + ")"
	}
	source := a.quotes.Source()
	if a.quotes.IsFallback() {
		source = "built-in"
	}

	_, _ = fmt.Fprintf(w, "Sessions completed: %d\n", p.Sessions())
	_, _ = fmt.Fprintf(w, "Quotes unlocked:    %d of %d (%d%%)\n", p.Unlocked(), p.Total(), p.Percent())
	_, _ = fmt.Fprintf(w, "Session length:     %d min\n", a.session.Minutes())
	_, _ = fmt.Fprintf(w, "Theme:              %s\n", a.session.Theme())
	_, _ = fmt.Fprintf(w, "Database:           %s\n", db)
	_, _ = fmt.Fprintf(w, "Quotes:             %s (%d)\n", source, a.quotes.Len())
	if n := p.Unlocked(); n > 0 {
		_, _ = fmt.Fprintf(w, "Latest quote:       %s\n", a.quotes.At(n-1))
	}

	today := now.UTC().Truncate(24 * time.Hour)
	counts, err := a.store.GetDailyCounts(today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(w, "\nLast 7 days:")
	for _, c := range counts {
		_, _ = fmt.Fprintf(w, "  %s  %3d sessions  %4d min\n", c.Date, c.Sessions, c.Minutes)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.csv|file.json|file.yaml>",
		Short: "Write the session log to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := export.FormatOf(args[0]); err != nil {
				return err
			}

			a := openApp()
			defer a.Close()
			if !a.store.Persistent() {
				return errors.New("progress database unavailable, nothing to export")
			}

			sessions, err := a.store.ListSessions(store.SessionFilter{})
			if err != nil {
				return err
			}
			if err := export.ToFile(sessions, a.quotes.All(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d sessions to %s\n", len(sessions), args[0])
			return nil
		},
	}
}
