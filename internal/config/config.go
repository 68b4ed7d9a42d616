// Package config loads the optional .env file that overrides the built-in
// defaults for the quotes file, the session length, the theme and the
// database location.
package config

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const (
	AppName      = "antiprocrastinator"
	EnvFileName  = ".env"
	DBFileName   = "progress.db"
	LogFileName  = "antiprocrastinator.log"
	QuotesFile   = "quotes.txt"
	ThemeLight   = "light"
	ThemeDark    = "dark"
	DurationMins = 25
)

// Config holds the values resolved from defaults and the .env file.
type Config struct {
	QuotesFilePath  string
	DefaultDuration int // minutes
	DefaultTheme    string
	DBPath          string

	// Source is the .env file that was read, empty when only defaults apply.
	Source string
}

// Defaults returns the configuration used when no .env file is present.
func Defaults() Config {
	return Config{
		QuotesFilePath:  QuotesFile,
		DefaultDuration: DurationMins,
		DefaultTheme:    ThemeLight,
		DBPath:          DefaultDBPath(),
	}
}

// DefaultDBPath returns ~/.config/antiprocrastinator/progress.db, or a path
// relative to the working directory when no config dir is known.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".", AppName, DBFileName)
	}
	return filepath.Join(dir, AppName, DBFileName)
}

// SearchPaths lists the directories searched for a .env file, in order.
func SearchPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths, dir, filepath.Join(dir, ".."))
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}
	return paths
}

// Load resolves the configuration. A missing or unreadable .env file is not
// an error; defaults are used for anything the file does not set.
// The parent directory of the resolved DB path is created before returning.
func Load(searchPaths []string) Config {
	cfg := Defaults()

	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, EnvFileName)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		f, err := os.Open(candidate)
		if err != nil {
			log.Printf("warning: open %s: %v", candidate, err)
			break
		}
		Parse(f, &cfg)
		f.Close()
		cfg.Source = candidate
		break
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Printf("warning: create db directory: %v", err)
	}
	return cfg
}

var lineRe = regexp.MustCompile(`^\s*(\w+)\s*=\s*(.+?)\s*$`)

// Parse applies KEY=VALUE lines from r onto cfg. Unknown keys and malformed
// lines are ignored.
func Parse(r io.Reader, cfg *Config) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, value := m[1], unquote(strings.TrimSpace(m[2]))

		switch key {
		case "QUOTES_FILE_PATH":
			cfg.QuotesFilePath = fromNativeSeparators(value)
		case "DEFAULT_DURATION":
			if n, err := strconv.Atoi(value); err == nil {
				cfg.DefaultDuration = n
			}
		case "DEFAULT_THEME":
			cfg.DefaultTheme = value
		case "DB_PATH":
			cfg.DBPath = fromNativeSeparators(value)
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("warning: read config: %v", err)
	}
}

func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	if len(v) >= 2 && strings.HasPrefix(v, "'") && strings.HasSuffix(v, "'") {
		return v[1 : len(v)-1]
	}
	return v
}

func fromNativeSeparators(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
