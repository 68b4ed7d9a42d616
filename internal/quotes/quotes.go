// Package quotes loads the ordered list of reward quotes that completed
// sessions unlock.
package quotes

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Fallback is used when no quotes file can be found or read.
var Fallback = []string{
	"Ты ближе к цели, чем вчера!",
	"Один шаг за раз — и горы сдвинутся.",
	"Прокрастинация — враг мечты. Ты сегодня её победил!",
	"25 минут усилий = час гордости за себя.",
	"Не идеально, но сделано — лучше чем идеально, но не сделано.",
	"Ты уже сделал больше, чем тот, кто даже не начал.",
	"Маленькие шаги ведут к большим результатам.",
	"Сегодняшняя дисциплина — завтрашняя свобода.",
	"Ты сильнее прокрастинации!",
	"Каждая минута продуктивности — инвестиция в будущее себя.",
}

// Set is an immutable, ordered list of quotes.
type Set struct {
	items  []string
	source string
}

// NewSet copies items into a Set. An empty source marks the built-in list.
func NewSet(items []string, source string) *Set {
	cp := make([]string, len(items))
	copy(cp, items)
	return &Set{items: cp, source: source}
}

func (s *Set) Len() int         { return len(s.items) }
func (s *Set) At(i int) string  { return s.items[i] }
func (s *Set) Source() string   { return s.source }
func (s *Set) IsFallback() bool { return s.source == "" }

// All returns a copy of the quotes in load order.
func (s *Set) All() []string {
	cp := make([]string, len(s.items))
	copy(cp, s.items)
	return cp
}

// Candidates lists the files tried for configured, in order. An absolute path
// is tried alone.
func Candidates(configured, exeDir, cwd string) []string {
	if configured == "" {
		return nil
	}
	if filepath.IsAbs(configured) {
		return []string{filepath.Clean(configured)}
	}
	var out []string
	if exeDir != "" {
		out = append(out,
			filepath.Join(exeDir, configured),
			filepath.Join(exeDir, "..", "share", "antiprocrastinator", configured),
			filepath.Join(exeDir, "..", "Resources", configured),
		)
	}
	if cwd != "" {
		out = append(out, filepath.Join(cwd, configured))
	}
	return out
}

// Load resolves configured against the executable's directory and the
// working directory and loads the first match.
func Load(configured string) *Set {
	var exeDir, cwd string
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	cwd, _ = os.Getwd()
	return LoadFrom(Candidates(configured, exeDir, cwd))
}

// LoadFrom reads the first candidate that is a regular file. When none is
// found, or it cannot be read, the built-in Fallback list is returned.
func LoadFrom(candidates []string) *Set {
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		items, err := readFile(c)
		if err != nil {
			log.Printf("warning: %v, using built-in quotes", err)
			return NewSet(Fallback, "")
		}
		log.Printf("loaded %d quotes from %s", len(items), c)
		return &Set{items: items, source: c}
	}
	log.Printf("warning: quotes file not found, using built-in quotes")
	return NewSet(Fallback, "")
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open quotes file: %w", err)
	}
	defer f.Close()

	var items []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read quotes file: %w", err)
	}
	return items, nil
}
