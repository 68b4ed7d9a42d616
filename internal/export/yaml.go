package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/antiprocrastinator/internal/store"
)

func ToYAML(sessions []store.Session, quotes []string, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create yaml file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close yaml file: %w", cerr)
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(buildExport(sessions, quotes)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
