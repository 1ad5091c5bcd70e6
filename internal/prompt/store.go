package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

// Load reads the prompt library from disk. A missing file is not an error:
// the shipped defaults are returned instead.
func (s *implStore) Load() (*Library, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return DefaultLibrary(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read prompt library %s: %v", errs.ErrConfig, s.path, err)
	}

	lib := NewLibrary()
	if err := json.Unmarshal(data, lib); err != nil {
		return nil, fmt.Errorf("%w: parse prompt library %s: %v", errs.ErrConfig, s.path, err)
	}
	return lib, nil
}

// Save validates the pair, applies it to the current library, and persists
// the whole library with a write-to-temp-then-rename so a crash mid-write
// never corrupts the existing file.
func (s *implStore) Save(name, template string) (*Library, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: prompt name must not be empty", errs.ErrValidation)
	}
	if strings.TrimSpace(template) == "" {
		return nil, fmt.Errorf("%w: prompt template must not be empty", errs.ErrValidation)
	}

	lib, err := s.Load()
	if err != nil {
		return nil, err
	}
	lib.Set(name, template)

	if err := s.persist(lib); err != nil {
		return nil, err
	}
	return lib, nil
}

// List returns the prompt names in stored order.
func (s *implStore) List() ([]string, error) {
	lib, err := s.Load()
	if err != nil {
		return nil, err
	}
	return lib.Names(), nil
}

func (s *implStore) persist(lib *Library) error {
	// Call MarshalJSON directly: json.Marshal would compact the ordered,
	// indented form and HTML-escape the template text.
	data, err := lib.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: encode prompt library: %v", errs.ErrIO, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".prompts-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %s: %v", errs.ErrIO, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", errs.ErrIO, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", errs.ErrIO, tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", errs.ErrIO, s.path, err)
	}
	return nil
}
