package icons

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotContiguous marks icon lists whose ids are split over several runs.
var ErrNotContiguous = errors.New("icon ids are not contiguous")

// LoadList reads an icon list from a YAML or JSON file.
func LoadList(path string) ([]Record, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("icon list path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon list: %w", err)
	}
	defer f.Close()

	list, err := DecodeList(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon list %s: %w", path, err)
	}
	return list, nil
}

// DecodeList decodes a YAML (or JSON) sequence of icon records.
func DecodeList(r io.Reader) ([]Record, error) {
	var list []Record
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, err
	}
	for i := range list {
		if list[i].Variation == "" {
			list[i].Variation = NoForm
		}
		if list[i].Subvariation == "" {
			list[i].Subvariation = SubvariationNone
		}
	}
	return list, nil
}

// ValidateGrouping checks that every id forms a single contiguous run.
func ValidateGrouping(list []Record) error {
	closed := map[string]struct{}{}
	for i, icon := range list {
		if i > 0 && list[i-1].ID == icon.ID {
			continue
		}
		if _, seen := closed[icon.ID]; seen {
			return fmt.Errorf("%w: id %q reappears at position %d", ErrNotContiguous, icon.ID, i)
		}
		if i > 0 {
			closed[list[i-1].ID] = struct{}{}
		}
	}
	return nil
}
