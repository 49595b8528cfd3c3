package lintree

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseRecords decodes a YAML taxonomy document — a flat sequence of
// {name, parent, alias, children} entries, the lineages.yml shape — into
// the Record list consumed by Build.
//
// ParseRecords performs no validation beyond YAML decoding; structural
// problems (missing parents, cycles, duplicates) surface from Build.
func ParseRecords(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lintree: read taxonomy: %w", err)
	}

	var records []Record
	if err = yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("lintree: decode taxonomy: %w", err)
	}

	return records, nil
}
