package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedEntry is one resource in a seed file.
type SeedEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type seedFile struct {
	Resources []SeedEntry `yaml:"resources"`
}

// LoadSeed reads a YAML seed file. Both a bare list and a
// {resources: [...]} document are accepted:
//
//	resources:
//	  - name: Widget
//	    description: A widget
func LoadSeed(path string) ([]SeedEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	var entries []SeedEntry
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		err = root.Decode(&entries)
	} else {
		var f seedFile
		err = root.Decode(&f)
		entries = f.Resources
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, e := range entries {
		if e.Name == "" || e.Description == "" {
			return nil, fmt.Errorf("%s: entry %d: name and description are required", path, i)
		}
	}
	return entries, nil
}

// Seed creates every entry in order and returns how many were created.
func Seed(ctx context.Context, s Store, entries []SeedEntry) (int, error) {
	for i, e := range entries {
		if _, err := s.Create(ctx, e.Name, e.Description); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
