package tags

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Category is the kind of adjustment a tag marks a transaction for.
type Category string

const (
	CategoryPersonal     Category = "personal"
	CategoryNonRecurring Category = "nonRecurring"
)

// Tag marks one transaction as personal or non-recurring under a named
// sub-account.
type Tag struct {
	Category   Category  `yaml:"category"`
	SubAccount string    `yaml:"sub_account"`
	TaggedAt   time.Time `yaml:"tagged_at"`
}

// Config lists the sub-accounts available per category.
type Config struct {
	Personal     []string `yaml:"personal"`
	NonRecurring []string `yaml:"non_recurring"`
}

// File is the on-disk tag store (tags.yaml), keyed by transaction ID.
type File struct {
	Tags   map[string]Tag `yaml:"tags"`
	Config Config         `yaml:"config"`
}

// Load reads a tag store from disk. A missing file yields an empty store.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &File{Tags: make(map[string]Tag)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading tags: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing tags: %w", err)
	}
	if f.Tags == nil {
		f.Tags = make(map[string]Tag)
	}
	return &f, nil
}

// Save writes the tag store to disk.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing tags: %w", err)
	}
	return nil
}

// TaggedIDs returns the set of tagged transaction IDs.
func (f *File) TaggedIDs() map[string]bool {
	ids := make(map[string]bool, len(f.Tags))
	for id := range f.Tags {
		ids[id] = true
	}
	return ids
}
