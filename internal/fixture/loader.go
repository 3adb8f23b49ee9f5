package fixture

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var ErrDuplicateName = errors.New("duplicate entry name")

// LoadFile loads and parses a YAML value document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read value file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc.Path = path

	return doc, nil
}

// LoadFiles loads every path concurrently, at most limit at a time (no limit
// if limit <= 0). Documents are returned in the order of paths; the first
// failure cancels the remaining loads.
func LoadFiles(ctx context.Context, limit int, paths ...string) ([]*Document, error) {
	docs := make([]*Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := LoadFile(path)
			if err != nil {
				return err
			}

			docs[i] = doc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// LoadEach loads every path concurrently like LoadFiles, but a failing path
// does not stop the others. errs[i] is non-nil exactly when docs[i] is nil.
func LoadEach(ctx context.Context, limit int, paths ...string) (docs []*Document, errs []error) {
	docs = make([]*Document, len(paths))
	errs = make([]error, len(paths))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			docs[i], errs[i] = LoadFile(path)

			return nil
		})
	}

	_ = g.Wait()

	return docs, errs
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse value YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&doc)

	if err := validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}

	for i := range doc.Values {
		e := &doc.Values[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("values[%d]", i)
		}
	}
}

func validate(doc *Document) error {
	seen := make(map[string]int, len(doc.Values))

	for i, e := range doc.Values {
		if prev, ok := seen[e.Name]; ok {
			return fmt.Errorf("%w: %q at values[%d] and values[%d]", ErrDuplicateName, e.Name, prev, i)
		}

		seen[e.Name] = i
	}

	return nil
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile writes a Document to the given path.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal values: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write value file %s: %w", path, err)
	}

	return nil
}
