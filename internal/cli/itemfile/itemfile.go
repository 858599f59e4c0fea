// Package itemfile reads the JSON item files passed to create and update.
//
// A file holding a top-level JSON array yields one item per element; any
// other top-level value yields a single item. Items keep their original key
// order and are re-encoded compactly.
package itemfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrMalformed is returned when the file is not valid JSON.
	ErrMalformed = errors.New("malformed item file")

	// ErrMissingID is returned when an item has no usable id field.
	ErrMissingID = errors.New("item has no id")
)

// Item is one JSON record read from an item file.
type Item struct {
	Raw json.RawMessage
}

// Read loads and parses the item file at path.
func Read(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item file: %w", err)
	}

	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse normalizes a JSON document into an ordered list of items.
func Parse(data []byte) ([]Item, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	if data[0] != '[' {
		item, err := newItem(data)
		if err != nil {
			return nil, err
		}
		return []Item{item}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	items := make([]Item, 0, len(elems))
	for _, elem := range elems {
		item, err := newItem(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func newItem(raw []byte) (Item, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Item{Raw: buf.Bytes()}, nil
}

// ID returns the item's id rendered for display and URL paths. String ids
// are returned unquoted, other values as their JSON text.
func (it Item) ID() (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(it.Raw, &fields); err != nil || fields == nil {
		return "", fmt.Errorf("%w: item is not a JSON object", ErrMissingID)
	}

	raw, ok := fields["id"]
	if !ok || string(raw) == "null" {
		return "", ErrMissingID
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", ErrMissingID
		}
		return s, nil
	}
	if raw[0] == '{' || raw[0] == '[' {
		return "", fmt.Errorf("%w: id must be a string or number", ErrMissingID)
	}
	return string(raw), nil
}

// IDs returns the id of every item, failing on the first item without one.
// Positions in errors are 1-based.
func IDs(items []Item) ([]string, error) {
	ids := make([]string, 0, len(items))
	for i, it := range items {
		id, err := it.ID()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
