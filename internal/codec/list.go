// Package codec converts ordered record lists to and from the text blobs
// stored in the key-value namespace.
//
// New data is always written as a JSON array. Reads are lenient: one
// malformed element never costs the rest of the list. Blobs written by the
// first versions of the app used a ";"-joined, "|"-delimited positional
// format; legacy.go decodes those for migration and never writes them.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeList serializes items as a JSON array. A nil or empty slice encodes
// as "[]" so the stored blob always decodes to an empty list.
func EncodeList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("codec.EncodeList: %w", err)
	}
	return string(b), nil
}

// DecodeList parses a JSON array blob into records, preserving order.
// Elements that fail to decode are skipped and counted in skipped; a blob
// that is not a JSON array at all yields no records and skipped = 1.
// An empty or blank blob is an empty list.
func DecodeList[T any](blob string) (items []T, skipped int) {
	items = []T{}
	if strings.TrimSpace(blob) == "" {
		return items, 0
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return items, 1
	}

	for _, elem := range raw {
		if string(elem) == "null" {
			skipped++
			continue
		}
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped
}

// IsJSONList reports whether blob holds a JSON array (or nothing at all), as
// opposed to a legacy positional blob.
func IsJSONList(blob string) bool {
	trimmed := strings.TrimSpace(blob)
	return trimmed == "" || strings.HasPrefix(trimmed, "[")
}

// Encode serializes a single record, used for singleton values such as the
// per-trip budget item.
func Encode[T any](item T) (string, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("codec.Encode: %w", err)
	}
	return string(b), nil
}

// Decode parses a single record blob.
func Decode[T any](blob string) (T, error) {
	var item T
	if err := json.Unmarshal([]byte(blob), &item); err != nil {
		return item, fmt.Errorf("codec.Decode: %w", err)
	}
	return item, nil
}
