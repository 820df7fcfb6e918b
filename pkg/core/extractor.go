package core

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSegment represents a single segment in a path
type PathSegment struct {
	Field string
	Type  SegmentType
	Index int // For array indices
}

type SegmentType int

const (
	FieldSegment SegmentType = iota // Regular field access
	ArrayIndex                      // Specific array index [0], [-1]
)

func (s PathSegment) String() string {
	if s.Type == ArrayIndex {
		return fmt.Sprintf("[%d]", s.Index)
	}
	return s.Field
}

// ParsePath converts a dotted path into structured segments.
// Supports:
// - Nested fields: "data.getChaosHub.name"
// - Array indices: "items[0]", "items[-1]" (negative for last)
// - Chained indices: "matrix[0][1]"
func ParsePath(path string) ([]PathSegment, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}

	var segments []PathSegment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("empty segment in path: %q", path)
		}

		idx := strings.Index(part, "[")
		if idx == -1 {
			segments = append(segments, PathSegment{Field: part, Type: FieldSegment})
			continue
		}

		// Field name before bracket
		if idx > 0 {
			segments = append(segments, PathSegment{Field: part[:idx], Type: FieldSegment})
		}

		remaining := part[idx:]
		for len(remaining) > 0 {
			if !strings.HasPrefix(remaining, "[") {
				return nil, fmt.Errorf("invalid syntax after bracket in path %q: %s", path, remaining)
			}
			endIdx := strings.Index(remaining, "]")
			if endIdx == -1 {
				return nil, fmt.Errorf("unclosed bracket in path: %q", path)
			}

			index, err := strconv.Atoi(remaining[1:endIdx])
			if err != nil {
				return nil, fmt.Errorf("invalid array index %q in path %q", remaining[1:endIdx], path)
			}
			segments = append(segments, PathSegment{Type: ArrayIndex, Index: index})

			// Move past this bracket pair
			remaining = remaining[endIdx+1:]
		}
	}

	return segments, nil
}

// Lookup walks data (as produced by encoding/json into interface{}) along
// path. found is false when any segment is absent; a present JSON null
// returns (nil, true, nil). err is only set for a malformed path.
func Lookup(data interface{}, path string) (value interface{}, found bool, err error) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, false, err
	}
	value, found = traversePath(data, segments)
	return value, found, nil
}

// ExtractField extracts a field from data using a dotted path
func ExtractField(data interface{}, path string) (interface{}, bool) {
	value, found, err := Lookup(data, path)
	if err != nil {
		return nil, false
	}
	return value, found
}

// traversePath walks through data following the path segments
func traversePath(data interface{}, segments []PathSegment) (interface{}, bool) {
	current := data

	for _, segment := range segments {
		switch segment.Type {
		case FieldSegment:
			m, ok := current.(map[string]interface{})
			if !ok {
				return nil, false
			}
			val, ok := m[segment.Field]
			if !ok {
				return nil, false
			}
			current = val

		case ArrayIndex:
			arr, ok := current.([]interface{})
			if !ok {
				return nil, false
			}

			index := segment.Index
			// Handle negative indices
			if index < 0 {
				index = len(arr) + index
			}
			if index < 0 || index >= len(arr) {
				return nil, false
			}
			current = arr[index]
		}
	}

	return current, true
}
