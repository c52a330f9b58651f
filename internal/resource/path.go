package resource

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	opSetPath         = "resource.set_path"
	opAddArrayItem    = "resource.add_array_item"
	opRemoveArrayItem = "resource.remove_array_item"
)

var (
	errEmptyPath        = errors.New("path is empty")
	errEmptySegment     = errors.New("path contains an empty segment")
	errSegmentMissing   = errors.New("path segment does not exist")
	errIndexOutOfRange  = errors.New("array index out of range")
	errNotAContainer    = errors.New("path segment addresses a non-container value")
	errNotAnArray       = errors.New("path does not address an array")
	errNotAnObjectIndex = errors.New("numeric segment used against an object")
)

// SetPath assigns value at the dotted path inside a decoded JSON document.
// Every segment, including the final one, must already exist: mutating a
// not-yet-initialized branch is a typed failure, never a silent creation.
func SetPath(root map[string]any, path string, value any) error {
	segments, err := splitPath(opSetPath, path)
	if err != nil {
		return err
	}

	container, err := walk(opSetPath, root, segments[:len(segments)-1])
	if err != nil {
		return err
	}

	last := segments[len(segments)-1]
	switch typed := container.(type) {
	case map[string]any:
		if _, ok := typed[last]; !ok {
			return NewPathError(opSetPath, "segment_missing", fmt.Errorf("%w: %q in %q", errSegmentMissing, last, path))
		}
		typed[last] = value
		return nil
	case []any:
		index, err := arrayIndex(opSetPath, path, last, len(typed))
		if err != nil {
			return err
		}
		typed[index] = value
		return nil
	default:
		return NewPathError(opSetPath, "not_a_container", fmt.Errorf("%w: %q", errNotAContainer, path))
	}
}

// AddArrayItem appends an empty string to the array addressed by path.
func AddArrayItem(root map[string]any, path string) error {
	segments, err := splitPath(opAddArrayItem, path)
	if err != nil {
		return err
	}

	container, err := walk(opAddArrayItem, root, segments[:len(segments)-1])
	if err != nil {
		return err
	}

	last := segments[len(segments)-1]
	items, err := arrayAt(opAddArrayItem, container, last, path)
	if err != nil {
		return err
	}
	return storeArray(opAddArrayItem, container, last, append(items, ""), path)
}

// RemoveArrayItem deletes the element at index from the array addressed by
// path.
func RemoveArrayItem(root map[string]any, path string, index int) error {
	segments, err := splitPath(opRemoveArrayItem, path)
	if err != nil {
		return err
	}

	container, err := walk(opRemoveArrayItem, root, segments[:len(segments)-1])
	if err != nil {
		return err
	}

	last := segments[len(segments)-1]
	items, err := arrayAt(opRemoveArrayItem, container, last, path)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return NewPathError(opRemoveArrayItem, "index_out_of_range", fmt.Errorf("%w: %d in %q", errIndexOutOfRange, index, path))
	}
	trimmed := append(items[:index:index], items[index+1:]...)
	return storeArray(opRemoveArrayItem, container, last, trimmed, path)
}

func splitPath(operation, path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, NewPathError(operation, "empty_path", errEmptyPath)
	}
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, NewPathError(operation, "empty_segment", fmt.Errorf("%w: %q", errEmptySegment, path))
		}
	}
	return segments, nil
}

// walk follows every provided segment and returns the container the final
// unvisited segment should be resolved against. Missing intermediates fail.
func walk(operation string, root map[string]any, segments []string) (any, error) {
	var current any = root
	for _, segment := range segments {
		switch typed := current.(type) {
		case map[string]any:
			next, ok := typed[segment]
			if !ok {
				return nil, NewPathError(operation, "segment_missing", fmt.Errorf("%w: %q", errSegmentMissing, segment))
			}
			current = next
		case []any:
			index, err := arrayIndex(operation, segment, segment, len(typed))
			if err != nil {
				return nil, err
			}
			current = typed[index]
		default:
			return nil, NewPathError(operation, "not_a_container", fmt.Errorf("%w: %q", errNotAContainer, segment))
		}
	}
	return current, nil
}

func arrayIndex(operation, path, segment string, length int) (int, error) {
	index, err := strconv.Atoi(segment)
	if err != nil {
		return 0, NewPathError(operation, "invalid_index", fmt.Errorf("%w: %q in %q", errNotAnObjectIndex, segment, path))
	}
	if index < 0 || index >= length {
		return 0, NewPathError(operation, "index_out_of_range", fmt.Errorf("%w: %d in %q", errIndexOutOfRange, index, path))
	}
	return index, nil
}

func arrayAt(operation string, container any, segment, path string) ([]any, error) {
	switch typed := container.(type) {
	case map[string]any:
		value, ok := typed[segment]
		if !ok {
			return nil, NewPathError(operation, "segment_missing", fmt.Errorf("%w: %q in %q", errSegmentMissing, segment, path))
		}
		items, ok := value.([]any)
		if !ok {
			return nil, NewPathError(operation, "not_an_array", fmt.Errorf("%w: %q", errNotAnArray, path))
		}
		return items, nil
	case []any:
		index, err := arrayIndex(operation, path, segment, len(typed))
		if err != nil {
			return nil, err
		}
		items, ok := typed[index].([]any)
		if !ok {
			return nil, NewPathError(operation, "not_an_array", fmt.Errorf("%w: %q", errNotAnArray, path))
		}
		return items, nil
	default:
		return nil, NewPathError(operation, "not_a_container", fmt.Errorf("%w: %q", errNotAContainer, path))
	}
}

// storeArray writes a re-sliced array back into its parent container.
// Nested arrays addressed through another array cannot be written back
// without the grandparent, so the final array segment must hang off an
// object key or be reachable in place.
func storeArray(operation string, container any, segment string, items []any, path string) error {
	switch typed := container.(type) {
	case map[string]any:
		typed[segment] = items
		return nil
	case []any:
		index, err := arrayIndex(operation, path, segment, len(typed))
		if err != nil {
			return err
		}
		typed[index] = items
		return nil
	default:
		return NewPathError(operation, "not_a_container", fmt.Errorf("%w: %q", errNotAContainer, path))
	}
}
