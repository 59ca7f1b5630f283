// Package mapper holds generic slice helpers shared by persistence mappers.
package mapper

import "fmt"

// MapSlicePtrWithID maps a slice of pointers, skipping nil inputs and nil
// outputs. Errors name the ID of the failing item.
func MapSlicePtrWithID[T any, R any, ID any](
	items []*T,
	mapFunc func(*T) (*R, error),
	getID func(*T) ID,
) ([]*R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		if mapped != nil {
			result = append(result, mapped)
		}
	}
	return result, nil
}

// Pluck collects one value per element, skipping nil elements.
func Pluck[T any, V any](items []*T, get func(*T) V) []V {
	result := make([]V, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, get(item))
		}
	}
	return result
}
