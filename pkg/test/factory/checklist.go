package factory

import (
	fab "github.com/Goldziher/fabricator"
)

// NewChecklistItem builds an unpersisted item; pass field overrides to pin
// the values a test cares about.
func NewChecklistItem[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	if len(customData) > 0 {
		return instance.Build(customData...)
	}

	return instance.Build()
}
