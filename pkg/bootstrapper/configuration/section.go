package configuration

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// ErrSectionNotFound is returned by loaders when a section does not exist.
var ErrSectionNotFound = errors.New("configuration section not found")

// Section is a named set of string values.
type Section struct {
	Name   string
	Values map[string]string
}

// NewSection returns a section holding a copy of values.
func NewSection(name string, values map[string]string) *Section {
	s := &Section{
		Name:   name,
		Values: make(map[string]string, len(values)),
	}
	maps.Copy(s.Values, values)

	return s
}

// Keys returns the sorted keys of the section.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(s.Values))
}

func (s *Section) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}

	value, ok := s.Values[key]

	return value, ok
}

func (s *Section) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Values)
}
