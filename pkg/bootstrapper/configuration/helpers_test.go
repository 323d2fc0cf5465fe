package configuration_test

import (
	"time"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/configuration"
)

// mapLoader serves sections from a map of values keyed by section name.
type mapLoader map[string]map[string]string

func (l mapLoader) GetSection(name string) (*configuration.Section, error) {
	values, ok := l[name]
	if !ok {
		return nil, configuration.ErrSectionNotFound
	}

	return configuration.NewSection(name, values), nil
}

type failingLoader struct {
	err error
}

func (l failingLoader) GetSection(string) (*configuration.Section, error) {
	return nil, l.err
}

// consumer records the section it was given.
type consumer struct {
	name    string
	section *configuration.Section
	err     error
}

func (c *consumer) SectionName() string {
	return c.name
}

func (c *consumer) Apply(section *configuration.Section) error {
	c.section = section

	return c.err
}

// selfLoading reads its section from its own values.
type selfLoading struct {
	consumer
	values map[string]string
}

func (s *selfLoading) GetSection(name string) (*configuration.Section, error) {
	return configuration.NewSection(name, s.values), nil
}

type Cache struct {
	Size  int
	TTL   time.Duration `config:"ttl"`
	Owner string
	raw   map[string]string
}

func (c *Cache) Configuration() map[string]string {
	return c.raw
}

// Scaled multiplies its size through a conversion callback and upper-cases
// its other values.
type Scaled struct {
	Size  int
	Label string
}

func (s *Scaled) ConversionCallbacks() map[string]configuration.ConversionFunc {
	return map[string]configuration.ConversionFunc{
		"size": func(_, value string) (any, error) {
			return len(value) * 10, nil
		},
	}
}

func (s *Scaled) DefaultConversionCallback() configuration.ConversionFunc {
	return func(_, value string) (any, error) {
		return "[" + value + "]", nil
	}
}
