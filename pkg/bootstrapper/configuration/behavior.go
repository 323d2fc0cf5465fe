package configuration

import (
	"iter"
	"maps"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

// SectionBehavior hands its configuration section to every extension which
// implements SectionConsumer. A missing section is handed as an empty one.
type SectionBehavior[E any] struct {
	loader Loader
}

// NewSectionBehavior returns a SectionBehavior reading sections from loader,
// unless an extension implements Loader itself. loader can be nil.
func NewSectionBehavior[E any](loader Loader) *SectionBehavior[E] {
	return &SectionBehavior[E]{loader: loader}
}

func (b *SectionBehavior[E]) Name() string {
	return reporting.TypeName(b)
}

func (b *SectionBehavior[E]) Describe() string {
	return "Automatically provides configuration sections for all extensions."
}

func (b *SectionBehavior[E]) Behave(extensions iter.Seq[E]) error {
	for extension := range extensions {
		consumer, ok := any(extension).(SectionConsumer)
		if !ok {
			continue
		}

		section, err := load(extension, b.loader)
		if err != nil {
			return err
		}

		err = consumer.Apply(section)
		if err != nil {
			return err
		}
	}

	return nil
}

// ExtensionSectionBehavior assigns the values of their configuration section
// to the fields of the extensions. Extensions implementing
// ConfigurationConsumer also receive the raw values. Extensions without a
// section, or with an empty one, are left untouched.
type ExtensionSectionBehavior[E any] struct {
	loader Loader
}

func NewExtensionSectionBehavior[E any](loader Loader) *ExtensionSectionBehavior[E] {
	return &ExtensionSectionBehavior[E]{loader: loader}
}

func (b *ExtensionSectionBehavior[E]) Name() string {
	return reporting.TypeName(b)
}

func (b *ExtensionSectionBehavior[E]) Describe() string {
	return "Automatically propagates properties of all extensions with configuration values when a matching extension configuration section is found."
}

func (b *ExtensionSectionBehavior[E]) Behave(extensions iter.Seq[E]) error {
	for extension := range extensions {
		err := b.propagate(extension)
		if err != nil {
			return err
		}
	}

	return nil
}

func (b *ExtensionSectionBehavior[E]) propagate(extension E) error {
	section, err := load(extension, b.loader)
	if err != nil {
		return err
	}

	if section.Len() == 0 {
		return nil
	}

	if consumer, ok := any(extension).(ConfigurationConsumer); ok {
		if values := consumer.Configuration(); values != nil {
			maps.Copy(values, section.Values)
		}
	}

	if !isStructPointer(extension) {
		return nil
	}

	var (
		callbacks map[string]ConversionFunc
		fallback  ConversionFunc
	)

	if provider, ok := any(extension).(ConversionCallbacksProvider); ok {
		callbacks = provider.ConversionCallbacks()
	}

	if provider, ok := any(extension).(DefaultConversionCallbackProvider); ok {
		fallback = provider.DefaultConversionCallback()
	}

	err = AssignProperties(extension, section.Values, callbacks, fallback)
	if err != nil {
		return errors.Wrapf(err, "unable to configure %s", reporting.TypeName(extension))
	}

	return nil
}

// SectionName returns the name of the section of extension: the one it
// declares when it implements SectionNamer, otherwise the name of its type
// without the package path.
func SectionName(extension any) string {
	if namer, ok := extension.(SectionNamer); ok {
		return namer.SectionName()
	}

	name := reporting.TypeName(extension)
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[idx+1:]
	}

	return name
}

func load(extension any, fallback Loader) (*Section, error) {
	name := SectionName(extension)

	loader := fallback
	if own, ok := extension.(Loader); ok {
		loader = own
	}

	if loader == nil {
		return NewSection(name, nil), nil
	}

	section, err := loader.GetSection(name)
	switch {
	case errors.Is(err, ErrSectionNotFound):
		return NewSection(name, nil), nil
	case err != nil:
		return nil, errors.Wrapf(err, "unable to load section %q", name)
	case section == nil:
		return NewSection(name, nil), nil
	}

	return section, nil
}

var (
	_ syntax.Behavior[any] = (*SectionBehavior[any])(nil)
	_ syntax.Behavior[any] = (*ExtensionSectionBehavior[any])(nil)
)
