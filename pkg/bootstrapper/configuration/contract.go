package configuration

// Loader gives access to configuration sections by name. Extensions can
// implement it to load their own section.
type Loader interface {
	GetSection(name string) (*Section, error)
}

// SectionNamer is implemented by extensions which read a section whose name is
// not the name of their type.
type SectionNamer interface {
	SectionName() string
}

// SectionConsumer is implemented by extensions which receive their whole
// configuration section.
type SectionConsumer interface {
	Apply(section *Section) error
}

// ConfigurationConsumer is implemented by extensions which keep the raw values
// of their section. The returned map is filled in place.
type ConfigurationConsumer interface {
	Configuration() map[string]string
}

// ConversionFunc converts the raw value of key before it is assigned to a
// field.
type ConversionFunc func(key, value string) (any, error)

// ConversionCallbacksProvider returns conversions per configuration key.
type ConversionCallbacksProvider interface {
	ConversionCallbacks() map[string]ConversionFunc
}

// DefaultConversionCallbackProvider returns the conversion used for keys
// without a dedicated callback.
type DefaultConversionCallbackProvider interface {
	DefaultConversionCallback() ConversionFunc
}
