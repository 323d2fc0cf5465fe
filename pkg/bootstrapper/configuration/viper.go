package configuration

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ViperLoader reads sections from the top-level maps of a viper instance. Viper
// lowercases keys, so section names and value keys are case-insensitive.
type ViperLoader struct {
	v *viper.Viper
}

func NewViperLoader(v *viper.Viper) *ViperLoader {
	return &ViperLoader{v: v}
}

// LoadViperFile reads the configuration file at path. The format is guessed
// from its extension.
func LoadViperFile(path string) (*ViperLoader, error) {
	v := viper.New()
	v.SetConfigFile(path)

	err := v.ReadInConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	return NewViperLoader(v), nil
}

func (l *ViperLoader) GetSection(name string) (*Section, error) {
	if !l.v.IsSet(name) {
		return nil, ErrSectionNotFound
	}

	return NewSection(name, l.v.GetStringMapString(name)), nil
}

var _ Loader = (*ViperLoader)(nil)
