package configuration

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// ErrNotAddressable is returned when properties are assigned to a value which
// is not a non-nil pointer.
var ErrNotAddressable = errors.New("target must be a non-nil pointer")

// AssignProperties sets the fields of target from values. Each value is first
// converted with the callback of its key, or with fallback when the key has no
// callback. Values without any conversion are decoded from their string form.
//
// Fields are matched by their "config" tag, or by name ignoring case. Fields
// without a matching value are left untouched.
func AssignProperties(target any, values map[string]string, callbacks map[string]ConversionFunc, fallback ConversionFunc) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotAddressable
	}

	input := make(map[string]any, len(values))
	for key, value := range values {
		convert := callbacks[key]
		if convert == nil {
			convert = fallback
		}

		if convert == nil {
			input[key] = value

			continue
		}

		converted, err := convert(key, value)
		if err != nil {
			return errors.Wrapf(err, "unable to convert %q", key)
		}

		input[key] = converted
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		TagName:          "config",
		Result:           target,
	})
	if err != nil {
		return errors.Wrap(err, "unable to create decoder")
	}

	return errors.Wrap(decoder.Decode(input), "unable to assign properties")
}

func isStructPointer(v any) bool {
	t := reflect.TypeOf(v)

	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct && !reflect.ValueOf(v).IsNil()
}
