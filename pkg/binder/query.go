package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// Query fills exported fields tagged `query:"name"` from the URL query.
// Untagged fields use their lowercased name; `query:"-"` skips a field.
// Supported kinds are string, bool, signed and unsigned integers.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", r.URL.Query())
	}
}

func bindValues(v any, tag string, values map[string][]string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrFailedToParseQuery)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := strings.ToLower(sf.Name)
		if t, ok := sf.Tag.Lookup(tag); ok {
			name, _, _ = strings.Cut(t, ",")
		}
		if name == "-" {
			continue
		}
		vals := values[name]
		if len(vals) == 0 {
			continue
		}
		if err := setValue(rv.Field(i), vals[0]); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToParseQuery, name, err)
		}
	}
	return nil
}

func setValue(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
