package config

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// bindKeys registers every mapstructure key of T with viper so AutomaticEnv
// overrides apply even for keys absent from the config file.
func bindKeys[T any](v *viper.Viper) {
	var zero T
	for _, key := range structKeys(reflect.TypeOf(zero), "") {
		_ = v.BindEnv(key)
	}
}

// structKeys walks a struct type and returns dotted mapstructure key paths.
func structKeys(t reflect.Type, prefix string) []string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		name := strings.Split(tag, ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		ft := field.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft.PkgPath() != "time" {
			if nested := structKeys(ft, path); len(nested) > 0 {
				keys = append(keys, nested...)
				continue
			}
		}
		keys = append(keys, path)
	}
	return keys
}
