package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// Errors returned by FromEnv for an argument it cannot fill.
var (
	ErrNoPtr       = errors.New("config must be a pointer")
	ErrNoStructPtr = errors.New("config must be a struct pointer")
)

// FromEnv fills the `env`-tagged fields of out. Unset variables fall back to
// the field's `default` tag, or are left untouched. Slices, arrays and maps
// are not supported.
func FromEnv(out interface{}) error {
	value := reflect.ValueOf(out)
	if value.Kind() != reflect.Ptr {
		return ErrNoPtr
	}
	elem := value.Elem()
	if elem.Kind() != reflect.Struct {
		return ErrNoStructPtr
	}

	return processStruct(elem)
}

func processStruct(structValue reflect.Value) error {
	structType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		if field.Kind() == reflect.Struct && field.CanSet() {
			if err := processStruct(field); err != nil {
				return err
			}
			continue
		}

		tag := fieldType.Tag.Get("env")
		if !field.CanSet() || tag == "" || tag == "-" {
			continue
		}

		val, ok := os.LookupEnv(tag)
		if !ok || val == "" {
			val, ok = fieldType.Tag.Lookup("default")
			if !ok {
				continue
			}
		}
		if err := setFieldContent(field, val); err != nil {
			return fmt.Errorf("tag '%s' caused error: %w", tag, err)
		}
	}
	return nil
}

func setFieldContent(field reflect.Value, val string) error {
	fieldType := field.Type()

	switch field.Kind() {
	case reflect.Bool:
		v, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		field.SetBool(v)
	case reflect.String:
		field.SetString(val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(val, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		field.SetUint(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(val, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		field.SetInt(v)
	default:
		return errors.New("unknown field type")
	}
	return nil
}
