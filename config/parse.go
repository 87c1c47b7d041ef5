package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const tagName = "config_key"

// Parse builds a T from configMap. T must be a struct or a pointer to a struct; see
// [ParseInto] for how fields are populated.
func Parse[T any](configMap Map) (T, error) {
	var target T
	targetType := reflect.TypeOf(target)
	if targetType == nil {
		return target, fmt.Errorf("unsupported target type \"%T\"", target)
	}
	switch targetType.Kind() {
	case reflect.Struct:
		err := ParseInto(configMap, &target)
		return target, err
	case reflect.Pointer:
		if targetType.Elem().Kind() != reflect.Struct {
			return target, fmt.Errorf("unsupported target type \"%T\"", target)
		}
		p := reflect.ValueOf(&target).Elem()
		p.Set(reflect.New(targetType.Elem()))
		err := ParseInto(configMap, p.Interface())
		return target, err
	default:
		return target, fmt.Errorf("unsupported target type \"%T\"", target)
	}
}

// ParseInto populates the exported fields of the struct target points to. Fields are matched
// by their `config_key:"name"` tag; untagged fields and keys missing from configMap are left
// alone unless the tag carries the "required" option (`config_key:"name,required"`), in
// which case a missing key fails with ErrKeyNotFound.
//
// Values are converted the same way as the [Store] accessors: numbers are parsed strictly in
// base 10 at the field's width and booleans are non-zero integers.
func ParseInto(configMap Map, target any) error {
	targetType := reflect.TypeOf(target)
	if targetType == nil || targetType.Kind() != reflect.Pointer {
		return fmt.Errorf("unsupported target type \"%T\"", target)
	}

	targetType = targetType.Elem()
	if targetType.Kind() != reflect.Struct {
		return fmt.Errorf("unsupported target type \"%T\"", target)
	}

	targetValue := reflect.ValueOf(target)
	if targetValue.IsNil() {
		return errors.New("target was nil")
	}
	targetValue = targetValue.Elem()

	if configMap == nil {
		configMap = StdMap(nil)
	}

	for i := 0; i < targetType.NumField(); i++ {
		fieldInfo := targetType.Field(i)
		if !fieldInfo.IsExported() {
			continue
		}
		tag, ok := fieldInfo.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		configKey, required := parseTag(tag)
		configVal, ok := configMap.Lookup(configKey)
		if !ok {
			if required {
				return &Error{Kind: ErrKeyNotFound, Key: configKey}
			}
			continue
		}
		field := targetValue.Field(i)
		bitSize := int(field.Type().Size() * 8)

		switch field.Kind() {
		case reflect.String:
			field.SetString(configVal)
		case reflect.Bool:
			v, err := parseBool(configKey, configVal)
			if err != nil {
				return err
			}
			field.SetBool(v)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v, err := parseInt(configKey, configVal, bitSize)
			if err != nil {
				return err
			}
			field.SetInt(v)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v, err := parseUint(configKey, configVal, bitSize)
			if err != nil {
				return err
			}
			field.SetUint(v)
		case reflect.Float32, reflect.Float64:
			v, err := parseFloat(configKey, configVal, bitSize)
			if err != nil {
				return err
			}
			field.SetFloat(v)
		default:
			return fmt.Errorf("field %s: unsupported kind %s", fieldInfo.Name, field.Kind())
		}
	}
	return nil
}

func parseTag(tag string) (key string, required bool) {
	key, opts, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(opts, ",") {
		if opt == "required" {
			required = true
		}
	}
	return key, required
}
