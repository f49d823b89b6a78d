/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
)

// ValidateEmbedded uses reflection to find nested configuration structures and validate them.
// Errors are wrapped so that they point to the faulty field (see IValidationError).
func ValidateEmbedded(cfg IServiceConfiguration) error {
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Pointer || r.IsNil() || r.Elem().Kind() != reflect.Struct {
		return nil
	}
	r = r.Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.CanAddr() || !f.Addr().CanInterface() {
			continue
		}
		validator, ok := f.Addr().Interface().(IServiceConfiguration)
		if !ok {
			continue
		}
		if err := wrapFieldValidationError(r.Type().Field(i), validator.Validate()); err != nil {
			return err
		}
	}
	return nil
}

func wrapFieldValidationError(field reflect.StructField, err error) error {
	if err == nil {
		return nil
	}
	var mapStructure *string
	if tag, hasTag := field.Tag.Lookup("mapstructure"); hasTag {
		mapStructure = &tag
	}
	return WrapFieldValidationError(field.Name, mapStructure, err)
}
