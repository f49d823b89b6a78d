/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package validation

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/stringto/commonerrors"
)

var (
	// ErrNotInteger is the ozzo-validation error returned when a string is not an integer.
	ErrNotInteger = validation.NewError("validation_is_integer_string", "must be an integer")
	// ErrNotFloat is the ozzo-validation error returned when a string is not a floating-point number.
	ErrNotFloat = validation.NewError("validation_is_float_string", "must be a floating-point number")
)

// IsIntegerString returns a rule checking that a string (or []byte) is an integer according to options.
// As other ozzo string rules, empty values are not checked; use validation.Required for that.
func IsIntegerString(options *IntegerOptions) validation.Rule {
	return isNumberString(func(s string) bool {
		return DefaultValidator().IsInteger(s, options)
	}, ErrNotInteger)
}

// IsFloatString returns a rule checking that a string (or []byte) is a floating-point number according to options.
// As other ozzo string rules, empty values are not checked; use validation.Required for that.
func IsFloatString(options *FloatOptions) validation.Rule {
	return isNumberString(func(s string) bool {
		return DefaultValidator().IsFloat(s, options)
	}, ErrNotFloat)
}

func isNumberString(isValid func(string) bool, ruleErr validation.Error) validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		v, isNil := validation.Indirect(vRaw)
		if isNil || validation.IsEmpty(v) {
			return
		}
		var s string
		val := reflect.ValueOf(v)
		switch val.Kind() {
		case reflect.String:
			s = val.String()
		case reflect.Slice:
			b, ok := v.([]byte)
			if !ok {
				return commonerrors.Newf(commonerrors.ErrUnsupported, "unsupported type for number validation: %T", vRaw)
			}
			s = string(b)
		default:
			return commonerrors.Newf(commonerrors.ErrUnsupported, "unsupported type for number validation: %T", vRaw)
		}
		if !isValid(s) {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, ruleErr, "")
		}
		return
	})
}
