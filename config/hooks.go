/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/ARM-software/stringto/commonerrors"
	"github.com/ARM-software/stringto/parser"
	"github.com/ARM-software/stringto/value"
)

// DecodeHook returns the decode hook used by Load: on top of viper's default hooks, strings are converted into
// numbers using the parsers so that invalid numbers are reported rather than silently converted.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		StringToIntegerHookFunc(decimalIntegers),
		StringToFloatHookFunc(nil),
	)
}

// StringToIntegerHookFunc returns a hook converting strings into built-in integer types using parser.Integer.
// Blank strings are left untouched. Strings which are not valid integers according to options result in an error.
func StringToIntegerHookFunc(options *parser.IntegerOptions) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		text, ok := numberText(f, t, data, isIntegerKind)
		if !ok {
			return data, nil
		}
		i := parser.Integer.ValidateAndParse(&text, nil, options)
		if i == nil {
			if exceedsInt64(text) {
				return nil, commonerrors.Newf(commonerrors.ErrOutOfRange, "%q does not fit in int64, the widest integer supported", text)
			}
			return nil, commonerrors.Newf(commonerrors.ErrInvalid, "%q is not a valid integer", text)
		}
		target := reflect.New(t).Elem()
		if (target.CanInt() && target.OverflowInt(*i)) || (target.CanUint() && (*i < 0 || target.OverflowUint(uint64(*i)))) {
			return nil, commonerrors.Newf(commonerrors.ErrOutOfRange, "%q does not fit in %v", text, t)
		}
		return *i, nil
	}
}

// StringToFloatHookFunc returns a hook converting strings into built-in floating-point types using parser.Float.
// Blank strings are left untouched. Strings which are not valid floats according to options result in an error.
func StringToFloatHookFunc(options *parser.FloatOptions) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		text, ok := numberText(f, t, data, isFloatKind)
		if !ok {
			return data, nil
		}
		v := parser.Float.ValidateAndParse(&text, nil, options)
		if v == nil {
			return nil, commonerrors.Newf(commonerrors.ErrInvalid, "%q is not a valid float", text)
		}
		if reflect.New(t).Elem().OverflowFloat(*v) {
			return nil, commonerrors.Newf(commonerrors.ErrOutOfRange, "%q does not fit in %v", text, t)
		}
		return *v, nil
	}
}

// exceedsInt64 states whether text is an integer literal beyond the int64 range (e.g. a large uint64).
func exceedsInt64(text string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
	return commonerrors.Any(err, strconv.ErrRange)
}

// numberText returns the string to convert if the hook applies. Named types (e.g. time.Duration) are left to other hooks.
func numberText(f, t reflect.Type, data any, isTargetKind func(reflect.Kind) bool) (text string, ok bool) {
	if f.Kind() != reflect.String || t.PkgPath() != "" || !isTargetKind(t.Kind()) {
		return
	}
	text = reflect.ValueOf(data).String()
	ok = !value.IsBlank(text)
	return
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
