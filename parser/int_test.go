/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parser

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/stringto/field"
	"github.com/ARM-software/stringto/validation"
)

var (
	decimalNumbers = []string{
		"12312312",
		"012399123",
		"13231231231238",
		"3424342342",
	}
	hexadecimalNumbers = map[string]int64{
		"1EF":  495,
		"ffdd": 65501,
		"1234": 4660,
		"a":    10,
	}
	invalidIntegers = []string{
		"",
		"NaN",
		"123i",
		" ",
	}
)

// forEachConcurrently runs check on every input, both synchronously and from concurrent goroutines.
func forEachConcurrently[I any](t *testing.T, inputs []I, check func(input I) error) {
	t.Helper()
	g, _ := errgroup.WithContext(context.Background())
	for i := range inputs {
		input := inputs[i]
		require.NoError(t, check(input))
		g.Go(func() error {
			return check(input)
		})
	}
	require.NoError(t, g.Wait())
}

func expectEqual[T comparable](actual, expected T) error {
	if actual != expected {
		return fmt.Errorf("expected %v but got %v", expected, actual)
	}
	return nil
}

func TestIntegerValidate(t *testing.T) {
	t.Run("absent value", func(t *testing.T) {
		assert.False(t, Integer.Validate(nil, nil))
		assert.False(t, Integer.ValidateAsync(nil, nil).Value())
	})
	t.Run("empty string", func(t *testing.T) {
		assert.False(t, Integer.Validate(field.ToOptionalString(""), nil))
		assert.False(t, Integer.ValidateAsync(field.ToOptionalString(""), nil).Value())
	})
	t.Run("invalid characters", func(t *testing.T) {
		assert.False(t, Integer.Validate(field.ToOptionalString("123i"), nil))
		assert.False(t, Integer.ValidateAsync(field.ToOptionalString("123i"), nil).Value())
	})
	t.Run("dot", func(t *testing.T) {
		assert.False(t, Integer.Validate(field.ToOptionalString("."), nil))
		assert.False(t, Integer.ValidateAsync(field.ToOptionalString("."), nil).Value())
	})
	t.Run("base 16", func(t *testing.T) {
		assert.True(t, Integer.Validate(field.ToOptionalString("1ed"), nil))
		assert.True(t, Integer.ValidateAsync(field.ToOptionalString("1ed"), nil).Value())
	})
	t.Run("decimal", func(t *testing.T) {
		forEachConcurrently(t, decimalNumbers, func(n string) error {
			if err := expectEqual(Integer.Validate(&n, nil), true); err != nil {
				return err
			}
			valid, err := Integer.ValidateAsync(&n, nil).Get(context.Background())
			if err != nil {
				return err
			}
			return expectEqual(valid, true)
		})
	})
	t.Run("hexadecimal", func(t *testing.T) {
		var inputs []string
		for n := range hexadecimalNumbers {
			inputs = append(inputs, n)
		}
		forEachConcurrently(t, inputs, func(n string) error {
			if err := expectEqual(Integer.Validate(&n, nil), true); err != nil {
				return err
			}
			return expectEqual(Integer.ValidateAsync(&n, nil).Value(), true)
		})
	})
	t.Run("invalid", func(t *testing.T) {
		forEachConcurrently(t, invalidIntegers, func(n string) error {
			if err := expectEqual(Integer.Validate(&n, nil), false); err != nil {
				return err
			}
			return expectEqual(Integer.ValidateAsync(&n, nil).Value(), false)
		})
	})
	t.Run("options are forwarded", func(t *testing.T) {
		assert.False(t, Integer.Validate(field.ToOptionalString("1ed"), &validation.IntegerOptions{Base: 10}))
		assert.True(t, Integer.Validate(field.ToOptionalString("0x1ed"), &validation.IntegerOptions{Base: 16}))
		assert.False(t, Integer.Validate(field.ToOptionalString("11"), &validation.IntegerOptions{Max: field.ToOptionalInt64(10)}))
	})
}

func TestIntegerParse(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		forEachConcurrently(t, decimalNumbers, func(n string) error {
			expected, err := strconv.ParseInt(n, 10, 64)
			if err != nil {
				return err
			}
			if err := expectEqual(Integer.Parse(&n, nil), NewNumber(expected)); err != nil {
				return err
			}
			return expectEqual(Integer.ParseAsync(&n, nil).Value(), NewNumber(expected))
		})
	})
	t.Run("leading zero is decimal", func(t *testing.T) {
		assert.Equal(t, NewNumber[int64](12399123), Integer.Parse(field.ToOptionalString("012399123"), nil))
	})
	t.Run("hexadecimal", func(t *testing.T) {
		var inputs []string
		for n := range hexadecimalNumbers {
			inputs = append(inputs, n)
		}
		forEachConcurrently(t, inputs, func(n string) error {
			options := &IntegerParseOptions{Base: 16}
			if err := expectEqual(Integer.Parse(&n, options), NewNumber(hexadecimalNumbers[n])); err != nil {
				return err
			}
			return expectEqual(Integer.ParseAsync(&n, options).Value(), NewNumber(hexadecimalNumbers[n]))
		})
	})
	t.Run("permissive", func(t *testing.T) {
		tests := []struct {
			input    string
			base     int
			expected Number[int64]
		}{
			{"123i", 0, NewNumber[int64](123)},
			{"  42", 0, NewNumber[int64](42)},
			{"\t\n \uFEFF-42abc", 0, NewNumber[int64](-42)},
			{"+7", 10, NewNumber[int64](7)},
			{"1.9", 10, NewNumber[int64](1)},
			{"1e3", 10, NewNumber[int64](1)},
			{"0x1f", 0, NewNumber[int64](31)},
			{"0x1f", 16, NewNumber[int64](31)},
			{"-0X1F", 0, NewNumber[int64](-31)},
			{"0x1f", 10, NewNumber[int64](0)},
			{"1ed", 10, NewNumber[int64](1)},
			{"1010", 2, NewNumber[int64](10)},
			{"zz", 36, NewNumber[int64](1295)},
			{"99999999999999999999", 10, NewNumber[int64](math.MaxInt64)},
			{"-99999999999999999999", 10, NewNumber[int64](math.MinInt64)},
			{"", 0, NaN[int64]()},
			{" ", 0, NaN[int64]()},
			{"NaN", 0, NaN[int64]()},
			{".", 0, NaN[int64]()},
			{"-", 0, NaN[int64]()},
			{"0x", 16, NaN[int64]()},
			{"a", 10, NaN[int64]()},
			{"12", 1, NaN[int64]()},
			{"12", 37, NaN[int64]()},
			{"12", -10, NaN[int64]()},
			{"١٢٣", 10, NaN[int64]()},
			{AbsentValue, 0, NaN[int64]()},
		}
		for i := range tests {
			test := tests[i]
			t.Run(fmt.Sprintf("%q in base %v", test.input, test.base), func(t *testing.T) {
				assert.Equal(t, test.expected, Integer.Parse(&test.input, &IntegerParseOptions{Base: test.base}))
			})
		}
	})
	t.Run("absent value", func(t *testing.T) {
		assert.True(t, Integer.Parse(nil, nil).IsNaN())
		assert.True(t, Integer.ParseAsync(nil, nil).Value().IsNaN())
	})
	t.Run("idempotent", func(t *testing.T) {
		for _, n := range append(decimalNumbers, invalidIntegers...) {
			assert.Equal(t, Integer.Parse(&n, nil), Integer.Parse(&n, nil))
		}
	})
}

func TestIntegerValidateAndParse(t *testing.T) {
	defaultValue := int64(123456)
	t.Run("absent value without default", func(t *testing.T) {
		assert.Nil(t, Integer.ValidateAndParse(nil, nil, nil))
		assert.Nil(t, Integer.ValidateAndParseAsync(nil, nil, nil).Value())
	})
	t.Run("valid value without default", func(t *testing.T) {
		forEachConcurrently(t, decimalNumbers, func(n string) error {
			expected, _ := strconv.ParseInt(n, 10, 64)
			if err := expectEqual(field.OptionalInt64(Integer.ValidateAndParse(&n, nil, nil), -1), expected); err != nil {
				return err
			}
			return expectEqual(field.OptionalInt64(Integer.ValidateAndParseAsync(&n, nil, nil).Value(), -1), expected)
		})
	})
	t.Run("valid value with default", func(t *testing.T) {
		forEachConcurrently(t, decimalNumbers, func(n string) error {
			expected, _ := strconv.ParseInt(n, 10, 64)
			if err := expectEqual(*Integer.ValidateAndParse(&n, &defaultValue, nil), expected); err != nil {
				return err
			}
			return expectEqual(*Integer.ValidateAndParseAsync(&n, &defaultValue, nil).Value(), expected)
		})
	})
	t.Run("invalid value with default", func(t *testing.T) {
		forEachConcurrently(t, invalidIntegers, func(n string) error {
			if err := expectEqual(Integer.ValidateAndParse(&n, &defaultValue, nil), &defaultValue); err != nil {
				return err
			}
			return expectEqual(Integer.ValidateAndParseAsync(&n, &defaultValue, nil).Value(), &defaultValue)
		})
	})
	t.Run("invalid value without default", func(t *testing.T) {
		forEachConcurrently(t, invalidIntegers, func(n string) error {
			if Integer.ValidateAndParse(&n, nil, nil) != nil || Integer.ValidateAndParseAsync(&n, nil, nil).Value() != nil {
				return fmt.Errorf("expected no value for %q", n)
			}
			return nil
		})
	})
	t.Run("default substitution", func(t *testing.T) {
		assert.Equal(t, int64(999), *Integer.ValidateAndParse(field.ToOptionalString("123i"), field.ToOptionalInt64(999), nil))
		assert.Equal(t, int64(12312312), *Integer.ValidateAndParse(field.ToOptionalString("12312312"), field.ToOptionalInt64(999), nil))
	})
	t.Run("hexadecimal with both options", func(t *testing.T) {
		options := &IntegerOptions{
			ValidatorOptions: &validation.IntegerOptions{Base: 16},
			ParserOptions:    &IntegerParseOptions{Base: 16},
		}
		assert.Equal(t, int64(65501), *Integer.ValidateAndParse(field.ToOptionalString("ffdd"), nil, options))
		assert.Equal(t, int64(493), *Integer.ValidateAndParse(field.ToOptionalString("0x1ed"), nil, options))
		assert.Equal(t, int64(1), *Integer.ValidateAndParse(field.ToOptionalString("xyz"), field.ToOptionalInt64(1), options))
	})
	t.Run("options are not synchronised", func(t *testing.T) {
		// "a" is valid by default but is not a decimal number.
		assert.Nil(t, Integer.ValidateAndParse(field.ToOptionalString("a"), field.ToOptionalInt64(1), nil))
		assert.Equal(t, int64(10), *Integer.ValidateAndParse(field.ToOptionalString("a"), nil, &IntegerOptions{ParserOptions: &IntegerParseOptions{Base: 16}}))
	})
}
