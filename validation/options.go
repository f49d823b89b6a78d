/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package validation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/stringto/commonerrors"
	"github.com/ARM-software/stringto/field"
)

const (
	// MinBase is the smallest numeric base supported.
	MinBase = 2
	// MaxBase is the largest numeric base supported (digits 0-9 then letters a-z).
	MaxBase = 36
	// DefaultDecimalSeparator is the separator between the integral and fractional parts of a float.
	DefaultDecimalSeparator = "."
)

// boundsInOrder checks that the upper bound is not lower than the lower bound when both are set.
// If either bound is exclusive, the bounds must also differ.
func boundsInOrder[T int64 | float64](lower, upper *T, exclusive bool) validation.Rule {
	return validation.By(func(_ any) error {
		if lower == nil || upper == nil {
			return nil
		}
		if *upper < *lower {
			return validation.NewError("validation_bounds_order", "must be no less than the minimum")
		}
		if exclusive && *upper == *lower {
			return validation.NewError("validation_bounds_order", "must be greater than the minimum")
		}
		return nil
	})
}

// IntegerOptions defines how integer strings are classified.
type IntegerOptions struct {
	// Base is the numeric base digits must belong to. If unset (0), both decimal digits and bare hexadecimal digits are accepted.
	// If set to 16, a `0x` prefix is also accepted.
	Base int `mapstructure:"base"`
	// AllowLeadingZeroes states whether numbers such as `0123` are valid. Defaults to true.
	AllowLeadingZeroes *bool `mapstructure:"allow_leading_zeroes"`
	// Min is the inclusive lower bound.
	Min *int64 `mapstructure:"min"`
	// Max is the inclusive upper bound.
	Max *int64 `mapstructure:"max"`
	// GreaterThan is the exclusive lower bound.
	GreaterThan *int64 `mapstructure:"gt"`
	// LessThan is the exclusive upper bound.
	LessThan *int64 `mapstructure:"lt"`
}

// Validate checks the options are consistent.
func (o *IntegerOptions) Validate() error {
	if o == nil {
		return nil
	}
	err := validation.ValidateStruct(o,
		validation.Field(&o.Base, validation.When(o.Base != 0, validation.Min(MinBase), validation.Max(MaxBase))),
		validation.Field(&o.Max, boundsInOrder(o.Min, o.Max, false), boundsInOrder(o.GreaterThan, o.Max, true)),
		validation.Field(&o.LessThan, boundsInOrder(o.Min, o.LessThan, true), boundsInOrder(o.GreaterThan, o.LessThan, true)),
	)
	return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid integer validation options")
}

func (o *IntegerOptions) allowLeadingZeroes() bool {
	if o == nil {
		return true
	}
	return field.OptionalBool(o.AllowLeadingZeroes, true)
}

func (o *IntegerOptions) base() int {
	if o == nil {
		return 0
	}
	return o.Base
}

func (o *IntegerOptions) inRange(i int64) bool {
	if o == nil {
		return true
	}
	switch {
	case o.Min != nil && i < *o.Min:
		return false
	case o.Max != nil && i > *o.Max:
		return false
	case o.GreaterThan != nil && i <= *o.GreaterThan:
		return false
	case o.LessThan != nil && i >= *o.LessThan:
		return false
	default:
		return true
	}
}

// FloatOptions defines how float strings are classified.
type FloatOptions struct {
	// DecimalSeparator is the character separating the integral part from the fractional part. Defaults to `.`.
	DecimalSeparator string `mapstructure:"decimal_separator"`
	// AllowLeadingDecimalPoint states whether numbers such as `.5` are valid. Defaults to true.
	AllowLeadingDecimalPoint *bool `mapstructure:"allow_leading_decimal_point"`
	// AllowTrailingDecimalPoint states whether numbers such as `5.` are valid. Defaults to true.
	AllowTrailingDecimalPoint *bool `mapstructure:"allow_trailing_decimal_point"`
	// Min is the inclusive lower bound.
	Min *float64 `mapstructure:"min"`
	// Max is the inclusive upper bound.
	Max *float64 `mapstructure:"max"`
	// GreaterThan is the exclusive lower bound.
	GreaterThan *float64 `mapstructure:"gt"`
	// LessThan is the exclusive upper bound.
	LessThan *float64 `mapstructure:"lt"`
}

// Validate checks the options are consistent.
func (o *FloatOptions) Validate() error {
	if o == nil {
		return nil
	}
	err := validation.ValidateStruct(o,
		validation.Field(&o.DecimalSeparator, validation.RuneLength(1, 1), validation.NotIn("+", "-", "e", "E", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")),
		validation.Field(&o.Max, boundsInOrder(o.Min, o.Max, false), boundsInOrder(o.GreaterThan, o.Max, true)),
		validation.Field(&o.LessThan, boundsInOrder(o.Min, o.LessThan, true), boundsInOrder(o.GreaterThan, o.LessThan, true)),
	)
	return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid float validation options")
}

func (o *FloatOptions) decimalSeparator() string {
	if o == nil || o.DecimalSeparator == "" {
		return DefaultDecimalSeparator
	}
	return o.DecimalSeparator
}

func (o *FloatOptions) allowLeadingDecimalPoint() bool {
	if o == nil {
		return true
	}
	return field.OptionalBool(o.AllowLeadingDecimalPoint, true)
}

func (o *FloatOptions) allowTrailingDecimalPoint() bool {
	if o == nil {
		return true
	}
	return field.OptionalBool(o.AllowTrailingDecimalPoint, true)
}

func (o *FloatOptions) inRange(f float64) bool {
	if o == nil {
		return true
	}
	switch {
	case o.Min != nil && f < *o.Min:
		return false
	case o.Max != nil && f > *o.Max:
		return false
	case o.GreaterThan != nil && f <= *o.GreaterThan:
		return false
	case o.LessThan != nil && f >= *o.LessThan:
		return false
	default:
		return true
	}
}
