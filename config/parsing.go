/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ARM-software/stringto/field"
	"github.com/ARM-software/stringto/parser"
	numeric "github.com/ARM-software/stringto/validation"
)

const decimalBase = 10

// decimalIntegers are the options used for integers found in configuration values e.g. bounds.
var decimalIntegers = &parser.IntegerOptions{
	ValidatorOptions: &numeric.IntegerOptions{Base: decimalBase},
	ParserOptions:    &parser.IntegerParseOptions{Base: decimalBase},
}

// ParsingConfiguration defines how strings are validated and parsed into numbers.
// It can be loaded from the environment using Load e.g. `<PREFIX>_INTEGER_BASE=16`.
type ParsingConfiguration struct {
	Integer IntegerConfiguration `mapstructure:"integer"`
	Float   FloatConfiguration   `mapstructure:"float"`
}

// DefaultParsingConfiguration returns the configuration corresponding to the default behaviour of parsers.
func DefaultParsingConfiguration() *ParsingConfiguration {
	return &ParsingConfiguration{
		Integer: IntegerConfiguration{
			AllowLeadingZeroes: true,
		},
		Float: FloatConfiguration{
			DecimalSeparator:          numeric.DefaultDecimalSeparator,
			AllowLeadingDecimalPoint:  true,
			AllowTrailingDecimalPoint: true,
		},
	}
}

func (c *ParsingConfiguration) Validate() error {
	return ValidateEmbedded(c)
}

// IntegerConfiguration defines how integers are validated and parsed.
type IntegerConfiguration struct {
	// Base is the base used for parsing (see parser.IntegerParseOptions).
	Base int `mapstructure:"base"`
	// ValidationBase is the base used for validation (see validation.IntegerOptions).
	ValidationBase     int  `mapstructure:"validation_base"`
	AllowLeadingZeroes bool `mapstructure:"allow_leading_zeroes"`
	// Min is the inclusive lower bound, as a decimal integer. No bound if empty.
	Min string `mapstructure:"min"`
	// Max is the inclusive upper bound, as a decimal integer. No bound if empty.
	Max string `mapstructure:"max"`
}

func (c *IntegerConfiguration) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Base, validation.When(c.Base != 0, validation.Min(numeric.MinBase), validation.Max(numeric.MaxBase))),
		validation.Field(&c.Min, numeric.IsIntegerString(decimalIntegers.ValidatorOptions)),
		validation.Field(&c.Max, numeric.IsIntegerString(decimalIntegers.ValidatorOptions)),
	)
	if err != nil {
		return err
	}
	return c.ValidationOptions().Validate()
}

// ValidationOptions converts the configuration into validation options.
func (c *IntegerConfiguration) ValidationOptions() *numeric.IntegerOptions {
	return &numeric.IntegerOptions{
		Base:               c.ValidationBase,
		AllowLeadingZeroes: field.ToOptionalBool(c.AllowLeadingZeroes),
		Min:                parser.Integer.ValidateAndParse(&c.Min, nil, decimalIntegers),
		Max:                parser.Integer.ValidateAndParse(&c.Max, nil, decimalIntegers),
	}
}

// ParseOptions converts the configuration into parsing options.
func (c *IntegerConfiguration) ParseOptions() *parser.IntegerParseOptions {
	return &parser.IntegerParseOptions{Base: c.Base}
}

// Options converts the configuration into parser.IntegerParser.ValidateAndParse options.
func (c *IntegerConfiguration) Options() *parser.IntegerOptions {
	return &parser.IntegerOptions{
		ValidatorOptions: c.ValidationOptions(),
		ParserOptions:    c.ParseOptions(),
	}
}

// FloatConfiguration defines how floating-point numbers are validated and parsed.
type FloatConfiguration struct {
	// DecimalSeparator only applies to validation: parsing always uses a decimal point.
	DecimalSeparator          string `mapstructure:"decimal_separator"`
	AllowLeadingDecimalPoint  bool   `mapstructure:"allow_leading_decimal_point"`
	AllowTrailingDecimalPoint bool   `mapstructure:"allow_trailing_decimal_point"`
	// Min is the inclusive lower bound, written with a decimal point whatever DecimalSeparator is. No bound if empty.
	Min string `mapstructure:"min"`
	// Max is the inclusive upper bound, written with a decimal point whatever DecimalSeparator is. No bound if empty.
	Max string `mapstructure:"max"`
}

func (c *FloatConfiguration) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.DecimalSeparator, is.PrintableASCII),
		validation.Field(&c.Min, numeric.IsFloatString(nil)),
		validation.Field(&c.Max, numeric.IsFloatString(nil)),
	)
	if err != nil {
		return err
	}
	return c.ValidationOptions().Validate()
}

// ValidationOptions converts the configuration into validation options.
func (c *FloatConfiguration) ValidationOptions() *numeric.FloatOptions {
	return &numeric.FloatOptions{
		DecimalSeparator:          c.DecimalSeparator,
		AllowLeadingDecimalPoint:  field.ToOptionalBool(c.AllowLeadingDecimalPoint),
		AllowTrailingDecimalPoint: field.ToOptionalBool(c.AllowTrailingDecimalPoint),
		Min:                       parser.Float.ValidateAndParse(&c.Min, nil, nil),
		Max:                       parser.Float.ValidateAndParse(&c.Max, nil, nil),
	}
}

// Options converts the configuration into parser.FloatParser.ValidateAndParse options.
func (c *FloatConfiguration) Options() *parser.FloatOptions {
	return &parser.FloatOptions{
		ValidatorOptions: c.ValidationOptions(),
		ParserOptions:    &parser.FloatParseOptions{},
	}
}
