/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parser

import (
	"github.com/ARM-software/stringto/parallelisation"
	"github.com/ARM-software/stringto/validation"
)

const kindInteger = "integer"

// Integer is a ready-to-use integer parser relying on the default validator.
var Integer = NewIntegerParser()

// IntegerParseOptions defines how integers are parsed.
type IntegerParseOptions struct {
	// Base is the numeric base of the digits. If unset (0), base 10 is used unless the text has a `0x` prefix, in which case base 16 is used.
	// With base 16, an optional `0x` prefix is skipped. Bases outside [2, 36] result in NaN.
	Base int `mapstructure:"base"`
}

func (o *IntegerParseOptions) base() int {
	if o == nil {
		return 0
	}
	return o.Base
}

// IntegerOptions are the options of IntegerParser.ValidateAndParse.
type IntegerOptions = Options[validation.IntegerOptions, IntegerParseOptions]

// IntegerParser validates and parses strings into int64.
type IntegerParser struct {
	options *ParserOptions
}

var _ IParser[int64, validation.IntegerOptions, IntegerParseOptions] = &IntegerParser{}

// NewIntegerParser returns an integer parser.
func NewIntegerParser(opts ...ParserOption) *IntegerParser {
	return &IntegerParser{options: WithOptions(opts...)}
}

// Validate determines whether value is an integer (see validation.IntegerOptions). nil values are invalid.
func (p *IntegerParser) Validate(value *string, options *validation.IntegerOptions) bool {
	text := toText(value)
	return orDefault(p.options).validate(kindInteger, text, func(v validation.IValidator) bool {
		return v.IsInteger(text, options)
	})
}

func (p *IntegerParser) ValidateAsync(value *string, options *validation.IntegerOptions) parallelisation.IFuture[bool] {
	return validateAsync[int64, validation.IntegerOptions, IntegerParseOptions](p, value, options)
}

// Parse reads the integer at the start of value and ignores any trailing characters e.g. `123i` is parsed as 123.
// If no digit can be read, NaN is returned. Values not fitting in an int64 are saturated.
func (p *IntegerParser) Parse(value *string, options *IntegerParseOptions) Number[int64] {
	i, ok := parseLeadingInteger(toText(value), options.base())
	if !ok {
		return NaN[int64]()
	}
	return NewNumber(i)
}

func (p *IntegerParser) ParseAsync(value *string, options *IntegerParseOptions) parallelisation.IFuture[Number[int64]] {
	return parseAsync[int64, validation.IntegerOptions, IntegerParseOptions](p, value, options)
}

// ValidateAndParse parses value if it is a valid integer or else returns defaultValue.
// Validation and parsing options are independent: a base must be given to both if needed.
func (p *IntegerParser) ValidateAndParse(value *string, defaultValue *int64, options *IntegerOptions) *int64 {
	return validateAndParse[int64, validation.IntegerOptions, IntegerParseOptions](p, value, defaultValue, options)
}

func (p *IntegerParser) ValidateAndParseAsync(value *string, defaultValue *int64, options *IntegerOptions) parallelisation.IFuture[*int64] {
	return validateAndParseAsync[int64, validation.IntegerOptions, IntegerParseOptions](p, value, defaultValue, options)
}
