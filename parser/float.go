/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parser

import (
	"github.com/ARM-software/stringto/parallelisation"
	"github.com/ARM-software/stringto/validation"
)

const kindFloat = "float"

// Float is a ready-to-use float parser relying on the default validator.
var Float = NewFloatParser()

// FloatParseOptions exists for symmetry with IntegerParseOptions: no option is accepted as floats are always parsed as decimals with a `.` decimal point.
type FloatParseOptions struct{}

// FloatOptions are the options of FloatParser.ValidateAndParse.
type FloatOptions = Options[validation.FloatOptions, FloatParseOptions]

// FloatParser validates and parses strings into float64.
type FloatParser struct {
	options *ParserOptions
}

var _ IParser[float64, validation.FloatOptions, FloatParseOptions] = &FloatParser{}

// NewFloatParser returns a float parser.
func NewFloatParser(opts ...ParserOption) *FloatParser {
	return &FloatParser{options: WithOptions(opts...)}
}

// Validate determines whether value is a floating-point number (see validation.FloatOptions). nil values are invalid.
func (p *FloatParser) Validate(value *string, options *validation.FloatOptions) bool {
	text := toText(value)
	return orDefault(p.options).validate(kindFloat, text, func(v validation.IValidator) bool {
		return v.IsFloat(text, options)
	})
}

func (p *FloatParser) ValidateAsync(value *string, options *validation.FloatOptions) parallelisation.IFuture[bool] {
	return validateAsync[float64, validation.FloatOptions, FloatParseOptions](p, value, options)
}

// Parse reads the decimal number at the start of value and ignores any trailing characters e.g. `1.5kg` is parsed as 1.5.
// If no number can be read, NaN is returned.
func (p *FloatParser) Parse(value *string, _ *FloatParseOptions) Number[float64] {
	f, ok := parseLeadingFloat(toText(value))
	if !ok {
		return NaN[float64]()
	}
	return NewNumber(f)
}

func (p *FloatParser) ParseAsync(value *string, options *FloatParseOptions) parallelisation.IFuture[Number[float64]] {
	return parseAsync[float64, validation.FloatOptions, FloatParseOptions](p, value, options)
}

// ValidateAndParse parses value if it is a valid float or else returns defaultValue.
func (p *FloatParser) ValidateAndParse(value *string, defaultValue *float64, options *FloatOptions) *float64 {
	return validateAndParse[float64, validation.FloatOptions, FloatParseOptions](p, value, defaultValue, options)
}

func (p *FloatParser) ValidateAndParseAsync(value *string, defaultValue *float64, options *FloatOptions) parallelisation.IFuture[*float64] {
	return validateAndParseAsync[float64, validation.FloatOptions, FloatParseOptions](p, value, defaultValue, options)
}
