/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package validation classifies strings as numbers and provides the corresponding validation rules.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/ARM-software/stringto/value"
)

const (
	hexadecimalBase = 16
	decimalBase     = 10
	exponentMarkers = "eE"
	decimalDigits   = "0123456789"
)

var defaultValidator IValidator = &validator{}

// DefaultValidator returns the validator used by default by parsers.
// It relies on https://github.com/asaskevich/govalidator for string classification.
func DefaultValidator() IValidator {
	return defaultValidator
}

type validator struct{}

func (v *validator) IsInteger(text string, options *IntegerOptions) bool {
	if options.Validate() != nil || value.IsBlank(text) {
		return false
	}
	sign, digits := splitSign(text)
	base := options.base()
	switch base {
	case 0:
		if isDecimal(digits) {
			base = decimalBase
		} else if govalidator.IsHexadecimal(digits) {
			base = hexadecimalBase
		} else {
			return false
		}
	case hexadecimalBase:
		digits = trimHexadecimalPrefix(digits)
		if !govalidator.IsHexadecimal(digits) {
			return false
		}
	case decimalBase:
		if !isDecimal(digits) {
			return false
		}
	}
	if !options.allowLeadingZeroes() && len(digits) > 1 && digits[0] == '0' {
		return false
	}
	// strconv also checks digits belong to the base and the value fits in an int64.
	i, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		return false
	}
	return options.inRange(i)
}

func (v *validator) IsFloat(text string, options *FloatOptions) bool {
	if options.Validate() != nil || value.IsBlank(text) {
		return false
	}
	separator := options.decimalSeparator()
	if separator != DefaultDecimalSeparator {
		if strings.Contains(text, DefaultDecimalSeparator) {
			return false
		}
		text = strings.Replace(text, separator, DefaultDecimalSeparator, 1)
	}
	sign, unsigned := splitSign(text)
	if strings.HasPrefix(unsigned, "+") || strings.HasPrefix(unsigned, "-") || !govalidator.IsFloat(unsigned) {
		return false
	}
	mantissa := unsigned
	if i := strings.IndexAny(unsigned, exponentMarkers); i >= 0 {
		mantissa = unsigned[:i]
	}
	if !strings.ContainsAny(mantissa, decimalDigits) {
		return false
	}
	if !options.allowLeadingDecimalPoint() && strings.HasPrefix(mantissa, DefaultDecimalSeparator) {
		return false
	}
	if !options.allowTrailingDecimalPoint() && strings.HasSuffix(mantissa, DefaultDecimalSeparator) {
		return false
	}
	f, err := strconv.ParseFloat(sign+unsigned, 64)
	if err != nil || math.IsInf(f, 0) {
		return false
	}
	return options.inRange(f)
}

func isDecimal(digits string) bool {
	// govalidator considers the empty string numeric.
	return digits != "" && govalidator.IsNumeric(digits)
}

func splitSign(text string) (sign, unsigned string) {
	if text != "" && (text[0] == '+' || text[0] == '-') {
		return text[:1], text[1:]
	}
	return "", text
}

func trimHexadecimalPrefix(digits string) string {
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return digits[2:]
	}
	return digits
}
