/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ARM-software/stringto/validation"
)

const (
	decimalBase     = 10
	hexadecimalBase = 16
	infinity        = "Infinity"
)

func isWhiteSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return validation.MaxBase
	}
}

func splitSign(s string) (sign, unsigned string) {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1], s[1:]
	}
	return "", s
}

func scanDigits(s string, start, base int) (end int) {
	end = start
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	return
}

// isRangeError determines whether a strconv error only reports a value out of range, in which case strconv still returns the closest value.
func isRangeError(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}

// parseLeadingInteger reads the integer at the start of text and ignores anything after it.
// Leading white space is skipped. If base is 0, base 10 is used unless text starts with a `0x` prefix.
// Values which do not fit in an int64 are saturated.
func parseLeadingInteger(text string, base int) (i int64, ok bool) {
	sign, s := splitSign(strings.TrimLeftFunc(text, isWhiteSpace))
	if (base == 0 || base == hexadecimalBase) && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		base = hexadecimalBase
	}
	if base == 0 {
		base = decimalBase
	}
	if base < validation.MinBase || base > validation.MaxBase {
		return
	}
	end := scanDigits(s, 0, base)
	if end == 0 {
		return
	}
	i, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil && !isRangeError(err) {
		return 0, false
	}
	ok = true
	return
}

// parseLeadingFloat reads the decimal literal at the start of text and ignores anything after it.
// Leading white space is skipped. The literal is made of an optional sign, then either `Infinity` or
// digits with an optional decimal point and an optional exponent.
func parseLeadingFloat(text string) (f float64, ok bool) {
	sign, s := splitSign(strings.TrimLeftFunc(text, isWhiteSpace))
	if strings.HasPrefix(s, infinity) {
		f = math.Inf(1)
		if sign == "-" {
			f = math.Inf(-1)
		}
		ok = true
		return
	}
	end := scanDigits(s, 0, decimalBase)
	mantissaDigits := end
	if end < len(s) && s[end] == '.' {
		fractionEnd := scanDigits(s, end+1, decimalBase)
		mantissaDigits += fractionEnd - end - 1
		end = fractionEnd
	}
	if mantissaDigits == 0 {
		return math.NaN(), false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exponentStart := end + 1
		if exponentStart < len(s) && (s[exponentStart] == '+' || s[exponentStart] == '-') {
			exponentStart++
		}
		if exponentEnd := scanDigits(s, exponentStart, decimalBase); exponentEnd > exponentStart {
			end = exponentEnd
		}
	}
	f, err := strconv.ParseFloat(sign+s[:end], 64)
	if err != nil && !isRangeError(err) {
		return math.NaN(), false
	}
	ok = true
	return
}
