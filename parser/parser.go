/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package parser validates and parses strings into numbers.
//
// Each parser offers three operations: Validate, Parse and ValidateAndParse. Parse is permissive and reads
// the number at the start of a string, ignoring what follows, whereas Validate is strict. ValidateAndParse
// combines both and falls back to a default value on invalid input: it is the operation most callers should use.
// No operation panics or returns an error: failures are reported through `false`, NaN or the default value.
package parser

import (
	"github.com/go-logr/logr"

	"github.com/ARM-software/stringto/commonerrors"
	"github.com/ARM-software/stringto/field"
	"github.com/ARM-software/stringto/parallelisation"
	"github.com/ARM-software/stringto/safecast"
	"github.com/ARM-software/stringto/validation"
)

// AbsentValue is the text an absent (nil) value is converted to before being validated or parsed. It is never a valid number.
const AbsentValue = "<nil>"

// ParserOptions defines the collaborators of a parser.
type ParserOptions struct {
	validator validation.IValidator
	logger    logr.Logger
}

// Default resets the options to their default values.
func (o *ParserOptions) Default() *ParserOptions {
	o.validator = validation.DefaultValidator()
	o.logger = logr.Discard()
	return o
}

// ParserOption modifies parser options.
type ParserOption func(*ParserOptions) *ParserOptions

// DefaultParserOptions returns the options used by default: the govalidator-based validator and no logging.
func DefaultParserOptions() *ParserOptions {
	return (&ParserOptions{}).Default()
}

// WithOptions returns the default options modified by opts.
func WithOptions(opts ...ParserOption) (o *ParserOptions) {
	o = DefaultParserOptions()
	for i := range opts {
		if opts[i] != nil {
			o = opts[i](o)
		}
	}
	return
}

// WithValidator sets the validator used to classify strings. A nil validator means the default one.
func WithValidator(v validation.IValidator) ParserOption {
	return func(o *ParserOptions) *ParserOptions {
		if o == nil {
			o = DefaultParserOptions()
		}
		if v == nil {
			v = validation.DefaultValidator()
		}
		o.validator = v
		return o
	}
}

// WithLogger sets the logger used to trace rejected values (at verbosity 1).
func WithLogger(logger logr.Logger) ParserOption {
	return func(o *ParserOptions) *ParserOptions {
		if o == nil {
			o = DefaultParserOptions()
		}
		o.logger = logger
		return o
	}
}

func orDefault(o *ParserOptions) *ParserOptions {
	if o == nil {
		return DefaultParserOptions()
	}
	return o
}

// validate runs the validator check and converts any panic into a rejection.
func (o *ParserOptions) validate(kind, text string, check func(v validation.IValidator) bool) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
			o.logger.Error(commonerrors.Newf(commonerrors.ErrUnexpected, "%v", r), "validator panicked", "kind", kind, "value", text)
		}
	}()
	valid = check(o.validator)
	if !valid {
		o.logger.V(1).Info("value rejected", "kind", kind, "value", text)
	}
	return
}

func toText(value *string) string {
	return field.OptionalString(value, AbsentValue)
}

func validateAndParse[T safecast.INumber, V any, P any](p IParser[T, V, P], value *string, defaultValue *T, options *Options[V, P]) *T {
	if !p.Validate(value, options.validatorOptions()) {
		return defaultValue
	}
	return p.Parse(value, options.parserOptions()).ToOptional()
}

func validateAsync[T safecast.INumber, V any, P any](p IParser[T, V, P], value *string, options *V) parallelisation.IFuture[bool] {
	return parallelisation.Resolve(func() bool {
		return p.Validate(value, options)
	})
}

func parseAsync[T safecast.INumber, V any, P any](p IParser[T, V, P], value *string, options *P) parallelisation.IFuture[Number[T]] {
	return parallelisation.Resolve(func() Number[T] {
		return p.Parse(value, options)
	})
}

func validateAndParseAsync[T safecast.INumber, V any, P any](p IParser[T, V, P], value *string, defaultValue *T, options *Options[V, P]) parallelisation.IFuture[*T] {
	return parallelisation.Resolve(func() *T {
		return p.ValidateAndParse(value, defaultValue, options)
	})
}
