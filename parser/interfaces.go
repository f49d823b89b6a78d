/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parser

import (
	"github.com/ARM-software/stringto/parallelisation"
	"github.com/ARM-software/stringto/safecast"
)

// IParser validates and parses strings into numbers of type T.
// V defines the validation options and P the parsing options. nil options always mean default options.
// None of the methods panic, whatever the input. Asynchronous variants return futures which are already
// resolved with the value the synchronous variant would have returned.
type IParser[T safecast.INumber, V any, P any] interface {
	// Validate determines whether value can be parsed as T. An absent value is never valid.
	Validate(value *string, options *V) bool
	// ValidateAsync is the asynchronous version of Validate.
	ValidateAsync(value *string, options *V) parallelisation.IFuture[bool]
	// Parse converts value into T without validating it first. Unparseable values result in NaN.
	Parse(value *string, options *P) Number[T]
	// ParseAsync is the asynchronous version of Parse.
	ParseAsync(value *string, options *P) parallelisation.IFuture[Number[T]]
	// ValidateAndParse parses value if valid or else returns defaultValue, which may be nil.
	ValidateAndParse(value *string, defaultValue *T, options *Options[V, P]) *T
	// ValidateAndParseAsync is the asynchronous version of ValidateAndParse.
	ValidateAndParseAsync(value *string, defaultValue *T, options *Options[V, P]) parallelisation.IFuture[*T]
}

// Options gathers the options of both validation and parsing steps of ValidateAndParse.
type Options[V any, P any] struct {
	ValidatorOptions *V
	ParserOptions    *P
}

func (o *Options[V, P]) validatorOptions() *V {
	if o == nil {
		return nil
	}
	return o.ValidatorOptions
}

func (o *Options[V, P]) parserOptions() *P {
	if o == nil {
		return nil
	}
	return o.ParserOptions
}
