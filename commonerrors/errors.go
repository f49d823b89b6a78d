/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the sentinel errors shared by the stringto packages.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUndefined   = errors.New("undefined")
	ErrTimeout     = errors.New("timeout")
	ErrUnsupported = errors.New("unsupported")
	ErrUnknown     = errors.New("unknown")
	ErrInvalid     = errors.New("invalid")
	ErrOutOfRange  = errors.New("out of range")
	ErrMarshalling = errors.New("unserialisable")
	ErrCancelled   = errors.New("cancelled")
	ErrUnexpected  = errors.New("unexpected")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error description contains any of the `descriptions` (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// Ignore returns nil if the error is one of the errors to ignore.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// New creates a new error of type errorType with a reason.
func New(errorType error, reason string) error {
	if reason == "" {
		return errorType
	}
	if errorType == nil {
		return errors.New(reason)
	}
	return fmt.Errorf("%w: %v", errorType, reason)
}

// Newf is similar to New but allows formatting of the reason.
func Newf(errorType error, msgFormat string, args ...any) error {
	return New(errorType, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. If the original error is nil, nil is returned.
// The original error is kept in the chain so that errors.Is works on both.
func WrapError(targetError, originalError error, message string) error {
	if originalError == nil {
		return nil
	}
	if targetError == nil {
		targetError = ErrUnknown
	}
	if message == "" {
		if Any(originalError, targetError) {
			return originalError
		}
		return fmt.Errorf("%w: %w", targetError, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetError, message, originalError)
}

// WrapErrorf is similar to WrapError but allows formatting of the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// ErrFromContext converts a context error into a common error.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return ErrUndefined
	}
	err := ctx.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return WrapError(ErrTimeout, err, "")
	case errors.Is(err, context.Canceled):
		return WrapError(ErrCancelled, err, "")
	default:
		return WrapError(ErrUnexpected, err, "")
	}
}
