/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides utilities to handle optional values i.e. values which may be absent.
// An absent value is represented by a nil pointer. It was inspired by the kubernetes package https://pkg.go.dev/k8s.io/utils/pointer.
package field

// ToOptional returns a pointer to a copy of v.
func ToOptional[T any](v T) *T {
	return &v
}

// Optional returns the value of an optional field or else returns defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// ToOptionalString returns a pointer to a string.
func ToOptionalString(s string) *string {
	return ToOptional(s)
}

// OptionalString returns the value of an optional field or else returns defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt64 returns a pointer to an int64.
func ToOptionalInt64(i int64) *int64 {
	return ToOptional(i)
}

// OptionalInt64 returns the value of an optional field or else returns defaultValue.
func OptionalInt64(ptr *int64, defaultValue int64) int64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalFloat64 returns a pointer to a float64.
func ToOptionalFloat64(f float64) *float64 {
	return ToOptional(f)
}

// OptionalFloat64 returns the value of an optional field or else returns defaultValue.
func OptionalFloat64(ptr *float64, defaultValue float64) float64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalBool returns a pointer to a bool.
func ToOptionalBool(b bool) *bool {
	return ToOptional(b)
}

// OptionalBool returns the value of an optional field or else returns defaultValue.
func OptionalBool(ptr *bool, defaultValue bool) bool {
	return Optional(ptr, defaultValue)
}

// Equal reports whether two optional values are both absent or both set to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
