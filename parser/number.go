/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parser

import (
	"fmt"
	"math"

	"github.com/ARM-software/stringto/field"
	"github.com/ARM-software/stringto/safecast"
)

// Number is the result of a parse. A Number which is not Valid is "not a number" (NaN).
// For floating-point types, the Value of a NaN is also math.NaN().
type Number[T safecast.INumber] struct {
	Value T
	Valid bool
}

// NewNumber returns a valid Number.
func NewNumber[T safecast.INumber](v T) Number[T] {
	return Number[T]{Value: v, Valid: true}
}

// NaN returns the "not a number" value of type T.
func NaN[T safecast.INumber]() (n Number[T]) {
	switch v := any(&n.Value).(type) {
	case *float64:
		*v = math.NaN()
	case *float32:
		*v = float32(math.NaN())
	}
	return
}

// IsNaN states whether the parse failed.
func (n Number[T]) IsNaN() bool {
	return !n.Valid
}

// Get returns the value and whether it is valid.
func (n Number[T]) Get() (T, bool) {
	return n.Value, n.Valid
}

// ToOptional returns a pointer to the value or nil if NaN.
func (n Number[T]) ToOptional() *T {
	if !n.Valid {
		return nil
	}
	return field.ToOptional(n.Value)
}

// OrElse returns the value or defaultValue if NaN.
func (n Number[T]) OrElse(defaultValue T) T {
	if !n.Valid {
		return defaultValue
	}
	return n.Value
}

// Equal reports whether two numbers are both NaN or both valid with the same value.
func (n Number[T]) Equal(other Number[T]) bool {
	if !n.Valid || !other.Valid {
		return n.Valid == other.Valid
	}
	return n.Value == other.Value
}

// Int returns the value as an int, saturated to the int range. NaN is converted to 0.
func (n Number[T]) Int() int {
	if !n.Valid {
		return 0
	}
	return safecast.ToInt(n.Value)
}

// Int32 returns the value as an int32, saturated to the int32 range. NaN is converted to 0.
func (n Number[T]) Int32() int32 {
	if !n.Valid {
		return 0
	}
	return safecast.ToInt32(n.Value)
}

// Int64 returns the value as an int64, saturated to the int64 range. NaN is converted to 0.
func (n Number[T]) Int64() int64 {
	if !n.Valid {
		return 0
	}
	return safecast.ToInt64(n.Value)
}

// Uint returns the value as an uint. Negative values and NaN are converted to 0.
func (n Number[T]) Uint() uint {
	if !n.Valid {
		return 0
	}
	return safecast.ToUint(n.Value)
}

// Float64 returns the value as a float64, NaN included.
func (n Number[T]) Float64() float64 {
	if !n.Valid {
		return math.NaN()
	}
	return safecast.ToFloat64(n.Value)
}

func (n Number[T]) String() string {
	if !n.Valid {
		return "NaN"
	}
	return fmt.Sprint(n.Value)
}
