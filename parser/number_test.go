/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parser

import (
	"math"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaN(t *testing.T) {
	i := NaN[int64]()
	assert.True(t, i.IsNaN())
	assert.Zero(t, i.Value)
	f := NaN[float64]()
	assert.True(t, f.IsNaN())
	assert.True(t, math.IsNaN(f.Value))
	f32 := NaN[float32]()
	assert.True(t, math.IsNaN(float64(f32.Value)))
	assert.Equal(t, "NaN", i.String())
	assert.Equal(t, "NaN", f.String())
}

func TestNumber(t *testing.T) {
	random, err := faker.RandomInt(-1000, 1000, 1)
	require.NoError(t, err)
	v := int64(random[0])
	n := NewNumber(v)
	assert.False(t, n.IsNaN())
	got, ok := n.Get()
	assert.True(t, ok)
	assert.Equal(t, v, got)
	require.NotNil(t, n.ToOptional())
	assert.Equal(t, v, *n.ToOptional())
	assert.Equal(t, v, n.OrElse(v+1))
	assert.Equal(t, float64(v), n.Float64())

	nan := NaN[int64]()
	_, ok = nan.Get()
	assert.False(t, ok)
	assert.Nil(t, nan.ToOptional())
	assert.Equal(t, v, nan.OrElse(v))
	assert.True(t, math.IsNaN(nan.Float64()))
	assert.Zero(t, nan.Int())
	assert.Zero(t, nan.Int32())
	assert.Zero(t, nan.Int64())
	assert.Zero(t, nan.Uint())
}

func TestNumberEqual(t *testing.T) {
	assert.True(t, NaN[float64]().Equal(NaN[float64]()))
	assert.True(t, NewNumber(1.5).Equal(NewNumber(1.5)))
	assert.False(t, NewNumber(1.5).Equal(NaN[float64]()))
	assert.False(t, NaN[int64]().Equal(NewNumber(int64(0))))
	assert.False(t, NewNumber(int64(1)).Equal(NewNumber(int64(2))))
}

func TestNumberConversions(t *testing.T) {
	big := NewNumber(int64(math.MaxInt64))
	assert.Equal(t, int32(math.MaxInt32), big.Int32())
	assert.Equal(t, int64(math.MaxInt64), big.Int64())
	assert.Equal(t, uint(0), NewNumber(int64(-5)).Uint())
	assert.Equal(t, uint(5), NewNumber(int64(5)).Uint())

	f := NewNumber(-2.7)
	assert.Equal(t, -2, f.Int())
	assert.Equal(t, int64(math.MinInt64), NewNumber(math.Inf(-1)).Int64())
	assert.Equal(t, "-2.7", f.String())
	assert.Equal(t, "42", NewNumber(int64(42)).String())
}
