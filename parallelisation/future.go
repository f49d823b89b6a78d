/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"
	"sync"
)

// IFuture is a value which may not be available yet.
type IFuture[T any] interface {
	// Done returns a channel which is closed once the value is available.
	Done() <-chan struct{}
	// Value blocks until the value is available and returns it.
	Value() T
	// Get returns the value as soon as it is available, or an error if the context is done before.
	// A value which is already available is always returned, whatever the state of the context.
	Get(ctx context.Context) (T, error)
}

type future[T any] struct {
	done  chan struct{}
	value T
}

func (f *future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *future[T]) Value() T {
	<-f.done
	return f.value
}

func (f *future[T]) Get(ctx context.Context) (value T, err error) {
	select {
	case <-f.done:
		value = f.value
		return
	default:
	}
	select {
	case <-f.done:
		value = f.value
	case <-ctx.Done():
		err = DetermineContextError(ctx)
	}
	return
}

// NewResolvedFuture returns a future whose value is already available.
func NewResolvedFuture[T any](value T) IFuture[T] {
	f, resolve := NewPromise[T]()
	resolve(value)
	return f
}

// Resolve calls fn in the calling goroutine and returns its result as a resolved future.
func Resolve[T any](fn func() T) IFuture[T] {
	return NewResolvedFuture(fn())
}

// NewPromise returns a future together with the function resolving it. Only the first call to resolve has an effect.
func NewPromise[T any]() (IFuture[T], func(T)) {
	f := &future[T]{
		done: make(chan struct{}),
	}
	var once sync.Once
	return f, func(value T) {
		once.Do(func() {
			f.value = value
			close(f.done)
		})
	}
}
