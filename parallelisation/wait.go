/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WaitAll waits for all futures to be resolved and returns their values in the same order.
// If the context is done before, the context error is returned.
func WaitAll[T any](ctx context.Context, futures ...IFuture[T]) (values []T, err error) {
	values = make([]T, len(futures))
	g, gCtx := errgroup.WithContext(ctx)
	for i := range futures {
		if futures[i] == nil {
			continue
		}
		g.Go(func() (subErr error) {
			values[i], subErr = futures[i].Get(gCtx)
			return
		})
	}
	err = g.Wait()
	if err != nil {
		values = nil
	}
	return
}
