/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package parallelisation

import (
	"context"

	"github.com/ARM-software/stringto/commonerrors"
)

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if err == nil {
		return nil
	}
	cause := context.Cause(ctx)
	if cause == nil || commonerrors.Any(err, cause) {
		return err
	}
	return commonerrors.WrapError(err, cause, "")
}
