/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package validation

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/stringto/$GOPACKAGE IValidator

// IValidator classifies strings as numbers. Implementations must accept any string and never panic.
type IValidator interface {
	// IsInteger determines whether text is an integer according to options. nil options means default options.
	IsInteger(text string, options *IntegerOptions) bool
	// IsFloat determines whether text is a floating-point number according to options. nil options means default options.
	IsFloat(text string, options *FloatOptions) bool
}
