/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

// IServiceConfiguration defines a configuration structure which can be loaded by Load.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
