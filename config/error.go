/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/stringto/commonerrors"
)

// IValidationError describes why a configuration entry failed validation.
type IValidationError interface {
	error
	fmt.Stringer
	// GetTreePath returns the path to the faulty entry using Go field names e.g. `Integer->Min`.
	GetTreePath() string
	// GetMapStructurePath returns the environment variable-like path to the faulty entry e.g. `INTEGER_MIN`.
	GetMapStructurePath() string
	// GetReason returns the validation failure message.
	GetReason() string
	Unwrap() error
}

// WrapFieldValidationError records that the validation error err happened in the field fieldName (whose mapstructure tag may be nil).
func WrapFieldValidationError(fieldName string, mapStructure *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.recordField(fieldName, mapStructure)
	return vErr
}

type validationError struct {
	tree             []string
	mapStructureTree []string
	reason           string
}

func (v *validationError) recordField(fieldName string, mapStructure *string) {
	v.tree = slices.Insert(v.tree, 0, strings.TrimSpace(fieldName))
	if mapStructure != nil {
		if tag := processMapStructureString(*mapStructure); tag != "" {
			v.mapStructureTree = slices.Insert(v.mapStructureTree, 0, strings.ToUpper(tag))
		}
	}
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.tree, "->")
}

func (v *validationError) GetMapStructurePath() string {
	return strings.ReplaceAll(strings.Join(v.mapStructureTree, EnvVarSeparator), "-", EnvVarSeparator)
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) Error() string {
	var b strings.Builder
	if tree := v.GetTreePath(); tree != "" {
		_, _ = fmt.Fprintf(&b, " (%v)", tree)
	}
	if path := v.GetMapStructurePath(); path != "" {
		_, _ = fmt.Fprintf(&b, " [%v]", path)
	}
	if v.reason != "" {
		_, _ = fmt.Fprintf(&b, " %v", v.reason)
	}
	return commonerrors.Newf(v.Unwrap(), "structure failed validation:%v", b.String()).Error()
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) && len(oes) > 0 {
		// Only the first faulty field, in alphabetical order, is reported.
		name := slices.Sorted(maps.Keys(oes))[0]
		sub := newValidationError(oes[name])
		if sub == nil {
			sub = &validationError{}
		}
		sub.recordField(name, &name)
		return sub
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Error()}
	}
	return &validationError{reason: err.Error()}
}

// processMapStructureString returns the key name of a mapstructure tag, ignoring options such as `squash` or `omitempty`.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
