/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the sentinel wrapped by every shape or parameter
// validation failure. Check it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Stage identifies the pipeline stage that rejected its input
type Stage string

const (
	StageInput     Stage = "input"
	StageConfig    Stage = "config"
	StageFilter    Stage = "filter"
	StageClean     Stage = "clean"
	StageBinarize  Stage = "binarize"
	StageIndex     Stage = "index"
	StageAnalyze   Stage = "analyze"
	StageVariation Stage = "variability"
)

// ProfileError describes a rejected input with enough context to locate it.
type ProfileError struct {
	Stage   Stage
	Column  string
	Message string
	Err     error
}

// Error 实现 error 接口
func (e *ProfileError) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s] %s", e.Stage, e.Message))
	if e.Column != "" {
		builder.WriteString(fmt.Sprintf(" (column '%s')", e.Column))
	}
	if e.Err != nil && e.Err != ErrInvalidInput {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

// Unwrap exposes the cause. Validation errors always chain to ErrInvalidInput.
func (e *ProfileError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrInvalidInput {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// NewInvalidInputError builds a ProfileError wrapping ErrInvalidInput.
func NewInvalidInputError(stage Stage, column string, format string, args ...interface{}) error {
	return &ProfileError{
		Stage:   stage,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
		Err:     ErrInvalidInput,
	}
}

// WrapInvalidInput attaches a cause (e.g. a regexp compile error) to a validation failure.
func WrapInvalidInput(stage Stage, column string, cause error, format string, args ...interface{}) error {
	return &ProfileError{
		Stage:   stage,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}
