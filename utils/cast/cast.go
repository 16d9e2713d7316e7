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

// Package cast converts heterogeneous cell values into forms the pipeline can
// compare, hash and count.
package cast

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	spfcast "github.com/spf13/cast"
)

// IsMissing reports whether v is a missing marker: nil or a floating-point NaN.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// IsBlank reports whether v is a string made only of whitespace (including "").
func IsBlank(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// IsEmpty reports whether v is missing or exactly the empty string.
func IsEmpty(v any) bool {
	if IsMissing(v) {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// ToKey returns a comparable form of v usable as a map key.
// Primitive values are returned unchanged; collections, timestamps and any
// other composite value are replaced by their string form. Missing markers
// collapse to nil so that NaN compares equal to itself.
func ToKey(v any) any {
	if IsMissing(v) {
		return nil
	}
	switch x := v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return x
	case time.Time:
		// Round(0) strips the monotonic reading so equal instants share one key
		return x.Round(0).String()
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Struct,
		reflect.Ptr, reflect.Func, reflect.Chan, reflect.Interface:
		return ToString(v)
	}
	// named primitive types (type Level string, ...)
	return v
}

// ToString renders any value as a string. Values spf13/cast cannot handle
// (slices, maps, structs) fall back to their %v form.
func ToString(arg any) string {
	if s, err := spfcast.ToStringE(arg); err == nil {
		return s
	}
	return fmt.Sprintf("%v", arg)
}

// ToFloat64E converts numeric values and numeric strings to float64
func ToFloat64E(arg any) (float64, error) {
	return spfcast.ToFloat64E(arg)
}
