/*
   Copyright 2026 The Tonal Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered. This is useful when checking a whole phrase of pitches or a
// list of intervals loaded from configuration, where reporting every illegal
// value at once beats stopping at the first.
//
// The function iterates through each model in the provided slice and invokes
// its Validate method. When a model fails validation, the error is wrapped
// with the model's position in the slice (zero-indexed) and its type name
// obtained from TypeName, so callers can identify exactly which values
// failed and why.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error aggregating all individual failures via rxmerr.Collector.
// If all models pass, it returns nil. The function always processes the
// entire slice even when early elements fail, ensuring complete error
// reporting. Empty slices are considered valid.
//
// Example:
//
//	phrase := []pitch.Pitch{p0, p1, p2}
//	if err := model.ValidateAll(phrase); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models by removing
// all instances where IsZero returns true.
//
// The returned slice is always a new allocation and never shares backing
// array storage with the input slice. If all models in the input are zero,
// the function returns an empty slice (not nil).
//
// Remember that for tonal types zero often means "C natural octave 0" or
// "perfect prime", which are valid values; FilterZero is for pruning unset
// optional fields, not for dropping invalid data.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// This is intended for test fixtures, package initialization, and other
// contexts where an invalid value is a programming error rather than a
// recoverable condition — for example, hardcoding an interval in a test and
// asserting up front that it is legal. On success the model is returned
// unchanged, allowing inline use.
//
// Callers MUST NOT use MustValidate on values derived from external input;
// boundary input always gets the error-returning path.
//
// Example:
//
//	iv := model.MustValidate(interval.Interval{
//	    Class: interval.Class{Diatonic: interval.Fifth, Quality: interval.Perfect},
//	})
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include the full String form when
// explicitly requested.
//
// When unsafe is false, SafeString invokes Redacted; when true, String.
// Tonal values redact nothing, so both paths agree for every type in this
// library — the helper exists so callers with mixed model sets have a single
// call site for the decision.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating that the model is
// in a consistent state.
//
// The function first invokes Validate; if validation fails, ToJSON returns
// an error naming the model type and no marshaling is attempted. Otherwise
// it delegates to json.Marshal, which invokes the model's own MarshalJSON.
//
// Example:
//
//	data, err := model.ToJSON(p)
//	if err != nil {
//	    return err
//	}
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that the model is
// in a consistent state.
//
// The function first invokes Validate; if validation fails, ToYAML returns
// an error naming the model type and no marshaling is attempted. Otherwise
// it delegates to yaml.Marshal, which invokes the model's own MarshalYAML.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result.
//
// If unmarshaling fails, FromJSON returns the unmarshal error. If the
// syntactically valid payload decodes to a musically invalid value (for
// example, a perfect second), the validation error is returned instead.
// On any error the model variable's state is undefined and MUST NOT be
// used.
//
// Example:
//
//	var iv interval.Interval
//	if err := model.FromJSON(data, &iv); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
//
// The behavior mirrors FromJSON: unmarshal errors and validation errors are
// both returned to the caller, and on error the model variable MUST NOT be
// used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a copy of a model by serializing it to JSON and
// deserializing back into a new instance.
//
// Tonal values are flat integer structs, so plain assignment already copies
// them; this generic helper exists for uniformity with richer model sets and
// for callers that only know the Model constraint. Callers MUST check the
// returned error before using the clone.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by serializing both to JSON and
// comparing the representations byte-for-byte.
//
// If either marshaling operation fails (typically because a value is
// invalid), Equal returns false rather than mistaking an error for
// inequality. Note that this compares notation, not sound: an augmented
// fourth never equals a diminished fifth here.
//
// Value types with a typed Equal method (all tonal composites have one)
// SHOULD prefer it; this generic form exists for callers constrained to
// Model.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
