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

// Package model defines the core contracts that all tonal domain types MUST
// implement to ensure consistency, type safety, and proper behavior across
// the entire library.
//
// Every domain type representing a musical value (such as DiatonicPitch,
// Quality, Pitch, Interval, Element) SHOULD implement the Model interface or
// its constituent parts (Validatable, Serializable, Loggable, Identifiable,
// ZeroCheckable). These interfaces establish a common contract for
// validation, serialization, logging, and identity that enables generic
// operations and guarantees safety at compile time.
//
// The contracts defined in this package prioritize data integrity. Tonal
// values are small, closed domains (seven note letters, five alteration
// degrees, five interval qualities) with composite legality rules (there is
// no "perfect second" and no "diminished prime" at octave zero), and
// Validate is the single place where those rules are decided. Serialization
// provides round-trip guarantees for configuration files and API payloads.
// Loggable and Identifiable support structured diagnostics. ZeroCheckable
// supports optional field detection.
//
// All tonal model types are immutable value types: operations construct new
// values and never mutate their operands. This makes every instance
// naturally safe for concurrent read access; there is no shared state to
// synchronize.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON, ToYAML,
// Clone, and Equal. These helpers rely on the Model contract and will fail
// at compile time if applied to types that do not implement Model.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for tonal domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, logging, type
// identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers string representations for logs
// and debugging; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// All domain types MUST implement Model to participate in generic
// operations. Failure to implement Model will result in compile-time errors
// when using functions that constrain their type parameters to Model.
//
// Model instances are immutable value types. Methods defined on Model MUST
// NOT mutate the receiver. Concurrent reads are always safe.
//
// Example implementation:
//
//	type Direction int
//
//	func (d Direction) Validate() error {
//	    if d != Up && d != Down {
//	        return &errors.ValidationError{Type: "Direction", Reason: "invalid value"}
//	    }
//	    return nil
//	}
//
//	func (d Direction) TypeName() string { return "Direction" }
//	func (d Direction) IsZero() bool     { return d == Up }
//	func (d Direction) Redacted() string { return d.String() }
//	// ... String, MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Direction)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state suitable for use in arithmetic, serialization, or transmission.
//
// The Validate method MUST check all fields for legal values, verify
// cross-field consistency (for example, that an interval's quality is
// admitted for its diatonic size, or that a prime at octave zero is not
// diminished), recursively validate any embedded values by calling their
// Validate methods, and return nil if and only if the instance is fully
// valid. When validation fails, the returned error MUST describe what is
// invalid in a way that helps callers diagnose and fix the problem. Generic
// messages such as "validation failed" are discouraged; prefer specific
// messages like "Pitch.Octave must be non-negative".
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects such as logging, and MUST NOT
// depend on external mutable state.
//
// Callers SHOULD invoke Validate at boundaries: immediately after
// unmarshaling from JSON or YAML, after constructing instances from raw
// integers, and before performing arithmetic on values received from
// another component. The arithmetic in the element package additionally
// re-validates its own computed results; a failure there indicates a bug in
// the algebra, not bad caller input.
//
// Note that for several tonal types the zero value is valid and meaningful:
// the zero DiatonicPitch is C, the zero PitchAlteration is natural, and the
// zero Element is the additive identity of the tonal algebra.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It is safe to call concurrently.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML formats. All model types MUST support both
// formats to enable configuration files (typically YAML), API request and
// response bodies (typically JSON), and debugging output.
//
// Implementations MUST call Validate before marshaling to ensure that only
// valid instances are serialized. This prevents invalid values from leaking
// into configuration files, API responses, or logs. If the instance fails
// validation, the marshal method MUST return the validation error rather
// than serializing the invalid state. Similarly, implementations MUST call
// Validate (or parse through a validating constructor) after unmarshaling.
// If the deserialized instance is invalid, the unmarshal method MUST return
// an error and callers MUST NOT use the receiver.
//
// Both formats MUST round-trip: a value serialized to JSON and then
// deserialized MUST equal the original value, and the same MUST hold for
// YAML. Enum-like types serialize as their canonical strings; composite
// types serialize as objects of their fields.
//
// Marshal methods are safe for concurrent use because tonal values are
// immutable. Unmarshal methods mutate the receiver and require exclusive
// access.
//
// Composite implementations SHOULD use the "type alias" pattern to avoid
// infinite recursion: define a local alias of the model type, cast the
// receiver, and delegate to the encoder:
//
//	func (p Pitch) MarshalJSON() ([]byte, error) {
//	    if err := p.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias Pitch
//	    return json.Marshal((alias)(p))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// The String method returns the conventional musical notation for the
// value where one exists: "Dbb" for a pitch class, "E4" for a pitch,
// "Perfect Fifth" for an interval class, "Up 1 Octave(s) + Perfect Fifth"
// for an interval. Values outside their legal domain render in a
// recognizable fallback form rather than panicking.
//
// The Redacted method returns a representation safe for production logs.
// Tonal values carry no sensitive data, so for every type in this library
// Redacted returns the same string as String; the method exists so that
// tonal values can flow through logging helpers shared with models that do
// redact.
//
// Both methods MUST be fast, MUST NOT mutate the receiver, and are safe to
// call concurrently.
type Loggable interface {
	// Redacted returns a string representation safe for production logs.
	// For tonal values this is identical to String.
	Redacted() string

	// String returns the conventional musical notation for the value.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name returned by TypeName MUST be constant for a given type and
// unique within the tonal domain. It SHOULD follow CamelCase convention
// (for example, "DiatonicPitch", "IntervalClass", "Element") and MUST NOT
// include a package prefix. The name identifies the type, not the instance.
//
// Type names appear in error messages (every ValidationError carries one),
// in structured logs, and in reflection-based helpers. TypeName MUST be
// fast, MUST NOT allocate, and SHOULD return a string constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	//
	// This method MUST NOT mutate the receiver and is safe to call
	// concurrently. It SHOULD return a string constant.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in their zero state. This enables optional field detection and
// conditional logic based on whether an instance was explicitly set.
//
// For tonal types the zero state is frequently a valid value rather than an
// error sentinel: the zero Pitch is C natural at octave 0, and the zero
// Element is the additive identity of the algebra. IsZero therefore means
// "was left at its default", not "is broken"; use Validate to decide
// legality.
//
// IsZero MUST be fast, deterministic, and allocation-free. It MUST NOT have
// side effects and is safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in its zero state.
	//
	// This method MUST NOT mutate the receiver and is safe to call
	// concurrently.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or business logic.
//
// The Equal method MUST be reflexive, symmetric, transitive, and
// consistent. Equal SHOULD compare all semantically significant fields.
// Note that tonal equality is notational, not enharmonic: an augmented
// fourth and a diminished fifth sound alike but are NOT equal, which is the
// entire point of this library.
//
// Equal MUST NOT mutate the receiver or the argument and is safe to call
// concurrently.
//
// Example:
//
//	func (c Class) Equal(other Class) bool {
//	    return c.Diatonic == other.Diatonic && c.Alteration == other.Alteration
//	}
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create copies of
// themselves. This interface is optional; tonal values are plain value
// types whose assignment already copies, so Clone typically returns the
// receiver.
//
// The Clone method MUST return an instance equal to the original that
// shares no references with it. The cloned instance MUST be valid if the
// original is valid.
type Cloneable[T any] interface {
	// Clone creates a copy of this instance.
	Clone() T
}
