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

// Package element implements the unified tonal algebra that the pitch and
// interval vocabularies project into.
//
// A tonal class is a diatonic point (0..6) with a signed alteration
// (-2..2); a tonal element extends it with an unbounded octave. Both a
// pitch class and an interval class map losslessly onto a tonal class,
// and a pitch or interval onto an element, which is what makes mixed
// arithmetic possible: to transpose a pitch by an interval, convert both
// to elements, add, and convert back.
//
// The arithmetic itself runs through two integer projections. An element
// has a diatonic value (7 times the octave plus the point) and a
// chromatic value (12 times the octave plus the semitone of the class),
// and the pair determines the element uniquely. Addition sums the
// projections and reconstructs; inversion negates them. Reconstruction is
// where tonality can fail: a projection pair whose spelling would need an
// alteration beyond double sharps or double flats has no element, and the
// operations report that instead of rounding to a neighbouring spelling.
package element

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// semitones maps each diatonic point to its semitone offset within the
// octave, the major-scale step pattern. The table is fixed and must not
// be mutated.
var semitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// Class represents a tonal class: the octave-free unification of a pitch
// class and an interval class as a diatonic point with a signed
// alteration.
//
// The zero value is the unaltered point zero, which corresponds to the
// natural C pitch class and the perfect prime, and is valid.
type Class struct {
	// Point is the diatonic point, 0 through 6.
	Point int `json:"point" yaml:"point"`

	// Alteration is the signed chromatic offset from the point, -2
	// through 2.
	Alteration int `json:"alteration" yaml:"alteration"`
}

// NewClass creates a tonal class from a diatonic point and an alteration.
//
// It returns a *ValidationError when either value is out of range.
func NewClass(point, alteration int) (Class, error) {
	c := Class{Point: point, Alteration: alteration}
	if err := c.Validate(); err != nil {
		return Class{}, err
	}
	return c, nil
}

// Semitone returns the chromatic offset of the class within its octave:
// the semitone of the point plus the alteration.
//
// For valid classes the result lies in -2..13; alterations push it past
// the plain 0..11 range at both ends. Semitone panics if the point is out
// of range; callers hold a validated Class.
func (c Class) Semitone() int {
	return semitones[c.Point] + c.Alteration
}

// String returns a debug rendering of the class fields, such as
// "dt=4, alt=-1".
func (c Class) String() string {
	return fmt.Sprintf("dt=%d, alt=%d", c.Point, c.Alteration)
}

// Validate checks whether the point and alteration are in range.
//
// It returns nil for valid classes and a *ValidationError otherwise.
func (c Class) Validate() error {
	if c.Point < 0 || c.Point > 6 {
		return &errors.ValidationError{
			Type:   "TonalClass",
			Field:  "Point",
			Reason: "must be between 0 and 6",
			Value:  c.Point,
		}
	}
	if c.Alteration < -2 || c.Alteration > 2 {
		return &errors.ValidationError{
			Type:   "TonalClass",
			Field:  "Alteration",
			Reason: "must be between -2 and 2",
			Value:  c.Alteration,
		}
	}
	return nil
}

// IsZero reports whether the Class has its zero value, the unaltered
// point zero.
func (c Class) IsZero() bool {
	return c.Point == 0 && c.Alteration == 0
}

// Equal reports whether two classes have the same point and alteration.
//
// Equality is notational, not enharmonic: point 2 with alteration 1 and
// point 3 with alteration 0 share a semitone but are not equal.
func (c Class) Equal(other Class) bool {
	return c.Point == other.Point && c.Alteration == other.Alteration
}

// TypeName returns "TonalClass", the name of the type for logging and
// debugging.
func (c Class) TypeName() string {
	return "TonalClass"
}

// Redacted returns the same string representation as String().
func (c Class) Redacted() string {
	return c.String()
}

// Clone returns a copy of the Class.
func (c Class) Clone() Class {
	return c
}

// MarshalJSON implements json.Marshaler for Class.
//
// A valid Class is serialized as an object with "point" and "alteration"
// fields. An invalid Class fails with the underlying *ValidationError.
func (c Class) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Class
	return json.Marshal(alias(c))
}

// UnmarshalJSON implements json.Unmarshaler for Class.
//
// The decoded class is validated before being stored.
func (c *Class) UnmarshalJSON(data []byte) error {
	type alias Class
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return &errors.UnmarshalError{Type: "TonalClass", Data: data, Reason: err.Error()}
	}
	decoded := Class(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler for Class.
func (c Class) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Class
	return alias(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Class.
//
// The decoded class is validated before being stored.
func (c *Class) UnmarshalYAML(node *yaml.Node) error {
	type alias Class
	var a alias
	if err := node.Decode(&a); err != nil {
		return &errors.UnmarshalError{Type: "TonalClass", Data: []byte(node.Value), Reason: err.Error()}
	}
	decoded := Class(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// Compile-time checks that Class implements the model interfaces.
var (
	_ model.Model             = (*Class)(nil)
	_ model.Comparable[Class] = Class{}
	_ model.Cloneable[Class]  = Class{}
)
