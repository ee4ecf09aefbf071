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

// Package pitch models tonal pitch classes and tonal pitches: spelled note
// names such as "Dbb" or "E#4" in which the letter and the accidental are
// kept apart.
//
// Keeping the spelling is the point. "F#" and "Gb" strike the same piano
// key but are different tonal pitch classes, and the arithmetic in the
// element package preserves that distinction. Every type in this package is
// a small immutable value validated at construction; there are no forbidden
// letter/accidental combinations (unlike intervals, any of the seven
// letters may carry any of the five accidentals), and the only composite
// rule is that a Pitch's octave register must be non-negative.
package pitch

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// Class represents a tonal pitch class: a note letter together with its
// accidental, but without an octave register. "Dbb", "G" and "E#" are all
// pitch classes.
//
// Any combination of a valid letter and a valid alteration is a valid
// Class; there is no legality table here. The zero value is C natural,
// which is valid.
//
// Class is one of the two public faces of the unified tonal class (the
// other being interval.Class); the element package converts between them.
type Class struct {
	// Diatonic is the note letter, C through B.
	Diatonic DiatonicPitch `json:"diatonic" yaml:"diatonic"`

	// Alteration is the accidental attached to the letter,
	// double-flat through double-sharp.
	Alteration PitchAlteration `json:"alteration" yaml:"alteration"`
}

// NewClass constructs a validated Class from a letter and an alteration.
//
// Both fields are checked before the value is assembled; the first invalid
// field's error is returned and the zero Class MUST NOT be used in that
// case. This mirrors the validating field-setters of the pitch arithmetic
// this package descends from.
func NewClass(d DiatonicPitch, a PitchAlteration) (Class, error) {
	if err := d.Validate(); err != nil {
		return Class{}, err
	}
	if err := a.Validate(); err != nil {
		return Class{}, err
	}
	return Class{Diatonic: d, Alteration: a}, nil
}

// String returns the conventional note-name spelling of the pitch class,
// the letter followed by the accidental: "C", "Eb", "F##".
func (c Class) String() string {
	return c.Diatonic.String() + c.Alteration.String()
}

// Validate checks that both the letter and the alteration are within their
// domains.
//
// There is no cross-field rule for pitch classes; any letter may carry any
// accidental.
func (c Class) Validate() error {
	if err := c.Diatonic.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "PitchClass",
			Field:  "Diatonic",
			Reason: "must be one of the letters C through B",
			Value:  int(c.Diatonic),
		}
	}
	if err := c.Alteration.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "PitchClass",
			Field:  "Alteration",
			Reason: "must be between double-flat and double-sharp",
			Value:  int(c.Alteration),
		}
	}
	return nil
}

// IsZero reports whether the Class is C natural, its zero value.
//
// C natural is a valid pitch class; IsZero distinguishes "left at the
// default" from "explicitly set", not valid from invalid.
func (c Class) IsZero() bool {
	return c.Diatonic == C && c.Alteration == Natural
}

// Equal reports whether c and other name the same spelled pitch class.
//
// Equality is notational: E# and F are enharmonically the same key but are
// NOT equal pitch classes.
func (c Class) Equal(other Class) bool {
	return c.Diatonic == other.Diatonic && c.Alteration == other.Alteration
}

// TypeName returns "PitchClass", the name of the type for logging and
// debugging.
func (c Class) TypeName() string {
	return "PitchClass"
}

// Redacted returns the same string representation as String().
//
// Pitch classes contain no sensitive information.
func (c Class) Redacted() string {
	return c.String()
}

// Clone returns a copy of the Class. Class is a plain value type, so this
// is the receiver itself.
func (c Class) Clone() Class {
	return c
}

// MarshalJSON implements json.Marshaler for Class.
//
// A valid Class is serialized as an object of its two fields, for example
// {"diatonic":"E","alteration":"b"}. An invalid Class yields its validation
// error and no output.
func (c Class) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Class
	return json.Marshal((alias)(c))
}

// UnmarshalJSON implements json.Unmarshaler for Class.
//
// The object form produced by MarshalJSON is accepted; absent fields decode
// to C and natural respectively. The decoded value is validated before the
// receiver is considered usable.
func (c *Class) UnmarshalJSON(data []byte) error {
	type alias Class
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: "PitchClass", Data: data, Reason: err.Error()}
	}
	return c.Validate()
}

// MarshalYAML implements yaml.Marshaler for Class.
//
// A valid Class is serialized as a mapping of its two fields. An invalid
// Class yields its validation error.
func (c Class) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Class
	return (alias)(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Class.
//
// The mapping form produced by MarshalYAML is accepted and the decoded
// value is validated before the receiver is considered usable.
func (c *Class) UnmarshalYAML(node *yaml.Node) error {
	type alias Class
	if err := node.Decode((*alias)(c)); err != nil {
		return &errors.UnmarshalError{Type: "PitchClass", Data: []byte(node.Value), Reason: err.Error()}
	}
	return c.Validate()
}

// Compile-time checks that Class implements the model contracts.
var (
	_ model.Model             = (*Class)(nil)
	_ model.Comparable[Class] = Class{}
	_ model.Cloneable[Class]  = Class{}
)
