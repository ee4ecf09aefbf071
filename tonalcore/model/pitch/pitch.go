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

package pitch

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// Pitch represents a tonal pitch: a spelled pitch class placed in an octave
// register, such as "E#4" or "Bbb0".
//
// The octave register MUST be non-negative; octave 0 is the lowest
// representable register and there is no upper bound. Negative registers
// exist only inside the unified algebra (element.Element), never in a
// public Pitch.
//
// The zero value is C natural in octave 0, which is valid.
type Pitch struct {
	// Class is the spelled pitch class: letter plus accidental.
	Class Class `json:"class" yaml:"class"`

	// Octave is the octave register, 0 or greater. Octave 4 of C is
	// "middle C" in this library's numbering, with note number 48.
	Octave int `json:"octave" yaml:"octave"`
}

// NewPitch constructs a validated Pitch from a letter, an alteration and an
// octave register.
//
// The letter and alteration are validated as a Class; the octave must be
// non-negative. On any failure the zero Pitch and the error are returned.
func NewPitch(d DiatonicPitch, a PitchAlteration, octave int) (Pitch, error) {
	c, err := NewClass(d, a)
	if err != nil {
		return Pitch{}, err
	}
	p := Pitch{Class: c, Octave: octave}
	if err := p.Validate(); err != nil {
		return Pitch{}, err
	}
	return p, nil
}

// String returns the conventional scientific-style spelling of the pitch:
// the class followed by the octave number, as in "Eb4".
func (p Pitch) String() string {
	return p.Class.String() + strconv.Itoa(p.Octave)
}

// Validate checks the embedded class and the octave register.
//
// A Pitch is valid when its Class validates and its Octave is
// non-negative.
func (p Pitch) Validate() error {
	if err := p.Class.Validate(); err != nil {
		return err
	}
	if p.Octave < 0 {
		return &errors.ValidationError{
			Type:   "Pitch",
			Field:  "Octave",
			Reason: "must be non-negative",
			Value:  p.Octave,
		}
	}
	return nil
}

// IsZero reports whether the Pitch is C natural in octave 0, its zero
// value.
func (p Pitch) IsZero() bool {
	return p.Class.IsZero() && p.Octave == 0
}

// Equal reports whether p and other name the same spelled pitch in the
// same register.
func (p Pitch) Equal(other Pitch) bool {
	return p.Class.Equal(other.Class) && p.Octave == other.Octave
}

// TypeName returns "Pitch", the name of the type for logging and
// debugging.
func (p Pitch) TypeName() string {
	return "Pitch"
}

// Redacted returns the same string representation as String().
func (p Pitch) Redacted() string {
	return p.String()
}

// Clone returns a copy of the Pitch. Pitch is a plain value type, so this
// is the receiver itself.
func (p Pitch) Clone() Pitch {
	return p
}

// MarshalJSON implements json.Marshaler for Pitch.
//
// A valid Pitch is serialized as an object, for example
// {"class":{"diatonic":"E","alteration":"b"},"octave":4}. An invalid Pitch
// yields its validation error and no output.
func (p Pitch) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	type alias Pitch
	return json.Marshal((alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler for Pitch.
//
// The object form produced by MarshalJSON is accepted and the decoded value
// is validated before the receiver is considered usable.
func (p *Pitch) UnmarshalJSON(data []byte) error {
	type alias Pitch
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return &errors.UnmarshalError{Type: "Pitch", Data: data, Reason: err.Error()}
	}
	return p.Validate()
}

// MarshalYAML implements yaml.Marshaler for Pitch.
func (p Pitch) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	type alias Pitch
	return (alias)(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Pitch.
func (p *Pitch) UnmarshalYAML(node *yaml.Node) error {
	type alias Pitch
	if err := node.Decode((*alias)(p)); err != nil {
		return &errors.UnmarshalError{Type: "Pitch", Data: []byte(node.Value), Reason: err.Error()}
	}
	return p.Validate()
}

// Compile-time checks that Pitch implements the model contracts.
var (
	_ model.Model             = (*Pitch)(nil)
	_ model.Comparable[Pitch] = Pitch{}
	_ model.Cloneable[Pitch]  = Pitch{}
)
