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

package element

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// Element represents a tonal element: a tonal class placed in an octave.
//
// Unlike a pitch, the octave may be negative; elements below the origin
// are how downward intervals pass through the algebra. The zero value is
// the identity element of addition and is valid.
type Element struct {
	// Class is the octave-free part of the element.
	Class Class `json:"class" yaml:"class"`

	// Octave places the class. Any integer is allowed.
	Octave int `json:"octave" yaml:"octave"`
}

// NewElement creates a tonal element from a point, an alteration and an
// octave.
//
// It returns a *ValidationError when the point or alteration is out of
// range. The octave is unconstrained.
func NewElement(point, alteration, octave int) (Element, error) {
	c, err := NewClass(point, alteration)
	if err != nil {
		return Element{}, err
	}
	return Element{Class: c, Octave: octave}, nil
}

// DiatonicValue returns the diatonic projection of the element, 7 times
// the octave plus the point.
//
// Together with ChromaticValue it determines the element uniquely.
func (e Element) DiatonicValue() int {
	return 7*e.Octave + e.Class.Point
}

// ChromaticValue returns the chromatic projection of the element, 12
// times the octave plus the semitone of the class.
//
// For a pitch-derived element with the conventional origin this is the
// note number; middle C at octave 4 projects to 48.
func (e Element) ChromaticValue() int {
	return 12*e.Octave + e.Class.Semitone()
}

// String returns a debug rendering of the element fields, such as
// "dt=4, alt=-1, oct=3".
func (e Element) String() string {
	return fmt.Sprintf("dt=%d, alt=%d, oct=%d", e.Class.Point, e.Class.Alteration, e.Octave)
}

// Validate checks whether the class of the element is in range.
//
// It returns nil for valid elements and a *ValidationError otherwise.
func (e Element) Validate() error {
	return e.Class.Validate()
}

// IsZero reports whether the Element has its zero value, the unaltered
// point zero at octave zero.
//
// The zero Element is the identity of addition; IsZero returning true
// does not indicate an error condition.
func (e Element) IsZero() bool {
	return e.Class.IsZero() && e.Octave == 0
}

// Equal reports whether two elements have the same class and octave.
//
// Equality is notational, not enharmonic: two elements with equal
// projections are identical, but elements that merely share a chromatic
// value are not equal.
func (e Element) Equal(other Element) bool {
	return e.Class.Equal(other.Class) && e.Octave == other.Octave
}

// TypeName returns "TonalElement", the name of the type for logging and
// debugging.
func (e Element) TypeName() string {
	return "TonalElement"
}

// Redacted returns the same string representation as String().
func (e Element) Redacted() string {
	return e.String()
}

// Clone returns a copy of the Element.
func (e Element) Clone() Element {
	return e
}

// MarshalJSON implements json.Marshaler for Element.
//
// A valid Element is serialized as an object with "class" and "octave"
// fields. An invalid Element fails with the underlying *ValidationError.
func (e Element) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias Element
	return json.Marshal(alias(e))
}

// UnmarshalJSON implements json.Unmarshaler for Element.
//
// The decoded element is validated before being stored.
func (e *Element) UnmarshalJSON(data []byte) error {
	type alias Element
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return &errors.UnmarshalError{Type: "TonalElement", Data: data, Reason: err.Error()}
	}
	decoded := Element(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler for Element.
func (e Element) MarshalYAML() (any, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias Element
	return alias(e), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Element.
//
// The decoded element is validated before being stored.
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	type alias Element
	var a alias
	if err := node.Decode(&a); err != nil {
		return &errors.UnmarshalError{Type: "TonalElement", Data: []byte(node.Value), Reason: err.Error()}
	}
	decoded := Element(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}

// Compile-time checks that Element implements the model interfaces.
var (
	_ model.Model               = (*Element)(nil)
	_ model.Comparable[Element] = Element{}
	_ model.Cloneable[Element]  = Element{}
)
