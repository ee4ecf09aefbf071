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

package interval

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// Class represents a tonal interval class: a diatonic size paired with a
// quality, such as the perfect fifth or the diminished third, spanning
// less than an octave and carrying no direction.
//
// The pairing is constrained: only the combinations admitted by the
// quality table are valid, so a Class can hold an illegal pair (a minor
// fifth, say) only if built without NewClass. The zero value is the
// diminished prime, which is a valid class; it becomes illegal only as
// part of an Interval at octave zero.
type Class struct {
	// Diatonic is the letter-count size, Prime through Seventh.
	Diatonic DiatonicInterval `json:"diatonic" yaml:"diatonic"`

	// Quality narrows or widens the size within what the quality table
	// admits for it.
	Quality Quality `json:"quality" yaml:"quality"`
}

// NewClass creates an interval class from a diatonic size and a quality.
//
// It returns a *ValidationError when either value is out of range or when
// the pair is illegal under the quality table.
func NewClass(d DiatonicInterval, q Quality) (Class, error) {
	c := Class{Diatonic: d, Quality: q}
	if err := c.Validate(); err != nil {
		return Class{}, err
	}
	return c, nil
}

// Degree returns the signed alteration degree of the class, the value the
// quality table assigns to its size/quality pair.
//
// It returns a *ValidationError for an illegal pair.
func (c Class) Degree() (int, error) {
	return c.Quality.Degree(c.Diatonic)
}

// String returns the conventional name of the class, the quality followed
// by the size, such as "Perfect Fifth" or "Diminished Third".
func (c Class) String() string {
	return c.Quality.String() + " " + c.Diatonic.String()
}

// Validate checks whether the class names an interval.
//
// Both fields must be in range and the pair must be admitted by the
// quality table. It returns nil for valid classes and a *ValidationError
// otherwise.
func (c Class) Validate() error {
	if err := c.Diatonic.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "IntervalClass",
			Field:  "Diatonic",
			Reason: "must be between Prime and Seventh",
			Value:  int(c.Diatonic),
		}
	}
	if _, err := c.Degree(); err != nil {
		return err
	}
	return nil
}

// IsZero reports whether the Class has its zero value, the diminished
// prime.
func (c Class) IsZero() bool {
	return c.Diatonic == Prime && c.Quality == Diminished
}

// Equal reports whether two classes name the same interval.
//
// Equality is notational: an augmented fourth and a diminished fifth are
// not equal even though they span the same number of semitones.
func (c Class) Equal(other Class) bool {
	return c.Diatonic == other.Diatonic && c.Quality == other.Quality
}

// TypeName returns "IntervalClass", the name of the type for logging and
// debugging.
func (c Class) TypeName() string {
	return "IntervalClass"
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
// A valid Class is serialized as an object with "diatonic" and "quality"
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
// The decoded class is validated; data that decodes but names an illegal
// pair fails with the underlying *ValidationError.
func (c *Class) UnmarshalJSON(data []byte) error {
	type alias Class
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return &errors.UnmarshalError{Type: "IntervalClass", Data: data, Reason: err.Error()}
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
		return &errors.UnmarshalError{Type: "IntervalClass", Data: []byte(node.Value), Reason: err.Error()}
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
