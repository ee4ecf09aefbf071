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
	"strconv"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// Interval represents a full tonal interval: a class widened by a whole
// number of octaves and marked with a direction.
//
// The octave count is always non-negative; direction is carried in the
// Direction field, never as a negative octave. One cross-field rule
// applies on top of the class legality table: a diminished prime at
// octave zero would span less than nothing and is invalid, while a
// diminished prime an octave or more up (one semitone short of the
// octave span) is fine. The zero value is therefore invalid; the
// smallest valid interval is the perfect prime up, Interval{Class:
// Class{Quality: Perfect}}.
type Interval struct {
	// Class is the size and quality within the octave.
	Class Class `json:"class" yaml:"class"`

	// Octave is the number of whole octaves added to the class span.
	// It must be non-negative.
	Octave int `json:"octave" yaml:"octave"`

	// Direction marks the interval as ascending or descending.
	Direction Direction `json:"direction" yaml:"direction"`
}

// NewInterval creates an interval from a diatonic size, a quality, an
// octave count and a direction.
//
// It returns a *ValidationError when any field is out of range, when the
// size/quality pair is illegal, or when the result is a diminished prime
// at octave zero.
func NewInterval(d DiatonicInterval, q Quality, octave int, dir Direction) (Interval, error) {
	i := Interval{
		Class:     Class{Diatonic: d, Quality: q},
		Octave:    octave,
		Direction: dir,
	}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// String returns the conventional rendering of the interval: the
// direction, the octave count and the class name, such as
// "Up 1 Octave(s) + Perfect Fifth".
func (i Interval) String() string {
	return i.Direction.String() + " " + strconv.Itoa(i.Octave) + " Octave(s) + " + i.Class.String()
}

// Validate checks whether the interval is well formed.
//
// The class must be legal, the octave non-negative, the direction Up or
// Down, and the diminished prime is rejected at octave zero. It returns
// nil for valid intervals and a *ValidationError otherwise.
func (i Interval) Validate() error {
	if err := i.Class.Validate(); err != nil {
		return err
	}
	if i.Octave < 0 {
		return &errors.ValidationError{
			Type:   "Interval",
			Field:  "Octave",
			Reason: "must be non-negative",
			Value:  i.Octave,
		}
	}
	if err := i.Direction.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "Interval",
			Field:  "Direction",
			Reason: "must be Up or Down",
			Value:  int(i.Direction),
		}
	}
	if i.Octave == 0 && i.Class.Diatonic == Prime && i.Class.Quality == Diminished {
		return &errors.ValidationError{
			Type:   "Interval",
			Field:  "Class",
			Reason: "diminished prime requires at least one octave",
			Value:  i.Class.String(),
		}
	}
	return nil
}

// IsZero reports whether the Interval has its zero value, the diminished
// prime up at octave zero.
//
// Unlike the other zero values in this library, the zero Interval is not
// valid.
func (i Interval) IsZero() bool {
	return i.Class.IsZero() && i.Octave == 0 && i.Direction == Up
}

// Equal reports whether two intervals name the same distance in the same
// direction.
//
// Equality is notational: an augmented fourth up and a diminished fifth
// up are not equal even though they span the same number of semitones.
func (i Interval) Equal(other Interval) bool {
	return i.Class.Equal(other.Class) &&
		i.Octave == other.Octave &&
		i.Direction == other.Direction
}

// TypeName returns "Interval", the name of the type for logging and
// debugging.
func (i Interval) TypeName() string {
	return "Interval"
}

// Redacted returns the same string representation as String().
func (i Interval) Redacted() string {
	return i.String()
}

// Clone returns a copy of the Interval.
func (i Interval) Clone() Interval {
	return i
}

// MarshalJSON implements json.Marshaler for Interval.
//
// A valid Interval is serialized as an object with "class", "octave" and
// "direction" fields. An invalid Interval fails with the underlying
// *ValidationError.
func (i Interval) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	type alias Interval
	return json.Marshal(alias(i))
}

// UnmarshalJSON implements json.Unmarshaler for Interval.
//
// The decoded interval is validated; data that decodes but breaks a
// cross-field rule fails with the underlying *ValidationError.
func (i *Interval) UnmarshalJSON(data []byte) error {
	type alias Interval
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return &errors.UnmarshalError{Type: "Interval", Data: data, Reason: err.Error()}
	}
	decoded := Interval(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*i = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler for Interval.
func (i Interval) MarshalYAML() (any, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	type alias Interval
	return alias(i), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Interval.
//
// The decoded interval is validated before being stored.
func (i *Interval) UnmarshalYAML(node *yaml.Node) error {
	type alias Interval
	var a alias
	if err := node.Decode(&a); err != nil {
		return &errors.UnmarshalError{Type: "Interval", Data: []byte(node.Value), Reason: err.Error()}
	}
	decoded := Interval(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*i = decoded
	return nil
}

// Compile-time checks that Interval implements the model interfaces.
var (
	_ model.Model                = (*Interval)(nil)
	_ model.Comparable[Interval] = Interval{}
	_ model.Cloneable[Interval]  = Interval{}
)
