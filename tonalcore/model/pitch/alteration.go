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

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// PitchAlteration represents the accidental attached to a note letter, as a
// signed semitone offset.
//
// The encoding is the accidental's own arithmetic: DoubleFlat is -2, Flat
// is -1, Natural is 0, Sharp is +1 and DoubleSharp is +2. Natural is the
// zero value, so an unset alteration means an unaltered letter. The library
// never represents more than two accidentals; arithmetic whose result would
// require a triple sharp fails rather than overflowing this range.
type PitchAlteration int

const (
	// DoubleFlat lowers the letter by two semitones ("bb").
	DoubleFlat PitchAlteration = iota - 2

	// Flat lowers the letter by one semitone ("b").
	Flat

	// Natural leaves the letter unaltered. This is the zero value of
	// PitchAlteration and renders as the empty string, as in "E4".
	Natural

	// Sharp raises the letter by one semitone ("#").
	Sharp

	// DoubleSharp raises the letter by two semitones ("##").
	DoubleSharp
)

// String constants for PitchAlteration values used in serialization,
// parsing, and human-facing output.
//
// These are the conventional ASCII accidental spellings; note that Natural
// is the empty string, so a natural pitch prints as its bare letter.
const (
	DoubleFlatStr  = "bb"
	FlatStr        = "b"
	NaturalStr     = ""
	SharpStr       = "#"
	DoubleSharpStr = "##"
)

// ParsePitchAlteration converts a textual representation into a
// PitchAlteration value.
//
// The function accepts the ASCII accidental spellings as well as spelled-out
// names:
//
//	"bb", "double-flat"  -> DoubleFlat
//	"b",  "flat"         -> Flat
//	"",   "natural"      -> Natural
//	"#",  "sharp"        -> Sharp
//	"##", "double-sharp" -> DoubleSharp
//
// Any other input is treated as invalid, and ParsePitchAlteration returns a
// *ParseError.
func ParsePitchAlteration(s string) (PitchAlteration, error) {
	switch s {
	case DoubleFlatStr, "double-flat":
		return DoubleFlat, nil
	case FlatStr, "flat":
		return Flat, nil
	case NaturalStr, "natural":
		return Natural, nil
	case SharpStr, "sharp":
		return Sharp, nil
	case DoubleSharpStr, "double-sharp":
		return DoubleSharp, nil
	default:
		return Natural, &errors.ParseError{Type: "PitchAlteration", Value: s}
	}
}

// String returns the conventional accidental spelling of the alteration:
// "bb", "b", "", "#" or "##".
//
// Natural intentionally renders as the empty string so that pitch names
// concatenate naturally ("E" + "" + "4" is "E4"). If the value is outside
// the defined range, String returns "unknown".
func (a PitchAlteration) String() string {
	switch a {
	case DoubleFlat:
		return DoubleFlatStr
	case Flat:
		return FlatStr
	case Natural:
		return NaturalStr
	case Sharp:
		return SharpStr
	case DoubleSharp:
		return DoubleSharpStr
	default:
		return "unknown"
	}
}

// Valid reports whether the PitchAlteration is within the representable
// range DoubleFlat..DoubleSharp.
func (a PitchAlteration) Valid() bool {
	return DoubleFlat <= a && a <= DoubleSharp
}

// Degree returns the signed semitone offset of the alteration in the range
// -2..2.
//
// Because the enumeration is encoded as the offset itself, this is a plain
// conversion; the method makes the correspondence with the unified algebra
// explicit at call sites.
func (a PitchAlteration) Degree() int {
	return int(a)
}

// TypeName returns "PitchAlteration", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface.
func (a PitchAlteration) TypeName() string {
	return "PitchAlteration"
}

// Redacted returns the same string representation as String().
//
// This method implements part of the model.Model interface.
func (a PitchAlteration) Redacted() string {
	return a.String()
}

// IsZero reports whether the PitchAlteration has its zero value.
//
// The zero value is Natural, a valid alteration; IsZero returning true does
// not indicate an error condition.
func (a PitchAlteration) IsZero() bool {
	return a == Natural
}

// Equal reports whether this PitchAlteration is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a PitchAlteration or *PitchAlteration.
func (a PitchAlteration) Equal(other any) bool {
	switch v := other.(type) {
	case PitchAlteration:
		return a == v
	case *PitchAlteration:
		if v == nil {
			return false
		}
		return a == *v
	default:
		return false
	}
}

// Validate checks whether the PitchAlteration is within
// DoubleFlat..DoubleSharp.
//
// It returns nil for valid values and a *ValidationError otherwise. This
// method implements part of the model.Model interface.
func (a PitchAlteration) Validate() error {
	if !a.Valid() {
		return &errors.ValidationError{
			Type:   "PitchAlteration",
			Reason: "must be between double-flat and double-sharp",
			Value:  int(a),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for PitchAlteration.
//
// A valid PitchAlteration is serialized as its accidental spelling (for
// example, "b" or "##"; Natural serializes as ""). If the value is not
// valid, MarshalJSON returns a *MarshalError.
func (a PitchAlteration) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "PitchAlteration", Value: int(a)}
	}
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for PitchAlteration.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: an accidental spelling or spelled-out name, via
//     ParsePitchAlteration.
//   - Number: the signed degree -2..2.
//
// If the input cannot be parsed, or resolves to an out-of-range degree,
// UnmarshalJSON returns an *UnmarshalError or the underlying *ParseError.
func (a *PitchAlteration) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "PitchAlteration", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "PitchAlteration", Data: data, Reason: err.Error()}
		}
		parsed, err := ParsePitchAlteration(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "PitchAlteration", Data: data, Reason: err.Error()}
	}
	*a = PitchAlteration(i)
	if !a.Valid() {
		return &errors.UnmarshalError{Type: "PitchAlteration", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for PitchAlteration.
//
// A valid PitchAlteration is serialized as its accidental spelling. If the
// value is not valid, MarshalYAML returns a *MarshalError.
func (a PitchAlteration) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "PitchAlteration", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for PitchAlteration.
//
// The method accepts the accidental spellings resolved via
// ParsePitchAlteration. On failure, it returns the underlying *ParseError.
func (a *PitchAlteration) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "PitchAlteration", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePitchAlteration(str)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for PitchAlteration.
//
// Textual form is the same accidental spelling as used by String(). If the
// value is invalid, MarshalText returns a *MarshalError.
func (a PitchAlteration) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "PitchAlteration", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for PitchAlteration.
//
// The method accepts the same vocabulary as ParsePitchAlteration.
func (a *PitchAlteration) UnmarshalText(text []byte) error {
	parsed, err := ParsePitchAlteration(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Compile-time check that PitchAlteration implements model.Model interface.
var _ model.Model = (*PitchAlteration)(nil)
