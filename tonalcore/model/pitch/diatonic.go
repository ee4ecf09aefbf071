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

// DiatonicPitch represents one of the seven natural note letters of the
// diatonic scale, encoded as its position above C.
//
// DiatonicPitch carries no accidental and no octave register: it is the
// letter of a note name and nothing more. "E", "Eb" and "E#" all share the
// DiatonicPitch E; the accidental is carried separately by PitchAlteration.
//
// The numeric values are load-bearing: C is 0 and the letters are
// contiguous through B at 6, so a DiatonicPitch doubles as the diatonic
// point of the unified tonal algebra. Code in the element package indexes
// fixed tables by this value and MUST NOT be broken by reordering the
// constants.
type DiatonicPitch int

const (
	// C is the origin of the diatonic letter cycle and the zero value of
	// DiatonicPitch. The zero value is a valid, meaningful pitch letter.
	C DiatonicPitch = iota

	// D is the second letter of the cycle, one diatonic step above C.
	D

	// E is the third letter of the cycle.
	E

	// F is the fourth letter of the cycle.
	F

	// G is the fifth letter of the cycle.
	G

	// A is the sixth letter of the cycle.
	A

	// B is the seventh and last letter of the cycle; the next diatonic
	// step up from B is C in the following octave.
	B
)

// String constants for DiatonicPitch values used in serialization, parsing,
// and human-facing output.
//
// These single letters form the stable, external representation of
// DiatonicPitch and MAY be persisted in configuration files and JSON/YAML
// documents. Changing them is a breaking change for any consumer that
// relies on textual configuration.
const (
	CStr = "C"
	DStr = "D"
	EStr = "E"
	FStr = "F"
	GStr = "G"
	AStr = "A"
	BStr = "B"
)

// ParseDiatonicPitch converts a textual representation into a DiatonicPitch
// value.
//
// The function accepts the seven note letters in upper or lower case:
//
//	"C", "c" -> C
//	"D", "d" -> D
//	...
//	"B", "b" -> B
//
// Any other input is treated as invalid, and ParseDiatonicPitch returns a
// *ParseError carrying the original string.
func ParseDiatonicPitch(s string) (DiatonicPitch, error) {
	switch s {
	case CStr, "c":
		return C, nil
	case DStr, "d":
		return D, nil
	case EStr, "e":
		return E, nil
	case FStr, "f":
		return F, nil
	case GStr, "g":
		return G, nil
	case AStr, "a":
		return A, nil
	case BStr, "b":
		return B, nil
	default:
		return C, &errors.ParseError{Type: "DiatonicPitch", Value: s}
	}
}

// String returns the canonical single-letter representation of the
// DiatonicPitch ("C" through "B").
//
// If the value is not one of the defined constants, String returns
// "unknown". Callers that need to ensure only valid values are emitted
// SHOULD call Valid before invoking String.
func (d DiatonicPitch) String() string {
	switch d {
	case C:
		return CStr
	case D:
		return DStr
	case E:
		return EStr
	case F:
		return FStr
	case G:
		return GStr
	case A:
		return AStr
	case B:
		return BStr
	default:
		return "unknown"
	}
}

// Valid reports whether the DiatonicPitch is one of the seven letters
// C through B.
//
// This method is primarily useful when values may have been created via
// deserialization or numeric casts. Code that indexes tables by a
// DiatonicPitch MUST ensure Valid first.
func (d DiatonicPitch) Valid() bool {
	return C <= d && d <= B
}

// Point returns the diatonic point of the letter: its position above C in
// the range 0..6.
//
// Because C is the numeric origin of the enumeration, this is a plain
// conversion; the method exists to make the correspondence with the unified
// algebra explicit at call sites.
func (d DiatonicPitch) Point() int {
	return int(d - C)
}

// TypeName returns "DiatonicPitch", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface.
func (d DiatonicPitch) TypeName() string {
	return "DiatonicPitch"
}

// Redacted returns the same string representation as String().
//
// DiatonicPitch values contain no sensitive information, so the redacted
// form is identical to the regular string form. This method implements part
// of the model.Model interface.
func (d DiatonicPitch) Redacted() string {
	return d.String()
}

// IsZero reports whether the DiatonicPitch has its zero value.
//
// For DiatonicPitch the zero value is C, which is a perfectly valid note
// letter; IsZero returning true therefore means "left at the default", not
// an error condition.
func (d DiatonicPitch) IsZero() bool {
	return d == C
}

// Equal reports whether this DiatonicPitch is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a DiatonicPitch or *DiatonicPitch.
func (d DiatonicPitch) Equal(other any) bool {
	switch v := other.(type) {
	case DiatonicPitch:
		return d == v
	case *DiatonicPitch:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// Validate checks whether the DiatonicPitch is one of the seven defined
// letters.
//
// It returns nil for C through B and a *ValidationError for anything else.
// This method implements part of the model.Model interface and is typically
// called after deserialization or numeric casts.
func (d DiatonicPitch) Validate() error {
	if !d.Valid() {
		return &errors.ValidationError{
			Type:   "DiatonicPitch",
			Reason: "must be one of the letters C through B",
			Value:  int(d),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for DiatonicPitch.
//
// A valid DiatonicPitch is serialized as its letter (for example, "G").
// If the value is not valid, MarshalJSON returns a *MarshalError and does
// not produce any JSON output.
func (d DiatonicPitch) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DiatonicPitch", Value: int(d)}
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for DiatonicPitch.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: one of "C".."B" in either case, via ParseDiatonicPitch.
//   - Number: 0 (C) through 6 (B).
//
// String input is the preferred, stable representation. If the input cannot
// be parsed, or resolves to an invalid letter, UnmarshalJSON returns an
// *UnmarshalError or the underlying *ParseError.
func (d *DiatonicPitch) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "DiatonicPitch", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "DiatonicPitch", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseDiatonicPitch(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "DiatonicPitch", Data: data, Reason: err.Error()}
	}
	*d = DiatonicPitch(i)
	if !d.Valid() {
		return &errors.UnmarshalError{Type: "DiatonicPitch", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for DiatonicPitch.
//
// A valid DiatonicPitch is serialized as its letter. If the value is not
// valid, MarshalYAML returns a *MarshalError.
func (d DiatonicPitch) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DiatonicPitch", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for DiatonicPitch.
//
// The method accepts the letter strings resolved via ParseDiatonicPitch.
// On failure, it returns the underlying *ParseError.
func (d *DiatonicPitch) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "DiatonicPitch", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDiatonicPitch(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for DiatonicPitch.
//
// Textual form is the same letter as used by String(). If the value is
// invalid, MarshalText returns a *MarshalError.
func (d DiatonicPitch) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DiatonicPitch", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for DiatonicPitch.
//
// The method accepts the same vocabulary as ParseDiatonicPitch, using it as
// the single source of truth for mapping strings to letters.
func (d *DiatonicPitch) UnmarshalText(text []byte) error {
	parsed, err := ParseDiatonicPitch(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that DiatonicPitch implements model.Model interface.
var _ model.Model = (*DiatonicPitch)(nil)
