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

// Package interval models tonal interval classes and tonal intervals:
// named musical distances such as "Augmented Fourth" or "Down 1 Octave(s) +
// Minor Third" in which the diatonic size and the quality are kept apart.
//
// Keeping the name is the point. An augmented fourth and a diminished fifth
// span the same number of semitones but are different intervals, and the
// arithmetic in the element package preserves that distinction. Unlike
// pitch classes, interval classes have a composite legality rule: the
// perfect-class sizes (prime, fourth, fifth) admit only diminished, perfect
// and augmented qualities, while the imperfect-class sizes (second, third,
// sixth, seventh) admit only diminished, minor, major and augmented. The
// quality table in this package is the single source of truth for that
// rule and for the signed alteration degree each legal pair maps to.
//
// A full Interval adds an octave count (always non-negative) and a
// direction; "down" intervals are represented with a Down direction rather
// than a negative octave, and one further cross-field rule applies: a prime
// at octave zero spans nothing and therefore can never be diminished.
package interval

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model"
)

// DiatonicInterval represents the letter-count size of an interval, Prime
// through Seventh, independent of quality.
//
// The numeric values are load-bearing: Prime is 0 and the sizes are
// contiguous through Seventh at 6, so a DiatonicInterval doubles as the
// diatonic point of the unified tonal algebra and indexes the quality
// table directly. Reordering the constants would silently corrupt both.
type DiatonicInterval int

const (
	// Prime is the unison size, spanning zero letter steps. It is the
	// zero value of DiatonicInterval and is valid.
	Prime DiatonicInterval = iota

	// Second spans one letter step (C to D).
	Second

	// Third spans two letter steps (C to E).
	Third

	// Fourth spans three letter steps (C to F).
	Fourth

	// Fifth spans four letter steps (C to G).
	Fifth

	// Sixth spans five letter steps (C to A).
	Sixth

	// Seventh spans six letter steps (C to B); one more step is a full
	// octave, which this library expresses with the Interval octave
	// count rather than an eighth size.
	Seventh
)

// String constants for DiatonicInterval values used in serialization,
// parsing, and human-facing output.
const (
	PrimeStr   = "Prime"
	SecondStr  = "Second"
	ThirdStr   = "Third"
	FourthStr  = "Fourth"
	FifthStr   = "Fifth"
	SixthStr   = "Sixth"
	SeventhStr = "Seventh"
)

// ParseDiatonicInterval converts a textual representation into a
// DiatonicInterval value.
//
// The function accepts the size names in title, lower or upper case
// ("Fifth", "fifth", "FIFTH"). Any other input is treated as invalid, and
// ParseDiatonicInterval returns a *ParseError.
func ParseDiatonicInterval(s string) (DiatonicInterval, error) {
	switch s {
	case PrimeStr, "prime", "PRIME":
		return Prime, nil
	case SecondStr, "second", "SECOND":
		return Second, nil
	case ThirdStr, "third", "THIRD":
		return Third, nil
	case FourthStr, "fourth", "FOURTH":
		return Fourth, nil
	case FifthStr, "fifth", "FIFTH":
		return Fifth, nil
	case SixthStr, "sixth", "SIXTH":
		return Sixth, nil
	case SeventhStr, "seventh", "SEVENTH":
		return Seventh, nil
	default:
		return Prime, &errors.ParseError{Type: "DiatonicInterval", Value: s}
	}
}

// String returns the canonical name of the size ("Prime" through
// "Seventh").
//
// If the value is not one of the defined constants, String returns
// "unknown".
func (d DiatonicInterval) String() string {
	switch d {
	case Prime:
		return PrimeStr
	case Second:
		return SecondStr
	case Third:
		return ThirdStr
	case Fourth:
		return FourthStr
	case Fifth:
		return FifthStr
	case Sixth:
		return SixthStr
	case Seventh:
		return SeventhStr
	default:
		return "unknown"
	}
}

// Valid reports whether the DiatonicInterval is one of the sizes Prime
// through Seventh.
func (d DiatonicInterval) Valid() bool {
	return Prime <= d && d <= Seventh
}

// PerfectClass reports whether the size belongs to the perfect class of
// intervals.
//
// Prime, Fourth and Fifth admit only diminished, perfect and augmented
// qualities; the remaining sizes admit diminished, minor, major and
// augmented. This asymmetry is the defining fact of the quality table.
func (d DiatonicInterval) PerfectClass() bool {
	switch d {
	case Prime, Fourth, Fifth:
		return true
	default:
		return false
	}
}

// Point returns the diatonic point of the size: its letter-step span in
// the range 0..6.
//
// Because Prime is the numeric origin of the enumeration, this is a plain
// conversion; the method makes the correspondence with the unified algebra
// explicit at call sites.
func (d DiatonicInterval) Point() int {
	return int(d - Prime)
}

// TypeName returns "DiatonicInterval", the name of the type for logging
// and debugging.
func (d DiatonicInterval) TypeName() string {
	return "DiatonicInterval"
}

// Redacted returns the same string representation as String().
func (d DiatonicInterval) Redacted() string {
	return d.String()
}

// IsZero reports whether the DiatonicInterval has its zero value.
//
// The zero value is Prime, a valid size; IsZero returning true does not
// indicate an error condition.
func (d DiatonicInterval) IsZero() bool {
	return d == Prime
}

// Equal reports whether this DiatonicInterval is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a DiatonicInterval or *DiatonicInterval.
func (d DiatonicInterval) Equal(other any) bool {
	switch v := other.(type) {
	case DiatonicInterval:
		return d == v
	case *DiatonicInterval:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// Validate checks whether the DiatonicInterval is one of the sizes Prime
// through Seventh.
//
// It returns nil for valid values and a *ValidationError otherwise.
func (d DiatonicInterval) Validate() error {
	if !d.Valid() {
		return &errors.ValidationError{
			Type:   "DiatonicInterval",
			Reason: "must be between Prime and Seventh",
			Value:  int(d),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for DiatonicInterval.
//
// A valid DiatonicInterval is serialized as its name (for example,
// "Fifth"). If the value is not valid, MarshalJSON returns a
// *MarshalError.
func (d DiatonicInterval) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DiatonicInterval", Value: int(d)}
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for DiatonicInterval.
//
// The method accepts both string and numeric JSON representations: the
// size name via ParseDiatonicInterval, or the numbers 0 (Prime) through 6
// (Seventh).
func (d *DiatonicInterval) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "DiatonicInterval", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "DiatonicInterval", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseDiatonicInterval(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "DiatonicInterval", Data: data, Reason: err.Error()}
	}
	*d = DiatonicInterval(i)
	if !d.Valid() {
		return &errors.UnmarshalError{Type: "DiatonicInterval", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for DiatonicInterval.
func (d DiatonicInterval) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DiatonicInterval", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for DiatonicInterval.
//
// The method accepts the size names resolved via ParseDiatonicInterval.
// On failure, it returns the underlying *ParseError.
func (d *DiatonicInterval) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "DiatonicInterval", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDiatonicInterval(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for DiatonicInterval.
func (d DiatonicInterval) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DiatonicInterval", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for DiatonicInterval.
//
// The method accepts the same vocabulary as ParseDiatonicInterval.
func (d *DiatonicInterval) UnmarshalText(text []byte) error {
	parsed, err := ParseDiatonicInterval(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that DiatonicInterval implements model.Model
// interface.
var _ model.Model = (*DiatonicInterval)(nil)
