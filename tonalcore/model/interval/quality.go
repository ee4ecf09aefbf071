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

// Quality represents the quality of an interval: Diminished, Minor,
// Major, Perfect, or Augmented.
//
// A Quality on its own is only half a name. Whether it is legal, and
// which signed alteration degree it denotes, depends on the diatonic size
// it is paired with; that pairing is resolved through the quality table
// via Degree and QualityForDegree. Minor and Major never combine with the
// perfect-class sizes, and Perfect never combines with the imperfect-class
// sizes.
type Quality int

const (
	// Diminished narrows an interval by one semitone below minor or
	// perfect. It is the zero value of Quality and is valid.
	Diminished Quality = iota

	// Minor is the narrower of the two plain qualities of the
	// imperfect-class sizes.
	Minor

	// Major is the wider of the two plain qualities of the
	// imperfect-class sizes.
	Major

	// Perfect is the plain quality of the perfect-class sizes (prime,
	// fourth, fifth).
	Perfect

	// Augmented widens an interval by one semitone above major or
	// perfect.
	Augmented
)

// String constants for Quality values used in serialization, parsing, and
// human-facing output.
const (
	DiminishedStr = "Diminished"
	MinorStr      = "Minor"
	MajorStr      = "Major"
	PerfectStr    = "Perfect"
	AugmentedStr  = "Augmented"
)

// illegalDegree marks size/quality pairs outside tonal arithmetic in the
// quality table.
const illegalDegree = -128

// qualityDegrees maps each (DiatonicInterval, Quality) pair to its signed
// alteration degree, with illegalDegree marking the pairs that do not name
// an interval. Indexed [size][quality]; the table is fixed and must not be
// mutated.
var qualityDegrees = [7][5]int{
	Prime:   {Diminished: -1, Minor: illegalDegree, Major: illegalDegree, Perfect: 0, Augmented: 1},
	Second:  {Diminished: -2, Minor: -1, Major: 0, Perfect: illegalDegree, Augmented: 1},
	Third:   {Diminished: -2, Minor: -1, Major: 0, Perfect: illegalDegree, Augmented: 1},
	Fourth:  {Diminished: -1, Minor: illegalDegree, Major: illegalDegree, Perfect: 0, Augmented: 1},
	Fifth:   {Diminished: -1, Minor: illegalDegree, Major: illegalDegree, Perfect: 0, Augmented: 1},
	Sixth:   {Diminished: -2, Minor: -1, Major: 0, Perfect: illegalDegree, Augmented: 1},
	Seventh: {Diminished: -2, Minor: -1, Major: 0, Perfect: illegalDegree, Augmented: 1},
}

// ParseQuality converts a textual representation into a Quality value.
//
// The function accepts the quality names in title, lower or upper case
// ("Perfect", "perfect", "PERFECT"). Any other input is treated as
// invalid, and ParseQuality returns a *ParseError.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case DiminishedStr, "diminished", "DIMINISHED":
		return Diminished, nil
	case MinorStr, "minor", "MINOR":
		return Minor, nil
	case MajorStr, "major", "MAJOR":
		return Major, nil
	case PerfectStr, "perfect", "PERFECT":
		return Perfect, nil
	case AugmentedStr, "augmented", "AUGMENTED":
		return Augmented, nil
	default:
		return Diminished, &errors.ParseError{Type: "Quality", Value: s}
	}
}

// String returns the canonical name of the quality ("Diminished" through
// "Augmented").
//
// If the value is not one of the defined constants, String returns
// "unknown".
func (q Quality) String() string {
	switch q {
	case Diminished:
		return DiminishedStr
	case Minor:
		return MinorStr
	case Major:
		return MajorStr
	case Perfect:
		return PerfectStr
	case Augmented:
		return AugmentedStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Quality is one of the defined constants.
//
// Validity of the quality value itself is necessary but not sufficient:
// whether a Quality names an interval also depends on the diatonic size it
// is paired with. Use Degree or Class.Validate for the pairwise check.
func (q Quality) Valid() bool {
	return Diminished <= q && q <= Augmented
}

// Degree resolves the signed alteration degree of this quality applied to
// the given diatonic size.
//
// Diminished maps to -1 on the perfect-class sizes and -2 on the
// imperfect-class sizes; Augmented is +1 everywhere; the plain quality of
// each class maps to 0. Degree returns a *ValidationError when either
// value is out of range or when the pair is illegal, such as a minor
// fifth or a perfect third.
func (q Quality) Degree(d DiatonicInterval) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if !q.Valid() {
		return 0, &errors.ValidationError{
			Type:   "Quality",
			Reason: "must be between Diminished and Augmented",
			Value:  int(q),
		}
	}
	deg := qualityDegrees[d][q]
	if deg == illegalDegree {
		return 0, &errors.ValidationError{
			Type:   "IntervalClass",
			Field:  "Quality",
			Reason: "quality " + q.String() + " is not defined for a " + d.String(),
			Value:  q.String(),
		}
	}
	return deg, nil
}

// QualityForDegree resolves the quality that denotes the given signed
// alteration degree on the given diatonic size.
//
// It is the inverse of Degree: for every legal pair,
// QualityForDegree(d, deg) recovers the quality whose Degree(d) is deg.
// Degrees outside the range the size admits yield a *ValidationError.
func QualityForDegree(d DiatonicInterval, degree int) (Quality, error) {
	if err := d.Validate(); err != nil {
		return Diminished, err
	}
	if d.PerfectClass() {
		switch degree {
		case -1:
			return Diminished, nil
		case 0:
			return Perfect, nil
		case 1:
			return Augmented, nil
		}
	} else {
		switch degree {
		case -2:
			return Diminished, nil
		case -1:
			return Minor, nil
		case 0:
			return Major, nil
		case 1:
			return Augmented, nil
		}
	}
	return Diminished, &errors.ValidationError{
		Type:   "IntervalClass",
		Field:  "Quality",
		Reason: "no quality denotes that degree on a " + d.String(),
		Value:  degree,
	}
}

// TypeName returns "Quality", the name of the type for logging and
// debugging.
func (q Quality) TypeName() string {
	return "Quality"
}

// Redacted returns the same string representation as String().
func (q Quality) Redacted() string {
	return q.String()
}

// IsZero reports whether the Quality has its zero value.
//
// The zero value is Diminished, a valid quality; IsZero returning true
// does not indicate an error condition.
func (q Quality) IsZero() bool {
	return q == Diminished
}

// Equal reports whether this Quality is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a Quality or *Quality.
func (q Quality) Equal(other any) bool {
	switch v := other.(type) {
	case Quality:
		return q == v
	case *Quality:
		if v == nil {
			return false
		}
		return q == *v
	default:
		return false
	}
}

// Validate checks whether the Quality is one of the defined constants.
//
// It returns nil for valid values and a *ValidationError otherwise.
func (q Quality) Validate() error {
	if !q.Valid() {
		return &errors.ValidationError{
			Type:   "Quality",
			Reason: "must be between Diminished and Augmented",
			Value:  int(q),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Quality.
//
// A valid Quality is serialized as its name (for example, "Perfect"). If
// the value is not valid, MarshalJSON returns a *MarshalError.
func (q Quality) MarshalJSON() ([]byte, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "Quality", Value: int(q)}
	}
	return []byte(`"` + q.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Quality.
//
// The method accepts both string and numeric JSON representations: the
// quality name via ParseQuality, or the numbers 0 (Diminished) through 4
// (Augmented).
func (q *Quality) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseQuality(s)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: err.Error()}
	}
	*q = Quality(i)
	if !q.Valid() {
		return &errors.UnmarshalError{Type: "Quality", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Quality.
func (q Quality) MarshalYAML() (any, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "Quality", Value: int(q)}
	}
	return q.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Quality.
//
// The method accepts the quality names resolved via ParseQuality. On
// failure, it returns the underlying *ParseError.
func (q *Quality) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Quality", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseQuality(str)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Quality.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, &errors.MarshalError{Type: "Quality", Value: int(q)}
	}
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Quality.
//
// The method accepts the same vocabulary as ParseQuality.
func (q *Quality) UnmarshalText(text []byte) error {
	parsed, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Compile-time check that Quality implements model.Model interface.
var _ model.Model = (*Quality)(nil)
