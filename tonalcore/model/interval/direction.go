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

// Direction represents the direction of a tonal interval, Up or Down.
//
// Intervals keep their octave count non-negative and carry their sign
// here instead; a downward interval is the same class and octave span
// marked Down. Transposition applies a Down interval by subtracting it.
type Direction int

const (
	// Up is an ascending interval. It is the zero value of Direction
	// and is valid.
	Up Direction = iota

	// Down is a descending interval.
	Down
)

// String constants for Direction values used in serialization, parsing,
// and human-facing output.
const (
	UpStr   = "Up"
	DownStr = "Down"
)

// ParseDirection converts a textual representation into a Direction
// value.
//
// The function accepts "Up" and "Down" in title, lower or upper case. Any
// other input is treated as invalid, and ParseDirection returns a
// *ParseError.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case UpStr, "up", "UP":
		return Up, nil
	case DownStr, "down", "DOWN":
		return Down, nil
	default:
		return Up, &errors.ParseError{Type: "Direction", Value: s}
	}
}

// String returns "Up" or "Down".
//
// If the value is not one of the defined constants, String returns
// "unknown".
func (d Direction) String() string {
	switch d {
	case Up:
		return UpStr
	case Down:
		return DownStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Direction is Up or Down.
func (d Direction) Valid() bool {
	return d == Up || d == Down
}

// TypeName returns "Direction", the name of the type for logging and
// debugging.
func (d Direction) TypeName() string {
	return "Direction"
}

// Redacted returns the same string representation as String().
func (d Direction) Redacted() string {
	return d.String()
}

// IsZero reports whether the Direction has its zero value.
//
// The zero value is Up, a valid direction; IsZero returning true does not
// indicate an error condition.
func (d Direction) IsZero() bool {
	return d == Up
}

// Equal reports whether this Direction is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a Direction or *Direction.
func (d Direction) Equal(other any) bool {
	switch v := other.(type) {
	case Direction:
		return d == v
	case *Direction:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// Validate checks whether the Direction is Up or Down.
//
// It returns nil for valid values and a *ValidationError otherwise.
func (d Direction) Validate() error {
	if !d.Valid() {
		return &errors.ValidationError{
			Type:   "Direction",
			Reason: "must be Up or Down",
			Value:  int(d),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Direction.
//
// A valid Direction is serialized as "Up" or "Down". If the value is not
// valid, MarshalJSON returns a *MarshalError.
func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Direction", Value: int(d)}
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Direction.
//
// The method accepts both string and numeric JSON representations: "Up"
// or "Down" via ParseDirection, or the numbers 0 (Up) and 1 (Down).
func (d *Direction) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseDirection(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: err.Error()}
	}
	*d = Direction(i)
	if !d.Valid() {
		return &errors.UnmarshalError{Type: "Direction", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Direction.
func (d Direction) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Direction", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Direction.
//
// The method accepts the direction names resolved via ParseDirection. On
// failure, it returns the underlying *ParseError.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Direction", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDirection(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Direction.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "Direction", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Direction.
//
// The method accepts the same vocabulary as ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that Direction implements model.Model interface.
var _ model.Model = (*Direction)(nil)
