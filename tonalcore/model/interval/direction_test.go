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
	"testing"
)

func TestDirection_String(t *testing.T) {
	if got := Up.String(); got != "Up" {
		t.Errorf("Up.String() = %v, want Up", got)
	}
	if got := Down.String(); got != "Down" {
		t.Errorf("Down.String() = %v, want Down", got)
	}
	if got := Direction(5).String(); got != "unknown" {
		t.Errorf("Direction(5).String() = %v, want unknown", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Direction
		wantErr bool
	}{
		{"Up title", "Up", Up, false},
		{"up lower", "up", Up, false},
		{"DOWN upper", "DOWN", Down, false},
		{"empty", "", Up, true},
		{"sideways", "sideways", Up, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDirection() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDirection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirection_Validate(t *testing.T) {
	if err := Up.Validate(); err != nil {
		t.Errorf("Up.Validate() error = %v", err)
	}
	if err := Down.Validate(); err != nil {
		t.Errorf("Down.Validate() error = %v", err)
	}
	if err := Direction(2).Validate(); err == nil {
		t.Error("Direction(2).Validate() error = nil, want error")
	}
}

func TestDirection_JSON(t *testing.T) {
	data, err := json.Marshal(Down)
	if err != nil {
		t.Fatalf("Direction.MarshalJSON() error = %v", err)
	}
	if string(data) != `"Down"` {
		t.Errorf("Direction.MarshalJSON() = %v, want \"Down\"", string(data))
	}

	var d Direction
	if err := json.Unmarshal([]byte(`"up"`), &d); err != nil {
		t.Fatalf("Direction.UnmarshalJSON() error = %v", err)
	}
	if d != Up {
		t.Errorf("Direction.UnmarshalJSON() = %v, want Up", d)
	}

	if err := json.Unmarshal([]byte(`2`), &d); err == nil {
		t.Error("Direction.UnmarshalJSON(2) error = nil, want error")
	}
}
