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
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewPitch(t *testing.T) {
	tests := []struct {
		name     string
		diatonic DiatonicPitch
		alt      PitchAlteration
		octave   int
		wantErr  bool
	}{
		{"C4", C, Natural, 4, false},
		{"Eb0", E, Flat, 0, false},
		{"B##20", B, DoubleSharp, 20, false},
		{"negative octave", C, Natural, -1, true},
		{"invalid diatonic", DiatonicPitch(7), Natural, 4, true},
		{"invalid alteration", C, PitchAlteration(-3), 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPitch(tt.diatonic, tt.alt, tt.octave)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPitch() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			want := Pitch{Class: Class{tt.diatonic, tt.alt}, Octave: tt.octave}
			if !got.Equal(want) {
				t.Errorf("NewPitch() = %v, want %v", got, want)
			}
		})
	}
}

func TestPitch_String(t *testing.T) {
	tests := []struct {
		name  string
		pitch Pitch
		want  string
	}{
		{"C4", Pitch{Class{C, Natural}, 4}, "C4"},
		{"Eb4", Pitch{Class{E, Flat}, 4}, "Eb4"},
		{"F#0", Pitch{Class{F, Sharp}, 0}, "F#0"},
		{"Bbb12", Pitch{Class{B, DoubleFlat}, 12}, "Bbb12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pitch.String(); got != tt.want {
				t.Errorf("Pitch.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPitch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pitch   Pitch
		wantErr bool
	}{
		{"C0", Pitch{Class{C, Natural}, 0}, false},
		{"A#9", Pitch{Class{A, Sharp}, 9}, false},
		{"negative octave", Pitch{Class{C, Natural}, -1}, true},
		{"invalid class", Pitch{Class{DiatonicPitch(8), Natural}, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pitch.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPitch_IsZero(t *testing.T) {
	if !(Pitch{}).IsZero() {
		t.Error("zero Pitch IsZero() = false, want true")
	}
	if (Pitch{Class{C, Natural}, 4}).IsZero() {
		t.Error("C4 IsZero() = true, want false")
	}
}

func TestPitch_Equal(t *testing.T) {
	tests := []struct {
		name string
		p1   Pitch
		p2   Pitch
		want bool
	}{
		{"equal", Pitch{Class{E, Flat}, 4}, Pitch{Class{E, Flat}, 4}, true},
		{"different octave", Pitch{Class{E, Flat}, 4}, Pitch{Class{E, Flat}, 5}, false},
		{"enharmonic not equal", Pitch{Class{D, Sharp}, 4}, Pitch{Class{E, Flat}, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p1.Equal(tt.p2); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPitch_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(Pitch{Class{E, Flat}, 4})
	if err != nil {
		t.Fatalf("Pitch.MarshalJSON() error = %v", err)
	}
	want := `{"class":{"diatonic":"E","alteration":"b"},"octave":4}`
	if string(got) != want {
		t.Errorf("Pitch.MarshalJSON() = %v, want %v", string(got), want)
	}

	if _, err := json.Marshal(Pitch{Class{C, Natural}, -2}); err == nil {
		t.Error("Pitch.MarshalJSON() with negative octave error = nil, want error")
	}
}

func TestPitch_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pitch
		wantErr bool
	}{
		{"Eb4", `{"class":{"diatonic":"E","alteration":"b"},"octave":4}`, Pitch{Class{E, Flat}, 4}, false},
		{"C0 implicit octave", `{"class":{"diatonic":"C","alteration":""}}`, Pitch{Class{C, Natural}, 0}, false},
		{"negative octave", `{"class":{"diatonic":"C","alteration":""},"octave":-1}`, Pitch{}, true},
		{"invalid class", `{"class":{"diatonic":"H","alteration":""},"octave":4}`, Pitch{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Pitch
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("Pitch.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Pitch.UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPitch_YAML(t *testing.T) {
	orig := Pitch{Class{G, DoubleSharp}, 7}
	data, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var got Pitch
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if !got.Equal(orig) {
		t.Errorf("YAML roundtrip = %v, want %v", got, orig)
	}

	if _, err := yaml.Marshal(Pitch{Class{C, Natural}, -1}); err == nil {
		t.Error("yaml.Marshal(negative octave) error = nil, want error")
	}
}
