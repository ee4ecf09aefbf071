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
	"testing"
)

func TestQuality_String(t *testing.T) {
	tests := []struct {
		name string
		q    Quality
		want string
	}{
		{"Diminished", Diminished, "Diminished"},
		{"Minor", Minor, "Minor"},
		{"Major", Major, "Major"},
		{"Perfect", Perfect, "Perfect"},
		{"Augmented", Augmented, "Augmented"},
		{"Unknown", Quality(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.String(); got != tt.want {
				t.Errorf("Quality.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Quality
		wantErr bool
	}{
		{"title", "Perfect", Perfect, false},
		{"lowercase", "minor", Minor, false},
		{"uppercase", "AUGMENTED", Augmented, false},
		{"empty", "", Diminished, true},
		{"abbreviation", "P", Diminished, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseQuality() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseQuality() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuality_Degree(t *testing.T) {
	tests := []struct {
		name    string
		q       Quality
		d       DiatonicInterval
		want    int
		wantErr bool
	}{
		// Perfect-class sizes
		{"diminished prime", Diminished, Prime, -1, false},
		{"perfect prime", Perfect, Prime, 0, false},
		{"augmented prime", Augmented, Prime, 1, false},
		{"diminished fifth", Diminished, Fifth, -1, false},
		{"perfect fourth", Perfect, Fourth, 0, false},

		// Imperfect-class sizes
		{"diminished third", Diminished, Third, -2, false},
		{"minor third", Minor, Third, -1, false},
		{"major third", Major, Third, 0, false},
		{"augmented sixth", Augmented, Sixth, 1, false},
		{"diminished seventh", Diminished, Seventh, -2, false},

		// Illegal pairs
		{"minor prime", Minor, Prime, 0, true},
		{"major fourth", Major, Fourth, 0, true},
		{"major fifth", Major, Fifth, 0, true},
		{"perfect second", Perfect, Second, 0, true},
		{"perfect third", Perfect, Third, 0, true},
		{"perfect sixth", Perfect, Sixth, 0, true},
		{"perfect seventh", Perfect, Seventh, 0, true},

		// Out-of-range operands
		{"invalid size", Major, DiatonicInterval(7), 0, true},
		{"invalid quality", Quality(99), Third, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.q.Degree(tt.d)
			if (err != nil) != tt.wantErr {
				t.Errorf("Degree() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Degree() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQualityForDegree(t *testing.T) {
	tests := []struct {
		name    string
		d       DiatonicInterval
		degree  int
		want    Quality
		wantErr bool
	}{
		{"fifth -1", Fifth, -1, Diminished, false},
		{"fifth 0", Fifth, 0, Perfect, false},
		{"fifth +1", Fifth, 1, Augmented, false},
		{"third -2", Third, -2, Diminished, false},
		{"third -1", Third, -1, Minor, false},
		{"third 0", Third, 0, Major, false},
		{"third +1", Third, 1, Augmented, false},
		{"fifth -2", Fifth, -2, Diminished, true},
		{"third +2", Third, 2, Diminished, true},
		{"prime -2", Prime, -2, Diminished, true},
		{"invalid size", DiatonicInterval(-1), 0, Diminished, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QualityForDegree(tt.d, tt.degree)
			if (err != nil) != tt.wantErr {
				t.Errorf("QualityForDegree() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("QualityForDegree() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Degree and QualityForDegree must be inverses over every legal pair.
func TestQualityDegreeRoundtrip(t *testing.T) {
	for d := Prime; d <= Seventh; d++ {
		for q := Diminished; q <= Augmented; q++ {
			deg, err := q.Degree(d)
			if err != nil {
				continue
			}
			back, err := QualityForDegree(d, deg)
			if err != nil {
				t.Errorf("QualityForDegree(%v, %d) error = %v", d, deg, err)
				continue
			}
			if back != q {
				t.Errorf("QualityForDegree(%v, %d) = %v, want %v", d, deg, back, q)
			}
		}
	}
}
