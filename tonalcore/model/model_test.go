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

package model_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"
	"tonal.dev/tonal/tonalcore/model"
)

// ExampleModel demonstrates a complete Model implementation. It stands in
// for the domain types so the contract and the generic helpers can be
// tested without importing them (which would be an import cycle for the
// internal test package and is unnecessary for the external one).
type ExampleModel struct {
	Name      string  `json:"name" yaml:"name"`
	Reference string  `json:"reference" yaml:"reference"`
	Hertz     float64 `json:"hertz" yaml:"hertz"`
}

// Validate implements Validatable
func (e ExampleModel) Validate() error {
	if e.Name == "" {
		return errors.New("name required")
	}
	if e.Hertz <= 0 {
		return errors.New("hertz must be positive")
	}
	return nil
}

// TypeName implements Identifiable
func (e ExampleModel) TypeName() string {
	return "ExampleModel"
}

// IsZero implements ZeroCheckable
func (e ExampleModel) IsZero() bool {
	return e.Name == "" && e.Reference == "" && e.Hertz == 0
}

// String implements Loggable
func (e ExampleModel) String() string {
	return fmt.Sprintf("ExampleModel{Name:%s, Reference:%s, Hertz:%g}", e.Name, e.Reference, e.Hertz)
}

// Redacted implements Loggable. Tonal values carry nothing sensitive, so
// Redacted matches String, the same convention every domain type follows.
func (e ExampleModel) Redacted() string {
	return e.String()
}

// MarshalJSON implements Serializable
func (e ExampleModel) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias ExampleModel
	return json.Marshal((alias)(e))
}

// UnmarshalJSON implements Serializable
func (e *ExampleModel) UnmarshalJSON(data []byte) error {
	type alias ExampleModel
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// MarshalYAML implements Serializable
func (e ExampleModel) MarshalYAML() (interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias ExampleModel
	return (alias)(e), nil
}

// UnmarshalYAML implements Serializable
func (e *ExampleModel) UnmarshalYAML(node *yaml.Node) error {
	type alias ExampleModel
	if err := node.Decode((*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// Verify ExampleModel implements Model at compile time
var _ model.Model = (*ExampleModel)(nil)

func concertPitch() *ExampleModel {
	return &ExampleModel{Name: "concert", Reference: "A4", Hertz: 440}
}

func baroquePitch() *ExampleModel {
	return &ExampleModel{Name: "baroque", Reference: "A4", Hertz: 415}
}

func TestModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   ExampleModel
		wantErr bool
	}{
		{
			name:    "valid model",
			model:   ExampleModel{Name: "concert", Reference: "A4", Hertz: 440},
			wantErr: false,
		},
		{
			name:    "missing name",
			model:   ExampleModel{Reference: "A4", Hertz: 440},
			wantErr: true,
		},
		{
			name:    "zero frequency",
			model:   ExampleModel{Name: "concert", Reference: "A4"},
			wantErr: true,
		},
		{
			name:    "empty model",
			model:   ExampleModel{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModel_IsZero(t *testing.T) {
	tests := []struct {
		name  string
		model ExampleModel
		want  bool
	}{
		{
			name:  "zero model",
			model: ExampleModel{},
			want:  true,
		},
		{
			name:  "non-zero model",
			model: ExampleModel{Name: "concert"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_Redacted(t *testing.T) {
	m := concertPitch()

	if m.Redacted() != m.String() {
		t.Errorf("Redacted() = %q, want String() = %q", m.Redacted(), m.String())
	}
}

func TestModel_JSON_RoundTrip(t *testing.T) {
	original := concertPitch()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded ExampleModel
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded != *original {
		t.Errorf("JSON round-trip failed: got %+v, want %+v", decoded, *original)
	}
}

func TestModel_YAML_RoundTrip(t *testing.T) {
	original := concertPitch()

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var decoded ExampleModel
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if decoded != *original {
		t.Errorf("YAML round-trip failed: got %+v, want %+v", decoded, *original)
	}
}

func TestModel_Marshal_FailsOnInvalid(t *testing.T) {
	invalid := ExampleModel{} // Missing required fields

	if _, err := json.Marshal(invalid); err == nil {
		t.Error("json.Marshal() should fail on invalid model")
	}

	if _, err := yaml.Marshal(invalid); err == nil {
		t.Error("yaml.Marshal() should fail on invalid model")
	}
}

func TestModel_Unmarshal_FailsOnInvalid(t *testing.T) {
	jsonData := []byte(`{"reference":"A4","hertz":440}`)

	var m ExampleModel
	if err := json.Unmarshal(jsonData, &m); err == nil {
		t.Error("json.Unmarshal() should fail when validation fails")
	}

	yamlData := []byte("reference: A4\nhertz: 440")

	var m2 ExampleModel
	if err := yaml.Unmarshal(yamlData, &m2); err == nil {
		t.Error("yaml.Unmarshal() should fail when validation fails")
	}
}

func TestModel_TypeName(t *testing.T) {
	m := concertPitch()

	if got := m.TypeName(); got != "ExampleModel" {
		t.Errorf("TypeName() = %q, want %q", got, "ExampleModel")
	}
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		models  []*ExampleModel
		wantErr bool
	}{
		{
			name:    "all valid",
			models:  []*ExampleModel{concertPitch(), baroquePitch()},
			wantErr: false,
		},
		{
			name:    "one invalid",
			models:  []*ExampleModel{concertPitch(), {Name: "broken"}},
			wantErr: true,
		},
		{
			name:    "all invalid",
			models:  []*ExampleModel{{}, {Name: "broken"}},
			wantErr: true,
		},
		{
			name:    "empty slice",
			models:  []*ExampleModel{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAll_ReportsEveryFailure(t *testing.T) {
	models := []*ExampleModel{{}, concertPitch(), {Name: "broken"}}

	err := model.ValidateAll(models)
	if err == nil {
		t.Fatal("ValidateAll() error = nil, want combined error")
	}

	msg := err.Error()
	for _, want := range []string{"model[0]", "model[2]", "ExampleModel"} {
		if !contains(msg, want) {
			t.Errorf("ValidateAll() error %q should contain %q", msg, want)
		}
	}
	if contains(msg, "model[1]") {
		t.Errorf("ValidateAll() error %q should not mention the valid model", msg)
	}
}

func TestFilterZero(t *testing.T) {
	tuned := concertPitch()
	models := []*ExampleModel{tuned, {}, baroquePitch(), {}}

	got := model.FilterZero(models)

	if len(got) != 2 {
		t.Fatalf("FilterZero() returned %d models, want 2", len(got))
	}
	if got[0] != tuned {
		t.Errorf("FilterZero() should preserve order, got[0] = %v", got[0])
	}

	allZero := []*ExampleModel{{}, {}}
	if got := model.FilterZero(allZero); got == nil || len(got) != 0 {
		t.Errorf("FilterZero() on all-zero input = %v, want empty non-nil slice", got)
	}
}

func TestMustValidate(t *testing.T) {
	m := concertPitch()

	if got := model.MustValidate(m); got != m {
		t.Errorf("MustValidate() = %v, want the input %v", got, m)
	}
}

func TestMustValidate_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustValidate() should panic on an invalid model")
		}
	}()

	model.MustValidate(&ExampleModel{Name: "broken"})
}

func TestSafeString(t *testing.T) {
	m := concertPitch()

	if got := model.SafeString(m, false); got != m.Redacted() {
		t.Errorf("SafeString(unsafe=false) = %q, want %q", got, m.Redacted())
	}
	if got := model.SafeString(m, true); got != m.String() {
		t.Errorf("SafeString(unsafe=true) = %q, want %q", got, m.String())
	}
}

func TestToJSON(t *testing.T) {
	data, err := model.ToJSON(concertPitch())
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var m ExampleModel
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("ToJSON() produced unparseable output: %v", err)
	}

	if _, err := model.ToJSON(&ExampleModel{}); err == nil {
		t.Error("ToJSON() should fail on an invalid model")
	}
}

func TestToYAML(t *testing.T) {
	data, err := model.ToYAML(concertPitch())
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var m ExampleModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("ToYAML() produced unparseable output: %v", err)
	}

	if _, err := model.ToYAML(&ExampleModel{}); err == nil {
		t.Error("ToYAML() should fail on an invalid model")
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			data:    `{"name":"concert","reference":"A4","hertz":440}`,
			wantErr: false,
		},
		{
			name:    "fails validation",
			data:    `{"reference":"A4","hertz":440}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			data:    `{"name":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m *ExampleModel
			err := model.FromJSON([]byte(tt.data), &m)
			if (err != nil) != tt.wantErr {
				t.Errorf("FromJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && m.Name != "concert" {
				t.Errorf("FromJSON() decoded Name = %q, want %q", m.Name, "concert")
			}
		})
	}
}

func TestFromYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			data:    "name: concert\nreference: A4\nhertz: 440",
			wantErr: false,
		},
		{
			name:    "fails validation",
			data:    "reference: A4\nhertz: 440",
			wantErr: true,
		},
		{
			name:    "malformed YAML",
			data:    "name: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m *ExampleModel
			err := model.FromYAML([]byte(tt.data), &m)
			if (err != nil) != tt.wantErr {
				t.Errorf("FromYAML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && m.Name != "concert" {
				t.Errorf("FromYAML() decoded Name = %q, want %q", m.Name, "concert")
			}
		})
	}
}

func TestClone(t *testing.T) {
	original := concertPitch()

	clone, err := model.Clone(original)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}

	if clone == original {
		t.Error("Clone() should return a new instance, not the original pointer")
	}
	if *clone != *original {
		t.Errorf("Clone() = %+v, want %+v", *clone, *original)
	}

	clone.Hertz = 415
	if original.Hertz != 440 {
		t.Error("mutating the clone should not affect the original")
	}

	if _, err := model.Clone(&ExampleModel{}); err == nil {
		t.Error("Clone() should fail on an invalid model")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    *ExampleModel
		b    *ExampleModel
		want bool
	}{
		{
			name: "equal values",
			a:    concertPitch(),
			b:    concertPitch(),
			want: true,
		},
		{
			name: "different values",
			a:    concertPitch(),
			b:    baroquePitch(),
			want: false,
		},
		{
			name: "invalid operand",
			a:    concertPitch(),
			b:    &ExampleModel{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
