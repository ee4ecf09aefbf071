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

package element

import (
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model/interval"
	"tonal.dev/tonal/tonalcore/model/pitch"
)

// FromPitchClass converts a pitch class to its tonal class.
//
// The mapping is a direct relabeling: the letter becomes the point and
// the accidental degree becomes the alteration. It returns a
// *ValidationError when the pitch class is invalid.
func FromPitchClass(pc pitch.Class) (Class, error) {
	if err := pc.Validate(); err != nil {
		return Class{}, err
	}
	return Class{
		Point:      pc.Diatonic.Point(),
		Alteration: pc.Alteration.Degree(),
	}, nil
}

// PitchClass converts the tonal class back to a pitch class.
//
// Every valid tonal class has a pitch-class spelling. It returns a
// *ValidationError when the tonal class is invalid.
func (c Class) PitchClass() (pitch.Class, error) {
	if err := c.Validate(); err != nil {
		return pitch.Class{}, err
	}
	return pitch.Class{
		Diatonic:   pitch.C + pitch.DiatonicPitch(c.Point),
		Alteration: pitch.Natural + pitch.PitchAlteration(c.Alteration),
	}, nil
}

// FromIntervalClass converts an interval class to its tonal class.
//
// The size becomes the point and the quality resolves to the alteration
// through the quality table. It returns a *ValidationError when the
// interval class is illegal.
func FromIntervalClass(ic interval.Class) (Class, error) {
	deg, err := ic.Degree()
	if err != nil {
		return Class{}, err
	}
	return Class{
		Point:      ic.Diatonic.Point(),
		Alteration: deg,
	}, nil
}

// IntervalClass converts the tonal class back to an interval class.
//
// Unlike the pitch-class direction this can fail even for a valid tonal
// class: no quality denotes an alteration of +2 on any size, or -2 on the
// perfect-class sizes. It returns a *ValidationError in those cases and
// when the tonal class is invalid.
func (c Class) IntervalClass() (interval.Class, error) {
	if err := c.Validate(); err != nil {
		return interval.Class{}, err
	}
	d := interval.Prime + interval.DiatonicInterval(c.Point)
	q, err := interval.QualityForDegree(d, c.Alteration)
	if err != nil {
		return interval.Class{}, err
	}
	return interval.Class{Diatonic: d, Quality: q}, nil
}

// FromPitch converts a pitch to its tonal element.
//
// The class converts with FromPitchClass and the octave carries over
// unchanged. It returns a *ValidationError when the pitch is invalid.
func FromPitch(p pitch.Pitch) (Element, error) {
	if err := p.Validate(); err != nil {
		return Element{}, err
	}
	c, err := FromPitchClass(p.Class)
	if err != nil {
		return Element{}, err
	}
	return Element{Class: c, Octave: p.Octave}, nil
}

// Pitch converts the tonal element back to a pitch.
//
// Pitches do not reach below octave zero, so an element with a negative
// octave has no pitch and the conversion returns a *ValidationError, as
// it does for an invalid element.
func (e Element) Pitch() (pitch.Pitch, error) {
	if e.Octave < 0 {
		return pitch.Pitch{}, &errors.ValidationError{
			Type:   "Pitch",
			Field:  "Octave",
			Reason: "must be non-negative",
			Value:  e.Octave,
		}
	}
	pc, err := e.Class.PitchClass()
	if err != nil {
		return pitch.Pitch{}, err
	}
	return pitch.Pitch{Class: pc, Octave: e.Octave}, nil
}

// FromInterval converts an interval to its tonal element.
//
// The class converts with FromIntervalClass and the octave carries over;
// a Down interval then inverts the element, so descending distances
// become elements below the origin. It returns a *ValidationError when
// the interval is invalid.
func FromInterval(iv interval.Interval) (Element, error) {
	if err := iv.Validate(); err != nil {
		return Element{}, err
	}
	c, err := FromIntervalClass(iv.Class)
	if err != nil {
		return Element{}, err
	}
	e := Element{Class: c, Octave: iv.Octave}
	if iv.Direction == interval.Down {
		// The quality table keeps alterations within -2..1, so
		// interval elements always invert.
		return e.Invert()
	}
	return e, nil
}

// Interval converts the tonal element back to an interval.
//
// An element at or above the origin reads off directly as an Up interval;
// an element below it is inverted first and marked Down. The conversion
// returns a *ValidationError when the class has no quality spelling or
// when the result is the invalid diminished prime at octave zero.
func (e Element) Interval() (interval.Interval, error) {
	if err := e.Validate(); err != nil {
		return interval.Interval{}, err
	}

	dir := interval.Up
	if e.Octave < 0 {
		inv, err := e.Invert()
		if err != nil {
			return interval.Interval{}, err
		}
		e = inv
		dir = interval.Down
	}

	ic, err := e.Class.IntervalClass()
	if err != nil {
		return interval.Interval{}, err
	}
	iv := interval.Interval{Class: ic, Octave: e.Octave, Direction: dir}
	if err := iv.Validate(); err != nil {
		return interval.Interval{}, err
	}
	return iv, nil
}
