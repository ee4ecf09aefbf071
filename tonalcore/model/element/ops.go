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
	"tonal.dev/tonal/tonalcore/model/interval"
	"tonal.dev/tonal/tonalcore/model/pitch"
)

// TransposePitch moves a pitch by an interval and returns the resulting
// pitch with its tonal spelling intact: a pitch a major third above Cb is
// Eb, never D#.
//
// Both operands convert to tonal elements, the elements add, and the sum
// converts back. The operation fails with a *ValidationError when either
// operand is invalid, when the sum has no tonal spelling, or when it
// lands below octave zero.
func TransposePitch(p pitch.Pitch, iv interval.Interval) (pitch.Pitch, error) {
	ep, err := FromPitch(p)
	if err != nil {
		return pitch.Pitch{}, err
	}
	ei, err := FromInterval(iv)
	if err != nil {
		return pitch.Pitch{}, err
	}
	sum, err := ep.Add(ei)
	if err != nil {
		return pitch.Pitch{}, err
	}
	return sum.Pitch()
}

// AddIntervals returns the sum of two intervals as an interval,
// respecting direction: an up fifth plus a down third is an up third.
//
// It fails with a *ValidationError when either operand is invalid, when
// the sum has no tonal spelling, or when the sum has no quality spelling.
func AddIntervals(a, b interval.Interval) (interval.Interval, error) {
	ea, err := FromInterval(a)
	if err != nil {
		return interval.Interval{}, err
	}
	eb, err := FromInterval(b)
	if err != nil {
		return interval.Interval{}, err
	}
	sum, err := ea.Add(eb)
	if err != nil {
		return interval.Interval{}, err
	}
	return sum.Interval()
}

// BetweenPitches returns the interval from one pitch to another, so that
// transposing from by the result yields to.
//
// The interval is directed: it is Up when to lies above from and Down
// when below. It fails with a *ValidationError when either pitch is
// invalid, when the difference has no quality spelling, or when the
// starting pitch carries a double sharp whose inversion has no tonal
// spelling.
func BetweenPitches(from, to pitch.Pitch) (interval.Interval, error) {
	ef, err := FromPitch(from)
	if err != nil {
		return interval.Interval{}, err
	}
	et, err := FromPitch(to)
	if err != nil {
		return interval.Interval{}, err
	}
	diff, err := et.Sub(ef)
	if err != nil {
		return interval.Interval{}, err
	}
	return diff.Interval()
}

// BetweenIntervals returns the difference of two intervals as an
// interval, the first minus the second.
//
// Adding the second operand to the result recovers the first. It fails
// with a *ValidationError when either operand is invalid or when the
// difference has no tonal or quality spelling.
func BetweenIntervals(a, b interval.Interval) (interval.Interval, error) {
	ea, err := FromInterval(a)
	if err != nil {
		return interval.Interval{}, err
	}
	eb, err := FromInterval(b)
	if err != nil {
		return interval.Interval{}, err
	}
	diff, err := ea.Sub(eb)
	if err != nil {
		return interval.Interval{}, err
	}
	return diff.Interval()
}

// NoteNumber returns the note number of a pitch, its chromatic value
// under the convention that middle C, the natural C at octave 4, is 48.
//
// Enharmonic pitches share a note number; B#3 and C4 both map to 48. It
// fails with a *ValidationError when the pitch is invalid.
func NoteNumber(p pitch.Pitch) (int, error) {
	e, err := FromPitch(p)
	if err != nil {
		return 0, err
	}
	return e.ChromaticValue(), nil
}
