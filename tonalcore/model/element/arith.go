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
)

// floorDiv divides rounding toward negative infinity, so that -1/7 is
// -1, not 0. Only ever called with b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FromValues reconstructs the element with the given diatonic and
// chromatic projections.
//
// The octave is the floor of the diatonic value over 7 and the point is
// the remainder; the alteration is whatever is left of the chromatic
// value once the octave and the point's semitone are taken out. Not every
// pair is representable: when the leftover falls outside -2..2 the
// spelling would need more than a double accidental, and FromValues
// returns a *ValidationError. For every valid element e,
// FromValues(e.DiatonicValue(), e.ChromaticValue()) returns e.
func FromValues(dv, cv int) (Element, error) {
	o := floorDiv(dv, 7)
	point := dv - 7*o
	cv -= 12 * o

	if cv < -2 || 13 < cv {
		return Element{}, &errors.ValidationError{
			Type:   "TonalElement",
			Reason: "chromatic value is out of tonal range for the diatonic value",
			Value:  cv,
		}
	}

	alt := cv - semitones[point]
	if alt < -2 || 2 < alt {
		return Element{}, &errors.ValidationError{
			Type:   "TonalElement",
			Field:  "Alteration",
			Reason: "spelling would need more than a double accidental",
			Value:  alt,
		}
	}

	return Element{
		Class:  Class{Point: point, Alteration: alt},
		Octave: o,
	}, nil
}

// Add returns the sum of two elements.
//
// The sum is computed on the projections: both values add componentwise
// and the result is reconstructed with FromValues. Addition is
// commutative and associative, and the zero Element is its identity. It
// returns a *ValidationError when either operand is invalid or when the
// sum is not representable.
func (e Element) Add(other Element) (Element, error) {
	if err := e.Validate(); err != nil {
		return Element{}, err
	}
	if err := other.Validate(); err != nil {
		return Element{}, err
	}
	return FromValues(
		e.DiatonicValue()+other.DiatonicValue(),
		e.ChromaticValue()+other.ChromaticValue(),
	)
}

// Invert returns the additive inverse of the element, the element whose
// projections are the negations of this one's.
//
// When the inverse exists, e.Add(inverse) is the zero Element. Not every
// element has one: a double sharp on most points inverts to a spelling
// that would need a triple flat, and Invert returns a *ValidationError
// for those, as it does for an invalid element.
// Interval-derived elements always invert, since the quality table never
// produces an alteration of +2.
func (e Element) Invert() (Element, error) {
	if err := e.Validate(); err != nil {
		return Element{}, err
	}
	return FromValues(-e.DiatonicValue(), -e.ChromaticValue())
}

// Sub returns the difference of two elements, this one minus the other.
//
// It is addition of the inverse, so e.Sub(other).Add(other) recovers e
// whenever both operations are representable. It returns a
// *ValidationError when either operand is invalid or when the difference
// is not representable.
func (e Element) Sub(other Element) (Element, error) {
	inv, err := other.Invert()
	if err != nil {
		return Element{}, err
	}
	return e.Add(inv)
}
