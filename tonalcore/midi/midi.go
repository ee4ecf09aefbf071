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

// Package midi bridges tonal pitches to the MIDI wire format.
//
// A pitch maps to a MIDI key through its note number, under the
// convention that the natural C at octave 4 is 48. The mapping is lossy
// on purpose: enharmonic spellings collapse to the same key, which is
// exactly what a synthesizer wants and exactly what the rest of this
// library refuses to do.
package midi

import (
	"fmt"
	"io"

	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
	"tonal.dev/tonal/tonalcore/errors"
	"tonal.dev/tonal/tonalcore/model/element"
	"tonal.dev/tonal/tonalcore/model/pitch"
)

// Key returns the MIDI key of a pitch.
//
// The key is the pitch's note number, so C4 maps to 48 and the playable
// range runs from C0 (key 0) to G10 (key 127). Pitches outside that
// range, and invalid pitches, yield a *ValidationError.
func Key(p pitch.Pitch) (uint8, error) {
	n, err := element.NoteNumber(p)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 127 {
		return 0, &errors.ValidationError{
			Type:   "Pitch",
			Reason: "outside the MIDI key range 0..127",
			Value:  p.String(),
		}
	}
	return uint8(n), nil
}

type midiWriter struct {
	wr              midi.Writer
	ch              channel.Channel
	noteState       [16][128]bool
	noConsolidation bool
}

// Writer emits note events for tonal pitches on a MIDI stream.
//
// It tracks which keys are sounding per channel and rejects a note-on
// for a running key or a note-off for a silent one, so a stuck note is
// caught at the source rather than on the instrument.
type Writer struct {
	*midiWriter
}

// NewWriter creates a Writer emitting on channel 0 of dest.
//
// Running status is disabled so every message carries its own status
// byte; additional midiwriter options may be appended.
func NewWriter(dest io.Writer, options ...midiwriter.Option) *Writer {
	options = append(
		[]midiwriter.Option{
			midiwriter.NoRunningStatus(),
		}, options...)

	wr := midiwriter.New(dest, options...)
	return &Writer{&midiWriter{wr: wr, ch: channel.Channel0}}
}

// NoteOn starts sounding a pitch at the given velocity.
//
// The pitch must map to a MIDI key and must not already be sounding.
func (w *midiWriter) NoteOn(p pitch.Pitch, velocity uint8) error {
	key, err := Key(p)
	if err != nil {
		return err
	}
	return w.Write(w.ch.NoteOn(key, velocity))
}

// NoteOff stops sounding a pitch.
//
// The pitch must map to a MIDI key and must currently be sounding. Any
// enharmonic spelling of the sounding pitch works, since they share a
// key.
func (w *midiWriter) NoteOff(p pitch.Pitch) error {
	key, err := Key(p)
	if err != nil {
		return err
	}
	return w.Write(w.ch.NoteOff(key))
}

// Write emits a raw MIDI message, consolidating note state.
func (w *midiWriter) Write(msg midi.Message) error {
	if w.noConsolidation {
		return w.wr.Write(msg)
	}
	switch m := msg.(type) {
	case channel.NoteOn:
		if m.Velocity() > 0 && w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note already running.", msg)
		}
		if m.Velocity() == 0 && !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
		w.noteState[m.Channel()][m.Key()] = m.Velocity() > 0
	case channel.NoteOff:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	case channel.NoteOffVelocity:
		if !w.noteState[m.Channel()][m.Key()] {
			return fmt.Errorf("can't write %s. note is not running.", msg)
		}
		w.noteState[m.Channel()][m.Key()] = false
	}
	return w.wr.Write(msg)
}
