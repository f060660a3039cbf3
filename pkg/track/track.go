/*
Copyright 2026 The nagare media authors

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

package track

import (
	"sync/atomic"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
)

var uidCounter atomic.Uint64

// NextUID allocates a process-unique track or cue identifier.
func NextUID() uint64 {
	return uidCounter.Add(1)
}

// TextTrack is one text track known to the playback engine. UID is process
// unique; ID is the engine's own identifier and may repeat across sources.
type TextTrack struct {
	UID   uint64
	ID    string
	Src   string
	Label string
	Kind  v1alpha1.TextTrackKind

	Cues []*Cue
}

// NewTextTrack registers a side-loaded track description under a fresh UID.
func NewTextTrack(desc v1alpha1.TextTrackDescription) *TextTrack {
	return &TextTrack{
		UID:   NextUID(),
		Src:   desc.Src,
		Label: desc.Label,
		Kind:  desc.Kind,
	}
}

type Cue struct {
	UID       uint64
	ID        string
	StartTime float64
	EndTime   float64
	Content   string
}

// AddCue appends c to the track's cue list; no-op when a cue with the same
// UID is already present.
func (t *TextTrack) AddCue(c *Cue) {
	for _, existing := range t.Cues {
		if existing.UID == c.UID {
			return
		}
	}
	t.Cues = append(t.Cues, c)
}

// RemoveCue removes the cue with c's UID from the track's cue list; no-op
// when absent.
func (t *TextTrack) RemoveCue(c *Cue) {
	for i, existing := range t.Cues {
		if existing.UID == c.UID {
			t.Cues = append(t.Cues[:i], t.Cues[i+1:]...)
			return
		}
	}
}

// List is an ordered collection of text tracks keyed exclusively on UID.
type List struct {
	tracks []*TextTrack
}

func (l *List) Add(t *TextTrack) {
	if l.Has(t) {
		return
	}
	l.tracks = append(l.tracks, t)
}

func (l *List) Remove(t *TextTrack) {
	for i, existing := range l.tracks {
		if existing.UID == t.UID {
			l.tracks = append(l.tracks[:i], l.tracks[i+1:]...)
			return
		}
	}
}

func (l *List) Has(t *TextTrack) bool {
	return l.Find(t.UID) != nil
}

// Find returns the track with the given UID, or nil.
func (l *List) Find(uid uint64) *TextTrack {
	for _, t := range l.tracks {
		if t.UID == uid {
			return t
		}
	}
	return nil
}

func (l *List) Len() int {
	return len(l.tracks)
}

// All returns the tracks in insertion order. The returned slice is a copy.
func (l *List) All() []*TextTrack {
	out := make([]*TextTrack, len(l.tracks))
	copy(out, l.tracks)
	return out
}
