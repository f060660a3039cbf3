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
	"testing"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
)

func TestNewTextTrack_UniqueUIDs(t *testing.T) {
	desc := v1alpha1.TextTrackDescription{Src: "en.vtt", Kind: v1alpha1.TextTrackKindSubtitles}

	a := NewTextTrack(desc)
	b := NewTextTrack(desc)
	if a.UID == b.UID {
		t.Errorf("UIDs not unique: %d", a.UID)
	}
	if a.Src != "en.vtt" || a.Kind != v1alpha1.TextTrackKindSubtitles {
		t.Errorf("track = %+v", a)
	}
}

func TestList_KeysOnUID(t *testing.T) {
	var l List

	// same engine ID, different UIDs: both are distinct list members
	a := &TextTrack{UID: NextUID(), ID: "1"}
	b := &TextTrack{UID: NextUID(), ID: "1"}

	l.Add(a)
	l.Add(b)
	l.Add(a) // duplicate UID, no-op
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	if !l.Has(a) || !l.Has(b) {
		t.Error("Has() lost a member")
	}
	if got := l.Find(a.UID); got != a {
		t.Errorf("Find(%d) = %v", a.UID, got)
	}

	l.Remove(a)
	if l.Has(a) {
		t.Error("Remove() did not remove by UID")
	}
	l.Remove(a) // absent, no-op
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if l.Find(12345678) != nil {
		t.Error("Find() of unknown UID returned a track")
	}
}

func TestCueMutation(t *testing.T) {
	tr := &TextTrack{UID: NextUID()}
	c1 := &Cue{UID: NextUID(), StartTime: 0, EndTime: 2, Content: "hello"}
	c2 := &Cue{UID: NextUID(), StartTime: 2, EndTime: 4, Content: "world"}

	tr.AddCue(c1)
	tr.AddCue(c2)
	tr.AddCue(c1) // present, no-op
	if len(tr.Cues) != 2 {
		t.Fatalf("len(Cues) = %d, want 2", len(tr.Cues))
	}

	tr.RemoveCue(c1)
	tr.RemoveCue(c1) // absent, no-op
	if len(tr.Cues) != 1 || tr.Cues[0] != c2 {
		t.Errorf("Cues = %v", tr.Cues)
	}
}
