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

package source

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/media"
)

func newTestResolver() *Resolver {
	return NewResolver(v1alpha1.Features{GoogleDAI: true, GoogleIMA: true}, nil, nil)
}

func TestResolve_SingleSourceWithTextTrack(t *testing.T) {
	r := newTestResolver()

	desc, err := r.Resolve(map[string]any{
		"sources": map[string]any{"src": "a.mp4"},
		"textTracks": []any{
			map[string]any{"src": "t.vtt", "kind": "subtitles", "label": "EN", "default": true},
		},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(desc.Sources) != 1 {
		t.Fatalf("len(Sources) = %d, want 1", len(desc.Sources))
	}
	if desc.Sources[0].Src != "a.mp4" {
		t.Errorf("Sources[0].Src = %q", desc.Sources[0].Src)
	}
	if desc.Sources[0].Type != media.MP4ContentType {
		t.Errorf("Sources[0].Type = %q, want %q", desc.Sources[0].Type, media.MP4ContentType)
	}

	if len(desc.TextTracks) != 1 {
		t.Fatalf("len(TextTracks) = %d, want 1", len(desc.TextTracks))
	}
	track := desc.TextTracks[0]
	want := v1alpha1.TextTrackDescription{
		Src:       "t.vtt",
		IsDefault: true,
		Label:     "EN",
		Kind:      v1alpha1.TextTrackKindSubtitles,
	}
	if !reflect.DeepEqual(track, want) {
		t.Errorf("TextTracks[0] = %+v, want %+v", track, want)
	}
}

func TestResolve_SourcesObjectEqualsOneElementArray(t *testing.T) {
	r := newTestResolver()

	asObject, err := r.Resolve(map[string]any{
		"sources": map[string]any{"src": "live.m3u8", "hlsDateRange": true},
	})
	if err != nil {
		t.Fatalf("Resolve(object) error = %v", err)
	}

	asArray, err := r.Resolve(map[string]any{
		"sources": []any{map[string]any{"src": "live.m3u8", "hlsDateRange": true}},
	})
	if err != nil {
		t.Fatalf("Resolve(array) error = %v", err)
	}

	if !reflect.DeepEqual(asObject, asArray) {
		t.Errorf("bare object and one element array differ:\n%+v\n%+v", asObject, asArray)
	}
}

func TestResolve_MalformedSourceEntrySkipped(t *testing.T) {
	r := newTestResolver()

	desc, err := r.Resolve(map[string]any{
		"sources": []any{
			"not a source object",
			map[string]any{"src": "a.mpd"},
		},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(desc.Sources) != 1 {
		t.Fatalf("len(Sources) = %d, want 1", len(desc.Sources))
	}
	if desc.Sources[0].Type != media.DASHContentType {
		t.Errorf("Sources[0].Type = %q, want %q", desc.Sources[0].Type, media.DASHContentType)
	}
}

func TestResolve_StructuralFailures(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		in   any
		want error
	}{
		{"not a mapping", []any{"x"}, ErrNotAMapping},
		{"scalar input", 42, ErrNotAMapping},
		{"missing sources", map[string]any{"poster": "p.png"}, ErrNoSources},
		{"sources of wrong shape", map[string]any{"sources": "a.mp4"}, ErrNoSources},
		{"all source entries malformed", map[string]any{"sources": []any{1, "x"}}, ErrNoSources},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := r.Resolve(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.want)
			}
			if desc != nil {
				t.Errorf("Resolve() returned partial description %+v", desc)
			}
		})
	}
}

func TestResolve_AdFailureAbortsWholeCall(t *testing.T) {
	r := newTestResolver()

	desc, err := r.Resolve(map[string]any{
		"sources": map[string]any{"src": "a.mp4"},
		"ads": []any{
			map[string]any{"integration": "google-ima", "sources": "https://x/ad.xml"},
			map[string]any{"timeOffset": "10%"}, // missing integration
		},
	})
	if desc != nil {
		t.Errorf("Resolve() returned partial description %+v", desc)
	}
	if got := CodeOf(err); got != MissingCSAIIntegration {
		t.Errorf("CodeOf(err) = %q, want %q", got, MissingCSAIIntegration)
	}
}

func TestResolve_PosterAndMetadata(t *testing.T) {
	r := newTestResolver()

	desc, err := r.Resolve(map[string]any{
		"sources": map[string]any{"src": "a.mp4"},
		"poster":  "https://cdn/poster.png",
		"metadata": map[string]any{
			"title":  "Big Buck Bunny",
			"album":  "shorts",
			"images": []any{
				map[string]any{"src": "cover.png", "width": 640, "height": 480},
				map[string]any{"src": "thumb.png"},
				map[string]any{"src": "bad.png", "width": "not a number"},
				"not an image",
			},
		},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if desc.Poster != "https://cdn/poster.png" {
		t.Errorf("Poster = %q", desc.Poster)
	}
	if desc.Metadata == nil {
		t.Fatal("Metadata = nil")
	}
	if got := desc.Metadata.Fields["title"]; got != "Big Buck Bunny" {
		t.Errorf("Metadata.Fields[title] = %v", got)
	}
	if _, reserved := desc.Metadata.Fields["images"]; reserved {
		t.Error("images leaked into free form metadata fields")
	}

	images := desc.Metadata.Images
	if len(images) != 3 {
		t.Fatalf("len(Images) = %d, want 3", len(images))
	}
	if images[0].Src != "cover.png" || images[0].Width == nil || *images[0].Width != 640 ||
		images[0].Height == nil || *images[0].Height != 480 {
		t.Errorf("Images[0] = %+v", images[0])
	}
	if images[1].Width != nil || images[1].Height != nil {
		t.Errorf("Images[1] carries dimensions: %+v", images[1])
	}
	if images[2].Width != nil {
		t.Errorf("unparsable width was not left unset: %+v", images[2])
	}
}

func TestResolve_TextTrackPolicy(t *testing.T) {
	r := newTestResolver()

	desc, err := r.Resolve(map[string]any{
		"sources": map[string]any{"src": "a.mp4"},
		"textTracks": []any{
			map[string]any{"src": "en.vtt", "kind": "captions"},
			map[string]any{"src": "de.vtt", "kind": "karaoke"}, // unmapped kind
			map[string]any{"src": "fr.vtt"},                    // absent kind
			"not a track",
			map[string]any{"src": "ch.vtt", "kind": "chapters"},
		},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(desc.TextTracks) != 2 {
		t.Fatalf("len(TextTracks) = %d, want 2", len(desc.TextTracks))
	}
	if desc.TextTracks[0].Kind != v1alpha1.TextTrackKindCaptions {
		t.Errorf("TextTracks[0].Kind = %q", desc.TextTracks[0].Kind)
	}
	if desc.TextTracks[1].Kind != v1alpha1.TextTrackKindChapters {
		t.Errorf("TextTracks[1].Kind = %q", desc.TextTracks[1].Kind)
	}
}
