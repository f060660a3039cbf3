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

package v1alpha1

import (
	"github.com/nagare-media/playback/pkg/media"
)

// SourceDescription is the fully resolved playback configuration handed to a
// playback engine. It is immutable once assembled; a new configuration
// request produces a new SourceDescription.
type SourceDescription struct {
	Sources    []TypedSource          `json:"sources"`
	Poster     string                 `json:"poster,omitempty"`
	Metadata   *MetadataDescription   `json:"metadata,omitempty"`
	Ads        []AdDescription        `json:"ads,omitempty"`
	TextTracks []TextTrackDescription `json:"textTracks,omitempty"`
}

// TypedSource is one playable rendition with a resolved content type and
// optional per-rendition configuration.
type TypedSource struct {
	Src  string            `json:"src"`
	Type media.ContentType `json:"type,omitempty"`

	LiveOffset   *float64       `json:"liveOffset,omitempty"`
	HLSDateRange *bool          `json:"hlsDateRange,omitempty"`
	HLS          map[string]any `json:"hls,omitempty"` // opaque playback configuration passthrough
	TimeServer   string         `json:"timeServer,omitempty"`

	ContentProtection *ContentProtection `json:"contentProtection,omitempty"`
	SSAI              *SSAIConfiguration `json:"ssai,omitempty"`
}

// MetadataDescription is a free form mapping of metadata fields. The reserved
// key "images" is reinterpreted during assembly as an ordered list of
// MetadataImage records; all other keys pass through as opaque values.
type MetadataDescription struct {
	Fields map[string]any  `json:"fields,omitempty"`
	Images []MetadataImage `json:"images,omitempty"`
}

type MetadataImage struct {
	Src    string `json:"src"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

// TextTrackKind classifies a side-loaded text track.
type TextTrackKind string

const (
	TextTrackKindSubtitles    TextTrackKind = "subtitles"
	TextTrackKindCaptions     TextTrackKind = "captions"
	TextTrackKindDescriptions TextTrackKind = "descriptions"
	TextTrackKindChapters     TextTrackKind = "chapters"
	TextTrackKindMetadata     TextTrackKind = "metadata"
)

var textTrackKinds = map[string]TextTrackKind{
	"subtitles":    TextTrackKindSubtitles,
	"captions":     TextTrackKindCaptions,
	"descriptions": TextTrackKindDescriptions,
	"chapters":     TextTrackKindChapters,
	"metadata":     TextTrackKindMetadata,
}

// ParseTextTrackKind maps a raw kind string to the closed TextTrackKind
// enumeration.
func ParseTextTrackKind(s string) (TextTrackKind, bool) {
	k, ok := textTrackKinds[s]
	return k, ok
}

// TextTrackDescription is one side-loaded caption, subtitle or metadata track
// supplied out of band from the media manifest.
type TextTrackDescription struct {
	Src       string        `json:"src"`
	IsDefault bool          `json:"isDefault"`
	Label     string        `json:"label,omitempty"`
	Kind      TextTrackKind `json:"kind"`
}
