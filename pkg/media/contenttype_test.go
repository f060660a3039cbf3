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

package media

import "testing"

func TestResolveContentType(t *testing.T) {
	tests := []struct {
		name     string
		typeHint string
		src      string
		want     ContentType
	}{
		{"dash mime", "application/dash+xml", "", DASHContentType},
		{"generic hls mime", "application/x-mpegurl", "", HLSXContentType},
		{"apple hls mime", "application/vnd.apple.mpegurl", "", HLSContentType},
		{"hesp mime", "application/vnd.theo.hesp+json", "", HESPContentType},
		{"mp4 mime", "video/mp4", "", MP4ContentType},
		{"mp3 mime", "audio/mpeg", "", MP3ContentType},

		// MIME hint takes strict precedence over the extension
		{"mime wins over extension", "application/dash+xml", "https://cdn/x.mp4", DASHContentType},
		{"unknown mime never falls back", "video/x-matroska", "https://cdn/x.mp4", UnknownContentType},
		{"mime matching is case sensitive", "Application/dash+xml", "https://cdn/x.mpd", UnknownContentType},

		// extension fallback
		{"mpd extension", "", "https://cdn/stream/manifest.mpd", DASHContentType},
		{"m3u8 extension", "", "https://cdn/stream/master.m3u8", HLSXContentType},
		{"mp4 extension", "", "movie.mp4", MP4ContentType},
		{"mp3 extension", "", "track.mp3", MP3ContentType},
		{"unknown extension", "", "https://cdn/stream.ism", UnknownContentType},
		{"no hint no extension", "", "", UnknownContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveContentType(tt.typeHint, tt.src); got != tt.want {
				t.Errorf("ResolveContentType(%q, %q) = %q, want %q", tt.typeHint, tt.src, got, tt.want)
			}
		})
	}
}
