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

import (
	"strings"

	"github.com/nagare-media/playback/pkg/mime"
)

// ContentType identifies the streaming or container format of a single
// playable source.
type ContentType string

const (
	UnknownContentType ContentType = ""
	DASHContentType    ContentType = "dash"
	HESPContentType    ContentType = "hesp"
	HLSContentType     ContentType = "hls"  // Apple native HLS
	HLSXContentType    ContentType = "hlsx" // generic HLS
	MP3ContentType     ContentType = "mp3"
	MP4ContentType     ContentType = "mp4"
)

var (
	mimeToContentType = map[string]ContentType{
		mime.ApplicationDASH_XML:        DASHContentType,
		mime.ApplicationX_MPEGURL:       HLSXContentType,
		mime.ApplicationVndTheoHESPJSON: HESPContentType,
		mime.ApplicationVndAppleMPEGURL: HLSContentType,
		mime.VideoMP4:                   MP4ContentType,
		mime.AudioMPEG:                  MP3ContentType,
	}

	extToContentType = map[string]ContentType{
		".mpd":  DASHContentType,
		".m3u8": HLSXContentType,
		".mp4":  MP4ContentType,
		".mp3":  MP3ContentType,
	}
)

// ResolveContentType resolves the content type of a source. A non-empty type
// hint is matched verbatim against the known MIME types and takes strict
// precedence: an unknown hint yields UnknownContentType without consulting
// the source URL. Only when no hint is given is the trailing extension of src
// matched. The two signals are never combined.
func ResolveContentType(typeHint, src string) ContentType {
	if typeHint != "" {
		return mimeToContentType[typeHint]
	}
	for ext, ct := range extToContentType {
		if strings.HasSuffix(src, ext) {
			return ct
		}
	}
	return UnknownContentType
}
