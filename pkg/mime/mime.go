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

package mime

const (
	ApplicationDASH_XML        = "application/dash+xml"
	ApplicationX_MPEGURL       = "application/x-mpegurl"
	ApplicationVndAppleMPEGURL = "application/vnd.apple.mpegurl"
	ApplicationVndTheoHESPJSON = "application/vnd.theo.hesp+json"
	AudioMPEG                  = "audio/mpeg"
	VideoMP4                   = "video/mp4"
)

var extToType = map[string]string{
	".m3u8": ApplicationX_MPEGURL,
	".mp3":  AudioMPEG,
	".mp4":  VideoMP4,
	".mpd":  ApplicationDASH_XML,
}

// TypeExt returns the MIME type associated with the given file extension.
// Matching is exact; unknown extensions yield "".
func TypeExt(ext string) string {
	return extToType[ext]
}
