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
	"testing"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/media"
)

func TestResolveSSAI_GoogleDAIModes(t *testing.T) {
	r := newTestResolver()

	t.Run("vod availability type", func(t *testing.T) {
		cfg, err := r.resolveSSAI("google-dai", map[string]any{
			"integration":      "google-dai",
			"availabilityType": "vod",
			"contentSourceID":  "2528370",
			"videoID":          "tears-of-steel",
			"apiKey":           "k",
		})
		if err != nil {
			t.Fatalf("resolveSSAI() error = %v", err)
		}
		if cfg.GoogleDAIVOD == nil || cfg.GoogleDAILive != nil || cfg.Yospace != nil {
			t.Fatalf("wrong variant: %+v", cfg)
		}
		vod := cfg.GoogleDAIVOD
		if vod.ContentSourceID != "2528370" || vod.VideoID != "tears-of-steel" || vod.APIKey != "k" {
			t.Errorf("GoogleDAIVOD = %+v", vod)
		}
	})

	liveCases := []struct {
		name string
		node map[string]any
	}{
		{"absent availability type", map[string]any{"integration": "google-dai", "assetKey": "sN_IYUG8STe1ZzhIIE_ksA"}},
		{"other availability type", map[string]any{"integration": "google-dai", "availabilityType": "live", "assetKey": "sN_IYUG8STe1ZzhIIE_ksA"}},
		{"availability type matching is case sensitive", map[string]any{"integration": "google-dai", "availabilityType": "VOD", "assetKey": "sN_IYUG8STe1ZzhIIE_ksA"}},
	}
	for _, tt := range liveCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := r.resolveSSAI("google-dai", tt.node)
			if err != nil {
				t.Fatalf("resolveSSAI() error = %v", err)
			}
			if cfg.GoogleDAILive == nil || cfg.GoogleDAIVOD != nil {
				t.Fatalf("wrong variant: %+v", cfg)
			}
			if cfg.GoogleDAILive.AssetKey != "sN_IYUG8STe1ZzhIIE_ksA" {
				t.Errorf("AssetKey = %q", cfg.GoogleDAILive.AssetKey)
			}
		})
	}
}

func TestResolveSSAI_Yospace(t *testing.T) {
	r := newTestResolver()

	cfg, err := r.resolveSSAI("yospace", map[string]any{
		"integration": "yospace",
		"streamType":  "livepause",
	})
	if err != nil {
		t.Fatalf("resolveSSAI() error = %v", err)
	}
	if cfg.Yospace == nil || cfg.GoogleDAIVOD != nil || cfg.GoogleDAILive != nil {
		t.Fatalf("wrong variant: %+v", cfg)
	}
	if cfg.Yospace.StreamType != "livepause" {
		t.Errorf("StreamType = %q", cfg.Yospace.StreamType)
	}
}

func TestResolveSSAI_FeatureGate(t *testing.T) {
	r := NewResolver(v1alpha1.Features{GoogleDAI: false, GoogleIMA: true}, nil, nil)

	_, err := r.resolveSSAI("google-dai", map[string]any{"integration": "google-dai"})
	if got := CodeOf(err); got != FeatureNotEnabled {
		t.Errorf("CodeOf(err) = %q, want %q", got, FeatureNotEnabled)
	}
}

func TestResolveSSAI_Unsupported(t *testing.T) {
	r := newTestResolver()

	for _, integration := range []string{"imagine", "GOOGLE-DAI", "uplynk"} {
		if _, err := r.resolveSSAI(integration, map[string]any{"integration": integration}); CodeOf(err) != UnsupportedSSAIIntegration {
			t.Errorf("resolveSSAI(%q) error = %v, want %s", integration, err, UnsupportedSSAIIntegration)
		}
	}
}

func TestBuildTypedSource_SSAIInteraction(t *testing.T) {
	r := newTestResolver()

	t.Run("missing integration", func(t *testing.T) {
		_, err := r.buildTypedSource(map[string]any{
			"src":  "a.mp4",
			"ssai": map[string]any{"availabilityType": "vod"},
		})
		if got := CodeOf(err); got != MissingSSAIIntegration {
			t.Errorf("CodeOf(err) = %q, want %q", got, MissingSSAIIntegration)
		}
	})

	t.Run("empty integration", func(t *testing.T) {
		_, err := r.buildTypedSource(map[string]any{
			"src":  "a.mp4",
			"ssai": map[string]any{"integration": ""},
		})
		if got := CodeOf(err); got != MissingSSAIIntegration {
			t.Errorf("CodeOf(err) = %q, want %q", got, MissingSSAIIntegration)
		}
	})

	t.Run("google dai defaults unresolved type to DASH", func(t *testing.T) {
		ts, err := r.buildTypedSource(map[string]any{
			"src":  "https://dai.google.com/stream", // no recognizable extension
			"ssai": map[string]any{"integration": "google-dai", "assetKey": "k"},
		})
		if err != nil {
			t.Fatalf("buildTypedSource() error = %v", err)
		}
		if ts.Type != media.DASHContentType {
			t.Errorf("Type = %q, want %q", ts.Type, media.DASHContentType)
		}
	})

	t.Run("google dai never overrides a resolved type", func(t *testing.T) {
		ts, err := r.buildTypedSource(map[string]any{
			"src":  "master.m3u8",
			"ssai": map[string]any{"integration": "google-dai", "assetKey": "k"},
		})
		if err != nil {
			t.Fatalf("buildTypedSource() error = %v", err)
		}
		if ts.Type != media.HLSXContentType {
			t.Errorf("Type = %q, want %q", ts.Type, media.HLSXContentType)
		}
	})

	t.Run("yospace does not default the type", func(t *testing.T) {
		ts, err := r.buildTypedSource(map[string]any{
			"src":  "https://cdn/stream",
			"ssai": map[string]any{"integration": "yospace"},
		})
		if err != nil {
			t.Fatalf("buildTypedSource() error = %v", err)
		}
		if ts.Type != media.UnknownContentType {
			t.Errorf("Type = %q, want unset", ts.Type)
		}
	})
}

func TestBuildTypedSource_OptionalFields(t *testing.T) {
	r := newTestResolver()

	ts, err := r.buildTypedSource(map[string]any{
		"src":          "live.m3u8",
		"liveOffset":   30.0,
		"hlsDateRange": true,
		"hls":          map[string]any{"preferredBufferSize": 12},
		"timeServer":   "https://time.akamai.com",
	})
	if err != nil {
		t.Fatalf("buildTypedSource() error = %v", err)
	}

	if ts.LiveOffset == nil || *ts.LiveOffset != 30.0 {
		t.Errorf("LiveOffset = %v", ts.LiveOffset)
	}
	if ts.HLSDateRange == nil || !*ts.HLSDateRange {
		t.Errorf("HLSDateRange = %v", ts.HLSDateRange)
	}
	if ts.HLS == nil {
		t.Error("HLS passthrough missing")
	}
	if ts.TimeServer != "https://time.akamai.com" {
		t.Errorf("TimeServer = %q", ts.TimeServer)
	}
}

func TestBuildTypedSource_ContentProtection(t *testing.T) {
	r := newTestResolver()

	ts, err := r.buildTypedSource(map[string]any{
		"src":  "protected.mpd",
		"type": "application/dash+xml",
		"contentProtection": map[string]any{
			"widevine": map[string]any{
				"licenseAcquisitionURL": "https://lic.example.com/wv",
			},
		},
	})
	if err != nil {
		t.Fatalf("buildTypedSource() error = %v", err)
	}
	if ts.ContentProtection == nil || ts.ContentProtection.Widevine == nil {
		t.Fatalf("ContentProtection = %+v", ts.ContentProtection)
	}
	if got := ts.ContentProtection.Widevine.LicenseAcquisitionURL; got != "https://lic.example.com/wv" {
		t.Errorf("LicenseAcquisitionURL = %q", got)
	}
}

func TestBuildTypedSource_MissingSrcTolerated(t *testing.T) {
	r := newTestResolver()

	ts, err := r.buildTypedSource(map[string]any{"type": "video/mp4"})
	if err != nil {
		t.Fatalf("buildTypedSource() error = %v", err)
	}
	if ts.Src != "" {
		t.Errorf("Src = %q, want empty", ts.Src)
	}
	if ts.Type != media.MP4ContentType {
		t.Errorf("Type = %q", ts.Type)
	}
}
