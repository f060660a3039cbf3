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

	"go.uber.org/zap"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/drm"
	"github.com/nagare-media/playback/pkg/dynamic"
)

var (
	ErrNotAMapping = errors.New("source description must be a mapping")
	ErrNoSources   = errors.New("source description contains no usable sources")
)

// Resolver translates raw, untyped source descriptions into typed
// SourceDescriptions. It holds no mutable state across calls; concurrent use
// is safe.
type Resolver struct {
	features v1alpha1.Features
	drm      drm.Resolver
	log      *zap.SugaredLogger
}

func NewResolver(features v1alpha1.Features, drmResolver drm.Resolver, log *zap.SugaredLogger) *Resolver {
	if drmResolver == nil {
		drmResolver = drm.NewResolver()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Resolver{
		features: features,
		drm:      drmResolver,
		log:      log,
	}
}

// Resolve assembles a SourceDescription from a raw configuration value.
//
// Per-entry policy is deliberately asymmetric: structurally malformed source
// and text track entries are dropped with a diagnostic log, while SSAI and
// DRM validation failures inside a source and every ad description failure
// abort the whole call. No partial SourceDescription ever escapes.
func (r *Resolver) Resolve(raw any) (*v1alpha1.SourceDescription, error) {
	root, ok := dynamic.Sanitize(raw).(map[string]any)
	if !ok {
		return nil, ErrNotAMapping
	}

	sources, err := r.resolveSources(root)
	if err != nil {
		return nil, err
	}

	desc := &v1alpha1.SourceDescription{Sources: sources}
	desc.Poster, _ = dynamic.String(root, "poster")

	if md, ok := dynamic.Map(root, "metadata"); ok {
		desc.Metadata = r.resolveMetadata(md)
	}

	if rawAds, ok := dynamic.Seq(root, "ads"); ok {
		ads := make([]v1alpha1.AdDescription, 0, len(rawAds))
		for _, e := range rawAds {
			node, _ := e.(map[string]any)
			ad, err := r.resolveAd(node)
			if err != nil {
				return nil, err
			}
			ads = append(ads, *ad)
		}
		desc.Ads = ads
	}

	if rawTracks, ok := dynamic.Seq(root, "textTracks"); ok {
		desc.TextTracks = r.resolveTextTracks(rawTracks)
	}

	return desc, nil
}

// resolveSources accepts the sources field as a single mapping or as an array
// of mappings and builds one TypedSource per usable entry.
func (r *Resolver) resolveSources(root map[string]any) ([]v1alpha1.TypedSource, error) {
	var rawSources []any
	switch v := root["sources"].(type) {
	case map[string]any:
		rawSources = []any{v}
	case []any:
		rawSources = v
	default:
		return nil, ErrNoSources
	}

	sources := make([]v1alpha1.TypedSource, 0, len(rawSources))
	for i, e := range rawSources {
		node, ok := e.(map[string]any)
		if !ok {
			r.log.Warnw("skipping malformed source entry", "index", i)
			continue
		}
		src, err := r.buildTypedSource(node)
		if err != nil {
			// SSAI and DRM validation failures are fatal to the whole call
			return nil, err
		}
		sources = append(sources, *src)
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	return sources, nil
}

func (r *Resolver) resolveMetadata(node map[string]any) *v1alpha1.MetadataDescription {
	md := &v1alpha1.MetadataDescription{}
	for k, v := range node {
		if k == "images" {
			md.Images = r.resolveMetadataImages(v)
			continue
		}
		if md.Fields == nil {
			md.Fields = make(map[string]any, len(node))
		}
		md.Fields[k] = v
	}
	return md
}

func (r *Resolver) resolveMetadataImages(v any) []v1alpha1.MetadataImage {
	seq, ok := v.([]any)
	if !ok {
		r.log.Warnw("metadata images is not an array; ignoring")
		return nil
	}

	images := make([]v1alpha1.MetadataImage, 0, len(seq))
	for i, e := range seq {
		node, ok := e.(map[string]any)
		if !ok {
			r.log.Warnw("skipping malformed metadata image", "index", i)
			continue
		}

		img := v1alpha1.MetadataImage{}
		img.Src, _ = dynamic.String(node, "src")
		if _, present := node["width"]; present {
			if w, ok := dynamic.Int(node, "width"); ok {
				img.Width = &w
			} else {
				r.log.Warnw("metadata image width is not an integer", "index", i)
			}
		}
		if _, present := node["height"]; present {
			if h, ok := dynamic.Int(node, "height"); ok {
				img.Height = &h
			} else {
				r.log.Warnw("metadata image height is not an integer", "index", i)
			}
		}
		images = append(images, img)
	}
	return images
}

func (r *Resolver) resolveTextTracks(rawTracks []any) []v1alpha1.TextTrackDescription {
	tracks := make([]v1alpha1.TextTrackDescription, 0, len(rawTracks))
	for i, e := range rawTracks {
		node, ok := e.(map[string]any)
		if !ok {
			r.log.Warnw("skipping malformed text track entry", "index", i)
			continue
		}
		track, err := r.resolveTextTrack(node)
		if err != nil {
			r.log.Warnw("skipping text track entry", "index", i, "error", err)
			continue
		}
		tracks = append(tracks, *track)
	}
	return tracks
}

func (r *Resolver) resolveTextTrack(node map[string]any) (*v1alpha1.TextTrackDescription, error) {
	track := &v1alpha1.TextTrackDescription{}
	track.Src, _ = dynamic.String(node, "src")
	track.IsDefault, _ = dynamic.Bool(node, "default")
	track.Label, _ = dynamic.String(node, "label")

	rawKind, _ := dynamic.String(node, "kind")
	kind, ok := v1alpha1.ParseTextTrackKind(rawKind)
	if !ok {
		return nil, newAdError(UnsupportedTextTrackKind, "unsupported text track kind %q", rawKind)
	}
	track.Kind = kind

	return track, nil
}
