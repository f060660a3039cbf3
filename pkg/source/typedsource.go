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
	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/dynamic"
	"github.com/nagare-media/playback/pkg/media"
)

// buildTypedSource turns one sanitized source mapping into a TypedSource. The
// steps are order sensitive: the SSAI block is validated before any field is
// committed, and a Google DAI integration overrides an unresolved content
// type to DASH (stitched streams assume adaptive DASH delivery absent
// contrary evidence).
func (r *Resolver) buildTypedSource(node map[string]any) (*v1alpha1.TypedSource, error) {
	src, _ := dynamic.String(node, "src")
	typeHint, _ := dynamic.String(node, "type")
	ct := media.ResolveContentType(typeHint, src)

	var ssai *v1alpha1.SSAIConfiguration
	if ssaiNode, ok := dynamic.Map(node, "ssai"); ok {
		integration, ok := dynamic.String(ssaiNode, "integration")
		if !ok || integration == "" {
			return nil, newAdError(MissingSSAIIntegration, "ssai object has no integration")
		}

		var err error
		ssai, err = r.resolveSSAI(integration, ssaiNode)
		if err != nil {
			return nil, err
		}
		if ct == media.UnknownContentType && (ssai.GoogleDAIVOD != nil || ssai.GoogleDAILive != nil) {
			ct = media.DASHContentType
		}
	}

	ts := &v1alpha1.TypedSource{
		Src:  src,
		Type: ct,
		SSAI: ssai,
	}

	if v, ok := dynamic.Float(node, "liveOffset"); ok {
		ts.LiveOffset = &v
	}
	if v, ok := dynamic.Bool(node, "hlsDateRange"); ok {
		ts.HLSDateRange = &v
	}
	if m, ok := dynamic.Map(node, "hls"); ok {
		ts.HLS = m
	}
	if v, ok := dynamic.String(node, "timeServer"); ok {
		ts.TimeServer = v
	}

	if m, ok := dynamic.Map(node, "contentProtection"); ok {
		cp, err := r.drm.Resolve(m)
		if err != nil {
			return nil, err
		}
		if cp != nil {
			ts.ContentProtection = cp
		}
	}

	return ts, nil
}
