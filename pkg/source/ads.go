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
)

// resolveAd builds one client-side ad description. Google IMA is the only
// implemented integration; the remaining named kinds are recognized but
// always rejected, as are wholly unknown identifiers.
func (r *Resolver) resolveAd(node map[string]any) (*v1alpha1.AdDescription, error) {
	integration, ok := dynamic.String(node, "integration")
	if !ok || integration == "" {
		return nil, newAdError(MissingCSAIIntegration, "ad description has no integration")
	}

	switch integration {
	case v1alpha1.CSAIIntegrationGoogleIMA:
		if !r.features.GoogleIMA {
			return nil, newAdError(FeatureNotEnabled, "Google IMA support is not enabled in this build")
		}

		ima := &v1alpha1.GoogleIMAAdDescription{}

		// the ad source is accepted as a bare URL string or as an object
		// carrying a src field
		switch s := node["sources"].(type) {
		case string:
			ima.Src = s
		case map[string]any:
			ima.Src, _ = dynamic.String(s, "src")
		}

		ima.TimeOffset, _ = dynamic.String(node, "timeOffset")
		return &v1alpha1.AdDescription{GoogleIMA: ima}, nil

	case v1alpha1.CSAIIntegrationTHEO,
		v1alpha1.CSAIIntegrationFreeWheel,
		v1alpha1.CSAIIntegrationSpotX:
		return nil, newAdError(UnsupportedCSAIIntegration, "ad integration %q is recognized but not supported", integration)

	default:
		return nil, newAdError(UnsupportedCSAIIntegration, "unknown ad integration %q", integration)
	}
}
