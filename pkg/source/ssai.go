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
	"fmt"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/dynamic"
)

// resolveSSAI dispatches on the (already non-empty) integration identifier
// and builds exactly one SSAIConfiguration variant. Provider fields of the
// sub-object are decoded structurally into the chosen shape; unknown fields
// are ignored.
func (r *Resolver) resolveSSAI(integration string, node map[string]any) (*v1alpha1.SSAIConfiguration, error) {
	switch integration {
	case v1alpha1.SSAIIntegrationGoogleDAI:
		if !r.features.GoogleDAI {
			return nil, newAdError(FeatureNotEnabled, "Google DAI support is not enabled in this build")
		}

		availabilityType, _ := dynamic.String(node, "availabilityType")
		if availabilityType == v1alpha1.GoogleDAIAvailabilityTypeVOD {
			cfg := &v1alpha1.GoogleDAIVodConfiguration{}
			if err := dynamic.Decode(node, cfg); err != nil {
				return nil, fmt.Errorf("ssai google-dai: %w", err)
			}
			return &v1alpha1.SSAIConfiguration{GoogleDAIVOD: cfg}, nil
		}

		cfg := &v1alpha1.GoogleDAILiveConfiguration{}
		if err := dynamic.Decode(node, cfg); err != nil {
			return nil, fmt.Errorf("ssai google-dai: %w", err)
		}
		return &v1alpha1.SSAIConfiguration{GoogleDAILive: cfg}, nil

	case v1alpha1.SSAIIntegrationYospace:
		cfg := &v1alpha1.YospaceConfiguration{}
		if err := dynamic.Decode(node, cfg); err != nil {
			return nil, fmt.Errorf("ssai yospace: %w", err)
		}
		return &v1alpha1.SSAIConfiguration{Yospace: cfg}, nil

	default:
		return nil, newAdError(UnsupportedSSAIIntegration, "unsupported SSAI integration %q", integration)
	}
}
