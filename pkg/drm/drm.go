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

package drm

import (
	"fmt"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/dynamic"
)

// Resolver turns the raw contentProtection sub-object of a source into a
// typed ContentProtection. License acquisition is not performed here; the
// resolved configuration is handed to the playback engine as is.
type Resolver interface {
	Resolve(node map[string]any) (*v1alpha1.ContentProtection, error)
}

func NewResolver() Resolver {
	return &resolver{}
}

type resolver struct{}

func (r *resolver) Resolve(node map[string]any) (*v1alpha1.ContentProtection, error) {
	if len(node) == 0 {
		return nil, nil
	}

	cp := &v1alpha1.ContentProtection{}
	if err := dynamic.Decode(node, cp); err != nil {
		return nil, fmt.Errorf("contentProtection: %w", err)
	}
	return cp, nil
}
