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

package http

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/nagare-media/playback/pkg/config/v1alpha1"
)

// Allowlist restricts the source URLs the service resolves. An empty
// allowlist permits everything.
type Allowlist struct {
	patterns []glob.Glob
}

func NewAllowlist(patterns []string) (*Allowlist, error) {
	a := &Allowlist{patterns: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("allowlist pattern %q: %w", p, err)
		}
		a.patterns = append(a.patterns, g)
	}
	return a, nil
}

func (a *Allowlist) Allows(src string) bool {
	if len(a.patterns) == 0 {
		return true
	}
	for _, g := range a.patterns {
		if g.Match(src) {
			return true
		}
	}
	return false
}

// Check verifies every source and text track URL of desc against the
// allowlist and reports the first rejected URL.
func (a *Allowlist) Check(desc *v1alpha1.SourceDescription) error {
	if len(a.patterns) == 0 {
		return nil
	}
	for _, s := range desc.Sources {
		if !a.Allows(s.Src) {
			return fmt.Errorf("source URL %q is not allowed", s.Src)
		}
	}
	for _, t := range desc.TextTracks {
		if !a.Allows(t.Src) {
			return fmt.Errorf("text track URL %q is not allowed", t.Src)
		}
	}
	return nil
}
