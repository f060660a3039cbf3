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

package dynamic

import (
	"reflect"

	"github.com/spf13/cast"
)

// Sanitize rewrites an arbitrarily nested configuration value into the native
// vocabulary map[string]any / []any / scalar. Container types produced by
// foreign decoders (e.g. map[any]any from YAML or typed maps and slices from
// host bridges) are rebuilt as fresh native containers; scalars pass through
// unchanged. Sanitize never fails and never aliases the input.
func Sanitize(node any) any {
	switch n := node.(type) {
	case nil:
		return nil

	case map[string]any:
		m := make(map[string]any, len(n))
		for k, v := range n {
			m[k] = Sanitize(v)
		}
		return m

	case map[any]any:
		m := make(map[string]any, len(n))
		for k, v := range n {
			m[cast.ToString(k)] = Sanitize(v)
		}
		return m

	case []any:
		s := make([]any, len(n))
		for i, v := range n {
			s[i] = Sanitize(v)
		}
		return s
	}

	// fall back to reflection for remaining foreign container kinds
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[cast.ToString(iter.Key().Interface())] = Sanitize(iter.Value().Interface())
		}
		return m

	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s[i] = Sanitize(rv.Index(i).Interface())
		}
		return s
	}

	return node
}
