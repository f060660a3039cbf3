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
	"fmt"
)

// AdErrorCode classifies ad and text track configuration failures.
type AdErrorCode string

const (
	// MissingSSAIIntegration: an ssai object is present without a usable
	// integration field.
	MissingSSAIIntegration AdErrorCode = "MISSING_SSAI_INTEGRATION"
	// UnsupportedSSAIIntegration: the ssai integration is not one of the
	// supported provider identifiers.
	UnsupportedSSAIIntegration AdErrorCode = "UNSUPPORTED_SSAI_INTEGRATION"
	// MissingCSAIIntegration: an ad description lacks an integration field.
	MissingCSAIIntegration AdErrorCode = "MISSING_CSAI_INTEGRATION"
	// UnsupportedCSAIIntegration: an ad description names an integration that
	// is recognized but not implemented, or wholly unknown.
	UnsupportedCSAIIntegration AdErrorCode = "UNSUPPORTED_CSAI_INTEGRATION"
	// FeatureNotEnabled: a supported integration requires a capability that is
	// disabled in this build.
	FeatureNotEnabled AdErrorCode = "FEATURE_NOT_ENABLED"
	// UnsupportedTextTrackKind: a text track names a kind outside the closed
	// enumeration or none at all.
	UnsupportedTextTrackKind AdErrorCode = "UNSUPPORTED_TEXT_TRACK_KIND"
)

// AdError is the typed failure surfaced by the resolver pipeline.
type AdError struct {
	Code    AdErrorCode
	Message string
}

func newAdError(code AdErrorCode, format string, args ...any) *AdError {
	return &AdError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *AdError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *AdError carrying the same code, so callers can test with
// errors.Is(err, &AdError{Code: code}).
func (e *AdError) Is(target error) bool {
	t, ok := target.(*AdError)
	return ok && t.Code == e.Code
}

// CodeOf extracts the AdErrorCode of err, or "" when err carries none.
func CodeOf(err error) AdErrorCode {
	var adErr *AdError
	if errors.As(err, &adErr) {
		return adErr.Code
	}
	return ""
}
