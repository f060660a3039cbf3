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

package v1alpha1

// Integration identifiers as they appear in raw source descriptions.
const (
	SSAIIntegrationGoogleDAI = "google-dai"
	SSAIIntegrationYospace   = "yospace"

	CSAIIntegrationGoogleIMA = "google-ima"
	CSAIIntegrationTHEO      = "theo"
	CSAIIntegrationFreeWheel = "freewheel"
	CSAIIntegrationSpotX     = "spotx"
)

// GoogleDAIAvailabilityTypeVOD selects the VOD stitching mode of Google DAI;
// any other value of availabilityType selects the live mode.
const GoogleDAIAvailabilityTypeVOD = "vod"

// SSAIConfiguration describes one server-side ad insertion setup for a single
// source. Exactly one variant is non-nil.
type SSAIConfiguration struct {
	GoogleDAIVOD  *GoogleDAIVodConfiguration  `json:"googleDaiVod,omitempty"`
	GoogleDAILive *GoogleDAILiveConfiguration `json:"googleDaiLive,omitempty"`
	Yospace       *YospaceConfiguration       `json:"yospace,omitempty"`
}

type GoogleDAIVodConfiguration struct {
	ContentSourceID string `mapstructure:"contentSourceID" json:"contentSourceID"`
	VideoID         string `mapstructure:"videoID" json:"videoID"`

	APIKey                  string            `mapstructure:"apiKey,omitempty" json:"apiKey,omitempty"`
	AuthToken               string            `mapstructure:"authToken,omitempty" json:"authToken,omitempty"`
	StreamActivityMonitorID string            `mapstructure:"streamActivityMonitorID,omitempty" json:"streamActivityMonitorID,omitempty"`
	AdTagParameters         map[string]string `mapstructure:"adTagParameters,omitempty" json:"adTagParameters,omitempty"`
}

type GoogleDAILiveConfiguration struct {
	AssetKey string `mapstructure:"assetKey" json:"assetKey"`

	APIKey                  string            `mapstructure:"apiKey,omitempty" json:"apiKey,omitempty"`
	AuthToken               string            `mapstructure:"authToken,omitempty" json:"authToken,omitempty"`
	StreamActivityMonitorID string            `mapstructure:"streamActivityMonitorID,omitempty" json:"streamActivityMonitorID,omitempty"`
	AdTagParameters         map[string]string `mapstructure:"adTagParameters,omitempty" json:"adTagParameters,omitempty"`
}

type YospaceConfiguration struct {
	StreamType string `mapstructure:"streamType,omitempty" json:"streamType,omitempty"`
}

// AdDescription describes one client-side inserted ad. Google IMA is the only
// constructible variant; other integration kinds are recognized by the
// resolver but rejected.
type AdDescription struct {
	GoogleIMA *GoogleIMAAdDescription `json:"googleIma,omitempty"`
}

type GoogleIMAAdDescription struct {
	Src        string `json:"src"`
	TimeOffset string `json:"timeOffset,omitempty"`
}
