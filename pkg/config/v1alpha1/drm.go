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

// ContentProtection carries the DRM configuration of a single source. These
// are passive shapes only: license acquisition is performed by the playback
// engine, not by this repository.
type ContentProtection struct {
	Integration           string         `mapstructure:"integration,omitempty" json:"integration,omitempty"`
	IntegrationParameters map[string]any `mapstructure:"integrationParameters,omitempty" json:"integrationParameters,omitempty"`

	Widevine  *KeySystemConfiguration `mapstructure:"widevine,omitempty" json:"widevine,omitempty"`
	PlayReady *KeySystemConfiguration `mapstructure:"playready,omitempty" json:"playready,omitempty"`
	FairPlay  *FairPlayConfiguration  `mapstructure:"fairplay,omitempty" json:"fairplay,omitempty"`
	ClearKey  *ClearKeyConfiguration  `mapstructure:"clearkey,omitempty" json:"clearkey,omitempty"`
}

type KeySystemConfiguration struct {
	LicenseAcquisitionURL string            `mapstructure:"licenseAcquisitionURL" json:"licenseAcquisitionURL"`
	Headers               map[string]string `mapstructure:"headers,omitempty" json:"headers,omitempty"`
	UseCredentials        bool              `mapstructure:"useCredentials,omitempty" json:"useCredentials,omitempty"`
	QueryParameters       map[string]string `mapstructure:"queryParameters,omitempty" json:"queryParameters,omitempty"`
}

type FairPlayConfiguration struct {
	KeySystemConfiguration `mapstructure:",squash"`

	CertificateURL string `mapstructure:"certificateURL,omitempty" json:"certificateURL,omitempty"`
}

type ClearKeyConfiguration struct {
	Keys []ClearKeyEntry `mapstructure:"keys" json:"keys"`
}

type ClearKeyEntry struct {
	KeyID string `mapstructure:"id" json:"id"`
	Value string `mapstructure:"value" json:"value"`
}
