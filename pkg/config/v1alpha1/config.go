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

import (
	"time"

	"github.com/inhies/go-bytesize"
)

// Config is the service configuration of the playback resolver.
type Config struct {
	Server   Server   `mapstructure:"server,omitempty"`
	Features Features `mapstructure:"features,omitempty"`
}

// Features are the build capability toggles gating the ad integrations. They
// are read-only for the process lifetime.
type Features struct {
	GoogleDAI bool `mapstructure:"googleDAI,omitempty"`
	GoogleIMA bool `mapstructure:"googleIMA,omitempty"`
}

type Server struct {
	Name    string `mapstructure:"name"`
	Network string `mapstructure:"network,omitempty"`
	Address string `mapstructure:"address,omitempty"`

	HTTP *HTTPServer `mapstructure:"http,omitempty"`
}

type HTTPServer struct {
	IdleTimeout time.Duration     `mapstructure:"idleTimeout,omitempty"`
	MaxBodySize bytesize.ByteSize `mapstructure:"maxBodySize,omitempty"`

	// AllowedSources restricts the src URLs the service accepts. Each entry is
	// a glob pattern; an empty list allows everything.
	AllowedSources []string `mapstructure:"allowedSources,omitempty"`

	Auth *Auth `mapstructure:"auth,omitempty"`
	CORS *CORS `mapstructure:"cors,omitempty"`
}

type Auth struct {
	Basic *BasicAuth `mapstructure:"basic,omitempty"`
}

type BasicAuth struct {
	Users []User `mapstructure:"users"`
}

type User struct {
	Name     string `mapstructure:"name"`
	Password string `mapstructure:"password"`
}

type CORS struct {
	AllowOrigins     string `mapstructure:"allowOrigins,omitempty"`
	AllowMethods     string `mapstructure:"allowMethods,omitempty"`
	AllowHeaders     string `mapstructure:"allowHeaders,omitempty"`
	AllowCredentials bool   `mapstructure:"allowCredentials,omitempty"`
	ExposeHeaders    string `mapstructure:"exposeHeaders,omitempty"`
	MaxAge           int    `mapstructure:"maxAge,omitempty"`
}
