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

package event

import "time"

type Event interface {
	EventTime() time.Time
}

type baseEvent struct {
	Time time.Time `json:"time"`
}

func (e baseEvent) EventTime() time.Time { return e.Time }

// SourceResolvedEvent is published after a source description was
// successfully resolved.
type SourceResolvedEvent struct {
	baseEvent

	RequestID   string `json:"requestID,omitempty"`
	SourceCount int    `json:"sourceCount"`
	AdCount     int    `json:"adCount"`
	TrackCount  int    `json:"trackCount"`
}

// ResolveFailedEvent is published when resolution aborts.
type ResolveFailedEvent struct {
	baseEvent

	RequestID string `json:"requestID,omitempty"`
	Code      string `json:"code,omitempty"`
	Error     string `json:"error"`
}

func NewSourceResolvedEvent(requestID string, sources, ads, tracks int) SourceResolvedEvent {
	return SourceResolvedEvent{
		baseEvent:   baseEvent{Time: time.Now()},
		RequestID:   requestID,
		SourceCount: sources,
		AdCount:     ads,
		TrackCount:  tracks,
	}
}

func NewResolveFailedEvent(requestID, code, errMsg string) ResolveFailedEvent {
	return ResolveFailedEvent{
		baseEvent: baseEvent{Time: time.Now()},
		RequestID: requestID,
		Code:      code,
		Error:     errMsg,
	}
}
