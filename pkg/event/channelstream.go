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

import (
	"context"
	"sync"
)

const DefaultBufferLen = 32

// Stream fans resolution events out to subscribers. Publishing never blocks
// the resolver; delivery happens on a separate goroutine started by Start.
type Stream interface {
	Start(ctx context.Context)
	Pub(e Event)
	Sub() <-chan Event
	Desub(ch <-chan Event)
}

type channelStream struct {
	mtx sync.RWMutex

	recvCh chan Event
	subs   []chan Event
}

func NewStream() Stream {
	return &channelStream{
		recvCh: make(chan Event, DefaultBufferLen),
		subs:   make([]chan Event, 0),
	}
}

func (cs *channelStream) Pub(e Event) {
	cs.recvCh <- e
}

func (cs *channelStream) Sub() <-chan Event {
	cs.mtx.Lock()
	defer cs.mtx.Unlock()
	ch := make(chan Event, DefaultBufferLen)
	cs.subs = append(cs.subs, ch)
	return ch
}

func (cs *channelStream) Desub(ch <-chan Event) {
	cs.mtx.Lock()
	defer cs.mtx.Unlock()

	for i, subCh := range cs.subs {
		if (<-chan Event)(subCh) == ch {
			cs.subs = append(cs.subs[:i], cs.subs[i+1:]...)
			close(subCh)
			return
		}
	}
}

func (cs *channelStream) Start(ctx context.Context) {
	go cs.run(ctx)
}

func (cs *channelStream) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			cs.clean()
			return
		case e := <-cs.recvCh:
			cs.emit(e)
		}
	}
}

func (cs *channelStream) emit(e Event) {
	cs.mtx.RLock()
	defer cs.mtx.RUnlock()
	for _, ch := range cs.subs {
		select {
		case ch <- e:
		default:
			// slow subscriber; drop rather than stall delivery
		}
	}
}

func (cs *channelStream) clean() {
	cs.mtx.Lock()
	defer cs.mtx.Unlock()
	for _, ch := range cs.subs {
		close(ch)
	}
	cs.subs = nil
}
