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

package mp4

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	mp4ff "github.com/edgeware/mp4ff/mp4"
)

var ErrNotISOBMFF = errors.New("not an ISO BMFF file")

// Info summarizes a probed MP4 source for diagnostics.
type Info struct {
	MajorBrand       string
	CompatibleBrands []string
	Fragmented       bool
	Duration         time.Duration
	Tracks           []TrackInfo
}

type TrackInfo struct {
	ID          uint32
	HandlerType string
	Timescale   uint32
}

func ProbeFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Probe(f)
}

// Probe performs quick ISO BMFF checks on r and extracts brand, duration and
// track summaries. It requires ftyp and moov boxes; fragments without a
// header are rejected.
func Probe(r io.Reader) (*Info, error) {
	f, err := mp4ff.DecodeFile(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp4: %w", err)
	}
	if f.Ftyp == nil || f.Moov == nil {
		return nil, ErrNotISOBMFF
	}

	info := &Info{
		MajorBrand:       f.Ftyp.MajorBrand(),
		CompatibleBrands: f.Ftyp.CompatibleBrands(),
		Fragmented:       f.IsFragmented(),
	}

	if mvhd := f.Moov.Mvhd; mvhd != nil && mvhd.Timescale > 0 {
		info.Duration = time.Duration(float64(mvhd.Duration) / float64(mvhd.Timescale) * float64(time.Second))
	}

	for _, trak := range f.Moov.Traks {
		ti := TrackInfo{}
		if trak.Tkhd != nil {
			ti.ID = trak.Tkhd.TrackID
		}
		if mdia := trak.Mdia; mdia != nil {
			if mdia.Hdlr != nil {
				ti.HandlerType = mdia.Hdlr.HandlerType
			}
			if mdia.Mdhd != nil {
				ti.Timescale = mdia.Mdhd.Timescale
			}
		}
		info.Tracks = append(info.Tracks, ti)
	}

	return info, nil
}
