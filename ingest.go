// ingest.go
package drmeter

import (
	"github.com/llehouerou/go-drmeter/internal/hist"
	"github.com/llehouerou/go-drmeter/internal/pcm"
)

// addFrames runs the shared ingestion loop over a sample view. It is the
// generic core behind the typed AddFrames entry points: it walks the view,
// splitting it at every window boundary, and closes each window it fills.
func (m *Meter) addFrames(src pcm.Samples) error {
	if m.Finalized() {
		return ErrFinalized
	}
	if src.Frames() == 0 {
		return nil
	}

	for src.Frames() > 0 {
		remaining := m.neededFrames - m.block.ConsumedFrames()
		if src.Frames() >= remaining {
			head, tail := src.SplitAt(remaining)
			m.block.Process(head)
			m.finalizeBlock()
			src = tail
		} else {
			m.block.Process(src)
			break
		}
	}

	return nil
}

// finalizeBlock folds the open block into the histograms and resets it.
// The RMS bin rounds while the peak bin truncates; the DR procedure
// specifies both mappings and they are intentionally not the same.
func (m *Meter) finalizeBlock() {
	peak, rms := m.block.Finish()
	for ch := 0; ch < int(m.channels); ch++ {
		m.rms.Add(ch, hist.RMSBin(rms[ch]))
		m.peaks.Add(ch, hist.PeakBin(peak[ch]))
	}
	m.blockCount++
	m.block.Reset()
}

// AddFramesInt16 adds interleaved 16-bit frames to be processed.
func (m *Meter) AddFramesInt16(frames []int16) error {
	src, err := pcm.NewInterleaved(frames, int(m.channels))
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}

// AddFramesInt32 adds interleaved 32-bit frames to be processed.
func (m *Meter) AddFramesInt32(frames []int32) error {
	src, err := pcm.NewInterleaved(frames, int(m.channels))
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}

// AddFramesFloat32 adds interleaved 32-bit float frames to be processed.
func (m *Meter) AddFramesFloat32(frames []float32) error {
	src, err := pcm.NewInterleaved(frames, int(m.channels))
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}

// AddFramesFloat64 adds interleaved 64-bit float frames to be processed.
func (m *Meter) AddFramesFloat64(frames []float64) error {
	src, err := pcm.NewInterleaved(frames, int(m.channels))
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}

// AddFramesPlanarInt16 adds planar 16-bit frames to be processed.
func (m *Meter) AddFramesPlanarInt16(frames [][]int16) error {
	src, err := pcm.NewPlanar(frames)
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}

// AddFramesPlanarInt32 adds planar 32-bit frames to be processed.
func (m *Meter) AddFramesPlanarInt32(frames [][]int32) error {
	src, err := pcm.NewPlanar(frames)
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}

// AddFramesPlanarFloat32 adds planar 32-bit float frames to be processed.
func (m *Meter) AddFramesPlanarFloat32(frames [][]float32) error {
	src, err := pcm.NewPlanar(frames)
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}

// AddFramesPlanarFloat64 adds planar 64-bit float frames to be processed.
func (m *Meter) AddFramesPlanarFloat64(frames [][]float64) error {
	src, err := pcm.NewPlanar(frames)
	if err != nil {
		return ErrNoMem
	}
	return m.addFrames(src)
}
