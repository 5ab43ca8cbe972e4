// Package block accumulates per-channel peak and energy over one
// measurement window.
//
// A Block knows nothing about the window length; the caller slices its
// input at window boundaries and must never feed more frames than the
// window has left.
package block

import (
	"math"

	"github.com/llehouerou/go-drmeter/internal/pcm"
)

// Block is the running state of one measurement window: per-channel sample
// peak, per-channel energy sum and the number of frames consumed so far.
type Block struct {
	channels       int
	consumedFrames int
	samplePeak     []float64 // max |normalized sample| per channel
	sum2           []float64 // sum of squared normalized samples per channel
}

// New creates an empty block for the given channel count.
func New(channels int) *Block {
	if channels <= 0 {
		panic("block: channel count must be positive")
	}
	return &Block{
		channels:   channels,
		samplePeak: make([]float64, channels),
		sum2:       make([]float64, channels),
	}
}

// ConsumedFrames returns the number of frames fed into the block since the
// last reset, for comparison against the window length.
func (b *Block) ConsumedFrames() int {
	return b.consumedFrames
}

// Process folds a batch of frames into the block. The batch channel count
// must match the block's; a mismatch is a caller bug and panics.
func (b *Block) Process(src pcm.Samples) {
	if src.Channels() != b.channels {
		panic("block: batch channel count does not match block")
	}
	for ch := 0; ch < b.channels; ch++ {
		peak, energy := src.ScanChannel(ch)
		if peak > b.samplePeak[ch] {
			b.samplePeak[ch] = peak
		}
		b.sum2[ch] += energy
	}
	b.consumedFrames += src.Frames()
}

// Finish returns the block's per-channel peak and RMS values, with
// rms[ch] = sqrt(2*sum2[ch]/consumedFrames) per the DR procedure.
//
// Finish does not reset the block; the caller resets it once the window is
// truly closed.
func (b *Block) Finish() (peak, rms []float64) {
	peak = make([]float64, b.channels)
	copy(peak, b.samplePeak)
	rms = make([]float64, b.channels)
	for ch, sum := range b.sum2 {
		rms[ch] = math.Sqrt(2 * sum / float64(b.consumedFrames))
	}
	return peak, rms
}

// Reset zeroes the peaks, energy sums and frame counter.
func (b *Block) Reset() {
	for ch := range b.samplePeak {
		b.samplePeak[ch] = 0
		b.sum2[ch] = 0
	}
	b.consumedFrames = 0
}
