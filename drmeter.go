// drmeter.go
package drmeter

import (
	"math"

	"github.com/llehouerou/go-drmeter/internal/block"
	"github.com/llehouerou/go-drmeter/internal/hist"
)

// Configuration limits.
const (
	// MaxChannels is the maximum supported channel count.
	MaxChannels = 64

	// MinSampleRate and MaxSampleRate bound the supported sample rates.
	// The upper bound is 64x44.1kHz (DSD64 rate).
	MinSampleRate = 16
	MaxSampleRate = 2_822_400

	// MinWindow is the shortest supported measurement window in ms.
	MinWindow = 10

	// DefaultWindow is the DR-standard window length in ms (3 seconds).
	DefaultWindow = 3000
)

// loudFraction is the share of loudest blocks the RMS denominator is
// computed over, per the DR procedure ("upper 20%").
const loudFraction = 0.2

// Meter measures the DR (Dynamic Range) score of a PCM stream.
//
// Frames are fed incrementally with the AddFrames functions; the meter
// slices them into fixed-length windows, summarizes each window into one
// peak and one RMS value per channel, and bins those into two per-channel
// histograms. Scores are derived from the histograms at any time; Finalize
// flushes a trailing partial window and caches the per-channel results.
type Meter struct {
	// Configuration.
	rate     uint32
	channels uint32
	window   uint // window length in ms

	// neededFrames is the window length in frames: rate*window/1000.
	neededFrames int

	// block accumulates the currently open window.
	block *block.Block

	// Completed-window results.
	blockCount int
	peaks      *hist.Histogram
	rms        *hist.Histogram

	// channelDR caches the per-channel exact DR values. It is nil while
	// the meter is accepting frames and is populated exactly once, by a
	// successful Finalize.
	channelDR []float64
}

// New creates a meter with the default 3s window.
func New(channels, rate uint32) (*Meter, error) {
	return NewWithWindow(channels, rate, DefaultWindow)
}

// NewWithWindow creates a meter with the given window length in ms.
//
// It returns ErrNoMem if channels is outside [1, MaxChannels], rate is
// outside [MinSampleRate, MaxSampleRate], window is below MinWindow, or
// the derived per-window frame count would be zero or overflow.
func NewWithWindow(channels, rate uint32, window uint) (*Meter, error) {
	if channels == 0 || channels > MaxChannels {
		return nil, ErrNoMem
	}
	if rate < MinSampleRate || rate > MaxSampleRate {
		return nil, ErrNoMem
	}
	if window < MinWindow {
		return nil, ErrNoMem
	}

	product := uint64(rate) * uint64(window)
	if product/uint64(window) != uint64(rate) {
		return nil, ErrNoMem
	}
	neededFrames := product / 1000
	if neededFrames == 0 || neededFrames > math.MaxInt {
		return nil, ErrNoMem
	}

	peaks, err := hist.New(int(channels))
	if err != nil {
		return nil, ErrNoMem
	}
	rms, err := hist.New(int(channels))
	if err != nil {
		return nil, ErrNoMem
	}

	return &Meter{
		rate:         rate,
		channels:     channels,
		window:       window,
		neededFrames: int(neededFrames),
		block:        block.New(int(channels)),
		peaks:        peaks,
		rms:          rms,
	}, nil
}

// Channels returns the configured channel count.
func (m *Meter) Channels() uint32 {
	return m.channels
}

// Rate returns the configured sample rate in Hz.
func (m *Meter) Rate() uint32 {
	return m.rate
}

// Window returns the configured window length in ms.
func (m *Meter) Window() uint {
	return m.window
}

// Finalized reports whether Finalize has completed on this meter.
func (m *Meter) Finalized() bool {
	// The instance is finalized once the score cache exists.
	return m.channelDR != nil
}
