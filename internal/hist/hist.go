// Package hist provides the fixed-resolution amplitude histograms used by
// the DR measurement procedure.
//
// The DR procedure discretizes normalized amplitudes into 2^15 steps. One
// histogram counts block peaks, another counts block RMS values; scoring
// scans them from the loud end downward. All channels share a single flat
// counter slice so those scans stay within one allocation.
package hist

import (
	"errors"
	"math"
)

// Bins is the number of amplitude steps (2^15). Valid bin indices are
// [0, Bins]: a full-scale value of 1.0 maps to bin Bins, so each channel
// row holds Bins+1 counters.
const Bins = 32768

// ErrTooLarge indicates the requested channel count would overflow the
// histogram size computation.
var ErrTooLarge = errors.New("hist: histogram size overflows int")

// Histogram holds per-channel occurrence counters over Bins+1 amplitude
// bins. Counters only ever increase.
type Histogram struct {
	channels int
	counts   []uint32 // flat, channels*(Bins+1), row per channel
}

// New allocates a histogram for the given channel count. The size
// computation is overflow-checked before anything is allocated.
func New(channels int) (*Histogram, error) {
	if channels <= 0 || channels > (math.MaxInt-1)/(Bins+1) {
		return nil, ErrTooLarge
	}
	return &Histogram{
		channels: channels,
		counts:   make([]uint32, channels*(Bins+1)),
	}, nil
}

// Channels returns the configured channel count.
func (h *Histogram) Channels() int {
	return h.channels
}

// Add increments the counter for one bin of one channel.
func (h *Histogram) Add(channel, bin int) {
	h.counts[channel*(Bins+1)+bin]++
}

// Channel returns the counter row for one channel, indexed by bin.
// The returned slice aliases the histogram's storage.
func (h *Histogram) Channel(channel int) []uint32 {
	return h.counts[channel*(Bins+1) : (channel+1)*(Bins+1)]
}

// RMSBin maps a block RMS value to its bin: round(v*Bins) clamped to
// [0, Bins]. RMS bins round while peak bins truncate; the asymmetry
// follows the published DR procedure.
func RMSBin(v float64) int {
	return clampBin(math.Round(v * Bins))
}

// PeakBin maps a block peak value to its bin: trunc(v*Bins) clamped to
// [0, Bins].
func PeakBin(v float64) int {
	return clampBin(math.Trunc(v * Bins))
}

// clampBin saturates a float bin index into [0, Bins].
// NaN and negative values map to 0, like a saturating float-to-int cast.
func clampBin(f float64) int {
	if !(f > 0) {
		return 0
	}
	if f >= Bins {
		return Bins
	}
	return int(f)
}
