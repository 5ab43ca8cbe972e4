// score.go
package drmeter

import (
	"math"

	"github.com/llehouerou/go-drmeter/internal/hist"
)

// findFirstPeak returns the highest populated peak-histogram bin of one
// channel. Bin 0 never counts: a channel that only ever saw digital
// silence has no peak, and an unused channel has none either.
func (m *Meter) findFirstPeak(channel int) (int, error) {
	counts := m.peaks.Channel(channel)
	for bin := hist.Bins; bin >= 1; bin-- {
		if counts[bin] != 0 {
			return bin, nil
		}
	}
	return 0, ErrNoPeak
}

// findSecondPeak scans the peak histogram downward over [firstBin, Bins]
// and returns the highest populated bin found. The DR procedure lets this
// coincide with the first peak's bin.
func (m *Meter) findSecondPeak(channel int) (int, error) {
	firstBin, err := m.findFirstPeak(channel)
	if err != nil {
		return 0, err
	}
	counts := m.peaks.Channel(channel)
	for bin := hist.Bins; bin > firstBin; bin-- {
		if counts[bin] != 0 {
			return bin, nil
		}
	}
	return firstBin, nil
}

// FirstPeak returns the maximum sample peak over all frames processed for
// the channel, as a fraction of full scale. Convert to dBFS with
// 20*log10(peak).
func (m *Meter) FirstPeak(channel uint32) (float64, error) {
	if channel >= m.channels {
		return 0, ErrInvalidChannelIndex
	}
	bin, err := m.findFirstPeak(int(channel))
	if err != nil {
		return 0, err
	}
	return float64(bin) / hist.Bins, nil
}

// SecondPeak returns the second sample peak over all frames processed for
// the channel, as a fraction of full scale. It equals FirstPeak when the
// first peak's bin is the highest populated one.
func (m *Meter) SecondPeak(channel uint32) (float64, error) {
	if channel >= m.channels {
		return 0, ErrInvalidChannelIndex
	}
	bin, err := m.findSecondPeak(int(channel))
	if err != nil {
		return 0, err
	}
	return float64(bin) / hist.Bins, nil
}

// channelRMSSum accumulates the squared bin values of the loudest 20% of
// completed blocks, scanning the RMS histogram from the loud end downward.
// Each populated bin contributes count*(bin/Bins)^2; the scan stops after
// the bin that brings the visited occurrence count to n = round(0.2*blocks),
// so the final bin is always taken whole.
func (m *Meter) channelRMSSum(channel int) float64 {
	counts := m.rms.Channel(channel)
	n := uint64(math.Round(loudFraction * float64(m.blockCount)))

	var visited uint64
	var sum float64
	for bin := hist.Bins; bin >= 0; bin-- {
		if c := counts[bin]; c != 0 {
			v := float64(bin) / hist.Bins
			sum += float64(c) * v * v
			visited += uint64(c)
		}
		if visited >= n {
			break
		}
	}
	return sum
}

// exactChannelDR computes one channel's DR from the current histograms:
// 20*log10(secondPeak / sqrt(rmsSum / (0.2*blocks))).
func (m *Meter) exactChannelDR(channel int) (float64, error) {
	secondBin, err := m.findSecondPeak(channel)
	if err != nil {
		return 0, err
	}
	secondPeak := float64(secondBin) / hist.Bins
	rmsSum := m.channelRMSSum(channel)
	return decibel(secondPeak / math.Sqrt(rmsSum/(loudFraction*float64(m.blockCount)))), nil
}

// ExactChannelDR returns the exact DR value of one channel.
//
// Before Finalize the value is recomputed from completed blocks only; a
// trailing partial window is not included until Finalize flushes it. After
// Finalize the cached value is returned.
func (m *Meter) ExactChannelDR(channel uint32) (float64, error) {
	if channel >= m.channels {
		return 0, ErrInvalidChannelIndex
	}
	if m.channelDR != nil {
		return m.channelDR[channel], nil
	}
	return m.exactChannelDR(int(channel))
}

// ChannelDRScore returns the channel's integer DR score, the exact value
// truncated to a byte.
func (m *Meter) ChannelDRScore(channel uint32) (uint8, error) {
	dr, err := m.ExactChannelDR(channel)
	if err != nil {
		return 0, err
	}
	return scoreByte(dr), nil
}

// ExactDR returns the exact DR value of the stream: the arithmetic mean of
// the per-channel exact DR values.
func (m *Meter) ExactDR() (float64, error) {
	var dr float64
	for ch := uint32(0); ch < m.channels; ch++ {
		v, err := m.ExactChannelDR(ch)
		if err != nil {
			return 0, err
		}
		dr += v
	}
	return dr / float64(m.channels), nil
}

// DRScore returns the stream's integer DR score, the exact value truncated
// to a byte.
func (m *Meter) DRScore() (uint8, error) {
	dr, err := m.ExactDR()
	if err != nil {
		return 0, err
	}
	return scoreByte(dr), nil
}

// Finalize marks the end of the stream. A non-empty partial window is
// scored as one final full block, then the per-channel exact DR values are
// computed and cached; afterwards ingestion returns ErrFinalized and so
// does a repeat Finalize.
//
// If any channel fails to score (ErrNoPeak on an all-silent stream), the
// error is returned and the meter stays un-finalized.
func (m *Meter) Finalize() error {
	if m.Finalized() {
		return ErrFinalized
	}

	if m.block.ConsumedFrames() != 0 {
		m.finalizeBlock()
	}

	channelDR := make([]float64, m.channels)
	for ch := range channelDR {
		dr, err := m.exactChannelDR(ch)
		if err != nil {
			return err
		}
		channelDR[ch] = dr
	}
	m.channelDR = channelDR

	return nil
}

// ExactDRMultiple returns the mean exact DR over several meters, e.g. the
// album DR over per-track instances. An empty slice yields NaN.
func ExactDRMultiple(meters []*Meter) (float64, error) {
	var sum float64
	for _, m := range meters {
		dr, err := m.ExactDR()
		if err != nil {
			return 0, err
		}
		sum += dr
	}
	return sum / float64(len(meters)), nil
}

// DRScoreMultiple returns the mean DR over several meters truncated to a
// byte.
func DRScoreMultiple(meters []*Meter) (uint8, error) {
	dr, err := ExactDRMultiple(meters)
	if err != nil {
		return 0, err
	}
	return scoreByte(dr), nil
}

// decibel converts a linear ratio to dB: 20*log10(v).
func decibel(v float64) float64 {
	return 20 * math.Log10(v)
}

// scoreByte truncates an exact DR value to the integer score, saturating
// into [0, 255]. NaN and negative values map to 0.
func scoreByte(dr float64) uint8 {
	t := math.Trunc(dr)
	if !(t > 0) {
		return 0
	}
	if t >= 255 {
		return 255
	}
	return uint8(t)
}
