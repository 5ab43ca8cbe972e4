// Package pcm provides layout-agnostic views over decoded PCM sample
// buffers.
//
// A view exposes a fixed channel count, a frame count, a fused
// normalize-and-accumulate scan per channel, and zero-copy splitting at any
// frame offset. Two layouts are supported: interleaved (one buffer,
// frame-major) and planar (one buffer per channel).
//
// The supported sample encodings are exactly int16, int32, float32 and
// float64. 8-bit and 64-bit integer PCM cannot be expressed at this
// boundary; callers must convert such streams before constructing a view.
package pcm

import "errors"

// View construction errors.
var (
	// ErrChannelCount indicates a non-positive interleaved channel count.
	ErrChannelCount = errors.New("pcm: channel count must be positive")

	// ErrBufferLength indicates an interleaved buffer whose length is not a
	// multiple of the channel count.
	ErrBufferLength = errors.New("pcm: buffer length is not a multiple of the channel count")

	// ErrNoChannels indicates a planar view with zero channel buffers.
	ErrNoChannels = errors.New("pcm: planar view needs at least one channel buffer")

	// ErrLengthMismatch indicates planar channel buffers of differing lengths.
	ErrLengthMismatch = errors.New("pcm: planar channel buffers differ in length")
)

// Sample is the closed set of supported PCM sample encodings.
type Sample interface {
	int16 | int32 | float32 | float64
}

// Normalization divisors mapping each encoding's full-scale amplitude
// to 1.0. Floats are assumed to already be in [-1, 1].
const (
	Int16Scale = 32768.0
	Int32Scale = 2147483648.0
	FloatScale = 1.0
)

// Samples is a read-only view over a chunk of multichannel PCM.
//
// ScanChannel visits every sample of one channel in frame order and returns
// the maximum normalized |sample| and the sum of squared normalized samples
// over the view. The scan is fused so the per-sample loop stays monomorphic
// inside the concrete view type; only the per-channel call is virtual.
type Samples interface {
	// Channels returns the channel count of the view.
	Channels() int

	// Frames returns the number of frames covered by the view.
	Frames() int

	// ScanChannel returns (max |normalized sample|, sum of normalized
	// sample squares) over the view for one channel.
	ScanChannel(channel int) (peak, energy float64)

	// SplitAt splits the view at frame offset n, 0 <= n <= Frames(),
	// into zero-copy views over frames [0,n) and [n,Frames()).
	SplitAt(n int) (head, tail Samples)
}

// scale returns the normalization divisor for a sample type. Resolved once
// per view construction, never in the sample loop.
func scale[S Sample]() float64 {
	var s S
	switch any(s).(type) {
	case int16:
		return Int16Scale
	case int32:
		return Int32Scale
	default:
		return FloatScale
	}
}

// Interleaved is a view over a single frame-major, channel-minor buffer.
type Interleaved[S Sample] struct {
	data     []S
	channels int
	scale    float64
}

// NewInterleaved wraps an interleaved sample buffer. The buffer length must
// be a multiple of the channel count.
func NewInterleaved[S Sample](data []S, channels int) (Interleaved[S], error) {
	if channels <= 0 {
		return Interleaved[S]{}, ErrChannelCount
	}
	if len(data)%channels != 0 {
		return Interleaved[S]{}, ErrBufferLength
	}
	return Interleaved[S]{data: data, channels: channels, scale: scale[S]()}, nil
}

// Channels returns the channel count of the view.
func (v Interleaved[S]) Channels() int {
	return v.channels
}

// Frames returns the number of frames covered by the view.
func (v Interleaved[S]) Frames() int {
	return len(v.data) / v.channels
}

// ScanChannel returns the normalized peak and energy sum of one channel.
func (v Interleaved[S]) ScanChannel(channel int) (peak, energy float64) {
	var maxAbs, sum2 float64
	inv := 1.0 / v.scale
	for i := channel; i < len(v.data); i += v.channels {
		s := float64(v.data[i]) * inv
		if s < 0 {
			s = -s
		}
		if s > maxAbs {
			maxAbs = s
		}
		sum2 += s * s
	}
	return maxAbs, sum2
}

// SplitAt splits the view at frame offset n into two zero-copy views.
func (v Interleaved[S]) SplitAt(n int) (head, tail Samples) {
	cut := n * v.channels
	h := v
	t := v
	h.data = v.data[:cut]
	t.data = v.data[cut:]
	return h, t
}

// Planar is a view over one sample buffer per channel.
type Planar[S Sample] struct {
	data  [][]S
	scale float64
}

// NewPlanar wraps per-channel sample buffers. At least one buffer is
// required and all buffers must share the same length.
func NewPlanar[S Sample](data [][]S) (Planar[S], error) {
	if len(data) == 0 {
		return Planar[S]{}, ErrNoChannels
	}
	frames := len(data[0])
	for _, ch := range data[1:] {
		if len(ch) != frames {
			return Planar[S]{}, ErrLengthMismatch
		}
	}
	return Planar[S]{data: data, scale: scale[S]()}, nil
}

// Channels returns the channel count of the view.
func (v Planar[S]) Channels() int {
	return len(v.data)
}

// Frames returns the number of frames covered by the view.
func (v Planar[S]) Frames() int {
	return len(v.data[0])
}

// ScanChannel returns the normalized peak and energy sum of one channel.
func (v Planar[S]) ScanChannel(channel int) (peak, energy float64) {
	var maxAbs, sum2 float64
	inv := 1.0 / v.scale
	for _, raw := range v.data[channel] {
		s := float64(raw) * inv
		if s < 0 {
			s = -s
		}
		if s > maxAbs {
			maxAbs = s
		}
		sum2 += s * s
	}
	return maxAbs, sum2
}

// SplitAt splits the view at frame offset n into two zero-copy views.
func (v Planar[S]) SplitAt(n int) (head, tail Samples) {
	hd := make([][]S, len(v.data))
	td := make([][]S, len(v.data))
	for ch, buf := range v.data {
		hd[ch] = buf[:n]
		td[ch] = buf[n:]
	}
	return Planar[S]{data: hd, scale: v.scale}, Planar[S]{data: td, scale: v.scale}
}
