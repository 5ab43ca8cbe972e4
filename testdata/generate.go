//go:build ignore

// This script generates raw PCM test signals for exercising the example
// program by hand. Run with: go run testdata/generate.go
//
// All signals are synthesized directly; nothing is decoded. Generated
// layout:
//
//	testdata/generated/
//	├── pulse_48000_mono.f64le      # full-scale pulse train, DR 13
//	├── mixed_48000_mono.f64le      # loud pulses + quiet square, DR 19
//	├── square_48000_mono.f64le     # full-scale square wave, DR 0
//	├── sine_44100_stereo.s16le     # -6dBFS sine
//	└── silence_44100_stereo.s16le  # digital silence (meter reports no peak)
package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

const outDir = "testdata/generated"

// blockFrames is one default 3s window at 48kHz.
const blockFrames = 144000

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fail(err)
	}

	writeF64("pulse_48000_mono.f64le", concat(5, pulseBlock(blockFrames, 720, 1.0)))

	mixed := concat(2, pulseBlock(blockFrames, 720, 1.0))
	mixed = append(mixed, concat(8, squareBlock(blockFrames, 0.01))...)
	writeF64("mixed_48000_mono.f64le", mixed)

	writeF64("square_48000_mono.f64le", concat(5, squareBlock(blockFrames, 1.0)))

	writeS16("sine_44100_stereo.s16le", stereoSine(44100, 10, 440, 0.5))
	writeS16("silence_44100_stereo.s16le", make([]int16, 2*44100*10))
}

// pulseBlock is one window of silence with an alternating-sign pulse over
// the first pulses samples.
func pulseBlock(frames, pulses int, amp float64) []float64 {
	data := make([]float64, frames)
	for i := 0; i < pulses; i++ {
		if i%2 == 0 {
			data[i] = amp
		} else {
			data[i] = -amp
		}
	}
	return data
}

// squareBlock is one window of a full-length alternating-sign square wave.
func squareBlock(frames int, amp float64) []float64 {
	return pulseBlock(frames, frames, amp)
}

func concat(n int, block []float64) []float64 {
	out := make([]float64, 0, n*len(block))
	for i := 0; i < n; i++ {
		out = append(out, block...)
	}
	return out
}

// stereoSine is seconds of an interleaved stereo sine at the given
// frequency and amplitude.
func stereoSine(rate, seconds, freq int, amp float64) []int16 {
	frames := rate * seconds
	out := make([]int16, 2*frames)
	for f := 0; f < frames; f++ {
		v := amp * math.Sin(2*math.Pi*float64(freq)*float64(f)/float64(rate))
		s := int16(math.Round(v * 32767))
		out[2*f] = s
		out[2*f+1] = s
	}
	return out
}

func writeF64(name string, samples []float64) {
	buf := make([]byte, 8*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(s))
	}
	writeFile(name, buf)
}

func writeS16(name string, samples []int16) {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	writeFile(name, buf)
}

func writeFile(name string, data []byte) {
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fail(err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "generate:", err)
	os.Exit(1)
}
