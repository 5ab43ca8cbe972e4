// Package drmeter computes the DR (Dynamic Range) score of digital audio,
// following the published DR measurement procedure (Measuring DR, ENv3)
// used in mastering analysis.
//
// The meter consumes already-decoded PCM frames; decoding, demuxing and
// resampling are the caller's job. Frames may arrive in any chunking: the
// meter slices the stream into fixed-length windows (3s by default),
// summarizes each window into one sample peak and one RMS value per
// channel, and accumulates those in fixed-resolution histograms from which
// the scores are derived.
//
// # Basic Usage
//
// To measure a stream:
//
//	meter, err := drmeter.New(channels, sampleRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Feed decoded PCM in any chunk sizes, in time order.
//	for _, chunk := range chunks {
//	    if err := meter.AddFramesInt16(chunk); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	// Flush the trailing partial window and cache the results.
//	if err := meter.Finalize(); err != nil {
//	    log.Fatal(err)
//	}
//
//	score, _ := meter.DRScore()
//	fmt.Printf("DR%d\n", score)
//
// # Supported Input
//
// Sample encodings: 16/32-bit signed integer, 32/64-bit float.
// Layouts: interleaved (AddFramesInt16 etc.) and planar
// (AddFramesPlanarInt16 etc.). 8-bit and 64-bit integer PCM are not
// accepted; convert such streams to a supported encoding first.
//
// # Measurement Procedure
//
// Each window yields a peak (max |sample| normalized to full scale) and an
// RMS value sqrt(2*sum(sample^2)/frames). Both are binned into 2^15-step
// histograms; the RMS bin rounds while the peak bin truncates, per the DR
// procedure. A channel's DR is
//
//	20*log10(secondPeak / rms20)
//
// where rms20 is the RMS over the loudest 20% of windows and secondPeak is
// the second-highest binned peak. The stream DR is the mean over channels,
// and the reported DR score is the exact value truncated to an integer.
//
// Scores may be read before Finalize; they then reflect only the windows
// completed so far. Finalize scores the trailing partial window as one
// full block, caches the per-channel values and refuses further input. An
// all-silent channel has no peak and scoring it returns ErrNoPeak, never a
// made-up zero.
//
// Album scores over several tracks come from ExactDRMultiple and
// DRScoreMultiple, which average per-track meters.
//
// # Thread Safety
//
// Meter instances are NOT safe for concurrent use. Independent instances
// share no state and may be driven from separate goroutines.
//
// # Reference
//
// Measuring DR ENv3, Pleasurize Music Foundation:
// http://www.dynamicrange.de/
package drmeter
