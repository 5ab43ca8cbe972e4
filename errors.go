package drmeter

// Error represents a DR meter error code.
type Error int

// Error codes.
const (
	ErrNone Error = 0

	// ErrNoMem indicates construction parameters outside the supported
	// ranges, an overflowing size or frame-count computation, or an
	// ill-formed sample batch.
	ErrNoMem Error = 1

	// ErrInvalidChannelIndex indicates an accessor channel index at or
	// beyond the configured channel count.
	ErrInvalidChannelIndex Error = 2

	// ErrFinalized indicates ingestion into, or a repeat finalize of, an
	// already finalized meter.
	ErrFinalized Error = 3

	// ErrNoPeak indicates a score query for a channel whose peak histogram
	// has no populated bin above index 0, i.e. zero frames processed or
	// pure digital silence.
	ErrNoPeak Error = 4
)

var errMessages = [5]string{
	"No error",
	"Not enough memory or parameter out of range",
	"Invalid channel index",
	"DR meter instance is finalized",
	"No sample peak recorded",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
