package drmeter

import "testing"

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  Error
		want string
	}{
		{ErrNone, "No error"},
		{ErrNoMem, "Not enough memory or parameter out of range"},
		{ErrInvalidChannelIndex, "Invalid channel index"},
		{ErrFinalized, "DR meter instance is finalized"},
		{ErrNoPeak, "No sample peak recorded"},
		{Error(99), "unknown error"},
		{Error(-1), "unknown error"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error(%d).Error(): got %q, want %q", int(tt.err), got, tt.want)
		}
	}
}

func TestError_Comparable(t *testing.T) {
	var err error = ErrNoPeak
	if err != ErrNoPeak {
		t.Error("Error values must compare with ==")
	}
	if err == error(ErrFinalized) {
		t.Error("distinct Error values compare equal")
	}
}
