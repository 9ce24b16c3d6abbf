package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("hunter2")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("line 3: %w", ErrorMalformedRecord)
	require.True(t, errors.Is(err, ErrorMalformedRecord))
	require.False(t, errors.Is(err, ErrorValidation))
}
