//go:build fuzz
// +build fuzz

package crosshair

import (
	"errors"
	"testing"
)

// FuzzShareCodeCodec_Decode checks that arbitrary text never panics and only
// fails with the documented errors.
func FuzzShareCodeCodec_Decode(f *testing.F) {
	codec := NewShareCodeCodec()

	f.Add(minimalCode)
	f.Add(sampleCode)
	f.Add(maximalCode)
	f.Add("CSGO-99999-99999-99999-99999-99999")
	f.Add("CSGO-ABCDE-FGHJK-LMNOP-QRSTU-VWXYZ")
	f.Add("")

	f.Fuzz(func(t *testing.T, code string) {
		c, err := codec.Decode(code)
		if err != nil {
			if !errors.Is(err, ErrInvalidFormat) && !errors.Is(err, ErrInvalidCode) {
				t.Fatalf("unexpected error kind for %q: %v", code, err)
			}
			return
		}

		// A decoded crosshair re-encodes to a code that decodes to itself.
		again, err := codec.Decode(codec.Encode(c))
		if err != nil {
			t.Fatalf("re-encoded %q failed to decode: %v", code, err)
		}
		if again != c {
			t.Errorf("round trip mismatch for %q: %+v != %+v", code, again.Settings(), c.Settings())
		}
	})
}

// FuzzShareCodeCodec_DecodeBytes feeds raw buffers through the bit layout.
func FuzzShareCodeCodec_DecodeBytes(f *testing.F) {
	codec := NewShareCodeCodec()

	f.Add([]byte{0x04, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x03, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != BufferSize {
			t.Skip("buffer must be exactly BufferSize bytes")
		}
		var buf [BufferSize]byte
		copy(buf[:], data)
		buf[0] = checksum(buf)

		c, err := codec.DecodeBytes(buf)
		if err != nil {
			if !errors.Is(err, ErrFieldOutOfRange) {
				t.Fatalf("checksummed buffer %x failed with %v", buf, err)
			}
			return
		}

		// Unused bits drop out, but re-packing is stable from here on.
		packed := codec.EncodeBytes(c)
		again, err := codec.DecodeBytes(packed)
		if err != nil || again != c {
			t.Fatalf("repack of %x unstable: %v", buf, err)
		}
	})
}
