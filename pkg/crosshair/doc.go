// Package crosshair encodes and decodes CS:GO / CS2 crosshair share codes.
//
// A share code looks like:
//
//	CSGO-eCCz6-3fa3d-WjfVG-ftXAo-dDWPA
//
// The 25 characters after the prefix are the digits of a base-57 number over
// Alphabet, least significant digit first. That number is the big-endian
// reading of an 18 byte buffer.
//
// # Binary Format
//
//	[Checksum(1)][Marker(1)][Fields(14)][Unused(2)]
//
// The checksum is the sum of all following bytes modulo 256. The marker is
// always 1. Field packing is described next to pack and unpack in layout.go.
//
// # Usage
//
//	c, err := crosshair.Decode("CSGO-eCCz6-3fa3d-WjfVG-ftXAo-dDWPA")
//	if err != nil {
//	    return err
//	}
//
//	s := c.Settings()
//	s.Gap = -2.2
//	c, err = crosshair.New(s)
//	if err != nil {
//	    return err // *FieldRangeError
//	}
//	code := crosshair.Encode(c)
//
// # Error Handling
//
// Decode returns errors matching one of:
//   - ErrInvalidFormat: the text is not shaped like a share code
//   - ErrInvalidCode: checksum mismatch, oversized payload, or a decoded field
//     out of range (the latter also matches ErrFieldOutOfRange)
//
// New returns a *FieldRangeError, which matches ErrFieldOutOfRange.
//
// # Precision
//
// Fractional fields are stored as small integers (tenths, or halves for the
// outline thickness) and are truncated when encoded, so 0.05 encodes as 0.
//
// # Thread Safety
//
// Crosshair values are immutable. Encode, Decode and ShareCodeCodec hold no
// state and are safe for concurrent use.
package crosshair
