package crosshair

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	// Alphabet is the ordered digit set of share codes.
	Alphabet = "ABCDEFGHJKLMNOPQRSTUVWXYZabcdefhijkmnopqrstuvwxyz23456789"

	// BufferSize is the length of the binary form behind a share code.
	BufferSize = 18

	codePrefix   = "CSGO"
	groupSize    = 5
	groupCount   = 5
	payloadLen   = groupSize * groupCount
	formatMarker = 1
)

var (
	codePattern = regexp.MustCompile(`^` + codePrefix + `(-[` + Alphabet + `]{5}){5}$`)
	base        = big.NewInt(int64(len(Alphabet)))
)

// ShareCodeCodec converts between crosshairs, their binary form and share codes.
type ShareCodeCodec struct{}

// NewShareCodeCodec creates a new share code codec
func NewShareCodeCodec() *ShareCodeCodec {
	return &ShareCodeCodec{}
}

// Encode returns the share code of c, or "" if c is the zero value.
func (sc *ShareCodeCodec) Encode(c Crosshair) string {
	if !c.IsValid() {
		return ""
	}
	buf := sc.EncodeBytes(c)
	return bytesToText(buf)
}

// Decode parses a share code such as CSGO-eCCz6-3fa3d-WjfVG-ftXAo-dDWPA.
func (sc *ShareCodeCodec) Decode(code string) (Crosshair, error) {
	buf, err := textToBytes(code)
	if err != nil {
		return Crosshair{}, err
	}
	c, err := sc.DecodeBytes(buf)
	if err != nil {
		return Crosshair{}, fmt.Errorf("crosshair: decode %q: %w", code, err)
	}
	return c, nil
}

// EncodeBytes packs c into its binary form with the checksum in byte 0. The
// zero value packs to an all-zero buffer, which DecodeBytes rejects.
func (sc *ShareCodeCodec) EncodeBytes(c Crosshair) [BufferSize]byte {
	if !c.IsValid() {
		return [BufferSize]byte{}
	}
	buf := pack(c.s)
	buf[0] = checksum(buf)
	return buf
}

// DecodeBytes verifies the checksum of buf and unpacks it. Range violations
// match both ErrInvalidCode and ErrFieldOutOfRange.
func (sc *ShareCodeCodec) DecodeBytes(buf [BufferSize]byte) (Crosshair, error) {
	if sum := checksum(buf); buf[0] != sum {
		return Crosshair{}, fmt.Errorf("checksum mismatch: %d != %d: %w", buf[0], sum, ErrInvalidCode)
	}
	c, err := New(unpack(buf))
	if err != nil {
		return Crosshair{}, fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	return c, nil
}

var defaultCodec = NewShareCodeCodec()

// Encode returns the share code of c, or "" if c is the zero value.
func Encode(c Crosshair) string {
	return defaultCodec.Encode(c)
}

// Decode parses a share code into a validated crosshair.
func Decode(code string) (Crosshair, error) {
	return defaultCodec.Decode(code)
}

// checksum sums every byte after the first, modulo 256.
func checksum(buf [BufferSize]byte) byte {
	var sum byte
	for _, b := range buf[1:] {
		sum += b
	}
	return sum
}

// textToBytes reads the payload as a base-57 number whose most significant
// digit is the last character.
func textToBytes(code string) ([BufferSize]byte, error) {
	var buf [BufferSize]byte
	if !codePattern.MatchString(code) {
		return buf, fmt.Errorf("crosshair: %q: %w", code, ErrInvalidFormat)
	}

	chars := strings.ReplaceAll(code[len(codePrefix)+1:], "-", "")
	num := new(big.Int)
	digit := new(big.Int)
	for i := len(chars) - 1; i >= 0; i-- {
		num.Mul(num, base)
		num.Add(num, digit.SetInt64(int64(strings.IndexByte(Alphabet, chars[i]))))
	}

	// 25 digits reach past 144 bits; such a number has no 18 byte form.
	if num.BitLen() > BufferSize*8 {
		return buf, fmt.Errorf("crosshair: decode %q: payload exceeds %d bytes: %w", code, BufferSize, ErrInvalidCode)
	}
	num.FillBytes(buf[:])
	return buf, nil
}

// bytesToText writes buf as base-57 digits, least significant first.
func bytesToText(buf [BufferSize]byte) string {
	num := new(big.Int).SetBytes(buf[:])
	rem := new(big.Int)

	var sb strings.Builder
	sb.Grow(len(codePrefix) + groupCount + payloadLen)
	sb.WriteString(codePrefix)
	for i := 0; i < payloadLen; i++ {
		if i%groupSize == 0 {
			sb.WriteByte('-')
		}
		num.DivMod(num, base, rem)
		sb.WriteByte(Alphabet[rem.Int64()])
	}
	return sb.String()
}
