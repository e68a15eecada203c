package crosshair

// Binary layout (byte: content):
//
//	0       checksum
//	1       format marker, always 1
//	2       gap x10, int8
//	3       outline thickness x2
//	4-7     red, green, blue, alpha
//	8       bits 0-6 dynamic split distance, bit 7 recoil
//	9       fixed gap x10, int8
//	10      bits 0-2 color, bit 3 draw outline, bits 4-7 split alpha inner mod x10
//	11      bits 0-3 split alpha outer mod x10, bits 4-7 max dist split ratio x10
//	12      thickness x10
//	13      bits 1-3 style, bit 4 dot, bit 5 gap uses weapon value, bit 6 use alpha, bit 7 T style
//	14-15   size x10, 13 bits little-endian
//	16-17   unused
//
// Fractional fields are truncated toward zero when packed.

func pack(s Settings) [BufferSize]byte {
	var b [BufferSize]byte
	size := fixed(s.Size, 10)

	b[1] = formatMarker
	b[2] = byte(fixed(s.Gap, 10))
	b[3] = byte(fixed(s.OutlineThickness, 2))
	b[4] = byte(s.Red)
	b[5] = byte(s.Green)
	b[6] = byte(s.Blue)
	b[7] = byte(s.Alpha)
	b[8] = byte(s.DynamicSplitDist) | bit(s.Recoil)<<7
	b[9] = byte(fixed(s.FixedGap, 10))
	b[10] = byte(s.Color&7) | bit(s.DrawOutline)<<3 | byte(fixed(s.DynamicSplitAlphaInnerMod, 10))<<4
	b[11] = byte(fixed(s.DynamicSplitAlphaOuterMod, 10)) | byte(fixed(s.DynamicMaxDistSplitRatio, 10))<<4
	b[12] = byte(fixed(s.Thickness, 10))
	b[13] = byte(s.Style)<<1 | bit(s.Dot)<<4 | bit(s.GapUseWeaponValue)<<5 | bit(s.UseAlpha)<<6 | bit(s.T)<<7
	b[14] = byte(size & 0xff)
	b[15] = byte((size >> 8) & 0x1f)
	return b
}

func unpack(b [BufferSize]byte) Settings {
	flags := b[13] >> 4
	return Settings{
		Gap:                       float64(signedByte(b[2])) / 10,
		OutlineThickness:          float64(b[3]) / 2,
		Red:                       int(b[4]),
		Green:                     int(b[5]),
		Blue:                      int(b[6]),
		Alpha:                     int(b[7]),
		DynamicSplitDist:          int(b[8] & 0x7f),
		Recoil:                    (b[8]>>4)&8 == 8,
		FixedGap:                  float64(signedByte(b[9])) / 10,
		Color:                     int(b[10] & 7),
		DrawOutline:               b[10]&8 == 8,
		DynamicSplitAlphaInnerMod: float64(b[10]>>4) / 10,
		DynamicSplitAlphaOuterMod: float64(b[11]&0xf) / 10,
		DynamicMaxDistSplitRatio:  float64(b[11]>>4) / 10,
		Thickness:                 float64(b[12]) / 10,
		Style:                     int(b[13]&0xf) >> 1,
		Dot:                       flags&1 == 1,
		GapUseWeaponValue:         flags&2 == 2,
		UseAlpha:                  flags&4 == 4,
		T:                         flags&8 == 8,
		Size:                      float64(int(b[15]&0x1f)<<8|int(b[14])) / 10,
	}
}

// fixed scales v and truncates toward zero.
func fixed(v, scale float64) int {
	return int(v * scale)
}

// signedByte reinterprets b as two's complement.
func signedByte(b byte) int8 {
	return int8(b)
}

func bit(v bool) byte {
	if v {
		return 1
	}
	return 0
}
