package cvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/csxhair/pkg/crosshair"
)

const sampleCode = "CSGO-p73TE-isxVF-wVvRk-p8AS5-yQD3J"

func decode(t *testing.T, code string) crosshair.Crosshair {
	t.Helper()
	c, err := crosshair.Decode(code)
	require.NoError(t, err)
	return c
}

func TestCSGO(t *testing.T) {
	c := decode(t, sampleCode)

	assert.Equal(t, []string{
		"cl_crosshairgap -2.2",
		"cl_crosshair_outlinethickness 1.5",
		"cl_crosshaircolor_r 50",
		"cl_crosshaircolor_g 250",
		"cl_crosshaircolor_b 50",
		"cl_crosshairalpha 200",
		"cl_crosshair_dynamic_splitdist 7",
		"cl_fixedcrosshairgap 3.0",
		"cl_crosshaircolor 1",
		"cl_crosshair_drawoutline 1",
		"cl_crosshair_dynamic_splitalpha_innermod 1.0",
		"cl_crosshair_dynamic_splitalpha_outermod 0.5",
		"cl_crosshair_dynamic_maxdist_splitratio 0.3",
		"cl_crosshairthickness 0.5",
		"cl_crosshairstyle 4",
		"cl_crosshairdot 1",
		"cl_crosshairgap_useweaponvalue 0",
		"cl_crosshairusealpha 1",
		"cl_crosshair_t 1",
		"cl_crosshairsize 2.5",
	}, CSGO(c))
}

func TestCS2(t *testing.T) {
	c := decode(t, sampleCode)

	assert.Equal(t, []string{
		"cl_crosshairgap -2.2",
		"cl_crosshair_outlinethickness 1.5",
		"cl_crosshaircolor_r 50",
		"cl_crosshaircolor_g 250",
		"cl_crosshaircolor_b 50",
		"cl_crosshairalpha 200",
		"cl_crosshair_dynamic_splitdist 7",
		"cl_crosshair_recoil true",
		"cl_fixedcrosshairgap 3.0",
		"cl_crosshaircolor 1",
		"cl_crosshair_drawoutline true",
		"cl_crosshair_dynamic_splitalpha_innermod 1.0",
		"cl_crosshair_dynamic_splitalpha_outermod 0.5",
		"cl_crosshair_dynamic_maxdist_splitratio 0.3",
		"cl_crosshairthickness 0.5",
		"cl_crosshairstyle 4",
		"cl_crosshairdot true",
		"cl_crosshairgap_useweaponvalue false",
		"cl_crosshairusealpha true",
		"cl_crosshair_t true",
		"cl_crosshairsize 2.5",
	}, CS2(c))
}

func TestBooleanRendering(t *testing.T) {
	tests := []struct {
		name        string
		drawOutline bool
		csgo        string
		cs2         string
	}{
		{"outline on", true, "cl_crosshair_drawoutline 1", "cl_crosshair_drawoutline true"},
		{"outline off", false, "cl_crosshair_drawoutline 0", "cl_crosshair_drawoutline false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := crosshair.MustNew(crosshair.Settings{
				DynamicSplitAlphaOuterMod: 0.3,
				DrawOutline:               tt.drawOutline,
			})
			assert.Contains(t, CSGO(c), tt.csgo)
			assert.Contains(t, CS2(c), tt.cs2)
		})
	}
}

func TestMinimalCrosshairZeros(t *testing.T) {
	c := decode(t, "CSGO-eCCz6-3fa3d-WjfVG-ftXAo-dDWPA")

	csgo := CSGO(c)
	assert.Equal(t, "cl_crosshairgap 0.0", csgo[0])
	assert.Equal(t, "cl_crosshairsize 0.0", csgo[len(csgo)-1])

	cs2 := CS2(c)
	assert.Contains(t, cs2, "cl_crosshair_recoil false")
	assert.Contains(t, cs2, "cl_crosshair_dynamic_splitalpha_outermod 0.3")
}

func TestCommands(t *testing.T) {
	c := decode(t, sampleCode)

	assert.Equal(t, CSGO(c), Commands(c, VariantCSGO))
	assert.Equal(t, CS2(c), Commands(c, VariantCS2))
	assert.Equal(t, CS2(c), Commands(c, Variant("unknown")))
	assert.Len(t, Commands(c, VariantCSGO), 20)
	assert.Len(t, Commands(c, VariantCS2), 21)
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{in: "csgo", want: VariantCSGO},
		{in: "CSGO", want: VariantCSGO},
		{in: " cs2 ", want: VariantCS2},
		{in: "CS2", want: VariantCS2},
		{in: "", wantErr: true},
		{in: "cs:go", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScript(t *testing.T) {
	assert.Equal(t, "a 1; b 2", Script([]string{"a 1", "b 2"}))
	assert.Equal(t, "", Script(nil))
}

func TestDecimal(t *testing.T) {
	tests := map[float64]string{
		0:     "0.0",
		3:     "3.0",
		-2.2:  "-2.2",
		0.3:   "0.3",
		819.1: "819.1",
		-12.8: "-12.8",
	}
	for in, want := range tests {
		assert.Equal(t, want, decimal(in))
	}
}
