package crosshair

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Color presets for Settings.Color. Any other value is shown as green by the
// game client; such values are accepted and encoded as Color & 7.
const (
	ColorRed    = 0 // (250, 50, 50)
	ColorGreen  = 1 // (50, 250, 50)
	ColorYellow = 2 // (250, 250, 50)
	ColorBlue   = 3 // (50, 50, 250)
	ColorCyan   = 4 // (50, 250, 250)
	ColorCustom = 5 // Red, Green and Blue apply
)

// Settings is the unvalidated input for New. Field comments name the console
// variable each field drives.
type Settings struct {
	Gap                       float64 `json:"gap" yaml:"gap"`                                                 // cl_crosshairgap
	OutlineThickness          float64 `json:"outline_thickness" yaml:"outline_thickness"`                     // cl_crosshair_outlinethickness
	Red                       int     `json:"red" yaml:"red"`                                                 // cl_crosshaircolor_r, only with ColorCustom
	Green                     int     `json:"green" yaml:"green"`                                             // cl_crosshaircolor_g, only with ColorCustom
	Blue                      int     `json:"blue" yaml:"blue"`                                               // cl_crosshaircolor_b, only with ColorCustom
	Alpha                     int     `json:"alpha" yaml:"alpha"`                                             // cl_crosshairalpha, only with UseAlpha
	DynamicSplitDist          int     `json:"dynamic_splitdist" yaml:"dynamic_splitdist"`                     // cl_crosshair_dynamic_splitdist
	Recoil                    bool    `json:"recoil" yaml:"recoil"`                                           // cl_crosshair_recoil, CS2 only
	FixedGap                  float64 `json:"fixed_gap" yaml:"fixed_gap"`                                     // cl_fixedcrosshairgap
	Color                     int     `json:"color" yaml:"color"`                                             // cl_crosshaircolor
	DrawOutline               bool    `json:"draw_outline" yaml:"draw_outline"`                               // cl_crosshair_drawoutline
	DynamicSplitAlphaInnerMod float64 `json:"dynamic_splitalpha_innermod" yaml:"dynamic_splitalpha_innermod"` // cl_crosshair_dynamic_splitalpha_innermod
	DynamicSplitAlphaOuterMod float64 `json:"dynamic_splitalpha_outermod" yaml:"dynamic_splitalpha_outermod"` // cl_crosshair_dynamic_splitalpha_outermod
	DynamicMaxDistSplitRatio  float64 `json:"dynamic_maxdist_split_ratio" yaml:"dynamic_maxdist_split_ratio"` // cl_crosshair_dynamic_maxdist_splitratio
	Thickness                 float64 `json:"thickness" yaml:"thickness"`                                     // cl_crosshairthickness
	Style                     int     `json:"style" yaml:"style"`                                             // cl_crosshairstyle
	Dot                       bool    `json:"dot" yaml:"dot"`                                                 // cl_crosshairdot
	GapUseWeaponValue         bool    `json:"gap_use_weapon_value" yaml:"gap_use_weapon_value"`               // cl_crosshairgap_useweaponvalue
	UseAlpha                  bool    `json:"use_alpha" yaml:"use_alpha"`                                     // cl_crosshairusealpha
	T                         bool    `json:"t" yaml:"t"`                                                     // cl_crosshair_t
	Size                      float64 `json:"size" yaml:"size"`                                               // cl_crosshairsize
}

type fieldRange struct {
	name     string
	min, max float64
	value    func(Settings) float64
}

// Checked in declaration order; the first violation is reported. Color is
// deliberately absent.
var fieldRanges = []fieldRange{
	{"gap", -12.8, 12.7, func(s Settings) float64 { return s.Gap }},
	{"outline_thickness", 0, 3, func(s Settings) float64 { return s.OutlineThickness }},
	{"red", 0, 255, func(s Settings) float64 { return float64(s.Red) }},
	{"green", 0, 255, func(s Settings) float64 { return float64(s.Green) }},
	{"blue", 0, 255, func(s Settings) float64 { return float64(s.Blue) }},
	{"alpha", 0, 255, func(s Settings) float64 { return float64(s.Alpha) }},
	{"dynamic_splitdist", 0, 127, func(s Settings) float64 { return float64(s.DynamicSplitDist) }},
	{"fixed_gap", -12.8, 12.7, func(s Settings) float64 { return s.FixedGap }},
	{"dynamic_splitalpha_innermod", 0, 1, func(s Settings) float64 { return s.DynamicSplitAlphaInnerMod }},
	{"dynamic_splitalpha_outermod", 0.3, 1, func(s Settings) float64 { return s.DynamicSplitAlphaOuterMod }},
	{"dynamic_maxdist_split_ratio", 0, 1, func(s Settings) float64 { return s.DynamicMaxDistSplitRatio }},
	{"thickness", 0, 6.3, func(s Settings) float64 { return s.Thickness }},
	{"style", 0, 5, func(s Settings) float64 { return float64(s.Style) }},
	{"size", 0, 819.1, func(s Settings) float64 { return s.Size }},
}

// Validate reports the first field of s outside its range as a *FieldRangeError.
func (s Settings) Validate() error {
	for _, r := range fieldRanges {
		v := r.value(s)
		// Written as a negated conjunction so NaN is rejected too.
		if !(r.min <= v && v <= r.max) {
			return &FieldRangeError{Field: r.name, Value: v, Min: r.min, Max: r.max}
		}
	}
	return nil
}

// Crosshair is a validated crosshair profile. The zero value is not a valid
// crosshair; obtain one from New, MustNew or Decode. The zero value has no
// share code: Encode returns "" for it.
type Crosshair struct {
	s     Settings
	valid bool
}

// New validates s and returns the crosshair it describes.
func New(s Settings) (Crosshair, error) {
	if err := s.Validate(); err != nil {
		return Crosshair{}, err
	}
	return Crosshair{s: s, valid: true}, nil
}

// IsValid reports whether c was built by New, MustNew or Decode.
func (c Crosshair) IsValid() bool { return c.valid }

// MustNew is like New but panics if s is invalid.
func MustNew(s Settings) Crosshair {
	c, err := New(s)
	if err != nil {
		panic(fmt.Sprintf("crosshair: MustNew: %v", err))
	}
	return c
}

// Settings returns a copy of the crosshair's fields.
func (c Crosshair) Settings() Settings { return c.s }

func (c Crosshair) Gap() float64                       { return c.s.Gap }
func (c Crosshair) OutlineThickness() float64          { return c.s.OutlineThickness }
func (c Crosshair) Red() int                           { return c.s.Red }
func (c Crosshair) Green() int                         { return c.s.Green }
func (c Crosshair) Blue() int                          { return c.s.Blue }
func (c Crosshair) Alpha() int                         { return c.s.Alpha }
func (c Crosshair) DynamicSplitDist() int              { return c.s.DynamicSplitDist }
func (c Crosshair) Recoil() bool                       { return c.s.Recoil }
func (c Crosshair) FixedGap() float64                  { return c.s.FixedGap }
func (c Crosshair) Color() int                         { return c.s.Color }
func (c Crosshair) DrawOutline() bool                  { return c.s.DrawOutline }
func (c Crosshair) DynamicSplitAlphaInnerMod() float64 { return c.s.DynamicSplitAlphaInnerMod }
func (c Crosshair) DynamicSplitAlphaOuterMod() float64 { return c.s.DynamicSplitAlphaOuterMod }
func (c Crosshair) DynamicMaxDistSplitRatio() float64  { return c.s.DynamicMaxDistSplitRatio }
func (c Crosshair) Thickness() float64                 { return c.s.Thickness }
func (c Crosshair) Style() int                         { return c.s.Style }
func (c Crosshair) Dot() bool                          { return c.s.Dot }
func (c Crosshair) GapUseWeaponValue() bool            { return c.s.GapUseWeaponValue }
func (c Crosshair) UseAlpha() bool                     { return c.s.UseAlpha }
func (c Crosshair) T() bool                            { return c.s.T }
func (c Crosshair) Size() float64                      { return c.s.Size }

// String returns the share code of c.
func (c Crosshair) String() string {
	return Encode(c)
}

// MarshalJSON encodes the crosshair as its Settings object.
func (c Crosshair) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.s)
}

// UnmarshalJSON decodes a Settings object and validates it. Unknown keys are
// rejected.
func (c *Crosshair) UnmarshalJSON(data []byte) error {
	var s Settings
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return err
	}
	v, err := New(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
