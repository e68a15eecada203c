// Package cvar renders a crosshair as the console commands that apply it in
// CS:GO or CS2.
package cvar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/csxhair/pkg/crosshair"
)

// Variant selects the game client a command list is written for.
type Variant string

const (
	VariantCSGO Variant = "csgo"
	VariantCS2  Variant = "cs2"
)

// ParseVariant accepts the variant names case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantCSGO, VariantCS2:
		return v, nil
	default:
		return "", fmt.Errorf("cvar: unknown variant %q", s)
	}
}

// Commands returns the command list for v. Unknown variants fall back to CS2.
func Commands(c crosshair.Crosshair, v Variant) []string {
	if v == VariantCSGO {
		return CSGO(c)
	}
	return CS2(c)
}

// CSGO renders booleans as 0/1 and leaves out cl_crosshair_recoil, which the
// CS:GO client does not have.
func CSGO(c crosshair.Crosshair) []string {
	return render(c, intBool, false)
}

// CS2 renders booleans as true/false.
func CS2(c crosshair.Crosshair) []string {
	return render(c, lowercaseBool, true)
}

// Script joins commands into a single line for the game console.
func Script(commands []string) string {
	return strings.Join(commands, "; ")
}

func render(c crosshair.Crosshair, boolean func(bool) string, recoil bool) []string {
	cmds := make([]string, 0, 21)
	add := func(name, value string) {
		cmds = append(cmds, name+" "+value)
	}

	add("cl_crosshairgap", decimal(c.Gap()))
	add("cl_crosshair_outlinethickness", decimal(c.OutlineThickness()))
	add("cl_crosshaircolor_r", strconv.Itoa(c.Red()))
	add("cl_crosshaircolor_g", strconv.Itoa(c.Green()))
	add("cl_crosshaircolor_b", strconv.Itoa(c.Blue()))
	add("cl_crosshairalpha", strconv.Itoa(c.Alpha()))
	add("cl_crosshair_dynamic_splitdist", strconv.Itoa(c.DynamicSplitDist()))
	if recoil {
		add("cl_crosshair_recoil", boolean(c.Recoil()))
	}
	add("cl_fixedcrosshairgap", decimal(c.FixedGap()))
	add("cl_crosshaircolor", strconv.Itoa(c.Color()))
	add("cl_crosshair_drawoutline", boolean(c.DrawOutline()))
	add("cl_crosshair_dynamic_splitalpha_innermod", decimal(c.DynamicSplitAlphaInnerMod()))
	add("cl_crosshair_dynamic_splitalpha_outermod", decimal(c.DynamicSplitAlphaOuterMod()))
	add("cl_crosshair_dynamic_maxdist_splitratio", decimal(c.DynamicMaxDistSplitRatio()))
	add("cl_crosshairthickness", decimal(c.Thickness()))
	add("cl_crosshairstyle", strconv.Itoa(c.Style()))
	add("cl_crosshairdot", boolean(c.Dot()))
	add("cl_crosshairgap_useweaponvalue", boolean(c.GapUseWeaponValue()))
	add("cl_crosshairusealpha", boolean(c.UseAlpha()))
	add("cl_crosshair_t", boolean(c.T()))
	add("cl_crosshairsize", decimal(c.Size()))
	return cmds
}

// decimal prints the shortest exact decimal with at least one fractional digit.
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func intBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func lowercaseBool(v bool) string {
	return strconv.FormatBool(v)
}
