package navigation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Palette is the derived brand palette injected on publicly themed routes
type Palette struct {
	Accent      string `json:"accent"`
	AccentHover string `json:"accentHover"`
	AccentHSL   string `json:"accentHsl"`
}

// PaletteFor derives the hover and HSL variants of a brand color. Colors
// that fail to parse fall through unchanged so a bad profile value never
// breaks a public page.
func PaletteFor(brandColor string) Palette {
	return Palette{
		Accent:      brandColor,
		AccentHover: DarkenColor(brandColor, 10),
		AccentHSL:   HexToHSL(brandColor),
	}
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// DarkenColor darkens a hex color by the given percentage. An unparseable
// color is returned as is.
func DarkenColor(hex string, percent int) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	scale := func(c int) int {
		return clampChannel(int(math.Round(float64(c) * float64(100-percent) / 100)))
	}
	return fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b))
}

// HexToHSL converts a hex color to a space-separated HSL triple, the form
// CSS custom properties expect. An unparseable color yields an empty string.
func HexToHSL(hex string) string {
	ri, gi, bi, ok := parseHex(hex)
	if !ok {
		return ""
	}
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return fmt.Sprintf("%d %d%% %d%%",
		int(math.Round(h*360)),
		int(math.Round(s*100)),
		int(math.Round(l*100)))
}
