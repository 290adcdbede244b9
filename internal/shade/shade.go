// internal/shade/shade.go
//
// Perceptual shade-ramp generator for tenant branding.
//
// Context
//   Each branding palette stores eleven shades keyed 50–950, Tailwind
//   style.  The tenant edits only the 500 anchor; everything else is
//   derived here.  We build a three-point gradient white → anchor →
//   black and sample it at fixed positions.  Interpolation happens in
//   CIELAB (go-colorful BlendLab), not raw RGB, so the midtones stay
//   clean instead of turning muddy gray.
//
// Notes
//   •  The sample positions are not evenly spaced.  They crowd the
//      extremes to match the conventional lightness scale, and 0.5 is
//      the exact gradient midpoint, so index 5 reproduces the anchor.
//   •  Generate is pure and total: bad input falls back to the default
//      indigo base rather than failing.

package shade

import (
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Labels lists the shade keys in ramp order, lightest first.
var Labels = [11]string{
	"50", "100", "200", "300", "400", "500",
	"600", "700", "800", "900", "950",
}

// FallbackBase substitutes for any anchor that fails to parse.
const FallbackBase = "#6366f1"

// stops are the gradient sample positions for each label, tuned so the
// ramp tracks the familiar 50–950 lightness convention.
var stops = [11]float64{
	0.01, 0.07, 0.16, 0.27, 0.40, 0.50,
	0.63, 0.73, 0.83, 0.91, 0.98,
}

var hexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHex reports whether s is a 6-digit hex color with a leading "#".
func IsHex(s string) bool { return hexRe.MatchString(s) }

// Generate derives the full eleven-shade ramp for anchorHex, ordered
// lightest to darkest.  Same input, same output, every call.
func Generate(anchorHex string) [11]string {
	base, err := colorful.Hex(anchorHex)
	if err != nil {
		base, _ = colorful.Hex(FallbackBase)
	}

	white, _ := colorful.Hex("#ffffff")
	black, _ := colorful.Hex("#000000")

	var out [11]string
	for i, t := range stops {
		var c colorful.Color
		switch {
		case t <= 0.5:
			// First half of the gradient: white toward anchor.
			c = white.BlendLab(base, t*2)
		default:
			// Second half: anchor toward black.
			c = base.BlendLab(black, (t-0.5)*2)
		}
		out[i] = c.Clamped().Hex()
	}
	return out
}

// Lightness returns the CIELAB L* component of a hex color in [0, 1].
// Callers use it to assert ramp ordering; invalid input reads as 0.
func Lightness(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	l, _, _ := c.Lab()
	return l
}
