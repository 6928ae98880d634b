// internal/appearance/color.go
package appearance

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fallback is used whenever the sampled colour would leave the stars
// invisible.
var Fallback = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Sample turns a computed text colour into an opaque star colour. Black,
// fully transparent and unparseable inputs yield Fallback.
func Sample(css string) color.NRGBA {
	c, ok := Parse(css)
	if !ok || c.A == 0 || (c.R == 0 && c.G == 0 && c.B == 0) {
		return Fallback
	}
	c.A = 255
	return c
}

// Parse reads the colour notations hosts report for computed styles.
func Parse(css string) (color.NRGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(css))
	switch s {
	case "":
		return color.NRGBA{}, false
	case "transparent":
		return color.NRGBA{}, true
	case "white":
		return color.NRGBA{255, 255, 255, 255}, true
	case "black":
		return color.NRGBA{0, 0, 0, 255}, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	name, args, ok := splitFunc(s)
	if !ok {
		return color.NRGBA{}, false
	}
	switch name {
	case "rgb", "rgba":
		return parseRGB(args)
	case "hsl", "hsla":
		return parseHSL(args)
	}
	return color.NRGBA{}, false
}

func parseHex(s string) (color.NRGBA, bool) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, alpha}, true
}

// splitFunc splits "name(a, b, c)" into name and trimmed args.
func splitFunc(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	body := s[open+1 : len(s)-1]
	var args []string
	if strings.Contains(body, ",") {
		args = strings.Split(body, ",")
	} else {
		// space syntax: rgb(1 2 3 / 0.5)
		args = strings.Fields(strings.ReplaceAll(body, "/", " "))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return strings.TrimSpace(s[:open]), args, true
}

func parseRGB(args []string) (color.NRGBA, bool) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := channel(args[i])
		if !ok {
			return color.NRGBA{}, false
		}
		ch[i] = v
	}
	a := uint8(255)
	if len(args) == 4 {
		v, ok := alphaValue(args[3])
		if !ok {
			return color.NRGBA{}, false
		}
		a = v
	}
	return color.NRGBA{ch[0], ch[1], ch[2], a}, true
}

func parseHSL(args []string) (color.NRGBA, bool) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, false
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return color.NRGBA{}, false
	}
	sat, ok1 := percent(args[1])
	light, ok2 := percent(args[2])
	if !ok1 || !ok2 {
		return color.NRGBA{}, false
	}
	a := uint8(255)
	if len(args) == 4 {
		v, ok := alphaValue(args[3])
		if !ok {
			return color.NRGBA{}, false
		}
		a = v
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, sat, light).Clamped().RGB255()
	return color.NRGBA{r, g, b, a}, true
}

func channel(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		p, ok := percent(s)
		return uint8(math.Round(p * 255)), ok
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return uint8(math.Round(clamp(v, 0, 255))), true
}

func alphaValue(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		p, ok := percent(s)
		return uint8(math.Round(p * 255)), ok
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return uint8(math.Round(clamp(v, 0, 1) * 255)), true
}

// percent parses "54%" as 0.54.
func percent(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return clamp(v/100, 0, 1), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
