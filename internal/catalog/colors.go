package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Color is a named swatch offered by the recolor flow.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	HSL  string `json:"hsl"`
}

var colors = []Color{
	{Name: "Red", Hex: "#EF4444", HSL: "0 84% 60%"},
	{Name: "Blue", Hex: "#3B82F6", HSL: "217 91% 60%"},
	{Name: "Green", Hex: "#10B981", HSL: "160 84% 39%"},
	{Name: "Yellow", Hex: "#F59E0B", HSL: "38 92% 50%"},
	{Name: "Purple", Hex: "#8B5CF6", HSL: "258 90% 66%"},
	{Name: "Pink", Hex: "#EC4899", HSL: "330 81% 60%"},
	{Name: "Orange", Hex: "#F97316", HSL: "25 95% 53%"},
	{Name: "Black", Hex: "#000000", HSL: "0 0% 0%"},
	{Name: "White", Hex: "#FFFFFF", HSL: "0 0% 100%"},
	{Name: "Gray", Hex: "#6B7280", HSL: "220 9% 46%"},
	{Name: "Brown", Hex: "#92400E", HSL: "25 83% 31%"},
	{Name: "Beige", Hex: "#D4C5B9", HSL: "30 24% 78%"},
	{Name: "Navy", Hex: "#1E3A8A", HSL: "222 76% 33%"},
	{Name: "Maroon", Hex: "#7F1D1D", HSL: "0 75% 31%"},
	{Name: "Gold", Hex: "#D97706", HSL: "38 92% 43%"},
}

// Colors returns a copy of the color catalog in display order.
func Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// LookupColor finds a color by name or hex code. Both are matched
// case-insensitively and the leading '#' of a hex code is optional.
func LookupColor(nameOrHex string) (Color, bool) {
	key := strings.TrimSpace(nameOrHex)
	if key == "" {
		return Color{}, false
	}
	hex := "#" + strings.TrimPrefix(key, "#")
	return lo.Find(colors, func(c Color) bool {
		return strings.EqualFold(c.Name, key) || strings.EqualFold(c.Hex, hex)
	})
}
