package charts

import "github.com/ukaji3/intdash-go/pkg/intdash/models"

// Report colors.
const (
	ColorPrimary   = "#0ea5e9"
	ColorSecondary = "#06b6d4"
	ColorAccent    = "#f59e0b"
	ColorSuccess   = "#22c55e"
	ColorDanger    = "#ef4444"
	ColorDark      = "#0f172a"
	ColorDarkLight = "#1e293b"
	ColorGray      = "#64748b"
	ColorLight     = "#f1f5f9"

	colorSource = "#f97316"
	colorCarbon = "#8b5cf6"
	colorGrid   = "rgba(255,255,255,0.1)"
	colorLink   = "rgba(100,100,100,0.15)"
)

// Palette lists the colors as CSS custom properties, in a fixed order.
var Palette = []models.PaletteEntry{
	{Name: "primary", Value: ColorPrimary},
	{Name: "secondary", Value: ColorSecondary},
	{Name: "accent", Value: ColorAccent},
	{Name: "success", Value: ColorSuccess},
	{Name: "danger", Value: ColorDanger},
	{Name: "dark", Value: ColorDark},
	{Name: "dark-light", Value: ColorDarkLight},
	{Name: "gray", Value: ColorGray},
	{Name: "light", Value: ColorLight},
}

// Fonts are the font families per report language.
var Fonts = map[models.Lang]string{
	models.LangEN: "Inter",
	models.LangAR: "Cairo",
}

// Font returns the font family for lang.
func Font(lang models.Lang) string {
	if f, ok := Fonts[lang]; ok {
		return f
	}
	return Fonts[models.LangEN]
}
