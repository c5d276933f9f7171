package core

// Color is a hex colour string such as "#87CEEB". The empty string means the
// terminal or window default.
type Color string

// Palette shared by the renderers.
const (
	ColorDefault   Color = ""
	ColorSkyTop    Color = "#4A90D9"
	ColorSkyBottom Color = "#87CEEB"
	ColorPipe      Color = "#2E8B57"
	ColorPipeLight Color = "#3CB371"
	ColorPipeDark  Color = "#1E5E3A"
	ColorHero      Color = "#FFD700"
	ColorHeroEye   Color = "#000000"
	ColorBeak      Color = "#FF8C00"
	ColorWindow    Color = "#F5E6A8"
	ColorText      Color = "#FFFFFF"
	ColorHighlight Color = "#00FF00"
	ColorDim       Color = "#666666"
	ColorPanel     Color = "#1B2631"
)
