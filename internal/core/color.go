package core

// Color is a terminal foreground color: an ANSI 256 index ("2") or a hex
// value ("#50B450"). The empty string means the terminal default.
type Color string

// Palette used by the renderer.
const (
	ColorDefault      Color = ""
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorBlue         Color = "4"
	ColorMagenta      Color = "5"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightRed    Color = "9"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightBlue   Color = "12"
	ColorBrightCyan   Color = "14"
	ColorBrightWhite  Color = "15"
	ColorOrange       Color = "208"
	ColorGray         Color = "245"
	ColorNightGround  Color = "238"
)
