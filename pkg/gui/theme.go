package gui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name    string      `json:"name"`
	Cyan    tcell.Color `json:"cyan"`
	Blue    tcell.Color `json:"blue"`
	Orange  tcell.Color `json:"orange"`
	Yellow  tcell.Color `json:"yellow"`
	Green   tcell.Color `json:"green"`
	Magenta tcell.Color `json:"magenta"`
	Red     tcell.Color `json:"red"`
	Border  tcell.Color `json:"border"`
	Label   tcell.Color `json:"label"`
	Value   tcell.Color `json:"value"`
	Msg     tcell.Color `json:"msg"`
}

// ThemeHex is the form a Theme takes in a theme file
type ThemeHex struct {
	Name    string `json:"name"`
	Cyan    string `json:"cyan"`
	Blue    string `json:"blue"`
	Orange  string `json:"orange"`
	Yellow  string `json:"yellow"`
	Green   string `json:"green"`
	Magenta string `json:"magenta"`
	Red     string `json:"red"`
	Border  string `json:"border"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Msg     string `json:"msg"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Cyan.Hex()),
		fmtHex(t.Blue.Hex()),
		fmtHex(t.Orange.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Magenta.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Value.Hex()),
		fmtHex(t.Msg.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Cyan),
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.Orange),
		tcell.GetColor(t.Yellow),
		tcell.GetColor(t.Green),
		tcell.GetColor(t.Magenta),
		tcell.GetColor(t.Red),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Value),
		tcell.GetColor(t.Msg),
	}
}

// Block returns the color a locked block is drawn with. BlockNone has no
// color and is never drawn as a block.
func (t Theme) Block(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockCyan:
		return t.Cyan
	case mino.BlockBlue:
		return t.Blue
	case mino.BlockOrange:
		return t.Orange
	case mino.BlockYellow:
		return t.Yellow
	case mino.BlockGreen:
		return t.Green
	case mino.BlockMagenta:
		return t.Magenta
	case mino.BlockRed:
		return t.Red
	default:
		return tcell.ColorDefault
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// Built in themes may be overridden by the config
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("theme: no theme named %q", want)
}

// ReadThemes decodes a JSON array of themes
func ReadThemes(r io.Reader) ([]ThemeHex, error) {
	var themes []ThemeHex
	if err := json.NewDecoder(r).Decode(&themes); err != nil {
		return nil, fmt.Errorf("theme: failed to decode themes: %w", err)
	}

	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                     // Name
	tcell.NewHexColor(0x00eeee), // Cyan
	tcell.NewHexColor(0x2864ff), // Blue
	tcell.NewHexColor(0xff7308), // Orange
	tcell.NewHexColor(0xdddd00), // Yellow
	tcell.NewHexColor(0x00e900), // Green
	tcell.NewHexColor(0xc000cc), // Magenta
	tcell.NewHexColor(0xee0000), // Red
	tcell.Color247,              // Border
	tcell.Color247,              // Label
	tcell.ColorDefault,          // Value
	tcell.Color160,              // Msg
}

// ThemeTerm sticks to the 16 colors every terminal has
var ThemeTerm = Theme{
	"term",             // Name
	tcell.ColorTeal,    // Cyan
	tcell.ColorNavy,    // Blue
	tcell.ColorOlive,   // Orange
	tcell.ColorYellow,  // Yellow
	tcell.ColorGreen,   // Green
	tcell.ColorPurple,  // Magenta
	tcell.ColorMaroon,  // Red
	tcell.ColorSilver,  // Border
	tcell.ColorSilver,  // Label
	tcell.ColorDefault, // Value
	tcell.ColorRed,     // Msg
}

// Themes are the built in themes
var Themes = []Theme{ThemeBasic, ThemeTerm}
