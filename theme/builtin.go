package theme

func snakeGlyphs(g map[Shape]string) [shapeCount]string {
	var out [shapeCount]string
	for s, v := range g {
		out[s] = v
	}
	return out
}

func uniform(glyph string) [shapeCount]string {
	var out [shapeCount]string
	for s := HeadUp; s < shapeCount; s++ {
		out[s] = glyph
	}
	return out
}

var (
	blue    = Hex("#5f87ff")
	cyan    = Hex("#5fd7d7")
	green   = Hex("#5fd75f")
	magenta = Hex("#d75fd7")
	yellow  = Hex("#ffd75f")
	red     = Hex("#ff5f5f")

	allColors = []Color{blue, cyan, green, magenta, yellow, red}
)

var snakes = map[string]Snake{
	"braille": {Glyphs: snakeGlyphs(map[Shape]string{
		HeadUp:         "⢰⡆",
		HeadDown:       "⠸⠇",
		HeadLeft:       "⠰⠶",
		HeadRight:      "⠶⠆",
		TailUp:         "⠈⠇",
		TailDown:       "⢰⡀",
		TailLeft:       "⠖⠂",
		TailRight:      "⠠⠴",
		BodyVertical:   "⢸⡇",
		BodyHorizontal: "⠶⠶",
		BodyUpRight:    "⠸⠷",
		BodyUpLeft:     "⠾⠇",
		BodyDownRight:  "⢰⡶",
		BodyDownLeft:   "⢶⡆",
	})},
	"line": {Glyphs: snakeGlyphs(map[Shape]string{
		HeadUp:         "╻ ",
		HeadDown:       "╹ ",
		HeadLeft:       " ━",
		HeadRight:      "━ ",
		TailUp:         "╹ ",
		TailDown:       "╻ ",
		TailLeft:       "━ ",
		TailRight:      " ━",
		BodyVertical:   "┃ ",
		BodyHorizontal: "━━",
		BodyUpRight:    "┗━",
		BodyUpLeft:     "┛ ",
		BodyDownRight:  "┏━",
		BodyDownLeft:   "┓ ",
	})},
	"basic": {Glyphs: uniform("[]")},
	"retro": {Glyphs: uniform("██"), Color: green},
}

var boards = map[string]Board{
	"double": {Empty: "  ", Border: &Border{
		Horizontal: "═", Vertical: "║",
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
	}},
	"rounded": {Empty: "  ", Border: &Border{
		Horizontal: "─", Vertical: "│",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	}},
	"ascii": {Empty: "  ", Border: &Border{
		Horizontal: "-", Vertical: "|",
		TopLeft: "*", TopRight: "*", BottomLeft: "*", BottomRight: "*",
	}},
	"classic": {Empty: "` "},
	"empty":   {Empty: "  "},
	"retro":   {Empty: "░░"},
}

var foods = map[string]Food{
	"emoji": {Glyphs: []string{
		"🍎", "🍇", "🍈", "🍉", "🍊", "🍋", "🍌", "🍍", "🥭", "🍏", "🍐", "🍑", "🍒",
		"🍓", "🥝", "🍅", "🌽", "🧀", "🍪", "🍰", "🧁", "🥧",
	}},
	"ascii": {
		Glyphs: []string{"<>", "$$", "{}", "<3", "()", ";;", "&&", "%%", "69"},
		Colors: allColors,
	},
	"star": {
		Glyphs: []string{"★ "},
		Colors: []Color{blue, cyan, magenta, yellow, red},
	},
	"armenian": {
		Glyphs: []string{
			"ա ", "բ ", "գ ", "դ ", "ե ", "զ ", "է ", "ը ", "թ ", "ժ ", "ի ", "լ ", "խ ",
			"ծ ", "կ ", "հ ", "ձ ", "ղ ", "ճ ", "մ ", "յ ", "ն ", "շ ", "ո ", "չ ", "պ ",
			"ջ ", "ռ ", "ս ", "վ ", "տ ", "ր ", "ց ", "ու", "փ ", "ք ", "օ ", "ֆ ", "և ",
		},
		Colors: allColors,
	},
	"greek": {
		Glyphs: []string{
			"α ", "β ", "γ ", "δ ", "ε ", "ζ ", "η ", "θ ", "ι ", "κ ", "λ ", "μ ", "ν ",
			"ξ ", "ο ", "π ", "ρ ", "ς ", "σ ", "τ ", "υ ", "φ ", "χ ", "ψ ", "ω ",
		},
		Colors: allColors,
	},
	"retro": {Glyphs: []string{"██"}, Colors: []Color{red}},
	"braille": {
		Glyphs: []string{"⢾⡷", "⢎⡱", "⡱⢎", "⣏⣹"},
		Colors: allColors,
	},
	"math": {
		Glyphs: []string{
			"∫ ", "∬ ", "∭ ", "⨌ ", "∀ ", "∃ ", "∈ ", "∑ ", "∞ ", "∅ ", "⊆ ", "≥ ", "≈ ",
			"∆x", "∆y", "⇌ ", "± ", "≽ ", "≡ ", "ℝ ", "ℂ ", "ƒ′",
		},
		Colors: []Color{blue, cyan, green, magenta, yellow},
	},
	"chess": {Glyphs: []string{"♚ ", "♛ ", "♜ ", "♝ ", "♞ ", "♟ "}},
}
