package ui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	pointShift float32 = 4
	colorUpper float32 = 0.25
	colorLower float32 = 0.75
	hoverSpeed float32 = 16
	focusSpeed float32 = 16
	wheelSpeed float32 = 0.1
)

// Widget sizes and the gap each one leaves below itself.
var (
	ButtonShape     = rl.Vector2{X: 160, Y: 32}
	buttonTextShift = rl.Vector2{X: 8, Y: 4}
	ToggleShape     = rl.Vector2{X: 24, Y: 24}
	SliderShape     = rl.Vector2{X: 160, Y: 24}
	RecordShape     = rl.Vector2{X: 160, Y: 24}
	recordCaret     = rl.Vector2{X: 2, Y: 16}
	DropShape       = rl.Vector2{X: 24, Y: 24}
	ToolShape       = rl.Vector2{X: 36, Y: 36}
	sliderTrack     = float32(4)
)

const (
	buttonGap float32 = 8
	toggleGap float32 = 8
	sliderGap float32 = 8
	recordGap float32 = 8
	scrollGap float32 = 4
	textGap   float32 = 8

	TextSize    float32 = 24
	TextSpacing float32 = 1

	cardRound     float32 = 0.25
	RoundSegments int32   = 4
	shadowDepth   float32 = 4
	thumbWidth    float32 = 4
)

var (
	PrimaryMain = rl.NewColor(3, 169, 244, 255)
	PrimarySide = rl.NewColor(68, 138, 255, 255)
	TextLight   = rl.NewColor(255, 255, 255, 255)
	TextDark    = rl.NewColor(33, 33, 33, 255)
	Panel       = rl.NewColor(250, 250, 250, 255)
	shadowTop   = rl.NewColor(0, 0, 0, 99)
	shadowEnd   = rl.NewColor(0, 0, 0, 0)
)
