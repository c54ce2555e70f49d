package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// HUD layout (pixels)
const (
	scoreBottomMargin = 50 // score text mid-bottom sits this far above the bottom edge
	boxPadW           = 20
	boxPadH           = 10
	boxLift           = 8
	boxStroke         = 5
	promptOffset      = 50 // restart prompt center below the screen center
)

const (
	gameOverText = "GAME OVER"
	restartText  = "Press space to restart"
)

var (
	colorText  = color.RGBA{240, 240, 240, 255}
	colorDebug = color.RGBA{255, 0, 255, 255}
)

// scoreLayout places the score text and its outline box
func scoreLayout(screenW, screenH int, textW, textH float64) (label, box entity.Rect) {
	anchor := entity.Vec2{X: float64(screenW) / 2, Y: float64(screenH - scoreBottomMargin)}
	label = entity.RectFromMidBottom(anchor, textW, textH)
	return label, outlineBox(label)
}

// gameOverLayout places the title, its box and the restart prompt
func gameOverLayout(screenW, screenH int, titleW, titleH, promptW, promptH float64) (title, box, prompt entity.Rect) {
	center := entity.Vec2{X: float64(screenW) / 2, Y: float64(screenH) / 2}
	title = entity.RectFromCenter(center, titleW, titleH)
	prompt = entity.RectFromCenter(center.Add(entity.Vec2{Y: promptOffset}), promptW, promptH)
	return title, outlineBox(title), prompt
}

func outlineBox(r entity.Rect) entity.Rect {
	return r.Inflate(boxPadW, boxPadH).Move(0, -boxLift)
}

func measure(s string, face *text.GoTextFace) (float64, float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

func drawLabel(screen *ebiten.Image, s string, face *text.GoTextFace, r entity.Rect) {
	if face == nil {
		return
	}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(r.X, r.Y)
	opts.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, face, opts)
}

func strokeRect(screen *ebiten.Image, r entity.Rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, true)
}
