// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/spaceshooter/internal/application/scene"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/application/state"
	"github.com/younwookim/spaceshooter/internal/application/system"
	"github.com/younwookim/spaceshooter/internal/domain/entity"
	"github.com/younwookim/spaceshooter/internal/ecs"
	"github.com/younwookim/spaceshooter/internal/infrastructure/assets"
	"github.com/younwookim/spaceshooter/internal/infrastructure/audio"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// colorBackground is used when the configured color does not parse
var colorBackground = color.RGBA{0x3a, 0x2e, 0x3f, 255}

// Options wires the scene to its collaborators. Zero values select the
// live keyboard, the wall clock, no rendering assets and no sound.
type Options struct {
	Seed       int64
	RecordPath string             // "" disables recording
	Input      system.InputSource // gameplay input
	Keys       system.InputSource // quit, debug and save keys
	Clock      system.Clock
	Library    *assets.Library
	Audio      *audio.Manager
}

// finisher is implemented by input sources that can run out (replays)
type finisher interface {
	Done() bool
}

// Playing is the main gameplay scene
type Playing struct {
	config     *config.GameConfig
	session    *session.Session
	input      system.InputSource
	keys       system.InputSource
	clock      *system.FrameClock
	lib        *assets.Library
	audio      *audio.Manager
	background color.RGBA
	screenW    int
	screenH    int

	started     bool
	debug       bool
	replayEnded bool

	// Deterministic RNG
	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// The session starts on the first Update so that the first frame's clock
// reading is the session start.
func New(cfg *config.GameConfig, opts Options) *Playing {
	rng := rand.New(rand.NewSource(opts.Seed))

	var sprites entity.SpriteSet
	if opts.Library != nil {
		sprites = opts.Library.Sprites
	} else {
		sprites = assets.Procedural(cfg.Explosion.Frames).Sprites()
	}

	var sounds entity.SoundPlayer
	if opts.Audio != nil {
		sounds = opts.Audio
	}

	bg, err := cfg.Display.BackgroundColor()
	if err != nil {
		log.Printf("[Playing] Warning: %v, using default background", err)
		bg = colorBackground
	}

	p := &Playing{
		config:         cfg,
		session:        session.New(cfg, sprites, rng, sounds),
		input:          opts.Input,
		keys:           opts.Keys,
		lib:            opts.Library,
		audio:          opts.Audio,
		background:     bg,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		seed:           opts.Seed,
		recordFilename: opts.RecordPath,
	}

	keyboard := system.NewInputSystem()
	if p.input == nil {
		p.input = keyboard
	}
	if p.keys == nil {
		p.keys = keyboard
	}
	clock := opts.Clock
	if clock == nil {
		clock = system.NewSystemClock()
	}
	p.clock = system.NewFrameClock(clock)

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	keys := p.keys.GetInput()
	if keys.Quit {
		return nil, ebiten.Termination
	}
	if keys.Debug {
		p.debug = !p.debug
	}
	// F5: Save recording manually
	if keys.Save {
		p.saveRecording()
	}

	input := p.input.GetInput()
	now, dt := p.clock.Tick()

	if !p.started {
		p.start(now)
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(now, input)
	}

	p.session.Step(session.Frame{Now: now, DT: dt, Input: input})
	p.handleEvents()
	p.checkReplayEnd()

	return nil, nil // nil = stay on this scene
}

func (p *Playing) start(now time.Duration) {
	p.started = true
	p.session.Start(now)
	log.Printf("[Playing] Session started (seed: %d)", p.seed)

	// Initialize recorder if recording is enabled
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, now)
		log.Printf("[Playing] Recording enabled: %s (seed: %d)", p.recordFilename, p.seed)
	}
}

func (p *Playing) handleEvents() {
	for _, ev := range p.session.Events() {
		switch e := ev.(type) {
		case system.SessionStarted:
			log.Printf("[Playing] Restarted")
		case system.PlayerHit:
			log.Printf("[Playing] Game over (score: %d, meteors: %d)", int(e.Score), e.Meteors)
			// Auto-save recording on game over
			p.saveRecording()
		}
	}
}

func (p *Playing) checkReplayEnd() {
	f, ok := p.input.(finisher)
	if !ok || p.replayEnded || !f.Done() {
		return
	}
	p.replayEnded = true
	log.Printf("[Playing] Replay finished after %d frames (score: %d, state: %s)",
		p.session.Frames(), p.session.DisplayScore(), p.session.State())
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("[Playing] Failed to save recording: %v", err)
	} else {
		log.Printf("[Playing] Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen.
// In GameOver the frozen last frame stays visible under the message.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)
	if p.lib == nil {
		return
	}

	p.drawScore(screen)
	p.drawEntities(screen)

	if p.session.State() == state.StateGameOver {
		p.drawGameOver(screen)
	}

	if p.debug {
		p.drawBounds(screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  entities: %d  frame: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), p.session.Count(ecs.All), p.session.Frames()))
	}
}

func (p *Playing) drawScore(screen *ebiten.Image) {
	s := strconv.Itoa(p.session.DisplayScore())
	w, h := measure(s, p.lib.Face)
	label, box := scoreLayout(p.screenW, p.screenH, w, h)
	drawLabel(screen, s, p.lib.Face, label)
	strokeRect(screen, box, boxStroke, colorText)
}

// drawEntities draws every live entity in registry order, centered on its
// position. Rotating entities turn counter-clockwise on screen.
func (p *Playing) drawEntities(screen *ebiten.Image) {
	p.session.Each(ecs.All, func(e entity.Entity) {
		sp := e.Sprite()
		img := p.lib.Image(sp.Key)
		if img == nil {
			return
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(sp.W)/2, -float64(sp.H)/2)
		if r, ok := e.(entity.Rotator); ok {
			// GeoM rotates clockwise in screen space
			op.GeoM.Rotate(-r.Rotation() * math.Pi / 180)
			op.Filter = ebiten.FilterLinear
		}
		pos := e.Position()
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(img, op)
	})
}

func (p *Playing) drawGameOver(screen *ebiten.Image) {
	tw, th := measure(gameOverText, p.lib.Face)
	pw, ph := measure(restartText, p.lib.Face)
	title, box, prompt := gameOverLayout(p.screenW, p.screenH, tw, th, pw, ph)

	drawLabel(screen, gameOverText, p.lib.Face, title)
	strokeRect(screen, box, boxStroke, colorText)
	drawLabel(screen, restartText, p.lib.Face, prompt)
}

// drawBounds outlines every collision box (Tab)
func (p *Playing) drawBounds(screen *ebiten.Image) {
	p.session.Each(ecs.All, func(e entity.Entity) {
		if e.Kind() == entity.KindStar {
			return
		}
		strokeRect(screen, e.Bounds(), 1, colorDebug)
	})
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.audio.PlayMusic(entity.MusicGame)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	p.audio.StopMusic()
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Seed returns the RNG seed of this scene
func (p *Playing) Seed() int64 {
	return p.seed
}
