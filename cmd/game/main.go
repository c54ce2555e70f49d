package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/scene/playing"
	"github.com/younwookim/spaceshooter/internal/infrastructure/assets"
	"github.com/younwookim/spaceshooter/internal/infrastructure/audio"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// loadConfig reads path, or the embedded configs/game.yaml when path is empty
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		loader, name := config.NewFileLoader(path)
		return loader.Load(name)
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// resolveSeed returns seed, or a time based one when seed is 0
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// loadSounds synthesizes every clip unless the asset directory overrides it
func loadSounds(cfg *config.GameConfig) (*audio.Bank, error) {
	if cfg.Assets.Dir == "" {
		return audio.SynthBank(cfg.Audio), nil
	}
	return audio.LoadBank(os.DirFS(cfg.Assets.Dir), cfg.Audio)
}

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Config file (default: embedded configs/game.yaml)")
	assetsFlag := flag.String("assets", "", "Asset directory with images/, audio/ and the font")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetsFlag != "" {
		cfg.Assets.Dir = *assetsFlag
	}
	if *muteFlag {
		cfg.Audio.Mute = true
	}

	lib, err := assets.Load(cfg.Assets, cfg.Explosion.Frames)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	bank, err := loadSounds(cfg)
	if err != nil {
		log.Fatalf("Failed to load sounds: %v", err)
	}
	var audioCtx *ebitenaudio.Context
	if !cfg.Audio.Mute {
		audioCtx = ebitenaudio.NewContext(cfg.Audio.SampleRate)
	}

	opts := playing.Options{
		Seed:       resolveSeed(*seedFlag),
		RecordPath: *recordFlag,
		Library:    lib,
		Audio:      audio.NewManager(audioCtx, bank, cfg.Audio.Mute),
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer := replay.NewReplayer(*data)
		opts.Seed = data.Seed
		opts.Input = replayer
		opts.Clock = replayer.Clock()
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, len(data.Frames), data.Seed)
	}

	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	g := game.New(playing.New(cfg, opts), w, h)
	g.SetTPS(cfg.Display.TPS)

	// Set up ebiten
	ebiten.SetWindowSize(int(float64(w)*cfg.Display.Scale), int(float64(h)*cfg.Display.Scale))
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)
	// Closing the window goes through the quit key path so recordings are saved
	ebiten.SetWindowClosingHandled(true)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
