package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hopper/internal/application/game"
	"github.com/younwookim/hopper/internal/application/replay"
	"github.com/younwookim/hopper/internal/application/scene/playing"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// loadConfig reads the three config files from dir, or from the embedded
// configs when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// sessionOptions resolves the seed and input source. A replay brings its own
// seed and overrides -seed; otherwise a zero seed is taken from the clock.
func sessionOptions(seed int64, recordPath, replayPath string) (playing.Options, error) {
	opts := playing.Options{Seed: seed, RecordPath: recordPath}

	if replayPath != "" {
		data, err := replay.LoadReplay(replayPath)
		if err != nil {
			return opts, fmt.Errorf("failed to load replay %s: %w", replayPath, err)
		}
		opts.Seed = data.Seed
		opts.Input = replay.NewReplayer(*data)
		return opts, nil
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts, nil
}

func main() {
	// Parse command line flags
	seedFlag := flag.Int64("seed", 0, "Field seed (0 picks one from the clock)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded file instead of reading the keyboard")
	configFlag := flag.String("config", "", "Directory holding physics.json, entities.json and field.json (default: embedded)")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts, err := sessionOptions(*seedFlag, *recordFlag, *replayFlag)
	if err != nil {
		log.Fatalf("Failed to prepare session: %v", err)
	}
	if *replayFlag != "" {
		log.Printf("Replaying %s (seed: %d)", *replayFlag, opts.Seed)
	} else {
		log.Printf("Seed: %d", opts.Seed)
	}

	scn, err := playing.New(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(scn, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Hopper")
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
