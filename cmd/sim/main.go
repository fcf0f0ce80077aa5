// Command sim runs the simulation headless with a seed and a scripted input
// pattern, then prints a summary. It is meant for tuning the field configs.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/younwookim/hopper/internal/application/session"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorInfo  = color.New(color.FgCyan)
	colorRamp  = color.New(color.FgYellow)
	colorAlert = color.New(color.FgRed)
)

// report summarizes a headless run
type report struct {
	Seed     int64
	Pattern  string
	Frames   int
	Score    int
	Landings int
	Springs  int
	Clouds   int
	Ramps    []system.RampEvent
	Frozen   *system.FrozenEvent
	Platform int // Live platforms at the end
}

// run simulates up to frames frames, stopping early on a freeze
func run(cfg *config.GameConfig, seed int64, frames int, pattern string) (report, error) {
	p, err := newPilot(pattern)
	if err != nil {
		return report{}, err
	}

	sess, err := session.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return report{}, fmt.Errorf("failed to create session: %w", err)
	}

	r := report{Seed: seed, Pattern: pattern}
	for i := 0; i < frames && sess.State() != state.StateFrozen; i++ {
		for _, e := range sess.Update(p.Next(sess)) {
			switch ev := e.(type) {
			case system.LandedEvent:
				r.Landings++
				if ev.OnSpring {
					r.Springs++
				}
				if ev.Cloud {
					r.Clouds++
				}
			case system.RampEvent:
				r.Ramps = append(r.Ramps, ev)
			case system.FrozenEvent:
				r.Frozen = &ev
			}
		}
	}

	r.Frames = sess.Frame()
	r.Score = sess.Score()
	r.Platform = len(sess.Field().Platforms())
	return r, nil
}

func printReport(w io.Writer, r report) {
	colorTitle.Fprintf(w, "hopper sim: seed %d, pattern %s\n", r.Seed, r.Pattern)
	colorInfo.Fprintf(w, "frames %d  score %d  platforms %d\n", r.Frames, r.Score, r.Platform)
	colorInfo.Fprintf(w, "landings %d (springs %d, clouds %d)\n", r.Landings, r.Springs, r.Clouds)
	for _, ev := range r.Ramps {
		colorRamp.Fprintf(w, "  ramp at %d: %d platforms, speed %.1f, cloud %.2f, move %.2f\n",
			ev.Score, ev.TargetCount, ev.Speed, ev.CloudOdds, ev.MoveOdds)
	}
	if r.Frozen != nil {
		colorAlert.Fprintf(w, "frozen at frame %d with score %d\n", r.Frozen.Frame, r.Frozen.Score)
	}
}

func main() {
	seedFlag := flag.Int64("seed", 1, "Field seed")
	framesFlag := flag.Int("frames", 3600, "Maximum frames to simulate")
	patternFlag := flag.String("pattern", "seek", "Input pattern: idle, hop, zigzag or seek")
	configFlag := flag.String("config", "", "Directory holding physics.json, entities.json and field.json (default: built-in)")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	if *noColorFlag {
		color.NoColor = true
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.NewLoader(*configFlag).LoadAll()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	r, err := run(cfg, *seedFlag, *framesFlag, *patternFlag)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	printReport(os.Stdout, r)
}
