package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"dungeon-crawl/config"
	"dungeon-crawl/engine"
	"dungeon-crawl/rng"
	"dungeon-crawl/systems"
)

func main() {
	cfg := config.Default()
	headless := 0

	// Flags come in pairs: --seed N, --monsters N, --headless T
	args := os.Args[1:]
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			log.Fatalf("missing value for %s", args[i])
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			log.Fatalf("bad value for %s: %v", args[i], err)
		}
		switch args[i] {
		case "--seed":
			cfg.Seed = int64(n)
		case "--monsters":
			cfg.MonsterCount = n
		case "--headless":
			headless = n
		default:
			log.Fatalf("unknown flag %s", args[i])
		}
	}

	gotext.Configure("locales", "en_GB", "default")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	state, err := engine.New(engine.Options{Config: cfg, Logger: logger})
	if err != nil {
		log.Fatal(err)
	}

	if headless > 0 {
		if err := runHeadless(state, cfg.Seed, headless); err != nil {
			log.Fatal(err)
		}
		return
	}

	windowWidth, windowHeight := config.GetScreenDimensions()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Dungeon Crawl")
	if err := ebiten.RunGame(NewGame(state)); err != nil {
		log.Fatal(err)
	}
}

// runHeadless plays ticks turns with random keys and prints a summary
func runHeadless(state *engine.State, seed int64, ticks int) error {
	keys := []systems.Key{systems.KeyLeft, systems.KeyRight, systems.KeyUp, systems.KeyDown, systems.KeyOther}
	r := rng.New(seed + 1)
	resets := 0

	for i := 0; i < ticks; i++ {
		key := keys[r.Index(len(keys))]
		if state.TurnState().Terminal() {
			key = systems.KeyConfirm
			resets++
		}
		if err := state.Tick(key); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
	}

	health, _ := state.PlayerHealth()
	pos, _ := state.PlayerPosition()
	fmt.Printf("ticks=%d resets=%d state=%s architect=%s theme=%s\n",
		ticks, resets, state.TurnState(), state.Architect(), state.Theme())
	fmt.Printf("player=%v hp=%d/%d monsters=%d\n",
		pos, health.Current, health.Max, state.Registry().Enemies.Len())
	for _, msg := range state.Messages(5) {
		fmt.Println(" ", msg.Text)
	}
	return nil
}
