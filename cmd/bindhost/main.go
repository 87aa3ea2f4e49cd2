package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/wippyai/gamebind/dispatch"
	"github.com/wippyai/gamebind/game"
	"github.com/wippyai/gamebind/manifest"
	"github.com/wippyai/gamebind/registry"
	gameruntime "github.com/wippyai/gamebind/runtime"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type config struct {
	LogLevel string `env:"GAMEBIND_LOG" envDefault:"warn"`
	NoColor  bool   `env:"NO_COLOR"`
}

func main() {
	var (
		gameFile    = flag.String("game", "", "Path to game definition TOML")
		symbolName  = flag.String("symbol", "", "Dump one symbol's fields and exit")
		list        = flag.Bool("list", false, "List bound symbols and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *gameFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: bindhost -game <game.toml> [-list] [-symbol name]")
		fmt.Fprintln(os.Stderr, "       bindhost -game <game.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	if *interactive {
		if err := runInteractive(*gameFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*gameFile, *symbolName, *list, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return
	}
	registry.SetLogger(logger)
	game.SetLogger(logger)
	gameruntime.SetLogger(logger)
}

func loadSession(gameFile string) (*game.Runtime, *manifest.Manifest, error) {
	m, err := manifest.Load(gameFile)
	if err != nil {
		return nil, nil, err
	}

	rt := game.NewRuntime()
	m.DeclareSchema(rt.Schema)
	res, err := game.InitGameState(rt, m.Entities())
	if res != game.InitNoError {
		return nil, nil, fmt.Errorf("%s: %w", res.Text(), err)
	}
	return rt, m, nil
}

func run(gameFile, symbolName string, listOnly bool, cfg config) error {
	rt, m, err := loadSession(gameFile)
	if err != nil {
		return err
	}
	defer rt.Close()

	color := !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	heading := func(s string) string {
		if color {
			return titleStyle.Render(s)
		}
		return s
	}

	fmt.Printf("%s %s\n", heading("Game:"), m.Game.Title)
	fmt.Printf("Handles: %d\n", rt.Registry.Len())
	fmt.Printf("Symbols: %d\n", rt.Symbols.Len())
	fmt.Printf("Static arrays: %d\n", len(rt.Arrays))

	if symbolName != "" {
		return dumpSymbol(rt, symbolName, color)
	}

	fmt.Printf("\n%s\n", heading("Bound symbols:"))
	for _, name := range rt.Symbols.Names() {
		e, err := rt.Symbols.Resolve(name)
		if err != nil {
			continue
		}
		cat := e.Desc.Category()
		if color {
			cat = typeStyle.Render(cat)
		}
		fmt.Printf("  %-24s %s\n", name, cat)
	}
	if listOnly {
		return nil
	}

	fmt.Printf("\n%s\n", heading("Categories:"))
	for _, cat := range []string{
		game.CategoryCharacter, game.CategoryRoomObject, game.CategoryGUI,
		game.CategoryHotspot, game.CategoryRegion, game.CategoryInvItem,
		game.CategoryDialog,
	} {
		arr, ok := rt.Array(cat)
		if !ok {
			continue
		}
		fmt.Printf("  %-12s %3d bound, stride %d\n", cat, arr.Capacity(), arr.Stride())
	}
	return nil
}

func dumpSymbol(rt *game.Runtime, name string, color bool) error {
	e, err := rt.Symbols.Resolve(name)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s (%s)\n", name, e.Desc.Category())
	for _, f := range e.Desc.Fields() {
		v, err := e.Desc.ReadInt32(e.Ref, f.Offset)
		if err != nil {
			continue
		}
		mode := ""
		if f.Mode == dispatch.ReadOnly {
			mode = " (readonly)"
		}
		line := fmt.Sprintf("  +%-4d %-16s = %d%s", f.Offset, f.Name, v, mode)
		if color {
			line = funcStyle.Render(line)
		}
		fmt.Println(line)
	}
	return nil
}
