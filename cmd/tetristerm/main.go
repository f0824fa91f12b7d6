package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"golang.org/x/term"
)

var (
	logPath    string
	seed       int64
	themeName  string
	themesPath string
	demoMoves  int
	noColor    bool

	logDebug   bool
	logVerbose bool
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// loadTheme looks up name among the themes in path, falling back to the
// built in themes.
func loadTheme(name, path string) (gui.Theme, error) {
	var themes []gui.ThemeHex
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return gui.Theme{}, fmt.Errorf("failed to open themes: %w", err)
		}
		defer f.Close()

		themes, err = gui.ReadThemes(f)
		if err != nil {
			return gui.Theme{}, err
		}
	}

	return gui.ImportThemes(name, themes)
}

func main() {
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.Int64Var(&seed, "seed", 0, "seed for the piece generator (0 picks one from the clock)")
	flag.StringVar(&themeName, "theme", gui.ThemeBasic.Name, "color theme")
	flag.StringVar(&themesPath, "themes", "", "path to a JSON file with additional themes")
	flag.IntVar(&demoMoves, "demo", 0, "play N random moves without the UI and print the board")
	flag.BoolVar(&noColor, "no-color", false, "print the demo board without colors")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.BoolVar(&logVerbose, "verbose", false, "enable verbose logging")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if demoMoves > 0 {
		if noColor {
			color.NoColor = true
		}

		if err := runDemo(os.Stdout, seed, demoMoves, color.NoColor); err != nil {
			log.Fatalf("failed to run demo: %s", err)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	theme, err := loadTheme(themeName, themesPath)
	if err != nil {
		log.Fatalf("failed to load theme: %s", err)
	}

	name := pkg.SessionName()
	if err := pkg.InitLog(logPath, name+": "); err != nil {
		log.Fatalf("failed to initialize log: %s", err)
	}

	logLevel := game.LogStandard
	if logVerbose {
		logLevel = game.LogVerbose
	} else if logDebug {
		logLevel = game.LogDebug
	}

	logger := make(chan string, game.LogQueueSize)
	g := game.NewGame(seed, logger)
	g.LogLevel = logLevel

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		cancel()
	}()

	cl := pkg.NewClient(g, logger, theme, name)
	if err := cl.Run(ctx); err != nil {
		log.Fatalf("failed to run %s: %s", name, err)
	}

	s := g.Snapshot()
	fmt.Printf("Best score %d over %d games (seed %d)\n", s.Best, s.Games, s.Seed)
}
