// Command islandnav generates an island from a seed and lets the player walk
// between its regions in a window, a terminal or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"islandnav/pkg/engine/telemetry"
	"islandnav/pkg/engine/terminal"
	"islandnav/pkg/game/activity"
	"islandnav/pkg/game/config"
	"islandnav/pkg/game/devtools"
	"islandnav/pkg/game/i18n"
	"islandnav/pkg/game/logging"
	"islandnav/pkg/game/renderer"
	ebitenrenderer "islandnav/pkg/game/renderer/ebiten"
	"islandnav/pkg/game/renderer/tui"
	"islandnav/pkg/game/world"
)

// tuiLogFile receives logs when the terminal backend owns the screen.
const tuiLogFile = "islandnav.log"

type options struct {
	configPath string
	seed       int64
	backend    string
	locale     string
	dump       string
}

func main() {
	// Load .env for local development; ISLANDNAV_CONFIG and OTEL_* may live there.
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.configPath, "config", os.Getenv("ISLANDNAV_CONFIG"), "path to a TOML config file")
	flag.Int64Var(&opts.seed, "seed", 0, "island seed (0 keeps the configured seed)")
	flag.StringVar(&opts.backend, "renderer", "", "display backend: ebiten, tui or none")
	flag.StringVar(&opts.locale, "locale", "", "UI language, e.g. en_GB or es")
	flag.StringVar(&opts.dump, "dump", "", "write a map dump to this file ('-' for stdout) and exit")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "islandnav: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn("telemetry setup failed, running without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	dispatcher, err := newDispatcher(cfg.Activity, log)
	if err != nil {
		return err
	}
	if c, ok := dispatcher.(interface{ Close() }); ok {
		defer c.Close()
	}

	w, err := world.New(ctx, cfg,
		world.WithLogger(log),
		world.WithDispatcher(dispatcher),
		world.WithCatalog(i18n.New(cfg.Display.LocalesDir, cfg.Display.Locale)),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	if opts.dump != "" {
		return dumpMap(w, opts.dump, log)
	}

	renderer.SetRenderer(newRenderer(cfg, log))
	log.Info("starting", zap.String("renderer", renderer.Current.Name()), zap.Int64("seed", w.Seed()))
	if err := renderer.Run(ctx, w); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadConfig reads the config file, if any, then applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.backend != "" {
		cfg.Display.Renderer = opts.backend
	}
	if opts.locale != "" {
		cfg.Display.Locale = opts.locale
	}
	if cfg.Display.Renderer == "tui" && cfg.Logging.File == "" {
		cfg.Logging.File = tuiLogFile
	}
	return cfg, cfg.Validate()
}

func newDispatcher(cfg config.ActivityConfig, log *zap.Logger) (activity.Dispatcher, error) {
	if cfg.Script == "" {
		return activity.NewLogDispatcher(log), nil
	}
	d, err := activity.NewLuaDispatcher(cfg.Script, log)
	if err != nil {
		return nil, fmt.Errorf("activity script: %w", err)
	}
	return d, nil
}

func newRenderer(cfg *config.Config, log *zap.Logger) renderer.Renderer {
	switch cfg.Display.Renderer {
	case "tui":
		return tui.New(log)
	case "none":
		return renderer.NewHeadless(log)
	default:
		return ebitenrenderer.New(log, int(cfg.Camera.ViewportW), int(cfg.Camera.ViewportH))
	}
}

func dumpMap(w *world.World, dest string, log *zap.Logger) error {
	if dest == "-" {
		color := terminal.IsTerminal()
		if cols := w.Terrain().Grid.Cols(); color && cols > terminal.GetWidth() {
			log.Warn("map is wider than the terminal", zap.Int("cols", cols), zap.Int("width", terminal.GetWidth()))
		}
		return devtools.DumpMap(os.Stdout, w, devtools.DumpOptions{Color: color, Decorations: true})
	}
	path, err := devtools.DumpMapToFile(w, dest)
	if err != nil {
		return err
	}
	log.Info("map dumped", zap.String("path", path))
	return nil
}
