// Command worm runs the Worm game in a text terminal.
//
// It supports four subcommands:
//  1. "play" (default) – interactive game in the terminal, optionally steered by the autopilot
//  2. "autoplay" – headless games played by the autopilot, printed as a summary
//  3. "configs" – lists the settings profiles in the config directory
//  4. "init-config" – writes the bundled settings profiles
//
// The config directory comes from --config-dir or WORM_CONFIG_DIR; a .env
// file in the working directory is loaded first.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/worm-game/game/autopilot"
	"github.com/wricardo/worm-game/game/config"
	"github.com/wricardo/worm-game/game/engine"
	"github.com/wricardo/worm-game/game/service"
	"github.com/wricardo/worm-game/game/session"
	"github.com/wricardo/worm-game/transport/sound"
	"github.com/wricardo/worm-game/transport/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "worm"
)

// Log file used while the terminal is owned by the game
const debugLogFile = "logs/worm.log"

// main loads .env, builds the command tree and runs it until a signal arrives.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// newCommand builds the command tree
func newCommand() *cli.Command {
	// Flags carry parse state, so each subcommand gets its own
	configFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "settings profile name (default profile when empty)",
			Sources: cli.EnvVars("WORM_CONFIG"),
		}
	}

	return &cli.Command{
		Name:           AppName,
		Usage:          "steer a worm around a fenced field and eat all the food",
		Version:        Version,
		DefaultCommand: "play",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing settings profiles",
				Sources: cli.EnvVars("WORM_CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write debug logs to " + debugLogFile,
				Sources: cli.EnvVars("WORM_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, setupLogging(cmd.Bool("debug"))
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play in the terminal",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "autopilot", Usage: "let the autopilot steer"},
					&cli.BoolFlag{Name: "no-sound", Usage: "disable sound effects"},
				},
				Action: runPlay,
			},
			{
				Name:  "autoplay",
				Usage: "run headless games steered by the autopilot",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{Name: "games", Value: 1, Usage: "number of games run concurrently"},
					&cli.IntFlag{Name: "max-ticks", Value: 10000, Usage: "tick limit per game"},
					&cli.BoolFlag{Name: "json", Usage: "print results as JSON"},
				},
				Action: runAutoplay,
			},
			{
				Name:   "configs",
				Usage:  "list settings profiles",
				Action: runListConfigs,
			},
			{
				Name:  "init-config",
				Usage: "write the bundled settings profiles to the config directory",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "overwrite existing files"},
				},
				Action: runInitConfig,
			},
		},
	}
}

// setupLogging sends logs to a file in debug mode and discards them
// otherwise, since the screen belongs to the game.
func setupLogging(debug bool) error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(debugLogFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", AppName, Version)
	return nil
}

// resolveConfig loads the requested profile from the config directory
func resolveConfig(cmd *cli.Command) (*engine.GameConfig, error) {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	return manager.Resolve(cmd.String("config"))
}

// runPlay runs one interactive game
func runPlay(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	result, err := playInTerminal(ctx, cfg, cmd.Bool("autopilot"), cfg.Sound && !cmd.Bool("no-sound"))
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Fprintf(cmd.Root().Writer, "%s  (length %d, %d ticks)\n", result.Message, result.Length, result.Ticks)
	}
	return nil
}

// playInTerminal owns the terminal for the duration of one game. A nil result
// means the player quit at the welcome screen.
func playInTerminal(ctx context.Context, cfg *engine.GameConfig, pilot, withSound bool) (*service.Result, error) {
	term, err := terminal.Open(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	defer term.Close()

	player := sound.NewPlayer(sound.DefaultVolume)
	if withSound {
		if err := player.Open(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	defer player.Close()

	sess, err := session.NewManager().Create("", cfg)
	if err != nil {
		return nil, err
	}

	term.Render(sess.Frame())
	term.ShowDialog(cfg.Messages.Welcome)
	if quit, err := term.WaitKey(ctx); err != nil || quit {
		return nil, ignoreCancel(err)
	}

	opts := []service.Option{
		service.WithInputs(term),
		service.WithRenderer(term),
		service.WithSound(player),
	}
	if pilot {
		opts = append(opts, service.WithPilot(autopilot.New()))
	}

	runCtx, cancel := context.WithCancel(ctx)
	result, err := service.NewGameService(sess, opts...).Run(runCtx)
	cancel()
	if err != nil {
		return nil, ignoreCancel(err)
	}

	if result.State != engine.QuitRequested {
		term.ShowDialog(result.Message, cfg.Messages.PressKey)
		if _, err := term.WaitKey(ctx); err != nil {
			return result, ignoreCancel(err)
		}
	}
	return result, nil
}

// ignoreCancel treats an interrupted game as a normal exit
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runAutoplay plays headless games concurrently and prints their results
func runAutoplay(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	games := int(cmd.Int("games"))
	if games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", games)
	}

	results, err := autoplay(ctx, cfg, games, int(cmd.Int("max-ticks")))
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if cmd.Bool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return printResults(w, results)
}

// autoplay runs games sessions side by side, each with its own autopilot
func autoplay(ctx context.Context, cfg *engine.GameConfig, games, maxTicks int) ([]*service.Result, error) {
	sessions := session.NewManager()
	results := make([]*service.Result, games)
	errs := make([]error, games)

	var wg sync.WaitGroup
	for i := 0; i < games; i++ {
		sess, err := sessions.Create("", cfg)
		if err != nil {
			return nil, err
		}

		wg.Add(1)
		go func(i int, sess *session.Session) {
			defer wg.Done()
			svc := service.NewGameService(sess,
				service.WithPilot(autopilot.New()),
				service.WithTickInterval(0),
				service.WithMaxTicks(maxTicks),
			)
			results[i], errs[i] = svc.Run(ctx)
		}(i, sess)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	log.Printf("Autoplay finished %d games", sessions.Count())
	return results, nil
}

// printResults writes one row per game
func printResults(w io.Writer, results []*service.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tSTATE\tTICKS\tLENGTH\tEATEN\tLEFT")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", r.SessionID, r.State, r.Ticks, r.Length, r.FoodEaten, r.FoodRemaining)
	}
	return tw.Flush()
}

// runListConfigs prints the profiles of the config directory
func runListConfigs(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSIZE\tTICK\tTAIL FREE\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%dx%d\t%dms\t%v\t%s\n", info.ConfigID, info.Rows, info.Cols, info.TickMillis, info.TailIsFree, info.Description)
	}
	return tw.Flush()
}

// bundledProfiles are the profiles written by init-config
func bundledProfiles() map[string]*engine.GameConfig {
	classic := engine.DefaultConfig()

	relaxed := engine.DefaultConfig()
	relaxed.Name = "relaxed"
	relaxed.Description = "Classic field at a slower pace"
	relaxed.TickMillis = 150

	strict := engine.DefaultConfig()
	strict.Name = "strict"
	strict.Description = "The cell the tail is leaving still counts as occupied"
	strict.TailIsFree = false

	return map[string]*engine.GameConfig{
		config.DefaultName: classic,
		"relaxed":          relaxed,
		"strict":           strict,
	}
}

// runInitConfig writes the bundled profiles, keeping existing files unless forced
func runInitConfig(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("config-dir")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	profiles := bundledProfiles()
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	w := cmd.Root().Writer
	for _, name := range names {
		profile := profiles[name]
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
			fmt.Fprintf(w, "skipped %s (exists)\n", path)
			continue
		}
		if err := manager.SaveConfig(name, profile); err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
		fmt.Fprintf(w, "wrote %s\n", path)
	}
	return nil
}
