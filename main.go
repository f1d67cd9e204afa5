// tesuji-arena is a terminal arena where Go-playing strategies play each other.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"
	"unicode"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/rivo/tview"

	"tesuji-arena/config"
	"tesuji-arena/engine"
	"tesuji-arena/game"
	"tesuji-arena/policy"
	"tesuji-arena/sgf"
	"tesuji-arena/strategy"
	"tesuji-arena/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagConfig       = flag.String("config", "", "Config file (default: XDG config dir)")
	flagBoardSize    = flag.Int("boardsize", 0, "Board size (2-25)")
	flagModel        = flag.String("model", "", "Policy model file (go-deep JSON)")
	flagPolicyWeight = flag.Float64("policy-weight", -1, "Weight of the policy strategy")
	flagRandomWeight = flag.Float64("random-weight", -1, "Weight of the random strategy")
	flagDelay        = flag.Duration("delay", -1, "Pause between turns")
	flagTimeout      = flag.Duration("timeout", -1, "Per-turn deadline; a strategy running out of time passes")
	flagMaxTurns     = flag.Int("max-turns", -1, "Turn cap per game (0: unbounded)")
	flagTerritory    = flag.String("territory", "", "Territory policy: both-players or always")
	flagSeed         = flag.Int64("seed", 0, "Random seed (0: from the clock)")
	flagOpening      = flag.String("opening", "", "Opening moves in GTP notation, e.g. \"D4,Q16\"")
	flagExportModel  = flag.String("export-model", "", "Write the configured policy model to this file and exit")
	flagHeadless     = flag.Bool("headless", false, "Print the game as coloured text instead of the UI")
	flagGames        = flag.Int("games", 0, "Play this many games in batch and print a summary")
	flagAnalyze      = flag.String("analyze", "", "Replay an SGF file, or browse a directory of them, for review")
	flagPlay         = flag.Bool("play", false, "Start watching immediately with the configured settings")
	flagNoColor      = flag.Bool("no-color", false, "Disable colours in text output")
	flagVersion      = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var spectator *ui.Spectator
var cfg *config.Config

// backPage is the page the game view returns to.
var backPage = "setup"

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("tesuji-arena %s\n", Version)
		return
	}

	var err error
	if *flagConfig != "" {
		cfg, err = config.LoadFile(*flagConfig)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if closeLog, err := openDebugLog(); err == nil {
		defer closeLog()
	}

	gameCfg := gameConfigFromFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *flagExportModel != "":
		err = exportModel(ctx, gameCfg, *flagExportModel)
	case *flagAnalyze != "" && *flagHeadless:
		err = analyzeHeadless(*flagAnalyze, gameCfg)
	case *flagGames > 0:
		err = runBatch(ctx, gameCfg, *flagGames)
	case *flagHeadless:
		err = ui.RunHeadless(ctx, gameCfg, textRenderer(gameCfg))
	default:
		err = runUI(ctx, gameCfg)
	}
	if err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDebugLog points the game and strategy debug logs at the XDG state directory.
func openDebugLog() (func(), error) {
	path, err := xdg.StateFile("tesuji-arena/debug.log")
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	game.SetDebugOutput(f)
	strategy.SetDebugOutput(f)
	return func() {
		game.SetDebugOutput(io.Discard)
		strategy.SetDebugOutput(io.Discard)
		f.Close()
	}, nil
}

// gameConfigFromFlags applies the command-line overrides to the configured arena settings.
// Only flags given on the command line override; invalid values exit with status 2.
func gameConfigFromFlags() engine.GameConfig {
	if err := applyFlags(&cfg.Arena); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg.GameConfig()
}

func applyFlags(a *config.ArenaConfig) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "boardsize":
			a.BoardSize = *flagBoardSize
		case "model":
			a.ModelPath = *flagModel
		case "policy-weight":
			a.PolicyWeight = *flagPolicyWeight
		case "random-weight":
			a.RandomWeight = *flagRandomWeight
		case "delay":
			a.TurnDelayMs = int(flagDelay.Milliseconds())
		case "timeout":
			a.TurnTimeoutMs = int(flagTimeout.Milliseconds())
		case "max-turns":
			a.MaxTurns = *flagMaxTurns
		case "territory":
			a.Territory = *flagTerritory
		case "seed":
			a.Seed = *flagSeed
		case "opening":
			a.Opening, err = splitMoves(*flagOpening)
		}
	})
	return err
}

// splitMoves splits a comma or space separated move list such as "D4, Q16 pass".
func splitMoves(s string) ([]string, error) {
	moves := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(moves) == 0 && strings.TrimSpace(s) != "" {
		return nil, fmt.Errorf("-opening: no moves in %q", s)
	}
	return moves, nil
}

// exportModel saves the policy network gameCfg would play with, seeded or loaded.
func exportModel(ctx context.Context, gameCfg engine.GameConfig, path string) error {
	model, err := strategy.ModelFromConfig(gameCfg)(ctx)
	if err != nil {
		return err
	}
	net, ok := model.(*policy.Network)
	if !ok {
		return fmt.Errorf("model %T cannot be saved", model)
	}
	if err := net.Save(path); err != nil {
		return fmt.Errorf("export model: %w", err)
	}
	fmt.Printf("wrote %dx%d model to %s\n", net.Size(), net.Size(), path)
	return nil
}

func textRenderer(gameCfg engine.GameConfig) *ui.Renderer {
	if *flagNoColor {
		return ui.NewRenderer(os.Stdout, gameCfg.Territory, termenv.WithProfile(termenv.Ascii))
	}
	return ui.NewRenderer(os.Stdout, gameCfg.Territory)
}

func runBatch(ctx context.Context, gameCfg engine.GameConfig, games int) error {
	start := time.Now()
	summary, err := ui.RunBatch(ctx, gameCfg, ui.BatchOptions{Games: games, Progress: os.Stderr})
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr)
	if err := summary.Print(os.Stdout, !*flagNoColor); err != nil {
		return err
	}
	fmt.Printf("took %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func analyzeHeadless(path string, gameCfg engine.GameConfig) error {
	if isDir(path) {
		return listRecords(path)
	}
	tl, rec, err := ui.LoadRecord(path)
	if err != nil {
		return err
	}
	r := textRenderer(gameCfg)
	fmt.Printf("%s, %d moves\n", ui.RecordTitle(rec.Info), tl.Len())
	if err := r.Render(tl.Tail.Board); err != nil {
		return err
	}
	return r.Summary(tl.Tail.Board)
}

func listRecords(dir string) error {
	records, err := sgf.ListRecords(dir)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%-24s %dx%d %4d moves  %s\n", r.FileName, r.BoardSize, r.BoardSize, r.MoveCount, ui.RecordTitle(r))
	}
	return nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func runUI(ctx context.Context, gameCfg engine.GameConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬡ tesuji arena ")

	spectator = ui.NewSpectator(app, cfg, gameCfg.Territory, func() {
		rootPage.SwitchToPage(backPage)
	})

	setupUI := ui.NewArenaSetup(gameCfg,
		func(c engine.GameConfig) {
			startGame(ctx, c)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func(err error) {
		spectator.SetConfig(cfg)
		if err != nil {
			showError("Failed to save colours", err)
		}
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			colorConfig.Reset()
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, true)
	rootPage.AddPage("gameview", spectator.Frame(), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	switch {
	case *flagAnalyze != "" && isDir(*flagAnalyze):
		backPage = "records"
		browser := ui.NewRecordBrowser(*flagAnalyze,
			func(path string) {
				if err := review(path); err != nil {
					showError("Failed to load record", err)
					return
				}
				rootPage.SwitchToPage("gameview")
			},
			func() {
				app.Stop()
			},
		)
		rootPage.AddPage("records", browser.Flex(), true, false)
		rootPage.SwitchToPage("records")
	case *flagAnalyze != "":
		if err := review(*flagAnalyze); err != nil {
			return err
		}
		rootPage.SwitchToPage("gameview")
	case *flagPlay:
		startGame(ctx, gameCfg)
	}

	go func() {
		<-ctx.Done()
		app.Stop()
	}()
	return app.SetRoot(rootPage, true).Run()
}

// review loads the SGF record at path into the game view.
func review(path string) error {
	tl, rec, err := ui.LoadRecord(path)
	if err != nil {
		return err
	}
	spectator.Review(ui.RecordTitle(rec.Info), tl, ui.FinalSnapshot(tl))
	return nil
}

// startGame builds the strategies of gameCfg and starts watching a new game.
func startGame(ctx context.Context, gameCfg engine.GameConfig) {
	sess, strat, err := ui.NewGame(ctx, gameCfg)
	if err != nil {
		showError("Failed to start game", err)
		return
	}
	spectator.SetTerritoryPolicy(gameCfg.Territory)
	spectator.Start(ctx, sess, strat, game.PlayOptions{
		TurnTimeout: gameCfg.TurnTimeout,
		TurnDelay:   gameCfg.TurnDelay,
		MaxTurns:    gameCfg.MaxTurns,
	})
	rootPage.SwitchToPage("gameview")
}

func showError(title string, err error) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s:\n%s", title, err.Error())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
