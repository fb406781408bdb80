// Command jnv is an interactive filter-as-you-type explorer for JSON
// documents: type a jq filter in the Filter Editor and watch the JSON
// Viewer update live, with Tab-driven path completion sourced from the
// document itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/marcus/jnv/internal/app"
	"github.com/marcus/jnv/internal/cache"
	"github.com/marcus/jnv/internal/config"
	"github.com/marcus/jnv/internal/document"
	"github.com/marcus/jnv/internal/editor"
	"github.com/marcus/jnv/internal/evalctx"
	"github.com/marcus/jnv/internal/keymap"
	"github.com/marcus/jnv/internal/render"
	"github.com/marcus/jnv/internal/search"
	"github.com/marcus/jnv/internal/theme"
)

var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	editMode     = flag.String("edit-mode", "", "filter editor mode: insert or overwrite")
	indent       = flag.Int("indent", 0, "JSON viewer indent width, in spaces")
	noHint       = flag.Bool("no-hint", false, "disable the guide/hint panes")
	maxStreams   = flag.Int("max-streams", 0, "maximum top-level JSON values to read (0 = use config)")
	suggestions  = flag.Int("suggestions", 0, "number of path suggestions shown at once (0 = use config)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("jnv version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logFile, err := openLogFile()
	if err != nil {
		logFile = nil
	}
	logWriter := io.Writer(io.Discard)
	if logFile != nil {
		logWriter = logFile
		defer func() {
			if err := logFile.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
			}
		}()
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: logLevel})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg)

	in, err := openInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open input: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	streamCap := cfg.JSON.MaxStreams
	if *maxStreams > 0 {
		streamCap = *maxStreams
	}
	doc, err := document.Load(in, streamCap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse JSON input: %v\n", err)
		os.Exit(1)
	}
	if doc.Truncated {
		slog.Warn("input truncated at max-streams limit", "limit", streamCap)
	}

	c := cache.New()
	c.Insert(".", doc.Values)

	styles := theme.ResolveJSON(cfg.JSON.Theme)
	r := render.New(cfg.HintsDisabled)
	ev := evalctx.New(r, c, doc, styles)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "jnv requires an interactive terminal")
		os.Exit(1)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	ev.Initialize(evalctx.Area{Width: width, Height: height})

	km := keymap.New(cfg.Keybinds)
	ed := editor.New(cfg.Editor, km)

	chunkLoad := cfg.Completion.SearchLoadChunkSize
	chunkResult := cfg.Completion.SearchResultChunkSize
	visibleLines := cfg.Completion.Lines
	if *suggestions > 0 {
		visibleLines = *suggestions
	}
	se := search.New(chunkLoad, chunkResult, visibleLines)
	go se.Load(context.Background(), document.Paths(doc))

	model := app.New(cfg, r, ev, ed, se, km)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running jnv: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(model.FinalText())
}

func applyFlagOverrides(cfg *config.Config) {
	switch *editMode {
	case "insert":
		cfg.Editor.Mode = config.EditModeInsert
	case "overwrite":
		cfg.Editor.Mode = config.EditModeOverwrite
	}
	if *indent > 0 {
		cfg.JSON.Theme.Indent = *indent
	}
	if *noHint {
		cfg.HintsDisabled = true
	}
	if *suggestions > 0 {
		cfg.SuggestionsMax = *suggestions
	}
}

// openInput resolves the FILE positional argument: a path, "-" for
// stdin, or absent, which also means stdin.
func openInput(arg string) (io.ReadCloser, error) {
	if arg == "" || arg == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(arg)
}

func openLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "jnv", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jnv [options] [FILE]\n\n")
		fmt.Fprintf(os.Stderr, "An interactive jq filter explorer for JSON documents.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
