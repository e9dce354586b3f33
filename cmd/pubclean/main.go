package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pubtext"
	"github.com/fwojciec/pubtext/etree"
	"github.com/fwojciec/pubtext/goquery"
	"github.com/fwojciec/pubtext/readability"
	"github.com/fwojciec/pubtext/sqlite"
	"github.com/fwojciec/pubtext/trafilatura"
	"github.com/fwojciec/pubtext/yaml"
)

//go:embed journals.yaml
var defaultRegistry []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pubclean"),
		kong.Description("Extract and normalize sections of biomedical journal articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_db": defaultDBPath()},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pubclean --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set PUBCLEAN_CONFIG to use a different registry file")
		return err
	}
	registry, err := cfg.Registry(publishers(), pubtext.Detectors{etree.NewDetector(), goquery.NewDetector()})
	if err != nil {
		return err
	}
	deps.Config = cfg
	deps.Registry = registry

	// Commands that work on single files or the registry need no database.
	if cmd == "clean" || cmd == "journals" {
		return kongCtx.Run(deps)
	}

	if dir := filepath.Dir(cli.DB); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PUBCLEAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	deps.Articles = sqlite.NewArticleService(m.DB)

	return kongCtx.Run(deps)
}

// loadConfig reads the registry file at path, or the embedded registry if
// path is empty.
func loadConfig(path string) (*yaml.Config, error) {
	if path == "" {
		return yaml.Load(bytes.NewReader(defaultRegistry))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry %q: %w", path, err)
	}
	defer f.Close()
	return yaml.Load(f)
}

// publishers returns every publisher the registry can refer to by name.
func publishers() []pubtext.Publisher {
	var out []pubtext.Publisher
	for _, p := range goquery.Publishers() {
		out = append(out, p)
	}
	for _, p := range etree.Publishers() {
		out = append(out, p)
	}
	return append(out, trafilatura.NewPublisher(), readability.NewPublisher())
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pubclean.db"
	}
	return filepath.Join(home, ".pubclean", "pubclean.db")
}
