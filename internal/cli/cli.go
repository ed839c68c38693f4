package cli

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/briangreenhill/ran/internal/config"
	"github.com/briangreenhill/ran/internal/sensor"
	"github.com/briangreenhill/ran/internal/training"
)

type CLI struct {
	writer   io.Writer
	logger   *slog.Logger
	cfg      config.Config
	registry *training.Registry
	args     []string
}

func NewCLI(w io.Writer, logger *slog.Logger, cfg config.Config, registry *training.Registry, args []string) *CLI {
	return &CLI{
		writer:   w,
		logger:   logger,
		cfg:      cfg,
		registry: registry,
		args:     args,
	}
}

func (c *CLI) Run(args []string) error {
	if len(args) == 0 {
		return c.Show(sensor.Samples())
	}

	switch args[0] {
	case "show":
		return c.Show(sensor.Samples())
	case "file":
		return c.ShowFile()
	case "inbox":
		return c.ShowInbox(context.Background())
	case "gpx":
		return c.ImportGPX()
	case "api":
		return c.RunAPI(context.Background())
	default:
		c.Usage()
	}
	return nil
}

func (c *CLI) Usage() {
	fmt.Fprintf(c.writer, "Usage: ran [command] [flags]\n--help show this message\n\n"+
		"\tshow\n\tfile --path\n\tinbox --db [--push CODE:v1,v2,...]\n"+
		"\tgpx --file --type RUN|WLK --weight [--height]\n\tapi\n")
}

// Show prints one summary line per package, in order. The first package that
// cannot be read aborts the run.
func (c *CLI) Show(packages []sensor.Package) error {
	for i, p := range packages {
		t, err := c.registry.Read(p.Code, p.Data)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		fmt.Fprintln(c.writer, t.Info().Message())
	}
	return nil
}

func (c *CLI) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("ran", flag.ContinueOnError)
	fs.SetOutput(c.writer)
	fs.Usage = c.Usage
	return fs
}

func (c *CLI) ShowFile() error {
	fs := c.flagSet()
	var path string
	fs.StringVar(&path, "path", "", "path to a yaml or json packages file")

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if path == "" {
		fs.Usage()
		return nil
	}

	packages, err := sensor.LoadFile(path)
	if err != nil {
		return err
	}

	c.logger.Debug("Loaded packages", slog.String("path", path), slog.Int("count", len(packages)))
	return c.Show(packages)
}

func (c *CLI) ShowInbox(ctx context.Context) error {
	fs := c.flagSet()
	var dbPath, push string
	fs.StringVar(&dbPath, "db", c.cfg.DBPath, "path to the sqlite inbox")
	fs.StringVar(&push, "push", "", "package to add before listing, as CODE:v1,v2,...")

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening inbox: %w", err)
	}
	defer db.Close()

	inbox := sensor.NewInbox(db, c.logger)
	if err := inbox.EnsureSchema(ctx); err != nil {
		return err
	}

	if push != "" {
		pkg, err := parsePackage(push)
		if err != nil {
			return err
		}
		if _, err := c.registry.Read(pkg.Code, pkg.Data); err != nil {
			return fmt.Errorf("rejecting package: %w", err)
		}
		if err := inbox.Push(ctx, pkg); err != nil {
			return err
		}
	}

	entries, err := inbox.List(ctx)
	if err != nil {
		return err
	}

	// Rows can come from a device bridge, so one bad package must not hide the rest.
	for _, e := range entries {
		t, err := c.registry.Read(e.Package.Code, e.Package.Data)
		if err != nil {
			c.logger.Warn("Skipping unreadable package", slog.Int64("id", e.ID), slog.Any("error", err))
			continue
		}
		fmt.Fprintln(c.writer, t.Info().Message())
	}
	return nil
}

func (c *CLI) ImportGPX() error {
	fs := c.flagSet()
	var gpxFile, kind string
	var weight, height float64
	fs.StringVar(&gpxFile, "file", "", "path to gpx file")
	fs.StringVar(&kind, "type", string(training.KindRunning), "workout type, RUN or WLK")
	fs.Float64Var(&weight, "weight", 0, "body weight in kg")
	fs.Float64Var(&height, "height", 0, "height in cm, walking only")

	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if gpxFile == "" {
		fs.Usage()
		return nil
	}

	k, err := training.ParseKind(kind)
	if err != nil {
		return err
	}

	gpxBytes, err := readGPXFile(gpxFile)
	if err != nil {
		return err
	}

	var extra []float64
	if k == training.KindWalking {
		extra = append(extra, height)
	}

	pkg, err := sensor.FromGPX(gpxBytes, k, weight, extra...)
	if err != nil {
		return err
	}

	c.logger.Info("Imported gpx track", slog.String("gpx_file", gpxFile), slog.String("code", pkg.Code))
	return c.Show([]sensor.Package{pkg})
}

func (c *CLI) RunAPI(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	server := &http.Server{
		Addr:    c.cfg.HTTPAddress,
		Handler: NewAPI(c.logger, c.registry),
	}

	go func() {
		<-ctx.Done()
		c.logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			c.logger.Error("Error shutting down server", slog.Any("error", err))
		}
	}()

	c.logger.Info("Starting server", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		c.logger.Error("Error starting server", slog.Any("error", err))
		return err
	}

	return nil
}

// parsePackage reads the CODE:v1,v2,... form used by --push.
func parsePackage(s string) (sensor.Package, error) {
	code, values, ok := strings.Cut(s, ":")
	if !ok || code == "" {
		return sensor.Package{}, fmt.Errorf("invalid package %q: expected CODE:v1,v2,...", s)
	}

	pkg := sensor.Package{Code: strings.TrimSpace(code)}
	for _, v := range strings.Split(values, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return sensor.Package{}, fmt.Errorf("invalid reading %q: %w", v, err)
		}
		pkg.Data = append(pkg.Data, f)
	}
	return pkg, nil
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("gpx file is a directory")
	}

	return os.ReadFile(gpxFile)
}
