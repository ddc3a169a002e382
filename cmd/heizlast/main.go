package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/heizwerk/heizlast/cmd/app"
	httpctrl "github.com/heizwerk/heizlast/internal/controllers/http"
	"github.com/heizwerk/heizlast/internal/editor"
	"github.com/heizwerk/heizlast/internal/report"
	"github.com/heizwerk/heizlast/internal/store"
)

func main() {
	var configPath, reportPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file (.yaml/.yml/.json)")
	flag.StringVar(&reportPath, "report", "", "write a report (.pdf/.xlsx) and exit instead of serving")
	flag.Parse()

	// .env is optional; real env vars still win inside LoadConfig.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fatal(err)
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fatal(err)
	}
	slog.SetDefault(log)

	b, err := store.LoadOrNew(cfg.Data.Dir)
	if err != nil {
		log.Error("load building", "error", err)
		os.Exit(1)
	}
	log.Info("building loaded", "name", b.Name, "rooms", len(b.Rooms))

	ed := editor.New(b, cfg.Data.Dir, log)

	if cfg.Catalog.SeedPath != "" {
		constructions, temperatures, err := store.LoadCatalogSeed(cfg.Catalog.SeedPath)
		if err != nil {
			log.Error("load catalog seed", "path", cfg.Catalog.SeedPath, "error", err)
			os.Exit(1)
		}
		if err := ed.ApplySeed(constructions, temperatures); err != nil {
			log.Error("apply catalog seed", "error", err)
			os.Exit(1)
		}
		log.Info("catalog seed applied",
			"constructions", len(constructions), "temperatures", len(temperatures))
	}

	if reportPath != "" {
		if err := writeReport(ed, reportPath); err != nil {
			log.Error("write report", "path", reportPath, "error", err)
			os.Exit(1)
		}
		log.Info("report written", "path", reportPath)
		return
	}

	if !cfg.Controllers.HTTP.Enabled {
		log.Error("nothing to do: http disabled and no -report given")
		os.Exit(1)
	}

	srv := httpctrl.New(ed, cfg.Controllers.HTTP.Addr, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("heizlast listening", "addr", cfg.Controllers.HTTP.Addr)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg app.LogConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case "", "text":
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return slog.New(h), nil
}

func writeReport(ed *editor.Editor, path string) error {
	outcomes, err := ed.HeatLoad()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		err = report.PDF(f, ed.Snapshot(), outcomes)
	case ".xlsx":
		err = report.XLSX(f, ed.Snapshot(), outcomes)
	default:
		err = fmt.Errorf("unsupported report extension %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
