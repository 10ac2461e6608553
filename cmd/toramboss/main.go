package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"toramboss/internal"
	"toramboss/internal/config"
	"toramboss/internal/listener"
	"toramboss/internal/logging"
	"toramboss/internal/pipeline"
	"toramboss/internal/report"
	"toramboss/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)
	log := logging.New(cfg, os.Stderr)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := os.Args[1]
	switch cmd {
	case "bosses:scrape":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", cfg.OutputPath, "output json path")
		xlsx := fs.String("xlsx", "", "also export xlsx to this path")
		_ = fs.Parse(os.Args[2:])
		must(cfg.Require("TORAM_BASE_URL", cfg.SourceBaseURL))
		cfg.OutputPath = *out

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		svc := pipeline.NewScrapeService(db, cfg, log)
		res, err := svc.Run(ctx)
		must(err)
		if strings.TrimSpace(*xlsx) != "" {
			must(pipeline.ExportBossesToXLSX(mustRead(res.OutputPath), *xlsx))
			res.XLSXPath = *xlsx
		}
		fmt.Printf("scrape done pages=%d records=%d output=%s xlsx=%s\n", res.Pages, res.Records, res.OutputPath, res.XLSXPath)
	case "bosses:sort":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("in", "", "input json path")
		out := fs.String("out", "", "output json path (defaults to --in)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*in) == "" {
			must(fmt.Errorf("--in is required"))
		}
		target := *out
		if strings.TrimSpace(target) == "" {
			target = *in
		}
		records, err := pipeline.ResortFile(*in, target)
		must(err)
		fmt.Printf("sorted %d records to %s\n", len(records), target)
	case "bosses:export-xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("in", cfg.OutputPath, "input json path")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		records := mustRead(*in)
		must(pipeline.ExportBossesToXLSX(records, *out))
		fmt.Printf("exported %d records to %s\n", len(records), *out)
	case "bosses:show":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("in", cfg.OutputPath, "input json path")
		limit := fs.Int("limit", 50, "max rows, 0 for all")
		_ = fs.Parse(os.Args[2:])
		report.RenderBosses(os.Stdout, mustRead(*in), *limit)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs")
		_ = fs.Parse(os.Args[2:])
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		runs, err := db.ListRuns(*limit)
		must(err)
		report.RenderRuns(os.Stdout, runs)
	case "bosses:watch":
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		must(listener.NewService(db, cfg, log).Run(ctx))
	default:
		usage()
		os.Exit(1)
	}
}

func mustRead(path string) []internal.BossRecord {
	records, err := storage.ReadDataset(path)
	must(err)
	return records
}

func usage() {
	fmt.Println("usage: toramboss <command>")
	fmt.Println("commands:")
	fmt.Println("  bosses:scrape [--out=sorted_toram_data.json] [--xlsx=./out/bosses.xlsx]")
	fmt.Println("  bosses:sort --in=sorted_toram_data.json [--out=...]")
	fmt.Println("  bosses:export-xlsx [--in=sorted_toram_data.json] --out=./out/bosses.xlsx")
	fmt.Println("  bosses:show [--in=sorted_toram_data.json] [--limit=50]")
	fmt.Println("  bosses:watch")
	fmt.Println("  runs:list [--limit=20]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
