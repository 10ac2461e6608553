package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"toramboss/internal"
	"toramboss/internal/config"
	"toramboss/internal/source"
	"toramboss/internal/storage"
)

type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (*goquery.Document, error)
}

// ScrapeService drives the whole run: paginate, extract, normalize, sort and
// persist. Pages are fetched one at a time, in order.
type ScrapeService struct {
	db      *storage.DB
	fetcher PageFetcher
	cfg     config.Config
	log     *slog.Logger
}

func NewScrapeService(db *storage.DB, cfg config.Config, log *slog.Logger) *ScrapeService {
	return NewScrapeServiceWithFetcher(db, source.NewClient(cfg), cfg, log)
}

// NewScrapeServiceWithFetcher is NewScrapeService with a caller-supplied
// fetcher. db may be nil, in which case no run ledger is kept.
func NewScrapeServiceWithFetcher(db *storage.DB, fetcher PageFetcher, cfg config.Config, log *slog.Logger) *ScrapeService {
	if log == nil {
		log = slog.Default()
	}
	return &ScrapeService{db: db, fetcher: fetcher, cfg: cfg, log: log}
}

type CollectResult struct {
	Pages  int
	Bosses []internal.RawBoss
}

type RunResult struct {
	TraceID    string
	RunID      int
	Pages      int
	Records    int
	OutputPath string
	XLSXPath   string
}

func (s *ScrapeService) CollectAll(ctx context.Context) (CollectResult, error) {
	first, err := s.fetcher.FetchPage(ctx, 1)
	if err != nil {
		return CollectResult{}, err
	}
	total, err := TotalPages(first)
	if err != nil {
		return CollectResult{}, err
	}
	s.log.Info("total pages", "pages", total)

	all := make([]internal.RawBoss, 0)
	for page := 1; page <= total; page++ {
		doc, err := s.fetcher.FetchPage(ctx, page)
		if err != nil {
			return CollectResult{Pages: page - 1}, err
		}
		bosses := ExtractBosses(doc)
		s.log.Info("fetched page", "page", page, "bosses", len(bosses))
		all = append(all, bosses...)
	}

	return CollectResult{Pages: total, Bosses: all}, nil
}

func (s *ScrapeService) Run(ctx context.Context) (RunResult, error) {
	res := RunResult{TraceID: uuid.NewString(), OutputPath: s.cfg.OutputPath}

	if s.db != nil {
		runID, err := s.db.StartRun(res.TraceID, res.OutputPath)
		if err != nil {
			return res, fmt.Errorf("%w: start run: %v", internal.ErrIO, err)
		}
		res.RunID = runID
	}

	err := s.run(ctx, &res)
	if s.db != nil {
		status := internal.RunOK
		if err != nil {
			status = internal.RunFailed
		}
		if ferr := s.db.FinishRun(res.RunID, status, res.Pages, res.Records, err); ferr != nil {
			s.log.Warn("failed to record run", "traceId", res.TraceID, "err", ferr)
		}
	}
	if err != nil {
		s.log.Error("scrape failed", "traceId", res.TraceID, "err", err)
		return res, err
	}
	return res, nil
}

func (s *ScrapeService) run(ctx context.Context, res *RunResult) error {
	start := time.Now()

	collected, err := s.CollectAll(ctx)
	res.Pages = collected.Pages
	if err != nil {
		return err
	}

	byLevel := SortByLevel(NormalizeBosses(collected.Bosses))
	if err := storage.WriteDataset(s.cfg.OutputPath, byLevel); err != nil {
		return err
	}
	s.log.Info("level-sorted data saved", "path", s.cfg.OutputPath, "records", len(byLevel))

	final, err := ResortFile(s.cfg.OutputPath, s.cfg.OutputPath)
	if err != nil {
		return err
	}
	res.Records = len(final)
	s.log.Info("grouped data saved", "path", s.cfg.OutputPath, "records", len(final))

	if s.cfg.XLSXExport {
		res.XLSXPath = s.cfg.XLSXPath()
		if err := ExportBossesToXLSX(final, res.XLSXPath); err != nil {
			return fmt.Errorf("%w: xlsx export: %v", internal.ErrIO, err)
		}
		s.log.Info("xlsx exported", "path", res.XLSXPath)
	}

	if s.db != nil {
		if err := s.db.ReplaceBosses(res.RunID, final); err != nil {
			return fmt.Errorf("%w: snapshot: %v", internal.ErrIO, err)
		}
		_ = s.db.SetMetadata("bosses.last_scrape", time.Now().UTC().Format(time.RFC3339))
	}

	s.log.Info("scrape done", "traceId", res.TraceID, "pages", res.Pages, "records", res.Records, "elapsed", time.Since(start).String())
	return nil
}

// ResortFile reads an artifact, applies both sort phases and writes the
// result to out. in and out may be the same path.
func ResortFile(in, out string) ([]internal.BossRecord, error) {
	records, err := storage.ReadDataset(in)
	if err != nil {
		return nil, err
	}
	grouped := SortDataset(records)
	if err := storage.WriteDataset(out, grouped); err != nil {
		return nil, err
	}
	return grouped, nil
}
