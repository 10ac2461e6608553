package source

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"toramboss/internal"
	"toramboss/internal/config"
)

// Client fetches boss listing pages. It never retries: a failed page is
// fatal to the run.
type Client struct {
	cfg     config.Config
	http    *resty.Client
	limiter *RateLimiter
}

func NewClient(cfg config.Config) *Client {
	http := resty.New()
	http.SetBaseURL(strings.TrimRight(cfg.SourceBaseURL, "/"))
	http.SetTimeout(time.Duration(cfg.SourceTimeoutMs) * time.Millisecond)
	http.SetHeader("User-Agent", cfg.SourceUserAgent)
	http.SetHeader("Accept", "text/html")
	http.SetRetryCount(0)

	return &Client{
		cfg:     cfg,
		http:    http,
		limiter: NewRateLimiter(cfg.SourceRateLimitRPS),
	}
}

func (c *Client) PageURL(page int) string {
	return strings.TrimRight(c.cfg.SourceBaseURL, "/") + c.bossPath() + "?page=" + strconv.Itoa(page)
}

func (c *Client) FetchPage(ctx context.Context, page int) (*goquery.Document, error) {
	if err := c.limiter.WaitTurn(ctx); err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", internal.ErrNetwork, page, err)
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get(c.bossPath())
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", internal.ErrNetwork, page, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: page %d: status=%d", internal.ErrNetwork, page, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", internal.ErrParse, page, err)
	}
	return doc, nil
}

func (c *Client) bossPath() string {
	path := strings.TrimSpace(c.cfg.SourceBossPath)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
