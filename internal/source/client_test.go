package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"toramboss/internal"
	"toramboss/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testConfig() config.Config {
	return config.Config{
		SourceBaseURL:      "https://example.test/",
		SourceBossPath:     "monster/type/boss",
		SourceUserAgent:    "toramboss-test",
		SourceRateLimitRPS: 1000,
		SourceTimeoutMs:    5000,
	}
}

func TestFetchPageRequestsPageQuery(t *testing.T) {
	client := NewClient(testConfig())
	client.http.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/monster/type/boss" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "3" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("User-Agent") != "toramboss-test" {
			t.Fatalf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`<html><body><a class="text-primary">Boss</a></body></html>`)),
			Header:     http.Header{"Content-Type": []string{"text/html"}},
		}, nil
	}))

	doc, err := client.FetchPage(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("a.text-primary").Text(); got != "Boss" {
		t.Fatalf("got %q", got)
	}
}

func TestFetchPageNonSuccessIsNetworkError(t *testing.T) {
	attempts := 0
	client := NewClient(testConfig())
	client.http.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		attempts++
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("bad gateway")),
			Header:     make(http.Header),
		}, nil
	}))

	_, err := client.FetchPage(context.Background(), 1)
	if !errors.Is(err, internal.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("attempts=%d, fetches must not be retried", attempts)
	}
}

func TestFetchPageTransportErrorIsNetworkError(t *testing.T) {
	client := NewClient(testConfig())
	client.http.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	}))

	_, err := client.FetchPage(context.Background(), 1)
	if !errors.Is(err, internal.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestPageURL(t *testing.T) {
	client := NewClient(testConfig())
	if got, want := client.PageURL(2), "https://example.test/monster/type/boss?page=2"; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}
