package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/shelfapp/shelf/internal/logger"
	"github.com/shelfapp/shelf/internal/merge"
)

const communityRoot = "https://steamcommunity.com"

// gamesURL builds the community games URL for a target. All-digit
// targets are treated as 64-bit account IDs, anything else as a
// custom profile name.
func gamesURL(target string, xml bool) string {
	kind := "id"
	if isDigits(target) {
		kind = "profiles"
	}
	url := fmt.Sprintf("%s/%s/%s/games/?tab=all", communityRoot, kind, target)
	if xml {
		url += "&xml=1"
	}
	return url
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewHTTPClient builds a Client whose methods hit the community site
// over hc. A nil hc uses http.DefaultClient.
func NewHTTPClient(hc *http.Client, log logger.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		XML: func(ctx context.Context, target string) ([]merge.Entry, error) {
			body, err := get(ctx, hc, gamesURL(target, true))
			if err != nil {
				return nil, err
			}
			defer body.Close()
			return merge.EntriesFromXML(body)
		},
		HTML: func(ctx context.Context, target string) ([]merge.Entry, error) {
			body, err := get(ctx, hc, gamesURL(target, false))
			if err != nil {
				return nil, err
			}
			defer body.Close()
			return merge.EntriesFromHTML(body)
		},
		Log: log,
	}
}

func get(ctx context.Context, hc *http.Client, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}
