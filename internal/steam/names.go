package steam

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const communityRoot = "https://steamcommunity.com"

// ResolveDisplayName fetches the community profile document for an
// account and returns its display name. An empty or missing name
// element is an error so callers can treat the account as unresolved.
func ResolveDisplayName(ctx context.Context, hc *http.Client, id64 int64) (string, error) {
	if hc == nil {
		hc = http.DefaultClient
	}

	url := fmt.Sprintf("%s/profiles/%s/?xml=1", communityRoot, strconv.FormatInt(id64, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("parsing profile document: %w", err)
	}

	root := doc.SelectElement("profile")
	if root == nil {
		return "", fmt.Errorf("no profile element for account %d", id64)
	}
	nameEl := root.SelectElement("steamID")
	if nameEl == nil {
		return "", fmt.Errorf("no steamID element for account %d", id64)
	}

	name := strings.TrimSpace(nameEl.Text())
	if name == "" {
		return "", fmt.Errorf("empty display name for account %d", id64)
	}
	return name, nil
}
