package steam

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnumerateAccountDirs(t *testing.T) {
	steamPath := t.TempDir()
	userdata := filepath.Join(steamPath, "userdata")

	for _, dir := range []string{"39979", "12345", "ac_cache"} {
		if err := os.MkdirAll(filepath.Join(userdata, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(userdata, "777"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := EnumerateAccountDirs(steamPath)
	want := []string{"12345", "39979"}
	if len(got) != len(want) {
		t.Fatalf("dirs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dir %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEnumerateAccountDirsMissingUserdata(t *testing.T) {
	if got := EnumerateAccountDirs(t.TempDir()); got != nil {
		t.Errorf("dirs = %v, want nil for missing userdata", got)
	}
}

// stubTransport serves a canned response for every request.
type stubTransport struct {
	status int
	body   string
	gotURL string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.gotURL = req.URL.String()
	return &http.Response{
		StatusCode: s.status,
		Status:     http.StatusText(s.status),
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func TestResolveDisplayName(t *testing.T) {
	st := &stubTransport{
		status: http.StatusOK,
		body: `<?xml version="1.0"?>
<profile>
  <steamID64>76561197960305707</steamID64>
  <steamID> alice </steamID>
</profile>`,
	}
	hc := &http.Client{Transport: st}

	name, err := ResolveDisplayName(context.Background(), hc, 76561197960305707)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if name != "alice" {
		t.Errorf("name = %q, want %q", name, "alice")
	}
	if !strings.Contains(st.gotURL, "/profiles/76561197960305707/?xml=1") {
		t.Errorf("requested URL = %q", st.gotURL)
	}
}

func TestResolveDisplayNameErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non-ok status", http.StatusInternalServerError, ""},
		{"malformed document", http.StatusOK, "<profile><unclosed>"},
		{"no profile element", http.StatusOK, "<response>error</response>"},
		{"no name element", http.StatusOK, "<profile><steamID64>1</steamID64></profile>"},
		{"empty name", http.StatusOK, "<profile><steamID>  </steamID></profile>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := &http.Client{Transport: &stubTransport{status: tt.status, body: tt.body}}
			if _, err := ResolveDisplayName(context.Background(), hc, 1); err == nil {
				t.Error("expected error")
			}
		})
	}
}
