// Package fetch retrieves a remote title list using one of two
// interchangeable methods: the structured XML games document or the
// scraped HTML games page. The preferred mode tries XML first and
// falls back to HTML on any failure.
package fetch

import (
	"context"
	"fmt"

	"github.com/shelfapp/shelf/internal/logger"
	"github.com/shelfapp/shelf/internal/merge"
)

// Mode selects the fetch method.
type Mode int

const (
	// ModeXMLPreferred tries the XML document first and falls back to
	// the HTML page when it fails.
	ModeXMLPreferred Mode = iota
	// ModeXMLOnly uses only the XML document; failures propagate.
	ModeXMLOnly
	// ModeHTMLOnly uses only the HTML page; failures propagate.
	ModeHTMLOnly
)

// ModeWebsiteOnly is the historical name for ModeHTMLOnly.
const ModeWebsiteOnly = ModeHTMLOnly

var modeNames = map[Mode]string{
	ModeXMLPreferred: "xml-preferred",
	ModeXMLOnly:      "xml",
	ModeHTMLOnly:     "website",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "xml-preferred"
}

// ParseMode maps a configuration string to a Mode. Unrecognized
// values yield ModeXMLPreferred with an error.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "xml-preferred", "auto", "":
		return ModeXMLPreferred, nil
	case "xml":
		return ModeXMLOnly, nil
	case "website", "html":
		return ModeHTMLOnly, nil
	}
	return ModeXMLPreferred, fmt.Errorf("unknown list source %q", s)
}

// Error reports a failed remote fetch.
type Error struct {
	Target   string
	UsedHTML bool
	Err      error
}

func (e *Error) Error() string {
	method := "xml"
	if e.UsedHTML {
		method = "website"
	}
	return fmt.Sprintf("fetching games for %s via %s: %v", e.Target, method, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Func retrieves and normalizes a remote title list for a target,
// which is either a 64-bit account ID or a custom profile name.
type Func func(ctx context.Context, target string) ([]merge.Entry, error)

// Result carries the entries plus which method produced them.
type Result struct {
	Entries  []merge.Entry
	UsedHTML bool
	Failover bool
}

// Client runs the two fetch methods under a mode policy. The method
// funcs are injectable so policy behavior is testable offline.
type Client struct {
	XML  Func
	HTML Func
	Log  logger.Logger
}

func (c *Client) logger() logger.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logger.Nop()
}

// Fetch retrieves the title list for target under mode. In the
// preferred mode the XML failure is swallowed and only logged; the
// fallback's failure, if any, is the one the caller sees.
func (c *Client) Fetch(ctx context.Context, target string, mode Mode) (*Result, error) {
	log := c.logger()

	if mode != ModeHTMLOnly {
		entries, err := c.XML(ctx, target)
		if err == nil {
			return &Result{Entries: entries}, nil
		}
		if mode == ModeXMLOnly {
			return nil, &Error{Target: target, Err: err}
		}
		log.Warn("xml fetch failed, falling back to website",
			logger.String("target", target), logger.Error(err))

		entries, err = c.HTML(ctx, target)
		if err != nil {
			return nil, &Error{Target: target, UsedHTML: true, Err: err}
		}
		return &Result{Entries: entries, UsedHTML: true, Failover: true}, nil
	}

	entries, err := c.HTML(ctx, target)
	if err != nil {
		return nil, &Error{Target: target, UsedHTML: true, Err: err}
	}
	return &Result{Entries: entries, UsedHTML: true}, nil
}
