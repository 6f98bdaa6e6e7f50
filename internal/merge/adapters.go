package merge

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/beevik/etree"
)

// EntriesFromXML extracts (id, name) entries from a community games
// document: a gamesList root with games/game children, each carrying
// an appID and a name element. Entries without a numeric appID are
// skipped; duplicate IDs keep the first occurrence.
func EntriesFromXML(r io.Reader) ([]Entry, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing games document: %w", err)
	}

	root := doc.SelectElement("gamesList")
	if root == nil {
		return nil, fmt.Errorf("parsing games document: no gamesList element")
	}

	var entries []Entry
	seen := make(map[int]struct{})

	games := root.SelectElement("games")
	if games == nil {
		return entries, nil
	}
	for _, e := range games.SelectElements("game") {
		idEl := e.SelectElement("appID")
		if idEl == nil {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(idEl.Text()))
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		name := ""
		if nameEl := e.SelectElement("name"); nameEl != nil {
			name = strings.TrimSpace(nameEl.Text())
		}
		entries = append(entries, Entry{ID: id, Name: name})
	}

	return entries, nil
}

// EntriesFromHTML extracts (id, name) entries from a scraped games
// page. Each listed title is a row whose element ID embeds the app ID
// and whose name cell holds the display name. Rows that don't match
// the expected shape are skipped.
func EntriesFromHTML(r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing games page: %w", err)
	}

	var entries []Entry
	seen := make(map[int]struct{})

	doc.Find(".gameListRow").Each(func(_ int, row *goquery.Selection) {
		attr, ok := row.Attr("id")
		if !ok || !strings.HasPrefix(attr, "game_") {
			return
		}
		id, err := strconv.Atoi(strings.TrimPrefix(attr, "game_"))
		if err != nil {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}

		name := strings.TrimSpace(row.Find(".gameListRowItemName").First().Text())
		entries = append(entries, Entry{ID: id, Name: name})
	})

	return entries, nil
}
