// Package profilexml persists profiles as versioned XML documents.
// Decoding is lenient on elements and strict on the document: a
// malformed game, filter, or rule is skipped, while an unreadable or
// unparsable file aborts the whole load. Legacy field names from
// schema versions 0-2 are honored permanently.
package profilexml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/shelfapp/shelf/internal/autocat"
	"github.com/shelfapp/shelf/internal/logger"
	"github.com/shelfapp/shelf/internal/model"
)

// LoadError indicates the profile document could not be read or
// parsed. No profile is returned alongside it.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading profile %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError indicates the destination could not be written. The
// in-memory profile is untouched.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving profile %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Codec loads and saves profile documents.
type Codec struct {
	// BackupCount is how many rotating backups Save keeps of the
	// destination file. Zero disables backups.
	BackupCount int

	// Meta seeds the default rule set when a decoded document has no
	// autocats section. May be nil.
	Meta autocat.MetadataSource

	// Log receives decode/save diagnostics. Nil means no logging.
	Log logger.Logger
}

func (c *Codec) logger() logger.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logger.Nop()
}

// Load reads and decodes the profile document at path.
func (c *Codec) Load(path string) (*model.Profile, error) {
	log := c.logger()
	log.Info("loading profile", logger.String("path", path))

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		log.Warn("failed to load profile", logger.Error(err))
		return nil, &LoadError{Path: path, Err: err}
	}

	p := model.NewProfile()
	p.FilePath = path

	root := doc.SelectElement(nameProfile)
	if root == nil {
		// Parsable document without a profile root decodes to an
		// empty profile, matching the lenient-on-elements policy.
		return p, nil
	}

	version := 0
	if attr := root.SelectAttr(nameVersion); attr != nil {
		if v, err := strconv.Atoi(attr.Value); err == nil {
			version = v
		}
	}

	p.AccountID64 = readInt64(root, nameAccountID, 0)
	if p.AccountID64 == 0 {
		if short := childText(root, nameOldAccountID); short != "" {
			p.AccountID64 = model.DirNameToID64(short)
		}
	}

	if version < 3 {
		p.AutoUpdate = readBool(root, nameOldAutoDownload, p.AutoUpdate)
	} else {
		p.AutoUpdate = readBool(root, nameAutoUpdate, p.AutoUpdate)
	}

	p.AutoImport = readBool(root, nameAutoImport, p.AutoImport)
	p.AutoExport = readBool(root, nameAutoExport, p.AutoExport)
	p.LocalUpdate = readBool(root, nameLocalUpdate, p.LocalUpdate)
	p.WebUpdate = readBool(root, nameWebUpdate, p.WebUpdate)
	p.IncludeUnknown = readBool(root, nameIncludeUnknown, p.IncludeUnknown)
	p.BypassIgnoreOnImport = readBool(root, nameBypassIgnoreOnImport, p.BypassIgnoreOnImport)
	p.ExportDiscard = readBool(root, nameExportDiscard, p.ExportDiscard)
	p.AutoIgnore = readBool(root, nameAutoIgnore, p.AutoIgnore)
	p.OverwriteOnDownload = readBool(root, nameOverwriteNames, p.OverwriteOnDownload)

	if version < 2 {
		// The old flag had the opposite sense. Absence leaves the
		// default untouched rather than forcing false.
		if e := root.SelectElement(nameOldIgnoreExternal); e != nil {
			if v, err := strconv.ParseBool(e.Text()); err == nil {
				p.IncludeShortcuts = !v
			}
		}
	} else {
		p.IncludeShortcuts = readBool(root, nameIncludeShortcuts, p.IncludeShortcuts)
	}

	// Exclusions must be decoded before games: store-sourced entries
	// already in the ignore list are dropped during game decode.
	if list := root.SelectElement(nameExclusionList); list != nil {
		for _, e := range list.SelectElements(nameExclusion) {
			if id, err := strconv.Atoi(e.Text()); err == nil {
				p.IgnoreList.Add(id)
			}
		}
	}

	if list := root.SelectElement(nameGameList); list != nil {
		for _, e := range list.SelectElements(nameGame) {
			c.decodeGame(e, p, version)
		}
	}

	if list := root.SelectElement(nameFilterList); list != nil {
		for _, e := range list.SelectElements(nameFilter) {
			decodeFilter(e, p.GameData)
		}
	}

	if list := root.SelectElement(nameAutoCatList); list != nil {
		for _, e := range list.ChildElements() {
			ac, err := autocat.Load(e)
			if err != nil {
				log.Warn("skipping bad autocat", logger.String("tag", e.Tag), logger.Error(err))
				continue
			}
			p.AutoCats = append(p.AutoCats, ac)
		}
	} else {
		p.AutoCats = autocat.GenerateDefaultSet(c.Meta)
	}

	log.Info("profile loaded",
		logger.Int("games", len(p.GameData.Games)),
		logger.Int("ignored", len(p.IgnoreList)))

	return p, nil
}

// decodeGame decodes one game element into the profile. Entries
// without a numeric ID are skipped, and store-sourced entries whose ID
// is already ignored are discarded so they are not resurrected.
func (c *Codec) decodeGame(e *etree.Element, p *model.Profile, version int) {
	idText := childText(e, nameGameID)
	id, err := strconv.Atoi(idText)
	if err != nil {
		return
	}

	source := model.SourceUnknown
	if s := childText(e, nameGameSource); s != "" {
		if parsed, err := model.ParseListingSource(s); err == nil {
			source = parsed
		}
	}

	if source.IgnoreEligible() && p.IgnoreList.Contains(id) {
		return
	}

	g := model.NewGame(id, childText(e, nameGameName))
	g.Source = source
	g.Hidden = readBool(e, nameGameHidden, false)
	g.Executable = childText(e, nameGameExecutable)
	g.LastPlayed = readInt64(e, nameGameLastPlayed, 0)

	if version < 1 {
		if cat := childText(e, nameCategory); cat != "" {
			g.AddCategory(p.GameData.GetCategory(cat))
		}
		if e.SelectElement(nameOldFavorite) != nil {
			g.AddCategory(p.GameData.FavoriteCategory())
		}
	} else {
		if list := e.SelectElement(nameCategoryList); list != nil {
			for _, ce := range list.SelectElements(nameCategory) {
				if cat := ce.Text(); cat != "" {
					g.AddCategory(p.GameData.GetCategory(cat))
				}
			}
		}
	}

	p.GameData.AddGame(g)
}

// decodeFilter decodes one Filter element. Filters without a name are
// skipped; dimension rules keep their defaults when absent.
func decodeFilter(e *etree.Element, gl *model.GameList) {
	name := childText(e, nameFilterName)
	if name == "" {
		return
	}

	f := gl.AddFilter(name)
	readIntInto(e, nameFilterGame, &f.Game)
	readIntInto(e, nameFilterHidden, &f.Hidden)
	readIntInto(e, nameFilterSoftware, &f.Software)
	readIntInto(e, nameFilterUncategorized, &f.Uncategorized)
	readIntInto(e, nameFilterVR, &f.VR)

	for _, ce := range e.SelectElements(nameFilterAllow) {
		if cat := ce.Text(); cat != "" {
			f.Allow = append(f.Allow, gl.GetCategory(cat))
		}
	}
	for _, ce := range e.SelectElements(nameFilterRequire) {
		if cat := ce.Text(); cat != "" {
			f.Require = append(f.Require, gl.GetCategory(cat))
		}
	}
	for _, ce := range e.SelectElements(nameFilterExclude) {
		if cat := ce.Text(); cat != "" {
			f.Exclude = append(f.Exclude, gl.GetCategory(cat))
		}
	}
}

// Save encodes the profile and writes it to path, taking a rotating
// backup of any existing file first. On success the profile's
// recorded file path is updated.
func (c *Codec) Save(p *model.Profile, path string) error {
	log := c.logger()
	log.Info("saving profile", logger.String("path", path))

	if err := rotateBackups(path, c.BackupCount); err != nil {
		// A failed backup never blocks the save.
		log.Error("profile backup failed", logger.Error(err))
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(nameProfile)
	root.CreateAttr(nameVersion, strconv.Itoa(Version))

	root.CreateElement(nameAccountID).SetText(strconv.FormatInt(p.AccountID64, 10))

	writeBool(root, nameAutoUpdate, p.AutoUpdate)
	writeBool(root, nameAutoImport, p.AutoImport)
	writeBool(root, nameAutoExport, p.AutoExport)
	writeBool(root, nameLocalUpdate, p.LocalUpdate)
	writeBool(root, nameWebUpdate, p.WebUpdate)
	writeBool(root, nameExportDiscard, p.ExportDiscard)
	writeBool(root, nameAutoIgnore, p.AutoIgnore)
	writeBool(root, nameIncludeUnknown, p.IncludeUnknown)
	writeBool(root, nameBypassIgnoreOnImport, p.BypassIgnoreOnImport)
	writeBool(root, nameOverwriteNames, p.OverwriteOnDownload)
	writeBool(root, nameIncludeShortcuts, p.IncludeShortcuts)

	games := root.CreateElement(nameGameList)
	for _, id := range p.GameData.SortedIDs() {
		g := p.GameData.Games[id]
		if !p.IncludeShortcuts && g.IsShortcut() {
			// Save-time filter only; the in-memory entry survives.
			continue
		}
		encodeGame(games, g)
	}

	filters := root.CreateElement(nameFilterList)
	for _, f := range p.GameData.Filters {
		encodeFilter(filters, f)
	}

	autocats := root.CreateElement(nameAutoCatList)
	for _, ac := range p.AutoCats {
		autocat.Encode(autocats, ac)
	}

	exclusions := root.CreateElement(nameExclusionList)
	for _, id := range p.IgnoreList.Sorted() {
		exclusions.CreateElement(nameExclusion).SetText(strconv.Itoa(id))
	}

	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		log.Warn("failed to write profile", logger.Error(err))
		return &SaveError{Path: path, Err: err}
	}

	p.FilePath = path
	log.Info("profile saved")
	return nil
}

func encodeGame(parent *etree.Element, g *model.Game) {
	e := parent.CreateElement(nameGame)
	e.CreateElement(nameGameID).SetText(strconv.Itoa(g.ID))
	e.CreateElement(nameGameSource).SetText(g.Source.String())

	if g.Name != "" {
		e.CreateElement(nameGameName).SetText(g.Name)
	}

	writeBool(e, nameGameHidden, g.Hidden)

	if g.LastPlayed != 0 {
		e.CreateElement(nameGameLastPlayed).SetText(strconv.FormatInt(g.LastPlayed, 10))
	}

	if g.Executable != "" && !strings.Contains(g.Executable, "steam://") {
		e.CreateElement(nameGameExecutable).SetText(g.Executable)
	}

	cats := e.CreateElement(nameCategoryList)
	for _, c := range g.Categories {
		name := c.Name
		if name == model.FavoriteNewConfigValue {
			name = model.FavoriteConfigValue
		}
		cats.CreateElement(nameCategory).SetText(name)
	}
}

func encodeFilter(parent *etree.Element, f *model.Filter) {
	e := parent.CreateElement(nameFilter)
	e.CreateElement(nameFilterName).SetText(f.Name)
	e.CreateElement(nameFilterGame).SetText(strconv.Itoa(f.Game))
	e.CreateElement(nameFilterHidden).SetText(strconv.Itoa(f.Hidden))
	e.CreateElement(nameFilterSoftware).SetText(strconv.Itoa(f.Software))
	e.CreateElement(nameFilterUncategorized).SetText(strconv.Itoa(f.Uncategorized))
	e.CreateElement(nameFilterVR).SetText(strconv.Itoa(f.VR))

	for _, c := range f.Allow {
		e.CreateElement(nameFilterAllow).SetText(c.Name)
	}
	for _, c := range f.Require {
		e.CreateElement(nameFilterRequire).SetText(c.Name)
	}
	for _, c := range f.Exclude {
		e.CreateElement(nameFilterExclude).SetText(c.Name)
	}
}

// childText returns the text of the named child element, or "".
func childText(e *etree.Element, name string) string {
	if c := e.SelectElement(name); c != nil {
		return c.Text()
	}
	return ""
}

func readBool(e *etree.Element, name string, def bool) bool {
	if c := e.SelectElement(name); c != nil {
		if v, err := strconv.ParseBool(c.Text()); err == nil {
			return v
		}
	}
	return def
}

func readInt64(e *etree.Element, name string, def int64) int64 {
	if c := e.SelectElement(name); c != nil {
		if v, err := strconv.ParseInt(c.Text(), 10, 64); err == nil {
			return v
		}
	}
	return def
}

// readIntInto assigns the parsed child value only when present and
// numeric, leaving *dst untouched otherwise.
func readIntInto(e *etree.Element, name string, dst *int) {
	if c := e.SelectElement(name); c != nil {
		if v, err := strconv.Atoi(c.Text()); err == nil {
			*dst = v
		}
	}
}

func writeBool(e *etree.Element, name string, v bool) {
	e.CreateElement(name).SetText(strconv.FormatBool(v))
}
