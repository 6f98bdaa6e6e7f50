// Package autocat implements the profile's category-generation rules.
// Each rule is a named variant carrying its own parameters; the
// variant is identified in the persisted document by its element tag
// and decoded through an explicit registry.
package autocat

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// AutoCat is one category-generation rule.
type AutoCat interface {
	// Type returns the element tag identifying the variant in the
	// persisted document.
	Type() string

	// GetBase returns the fields shared by every variant.
	GetBase() *Base

	// Clone returns an independent deep copy.
	Clone() AutoCat

	// encodeParams writes the variant's own parameters under e. The
	// shared fields are written by Encode.
	encodeParams(e *etree.Element)
}

// Base holds the fields common to every rule variant.
type Base struct {
	Name   string
	Filter string // name of the saved filter to restrict to, empty = all
	Prefix string // prepended to every generated category name
}

// GetBase implements part of the AutoCat interface.
func (b *Base) GetBase() *Base { return b }

// Shared element names.
const (
	xmlName   = "Name"
	xmlFilter = "Filter"
	xmlPrefix = "Prefix"
)

// loaders maps a variant element tag to its decode function.
// Registration happens in each variant's init.
var loaders = map[string]func(e *etree.Element) (AutoCat, error){}

func register(tag string, fn func(e *etree.Element) (AutoCat, error)) {
	loaders[tag] = fn
}

// Load decodes a single rule element, dispatching on its tag. Unknown
// tags and rules without a name are errors; the caller decides whether
// to skip or abort.
func Load(e *etree.Element) (AutoCat, error) {
	fn, ok := loaders[e.Tag]
	if !ok {
		return nil, fmt.Errorf("unknown autocat type %q", e.Tag)
	}
	return fn(e)
}

// Encode appends a child element for the rule under parent, writing
// the shared fields followed by the variant parameters.
func Encode(parent *etree.Element, ac AutoCat) {
	e := parent.CreateElement(ac.Type())
	b := ac.GetBase()
	e.CreateElement(xmlName).SetText(b.Name)
	if b.Filter != "" {
		e.CreateElement(xmlFilter).SetText(b.Filter)
	}
	if b.Prefix != "" {
		e.CreateElement(xmlPrefix).SetText(b.Prefix)
	}
	ac.encodeParams(e)
}

// loadBase reads the shared fields. A rule without a name is rejected.
func loadBase(e *etree.Element) (Base, error) {
	b := Base{
		Name:   childText(e, xmlName),
		Filter: childText(e, xmlFilter),
		Prefix: childText(e, xmlPrefix),
	}
	if b.Name == "" {
		return b, fmt.Errorf("autocat %q has no name", e.Tag)
	}
	return b, nil
}

// childText returns the text of the named child element, or "".
func childText(e *etree.Element, name string) string {
	if c := e.SelectElement(name); c != nil {
		return c.Text()
	}
	return ""
}

// childInt returns the named child parsed as an int, or def.
func childInt(e *etree.Element, name string, def int) int {
	if c := e.SelectElement(name); c != nil {
		if v, err := strconv.Atoi(c.Text()); err == nil {
			return v
		}
	}
	return def
}

// childFloat returns the named child parsed as a float64, or def.
func childFloat(e *etree.Element, name string, def float64) float64 {
	if c := e.SelectElement(name); c != nil {
		if v, err := strconv.ParseFloat(c.Text(), 64); err == nil {
			return v
		}
	}
	return def
}

// childBool returns the named child parsed as a bool, or def.
func childBool(e *etree.Element, name string, def bool) bool {
	if c := e.SelectElement(name); c != nil {
		if v, err := strconv.ParseBool(c.Text()); err == nil {
			return v
		}
	}
	return def
}

// childList returns the text of every item child under the named list
// child, e.g. <list><item>a</item><item>b</item></list>.
func childList(e *etree.Element, list, item string) []string {
	c := e.SelectElement(list)
	if c == nil {
		return nil
	}
	var out []string
	for _, el := range c.SelectElements(item) {
		if t := el.Text(); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// encodeList writes a list child holding one item element per value.
func encodeList(e *etree.Element, list, item string, values []string) {
	c := e.CreateElement(list)
	for _, v := range values {
		c.CreateElement(item).SetText(v)
	}
}

func encodeBool(e *etree.Element, name string, v bool) {
	e.CreateElement(name).SetText(strconv.FormatBool(v))
}

func encodeInt(e *etree.Element, name string, v int) {
	e.CreateElement(name).SetText(strconv.Itoa(v))
}

func encodeFloat(e *etree.Element, name string, v float64) {
	e.CreateElement(name).SetText(strconv.FormatFloat(v, 'g', -1, 64))
}
