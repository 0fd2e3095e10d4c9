// Package i18n translates region labels and UI strings with gettext catalogs.
package i18n

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const domain = "default"

// fallback holds the English UI strings used when the catalog has no
// translation for a key.
var fallback = map[string]string{
	"PRESS_INTERACT":  "Press E to enter %s",
	"ACTIVITY_ACTIVE": "%s in progress. Press Enter when done.",
	"ACTIVITY_DONE":   "Press Enter to return to the island",
	"TRAVELLING_TO":   "Travelling to %s",
	"NO_ROUTE":        "No route to %s",
	"SEED":            "Seed %d",
	"HELP":            "WASD/arrows move, Shift run, E enter, 1-9 travel, X stop, Q quit",
}

// Catalog looks up translations for one language. A Catalog with no
// locale directory serves the built-in English strings.
type Catalog struct {
	loc   *gotext.Locale
	title cases.Caser
}

// New loads dir/<lang>/LC_MESSAGES/default.po. Missing files are not an
// error; lookups fall back to English, then to the key.
func New(dir, lang string) *Catalog {
	c := &Catalog{title: cases.Title(language.BritishEnglish)}
	if dir != "" && lang != "" {
		c.loc = gotext.NewLocale(dir, lang)
		c.loc.AddDomain(domain)
	}
	return c
}

// Get translates key without formatting it.
func (c *Catalog) Get(key string) string {
	if c != nil && c.loc != nil {
		if t := c.loc.Get(key); t != key {
			return t
		}
	}
	if t, ok := fallback[key]; ok {
		return t
	}
	return key
}

// Getf translates key, then formats the translation with args.
func (c *Catalog) Getf(key string, args ...interface{}) string {
	return fmt.Sprintf(c.Get(key), args...)
}

// RegionLabel returns the display name of a region: its translation if the
// catalog has one, else label, else the humanized name.
func (c *Catalog) RegionLabel(name, label string) string {
	if t := c.Get(name); t != name {
		return t
	}
	if label != "" {
		return label
	}
	return c.Humanize(name)
}

// Humanize turns an identifier such as "softwareValley" into "Software Valley".
func (c *Catalog) Humanize(id string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range id {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && len(cur) > 0 && !unicode.IsUpper(cur[len(cur)-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return c.title.String(strings.ToLower(strings.Join(words, " ")))
}
