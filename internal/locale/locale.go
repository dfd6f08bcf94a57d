// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locale renders account timestamps the way the operator's locale
// writes dates, in local time.
package locale

import (
	"strings"
	"time"

	"github.com/MKhiriev/harbor-admin/models"
	"golang.org/x/text/language"
)

// Placeholder is rendered for a missing timestamp.
const Placeholder = "-"

// InvalidDate is rendered for a value the backend sent that is not a
// timestamp.
const InvalidDate = "Invalid Date"

// supported lists the locales with a dedicated layout. The first entry is the
// fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Russian,
	language.Japanese,
	language.BrazilianPortuguese,
}

var layouts = map[language.Tag]string{
	language.AmericanEnglish:     "1/2/2006, 3:04:05 PM",
	language.BritishEnglish:      "02/01/2006, 15:04:05",
	language.German:              "2.1.2006, 15:04:05",
	language.French:              "02/01/2006 15:04:05",
	language.Spanish:             "2/1/2006, 15:04:05",
	language.Italian:             "2/1/2006, 15:04:05",
	language.Russian:             "02.01.2006, 15:04:05",
	language.Japanese:            "2006/1/2 15:04:05",
	language.BrazilianPortuguese: "02/01/2006, 15:04:05",
}

var matcher = language.NewMatcher(supported)

// Default returns the fallback locale.
func Default() language.Tag {
	return supported[0]
}

// ParseTag parses a locale name as found in LANG or in a BCP 47 string,
// e.g. "fr_FR.UTF-8", "de-DE" or "pt_BR". The bool is false when raw does
// not name a language.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.Und, false
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Match returns the supported locale closest to tag.
func Match(tag language.Tag) language.Tag {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// Formatter formats timestamps for one locale.
type Formatter struct {
	tag      language.Tag
	layout   string
	location *time.Location
}

// NewFormatter returns a Formatter for the locale named raw, falling back to
// the default locale when raw is empty or unknown. Times are rendered in the
// local time zone.
func NewFormatter(raw string) *Formatter {
	tag := Default()
	if parsed, ok := ParseTag(raw); ok {
		tag = Match(parsed)
	}

	return &Formatter{
		tag:      tag,
		layout:   layouts[tag],
		location: time.Local,
	}
}

// In returns a copy of f rendering times in loc.
func (f *Formatter) In(loc *time.Location) *Formatter {
	clone := *f
	clone.location = loc
	return &clone
}

// Tag reports the locale f formats for.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Format renders ts, [InvalidDate] when the backend value was undecodable,
// or [Placeholder] when ts is missing.
func (f *Formatter) Format(ts models.Timestamp) string {
	if ts.Invalid() {
		return InvalidDate
	}
	if ts.IsZero() {
		return Placeholder
	}
	return ts.In(f.location).Format(f.layout)
}
