// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides an opaque locale identifier together with
// the locale sensitive calendar rules needed for date handling: the
// weekday a week starts on and the textual names of months, weekdays
// and day periods. Locale identity is built on BCP 47 language tags
// from golang.org/x/text/language.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a language/region combination. The zero value is
// the undetermined locale; callers treat it as "use the ambient
// default".
type Locale struct {
	tag language.Tag
}

// Make returns the Locale for the given identifier. POSIX style
// identifiers such as "de_DE.UTF-8" are normalized to their BCP 47
// form before parsing. Unparseable identifiers yield the best
// approximation the language package can produce.
func Make(id string) Locale {
	return Locale{tag: language.Make(normalize(id))}
}

// MustParse is like Make but panics if the identifier cannot be
// parsed. It simplifies the declaration of locale constants.
func MustParse(id string) Locale {
	return Locale{tag: language.MustParse(normalize(id))}
}

// FromTag returns the Locale for the given language tag.
func FromTag(tag language.Tag) Locale {
	return Locale{tag: tag}
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// IsZero returns true for the zero Locale.
func (l Locale) IsZero() bool {
	return l.tag == language.Tag{}
}

func (l Locale) String() string {
	return l.tag.String()
}

func normalize(id string) string {
	// "de_DE.UTF-8@euro" carries a charset and modifier that BCP 47
	// has no use for.
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	return strings.ReplaceAll(id, "_", "-")
}

// System returns the locale configured for the current process,
// consulting LC_ALL, LC_TIME and LANG in that order. The environment
// is read on every call so that changes take effect immediately.
// An unset or POSIX ("C") configuration yields en-US.
func System() Locale {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if val == "C" || val == "POSIX" {
			break
		}
		return Make(val)
	}
	return Locale{tag: language.AmericanEnglish}
}
