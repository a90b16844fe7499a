// Package locale holds the site's supported locales and the localized
// text map type stored as JSONB on content rows.
package locale

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type Locale string

const (
	PT Locale = "pt"
	EN Locale = "en"
	FR Locale = "fr"
)

// Default is the site's primary language.
const Default = PT

var supported = map[Locale]bool{PT: true, EN: true, FR: true}

// All lists supported locales in display order.
func All() []Locale {
	return []Locale{PT, EN, FR}
}

func IsSupported(l Locale) bool {
	return supported[l]
}

// Resolve maps an arbitrary string (typically a URL path segment) to a
// supported locale. Anything unrecognized falls back to Default.
func Resolve(s string) Locale {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if supported[l] {
		return l
	}
	return Default
}

// FromAcceptLanguage resolves a locale from an Accept-Language header.
// Only the first entry is considered; quality tags and region subtags
// are stripped ("pt-PT,en;q=0.8" resolves to pt).
func FromAcceptLanguage(header string) Locale {
	first := header
	if i := strings.Index(first, ","); i >= 0 {
		first = first[:i]
	}
	if i := strings.Index(first, ";"); i >= 0 {
		first = first[:i]
	}
	if i := strings.Index(first, "-"); i >= 0 {
		first = first[:i]
	}
	return Resolve(first)
}

// Text is a per-locale string map. Every localized field on a content
// row uses this type; lookups never fail because Get falls back to the
// default locale and then to the empty string.
type Text map[Locale]string

// Get returns the value for the requested locale, the Default value
// when the requested one is missing, or "" when neither exists.
func (t Text) Get(l Locale) string {
	if v, ok := t[l]; ok && v != "" {
		return v
	}
	return t[Default]
}

// IsEmpty reports whether no locale carries a value.
func (t Text) IsEmpty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

// Scan implements sql.Scanner so Text columns (JSONB) load directly.
func (t *Text) Scan(src any) error {
	if src == nil {
		*t = Text{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("locale: cannot scan %T into Text", src)
	}
	m := map[Locale]string{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("locale: invalid text map: %w", err)
	}
	*t = m
	return nil
}

// Value implements driver.Valuer for JSONB parameters.
func (t Text) Value() (driver.Value, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t)
}
