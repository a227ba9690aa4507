// Package label renders locale-aware month headings.
package label

import (
	"fmt"
	"time"
)

// DefaultLocale is used when no locale is configured or the configured one
// is unknown.
const DefaultLocale = "en"

var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

// Formatter renders month labels for one locale. Unknown locales fall back
// to English.
type Formatter struct {
	names [12]string
}

// New returns a formatter for the given locale tag.
func New(locale string) *Formatter {
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames[DefaultLocale]
	}
	return &Formatter{names: names}
}

// Month renders "March 2024" in the formatter's locale.
func (f *Formatter) Month(month time.Time) string {
	return fmt.Sprintf("%s %d", f.names[int(month.Month())-1], month.Year())
}

// MonthName renders just the localized month name.
func (f *Formatter) MonthName(m time.Month) string {
	return f.names[int(m)-1]
}

// Locales lists the locale tags with built-in tables.
func Locales() []string {
	return []string{"en", "de", "es", "fr"}
}
