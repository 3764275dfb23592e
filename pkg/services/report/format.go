package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/lince-tools/lince-report/pkg/i18n"
	"github.com/lince-tools/lince-report/pkg/models/domain"
)

// FormatValue renders a reading value for detailed tables: fixed to two
// decimals, trailing zeros and a trailing point stripped. Nil renders "-".
func FormatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	s := fmt.Sprintf("%.2f", *v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatRange renders a spec limit range. Open bounds render as the
// infinity sign.
func FormatRange(r domain.Range) string {
	min, max := "∞", "∞"
	if r.Min != nil {
		min = FormatValue(r.Min)
	}
	if r.Max != nil {
		max = FormatValue(r.Max)
	}
	return fmt.Sprintf("%s - %s", min, max)
}

// FormatDate renders a timestamp with the locale's short date layout.
func FormatDate(t time.Time, locale i18n.Locale) string {
	return t.Format(locale.DateLayout())
}

// FormatDateTime renders a timestamp with the locale's date+time layout.
func FormatDateTime(t time.Time, locale i18n.Locale) string {
	return t.Format(locale.DateTimeLayout())
}

var dateInputLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// FormatDateString reformats a raw date string into the locale layout.
// Unparseable input is returned unchanged so one bad date never aborts a
// whole document.
func FormatDateString(raw string, locale i18n.Locale) string {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatDate(t, locale)
		}
	}
	return raw
}

// SanitizeFilename derives the download filename from a report name: every
// non-alphanumeric character becomes an underscore and a single ".pdf"
// suffix is enforced, without doubling when the name already carries one.
func SanitizeFilename(name string) string {
	base := name
	if len(base) >= 4 && strings.EqualFold(base[len(base)-4:], ".pdf") {
		base = base[:len(base)-4]
	}
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		b.WriteString("report")
	}
	return b.String() + ".pdf"
}
