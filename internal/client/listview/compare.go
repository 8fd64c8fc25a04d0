package listview

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var collator = collate.New(language.Und, collate.IgnoreCase)

// CompareText orders strings with locale-aware, case-insensitive collation.
func CompareText(a, b string) int {
	return collator.CompareString(a, b)
}

func CompareInt(a, b int) int {
	return cmp.Compare(a, b)
}

// CompareBool sorts false before true.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// CompareDayMonth orders "dd.mm.yyyy" display dates by month then day. The
// year does not participate, so birthdays order the way a calendar reads.
func CompareDayMonth(a, b string) int {
	ka, oka := dayMonthKey(a)
	kb, okb := dayMonthKey(b)
	if !oka || !okb {
		return CompareText(a, b)
	}
	return strings.Compare(ka, kb)
}

func dayMonthKey(date string) (string, bool) {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return "", false
	}
	return parts[1] + "-" + parts[0], true
}
