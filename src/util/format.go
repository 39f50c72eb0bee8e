package util

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders a dollar amount with thousands separators,
// e.g. 1234.5 -> "$1,234.5".
func FormatCurrency(v float64) string {
	return "$" + humanize.Commaf(v)
}

// FormatKey turns a snake_case column name into a display label,
// e.g. "net_revenue_change" -> "Net Revenue Change".
func FormatKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
