package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatTk renders a taka amount with digit grouping, e.g. 12500 -> "৳12,500".
func FormatTk(amount int64) string {
	return printer.Sprintf("৳%d", amount)
}

// FormatTkPlain is FormatTk without the currency sign, for contexts that
// label the column themselves.
func FormatTkPlain(amount int64) string {
	return printer.Sprintf("%d", amount)
}
