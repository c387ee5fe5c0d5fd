// Package format renders metric outputs for display: currency amounts,
// bounded progress indicators, dates and relative day counts.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts under one currency symbol and locale. The zero
// separator conventions come from the locale tag, pt-BR by default.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func New(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	if symbol == "" {
		symbol = "R$"
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Currency renders an amount with the locale's thousands and decimal
// separators and exactly two fraction digits, e.g. "R$ 1.234,56".
func (f *Formatter) Currency(amount float64) string {
	return f.symbol + " " + f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// Progress is a display-ready percentage: the label rounds to a whole
// number and may exceed 100%, the indicator width is clamped to [0,100].
type Progress struct {
	Label string  `json:"label"`
	Width float64 `json:"width"`
}

func Percentage(value float64) Progress {
	return Progress{
		Label: fmt.Sprintf("%d%%", int(math.Round(value))),
		Width: math.Min(math.Max(value, 0), 100),
	}
}

// Date renders a date as DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// RelativeDays renders a signed day count with the noun pluralized by
// magnitude, not sign: "1 dia", "2 dias", "-1 dia".
func RelativeDays(days int) string {
	noun := "dias"
	if days == 1 || days == -1 {
		noun = "dia"
	}
	return fmt.Sprintf("%d %s", days, noun)
}
