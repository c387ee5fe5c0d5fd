package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyBrazilianSeparators(t *testing.T) {
	f := New("R$", "pt-BR")

	assert.Equal(t, "R$ 1.234,56", f.Currency(1234.56))
	assert.Equal(t, "R$ 0,00", f.Currency(0))
	assert.Equal(t, "R$ 1.000.000,00", f.Currency(1000000))
}

func TestCurrencyCustomSymbol(t *testing.T) {
	f := New("US$", "pt-BR")
	assert.Equal(t, "US$ 10,50", f.Currency(10.5))
}

func TestNewDefaults(t *testing.T) {
	f := New("", "not-a-locale")
	assert.Equal(t, "R$ 1,00", f.Currency(1))
}

func TestPercentageLabelRoundsWidthClamps(t *testing.T) {
	p := Percentage(49.6)
	assert.Equal(t, "50%", p.Label)
	assert.InDelta(t, 49.6, p.Width, 1e-9)

	// The label reports overshoot, the bar width stops at 100.
	p = Percentage(120)
	assert.Equal(t, "120%", p.Label)
	assert.Equal(t, float64(100), p.Width)

	p = Percentage(-5)
	assert.Equal(t, "-5%", p.Label)
	assert.Equal(t, float64(0), p.Width)
}

func TestDate(t *testing.T) {
	d := time.Date(2026, 9, 5, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/09/2026", Date(d))
}

func TestRelativeDaysPluralizesByMagnitude(t *testing.T) {
	assert.Equal(t, "1 dia", RelativeDays(1))
	assert.Equal(t, "-1 dia", RelativeDays(-1))
	assert.Equal(t, "0 dias", RelativeDays(0))
	assert.Equal(t, "2 dias", RelativeDays(2))
	assert.Equal(t, "-3 dias", RelativeDays(-3))
}
