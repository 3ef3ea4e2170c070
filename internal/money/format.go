package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"AUD": "A$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Formatter renders amounts with locale thousands and decimal separators.
// Digits come from the decimal itself and never pass through a float.
type Formatter struct {
	printer *message.Printer
	point   string
}

func NewFormatter(tag language.Tag) *Formatter {
	p := message.NewPrinter(tag)
	return &Formatter{printer: p, point: decimalPoint(p)}
}

// decimalPoint reads the locale's decimal separator off a sample number.
func decimalPoint(p *message.Printer) string {
	sample := p.Sprint(number.Decimal(1.5, number.Scale(1)))
	sep := strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
	if sep == "" {
		return "."
	}
	return sep
}

// ParseLocale parses a BCP 47 tag such as "en-US" or "de-DE".
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("ParseLocale: %w", err)
	}
	return tag, nil
}

// DefaultLocale is used by the package-level Format functions.
var DefaultLocale = language.AmericanEnglish

var defaultFormatter = NewFormatter(DefaultLocale)

// Dollars formats with exactly two fraction digits. Values with more
// precision are rounded; use DollarsTruncated for balances.
func (f *Formatter) Dollars(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	return sign + f.group(whole) + f.point + frac
}

// group applies locale digit grouping to a run of integer digits.
func (f *Formatter) group(digits string) string {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}
	return f.printer.Sprint(number.Decimal(n))
}

// DollarsTruncated truncates to two places before formatting.
func (f *Formatter) DollarsTruncated(d decimal.Decimal) string {
	return f.Dollars(TruncateToTwoDecimals(d))
}

func (f *Formatter) Currency(d decimal.Decimal, code string) string {
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}
	if d.IsNegative() {
		return "-" + symbol + f.Dollars(d.Neg())
	}
	return symbol + f.Dollars(d)
}

func (f *Formatter) PenniesAsDollars(pennies decimal.Decimal) string {
	return f.Dollars(PenniesToDollars(pennies))
}

func (f *Formatter) PenniesAsCurrency(pennies decimal.Decimal, code string) string {
	return f.Currency(PenniesToDollars(pennies), code)
}

func FormatDollars(d decimal.Decimal) string {
	return defaultFormatter.Dollars(d)
}

func FormatDollarsTruncated(d decimal.Decimal) string {
	return defaultFormatter.DollarsTruncated(d)
}

func FormatPenniesAsDollars(pennies decimal.Decimal) string {
	return defaultFormatter.PenniesAsDollars(pennies)
}

func FormatPenniesAsCurrency(pennies decimal.Decimal, code string) string {
	return defaultFormatter.PenniesAsCurrency(pennies, code)
}
