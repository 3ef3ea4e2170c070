package money

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTruncateToTwoDecimals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"16.236", "16.23"},
		{"16.999", "16.99"},
		{"0", "0"},
		{"0.005", "0"},
		{"0.29", "0.29"},
		{"50.999", "50.99"},
		{"100", "100"},
		{"-16.236", "-16.24"},
		{"-0.001", "-0.01"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := TruncateToTwoDecimals(d(tc.in))
			assert.True(t, got.Equal(d(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestTruncateIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		x := decimal.New(r.Int64N(20_000_000)-10_000_000, -int32(r.IntN(6)))
		once := TruncateToTwoDecimals(x)
		twice := TruncateToTwoDecimals(once)
		require.True(t, once.Equal(twice), "x=%s once=%s twice=%s", x, once, twice)
		require.True(t, once.LessThanOrEqual(x), "truncation must never exceed input: x=%s got=%s", x, once)
	}
}

func TestPenniesToDollars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"11234", "112.34"},
		{"0", "0"},
		{"1", "0.01"},
		{"11234.4", "112.34"},
		{"11234.5", "112.35"},
		{"-250", "-2.5"},
		{"-2.5", "-0.02"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := PenniesToDollars(d(tc.in))
			assert.True(t, got.Equal(d(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestDollarsToPennies(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"112.34", 11234},
		{"0.1", 10},
		{"19.999", 2000},
		{"0.004", 0},
		{"0.005", 1},
		{"-1.25", -125},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, DollarsToPennies(d(tc.in)))
		})
	}
}

func TestPenniesRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	samples := []int64{0, 1, -1, 99, 100, 11234, 1 << 40, -(1 << 40)}
	for range 1000 {
		samples = append(samples, r.Int64N(1<<50)-(1<<49))
	}

	for _, n := range samples {
		got := DollarsToPennies(PenniesToDollars(decimal.NewFromInt(n)))
		require.Equal(t, n, got)
	}
}

func TestIsMaterial(t *testing.T) {
	assert.False(t, IsMaterial(d("0")))
	assert.False(t, IsMaterial(d("0.009")))
	assert.True(t, IsMaterial(d("0.01")))
	assert.True(t, IsMaterial(d("50.99")))
	assert.False(t, IsMaterial(d("-5")))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatDollars(d("1234.5")))
	assert.Equal(t, "0.00", FormatDollars(d("0")))
	assert.Equal(t, "16.24", FormatDollars(d("16.236")))
	assert.Equal(t, "16.23", FormatDollarsTruncated(d("16.236")))
	assert.Equal(t, "16.99", FormatDollarsTruncated(d("16.999")))
	assert.Equal(t, "1,234,567.89", FormatDollarsTruncated(d("1234567.899")))
	assert.Equal(t, "112.34", FormatPenniesAsDollars(d("11234")))
	assert.Equal(t, "$112.34", FormatPenniesAsCurrency(d("11234"), "USD"))
	assert.Equal(t, "-$2.50", FormatPenniesAsCurrency(d("-250"), "USD"))
	assert.Equal(t, "CHF 1,000.00", FormatPenniesAsCurrency(d("100000"), "CHF"))
}

func TestFormattingIsExactForLargeAmounts(t *testing.T) {
	assert.Equal(t, "90,071,992,547,409.99", FormatDollarsTruncated(d("90071992547409.99")))
	assert.Equal(t, "90,071,992,547,409.99", FormatDollars(d("90071992547409.994")))
	assert.Equal(t, "0.29", FormatDollarsTruncated(d("0.29")))
	assert.Equal(t, "-1,000.01", FormatDollars(d("-1000.006")))
	assert.Equal(t, "99999999999999999999.00", FormatDollars(d("99999999999999999999")), "beyond int64 the digits stay ungrouped")
}

func TestFormatterLocale(t *testing.T) {
	tag, err := ParseLocale("de-DE")
	require.NoError(t, err)

	f := NewFormatter(tag)
	assert.Equal(t, "1.234,50", f.Dollars(d("1234.5")))

	_, err = ParseLocale("not a locale!")
	require.Error(t, err)

	assert.Equal(t, "1,234.50", NewFormatter(language.AmericanEnglish).Dollars(d("1234.5")))
}
