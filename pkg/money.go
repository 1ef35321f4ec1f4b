package pkg

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money formats an amount as US dollars, e.g. $1,234.56.
func Money(v float64) string {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	if rounded < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -rounded)
	}
	return "$" + humanize.FormatFloat("#,###.##", rounded)
}
