package checkout

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatRupees renders an amount with the rupee sign and Indian digit
// grouping: 125000 becomes "₹1,25,000". At most three decimals are kept and
// trailing zeros are dropped.
func FormatRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}

	s := strconv.FormatFloat(amount, 'f', 3, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	out := sign + "₹" + groupIndian(intPart)
	if frac != "" {
		out += "." + frac
	}
	return out
}

// groupIndian inserts separators after the last three digits and then
// every two digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

// ShortCode is the order number shown to customers.
func ShortCode(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

var ist = time.FixedZone("IST", 5*60*60+30*60)

// FormatPlacedOn renders the order date in Indian Standard Time.
func FormatPlacedOn(t time.Time) string {
	return t.In(ist).Format("2 January 2006")
}
