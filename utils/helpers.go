package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

const CurrencySymbol = "₹"

const orderPrefix = "ORD"

// FormatCurrency renders an amount with the platform currency symbol.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, amount)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug turns a restaurant name into a URL slug: lowercase,
// non-alphanumeric runs collapsed to "-", trimmed, max 50 chars.
func GenerateSlug(name string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// GenerateOrderNumber builds a human-readable order number from the last six
// digits of the unix-millisecond clock plus three random digits.
func GenerateOrderNumber() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return fmt.Sprintf("%s%s%03d", orderPrefix, ts, rand.Intn(1000))
}

// tempPasswordChars omits easily-confused characters (I, O, 0, 1).
const tempPasswordChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTempPassword returns an 8-char one-time password for a freshly
// approved restaurant account.
func GenerateTempPassword() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteByte(tempPasswordChars[rand.Intn(len(tempPasswordChars))])
	}
	return b.String()
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// phonePattern matches a 10-digit Indian mobile number.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

var phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phoneStrip.Replace(phone))
}
