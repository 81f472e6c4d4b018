// Package format holds the storefront's presentation helpers: prices and
// dates the way the boutique prints them, phone normalization, and slugs.
package format

import (
	"strings"
	"time"
)

// Price renders a ruble amount with non-breaking thousands separators,
// e.g. 12990 -> "12 990 ₽".
func Price(n int) string {
	return group(n) + "\u00a0₽"
}

func group(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := itoa(n)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune('\u00a0')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Phone normalizes Russian numbers to "+7 (XXX) XXX-XX-XX". Anything that is
// not an 11-digit 7/8-prefixed number is returned unchanged.
func Phone(s string) string {
	var digits []byte
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) != 11 || (digits[0] != '7' && digits[0] != '8') {
		return s
	}
	d := string(digits[1:])
	return "+7 (" + d[0:3] + ") " + d[3:6] + "-" + d[6:8] + "-" + d[8:10]
}

func Date(t time.Time) string {
	return t.Format("02.01.2006")
}

func DateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}
