package debugkit

import (
	"strconv"
	"strings"
)

// TrimFloat formats a float compactly for debug output: fixed notation with
// trailing zeros (and a dangling decimal point) removed, so 2.500000
// becomes "2.5" and 4.000000 becomes "4". Parsing the result back yields
// the value rounded to 6 decimals.
func TrimFloat(value float32) string {
	s := strconv.FormatFloat(float64(value), 'f', 6, 32)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

var escaper = strings.NewReplacer(
	"\\", "\\\\",
	"\t", "\\t",
	"\n", "\\n",
	"\r", "\\r",
	"\"", "\\\"",
)

// Escape replaces control characters, backslashes and double quotes with
// backslash sequences so names stay on one dump line. Unescape inverts it.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape is the inverse of Escape. Unknown escape sequences and a
// trailing lone backslash pass through unchanged.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Quote returns the escaped string in double quotes.
func Quote(s string) string {
	return "\"" + Escape(s) + "\""
}
