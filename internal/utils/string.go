package utils

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, str = "-", str[1:]
	}
	if len(str) <= 3 {
		return sign + str
	}

	out := make([]byte, 0, len(str)+len(str)/3)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, str[i])
	}
	return sign + string(out)
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// MaxWidth returns the widest cell count among ss.
func MaxWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		if sw := runewidth.StringWidth(s); sw > w {
			w = sw
		}
	}
	return w
}
