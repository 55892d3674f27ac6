package urlescape

import (
	"strings"

	"github.com/pkg/errors"
)

// Unescape reverses Escape. Hex digits are accepted in either case. '+' decodes to a space
// only in LikeUrlEncode mode. Bytes that did not need escaping are copied unchanged.
func Unescape(s string, flags Flags) (string, error) {
	form := flags.Has(LikeUrlEncode)

	n := 0
	hasPlus := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				bad := s[i:]
				if len(bad) > 3 {
					bad = bad[:3]
				}
				return "", errors.Wrapf(ErrMalformedEscape, "'%s' at offset %d", bad, i)
			}
			n++
			i += 2
		case '+':
			hasPlus = form
		}
	}
	if n == 0 && !hasPlus {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s) - 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%':
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case c == '+' && form:
			sb.WriteByte(' ')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
