// Package urlescape percent-encodes text for query strings, form bodies and path segments.
//
// Two dialects are supported. Strict mode leaves only letters, digits and -_.~!*'() unescaped,
// the way a data-escaping routine does. LikeUrlEncode mode mirrors legacy form encoding: space
// is written as '+' and the set of unescaped punctuation shrinks to -_.!.
//
// Non-ASCII characters are escaped byte by byte from their UTF-8 form, so 'ä' becomes %C3%A4.
// The caller must supply valid UTF-8: invalid sequences are escaped as-is and never replaced.
package urlescape

import "github.com/pkg/errors"

const upperHex = "0123456789ABCDEF"

const (
	strictPunctuation = "-_.~!*'()"
	formPunctuation   = "-_.!"
)

var (
	strictSafe [256]bool
	formSafe   [256]bool
)

func init() {
	strictSafe = newSafeTable(strictPunctuation)
	formSafe = newSafeTable(formPunctuation)
}

func newSafeTable(punctuation string) (t [256]bool) {
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for i := 0; i < len(punctuation); i++ {
		t[punctuation[i]] = true
	}
	return t
}

func tableFor(flags Flags) *[256]bool {
	if flags.Has(LikeUrlEncode) {
		return &formSafe
	}
	return &strictSafe
}

// IsSafe reports whether b is written literally under flags.
// Space is never safe: in LikeUrlEncode mode it is substituted, not copied.
func IsSafe(b byte, flags Flags) bool {
	return tableFor(flags)[b]
}

// Escape returns s percent-encoded under flags. It never fails.
func Escape(s string, flags Flags) string {
	safe := tableFor(flags)
	form := flags.Has(LikeUrlEncode)

	escapes := 0
	spaces := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case safe[c]:
		case form && c == ' ':
			spaces++
		default:
			escapes++
		}
	}
	if escapes == 0 && spaces == 0 {
		return s
	}

	b := make([]byte, 0, len(s)+2*escapes)
	return string(appendEscape(b, s, safe, form))
}

// AppendEscape appends the escaped form of s to dst and returns the extended buffer.
func AppendEscape(dst []byte, s string, flags Flags) []byte {
	return appendEscape(dst, s, tableFor(flags), flags.Has(LikeUrlEncode))
}

func appendEscape(dst []byte, s string, safe *[256]bool, form bool) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case safe[c]:
			dst = append(dst, c)
		case form && c == ' ':
			dst = append(dst, '+')
		default:
			dst = append(dst, '%', upperHex[c>>4], upperHex[c&0xf])
		}
	}
	return dst
}

// EscapeValue is Escape for optional values. A nil s is a programming error and is reported
// as ErrInvalidInput rather than encoded as the empty string.
func EscapeValue(s *string, flags Flags) (string, error) {
	if s == nil {
		return "", errors.WithStack(ErrInvalidInput)
	}
	return Escape(*s, flags), nil
}
