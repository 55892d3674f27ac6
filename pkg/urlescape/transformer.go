package urlescape

import "golang.org/x/text/transform"

// Transformer streams Escape through a transform.Reader or transform.Writer. The output is the
// same as Escape on the concatenated input whatever the chunking.
type Transformer struct {
	safe *[256]bool
	form bool
}

var _ transform.Transformer = (*Transformer)(nil)

func NewTransformer(flags Flags) *Transformer {
	return &Transformer{
		safe: tableFor(flags),
		form: flags.Has(LikeUrlEncode),
	}
}

func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch {
		case t.safe[c]:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		case t.form && c == ' ':
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '+'
			nDst++
		default:
			if nDst+3 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '%'
			dst[nDst+1] = upperHex[c>>4]
			dst[nDst+2] = upperHex[c&0xf]
			nDst += 3
		}
		nSrc++
	}
	return nDst, nSrc, nil
}

// Reset is a no-op: the escaper carries nothing between calls.
func (t *Transformer) Reset() {}
