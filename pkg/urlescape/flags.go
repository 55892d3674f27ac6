package urlescape

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Flags selects the escaping dialect. Options are combined with a bitwise OR.
type Flags uint8

const (
	// Strict escapes everything but the RFC 3986 unreserved set plus the marks !*'().
	Strict Flags = 0
	// LikeUrlEncode emulates application/x-www-form-urlencoded: space becomes '+' and *'() are escaped.
	LikeUrlEncode Flags = 1 << 0
)

const knownFlags = LikeUrlEncode

var toString = map[Flags]string{
	Strict:        "strict",
	LikeUrlEncode: "likeUrlEncode",
}

var toID = map[string]Flags{
	"strict":        Strict,
	"likeurlencode": LikeUrlEncode,
	"urlencode":     LikeUrlEncode,
	"form":          LikeUrlEncode,
}

// Has reports whether every bit of o is set in f. Strict is the absence of flags, not a flag,
// so Has(Strict) is always false: test for strict mode with !f.Has(LikeUrlEncode).
func (f Flags) Has(o Flags) bool {
	return o != 0 && f&o == o
}

func (f Flags) String() string {
	if s, ok := toString[f&knownFlags]; ok {
		return s
	}
	return toString[Strict]
}

// ParseFlags resolves a dialect name, case insensitive.
func ParseFlags(name string) (Flags, error) {
	f, ok := toID[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Strict, errors.Wrapf(ErrUnknownMode, "'%s'", name)
	}
	return f, nil
}

func (f Flags) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *Flags) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFlags(s)
	if err != nil {
		return errors.Wrap(err, "failed to unmarshall escape mode")
	}
	*f = parsed
	return nil
}

func (f Flags) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Flags) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseFlags(s)
	if err != nil {
		return errors.Wrap(err, "failed to unmarshall escape mode")
	}
	*f = parsed
	return nil
}
