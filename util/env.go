package util

import (
	"os"
	"strings"

	"github.com/kbukum/flowkit/errors"
)

// FormatEnvString replaces {NAME} placeholders with environment variables.
// "{{" and "}}" produce literal braces. A placeholder naming an unset
// variable returns an ENV_NOT_SET error.
//
//	FormatEnvString("{HOME}/.cache/{{tmp}}") // "/home/me/.cache/{tmp}"
func FormatEnvString(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return "", errors.InvalidArgument("s", "unmatched '{' in format string")
			}
			name := s[i+1 : i+1+end]
			if name == "" || strings.ContainsRune(name, '{') {
				return "", errors.InvalidArgument("s", "invalid placeholder {"+name+"}")
			}
			value, ok := os.LookupEnv(name)
			if !ok {
				return "", errors.EnvNotSet(name)
			}
			b.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", errors.InvalidArgument("s", "single '}' in format string")
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
