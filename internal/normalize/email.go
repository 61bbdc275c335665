// Package normalize produces the identity keys used to deduplicate
// subscribers.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yardlineiq/picksserver/internal/domain"
)

var lower = cases.Lower(language.Und)

// Email trims and lower-cases an address to its stable lookup key.
// An address must contain "@" with something on both sides.
func Email(s string) (string, error) {
	s = lower.String(strings.TrimSpace(s))
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return "", domain.ErrInvalidEmail
	}
	return s, nil
}
