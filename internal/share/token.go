package share

import (
	"strings"

	"github.com/wanderplan/travel-planner-backend/internal/pkg/random"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	tokenLength   = 32
)

// newToken draws a 32-character alphanumeric share token uniformly from
// the token alphabet. Collisions with live tokens are handled by the
// caller via insert-and-retry.
func newToken(rng random.Source) string {
	var b strings.Builder
	b.Grow(tokenLength)
	for i := 0; i < tokenLength; i++ {
		b.WriteByte(tokenAlphabet[rng.IntN(len(tokenAlphabet))])
	}
	return b.String()
}
