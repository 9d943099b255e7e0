package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const referenceChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReference creates a booking reference in the format
// "BK<yyyyMMddHHmmss><XXX>": a timestamp component plus a randomized suffix.
// References are checked for uniqueness at persist time; a collision is
// retried with a fresh reference.
func GenerateReference(now time.Time) (string, error) {
	suffix := make([]byte, 3)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate booking reference: %w", err)
		}
		suffix[i] = referenceChars[n.Int64()]
	}
	return "BK" + now.UTC().Format("20060102150405") + string(suffix), nil
}
