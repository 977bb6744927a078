package domain

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const orderNumberPrefix = "LO-"

var base36Alphabet = []byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// NewOrderNumber builds a human-facing order number of the form
// LO-<base36 epoch millis>-<4 random base36 chars>. Uniqueness is
// probabilistic; the storage layer enforces a unique constraint and the
// caller retries on conflict.
func NewOrderNumber(now time.Time) string {
	var sb strings.Builder
	sb.WriteString(orderNumberPrefix)
	sb.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	sb.WriteByte('-')
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// fall back to a timestamp-derived digit rather than panic.
			sb.WriteByte(base36Alphabet[time.Now().UnixNano()%36])
			continue
		}
		sb.WriteByte(base36Alphabet[n.Int64()])
	}
	return sb.String()
}

// IsOrderNumber reports whether the value matches the generated shape.
func IsOrderNumber(value string) bool {
	if !strings.HasPrefix(value, orderNumberPrefix) {
		return false
	}
	rest := strings.TrimPrefix(value, orderNumberPrefix)
	parts := strings.Split(rest, "-")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != 4 {
		return false
	}
	for _, part := range parts {
		for i := 0; i < len(part); i++ {
			c := part[i]
			if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
				return false
			}
		}
	}
	return true
}
