package model

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

const externalIDTimeFormat = "200601021504"

// ExternalID derives the idempotency key for a match. The same home code,
// away code, and kickoff minute always hash to the same 32 lowercase hex
// characters, so re-running match creation with identical inputs reuses the
// identifier instead of minting a new one. Seconds and finer are discarded.
// This is not a security control.
func ExternalID(homeCode, awayCode string, kickoff time.Time) string {
	seed := fmt.Sprintf("%s-%s-%s", homeCode, awayCode, kickoff.UTC().Format(externalIDTimeFormat))
	sum := md5.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])
}
