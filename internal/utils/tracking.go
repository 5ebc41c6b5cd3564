package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TrackingTokenLength is the number of random characters appended to the
// timestamp portion of a tracking ID.
const TrackingTokenLength = 9

// NewTrackingID produces a public tracking identifier: the prefix, the current
// wall-clock time in milliseconds, and an upper-cased base-36 random token.
// Uniqueness is effectively guaranteed by the random suffix; the orders table
// unique index is the safety net for the astronomically unlikely collision.
func NewTrackingID(prefix string) (string, error) {
	token := make([]byte, TrackingTokenLength)
	max := big.NewInt(int64(len(trackingAlphabet)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		token[i] = trackingAlphabet[n.Int64()]
	}

	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixMilli(), token), nil
}
