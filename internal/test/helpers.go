// Package test holds helpers shared by tests across the module
package test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/blackoak-io/gohedera/ledger"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// FakeClock is a deterministic clock for engine tests. Now returns the
// stored instant and Sleep records the requested duration and advances
// the instant instead of blocking
type FakeClock struct {
	Instant ledger.Timestamp
	Sleeps  []time.Duration
}

func NewFakeClock(seconds int64, nanos uint32) *FakeClock {
	return &FakeClock{
		Instant: ledger.Timestamp{Seconds: seconds, Nanos: nanos},
	}
}

func (c *FakeClock) Now() ledger.Timestamp {
	return c.Instant
}

func (c *FakeClock) Sleep(d time.Duration) {
	c.Sleeps = append(c.Sleeps, d)
	c.Instant.Seconds += int64(d / time.Second)
}
