// Copyright 2024 Black Oak Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"fmt"
	"time"

	"github.com/blackoak-io/gohedera/cbor"
)

// Timestamp is a wall-clock instant with nanosecond precision
type Timestamp struct {
	cbor.StructAsArray
	Seconds int64
	Nanos   uint32
}

// Now returns the current wall-clock time
func Now() Timestamp {
	t := time.Now()
	return Timestamp{
		Seconds: t.Unix(),
		Nanos:   uint32(t.Nanosecond()), //nolint:gosec
	}
}

// MinusSeconds subtracts whole seconds, saturating at zero
func (t Timestamp) MinusSeconds(seconds uint32) Timestamp {
	remaining := t.Seconds - int64(seconds)
	if remaining < 0 {
		remaining = 0
	}
	return Timestamp{Seconds: remaining, Nanos: t.Nanos}
}

// Compare returns -1, 0, or 1 ordering t against other
func (t Timestamp) Compare(other Timestamp) int {
	if t.Seconds != other.Seconds {
		if t.Seconds < other.Seconds {
			return -1
		}
		return 1
	}
	if t.Nanos != other.Nanos {
		if t.Nanos < other.Nanos {
			return -1
		}
		return 1
	}
	return 0
}

// Time converts to a stdlib time.Time
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos))
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%d", t.Seconds, t.Nanos)
}
