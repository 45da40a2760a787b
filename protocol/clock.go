// Copyright 2025 Black Oak Software
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

package protocol

import (
	"time"

	"github.com/blackoak-io/gohedera/ledger"
)

// Clock provides the current time and blocking sleeps to the engines.
// Retry backoff and transaction ID generation go through this interface
// so that tests can run without waiting on the wall clock
type Clock interface {
	Now() ledger.Timestamp
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() ledger.Timestamp {
	return ledger.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// SystemClock returns a Clock backed by the wall clock
func SystemClock() Clock {
	return systemClock{}
}
