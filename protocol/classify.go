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
	"github.com/blackoak-io/gohedera/hapi"
)

// Classification groups pre-check codes by how the engines react to them
type Classification uint8

const (
	// ClassSuccess means the submission was accepted
	ClassSuccess Classification = 0
	// ClassRetryable means the node was busy and the submission can be
	// retried after a backoff
	ClassRetryable Classification = 1
	// ClassNeedsPayment means the node wants a payment transaction
	// attached before it will answer
	ClassNeedsPayment Classification = 2
	// ClassTerminal means retrying the same submission cannot succeed
	ClassTerminal Classification = 3
)

func (c Classification) String() string {
	switch c {
	case ClassSuccess:
		return "Success"
	case ClassRetryable:
		return "Retryable"
	case ClassNeedsPayment:
		return "NeedsPayment"
	case ClassTerminal:
		return "Terminal"
	}
	return "Unknown"
}

// Classify maps a pre-check code onto the engine reaction it calls for
func Classify(code hapi.PrecheckCode) Classification {
	switch code {
	case hapi.PrecheckOk:
		return ClassSuccess
	case hapi.PrecheckBusy:
		return ClassRetryable
	case hapi.PrecheckInvalidTransaction:
		return ClassNeedsPayment
	default:
		return ClassTerminal
	}
}
