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

package hapi

import "fmt"

// PrecheckCode is the immediate validation result a node returns before
// consensus. Codes not listed here are treated as terminal failures
type PrecheckCode uint16

const (
	PrecheckOk                         PrecheckCode = 0
	PrecheckInvalidTransaction         PrecheckCode = 1
	PrecheckPayerAccountNotFound       PrecheckCode = 2
	PrecheckInvalidNodeAccount         PrecheckCode = 3
	PrecheckTransactionExpired         PrecheckCode = 4
	PrecheckInvalidTransactionStart    PrecheckCode = 5
	PrecheckInvalidTransactionDuration PrecheckCode = 6
	PrecheckInvalidSignature           PrecheckCode = 7
	PrecheckMemoTooLong                PrecheckCode = 8
	PrecheckInsufficientTxFee          PrecheckCode = 9
	PrecheckInsufficientPayerBalance   PrecheckCode = 10
	PrecheckDuplicateTransaction       PrecheckCode = 11
	PrecheckBusy                       PrecheckCode = 12
	PrecheckNotSupported               PrecheckCode = 13
)

func (c PrecheckCode) String() string {
	switch c {
	case PrecheckOk:
		return "Ok"
	case PrecheckInvalidTransaction:
		return "InvalidTransaction"
	case PrecheckPayerAccountNotFound:
		return "PayerAccountNotFound"
	case PrecheckInvalidNodeAccount:
		return "InvalidNodeAccount"
	case PrecheckTransactionExpired:
		return "TransactionExpired"
	case PrecheckInvalidTransactionStart:
		return "InvalidTransactionStart"
	case PrecheckInvalidTransactionDuration:
		return "InvalidTransactionDuration"
	case PrecheckInvalidSignature:
		return "InvalidSignature"
	case PrecheckMemoTooLong:
		return "MemoTooLong"
	case PrecheckInsufficientTxFee:
		return "InsufficientTxFee"
	case PrecheckInsufficientPayerBalance:
		return "InsufficientPayerBalance"
	case PrecheckDuplicateTransaction:
		return "DuplicateTransaction"
	case PrecheckBusy:
		return "Busy"
	case PrecheckNotSupported:
		return "NotSupported"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(c))
	}
}
