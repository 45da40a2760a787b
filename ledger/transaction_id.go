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
	"strconv"
	"strings"

	"github.com/blackoak-io/gohedera/cbor"
)

// Valid-start is backdated this many seconds on fresh transaction ids to
// tolerate clock skew against the validating node, which rejects
// transactions that start in its future
const validStartBackdate = 5

const transactionIdExpectedFormat = "{shard}:{realm}:{num}@{seconds}.{nanos}"

// TransactionID uniquely identifies one submitted transaction: the paying
// account plus the instant the transaction becomes valid
type TransactionID struct {
	cbor.StructAsArray
	Account    AccountID
	ValidStart Timestamp
}

// NewTransactionID builds a fresh transaction id for the payer account
// with a backdated valid-start
func NewTransactionID(account AccountID) TransactionID {
	return NewTransactionIDAt(account, Now())
}

// NewTransactionIDAt builds a transaction id for the payer account,
// backdating the provided instant
func NewTransactionIDAt(account AccountID, at Timestamp) TransactionID {
	return TransactionID{
		Account:    account,
		ValidStart: at.MinusSeconds(validStartBackdate),
	}
}

// ParseTransactionID parses the "shard:realm:num@seconds.nanos" form
func ParseTransactionID(s string) (TransactionID, error) {
	idPart, tsPart, found := strings.Cut(s, "@")
	if !found {
		return TransactionID{}, &ParseError{
			Input:    s,
			Expected: transactionIdExpectedFormat,
		}
	}
	account, err := ParseAccountID(idPart)
	if err != nil {
		return TransactionID{}, &ParseError{
			Input:    s,
			Expected: transactionIdExpectedFormat,
		}
	}
	secondsPart, nanosPart, found := strings.Cut(tsPart, ".")
	if !found {
		return TransactionID{}, &ParseError{
			Input:    s,
			Expected: transactionIdExpectedFormat,
		}
	}
	seconds, err := strconv.ParseInt(secondsPart, 10, 64)
	if err != nil {
		return TransactionID{}, &ParseError{
			Input:    s,
			Expected: transactionIdExpectedFormat,
		}
	}
	nanos, err := strconv.ParseUint(nanosPart, 10, 32)
	if err != nil {
		return TransactionID{}, &ParseError{
			Input:    s,
			Expected: transactionIdExpectedFormat,
		}
	}
	return TransactionID{
		Account: account,
		ValidStart: Timestamp{
			Seconds: seconds,
			Nanos:   uint32(nanos),
		},
	}, nil
}

func (id TransactionID) String() string {
	return fmt.Sprintf("%s@%s", id.Account, id.ValidStart)
}
