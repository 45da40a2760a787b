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

package query

import (
	"fmt"

	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/protocol"
)

// TransactionReceipt asks for the consensus outcome of a submitted
// transaction. Receipts are free: the network answers without a payment
type TransactionReceipt struct {
	*Query
	payload *hapi.TransactionReceiptQuery
}

func NewTransactionReceipt(
	ctx *protocol.Context,
	transactionId ledger.TransactionID,
) *TransactionReceipt {
	payload := hapi.NewTransactionReceiptQuery(transactionId)
	return &TransactionReceipt{
		Query:   newQuery(ctx, payload),
		payload: payload,
	}
}

// Get returns the receipt
func (q *TransactionReceipt) Get() (hapi.TransactionReceipt, error) {
	resp, err := q.get()
	if err != nil {
		return hapi.TransactionReceipt{}, err
	}
	answer, ok := resp.(*hapi.TransactionReceiptAnswer)
	if !ok {
		return hapi.TransactionReceipt{}, fmt.Errorf(
			"unexpected answer kind: %d",
			resp.Kind(),
		)
	}
	return answer.Receipt, nil
}
