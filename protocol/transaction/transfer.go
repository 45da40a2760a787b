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

package transaction

import (
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/protocol"
)

// Transfer moves tinybars between accounts. The transfer list is
// ordered as accumulated; amounts are positive for credits and negative
// for debits and must sum to zero for the network to accept them
type Transfer struct {
	*Transaction
	payload *hapi.TransferPayload
}

func NewTransfer(ctx *protocol.Context) *Transfer {
	payload := &hapi.TransferPayload{}
	return &Transfer{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// Transfer appends one leg moving amount tinybars to (positive) or from
// (negative) the account
func (t *Transfer) Transfer(account ledger.AccountID, amount int64) *Transfer {
	t.modify(func() {
		t.payload.Transfers = append(t.payload.Transfers, hapi.Transfer{
			Account: account,
			Amount:  amount,
		})
	})
	return t
}

// Operator overrides the paying account for this transaction
func (t *Transfer) Operator(account ledger.AccountID) *Transfer {
	t.setOperator(account)
	return t
}

// Node overrides the node this transaction is addressed to
func (t *Transfer) Node(node ledger.AccountID) *Transfer {
	t.setNode(node)
	return t
}

// Memo sets the transaction memo
func (t *Transfer) Memo(memo string) *Transfer {
	t.setMemo(memo)
	return t
}

// Fee sets the maximum transaction fee in tinybars
func (t *Transfer) Fee(fee uint64) *Transfer {
	t.setFee(fee)
	return t
}

// GenerateRecord requests a full record of this transaction
func (t *Transfer) GenerateRecord(generate bool) *Transfer {
	t.setGenerateRecord(generate)
	return t
}

// Sign appends a signature over the frozen body bytes
func (t *Transfer) Sign(key keys.SecretKey) *Transfer {
	t.Transaction.Sign(key)
	return t
}
