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

// AccountUpdate changes the key or expiration of an existing account.
// Fields left unset are not touched
type AccountUpdate struct {
	*Transaction
	payload *hapi.AccountUpdatePayload
}

func NewAccountUpdate(ctx *protocol.Context) *AccountUpdate {
	payload := &hapi.AccountUpdatePayload{}
	return &AccountUpdate{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// Account sets the account being updated
func (a *AccountUpdate) Account(account ledger.AccountID) *AccountUpdate {
	a.modify(func() {
		a.payload.Account = account
	})
	return a
}

// Key replaces the key controlling the account
func (a *AccountUpdate) Key(key keys.PublicKey) *AccountUpdate {
	a.modify(func() {
		a.payload.Key = &key
	})
	return a
}

// ExpiresAt sets the new expiration instant of the account
func (a *AccountUpdate) ExpiresAt(at ledger.Timestamp) *AccountUpdate {
	a.modify(func() {
		a.payload.ExpiresAt = &at
	})
	return a
}

// Operator overrides the paying account for this transaction
func (a *AccountUpdate) Operator(account ledger.AccountID) *AccountUpdate {
	a.setOperator(account)
	return a
}

// Node overrides the node this transaction is addressed to
func (a *AccountUpdate) Node(node ledger.AccountID) *AccountUpdate {
	a.setNode(node)
	return a
}

// Memo sets the transaction memo
func (a *AccountUpdate) Memo(memo string) *AccountUpdate {
	a.setMemo(memo)
	return a
}

// Fee sets the maximum transaction fee in tinybars
func (a *AccountUpdate) Fee(fee uint64) *AccountUpdate {
	a.setFee(fee)
	return a
}

// GenerateRecord requests a full record of this transaction
func (a *AccountUpdate) GenerateRecord(generate bool) *AccountUpdate {
	a.setGenerateRecord(generate)
	return a
}

// Sign appends a signature over the frozen body bytes
func (a *AccountUpdate) Sign(key keys.SecretKey) *AccountUpdate {
	a.Transaction.Sign(key)
	return a
}
