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

// AccountCreate creates a new account controlled by the given key
type AccountCreate struct {
	*Transaction
	payload *hapi.AccountCreatePayload
}

func NewAccountCreate(ctx *protocol.Context) *AccountCreate {
	payload := &hapi.AccountCreatePayload{}
	return &AccountCreate{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// Key sets the key controlling the new account
func (a *AccountCreate) Key(key keys.PublicKey) *AccountCreate {
	a.modify(func() {
		a.payload.Key = key
	})
	return a
}

// InitialBalance sets the tinybars transferred into the new account
// from the paying account
func (a *AccountCreate) InitialBalance(balance uint64) *AccountCreate {
	a.modify(func() {
		a.payload.InitialBalance = balance
	})
	return a
}

// AutoRenewSeconds sets the auto-renew period of the new account
func (a *AccountCreate) AutoRenewSeconds(seconds uint32) *AccountCreate {
	a.modify(func() {
		a.payload.AutoRenewSeconds = seconds
	})
	return a
}

// Operator overrides the paying account for this transaction
func (a *AccountCreate) Operator(account ledger.AccountID) *AccountCreate {
	a.setOperator(account)
	return a
}

// Node overrides the node this transaction is addressed to
func (a *AccountCreate) Node(node ledger.AccountID) *AccountCreate {
	a.setNode(node)
	return a
}

// Memo sets the transaction memo
func (a *AccountCreate) Memo(memo string) *AccountCreate {
	a.setMemo(memo)
	return a
}

// Fee sets the maximum transaction fee in tinybars
func (a *AccountCreate) Fee(fee uint64) *AccountCreate {
	a.setFee(fee)
	return a
}

// GenerateRecord requests a full record of this transaction
func (a *AccountCreate) GenerateRecord(generate bool) *AccountCreate {
	a.setGenerateRecord(generate)
	return a
}

// Sign appends a signature over the frozen body bytes
func (a *AccountCreate) Sign(key keys.SecretKey) *AccountCreate {
	a.Transaction.Sign(key)
	return a
}
