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

// AccountDelete removes an account, moving its remaining balance to the
// transfer account. When no transfer account is set it defaults to the
// paying account at execute time
type AccountDelete struct {
	*Transaction
	payload *hapi.AccountDeletePayload
}

func NewAccountDelete(ctx *protocol.Context) *AccountDelete {
	payload := &hapi.AccountDeletePayload{}
	return &AccountDelete{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// Account sets the account being deleted
func (a *AccountDelete) Account(account ledger.AccountID) *AccountDelete {
	a.modify(func() {
		a.payload.DeleteAccount = account
	})
	return a
}

// TransferTo sets the account receiving the remaining balance
func (a *AccountDelete) TransferTo(account ledger.AccountID) *AccountDelete {
	a.modify(func() {
		a.payload.TransferAccount = &account
	})
	return a
}

// Operator overrides the paying account for this transaction
func (a *AccountDelete) Operator(account ledger.AccountID) *AccountDelete {
	a.setOperator(account)
	return a
}

// Node overrides the node this transaction is addressed to
func (a *AccountDelete) Node(node ledger.AccountID) *AccountDelete {
	a.setNode(node)
	return a
}

// Memo sets the transaction memo
func (a *AccountDelete) Memo(memo string) *AccountDelete {
	a.setMemo(memo)
	return a
}

// Fee sets the maximum transaction fee in tinybars
func (a *AccountDelete) Fee(fee uint64) *AccountDelete {
	a.setFee(fee)
	return a
}

// GenerateRecord requests a full record of this transaction
func (a *AccountDelete) GenerateRecord(generate bool) *AccountDelete {
	a.setGenerateRecord(generate)
	return a
}

// Sign appends a signature over the frozen body bytes
func (a *AccountDelete) Sign(key keys.SecretKey) *AccountDelete {
	a.Transaction.Sign(key)
	return a
}
