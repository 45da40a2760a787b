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

// ClaimDelete removes a claim hash from an account
type ClaimDelete struct {
	*Transaction
	payload *hapi.ClaimDeletePayload
}

func NewClaimDelete(ctx *protocol.Context) *ClaimDelete {
	payload := &hapi.ClaimDeletePayload{}
	return &ClaimDelete{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// Account sets the account the claim is removed from
func (c *ClaimDelete) Account(account ledger.AccountID) *ClaimDelete {
	c.modify(func() {
		c.payload.Account = account
	})
	return c
}

// Hash sets the claim hash being removed
func (c *ClaimDelete) Hash(hash []byte) *ClaimDelete {
	c.modify(func() {
		c.payload.Hash = hash
	})
	return c
}

// Operator overrides the paying account for this transaction
func (c *ClaimDelete) Operator(account ledger.AccountID) *ClaimDelete {
	c.setOperator(account)
	return c
}

// Node overrides the node this transaction is addressed to
func (c *ClaimDelete) Node(node ledger.AccountID) *ClaimDelete {
	c.setNode(node)
	return c
}

// Memo sets the transaction memo
func (c *ClaimDelete) Memo(memo string) *ClaimDelete {
	c.setMemo(memo)
	return c
}

// Fee sets the maximum transaction fee in tinybars
func (c *ClaimDelete) Fee(fee uint64) *ClaimDelete {
	c.setFee(fee)
	return c
}

// GenerateRecord requests a full record of this transaction
func (c *ClaimDelete) GenerateRecord(generate bool) *ClaimDelete {
	c.setGenerateRecord(generate)
	return c
}

// Sign appends a signature over the frozen body bytes
func (c *ClaimDelete) Sign(key keys.SecretKey) *ClaimDelete {
	c.Transaction.Sign(key)
	return c
}
