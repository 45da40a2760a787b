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

// ClaimAdd attaches a claim hash to an account, guarded by the listed keys
type ClaimAdd struct {
	*Transaction
	payload *hapi.ClaimAddPayload
}

func NewClaimAdd(ctx *protocol.Context) *ClaimAdd {
	payload := &hapi.ClaimAddPayload{}
	return &ClaimAdd{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// Account sets the account the claim is attached to
func (c *ClaimAdd) Account(account ledger.AccountID) *ClaimAdd {
	c.modify(func() {
		c.payload.Claim.Account = account
	})
	return c
}

// Hash sets the claim hash
func (c *ClaimAdd) Hash(hash []byte) *ClaimAdd {
	c.modify(func() {
		c.payload.Claim.Hash = hash
	})
	return c
}

// Key appends a key guarding the claim
func (c *ClaimAdd) Key(key keys.PublicKey) *ClaimAdd {
	c.modify(func() {
		c.payload.Claim.Keys = append(c.payload.Claim.Keys, key)
	})
	return c
}

// Operator overrides the paying account for this transaction
func (c *ClaimAdd) Operator(account ledger.AccountID) *ClaimAdd {
	c.setOperator(account)
	return c
}

// Node overrides the node this transaction is addressed to
func (c *ClaimAdd) Node(node ledger.AccountID) *ClaimAdd {
	c.setNode(node)
	return c
}

// Memo sets the transaction memo
func (c *ClaimAdd) Memo(memo string) *ClaimAdd {
	c.setMemo(memo)
	return c
}

// Fee sets the maximum transaction fee in tinybars
func (c *ClaimAdd) Fee(fee uint64) *ClaimAdd {
	c.setFee(fee)
	return c
}

// GenerateRecord requests a full record of this transaction
func (c *ClaimAdd) GenerateRecord(generate bool) *ClaimAdd {
	c.setGenerateRecord(generate)
	return c
}

// Sign appends a signature over the frozen body bytes
func (c *ClaimAdd) Sign(key keys.SecretKey) *ClaimAdd {
	c.Transaction.Sign(key)
	return c
}
