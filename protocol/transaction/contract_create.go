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

// ContractCreate instantiates a contract from bytecode previously
// stored as a ledger file
type ContractCreate struct {
	*Transaction
	payload *hapi.ContractCreatePayload
}

func NewContractCreate(ctx *protocol.Context) *ContractCreate {
	payload := &hapi.ContractCreatePayload{}
	return &ContractCreate{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// BytecodeFile sets the file holding the contract bytecode
func (c *ContractCreate) BytecodeFile(file ledger.FileID) *ContractCreate {
	c.modify(func() {
		c.payload.BytecodeFile = file
	})
	return c
}

// Gas sets the gas available to the constructor
func (c *ContractCreate) Gas(gas uint64) *ContractCreate {
	c.modify(func() {
		c.payload.Gas = gas
	})
	return c
}

// InitialBalance sets the tinybars transferred into the new contract
func (c *ContractCreate) InitialBalance(balance uint64) *ContractCreate {
	c.modify(func() {
		c.payload.InitialBalance = balance
	})
	return c
}

// ConstructorParams sets the encoded constructor arguments
func (c *ContractCreate) ConstructorParams(params []byte) *ContractCreate {
	c.modify(func() {
		c.payload.ConstructorParams = params
	})
	return c
}

// Operator overrides the paying account for this transaction
func (c *ContractCreate) Operator(account ledger.AccountID) *ContractCreate {
	c.setOperator(account)
	return c
}

// Node overrides the node this transaction is addressed to
func (c *ContractCreate) Node(node ledger.AccountID) *ContractCreate {
	c.setNode(node)
	return c
}

// Memo sets the transaction memo
func (c *ContractCreate) Memo(memo string) *ContractCreate {
	c.setMemo(memo)
	return c
}

// Fee sets the maximum transaction fee in tinybars
func (c *ContractCreate) Fee(fee uint64) *ContractCreate {
	c.setFee(fee)
	return c
}

// GenerateRecord requests a full record of this transaction
func (c *ContractCreate) GenerateRecord(generate bool) *ContractCreate {
	c.setGenerateRecord(generate)
	return c
}

// Sign appends a signature over the frozen body bytes
func (c *ContractCreate) Sign(key keys.SecretKey) *ContractCreate {
	c.Transaction.Sign(key)
	return c
}
