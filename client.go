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

// Package gohedera is a client for the Hedera network: it builds, signs,
// and submits transactions and queries over a framed wire connection to
// a single node.
//
// The Client is the main entry point. Transactions and queries are
// derived from it and drive themselves through the protocol engines in
// the protocol/transaction and protocol/query packages. Those packages
// can be used directly, but the fluent Client surface is the primary
// design goal.
package gohedera

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/protocol"
	"github.com/blackoak-io/gohedera/protocol/query"
	"github.com/blackoak-io/gohedera/protocol/transaction"
	"github.com/blackoak-io/gohedera/rpc"
)

// The Client type bundles one node connection with the defaults every
// derived transaction and query starts from: node account, operator
// account, and operator signing key. A Client is immutable after
// construction and safe for concurrent derivation
type Client struct {
	conn      net.Conn
	address   string
	logger    *slog.Logger
	clock     protocol.Clock
	node      *ledger.AccountID
	operator  *protocol.Operator
	ctx       *protocol.Context
	rpcConn   *rpc.Conn
	onceClose sync.Once
}

// NewClient returns a new Client object with the specified options. A
// connection is established to the configured address unless one was
// provided directly
func NewClient(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if c.conn == nil {
		if c.address == "" {
			return nil, errors.New("no address or connection provided")
		}
		conn, err := net.Dial("tcp", c.address)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", c.address, err)
		}
		c.conn = conn
	}
	c.rpcConn = rpc.NewConn(c.conn)
	ctxOptions := []protocol.ContextOptionFunc{}
	if c.logger != nil {
		ctxOptions = append(ctxOptions, protocol.WithLogger(c.logger))
	}
	if c.clock != nil {
		ctxOptions = append(ctxOptions, protocol.WithClock(c.clock))
	}
	if c.operator != nil {
		ctxOptions = append(
			ctxOptions,
			protocol.WithOperator(c.operator.Account, c.operator.Key),
		)
	}
	if c.node != nil {
		ctxOptions = append(ctxOptions, protocol.WithNode(*c.node))
	}
	c.ctx = protocol.NewContext(rpc.NewDispatcher(c.rpcConn), ctxOptions...)
	return c, nil
}

// Close shuts down the node connection. It is safe to call more than
// once
func (c *Client) Close() error {
	var err error
	c.onceClose.Do(func() {
		err = c.rpcConn.Close()
	})
	return err
}

// Context returns the protocol context derived transactions and
// queries run against
func (c *Client) Context() *protocol.Context {
	return c.ctx
}

// CreateAccount starts an account creation transaction
func (c *Client) CreateAccount() *transaction.AccountCreate {
	return transaction.NewAccountCreate(c.ctx)
}

// TransferCrypto starts a crypto transfer transaction
func (c *Client) TransferCrypto() *transaction.Transfer {
	return transaction.NewTransfer(c.ctx)
}

// CreateFile starts a file creation transaction
func (c *Client) CreateFile() *transaction.FileCreate {
	return transaction.NewFileCreate(c.ctx)
}

// CreateContract starts a contract creation transaction
func (c *Client) CreateContract() *transaction.ContractCreate {
	return transaction.NewContractCreate(c.ctx)
}

// Account is a view of one account from which its transactions and
// queries are derived
type Account struct {
	client *Client
	id     ledger.AccountID
}

// Account returns a view of the given account
func (c *Client) Account(id ledger.AccountID) Account {
	return Account{client: c, id: id}
}

// Balance starts a balance query for the account
func (a Account) Balance() *query.AccountBalance {
	return query.NewAccountBalance(a.client.ctx, a.id)
}

// Info starts an info query for the account
func (a Account) Info() *query.AccountInfo {
	return query.NewAccountInfo(a.client.ctx, a.id)
}

// Records starts a records query for the account
func (a Account) Records() *query.AccountRecords {
	return query.NewAccountRecords(a.client.ctx, a.id)
}

// Update starts an update transaction for the account
func (a Account) Update() *transaction.AccountUpdate {
	return transaction.NewAccountUpdate(a.client.ctx).Account(a.id)
}

// Delete starts a deletion transaction for the account
func (a Account) Delete() *transaction.AccountDelete {
	return transaction.NewAccountDelete(a.client.ctx).Account(a.id)
}

// Claim is a view of one claim hash on an account
type Claim struct {
	client  *Client
	account ledger.AccountID
	hash    []byte
}

// Claim returns a view of the given claim hash on the account
func (a Account) Claim(hash []byte) Claim {
	return Claim{client: a.client, account: a.id, hash: hash}
}

// Add starts a transaction attaching the claim
func (cl Claim) Add() *transaction.ClaimAdd {
	return transaction.NewClaimAdd(cl.client.ctx).
		Account(cl.account).
		Hash(cl.hash)
}

// Delete starts a transaction removing the claim
func (cl Claim) Delete() *transaction.ClaimDelete {
	return transaction.NewClaimDelete(cl.client.ctx).
		Account(cl.account).
		Hash(cl.hash)
}

// File is a view of one ledger file
type File struct {
	client *Client
	id     ledger.FileID
}

// File returns a view of the given file
func (c *Client) File(id ledger.FileID) File {
	return File{client: c, id: id}
}

// Contents starts a contents query for the file
func (f File) Contents() *query.FileContents {
	return query.NewFileContents(f.client.ctx, f.id)
}

// Info starts an info query for the file
func (f File) Info() *query.FileInfo {
	return query.NewFileInfo(f.client.ctx, f.id)
}

// Append starts an append transaction for the file
func (f File) Append() *transaction.FileAppend {
	return transaction.NewFileAppend(f.client.ctx).File(f.id)
}

// Contract is a view of one contract instance
type Contract struct {
	client *Client
	id     ledger.ContractID
}

// Contract returns a view of the given contract
func (c *Client) Contract(id ledger.ContractID) Contract {
	return Contract{client: c, id: id}
}

// Info starts an info query for the contract
func (ct Contract) Info() *query.ContractInfo {
	return query.NewContractInfo(ct.client.ctx, ct.id)
}

// Bytecode starts a bytecode query for the contract
func (ct Contract) Bytecode() *query.ContractBytecode {
	return query.NewContractBytecode(ct.client.ctx, ct.id)
}

// Transaction is a view of one submitted transaction
type Transaction struct {
	client *Client
	id     ledger.TransactionID
}

// Transaction returns a view of the given submitted transaction
func (c *Client) Transaction(id ledger.TransactionID) Transaction {
	return Transaction{client: c, id: id}
}

// Receipt starts a receipt query for the transaction
func (t Transaction) Receipt() *query.TransactionReceipt {
	return query.NewTransactionReceipt(t.client.ctx, t.id)
}

// Record starts a record query for the transaction
func (t Transaction) Record() *query.TransactionRecord {
	return query.NewTransactionRecord(t.client.ctx, t.id)
}
