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

package rpc

import (
	"errors"
	"fmt"

	"github.com/blackoak-io/gohedera/hapi"
)

// ErrUnhandledOperation is returned when no dispatch arm covers an
// operation
var ErrUnhandledOperation = errors.New("unhandled operation")

// Dispatcher routes transactions and queries to the node service
// method that handles them
type Dispatcher struct {
	Crypto   CryptoService
	File     FileService
	Contract ContractService
}

// NewDispatcher returns a Dispatcher with all services speaking over
// the given connection
func NewDispatcher(conn *Conn) *Dispatcher {
	return &Dispatcher{
		Crypto:   NewCryptoService(conn),
		File:     NewFileService(conn),
		Contract: NewContractService(conn),
	}
}

// SubmitTransaction routes a transaction to the service method for its
// operation payload. Every payload kind has an explicit arm so that an
// unmapped kind fails loudly instead of being misrouted
func (d *Dispatcher) SubmitTransaction(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	if tx == nil || tx.Body == nil {
		return nil, errors.New("transaction has no body")
	}
	switch tx.Body.PayloadKind {
	case hapi.PayloadKindAccountCreate:
		return d.Crypto.CreateAccount(tx)
	case hapi.PayloadKindTransfer:
		return d.Crypto.CryptoTransfer(tx)
	case hapi.PayloadKindAccountUpdate:
		return d.Crypto.UpdateAccount(tx)
	case hapi.PayloadKindAccountDelete:
		return d.Crypto.CryptoDelete(tx)
	case hapi.PayloadKindClaimAdd:
		return d.Crypto.AddClaim(tx)
	case hapi.PayloadKindClaimDelete:
		return d.Crypto.DeleteClaim(tx)
	case hapi.PayloadKindFileCreate:
		return d.File.CreateFile(tx)
	case hapi.PayloadKindFileAppend:
		return d.File.AppendContent(tx)
	case hapi.PayloadKindContractCreate:
		return d.Contract.CreateContract(tx)
	default:
		return nil, fmt.Errorf(
			"%w: transaction payload kind %d",
			ErrUnhandledOperation,
			tx.Body.PayloadKind,
		)
	}
}

// SubmitQuery routes a query to the service method for its kind
func (d *Dispatcher) SubmitQuery(
	query hapi.QueryPayload,
) (hapi.ResponsePayload, error) {
	switch q := query.(type) {
	case *hapi.AccountBalanceQuery:
		return d.Crypto.CryptoGetBalance(q)
	case *hapi.AccountInfoQuery:
		return d.Crypto.GetAccountInfo(q)
	case *hapi.AccountRecordsQuery:
		return d.Crypto.GetAccountRecords(q)
	case *hapi.TransactionReceiptQuery:
		return d.Crypto.GetTransactionReceipts(q)
	case *hapi.TransactionRecordQuery:
		return d.Crypto.GetTxRecordByTxID(q)
	case *hapi.FileContentsQuery:
		return d.File.GetFileContent(q)
	case *hapi.FileInfoQuery:
		return d.File.GetFileInfo(q)
	case *hapi.ContractInfoQuery:
		return d.Contract.GetContractInfo(q)
	case *hapi.ContractBytecodeQuery:
		return d.Contract.ContractGetBytecode(q)
	default:
		return nil, fmt.Errorf(
			"%w: query kind %d",
			ErrUnhandledOperation,
			query.Kind(),
		)
	}
}
