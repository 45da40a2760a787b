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

package hapi

import (
	"fmt"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
)

type TransactionPayloadKind uint16

const (
	PayloadKindAccountCreate  TransactionPayloadKind = 0
	PayloadKindTransfer       TransactionPayloadKind = 1
	PayloadKindAccountUpdate  TransactionPayloadKind = 2
	PayloadKindAccountDelete  TransactionPayloadKind = 3
	PayloadKindClaimAdd       TransactionPayloadKind = 4
	PayloadKindClaimDelete    TransactionPayloadKind = 5
	PayloadKindFileCreate     TransactionPayloadKind = 6
	PayloadKindFileAppend     TransactionPayloadKind = 7
	PayloadKindContractCreate TransactionPayloadKind = 8
)

func (k TransactionPayloadKind) String() string {
	switch k {
	case PayloadKindAccountCreate:
		return "AccountCreate"
	case PayloadKindTransfer:
		return "Transfer"
	case PayloadKindAccountUpdate:
		return "AccountUpdate"
	case PayloadKindAccountDelete:
		return "AccountDelete"
	case PayloadKindClaimAdd:
		return "ClaimAdd"
	case PayloadKindClaimDelete:
		return "ClaimDelete"
	case PayloadKindFileCreate:
		return "FileCreate"
	case PayloadKindFileAppend:
		return "FileAppend"
	case PayloadKindContractCreate:
		return "ContractCreate"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(k))
	}
}

// TransactionPayload is the closed union of operation payloads a
// transaction body can carry
type TransactionPayload interface {
	PayloadKind() TransactionPayloadKind
	isTransactionPayload()
}

// TransactionPayloadKinds lists every kind in the closed union
var TransactionPayloadKinds = []TransactionPayloadKind{
	PayloadKindAccountCreate,
	PayloadKindTransfer,
	PayloadKindAccountUpdate,
	PayloadKindAccountDelete,
	PayloadKindClaimAdd,
	PayloadKindClaimDelete,
	PayloadKindFileCreate,
	PayloadKindFileAppend,
	PayloadKindContractCreate,
}

// NewTransactionPayloadFromCbor builds the payload variant for the given
// kind from its CBOR encoding
func NewTransactionPayloadFromCbor(
	kind TransactionPayloadKind,
	data []byte,
) (TransactionPayload, error) {
	var ret TransactionPayload
	switch kind {
	case PayloadKindAccountCreate:
		ret = &AccountCreatePayload{}
	case PayloadKindTransfer:
		ret = &TransferPayload{}
	case PayloadKindAccountUpdate:
		ret = &AccountUpdatePayload{}
	case PayloadKindAccountDelete:
		ret = &AccountDeletePayload{}
	case PayloadKindClaimAdd:
		ret = &ClaimAddPayload{}
	case PayloadKindClaimDelete:
		ret = &ClaimDeletePayload{}
	case PayloadKindFileCreate:
		ret = &FileCreatePayload{}
	case PayloadKindFileAppend:
		ret = &FileAppendPayload{}
	case PayloadKindContractCreate:
		ret = &ContractCreatePayload{}
	default:
		return nil, fmt.Errorf("unknown transaction payload kind: %d", kind)
	}
	if _, err := cbor.Decode(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

type AccountCreatePayload struct {
	cbor.StructAsArray
	Key              keys.PublicKey
	InitialBalance   uint64
	AutoRenewSeconds uint32
}

func (p AccountCreatePayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindAccountCreate
}
func (p AccountCreatePayload) isTransactionPayload() {}

// Transfer is one leg of a crypto transfer: the amount is positive for
// credits and negative for debits
type Transfer struct {
	cbor.StructAsArray
	Account ledger.AccountID
	Amount  int64
}

type TransferList []Transfer

type TransferPayload struct {
	cbor.StructAsArray
	Transfers TransferList
}

func (p TransferPayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindTransfer
}
func (p TransferPayload) isTransactionPayload() {}

type AccountUpdatePayload struct {
	cbor.StructAsArray
	Account   ledger.AccountID
	Key       *keys.PublicKey
	ExpiresAt *ledger.Timestamp
}

func (p AccountUpdatePayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindAccountUpdate
}
func (p AccountUpdatePayload) isTransactionPayload() {}

type AccountDeletePayload struct {
	cbor.StructAsArray
	DeleteAccount ledger.AccountID
	// Unset transfer accounts are defaulted to the operator at execute time
	TransferAccount *ledger.AccountID
}

func (p AccountDeletePayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindAccountDelete
}
func (p AccountDeletePayload) isTransactionPayload() {}

type ClaimAddPayload struct {
	cbor.StructAsArray
	Claim Claim
}

func (p ClaimAddPayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindClaimAdd
}
func (p ClaimAddPayload) isTransactionPayload() {}

type ClaimDeletePayload struct {
	cbor.StructAsArray
	Account ledger.AccountID
	Hash    []byte
}

func (p ClaimDeletePayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindClaimDelete
}
func (p ClaimDeletePayload) isTransactionPayload() {}

type FileCreatePayload struct {
	cbor.StructAsArray
	ExpiresAt ledger.Timestamp
	Keys      keys.List
	Contents  []byte
}

func (p FileCreatePayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindFileCreate
}
func (p FileCreatePayload) isTransactionPayload() {}

type FileAppendPayload struct {
	cbor.StructAsArray
	File     ledger.FileID
	Contents []byte
}

func (p FileAppendPayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindFileAppend
}
func (p FileAppendPayload) isTransactionPayload() {}

type ContractCreatePayload struct {
	cbor.StructAsArray
	BytecodeFile      ledger.FileID
	Gas               uint64
	InitialBalance    uint64
	ConstructorParams []byte
}

func (p ContractCreatePayload) PayloadKind() TransactionPayloadKind {
	return PayloadKindContractCreate
}
func (p ContractCreatePayload) isTransactionPayload() {}
