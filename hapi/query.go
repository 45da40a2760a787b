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
	"github.com/blackoak-io/gohedera/ledger"
)

type QueryKind uint16

const (
	QueryKindAccountBalance     QueryKind = 0
	QueryKindAccountInfo        QueryKind = 1
	QueryKindAccountRecords     QueryKind = 2
	QueryKindTransactionReceipt QueryKind = 3
	QueryKindTransactionRecord  QueryKind = 4
	QueryKindFileContents       QueryKind = 5
	QueryKindFileInfo           QueryKind = 6
	QueryKindContractInfo       QueryKind = 7
	QueryKindContractBytecode   QueryKind = 8
)

func (k QueryKind) String() string {
	switch k {
	case QueryKindAccountBalance:
		return "AccountBalance"
	case QueryKindAccountInfo:
		return "AccountInfo"
	case QueryKindAccountRecords:
		return "AccountRecords"
	case QueryKindTransactionReceipt:
		return "TransactionReceipt"
	case QueryKindTransactionRecord:
		return "TransactionRecord"
	case QueryKindFileContents:
		return "FileContents"
	case QueryKindFileInfo:
		return "FileInfo"
	case QueryKindContractInfo:
		return "ContractInfo"
	case QueryKindContractBytecode:
		return "ContractBytecode"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(k))
	}
}

// QueryKinds lists every kind in the closed union
var QueryKinds = []QueryKind{
	QueryKindAccountBalance,
	QueryKindAccountInfo,
	QueryKindAccountRecords,
	QueryKindTransactionReceipt,
	QueryKindTransactionRecord,
	QueryKindFileContents,
	QueryKindFileInfo,
	QueryKindContractInfo,
	QueryKindContractBytecode,
}

// ResponseType selects whether a query wants the real answer or only
// the cost quote for obtaining it
type ResponseType uint8

const (
	ResponseTypeAnswerOnly ResponseType = 0
	ResponseTypeCostAnswer ResponseType = 1
)

func (t ResponseType) String() string {
	switch t {
	case ResponseTypeAnswerOnly:
		return "AnswerOnly"
	case ResponseTypeCostAnswer:
		return "CostAnswer"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// QueryBase carries the kind tag that leads every query on the wire
type QueryBase struct {
	cbor.DecodeStoreCbor
	QueryType QueryKind
}

func (b *QueryBase) Kind() QueryKind {
	return b.QueryType
}

// QueryHeader carries the optional attached payment and the response
// mode. It leads every query payload after the kind tag
type QueryHeader struct {
	Payment      *cbor.Tag
	ResponseType ResponseType
}

func (h *QueryHeader) Header() *QueryHeader {
	return h
}

// SetPayment attaches a frozen transaction envelope as the query payment
func (h *QueryHeader) SetPayment(envelope []byte) {
	h.Payment = &cbor.Tag{
		// Wrapped CBOR
		Number:  cbor.CborTagCbor,
		Content: envelope,
	}
}

// HasPayment returns true when a payment is attached
func (h *QueryHeader) HasPayment() bool {
	return h.Payment != nil
}

// PaymentBytes returns the attached frozen transaction envelope, or nil
func (h *QueryHeader) PaymentBytes() []byte {
	if h.Payment == nil {
		return nil
	}
	if data, ok := h.Payment.Content.([]byte); ok {
		return data
	}
	return nil
}

// QueryPayload is the closed union of query kinds
type QueryPayload interface {
	Kind() QueryKind
	Header() *QueryHeader
	isQueryPayload()
}

// NewQueryFromCbor parses a query envelope from the wire
func NewQueryFromCbor(data []byte) (QueryPayload, error) {
	kind, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return nil, err
	}
	var ret QueryPayload
	switch kind {
	case int(QueryKindAccountBalance):
		ret = &AccountBalanceQuery{}
	case int(QueryKindAccountInfo):
		ret = &AccountInfoQuery{}
	case int(QueryKindAccountRecords):
		ret = &AccountRecordsQuery{}
	case int(QueryKindTransactionReceipt):
		ret = &TransactionReceiptQuery{}
	case int(QueryKindTransactionRecord):
		ret = &TransactionRecordQuery{}
	case int(QueryKindFileContents):
		ret = &FileContentsQuery{}
	case int(QueryKindFileInfo):
		ret = &FileInfoQuery{}
	case int(QueryKindContractInfo):
		ret = &ContractInfoQuery{}
	case int(QueryKindContractBytecode):
		ret = &ContractBytecodeQuery{}
	default:
		return nil, fmt.Errorf("unknown query kind: %d", kind)
	}
	if _, err := cbor.Decode(data, ret); err != nil {
		return nil, err
	}
	ret.(cbor.DecodeStoreCborInterface).SetCbor(data)
	return ret, nil
}

type AccountBalanceQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	Account ledger.AccountID
}

func NewAccountBalanceQuery(account ledger.AccountID) *AccountBalanceQuery {
	return &AccountBalanceQuery{
		QueryBase: QueryBase{QueryType: QueryKindAccountBalance},
		Account:   account,
	}
}

func (q AccountBalanceQuery) isQueryPayload() {}

type AccountInfoQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	Account ledger.AccountID
}

func NewAccountInfoQuery(account ledger.AccountID) *AccountInfoQuery {
	return &AccountInfoQuery{
		QueryBase: QueryBase{QueryType: QueryKindAccountInfo},
		Account:   account,
	}
}

func (q AccountInfoQuery) isQueryPayload() {}

type AccountRecordsQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	Account ledger.AccountID
}

func NewAccountRecordsQuery(account ledger.AccountID) *AccountRecordsQuery {
	return &AccountRecordsQuery{
		QueryBase: QueryBase{QueryType: QueryKindAccountRecords},
		Account:   account,
	}
}

func (q AccountRecordsQuery) isQueryPayload() {}

type TransactionReceiptQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	TransactionID ledger.TransactionID
}

func NewTransactionReceiptQuery(
	transactionId ledger.TransactionID,
) *TransactionReceiptQuery {
	return &TransactionReceiptQuery{
		QueryBase:     QueryBase{QueryType: QueryKindTransactionReceipt},
		TransactionID: transactionId,
	}
}

func (q TransactionReceiptQuery) isQueryPayload() {}

type TransactionRecordQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	TransactionID ledger.TransactionID
}

func NewTransactionRecordQuery(
	transactionId ledger.TransactionID,
) *TransactionRecordQuery {
	return &TransactionRecordQuery{
		QueryBase:     QueryBase{QueryType: QueryKindTransactionRecord},
		TransactionID: transactionId,
	}
}

func (q TransactionRecordQuery) isQueryPayload() {}

type FileContentsQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	File ledger.FileID
}

func NewFileContentsQuery(file ledger.FileID) *FileContentsQuery {
	return &FileContentsQuery{
		QueryBase: QueryBase{QueryType: QueryKindFileContents},
		File:      file,
	}
}

func (q FileContentsQuery) isQueryPayload() {}

type FileInfoQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	File ledger.FileID
}

func NewFileInfoQuery(file ledger.FileID) *FileInfoQuery {
	return &FileInfoQuery{
		QueryBase: QueryBase{QueryType: QueryKindFileInfo},
		File:      file,
	}
}

func (q FileInfoQuery) isQueryPayload() {}

type ContractInfoQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	Contract ledger.ContractID
}

func NewContractInfoQuery(contract ledger.ContractID) *ContractInfoQuery {
	return &ContractInfoQuery{
		QueryBase: QueryBase{QueryType: QueryKindContractInfo},
		Contract:  contract,
	}
}

func (q ContractInfoQuery) isQueryPayload() {}

type ContractBytecodeQuery struct {
	cbor.StructAsArray
	QueryBase
	QueryHeader
	Contract ledger.ContractID
}

func NewContractBytecodeQuery(
	contract ledger.ContractID,
) *ContractBytecodeQuery {
	return &ContractBytecodeQuery{
		QueryBase: QueryBase{QueryType: QueryKindContractBytecode},
		Contract:  contract,
	}
}

func (q ContractBytecodeQuery) isQueryPayload() {}
