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

// ResponseBase carries the kind tag that leads every answer on the wire.
// The tag mirrors the kind of the query being answered
type ResponseBase struct {
	cbor.DecodeStoreCbor
	AnswerType QueryKind
}

func (b *ResponseBase) Kind() QueryKind {
	return b.AnswerType
}

// ResponseHeader leads every answer payload after the kind tag. Cost is
// only meaningful when ResponseType is CostAnswer
type ResponseHeader struct {
	Precheck     PrecheckCode
	ResponseType ResponseType
	Cost         uint64
}

func (h *ResponseHeader) Header() *ResponseHeader {
	return h
}

// ResponsePayload is the closed union of answer kinds
type ResponsePayload interface {
	Kind() QueryKind
	Header() *ResponseHeader
	isResponsePayload()
}

// NewResponseFromCbor parses an answer envelope from the wire
func NewResponseFromCbor(data []byte) (ResponsePayload, error) {
	kind, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return nil, err
	}
	var ret ResponsePayload
	switch kind {
	case int(QueryKindAccountBalance):
		ret = &AccountBalanceAnswer{}
	case int(QueryKindAccountInfo):
		ret = &AccountInfoAnswer{}
	case int(QueryKindAccountRecords):
		ret = &AccountRecordsAnswer{}
	case int(QueryKindTransactionReceipt):
		ret = &TransactionReceiptAnswer{}
	case int(QueryKindTransactionRecord):
		ret = &TransactionRecordAnswer{}
	case int(QueryKindFileContents):
		ret = &FileContentsAnswer{}
	case int(QueryKindFileInfo):
		ret = &FileInfoAnswer{}
	case int(QueryKindContractInfo):
		ret = &ContractInfoAnswer{}
	case int(QueryKindContractBytecode):
		ret = &ContractBytecodeAnswer{}
	default:
		return nil, fmt.Errorf("unknown answer kind: %d", kind)
	}
	if _, err := cbor.Decode(data, ret); err != nil {
		return nil, err
	}
	ret.(cbor.DecodeStoreCborInterface).SetCbor(data)
	return ret, nil
}

type AccountBalanceAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Balance uint64
}

func NewAccountBalanceAnswer(balance uint64) *AccountBalanceAnswer {
	return &AccountBalanceAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindAccountBalance},
		Balance:      balance,
	}
}

func (a AccountBalanceAnswer) isResponsePayload() {}

type AccountInfoAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Info AccountInfo
}

func NewAccountInfoAnswer(info AccountInfo) *AccountInfoAnswer {
	return &AccountInfoAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindAccountInfo},
		Info:         info,
	}
}

func (a AccountInfoAnswer) isResponsePayload() {}

type AccountRecordsAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Account ledger.AccountID
	Records []TransactionRecord
}

func NewAccountRecordsAnswer(
	account ledger.AccountID,
	records []TransactionRecord,
) *AccountRecordsAnswer {
	return &AccountRecordsAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindAccountRecords},
		Account:      account,
		Records:      records,
	}
}

func (a AccountRecordsAnswer) isResponsePayload() {}

type TransactionReceiptAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Receipt TransactionReceipt
}

func NewTransactionReceiptAnswer(
	receipt TransactionReceipt,
) *TransactionReceiptAnswer {
	return &TransactionReceiptAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindTransactionReceipt},
		Receipt:      receipt,
	}
}

func (a TransactionReceiptAnswer) isResponsePayload() {}

type TransactionRecordAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Record TransactionRecord
}

func NewTransactionRecordAnswer(
	record TransactionRecord,
) *TransactionRecordAnswer {
	return &TransactionRecordAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindTransactionRecord},
		Record:       record,
	}
}

func (a TransactionRecordAnswer) isResponsePayload() {}

type FileContentsAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	File     ledger.FileID
	Contents []byte
}

func NewFileContentsAnswer(
	file ledger.FileID,
	contents []byte,
) *FileContentsAnswer {
	return &FileContentsAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindFileContents},
		File:         file,
		Contents:     contents,
	}
}

func (a FileContentsAnswer) isResponsePayload() {}

type FileInfoAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Info FileInfo
}

func NewFileInfoAnswer(info FileInfo) *FileInfoAnswer {
	return &FileInfoAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindFileInfo},
		Info:         info,
	}
}

func (a FileInfoAnswer) isResponsePayload() {}

type ContractInfoAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Info ContractInfo
}

func NewContractInfoAnswer(info ContractInfo) *ContractInfoAnswer {
	return &ContractInfoAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindContractInfo},
		Info:         info,
	}
}

func (a ContractInfoAnswer) isResponsePayload() {}

type ContractBytecodeAnswer struct {
	cbor.StructAsArray
	ResponseBase
	ResponseHeader
	Bytecode []byte
}

func NewContractBytecodeAnswer(bytecode []byte) *ContractBytecodeAnswer {
	return &ContractBytecodeAnswer{
		ResponseBase: ResponseBase{AnswerType: QueryKindContractBytecode},
		Bytecode:     bytecode,
	}
}

func (a ContractBytecodeAnswer) isResponsePayload() {}
