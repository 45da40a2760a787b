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

type RecordBodyKind uint8

const (
	RecordBodyKindTransfer       RecordBodyKind = 0
	RecordBodyKindContractCall   RecordBodyKind = 1
	RecordBodyKindContractCreate RecordBodyKind = 2
)

// ContractFunctionResult is the outcome of a contract call or
// constructor run
type ContractFunctionResult struct {
	cbor.StructAsArray
	Contract ledger.ContractID
	Result   []byte
	Error    string
	GasUsed  uint64
}

// RecordBody is the per-kind detail of a transaction record. Transfers
// is set for transfer records, ContractResult for contract records
type RecordBody struct {
	cbor.StructAsArray
	Kind           RecordBodyKind
	Transfers      TransferList
	ContractResult *ContractFunctionResult
}

func (b *RecordBody) UnmarshalCBOR(data []byte) error {
	kind, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	switch kind {
	case int(RecordBodyKindTransfer):
		var tmpBody struct {
			cbor.StructAsArray
			Kind      RecordBodyKind
			Transfers TransferList
		}
		if _, err := cbor.Decode(data, &tmpBody); err != nil {
			return err
		}
		b.Kind = tmpBody.Kind
		b.Transfers = tmpBody.Transfers
		b.ContractResult = nil
	case int(RecordBodyKindContractCall), int(RecordBodyKindContractCreate):
		var tmpBody struct {
			cbor.StructAsArray
			Kind   RecordBodyKind
			Result ContractFunctionResult
		}
		if _, err := cbor.Decode(data, &tmpBody); err != nil {
			return err
		}
		b.Kind = tmpBody.Kind
		b.Transfers = nil
		b.ContractResult = &tmpBody.Result
	default:
		return fmt.Errorf("unsupported record body kind %d", kind)
	}
	return nil
}

func (b *RecordBody) MarshalCBOR() ([]byte, error) {
	var tmpData []any
	switch b.Kind {
	case RecordBodyKindTransfer:
		tmpData = []any{b.Kind, b.Transfers}
	case RecordBodyKindContractCall, RecordBodyKindContractCreate:
		tmpData = []any{b.Kind, b.ContractResult}
	default:
		return nil, fmt.Errorf("unsupported record body kind %d", b.Kind)
	}
	return cbor.Encode(tmpData)
}

// TransactionRecord is the full post-consensus result of a transaction,
// only retained by nodes for transactions submitted with record
// generation enabled
type TransactionRecord struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Receipt            TransactionReceipt
	TransactionHash    []byte
	ConsensusTimestamp *ledger.Timestamp
	TransactionID      ledger.TransactionID
	Memo               string
	Fee                uint64
	Body               RecordBody
}

func (r *TransactionRecord) UnmarshalCBOR(cborData []byte) error {
	if err := cbor.DecodeGeneric(cborData, r); err != nil {
		return err
	}
	r.SetCbor(cborData)
	return nil
}
