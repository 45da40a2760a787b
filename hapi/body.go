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
	"errors"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/ledger"
)

// Every transaction is valid for this many seconds past its valid-start
const TransactionValidDurationSeconds uint32 = 120

// TransactionBody is the signed portion of a transaction: envelope
// metadata plus exactly one operation payload. The serialized body bytes
// are the signing input; they are computed once at freeze time
type TransactionBody struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	TransactionID  ledger.TransactionID
	NodeAccount    ledger.AccountID
	Fee            uint64
	ValidDuration  uint32
	GenerateRecord bool
	Memo           string
	PayloadKind    TransactionPayloadKind
	Payload        TransactionPayload
}

func NewTransactionBody(
	transactionId ledger.TransactionID,
	nodeAccount ledger.AccountID,
	fee uint64,
	generateRecord bool,
	memo string,
	payload TransactionPayload,
) *TransactionBody {
	return &TransactionBody{
		TransactionID:  transactionId,
		NodeAccount:    nodeAccount,
		Fee:            fee,
		ValidDuration:  TransactionValidDurationSeconds,
		GenerateRecord: generateRecord,
		Memo:           memo,
		PayloadKind:    payload.PayloadKind(),
		Payload:        payload,
	}
}

// Freeze encodes the body deterministically and stores the canonical
// bytes. Repeated calls return the stored bytes unchanged
func (b *TransactionBody) Freeze() ([]byte, error) {
	if raw := b.Cbor(); raw != nil {
		return raw, nil
	}
	if b.Payload == nil {
		return nil, errors.New("transaction body has no operation payload")
	}
	b.PayloadKind = b.Payload.PayloadKind()
	data, err := cbor.EncodeGeneric(b)
	if err != nil {
		return nil, err
	}
	b.SetCbor(data)
	return b.Cbor(), nil
}

// Frozen returns true once canonical bytes are stored
func (b *TransactionBody) Frozen() bool {
	return b.Cbor() != nil
}

// Invalidate drops the stored canonical bytes so the next encode
// reflects payload mutations. Signatures already made over the frozen
// bytes are not recomputed
func (b *TransactionBody) Invalidate() {
	b.SetCbor(nil)
}

func (b *TransactionBody) MarshalCBOR() ([]byte, error) {
	if raw := b.Cbor(); raw != nil {
		return raw, nil
	}
	if b.Payload == nil {
		return nil, errors.New("transaction body has no operation payload")
	}
	b.PayloadKind = b.Payload.PayloadKind()
	return cbor.EncodeGeneric(b)
}

func (b *TransactionBody) UnmarshalCBOR(data []byte) error {
	var tmp struct {
		cbor.StructAsArray
		TransactionID  ledger.TransactionID
		NodeAccount    ledger.AccountID
		Fee            uint64
		ValidDuration  uint32
		GenerateRecord bool
		Memo           string
		PayloadKind    TransactionPayloadKind
		Payload        cbor.RawMessage
	}
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	payload, err := NewTransactionPayloadFromCbor(tmp.PayloadKind, tmp.Payload)
	if err != nil {
		return err
	}
	*b = TransactionBody{
		TransactionID:  tmp.TransactionID,
		NodeAccount:    tmp.NodeAccount,
		Fee:            tmp.Fee,
		ValidDuration:  tmp.ValidDuration,
		GenerateRecord: tmp.GenerateRecord,
		Memo:           tmp.Memo,
		PayloadKind:    tmp.PayloadKind,
		Payload:        payload,
	}
	b.SetCbor(data)
	return nil
}
