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

package hapi_test

import (
	"bytes"
	"testing"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBodyTransferRoundTrip(t *testing.T) {
	recordBody := hapi.RecordBody{
		Kind: hapi.RecordBodyKindTransfer,
		Transfers: hapi.TransferList{
			{Account: ledger.AccountID{Num: 2}, Amount: -100},
			{Account: ledger.AccountID{Num: 1001}, Amount: 100},
		},
	}
	data, err := cbor.Encode(&recordBody)
	require.NoError(t, err)
	var decoded hapi.RecordBody
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, hapi.RecordBodyKindTransfer, decoded.Kind)
	assert.Equal(t, recordBody.Transfers, decoded.Transfers)
	assert.Nil(t, decoded.ContractResult)
}

func TestRecordBodyContractRoundTrip(t *testing.T) {
	recordBody := hapi.RecordBody{
		Kind: hapi.RecordBodyKindContractCall,
		ContractResult: &hapi.ContractFunctionResult{
			Contract: ledger.ContractID{Num: 5005},
			Result:   []byte{0xde, 0xad, 0xbe, 0xef},
			GasUsed:  21000,
		},
	}
	data, err := cbor.Encode(&recordBody)
	require.NoError(t, err)
	var decoded hapi.RecordBody
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, hapi.RecordBodyKindContractCall, decoded.Kind)
	require.NotNil(t, decoded.ContractResult)
	assert.Equal(t, recordBody.ContractResult, decoded.ContractResult)
	assert.Nil(t, decoded.Transfers)
}

func TestRecordBodyUnsupportedKind(t *testing.T) {
	// [5, null]
	var decoded hapi.RecordBody
	_, err := cbor.Decode([]byte{0x82, 0x05, 0xf6}, &decoded)
	assert.ErrorContains(t, err, "unsupported record body kind")

	badBody := hapi.RecordBody{Kind: hapi.RecordBodyKind(9)}
	_, err = cbor.Encode(&badBody)
	assert.Error(t, err)
}

func TestTransactionRecordRoundTrip(t *testing.T) {
	consensus := ledger.Timestamp{Seconds: 1234580, Nanos: 42}
	record := hapi.TransactionRecord{
		Receipt: hapi.TransactionReceipt{
			Status: hapi.StatusSuccess,
		},
		TransactionHash:    bytes.Repeat([]byte{0x7f}, 32),
		ConsensusTimestamp: &consensus,
		TransactionID: ledger.TransactionID{
			Account:    ledger.AccountID{Num: 2},
			ValidStart: ledger.Timestamp{Seconds: 1234567, Nanos: 10001},
		},
		Memo: "test record",
		Fee:  10,
		Body: hapi.RecordBody{
			Kind: hapi.RecordBodyKindTransfer,
			Transfers: hapi.TransferList{
				{Account: ledger.AccountID{Num: 2}, Amount: -100},
				{Account: ledger.AccountID{Num: 1001}, Amount: 100},
			},
		},
	}
	data, err := cbor.Encode(&record)
	require.NoError(t, err)
	var decoded hapi.TransactionRecord
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, record.Receipt, decoded.Receipt)
	assert.Equal(t, record.TransactionHash, decoded.TransactionHash)
	assert.Equal(t, record.ConsensusTimestamp, decoded.ConsensusTimestamp)
	assert.Equal(t, record.TransactionID, decoded.TransactionID)
	assert.Equal(t, record.Memo, decoded.Memo)
	assert.Equal(t, record.Fee, decoded.Fee)
	assert.Equal(t, record.Body, decoded.Body)
	assert.Equal(t, data, decoded.Cbor())
}
