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
	"encoding/hex"
	"reflect"
	"strings"
	"testing"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/ledger"
)

type queryTestDefinition struct {
	CborHex string
	Query   hapi.QueryPayload
	Kind    hapi.QueryKind
}

var queryTests = []queryTestDefinition{
	{
		CborHex: "8400f60083000002",
		Query: hapi.NewAccountBalanceQuery(
			ledger.AccountID{Shard: 0, Realm: 0, Num: 2},
		),
		Kind: hapi.QueryKindAccountBalance,
	},
	{
		CborHex: "8401d8184483010203008300001903e9",
		Query: &hapi.AccountInfoQuery{
			QueryBase: hapi.QueryBase{
				QueryType: hapi.QueryKindAccountInfo,
			},
			QueryHeader: hapi.QueryHeader{
				Payment: &cbor.Tag{
					Number:  24,
					Content: []byte{0x83, 0x01, 0x02, 0x03},
				},
			},
			Account: ledger.AccountID{Num: 1001},
		},
		Kind: hapi.QueryKindAccountInfo,
	},
	{
		CborHex: "8403f600828307051903e9821a0012d687192711",
		Query: hapi.NewTransactionReceiptQuery(
			ledger.TransactionID{
				Account:    ledger.AccountID{Shard: 7, Realm: 5, Num: 1001},
				ValidStart: ledger.Timestamp{Seconds: 1234567, Nanos: 10001},
			},
		),
		Kind: hapi.QueryKindTransactionReceipt,
	},
	{
		CborHex: "8405f6018300001907d0",
		Query: &hapi.FileContentsQuery{
			QueryBase: hapi.QueryBase{
				QueryType: hapi.QueryKindFileContents,
			},
			QueryHeader: hapi.QueryHeader{
				ResponseType: hapi.ResponseTypeCostAnswer,
			},
			File: ledger.FileID{Num: 2000},
		},
		Kind: hapi.QueryKindFileContents,
	},
	{
		CborHex: "8408f60083000019138d",
		Query: hapi.NewContractBytecodeQuery(
			ledger.ContractID{Num: 5005},
		),
		Kind: hapi.QueryKindContractBytecode,
	},
}

func TestQueryDecode(t *testing.T) {
	for _, test := range queryTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		query, err := hapi.NewQueryFromCbor(cborData)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if query.Kind() != test.Kind {
			t.Fatalf(
				"did not get expected query kind: got %d, wanted %d",
				query.Kind(),
				test.Kind,
			)
		}
		// Store the raw CBOR on the expected object so the comparison
		// can succeed
		test.Query.(cbor.DecodeStoreCborInterface).SetCbor(cborData)
		if !reflect.DeepEqual(query, test.Query) {
			t.Fatalf(
				"CBOR did not decode to expected query object\n  got:    %#v\n  wanted: %#v",
				query,
				test.Query,
			)
		}
	}
}

func TestQueryEncode(t *testing.T) {
	for _, test := range queryTests {
		cborData, err := cbor.Encode(test.Query)
		if err != nil {
			t.Fatalf("failed to encode query to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"query did not encode to expected CBOR\n  got:    %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestQueryDecodeUnknownKind(t *testing.T) {
	// [99, null, 0]
	cborData, err := hex.DecodeString("831863f600")
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}
	_, err = hapi.NewQueryFromCbor(cborData)
	if err == nil {
		t.Fatal("did not get expected error for unknown query kind")
	}
	if !strings.Contains(err.Error(), "unknown query kind") {
		t.Fatalf("did not get expected error, got: %s", err)
	}
}

func TestQueryPayment(t *testing.T) {
	query := hapi.NewAccountBalanceQuery(ledger.AccountID{Num: 2})
	if query.HasPayment() {
		t.Fatal("new query unexpectedly has a payment attached")
	}
	if query.PaymentBytes() != nil {
		t.Fatal("new query unexpectedly returned payment bytes")
	}
	envelope := []byte{0x83, 0x01, 0x02, 0x03}
	query.SetPayment(envelope)
	if !query.HasPayment() {
		t.Fatal("query does not have a payment after SetPayment")
	}
	if !bytes.Equal(query.PaymentBytes(), envelope) {
		t.Fatalf(
			"did not get expected payment bytes: got %x, wanted %x",
			query.PaymentBytes(),
			envelope,
		)
	}
}
