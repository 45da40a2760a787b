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
	"encoding/hex"
	"reflect"
	"strings"
	"testing"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/ledger"
)

type responseTestDefinition struct {
	CborHex  string
	Response hapi.ResponsePayload
	Kind     hapi.QueryKind
}

var responseTests = []responseTestDefinition{
	{
		CborHex:  "85000000001864",
		Response: hapi.NewAccountBalanceAnswer(100),
		Kind:     hapi.QueryKindAccountBalance,
	},
	{
		CborHex: "850000011a0007a12000",
		Response: &hapi.AccountBalanceAnswer{
			ResponseBase: hapi.ResponseBase{
				AnswerType: hapi.QueryKindAccountBalance,
			},
			ResponseHeader: hapi.ResponseHeader{
				ResponseType: hapi.ResponseTypeCostAnswer,
				Cost:         500000,
			},
		},
		Kind: hapi.QueryKindAccountBalance,
	},
	{
		CborHex: "85030c00008400f6f6f6",
		Response: &hapi.TransactionReceiptAnswer{
			ResponseBase: hapi.ResponseBase{
				AnswerType: hapi.QueryKindTransactionReceipt,
			},
			ResponseHeader: hapi.ResponseHeader{
				Precheck: hapi.PrecheckBusy,
			},
		},
		Kind: hapi.QueryKindTransactionReceipt,
	},
	{
		CborHex: "850300000084018300001903e9f6f6",
		Response: &hapi.TransactionReceiptAnswer{
			ResponseBase: hapi.ResponseBase{
				AnswerType: hapi.QueryKindTransactionReceipt,
			},
			Receipt: hapi.TransactionReceipt{
				Status:  hapi.StatusSuccess,
				Account: &ledger.AccountID{Num: 1001},
			},
		},
		Kind: hapi.QueryKindTransactionReceipt,
	},
	{
		CborHex: "86050000008300001907d04568656c6c6f",
		Response: hapi.NewFileContentsAnswer(
			ledger.FileID{Num: 2000},
			[]byte("hello"),
		),
		Kind: hapi.QueryKindFileContents,
	},
}

func TestResponseDecode(t *testing.T) {
	for _, test := range responseTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		response, err := hapi.NewResponseFromCbor(cborData)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if response.Kind() != test.Kind {
			t.Fatalf(
				"did not get expected answer kind: got %d, wanted %d",
				response.Kind(),
				test.Kind,
			)
		}
		// Store the raw CBOR on the expected object so the comparison
		// can succeed
		test.Response.(cbor.DecodeStoreCborInterface).SetCbor(cborData)
		if !reflect.DeepEqual(response, test.Response) {
			t.Fatalf(
				"CBOR did not decode to expected answer object\n  got:    %#v\n  wanted: %#v",
				response,
				test.Response,
			)
		}
	}
}

func TestResponseEncode(t *testing.T) {
	for _, test := range responseTests {
		cborData, err := cbor.Encode(test.Response)
		if err != nil {
			t.Fatalf("failed to encode answer to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"answer did not encode to expected CBOR\n  got:    %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestResponseDecodeUnknownKind(t *testing.T) {
	// [99, null, 0]
	cborData, err := hex.DecodeString("831863f600")
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}
	_, err = hapi.NewResponseFromCbor(cborData)
	if err == nil {
		t.Fatal("did not get expected error for unknown answer kind")
	}
	if !strings.Contains(err.Error(), "unknown answer kind") {
		t.Fatalf("did not get expected error, got: %s", err)
	}
}
