// Copyright 2024 Black Oak Software
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

package ledger_test

import (
	"testing"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountIdStringRoundTrip(t *testing.T) {
	testDefs := []ledger.AccountID{
		{Shard: 0, Realm: 0, Num: 0},
		{Shard: 0, Realm: 0, Num: 3},
		{Shard: 7, Realm: 5, Num: 1001},
		{Shard: 1, Realm: 2, Num: 9876543210},
	}
	for _, testDef := range testDefs {
		parsed, err := ledger.ParseAccountID(testDef.String())
		require.NoError(t, err)
		assert.Equal(t, testDef, parsed)
	}
}

func TestAccountIdParseSeparators(t *testing.T) {
	expected := ledger.AccountID{Shard: 0, Realm: 0, Num: 3}
	for _, input := range []string{"0:0:3", "0.0.3"} {
		parsed, err := ledger.ParseAccountID(input)
		require.NoError(t, err)
		assert.Equal(t, expected, parsed)
	}
}

func TestAccountIdParseErrors(t *testing.T) {
	testDefs := []string{
		"",
		"abc",
		"1:2",
		"1:2:3:4",
		"1::3",
		"1:2:x",
	}
	for _, testDef := range testDefs {
		_, err := ledger.ParseAccountID(testDef)
		var parseErr *ledger.ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", testDef)
		assert.Equal(t, testDef, parseErr.Input)
	}
}

func TestFileContractIdString(t *testing.T) {
	assert.Equal(
		t,
		"0:0:1050",
		ledger.FileID{Shard: 0, Realm: 0, Num: 1050}.String(),
	)
	assert.Equal(
		t,
		"0:0:2020",
		ledger.ContractID{Shard: 0, Realm: 0, Num: 2020}.String(),
	)
}

func TestAccountIdCborRoundTrip(t *testing.T) {
	id := ledger.AccountID{Shard: 7, Realm: 5, Num: 1001}
	cborData, err := cbor.Encode(&id)
	require.NoError(t, err)
	var decoded ledger.AccountID
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}
