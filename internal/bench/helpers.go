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

// Package bench provides benchmark fixtures for the wire codec hot
// paths: envelope encoding and decoding, body signing, and framing.
package bench

import (
	"fmt"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
)

// benchKeySeed is a fixed seed so fixture signatures are stable across
// runs
const benchKeySeed = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// EnvelopeFixture contains a frozen, signed transaction envelope for
// benchmarking
type EnvelopeFixture struct {
	Name      string
	Key       keys.SecretKey
	Envelope  *hapi.Transaction
	BodyBytes []byte
	Cbor      []byte
}

// LoadEnvelopeFixture builds a signed transfer envelope with the given
// number of transfer legs
func LoadEnvelopeFixture(legs int) (*EnvelopeFixture, error) {
	key, err := keys.ParseSecretKey(benchKeySeed)
	if err != nil {
		return nil, err
	}
	transfers := make(hapi.TransferList, 0, legs)
	for i := 0; i < legs; i++ {
		amount := int64(1000 + i)
		if i%2 == 0 {
			amount = -amount
		}
		transfers = append(transfers, hapi.Transfer{
			Account: ledger.AccountID{Num: int64(1000 + i)},
			Amount:  amount,
		})
	}
	body := hapi.NewTransactionBody(
		ledger.NewTransactionIDAt(
			ledger.AccountID{Num: 2},
			ledger.Timestamp{Seconds: 1600000000, Nanos: 1234},
		),
		ledger.AccountID{Num: 3},
		10,
		false,
		"",
		&hapi.TransferPayload{Transfers: transfers},
	)
	bodyBytes, err := body.Freeze()
	if err != nil {
		return nil, fmt.Errorf("freeze fixture body: %w", err)
	}
	envelope := hapi.NewTransaction(body, hapi.SignatureList{
		hapi.NewEd25519Signature(key.Sign(bodyBytes)),
	})
	data, err := cbor.Encode(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode fixture envelope: %w", err)
	}
	return &EnvelopeFixture{
		Name:      fmt.Sprintf("%d_legs", legs),
		Key:       key,
		Envelope:  envelope,
		BodyBytes: bodyBytes,
		Cbor:      data,
	}, nil
}

// MustLoadEnvelopeFixture builds a fixture and panics on error. Use
// this in benchmark setup code
func MustLoadEnvelopeFixture(legs int) *EnvelopeFixture {
	fixture, err := LoadEnvelopeFixture(legs)
	if err != nil {
		panic(fmt.Sprintf("failed to load envelope fixture: %v", err))
	}
	return fixture
}

// LegCounts returns the transfer leg counts used for sub-benchmarks
func LegCounts() []int {
	return []int{2, 10, 50}
}
