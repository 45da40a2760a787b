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
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/blackoak-io/gohedera/cbor"
)

// Transaction is the full wire envelope: the body plus the ordered
// signature list. The signatures cover the body's frozen bytes only,
// never the envelope
type Transaction struct {
	cbor.StructAsArray
	Body *TransactionBody
	Sigs SignatureList
}

func NewTransaction(body *TransactionBody, sigs SignatureList) *Transaction {
	return &Transaction{
		Body: body,
		Sigs: sigs,
	}
}

// Hash is a Blake2b-256 digest of an encoded transaction envelope
type Hash [32]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

// Hash digests the encoded envelope for log correlation and duplicate
// detection
func (t *Transaction) Hash() (Hash, error) {
	data, err := cbor.Encode(t)
	if err != nil {
		return Hash{}, err
	}
	return Hash(blake2b.Sum256(data)), nil
}

// TransactionResponse is the node's synchronous answer to a submitted
// transaction
type TransactionResponse struct {
	cbor.StructAsArray
	Precheck PrecheckCode
}
