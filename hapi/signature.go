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
)

type SignatureKind uint8

const (
	SignatureKindEd25519 SignatureKind = 0
	SignatureKindList    SignatureKind = 1
)

// Signature is one entry in a transaction's signature list: either a raw
// ed25519 signature or a nested list. File operations wrap owner
// signatures as nested single-element lists to distinguish owner
// signature sets from simple transfer signatures
type Signature struct {
	Kind    SignatureKind
	Ed25519 []byte
	List    SignatureList
}

// NewEd25519Signature builds a flat signature entry
func NewEd25519Signature(sig []byte) Signature {
	return Signature{
		Kind:    SignatureKindEd25519,
		Ed25519: sig,
	}
}

// NewListSignature wraps signatures as a nested signature list
func NewListSignature(sigs ...Signature) Signature {
	return Signature{
		Kind: SignatureKindList,
		List: SignatureList(sigs),
	}
}

func (s *Signature) MarshalCBOR() ([]byte, error) {
	switch s.Kind {
	case SignatureKindEd25519:
		return cbor.Encode([]any{uint8(s.Kind), s.Ed25519})
	case SignatureKindList:
		return cbor.Encode([]any{uint8(s.Kind), s.List})
	default:
		return nil, fmt.Errorf("unknown signature kind: %d", s.Kind)
	}
}

func (s *Signature) UnmarshalCBOR(data []byte) error {
	kind, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	switch kind {
	case int(SignatureKindEd25519):
		var tmp struct {
			cbor.StructAsArray
			Kind    SignatureKind
			Ed25519 []byte
		}
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		*s = Signature{Kind: tmp.Kind, Ed25519: tmp.Ed25519}
	case int(SignatureKindList):
		var tmp struct {
			cbor.StructAsArray
			Kind SignatureKind
			List SignatureList
		}
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		*s = Signature{Kind: tmp.Kind, List: tmp.List}
	default:
		return fmt.Errorf("unknown signature kind: %d", kind)
	}
	return nil
}

// SignatureList is the ordered signature set attached to a transaction.
// Index 0 is the operator signature inserted at execute time
type SignatureList []Signature
