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

// Package keys wraps the ed25519 signing primitive used to authorize
// transactions. Secret keys are parsed from hex (32-byte seed or 64-byte
// expanded form), public keys are validated as canonical curve points on
// parse and on decode from the wire.
package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/blackoak-io/gohedera/cbor"
)

var (
	ErrBadKeyLength = errors.New("unexpected key length")
	ErrInvalidPoint = errors.New("public key is not a valid curve point")
)

// SecretKey is an ed25519 private key
type SecretKey struct {
	priv ed25519.PrivateKey
}

// GenerateSecretKey creates a new random secret key
func GenerateSecretKey() (SecretKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{priv: priv}, nil
}

// ParseSecretKey parses a hex-encoded secret key. Both the 32-byte seed
// form and the 64-byte seed-plus-public form are accepted
func ParseSecretKey(s string) (SecretKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return SecretKey{}, fmt.Errorf("parse secret key: %w", err)
	}
	switch len(data) {
	case ed25519.SeedSize:
		return SecretKey{priv: ed25519.NewKeyFromSeed(data)}, nil
	case ed25519.PrivateKeySize:
		priv := ed25519.NewKeyFromSeed(data[:ed25519.SeedSize])
		if !bytes.Equal(priv, data) {
			return SecretKey{}, errors.New(
				"secret key public half does not match seed",
			)
		}
		return SecretKey{priv: priv}, nil
	default:
		return SecretKey{}, fmt.Errorf(
			"parse secret key: %w: %d bytes",
			ErrBadKeyLength,
			len(data),
		)
	}
}

// Sign signs the provided message bytes
func (k SecretKey) Sign(message []byte) []byte {
	return ed25519.Sign(k.priv, message)
}

// Public returns the corresponding public key
func (k SecretKey) Public() PublicKey {
	var pub PublicKey
	copy(pub[:], k.priv.Public().(ed25519.PublicKey))
	return pub
}

// String returns the hex-encoded seed form
func (k SecretKey) String() string {
	if k.priv == nil {
		return ""
	}
	return hex.EncodeToString(k.priv.Seed())
}

// IsZero returns true for an unset key
func (k SecretKey) IsZero() bool {
	return k.priv == nil
}

// PublicKey is an ed25519 public key
type PublicKey [ed25519.PublicKeySize]byte

// ParsePublicKey parses a hex-encoded public key and checks that it
// decodes to a canonical curve point
func ParsePublicKey(s string) (PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("parse public key: %w", err)
	}
	return PublicKeyFromBytes(data)
}

// PublicKeyFromBytes builds a public key from raw bytes with point validation
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	if len(data) != ed25519.PublicKeySize {
		return PublicKey{}, fmt.Errorf(
			"parse public key: %w: %d bytes",
			ErrBadKeyLength,
			len(data),
		)
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return PublicKey{}, ErrInvalidPoint
	}
	var pub PublicKey
	copy(pub[:], data)
	return pub, nil
}

// Verify checks an ed25519 signature over message
func (k PublicKey) Verify(message []byte, sig []byte) bool {
	return ed25519.Verify(k.Bytes(), message, sig)
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

func (k PublicKey) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(k[:])
}

func (k *PublicKey) UnmarshalCBOR(data []byte) error {
	var tmpData []byte
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	tmpKey, err := PublicKeyFromBytes(tmpData)
	if err != nil {
		return err
	}
	*k = tmpKey
	return nil
}

// List is an ordered set of public keys as carried by file and claim
// operations
type List []PublicKey
