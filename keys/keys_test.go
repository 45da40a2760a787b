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

package keys_test

import (
	"strings"
	"testing"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeedHex = "0101010101010101010101010101010101010101010101010101010101010101"

func TestGenerateSignVerify(t *testing.T) {
	secret, err := keys.GenerateSecretKey()
	require.NoError(t, err)
	message := []byte("test message")
	sig := secret.Sign(message)
	assert.Len(t, sig, 64)
	assert.True(t, secret.Public().Verify(message, sig))
	assert.False(t, secret.Public().Verify([]byte("other message"), sig))
}

func TestParseSecretKeySeed(t *testing.T) {
	secret, err := keys.ParseSecretKey(testSeedHex)
	require.NoError(t, err)
	assert.Equal(t, testSeedHex, secret.String())
	assert.False(t, secret.IsZero())
}

func TestParseSecretKeyExpanded(t *testing.T) {
	secret, err := keys.ParseSecretKey(testSeedHex)
	require.NoError(t, err)
	expanded := testSeedHex + secret.Public().String()
	secret2, err := keys.ParseSecretKey(expanded)
	require.NoError(t, err)
	assert.Equal(t, secret.String(), secret2.String())
}

func TestParseSecretKeyBadLength(t *testing.T) {
	_, err := keys.ParseSecretKey("0102")
	assert.ErrorIs(t, err, keys.ErrBadKeyLength)
}

func TestParsePublicKeyRoundTrip(t *testing.T) {
	secret, err := keys.ParseSecretKey(testSeedHex)
	require.NoError(t, err)
	pub := secret.Public()
	parsed, err := keys.ParsePublicKey(pub.String())
	require.NoError(t, err)
	assert.Equal(t, pub, parsed)
}

func TestParsePublicKeyInvalidPoint(t *testing.T) {
	// Non-canonical y coordinate (>= 2^255-19)
	badKey := strings.Repeat("ff", 31) + "7f"
	_, err := keys.ParsePublicKey(badKey)
	assert.ErrorIs(t, err, keys.ErrInvalidPoint)
}

func TestPublicKeyCborRoundTrip(t *testing.T) {
	secret, err := keys.ParseSecretKey(testSeedHex)
	require.NoError(t, err)
	keyList := keys.List{secret.Public()}
	cborData, err := cbor.Encode(&keyList)
	require.NoError(t, err)
	var decoded keys.List
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, keyList[0], decoded[0])
}
