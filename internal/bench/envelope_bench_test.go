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

package bench

import (
	"bytes"
	"testing"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/rpc"
)

// benchSink prevents compiler dead-code elimination in benchmarks.
var benchSink interface{}

// BenchmarkEnvelopeEncode benchmarks transaction envelope CBOR encoding
// by transfer leg count.
func BenchmarkEnvelopeEncode(b *testing.B) {
	for _, legs := range LegCounts() {
		fixture := MustLoadEnvelopeFixture(legs)
		b.Run(fixture.Name, func(b *testing.B) {
			b.SetBytes(int64(len(fixture.Cbor)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = cbor.Encode(fixture.Envelope)
			}
		})
	}
}

// BenchmarkEnvelopeDecode benchmarks transaction envelope CBOR decoding
// by transfer leg count.
func BenchmarkEnvelopeDecode(b *testing.B) {
	for _, legs := range LegCounts() {
		fixture := MustLoadEnvelopeFixture(legs)
		b.Run(fixture.Name, func(b *testing.B) {
			// Pre-validate that decoding succeeds before measuring
			var tx hapi.Transaction
			if _, err := cbor.Decode(fixture.Cbor, &tx); err != nil {
				b.Fatalf("envelope decode failed: %v", err)
			}
			benchSink = &tx

			b.SetBytes(int64(len(fixture.Cbor)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var tx hapi.Transaction
				_, _ = cbor.Decode(fixture.Cbor, &tx)
				benchSink = &tx
			}
		})
	}
}

// BenchmarkBodySign benchmarks signing the frozen body bytes.
func BenchmarkBodySign(b *testing.B) {
	fixture := MustLoadEnvelopeFixture(2)
	b.SetBytes(int64(len(fixture.BodyBytes)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = fixture.Key.Sign(fixture.BodyBytes)
	}
}

// BenchmarkSignatureVerify benchmarks verifying an envelope signature
// against the frozen body bytes.
func BenchmarkSignatureVerify(b *testing.B) {
	fixture := MustLoadEnvelopeFixture(2)
	public := fixture.Key.Public()
	sig := fixture.Envelope.Sigs[0].Ed25519
	if !public.Verify(fixture.BodyBytes, sig) {
		b.Fatalf("fixture signature does not verify")
	}
	b.SetBytes(int64(len(fixture.BodyBytes)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = public.Verify(fixture.BodyBytes, sig)
	}
}

// BenchmarkFrameRoundTrip benchmarks writing and reading one request
// frame carrying an encoded envelope.
func BenchmarkFrameRoundTrip(b *testing.B) {
	for _, legs := range LegCounts() {
		fixture := MustLoadEnvelopeFixture(legs)
		b.Run(fixture.Name, func(b *testing.B) {
			var buf bytes.Buffer
			frame := rpc.NewFrame(rpc.MethodCryptoTransfer, fixture.Cbor)
			b.SetBytes(int64(len(fixture.Cbor)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Reset()
				if err := rpc.WriteFrame(&buf, frame); err != nil {
					b.Fatalf("frame write failed: %v", err)
				}
				read, err := rpc.ReadFrame(&buf)
				if err != nil {
					b.Fatalf("frame read failed: %v", err)
				}
				benchSink = read
			}
		})
	}
}

// BenchmarkHash benchmarks envelope digests by transfer leg count.
func BenchmarkHash(b *testing.B) {
	for _, legs := range LegCounts() {
		fixture := MustLoadEnvelopeFixture(legs)
		b.Run(fixture.Name, func(b *testing.B) {
			b.SetBytes(int64(len(fixture.Cbor)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				hash, err := fixture.Envelope.Hash()
				if err != nil {
					b.Fatalf("envelope hash failed: %v", err)
				}
				benchSink = hash
			}
		})
	}
}
