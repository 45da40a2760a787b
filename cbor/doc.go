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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the encoding
// conventions used by the wire envelope: deterministic (ordered) encoding,
// struct-as-array layout via the embeddable StructAsArray type, and
// preservation of original message bytes via DecodeStoreCbor for types
// whose serialized form must survive round-trips byte for byte.
//
// Types that store their original bytes follow one pattern: embed
// DecodeStoreCbor, implement UnmarshalCBOR through either the type-alias
// trick or DecodeGeneric, and call SetCbor with the incoming data. The
// stored bytes are what gets signed and hashed; re-encoding is never a
// substitute.
package cbor
