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

// Package hapi defines the wire envelope spoken to network nodes:
// transactions (a frozen body plus an ordered signature list), queries
// (a kind tag, a header carrying payment and response mode, and the
// kind-specific fields), and their responses. All records serialize as
// deterministic CBOR arrays.
//
// The transaction body is the unit of signing. Once frozen its encoded
// bytes are stored and re-emitted verbatim; mutating the payload after
// freeze invalidates the stored bytes so the wire form re-encodes while
// existing signatures continue to cover the frozen form.
package hapi
