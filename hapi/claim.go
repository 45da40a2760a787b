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

package hapi

import (
	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
)

// Claim is a hash attached to an account, revocable by any of the
// listed keys
type Claim struct {
	cbor.StructAsArray
	Account ledger.AccountID
	Hash    []byte
	Keys    keys.List
}
