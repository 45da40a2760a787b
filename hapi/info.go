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
	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
)

// AccountInfo describes the current state of an account
type AccountInfo struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Account          ledger.AccountID
	Deleted          bool
	Key              keys.PublicKey
	Balance          uint64
	ExpiresAt        ledger.Timestamp
	AutoRenewSeconds uint32
}

func (i *AccountInfo) UnmarshalCBOR(cborData []byte) error {
	type tAccountInfo AccountInfo
	var tmp tAccountInfo
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	*i = AccountInfo(tmp)
	i.SetCbor(cborData)
	return nil
}

// FileInfo describes the current state of a file
type FileInfo struct {
	cbor.StructAsArray
	File      ledger.FileID
	Size      int64
	ExpiresAt ledger.Timestamp
	Deleted   bool
	Keys      keys.List
}

// ContractInfo describes the current state of a contract instance
type ContractInfo struct {
	cbor.StructAsArray
	Contract         ledger.ContractID
	Account          ledger.AccountID
	AdminKey         *keys.PublicKey
	ExpiresAt        ledger.Timestamp
	AutoRenewSeconds uint32
	Storage          uint64
}
