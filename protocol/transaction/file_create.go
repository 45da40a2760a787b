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

package transaction

import (
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/protocol"
)

// FileCreate stores a new file on the ledger. Every listed key must
// sign the transaction for later appends and deletes to be authorized
type FileCreate struct {
	*Transaction
	payload *hapi.FileCreatePayload
}

func NewFileCreate(ctx *protocol.Context) *FileCreate {
	payload := &hapi.FileCreatePayload{}
	return &FileCreate{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// ExpiresAt sets the instant the file expires
func (f *FileCreate) ExpiresAt(at ledger.Timestamp) *FileCreate {
	f.modify(func() {
		f.payload.ExpiresAt = at
	})
	return f
}

// Key appends an owner key of the new file
func (f *FileCreate) Key(key keys.PublicKey) *FileCreate {
	f.modify(func() {
		f.payload.Keys = append(f.payload.Keys, key)
	})
	return f
}

// Contents sets the initial file contents
func (f *FileCreate) Contents(contents []byte) *FileCreate {
	f.modify(func() {
		f.payload.Contents = contents
	})
	return f
}

// Operator overrides the paying account for this transaction
func (f *FileCreate) Operator(account ledger.AccountID) *FileCreate {
	f.setOperator(account)
	return f
}

// Node overrides the node this transaction is addressed to
func (f *FileCreate) Node(node ledger.AccountID) *FileCreate {
	f.setNode(node)
	return f
}

// Memo sets the transaction memo
func (f *FileCreate) Memo(memo string) *FileCreate {
	f.setMemo(memo)
	return f
}

// Fee sets the maximum transaction fee in tinybars
func (f *FileCreate) Fee(fee uint64) *FileCreate {
	f.setFee(fee)
	return f
}

// GenerateRecord requests a full record of this transaction
func (f *FileCreate) GenerateRecord(generate bool) *FileCreate {
	f.setGenerateRecord(generate)
	return f
}

// Sign appends a signature over the frozen body bytes. Signatures after
// the first are wrapped as owner signature sets
func (f *FileCreate) Sign(key keys.SecretKey) *FileCreate {
	f.Transaction.Sign(key)
	return f
}
