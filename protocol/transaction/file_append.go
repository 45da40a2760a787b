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

// FileAppend appends contents to an existing file
type FileAppend struct {
	*Transaction
	payload *hapi.FileAppendPayload
}

func NewFileAppend(ctx *protocol.Context) *FileAppend {
	payload := &hapi.FileAppendPayload{}
	return &FileAppend{
		Transaction: newTransaction(ctx, payload),
		payload:     payload,
	}
}

// File sets the file being appended to
func (f *FileAppend) File(file ledger.FileID) *FileAppend {
	f.modify(func() {
		f.payload.File = file
	})
	return f
}

// Contents sets the contents being appended
func (f *FileAppend) Contents(contents []byte) *FileAppend {
	f.modify(func() {
		f.payload.Contents = contents
	})
	return f
}

// Operator overrides the paying account for this transaction
func (f *FileAppend) Operator(account ledger.AccountID) *FileAppend {
	f.setOperator(account)
	return f
}

// Node overrides the node this transaction is addressed to
func (f *FileAppend) Node(node ledger.AccountID) *FileAppend {
	f.setNode(node)
	return f
}

// Memo sets the transaction memo
func (f *FileAppend) Memo(memo string) *FileAppend {
	f.setMemo(memo)
	return f
}

// Fee sets the maximum transaction fee in tinybars
func (f *FileAppend) Fee(fee uint64) *FileAppend {
	f.setFee(fee)
	return f
}

// GenerateRecord requests a full record of this transaction
func (f *FileAppend) GenerateRecord(generate bool) *FileAppend {
	f.setGenerateRecord(generate)
	return f
}

// Sign appends a signature over the frozen body bytes. Signatures after
// the first are wrapped as owner signature sets
func (f *FileAppend) Sign(key keys.SecretKey) *FileAppend {
	f.Transaction.Sign(key)
	return f
}
