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
	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/protocol"
)

// DefaultFee is the transaction fee in tinybars used when no explicit
// fee was set
const DefaultFee uint64 = 10

type state uint8

const (
	stateBuilding     state = 0
	stateFrozen       state = 1
	stateExecuted     state = 2
	stateErrorLatched state = 3
)

// Transaction drives one operation through its lifecycle: accumulate
// fields while building, freeze to canonical bytes, collect signatures
// over those bytes, execute once. A failure at any step latches and is
// returned by every later lifecycle call. A Transaction must not be
// shared across goroutines while mutable
type Transaction struct {
	ctx   *protocol.Context
	state state
	err   error

	payload        hapi.TransactionPayload
	operator       *ledger.AccountID
	node           *ledger.AccountID
	fee            uint64
	memo           string
	generateRecord bool

	body      *hapi.TransactionBody
	bodyBytes []byte
	sigs      hapi.SignatureList
}

func newTransaction(
	ctx *protocol.Context,
	payload hapi.TransactionPayload,
) *Transaction {
	return &Transaction{
		ctx:     ctx,
		payload: payload,
		fee:     DefaultFee,
	}
}

func (t *Transaction) latch(err error) {
	if t.err == nil {
		t.err = err
	}
	t.state = stateErrorLatched
}

// modify runs apply while the transaction is still building. Mutating a
// frozen transaction latches ErrImmutable instead of silently diverging
// from the signed bytes
func (t *Transaction) modify(apply func()) {
	switch t.state {
	case stateExecuted:
		panic("transaction already executed")
	case stateErrorLatched:
		return
	case stateFrozen:
		t.latch(protocol.ErrImmutable)
		return
	}
	apply()
}

func (t *Transaction) setOperator(account ledger.AccountID) {
	t.modify(func() {
		t.operator = &account
	})
}

func (t *Transaction) setNode(node ledger.AccountID) {
	t.modify(func() {
		t.node = &node
	})
}

func (t *Transaction) setMemo(memo string) {
	t.modify(func() {
		t.memo = memo
	})
}

func (t *Transaction) setFee(fee uint64) {
	t.modify(func() {
		t.fee = fee
	})
}

func (t *Transaction) setGenerateRecord(generateRecord bool) {
	t.modify(func() {
		t.generateRecord = generateRecord
	})
}

// operatorAccount resolves the paying account: the explicit override if
// one was set, otherwise the context operator
func (t *Transaction) operatorAccount() *ledger.AccountID {
	if t.operator != nil {
		return t.operator
	}
	if operator := t.ctx.Operator(); operator != nil {
		account := operator.Account
		return &account
	}
	return nil
}

func (t *Transaction) nodeAccount() *ledger.AccountID {
	if t.node != nil {
		return t.node
	}
	return t.ctx.Node()
}

// Freeze validates the envelope, encodes the body to its canonical
// bytes, and locks the transaction against further mutation. Freeze is
// idempotent: once frozen it returns nil without recomputing, and once
// latched it keeps returning the first error
func (t *Transaction) Freeze() error {
	switch t.state {
	case stateFrozen, stateExecuted:
		return nil
	case stateErrorLatched:
		return t.err
	}
	operator := t.operatorAccount()
	if operator == nil {
		t.latch(protocol.MissingFieldError{Field: "operator"})
		return t.err
	}
	node := t.nodeAccount()
	if node == nil {
		t.latch(protocol.MissingFieldError{Field: "node"})
		return t.err
	}
	transactionId := ledger.NewTransactionIDAt(*operator, t.ctx.Clock().Now())
	body := hapi.NewTransactionBody(
		transactionId,
		*node,
		t.fee,
		t.generateRecord,
		t.memo,
		t.payload,
	)
	bodyBytes, err := body.Freeze()
	if err != nil {
		t.latch(err)
		return t.err
	}
	t.body = body
	t.bodyBytes = bodyBytes
	t.state = stateFrozen
	t.ctx.Logger().Debug(
		"transaction frozen",
		"transactionId", transactionId.String(),
		"node", node.String(),
		"payloadKind", t.payload.PayloadKind().String(),
	)
	return nil
}

// Sign appends a signature over the frozen body bytes, freezing first
// when the transaction is still building. For file operations every
// explicit signature after the first is wrapped as a nested
// single-element signature list
func (t *Transaction) Sign(key keys.SecretKey) *Transaction {
	if t.state == stateExecuted {
		panic("transaction already executed")
	}
	if err := t.Freeze(); err != nil {
		return t
	}
	sig := hapi.NewEd25519Signature(key.Sign(t.bodyBytes))
	if t.wrapsExtraSignatures() && len(t.sigs) > 0 {
		sig = hapi.NewListSignature(sig)
	}
	t.sigs = append(t.sigs, sig)
	return t
}

// The wire format distinguishes owner signature sets from simple
// signatures for operations that create or mutate a file
func (t *Transaction) wrapsExtraSignatures() bool {
	switch t.payload.PayloadKind() {
	case hapi.PayloadKindFileCreate, hapi.PayloadKindFileAppend:
		return true
	}
	return false
}

// Execute submits the transaction and consumes it. The operator
// signature is inserted at index 0 when the context has an operator
// key. A non-success pre-check still consumes the transaction; only the
// returned error differs. Executing twice panics
func (t *Transaction) Execute() (ledger.TransactionID, error) {
	switch t.state {
	case stateExecuted:
		panic("transaction already executed")
	case stateErrorLatched:
		return ledger.TransactionID{}, t.err
	case stateBuilding:
		if err := t.Freeze(); err != nil {
			return ledger.TransactionID{}, err
		}
	}
	if operator := t.ctx.Operator(); operator != nil {
		// Index 0 belongs to the account paying the fee
		operatorSig := hapi.NewEd25519Signature(operator.Key.Sign(t.bodyBytes))
		t.sigs = append(hapi.SignatureList{operatorSig}, t.sigs...)
	}
	if payload, ok := t.payload.(*hapi.AccountDeletePayload); ok {
		if payload.TransferAccount == nil {
			account := t.body.TransactionID.Account
			payload.TransferAccount = &account
			// The patched payload reaches the wire while the
			// signatures keep covering the frozen bytes
			t.body.Invalidate()
		}
	}
	transactionId := t.body.TransactionID
	t.state = stateExecuted
	t.ctx.Logger().Debug(
		"executing transaction",
		"transactionId", transactionId.String(),
		"payloadKind", t.payload.PayloadKind().String(),
		"signatures", len(t.sigs),
	)
	resp, err := t.ctx.Dispatcher().SubmitTransaction(
		hapi.NewTransaction(t.body, t.sigs),
	)
	if err != nil {
		return transactionId, err
	}
	if class := protocol.Classify(resp.Precheck); class != protocol.ClassSuccess {
		t.ctx.Logger().Debug(
			"transaction rejected at pre-check",
			"transactionId", transactionId.String(),
			"precheck", resp.Precheck.String(),
			"classification", class.String(),
		)
		return transactionId, protocol.PrecheckError{Code: resp.Precheck}
	}
	return transactionId, nil
}

// Envelope freezes the transaction if needed and returns the encoded
// wire envelope without submitting it. Query payments ride on this
func (t *Transaction) Envelope() ([]byte, error) {
	if err := t.Freeze(); err != nil {
		return nil, err
	}
	return cbor.Encode(hapi.NewTransaction(t.body, t.sigs))
}

// Frozen reports whether the canonical body bytes have been computed
func (t *Transaction) Frozen() bool {
	return t.state == stateFrozen || t.state == stateExecuted
}

// BodyBytes returns the frozen canonical body bytes, or nil while the
// transaction is still building
func (t *Transaction) BodyBytes() []byte {
	return t.bodyBytes
}

// Signatures returns the accumulated signature list
func (t *Transaction) Signatures() hapi.SignatureList {
	return t.sigs
}

// Err returns the latched error, if any
func (t *Transaction) Err() error {
	return t.err
}
