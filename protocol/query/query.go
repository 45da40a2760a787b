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

package query

import (
	"time"

	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/protocol"
	"github.com/blackoak-io/gohedera/protocol/transaction"
)

// maxAttempts bounds the busy-retry loop. The fifth busy answer is
// surfaced to the caller
const maxAttempts = 5

// paymentSettleDelay is the network-imposed minimum interval between
// consecutive queries against the same node
const paymentSettleDelay = 1 * time.Second

// Query drives one query through submission: bounded busy retries,
// cost discovery, and payment negotiation. A Query must not be shared
// across goroutines
type Query struct {
	ctx     *protocol.Context
	payload hapi.QueryPayload
}

func newQuery(ctx *protocol.Context, payload hapi.QueryPayload) *Query {
	return &Query{
		ctx:     ctx,
		payload: payload,
	}
}

// Payment attaches an explicitly built payment transaction, freezing it
// first when still building
func (q *Query) Payment(tx *transaction.Transaction) error {
	envelope, err := tx.Envelope()
	if err != nil {
		return err
	}
	q.payload.Header().SetPayment(envelope)
	return nil
}

// submit sends the query, retrying while the node reports busy. The
// backoff is linear: attempt number times two seconds, with the attempt
// counter incremented before sleeping
func (q *Query) submit() (hapi.ResponsePayload, error) {
	attempt := 0
	for {
		resp, err := q.ctx.Dispatcher().SubmitQuery(q.payload)
		if err != nil {
			return nil, err
		}
		precheck := resp.Header().Precheck
		if protocol.Classify(precheck) != protocol.ClassRetryable {
			return resp, nil
		}
		attempt++
		if attempt >= maxAttempts {
			return nil, protocol.PrecheckError{Code: precheck}
		}
		backoff := time.Duration(attempt) * 2 * time.Second
		q.ctx.Logger().Debug(
			"node busy, backing off",
			"queryKind", q.payload.Kind().String(),
			"attempt", attempt,
			"backoff", backoff,
		)
		q.ctx.Clock().Sleep(backoff)
	}
}

// Cost asks the node what the query costs instead of answering it. The
// quoted fee rides inside a nominally invalid response when no payment
// is attached, so that pre-check code counts as success here
func (q *Query) Cost() (uint64, error) {
	header := q.payload.Header()
	savedPayment := header.Payment
	savedType := header.ResponseType
	header.Payment = nil
	header.ResponseType = hapi.ResponseTypeCostAnswer
	defer func() {
		header.Payment = savedPayment
		header.ResponseType = savedType
	}()
	resp, err := q.submit()
	if err != nil {
		return 0, err
	}
	respHeader := resp.Header()
	switch protocol.Classify(respHeader.Precheck) {
	case protocol.ClassSuccess, protocol.ClassNeedsPayment:
		return respHeader.Cost, nil
	default:
		return 0, protocol.PrecheckError{Code: respHeader.Precheck}
	}
}

// attachPayment derives the query fee and attaches a signed transfer
// moving it from the operator to the node
func (q *Query) attachPayment() error {
	operator := q.ctx.Operator()
	node := q.ctx.Node()
	if operator == nil || node == nil {
		return protocol.PrecheckError{Code: hapi.PrecheckInvalidTransaction}
	}
	cost, err := q.Cost()
	if err != nil {
		return err
	}
	q.ctx.Logger().Debug(
		"attaching query payment",
		"queryKind", q.payload.Kind().String(),
		"cost", cost,
	)
	envelope, err := transaction.NewTransfer(q.ctx).
		Transfer(operator.Account, -int64(cost)). //nolint:gosec
		Transfer(*node, int64(cost)).             //nolint:gosec
		Sign(operator.Key).
		Envelope()
	if err != nil {
		return err
	}
	q.payload.Header().SetPayment(envelope)
	return nil
}

// get submits for an answer, negotiating a payment when the node asks
// for one: derive the cost, attach a signed transfer, wait out the
// settle delay, then retry exactly once
func (q *Query) get() (hapi.ResponsePayload, error) {
	q.payload.Header().ResponseType = hapi.ResponseTypeAnswerOnly
	resp, err := q.submit()
	if err != nil {
		return nil, err
	}
	precheck := resp.Header().Precheck
	switch protocol.Classify(precheck) {
	case protocol.ClassSuccess:
		return resp, nil
	case protocol.ClassNeedsPayment:
		if q.payload.Header().HasPayment() {
			return nil, protocol.PrecheckError{Code: precheck}
		}
		if err := q.attachPayment(); err != nil {
			return nil, err
		}
		q.ctx.Clock().Sleep(paymentSettleDelay)
		resp, err = q.submit()
		if err != nil {
			return nil, err
		}
		precheck = resp.Header().Precheck
		if protocol.Classify(precheck) != protocol.ClassSuccess {
			return nil, protocol.PrecheckError{Code: precheck}
		}
		return resp, nil
	default:
		return nil, protocol.PrecheckError{Code: precheck}
	}
}
