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

package gohedera_test

import (
	"fmt"
	"testing"
	"time"

	gohedera "github.com/blackoak-io/gohedera"
	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/internal/test"
	"github.com/blackoak-io/gohedera/internal/test/hedera_mock"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/rpc"
	"go.uber.org/goleak"
)

var (
	testOperatorAccount = ledger.AccountID{Num: 2}
	testNodeAccount     = ledger.AccountID{Num: 3}
	testOperatorKey     = mustSecretKey(
		"0000000000000000000000000000000000000000000000000000000000000001",
	)
	testAccountKey = mustSecretKey(
		"0000000000000000000000000000000000000000000000000000000000000002",
	)
)

func mustSecretKey(seed string) keys.SecretKey {
	key, err := keys.ParseSecretKey(seed)
	if err != nil {
		panic(err)
	}
	return key
}

type testInnerFunc func(*testing.T, *gohedera.Client)

func runTest(
	t *testing.T,
	conversation []hedera_mock.ConversationEntry,
	innerFunc testInnerFunc,
) {
	defer goleak.VerifyNone(t)
	mockConn := hedera_mock.NewConnection(conversation)
	// The fake clock lands transaction valid-start times at a known
	// value after backdating
	client, err := gohedera.NewClient(
		gohedera.WithConn(mockConn),
		gohedera.WithOperator(testOperatorAccount, testOperatorKey),
		gohedera.WithNode(testNodeAccount),
		gohedera.WithClock(test.NewFakeClock(1234572, 10001)),
	)
	if err != nil {
		t.Fatalf("unexpected error when creating client: %s", err)
	}
	// Run test inner function
	innerFunc(t, client)
	// Wait for mock connection shutdown
	select {
	case <-mockConn.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("mock conversation did not complete within timeout")
	}
	// Close client connection
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error when closing client: %s", err)
	}
}

func TestClientAccountBalance(t *testing.T) {
	queried := ledger.AccountID{Num: 1001}
	answer := hapi.NewAccountBalanceAnswer(2500)
	answer.Precheck = hapi.PrecheckOk
	conversation := []hedera_mock.ConversationEntry{
		{
			Type:   hedera_mock.EntryTypeExchange,
			Method: rpc.MethodCryptoGetBalance,
			MatchFunc: func(payload []byte) error {
				var query hapi.AccountBalanceQuery
				if _, err := cbor.Decode(payload, &query); err != nil {
					return err
				}
				if query.Account != queried {
					return fmt.Errorf(
						"queried account: got %s, wanted %s",
						query.Account,
						queried,
					)
				}
				return nil
			},
			Response: answer,
		},
		hedera_mock.ConversationEntryClose,
	}
	runTest(
		t,
		conversation,
		func(t *testing.T, client *gohedera.Client) {
			balance, err := client.Account(queried).Balance().Get()
			if err != nil {
				t.Fatalf("unexpected error when fetching balance: %s", err)
			}
			if balance != 2500 {
				t.Fatalf(
					"did not get expected balance: got %d, wanted %d",
					balance,
					2500,
				)
			}
		},
	)
}

func TestClientCreateAccountReceipt(t *testing.T) {
	created := ledger.AccountID{Num: 1010}
	var sentEnvelope []byte
	receipt := hapi.TransactionReceipt{
		Status:  hapi.StatusSuccess,
		Account: &created,
	}
	receiptAnswer := hapi.NewTransactionReceiptAnswer(receipt)
	receiptAnswer.Precheck = hapi.PrecheckOk
	conversation := []hedera_mock.ConversationEntry{
		{
			Type:   hedera_mock.EntryTypeExchange,
			Method: rpc.MethodCreateAccount,
			MatchFunc: func(payload []byte) error {
				sentEnvelope = payload
				return nil
			},
			Response: &hapi.TransactionResponse{Precheck: hapi.PrecheckOk},
		},
		hedera_mock.Exchange(rpc.MethodGetTransactionReceipts, receiptAnswer),
		hedera_mock.ConversationEntryClose,
	}
	runTest(
		t,
		conversation,
		func(t *testing.T, client *gohedera.Client) {
			txId, err := client.CreateAccount().
				Key(testAccountKey.Public()).
				InitialBalance(100000).
				Execute()
			if err != nil {
				t.Fatalf("unexpected error when creating account: %s", err)
			}
			expectedTxId := ledger.TransactionID{
				Account:    testOperatorAccount,
				ValidStart: ledger.Timestamp{Seconds: 1234567, Nanos: 10001},
			}
			if txId != expectedTxId {
				t.Fatalf(
					"did not get expected transaction id: got %s, wanted %s",
					txId,
					expectedTxId,
				)
			}
			// The mock records the request payload before answering, so
			// the envelope is visible once Execute() returns
			var sent hapi.Transaction
			if _, err := cbor.Decode(sentEnvelope, &sent); err != nil {
				t.Fatalf("failed to decode submitted envelope: %s", err)
			}
			payload, ok := sent.Body.Payload.(*hapi.AccountCreatePayload)
			if !ok {
				t.Fatalf(
					"did not get expected payload kind: %s",
					sent.Body.PayloadKind,
				)
			}
			if payload.Key != testAccountKey.Public() {
				t.Fatalf("submitted payload carries wrong account key")
			}
			if payload.InitialBalance != 100000 {
				t.Fatalf(
					"did not get expected initial balance: got %d, wanted %d",
					payload.InitialBalance,
					100000,
				)
			}
			if len(sent.Sigs) != 1 {
				t.Fatalf(
					"did not get expected signature count: got %d, wanted %d",
					len(sent.Sigs),
					1,
				)
			}
			if !testOperatorKey.Public().Verify(
				sent.Body.Cbor(),
				sent.Sigs[0].Ed25519,
			) {
				t.Fatalf("operator signature does not cover the frozen body")
			}
			result, err := client.Transaction(txId).Receipt().Get()
			if err != nil {
				t.Fatalf("unexpected error when fetching receipt: %s", err)
			}
			if result.Status != hapi.StatusSuccess {
				t.Fatalf(
					"did not get expected receipt status: got %s",
					result.Status,
				)
			}
			if result.Account == nil || *result.Account != created {
				t.Fatalf("receipt does not carry the created account id")
			}
		},
	)
}

func TestClientTransferCrypto(t *testing.T) {
	recipient := ledger.AccountID{Num: 1001}
	var sentEnvelope []byte
	conversation := []hedera_mock.ConversationEntry{
		{
			Type:   hedera_mock.EntryTypeExchange,
			Method: rpc.MethodCryptoTransfer,
			MatchFunc: func(payload []byte) error {
				sentEnvelope = payload
				return nil
			},
			Response: &hapi.TransactionResponse{Precheck: hapi.PrecheckOk},
		},
		hedera_mock.ConversationEntryClose,
	}
	runTest(
		t,
		conversation,
		func(t *testing.T, client *gohedera.Client) {
			_, err := client.TransferCrypto().
				Transfer(testOperatorAccount, -50).
				Transfer(recipient, 50).
				Memo("rent").
				Execute()
			if err != nil {
				t.Fatalf("unexpected error when transferring: %s", err)
			}
			var sent hapi.Transaction
			if _, err := cbor.Decode(sentEnvelope, &sent); err != nil {
				t.Fatalf("failed to decode submitted envelope: %s", err)
			}
			if sent.Body.Memo != "rent" {
				t.Fatalf(
					"did not get expected memo: got %q, wanted %q",
					sent.Body.Memo,
					"rent",
				)
			}
			payload, ok := sent.Body.Payload.(*hapi.TransferPayload)
			if !ok {
				t.Fatalf(
					"did not get expected payload kind: %s",
					sent.Body.PayloadKind,
				)
			}
			expectedTransfers := hapi.TransferList{
				{Account: testOperatorAccount, Amount: -50},
				{Account: recipient, Amount: 50},
			}
			if len(payload.Transfers) != len(expectedTransfers) {
				t.Fatalf(
					"did not get expected transfer count: got %d, wanted %d",
					len(payload.Transfers),
					len(expectedTransfers),
				)
			}
			for i, transfer := range payload.Transfers {
				if transfer != expectedTransfers[i] {
					t.Fatalf(
						"did not get expected transfer leg %d: got %v, wanted %v",
						i,
						transfer,
						expectedTransfers[i],
					)
				}
			}
		},
	)
}

func TestClientDoubleClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	mockConn := hedera_mock.NewConnection(
		[]hedera_mock.ConversationEntry{
			hedera_mock.ConversationEntryClose,
		},
	)
	client, err := gohedera.NewClient(
		gohedera.WithConn(mockConn),
	)
	if err != nil {
		t.Fatalf("unexpected error when creating client: %s", err)
	}
	<-mockConn.Done()
	// Close client connection
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error when closing client: %s", err)
	}
	// Close client connection again
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error when closing client again: %s", err)
	}
}

func TestNewClientNoAddress(t *testing.T) {
	if _, err := gohedera.NewClient(); err == nil {
		t.Fatalf("did not get expected failure on NewClient()")
	}
}
