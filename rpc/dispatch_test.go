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

package rpc_test

import (
	"testing"

	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServices implements all three node services and records the
// last method routed to it
type recordingServices struct {
	lastMethod string
}

func (r *recordingServices) transaction(
	method string,
) (*hapi.TransactionResponse, error) {
	r.lastMethod = method
	return &hapi.TransactionResponse{Precheck: hapi.PrecheckOk}, nil
}

func (r *recordingServices) CreateAccount(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("CreateAccount")
}

func (r *recordingServices) CryptoTransfer(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("CryptoTransfer")
}

func (r *recordingServices) UpdateAccount(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("UpdateAccount")
}

func (r *recordingServices) CryptoDelete(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("CryptoDelete")
}

func (r *recordingServices) AddClaim(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("AddClaim")
}

func (r *recordingServices) DeleteClaim(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("DeleteClaim")
}

func (r *recordingServices) CreateFile(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("CreateFile")
}

func (r *recordingServices) AppendContent(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("AppendContent")
}

func (r *recordingServices) CreateContract(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return r.transaction("CreateContract")
}

func (r *recordingServices) CryptoGetBalance(
	query *hapi.AccountBalanceQuery,
) (*hapi.AccountBalanceAnswer, error) {
	r.lastMethod = "CryptoGetBalance"
	return hapi.NewAccountBalanceAnswer(0), nil
}

func (r *recordingServices) GetAccountInfo(
	query *hapi.AccountInfoQuery,
) (*hapi.AccountInfoAnswer, error) {
	r.lastMethod = "GetAccountInfo"
	return hapi.NewAccountInfoAnswer(hapi.AccountInfo{}), nil
}

func (r *recordingServices) GetAccountRecords(
	query *hapi.AccountRecordsQuery,
) (*hapi.AccountRecordsAnswer, error) {
	r.lastMethod = "GetAccountRecords"
	return hapi.NewAccountRecordsAnswer(ledger.AccountID{}, nil), nil
}

func (r *recordingServices) GetTransactionReceipts(
	query *hapi.TransactionReceiptQuery,
) (*hapi.TransactionReceiptAnswer, error) {
	r.lastMethod = "GetTransactionReceipts"
	return hapi.NewTransactionReceiptAnswer(hapi.TransactionReceipt{}), nil
}

func (r *recordingServices) GetTxRecordByTxID(
	query *hapi.TransactionRecordQuery,
) (*hapi.TransactionRecordAnswer, error) {
	r.lastMethod = "GetTxRecordByTxID"
	return hapi.NewTransactionRecordAnswer(hapi.TransactionRecord{}), nil
}

func (r *recordingServices) GetFileInfo(
	query *hapi.FileInfoQuery,
) (*hapi.FileInfoAnswer, error) {
	r.lastMethod = "GetFileInfo"
	return hapi.NewFileInfoAnswer(hapi.FileInfo{}), nil
}

func (r *recordingServices) GetFileContent(
	query *hapi.FileContentsQuery,
) (*hapi.FileContentsAnswer, error) {
	r.lastMethod = "GetFileContent"
	return hapi.NewFileContentsAnswer(ledger.FileID{}, nil), nil
}

func (r *recordingServices) GetContractInfo(
	query *hapi.ContractInfoQuery,
) (*hapi.ContractInfoAnswer, error) {
	r.lastMethod = "GetContractInfo"
	return hapi.NewContractInfoAnswer(hapi.ContractInfo{}), nil
}

func (r *recordingServices) ContractGetBytecode(
	query *hapi.ContractBytecodeQuery,
) (*hapi.ContractBytecodeAnswer, error) {
	r.lastMethod = "ContractGetBytecode"
	return hapi.NewContractBytecodeAnswer(nil), nil
}

func recordingDispatcher() (*rpc.Dispatcher, *recordingServices) {
	services := &recordingServices{}
	return &rpc.Dispatcher{
		Crypto:   services,
		File:     services,
		Contract: services,
	}, services
}

func testTransaction(payload hapi.TransactionPayload) *hapi.Transaction {
	body := hapi.NewTransactionBody(
		ledger.TransactionID{
			Account:    ledger.AccountID{Num: 2},
			ValidStart: ledger.Timestamp{Seconds: 1234567, Nanos: 10001},
		},
		ledger.AccountID{Num: 3},
		10,
		false,
		"",
		payload,
	)
	return hapi.NewTransaction(body, nil)
}

var transactionDispatchTests = []struct {
	payload hapi.TransactionPayload
	method  string
}{
	{hapi.AccountCreatePayload{}, "CreateAccount"},
	{hapi.TransferPayload{}, "CryptoTransfer"},
	{hapi.AccountUpdatePayload{}, "UpdateAccount"},
	{hapi.AccountDeletePayload{}, "CryptoDelete"},
	{hapi.ClaimAddPayload{}, "AddClaim"},
	{hapi.ClaimDeletePayload{}, "DeleteClaim"},
	{hapi.FileCreatePayload{}, "CreateFile"},
	{hapi.FileAppendPayload{}, "AppendContent"},
	{hapi.ContractCreatePayload{}, "CreateContract"},
}

func TestDispatchTransaction(t *testing.T) {
	dispatcher, services := recordingDispatcher()
	for _, test := range transactionDispatchTests {
		resp, err := dispatcher.SubmitTransaction(
			testTransaction(test.payload),
		)
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, test.method, services.lastMethod)
	}
}

// Every operation payload kind must have a dispatch arm
func TestDispatchTransactionCoversAllKinds(t *testing.T) {
	require.Len(
		t,
		transactionDispatchTests,
		len(hapi.TransactionPayloadKinds),
	)
	covered := map[hapi.TransactionPayloadKind]bool{}
	for _, test := range transactionDispatchTests {
		covered[test.payload.PayloadKind()] = true
	}
	dispatcher, _ := recordingDispatcher()
	for _, kind := range hapi.TransactionPayloadKinds {
		require.True(t, covered[kind], "kind %d not covered", kind)
		tx := testTransaction(transactionDispatchTests[0].payload)
		tx.Body.PayloadKind = kind
		_, err := dispatcher.SubmitTransaction(tx)
		assert.NotErrorIs(t, err, rpc.ErrUnhandledOperation)
	}
}

func TestDispatchTransactionUnknownKind(t *testing.T) {
	dispatcher, _ := recordingDispatcher()
	tx := testTransaction(hapi.TransferPayload{})
	tx.Body.PayloadKind = hapi.TransactionPayloadKind(99)
	_, err := dispatcher.SubmitTransaction(tx)
	assert.ErrorIs(t, err, rpc.ErrUnhandledOperation)
}

func TestDispatchTransactionNoBody(t *testing.T) {
	dispatcher, _ := recordingDispatcher()
	_, err := dispatcher.SubmitTransaction(&hapi.Transaction{})
	assert.Error(t, err)
}

var queryDispatchTests = []struct {
	query  hapi.QueryPayload
	method string
}{
	{hapi.NewAccountBalanceQuery(ledger.AccountID{Num: 2}), "CryptoGetBalance"},
	{hapi.NewAccountInfoQuery(ledger.AccountID{Num: 2}), "GetAccountInfo"},
	{hapi.NewAccountRecordsQuery(ledger.AccountID{Num: 2}), "GetAccountRecords"},
	{hapi.NewTransactionReceiptQuery(ledger.TransactionID{}), "GetTransactionReceipts"},
	{hapi.NewTransactionRecordQuery(ledger.TransactionID{}), "GetTxRecordByTxID"},
	{hapi.NewFileContentsQuery(ledger.FileID{Num: 2000}), "GetFileContent"},
	{hapi.NewFileInfoQuery(ledger.FileID{Num: 2000}), "GetFileInfo"},
	{hapi.NewContractInfoQuery(ledger.ContractID{Num: 5005}), "GetContractInfo"},
	{hapi.NewContractBytecodeQuery(ledger.ContractID{Num: 5005}), "ContractGetBytecode"},
}

func TestDispatchQuery(t *testing.T) {
	dispatcher, services := recordingDispatcher()
	for _, test := range queryDispatchTests {
		response, err := dispatcher.SubmitQuery(test.query)
		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Equal(t, test.method, services.lastMethod)
		assert.Equal(t, test.query.Kind(), response.Kind())
	}
}

// Every query kind must have a dispatch arm
func TestDispatchQueryCoversAllKinds(t *testing.T) {
	require.Len(t, queryDispatchTests, len(hapi.QueryKinds))
	covered := map[hapi.QueryKind]bool{}
	for _, test := range queryDispatchTests {
		covered[test.query.Kind()] = true
	}
	for _, kind := range hapi.QueryKinds {
		require.True(t, covered[kind], "kind %d not covered", kind)
	}
}
