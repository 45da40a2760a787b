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

package rpc

import (
	"fmt"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/hapi"
)

// CryptoService is the account service exposed by every node
type CryptoService interface {
	CreateAccount(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	CryptoTransfer(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	UpdateAccount(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	CryptoDelete(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	AddClaim(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	DeleteClaim(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	CryptoGetBalance(
		query *hapi.AccountBalanceQuery,
	) (*hapi.AccountBalanceAnswer, error)
	GetAccountInfo(
		query *hapi.AccountInfoQuery,
	) (*hapi.AccountInfoAnswer, error)
	GetAccountRecords(
		query *hapi.AccountRecordsQuery,
	) (*hapi.AccountRecordsAnswer, error)
	GetTransactionReceipts(
		query *hapi.TransactionReceiptQuery,
	) (*hapi.TransactionReceiptAnswer, error)
	GetTxRecordByTxID(
		query *hapi.TransactionRecordQuery,
	) (*hapi.TransactionRecordAnswer, error)
}

// FileService is the file service exposed by every node
type FileService interface {
	CreateFile(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	AppendContent(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	GetFileInfo(query *hapi.FileInfoQuery) (*hapi.FileInfoAnswer, error)
	GetFileContent(
		query *hapi.FileContentsQuery,
	) (*hapi.FileContentsAnswer, error)
}

// ContractService is the smart contract service exposed by every node
type ContractService interface {
	CreateContract(tx *hapi.Transaction) (*hapi.TransactionResponse, error)
	GetContractInfo(
		query *hapi.ContractInfoQuery,
	) (*hapi.ContractInfoAnswer, error)
	ContractGetBytecode(
		query *hapi.ContractBytecodeQuery,
	) (*hapi.ContractBytecodeAnswer, error)
}

// callTransaction submits a transaction to the given method and decodes
// the response
func callTransaction(
	conn *Conn,
	method Method,
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	payload, err := cbor.Encode(tx)
	if err != nil {
		return nil, fmt.Errorf("%s: encode error: %w", method, err)
	}
	respPayload, err := conn.Call(method, payload)
	if err != nil {
		return nil, err
	}
	var resp hapi.TransactionResponse
	if _, err := cbor.Decode(respPayload, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode error: %w", method, err)
	}
	return &resp, nil
}

// callQuery submits a query to the given method and decodes the answer
func callQuery(
	conn *Conn,
	method Method,
	query hapi.QueryPayload,
) (hapi.ResponsePayload, error) {
	payload, err := cbor.Encode(query)
	if err != nil {
		return nil, fmt.Errorf("%s: encode error: %w", method, err)
	}
	respPayload, err := conn.Call(method, payload)
	if err != nil {
		return nil, err
	}
	response, err := hapi.NewResponseFromCbor(respPayload)
	if err != nil {
		return nil, fmt.Errorf("%s: decode error: %w", method, err)
	}
	return response, nil
}

type cryptoClient struct {
	conn *Conn
}

// NewCryptoService returns a CryptoService speaking over the given
// connection
func NewCryptoService(conn *Conn) CryptoService {
	return &cryptoClient{conn: conn}
}

func (c *cryptoClient) CreateAccount(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodCreateAccount, tx)
}

func (c *cryptoClient) CryptoTransfer(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodCryptoTransfer, tx)
}

func (c *cryptoClient) UpdateAccount(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodUpdateAccount, tx)
}

func (c *cryptoClient) CryptoDelete(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodCryptoDelete, tx)
}

func (c *cryptoClient) AddClaim(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodAddClaim, tx)
}

func (c *cryptoClient) DeleteClaim(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodDeleteClaim, tx)
}

func (c *cryptoClient) CryptoGetBalance(
	query *hapi.AccountBalanceQuery,
) (*hapi.AccountBalanceAnswer, error) {
	response, err := callQuery(c.conn, MethodCryptoGetBalance, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.AccountBalanceAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

func (c *cryptoClient) GetAccountInfo(
	query *hapi.AccountInfoQuery,
) (*hapi.AccountInfoAnswer, error) {
	response, err := callQuery(c.conn, MethodGetAccountInfo, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.AccountInfoAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

func (c *cryptoClient) GetAccountRecords(
	query *hapi.AccountRecordsQuery,
) (*hapi.AccountRecordsAnswer, error) {
	response, err := callQuery(c.conn, MethodGetAccountRecords, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.AccountRecordsAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

func (c *cryptoClient) GetTransactionReceipts(
	query *hapi.TransactionReceiptQuery,
) (*hapi.TransactionReceiptAnswer, error) {
	response, err := callQuery(c.conn, MethodGetTransactionReceipts, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.TransactionReceiptAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

func (c *cryptoClient) GetTxRecordByTxID(
	query *hapi.TransactionRecordQuery,
) (*hapi.TransactionRecordAnswer, error) {
	response, err := callQuery(c.conn, MethodGetTxRecordByTxID, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.TransactionRecordAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

type fileClient struct {
	conn *Conn
}

// NewFileService returns a FileService speaking over the given
// connection
func NewFileService(conn *Conn) FileService {
	return &fileClient{conn: conn}
}

func (c *fileClient) CreateFile(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodCreateFile, tx)
}

func (c *fileClient) AppendContent(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodAppendContent, tx)
}

func (c *fileClient) GetFileInfo(
	query *hapi.FileInfoQuery,
) (*hapi.FileInfoAnswer, error) {
	response, err := callQuery(c.conn, MethodGetFileInfo, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.FileInfoAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

func (c *fileClient) GetFileContent(
	query *hapi.FileContentsQuery,
) (*hapi.FileContentsAnswer, error) {
	response, err := callQuery(c.conn, MethodGetFileContent, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.FileContentsAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

type contractClient struct {
	conn *Conn
}

// NewContractService returns a ContractService speaking over the given
// connection
func NewContractService(conn *Conn) ContractService {
	return &contractClient{conn: conn}
}

func (c *contractClient) CreateContract(
	tx *hapi.Transaction,
) (*hapi.TransactionResponse, error) {
	return callTransaction(c.conn, MethodCreateContract, tx)
}

func (c *contractClient) GetContractInfo(
	query *hapi.ContractInfoQuery,
) (*hapi.ContractInfoAnswer, error) {
	response, err := callQuery(c.conn, MethodGetContractInfo, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.ContractInfoAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}

func (c *contractClient) ContractGetBytecode(
	query *hapi.ContractBytecodeQuery,
) (*hapi.ContractBytecodeAnswer, error) {
	response, err := callQuery(c.conn, MethodContractGetBytecode, query)
	if err != nil {
		return nil, err
	}
	answer, ok := response.(*hapi.ContractBytecodeAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", response.Kind())
	}
	return answer, nil
}
