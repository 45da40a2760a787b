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

import "fmt"

// Method identifies a service method on the wire
type Method uint16

const (
	MethodCreateAccount          Method = 1
	MethodCryptoTransfer         Method = 2
	MethodUpdateAccount          Method = 3
	MethodCryptoDelete           Method = 4
	MethodAddClaim               Method = 5
	MethodDeleteClaim            Method = 6
	MethodCryptoGetBalance       Method = 7
	MethodGetAccountInfo         Method = 8
	MethodGetAccountRecords      Method = 9
	MethodGetTransactionReceipts Method = 10
	MethodGetTxRecordByTxID      Method = 11
	MethodCreateFile             Method = 12
	MethodAppendContent          Method = 13
	MethodGetFileInfo            Method = 14
	MethodGetFileContent         Method = 15
	MethodCreateContract         Method = 16
	MethodGetContractInfo        Method = 17
	MethodContractGetBytecode    Method = 18
)

func (m Method) String() string {
	switch m {
	case MethodCreateAccount:
		return "CreateAccount"
	case MethodCryptoTransfer:
		return "CryptoTransfer"
	case MethodUpdateAccount:
		return "UpdateAccount"
	case MethodCryptoDelete:
		return "CryptoDelete"
	case MethodAddClaim:
		return "AddClaim"
	case MethodDeleteClaim:
		return "DeleteClaim"
	case MethodCryptoGetBalance:
		return "CryptoGetBalance"
	case MethodGetAccountInfo:
		return "GetAccountInfo"
	case MethodGetAccountRecords:
		return "GetAccountRecords"
	case MethodGetTransactionReceipts:
		return "GetTransactionReceipts"
	case MethodGetTxRecordByTxID:
		return "GetTxRecordByTxID"
	case MethodCreateFile:
		return "CreateFile"
	case MethodAppendContent:
		return "AppendContent"
	case MethodGetFileInfo:
		return "GetFileInfo"
	case MethodGetFileContent:
		return "GetFileContent"
	case MethodCreateContract:
		return "CreateContract"
	case MethodGetContractInfo:
		return "GetContractInfo"
	case MethodContractGetBytecode:
		return "ContractGetBytecode"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(m))
	}
}
