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

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/blackoak-io/gohedera/cmd/common"
	"github.com/blackoak-io/gohedera/ledger"
)

func runTransfer(f *common.GlobalFlags) {
	args := f.Flagset.Args()[1:]
	if len(args) < 2 {
		fmt.Printf("ERROR: you must specify a recipient account id and an amount\n")
		os.Exit(1)
	}
	recipient, err := ledger.ParseAccountID(args[0])
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Printf("ERROR: invalid amount: %s\n", err)
		os.Exit(1)
	}
	if f.OperatorAccount == nil {
		fmt.Printf("ERROR: transfer requires an operator account\n")
		os.Exit(1)
	}

	client := common.CreateClient(f)
	defer client.Close()

	txId, err := client.TransferCrypto().
		Transfer(*f.OperatorAccount, -amount).
		Transfer(recipient, amount).
		Execute()
	if err != nil {
		fmt.Printf("ERROR: failure submitting transfer: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("submitted transfer %s\n", txId)

	receipt, err := client.Transaction(txId).Receipt().Get()
	if err != nil {
		fmt.Printf("ERROR: failure fetching receipt: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("status = %s\n", receipt.Status)
}
