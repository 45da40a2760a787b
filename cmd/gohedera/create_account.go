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
	"flag"
	"fmt"
	"os"

	"github.com/blackoak-io/gohedera/cmd/common"
	"github.com/blackoak-io/gohedera/keys"
)

type createAccountFlags struct {
	flagset        *flag.FlagSet
	initialBalance uint64
}

func newCreateAccountFlags() *createAccountFlags {
	f := &createAccountFlags{
		flagset: flag.NewFlagSet("create-account", flag.ExitOnError),
	}
	f.flagset.Uint64Var(
		&f.initialBalance,
		"initial-balance",
		0,
		"initial balance for the new account in tinybar",
	)
	return f
}

func runCreateAccount(f *common.GlobalFlags) {
	createFlags := newCreateAccountFlags()
	if err := createFlags.flagset.Parse(f.Flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}

	key, err := keys.GenerateSecretKey()
	if err != nil {
		fmt.Printf("ERROR: failure generating account key: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("secret = %s\n", key)
	fmt.Printf("public = %s\n", key.Public())

	client := common.CreateClient(f)
	defer client.Close()

	txId, err := client.CreateAccount().
		Key(key.Public()).
		InitialBalance(createFlags.initialBalance).
		Execute()
	if err != nil {
		fmt.Printf("ERROR: failure creating account: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("submitted transaction %s\n", txId)

	receipt, err := client.Transaction(txId).Receipt().Get()
	if err != nil {
		fmt.Printf("ERROR: failure fetching receipt: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("status = %s\n", receipt.Status)
	if receipt.Account != nil {
		fmt.Printf("account = %s\n", receipt.Account)
	}
}
