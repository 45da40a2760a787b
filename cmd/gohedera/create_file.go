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
	"github.com/blackoak-io/gohedera/ledger"
)

type createFileFlags struct {
	flagset       *flag.FlagSet
	expireSeconds int64
}

func newCreateFileFlags() *createFileFlags {
	f := &createFileFlags{
		flagset: flag.NewFlagSet("create-file", flag.ExitOnError),
	}
	f.flagset.Int64Var(
		&f.expireSeconds,
		"expire-seconds",
		7890000,
		"seconds from now until the file expires",
	)
	return f
}

func runCreateFile(f *common.GlobalFlags) {
	createFlags := newCreateFileFlags()
	if err := createFlags.flagset.Parse(f.Flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(createFlags.flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a file to upload\n")
		os.Exit(1)
	}
	contents, err := os.ReadFile(createFlags.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if f.OperatorKey.IsZero() {
		fmt.Printf("ERROR: create-file requires an operator account\n")
		os.Exit(1)
	}

	client := common.CreateClient(f)
	defer client.Close()

	expires := ledger.Now()
	expires.Seconds += createFlags.expireSeconds
	txId, err := client.CreateFile().
		Key(f.OperatorKey.Public()).
		Contents(contents).
		ExpiresAt(expires).
		Execute()
	if err != nil {
		fmt.Printf("ERROR: failure creating file: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("submitted transaction %s\n", txId)

	receipt, err := client.Transaction(txId).Receipt().Get()
	if err != nil {
		fmt.Printf("ERROR: failure fetching receipt: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("status = %s\n", receipt.Status)
	if receipt.File != nil {
		fmt.Printf("file = %s\n", receipt.File)
	}
}
