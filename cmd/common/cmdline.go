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

package common

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
)

type GlobalFlags struct {
	Flagset  *flag.FlagSet
	Config   string
	Address  string
	Network  string
	Node     string
	Operator string
	LogLevel string
	// Parsed forms, populated by Parse()
	NodeAccount     *ledger.AccountID
	OperatorAccount *ledger.AccountID
	OperatorKey     keys.SecretKey
}

// fileConfig holds the config file keys. The operator signing key is
// never read from the config file, only from OPERATOR_SECRET
type fileConfig struct {
	Address  string `toml:"address"`
	Network  string `toml:"network"`
	Node     string `toml:"node"`
	Operator string `toml:"operator"`
	LogLevel string `toml:"log_level"`
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Config,
		"config",
		"",
		"path to a TOML config file",
	)
	f.Flagset.StringVar(
		&f.Address,
		"address",
		"",
		"node address to connect to in address:port format",
	)
	f.Flagset.StringVar(
		&f.Network,
		"network",
		"",
		"specifies a named network to connect to (defaults to testnet)",
	)
	f.Flagset.StringVar(
		&f.Node,
		"node",
		"",
		"node account id. this overrides the account published for the named network",
	)
	f.Flagset.StringVar(
		&f.Operator,
		"operator",
		"",
		"operator account id paying for transactions. requires OPERATOR_SECRET",
	)
	f.Flagset.StringVar(
		&f.LogLevel,
		"log-level",
		"",
		"log level: debug, info, warn, or error (defaults to warn)",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.Config != "" {
		f.applyFileConfig()
	}
	if f.Network == "" {
		f.Network = "testnet"
	}
	if f.LogLevel == "" {
		f.LogLevel = "warn"
	}
	if f.Node != "" {
		node, err := ledger.ParseAccountID(f.Node)
		if err != nil {
			fmt.Printf("Invalid node account specified: %s\n", err)
			os.Exit(1)
		}
		f.NodeAccount = &node
	}
	if f.Operator != "" {
		operator, err := ledger.ParseAccountID(f.Operator)
		if err != nil {
			fmt.Printf("Invalid operator account specified: %s\n", err)
			os.Exit(1)
		}
		f.OperatorAccount = &operator
		secret := os.Getenv("OPERATOR_SECRET")
		if secret == "" {
			fmt.Printf(
				"The OPERATOR_SECRET environment variable must be set when an operator account is configured\n",
			)
			os.Exit(1)
		}
		key, err := keys.ParseSecretKey(secret)
		if err != nil {
			fmt.Printf("Invalid operator secret: %s\n", err)
			os.Exit(1)
		}
		f.OperatorKey = key
	}
}

// applyFileConfig fills in flags left unset on the command line from
// the config file
func (f *GlobalFlags) applyFileConfig() {
	var raw fileConfig
	meta, err := toml.DecodeFile(f.Config, &raw)
	if err != nil {
		fmt.Printf("failed to load config file: %s\n", err)
		os.Exit(1)
	}
	if f.Address == "" && meta.IsDefined("address") {
		f.Address = raw.Address
	}
	if f.Network == "" && meta.IsDefined("network") {
		f.Network = raw.Network
	}
	if f.Node == "" && meta.IsDefined("node") {
		f.Node = raw.Node
	}
	if f.Operator == "" && meta.IsDefined("operator") {
		f.Operator = raw.Operator
	}
	if f.LogLevel == "" && meta.IsDefined("log_level") {
		f.LogLevel = raw.LogLevel
	}
}
