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

package gohedera

import "github.com/blackoak-io/gohedera/ledger"

// Network definitions
var (
	NetworkMainnet = Network{
		Name:        "mainnet",
		Address:     "35.237.200.180:50211",
		NodeAccount: ledger.AccountID{Num: 3},
	}
	NetworkTestnet = Network{
		Name:        "testnet",
		Address:     "0.testnet.hedera.com:50211",
		NodeAccount: ledger.AccountID{Num: 3},
	}
	NetworkPreviewnet = Network{
		Name:        "previewnet",
		Address:     "0.previewnet.hedera.com:50211",
		NodeAccount: ledger.AccountID{Num: 3},
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkPreviewnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a named Hedera network entry point: one public
// node address and the account id it operates under
type Network struct {
	Name        string
	Address     string
	NodeAccount ledger.AccountID
}

func (n Network) String() string {
	return n.Name
}
