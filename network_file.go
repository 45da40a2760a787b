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

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/blackoak-io/gohedera/ledger"
)

// NetworkConfig represents a network definition loaded from a JSON file
type NetworkConfig struct {
	Name  string              `json:"name"`
	Nodes []NetworkConfigNode `json:"nodes"`
}

type NetworkConfigNode struct {
	Address string `json:"address"`
	Account string `json:"account"`
}

func NewNetworkConfigFromFile(path string) (*NetworkConfig, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewNetworkConfigFromReader(dataFile)
}

func NewNetworkConfigFromReader(r io.Reader) (*NetworkConfig, error) {
	c := &NetworkConfig{}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Network converts the config into a Network entry. The client talks to a
// single node per connection, so the first listed node is used
func (c *NetworkConfig) Network() (Network, error) {
	if len(c.Nodes) == 0 {
		return NetworkInvalid, errors.New("network config contains no nodes")
	}
	node := c.Nodes[0]
	account, err := ledger.ParseAccountID(node.Account)
	if err != nil {
		return NetworkInvalid, err
	}
	return Network{
		Name:        c.Name,
		Address:     node.Address,
		NodeAccount: account,
	}, nil
}
