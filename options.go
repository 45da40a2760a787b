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
	"log/slog"
	"net"

	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/protocol"
)

// ClientOptionFunc is a type that represents functions that modify the
// Client config
type ClientOptionFunc func(*Client)

// WithAddress specifies the node address to dial
func WithAddress(address string) ClientOptionFunc {
	return func(c *Client) {
		c.address = address
	}
}

// WithConn specifies an existing connection to use instead of dialing
func WithConn(conn net.Conn) ClientOptionFunc {
	return func(c *Client) {
		c.conn = conn
	}
}

// WithNetwork specifies a predefined network, setting the node address
// and node account it publishes
func WithNetwork(network Network) ClientOptionFunc {
	return func(c *Client) {
		c.address = network.Address
		node := network.NodeAccount
		c.node = &node
	}
}

// WithNode specifies the node account transactions and queries are
// addressed to
func WithNode(node ledger.AccountID) ClientOptionFunc {
	return func(c *Client) {
		c.node = &node
	}
}

// WithOperator specifies the account paying for submissions and the key
// signing them
func WithOperator(account ledger.AccountID, key keys.SecretKey) ClientOptionFunc {
	return func(c *Client) {
		c.operator = &protocol.Operator{
			Account: account,
			Key:     key,
		}
	}
}

// WithLogger specifies a custom logger
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock specifies a custom clock
func WithClock(clock protocol.Clock) ClientOptionFunc {
	return func(c *Client) {
		c.clock = clock
	}
}
