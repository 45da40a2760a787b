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

package protocol

import (
	"log/slog"

	"github.com/blackoak-io/gohedera/keys"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/rpc"
)

// Context carries everything the engines need to build and submit
// work: the node services, the operator paying for submissions, the
// default node, and the clock driving retries
type Context struct {
	logger     *slog.Logger
	clock      Clock
	dispatcher *rpc.Dispatcher
	operator   *Operator
	node       *ledger.AccountID
}

// ContextOptionFunc is a function used to set a Context option
type ContextOptionFunc func(*Context)

// NewContext returns a Context using the provided dispatcher and options
func NewContext(
	dispatcher *rpc.Dispatcher,
	options ...ContextOptionFunc,
) *Context {
	c := &Context{
		dispatcher: dispatcher,
	}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.clock == nil {
		c.clock = SystemClock()
	}
	return c
}

// WithLogger specifies a custom logger
func WithLogger(logger *slog.Logger) ContextOptionFunc {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithClock specifies a custom clock
func WithClock(clock Clock) ContextOptionFunc {
	return func(c *Context) {
		c.clock = clock
	}
}

// WithOperator specifies the account paying for submissions and the key
// signing them
func WithOperator(account ledger.AccountID, key keys.SecretKey) ContextOptionFunc {
	return func(c *Context) {
		c.operator = &Operator{
			Account: account,
			Key:     key,
		}
	}
}

// WithNode specifies the default node account submissions are addressed to
func WithNode(node ledger.AccountID) ContextOptionFunc {
	return func(c *Context) {
		c.node = &node
	}
}

// Logger returns the context logger
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Clock returns the context clock
func (c *Context) Clock() Clock {
	return c.clock
}

// Dispatcher returns the node service dispatcher
func (c *Context) Dispatcher() *rpc.Dispatcher {
	return c.dispatcher
}

// Operator returns the configured operator, or nil when none was set
func (c *Context) Operator() *Operator {
	return c.operator
}

// Node returns the configured default node, or nil when none was set
func (c *Context) Node() *ledger.AccountID {
	return c.node
}
