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

// Package hedera_mock plays the node side of the framed wire protocol
// from a scripted conversation, for tests that want to exercise the
// full client stack without a network
package hedera_mock

import (
	"bytes"
	"fmt"
	"net"
	"time"

	"github.com/blackoak-io/gohedera/cbor"
	"github.com/blackoak-io/gohedera/rpc"
)

// Connection mocks one node connection. It implements net.Conn for the
// client side while a background goroutine drives the node side through
// the conversation, panicking on any deviation from the script
type Connection struct {
	conn         net.Conn
	mockConn     net.Conn
	conversation []ConversationEntry
	doneChan     chan struct{}
}

// NewConnection starts the conversation and returns the client side
func NewConnection(conversation []ConversationEntry) *Connection {
	clientConn, mockConn := net.Pipe()
	c := &Connection{
		conn:         clientConn,
		mockConn:     mockConn,
		conversation: conversation,
		doneChan:     make(chan struct{}),
	}
	go c.asyncLoop()
	return c
}

// Done returns a channel that closes when the conversation has been
// fully consumed
func (c *Connection) Done() <-chan struct{} {
	return c.doneChan
}

func (c *Connection) Read(b []byte) (n int, err error) {
	return c.conn.Read(b)
}

func (c *Connection) Write(b []byte) (n int, err error) {
	return c.conn.Write(b)
}

func (c *Connection) Close() error {
	err := c.conn.Close()
	if mockErr := c.mockConn.Close(); err == nil {
		err = mockErr
	}
	return err
}

func (c *Connection) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

func (c *Connection) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *Connection) SetDeadline(t time.Time) error {
	return c.conn.SetDeadline(t)
}

func (c *Connection) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

func (c *Connection) SetWriteDeadline(t time.Time) error {
	return c.conn.SetWriteDeadline(t)
}

func (c *Connection) asyncLoop() {
	defer close(c.doneChan)
	for _, entry := range c.conversation {
		switch entry.Type {
		case EntryTypeExchange:
			if err := c.processExchange(entry); err != nil {
				panic(fmt.Sprintf("mock connection error: %s", err))
			}
		case EntryTypeClose:
			c.mockConn.Close()
			return
		default:
			panic(fmt.Sprintf(
				"unknown conversation entry type: %d",
				entry.Type,
			))
		}
	}
}

func (c *Connection) processExchange(entry ConversationEntry) error {
	frame, err := rpc.ReadFrame(c.mockConn)
	if err != nil {
		return err
	}
	if frame.Method != entry.Method {
		return fmt.Errorf(
			"received call for method %s, expected %s",
			frame.Method,
			entry.Method,
		)
	}
	if entry.MatchPayload != nil &&
		!bytes.Equal(frame.Payload, entry.MatchPayload) {
		return fmt.Errorf(
			"received unexpected payload for method %s",
			frame.Method,
		)
	}
	if entry.MatchFunc != nil {
		if err := entry.MatchFunc(frame.Payload); err != nil {
			return fmt.Errorf(
				"payload match for method %s: %w",
				frame.Method,
				err,
			)
		}
	}
	payload := entry.ResponseRaw
	if payload == nil {
		payload, err = cbor.Encode(entry.Response)
		if err != nil {
			return err
		}
	}
	return rpc.WriteFrame(c.mockConn, rpc.NewFrame(frame.Method, payload))
}
