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

import (
	"fmt"
	"net"
	"sync"
)

// Conn is a synchronous method-call connection to a node. Calls block
// until the matching response frame arrives
type Conn struct {
	conn      net.Conn
	callMutex sync.Mutex
}

func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn: conn,
	}
}

// Call sends a request frame and reads the response frame for the same
// method. We use a mutex to make sure only one call can be in flight
// at a time
func (c *Conn) Call(method Method, payload []byte) ([]byte, error) {
	c.callMutex.Lock()
	defer c.callMutex.Unlock()
	if err := WriteFrame(c.conn, NewFrame(method, payload)); err != nil {
		return nil, fmt.Errorf("%s: send error: %w", method, err)
	}
	frame, err := ReadFrame(c.conn)
	if err != nil {
		return nil, fmt.Errorf("%s: receive error: %w", method, err)
	}
	if frame.Method != method {
		return nil, fmt.Errorf(
			"received response for method %s, expected %s",
			frame.Method,
			method,
		)
	}
	return frame.Payload, nil
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the address of the node end of the connection
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
