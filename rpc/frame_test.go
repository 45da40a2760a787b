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

package rpc_test

import (
	"bytes"
	"encoding/binary"
	"net"
	"testing"

	"github.com/blackoak-io/gohedera/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte{0x84, 0x00, 0xf6, 0x00}
	err := rpc.WriteFrame(
		&buf,
		rpc.NewFrame(rpc.MethodCryptoGetBalance, payload),
	)
	require.NoError(t, err)
	// uint16 method followed by uint32 payload length, big endian
	assert.Equal(
		t,
		[]byte{0x00, 0x07, 0x00, 0x00, 0x00, 0x04},
		buf.Bytes()[:6],
	)
	frame, err := rpc.ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, rpc.MethodCryptoGetBalance, frame.Method)
	assert.Equal(t, payload, frame.Payload)
}

func TestFramePayloadTooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := rpc.WriteFrame(
		&buf,
		rpc.NewFrame(
			rpc.MethodCreateFile,
			make([]byte, rpc.FrameMaxPayloadLength+1),
		),
	)
	assert.ErrorContains(t, err, "payload too large")

	buf.Reset()
	header := rpc.FrameHeader{
		Method:        rpc.MethodCreateFile,
		PayloadLength: rpc.FrameMaxPayloadLength + 1,
	}
	require.NoError(t, binary.Write(&buf, binary.BigEndian, header))
	_, err = rpc.ReadFrame(&buf)
	assert.ErrorContains(t, err, "payload too large")
}

func TestFrameTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	header := rpc.FrameHeader{
		Method:        rpc.MethodCryptoTransfer,
		PayloadLength: 10,
	}
	require.NoError(t, binary.Write(&buf, binary.BigEndian, header))
	buf.Write([]byte{0x01, 0x02, 0x03})
	_, err := rpc.ReadFrame(&buf)
	assert.Error(t, err)
}

func TestConnCall(t *testing.T) {
	defer goleak.VerifyNone(t)
	clientSide, serverSide := net.Pipe()
	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		frame, err := rpc.ReadFrame(serverSide)
		if err != nil {
			t.Errorf("server failed to read frame: %s", err)
			return
		}
		err = rpc.WriteFrame(
			serverSide,
			rpc.NewFrame(frame.Method, []byte{0x81, 0x00}),
		)
		if err != nil {
			t.Errorf("server failed to write frame: %s", err)
		}
	}()
	conn := rpc.NewConn(clientSide)
	payload, err := conn.Call(
		rpc.MethodCryptoGetBalance,
		[]byte{0x84, 0x00, 0xf6, 0x00},
	)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81, 0x00}, payload)
	<-serverDone
	require.NoError(t, conn.Close())
	serverSide.Close()
}

func TestConnCallMethodMismatch(t *testing.T) {
	defer goleak.VerifyNone(t)
	clientSide, serverSide := net.Pipe()
	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		_, err := rpc.ReadFrame(serverSide)
		if err != nil {
			t.Errorf("server failed to read frame: %s", err)
			return
		}
		err = rpc.WriteFrame(
			serverSide,
			rpc.NewFrame(rpc.MethodGetFileInfo, []byte{0x80}),
		)
		if err != nil {
			t.Errorf("server failed to write frame: %s", err)
		}
	}()
	conn := rpc.NewConn(clientSide)
	_, err := conn.Call(rpc.MethodCryptoGetBalance, []byte{0x80})
	assert.ErrorContains(t, err, "received response for method")
	<-serverDone
	require.NoError(t, conn.Close())
	serverSide.Close()
}
