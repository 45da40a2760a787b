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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Transactions and file contents must fit in a single frame
const FrameMaxPayloadLength = 1 << 20

// FrameHeader leads every frame in both directions. A response frame
// carries the method of the call it answers
type FrameHeader struct {
	Method        Method
	PayloadLength uint32
}

// Frame is a single method call or response on the wire: a fixed
// header followed by a CBOR payload
type Frame struct {
	FrameHeader
	Payload []byte
}

func NewFrame(method Method, payload []byte) *Frame {
	return &Frame{
		FrameHeader: FrameHeader{
			Method:        method,
			PayloadLength: uint32(len(payload)), //nolint:gosec
		},
		Payload: payload,
	}
}

// WriteFrame writes a single frame
func WriteFrame(w io.Writer, frame *Frame) error {
	if len(frame.Payload) > FrameMaxPayloadLength {
		return fmt.Errorf(
			"frame payload too large: %d > %d",
			len(frame.Payload),
			FrameMaxPayloadLength,
		)
	}
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.BigEndian, frame.FrameHeader); err != nil {
		return err
	}
	buf.Write(frame.Payload)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	return nil
}

// ReadFrame reads a single frame
func ReadFrame(r io.Reader) (*Frame, error) {
	header := FrameHeader{}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, err
	}
	if header.PayloadLength > FrameMaxPayloadLength {
		return nil, fmt.Errorf(
			"frame payload too large: %d > %d",
			header.PayloadLength,
			FrameMaxPayloadLength,
		)
	}
	frame := &Frame{
		FrameHeader: header,
		Payload:     make([]byte, header.PayloadLength),
	}
	// We use ReadFull because it guarantees to read the expected number
	// of bytes or return an error
	if _, err := io.ReadFull(r, frame.Payload); err != nil {
		return nil, err
	}
	return frame, nil
}
