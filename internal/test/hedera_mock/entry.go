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

package hedera_mock

import (
	"github.com/blackoak-io/gohedera/rpc"
)

// EntryType is an enum of conversation entry types
type EntryType int

const (
	EntryTypeNone     EntryType = 0
	EntryTypeExchange EntryType = 1
	EntryTypeClose    EntryType = 2
)

// ConversationEntry is one scripted step: an expected inbound call and
// the response to answer it with, or a connection close
type ConversationEntry struct {
	Type   EntryType
	Method rpc.Method
	// MatchPayload asserts the exact request payload when set
	MatchPayload []byte
	// MatchFunc inspects the request payload when set
	MatchFunc func(payload []byte) error
	// Response is CBOR-encoded into the response frame
	Response any
	// ResponseRaw overrides Response with pre-encoded payload bytes
	ResponseRaw []byte
}

// ConversationEntryClose ends the conversation by closing the
// connection
var ConversationEntryClose = ConversationEntry{
	Type: EntryTypeClose,
}

// Exchange scripts one call answered with the CBOR encoding of response
func Exchange(method rpc.Method, response any) ConversationEntry {
	return ConversationEntry{
		Type:     EntryTypeExchange,
		Method:   method,
		Response: response,
	}
}
