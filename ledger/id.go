// Copyright 2024 Black Oak Software
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

package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackoak-io/gohedera/cbor"
)

// ParseError describes malformed textual input for an id type
type ParseError struct {
	Input    string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"failed to parse %q: expected %s",
		e.Input,
		e.Expected,
	)
}

const idExpectedFormat = "{shard}:{realm}:{num}"

// AccountID addresses an account on the network
type AccountID struct {
	cbor.StructAsArray
	Shard int64
	Realm int64
	Num   int64
}

func (id AccountID) String() string {
	return formatTriple(id.Shard, id.Realm, id.Num)
}

// ParseAccountID parses the "shard:realm:num" form. A '.' separator is
// also accepted
func ParseAccountID(s string) (AccountID, error) {
	shard, realm, num, err := parseTriple(s)
	if err != nil {
		return AccountID{}, err
	}
	return AccountID{Shard: shard, Realm: realm, Num: num}, nil
}

// FileID addresses a stored file on the network
type FileID struct {
	cbor.StructAsArray
	Shard int64
	Realm int64
	Num   int64
}

func (id FileID) String() string {
	return formatTriple(id.Shard, id.Realm, id.Num)
}

// ParseFileID parses the "shard:realm:num" form. A '.' separator is
// also accepted
func ParseFileID(s string) (FileID, error) {
	shard, realm, num, err := parseTriple(s)
	if err != nil {
		return FileID{}, err
	}
	return FileID{Shard: shard, Realm: realm, Num: num}, nil
}

// ContractID addresses a smart contract instance on the network
type ContractID struct {
	cbor.StructAsArray
	Shard int64
	Realm int64
	Num   int64
}

func (id ContractID) String() string {
	return formatTriple(id.Shard, id.Realm, id.Num)
}

// ParseContractID parses the "shard:realm:num" form. A '.' separator is
// also accepted
func ParseContractID(s string) (ContractID, error) {
	shard, realm, num, err := parseTriple(s)
	if err != nil {
		return ContractID{}, err
	}
	return ContractID{Shard: shard, Realm: realm, Num: num}, nil
}

func formatTriple(shard int64, realm int64, num int64) string {
	return fmt.Sprintf("%d:%d:%d", shard, realm, num)
}

func parseTriple(s string) (int64, int64, int64, error) {
	parts := strings.Split(strings.ReplaceAll(s, ".", ":"), ":")
	if len(parts) != 3 {
		return 0, 0, 0, &ParseError{Input: s, Expected: idExpectedFormat}
	}
	var nums [3]int64
	for i, part := range parts {
		num, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, 0, 0, &ParseError{Input: s, Expected: idExpectedFormat}
		}
		nums[i] = num
	}
	return nums[0], nums[1], nums[2], nil
}
