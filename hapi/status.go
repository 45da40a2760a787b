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

package hapi

import "fmt"

// TransactionStatus is the post-consensus outcome reported in a receipt
type TransactionStatus uint8

const (
	StatusUnknown     TransactionStatus = 0
	StatusSuccess     TransactionStatus = 1
	StatusFailInvalid TransactionStatus = 2
	StatusFailFee     TransactionStatus = 3
	StatusFailBalance TransactionStatus = 4
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusUnknown:
		return "Unknown"
	case StatusSuccess:
		return "Success"
	case StatusFailInvalid:
		return "FailInvalid"
	case StatusFailFee:
		return "FailFee"
	case StatusFailBalance:
		return "FailBalance"
	default:
		return fmt.Sprintf("Invalid(%d)", uint8(s))
	}
}
