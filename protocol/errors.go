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
	"errors"
	"fmt"

	"github.com/blackoak-io/gohedera/hapi"
)

// ErrImmutable is returned when a transaction is modified after it has
// been frozen
var ErrImmutable = errors.New("transaction is no longer mutable")

// MissingFieldError is returned when a required field was never set and
// no default could be derived from the context
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// PrecheckError is returned when the node rejects a submission before
// reaching consensus
type PrecheckError struct {
	Code hapi.PrecheckCode
}

func (e PrecheckError) Error() string {
	return fmt.Sprintf("transaction failed pre-check: %s", e.Code.String())
}
