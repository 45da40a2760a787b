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

package query

import (
	"fmt"

	"github.com/blackoak-io/gohedera/hapi"
	"github.com/blackoak-io/gohedera/ledger"
	"github.com/blackoak-io/gohedera/protocol"
)

// AccountBalance asks for the tinybar balance of an account
type AccountBalance struct {
	*Query
	payload *hapi.AccountBalanceQuery
}

func NewAccountBalance(
	ctx *protocol.Context,
	account ledger.AccountID,
) *AccountBalance {
	payload := hapi.NewAccountBalanceQuery(account)
	return &AccountBalance{
		Query:   newQuery(ctx, payload),
		payload: payload,
	}
}

// Get returns the balance in tinybars
func (q *AccountBalance) Get() (uint64, error) {
	resp, err := q.get()
	if err != nil {
		return 0, err
	}
	answer, ok := resp.(*hapi.AccountBalanceAnswer)
	if !ok {
		return 0, fmt.Errorf("unexpected answer kind: %d", resp.Kind())
	}
	return answer.Balance, nil
}
