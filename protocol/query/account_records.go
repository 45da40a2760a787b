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

// AccountRecords asks for the recent transaction records involving an
// account as payer
type AccountRecords struct {
	*Query
	payload *hapi.AccountRecordsQuery
}

func NewAccountRecords(
	ctx *protocol.Context,
	account ledger.AccountID,
) *AccountRecords {
	payload := hapi.NewAccountRecordsQuery(account)
	return &AccountRecords{
		Query:   newQuery(ctx, payload),
		payload: payload,
	}
}

// Get returns the records
func (q *AccountRecords) Get() ([]hapi.TransactionRecord, error) {
	resp, err := q.get()
	if err != nil {
		return nil, err
	}
	answer, ok := resp.(*hapi.AccountRecordsAnswer)
	if !ok {
		return nil, fmt.Errorf("unexpected answer kind: %d", resp.Kind())
	}
	return answer.Records, nil
}
