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

package main

import (
	"fmt"
	"os"

	"github.com/blackoak-io/gohedera/cmd/common"
	"github.com/blackoak-io/gohedera/keys"
)

func runGenerateKey(_ *common.GlobalFlags) {
	key, err := keys.GenerateSecretKey()
	if err != nil {
		fmt.Printf("ERROR: failure generating key: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("secret = %s\n", key)
	fmt.Printf("public = %s\n", key.Public())
}
