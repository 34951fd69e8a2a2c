// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package wallet

import (
	"github.com/optakt/wallet-kit/wallet/factor"
)

// CreateAccountRequest asks for a new account controlled by the given factor
// source. Network is the logical name of the network. Without an appearance,
// the account gets the appearance matching its index.
type CreateAccountRequest struct {
	SourceID     factor.SourceID
	Network      string
	DisplayName  string
	AppearanceID *uint8
}

// CreatePersonaRequest asks for a new persona controlled by the given factor
// source.
type CreatePersonaRequest struct {
	SourceID    factor.SourceID
	Network     string
	DisplayName string
}
