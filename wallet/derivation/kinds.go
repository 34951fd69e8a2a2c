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

package derivation

import (
	"fmt"

	"github.com/optakt/wallet-kit/wallet/failure"
)

// EntityKind is the CAP26 path segment selecting the kind of entity a key
// belongs to. The values are fixed by the protocol.
type EntityKind uint32

const (
	EntityKindAccount  EntityKind = 525
	EntityKindIdentity EntityKind = 618
)

func (e EntityKind) String() string {
	switch e {
	case EntityKindAccount:
		return "account"
	case EntityKindIdentity:
		return "identity"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(e))
	}
}

// KeyKind is the CAP26 path segment selecting what a key is used for.
type KeyKind uint32

const (
	KeyKindTransactionSigning    KeyKind = 1460
	KeyKindAuthenticationSigning KeyKind = 1678
	KeyKindMessageEncryption     KeyKind = 1391
)

// ParseKeyKind maps a raw path segment value to a known key kind.
func ParseKeyKind(value uint32) (KeyKind, error) {
	kind := KeyKind(value)
	switch kind {
	case KeyKindTransactionSigning, KeyKindAuthenticationSigning, KeyKindMessageEncryption:
		return kind, nil
	default:
		return 0, failure.UnknownKeyKind{
			Description: failure.NewDescription("value is not a known key kind"),
			Value:       value,
		}
	}
}

func (k KeyKind) String() string {
	switch k {
	case KeyKindTransactionSigning:
		return "transactionSigning"
	case KeyKindAuthenticationSigning:
		return "authenticationSigning"
	case KeyKindMessageEncryption:
		return "messageEncryption"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(k))
	}
}
