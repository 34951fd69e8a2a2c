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

package factor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/optakt/wallet-kit/wallet/failure"
	"github.com/optakt/wallet-kit/wallet/hd"
	"github.com/optakt/wallet-kit/wallet/keys"
)

// SourceKind is the kind of origin of key material.
type SourceKind string

const (
	SourceKindDevice                 SourceKind = "device"
	SourceKindLedgerHQHardwareWallet SourceKind = "ledgerHQHardwareWallet"
	SourceKindOffDeviceMnemonic      SourceKind = "offDeviceMnemonic"
	SourceKindTrustedContact         SourceKind = "trustedContact"
	SourceKindSecurityQuestions      SourceKind = "securityQuestions"
)

func ParseSourceKind(s string) (SourceKind, error) {
	kind := SourceKind(s)
	switch kind {
	case SourceKindDevice,
		SourceKindLedgerHQHardwareWallet,
		SourceKindOffDeviceMnemonic,
		SourceKindTrustedContact,
		SourceKindSecurityQuestions:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown factor source kind (%s)", s)
	}
}

// SourceID identifies a factor source by its kind and the hash of the public
// key derived at the identification path. Two sources with the same seed and
// kind always have the same ID.
type SourceID struct {
	Kind SourceKind
	Body keys.Hash
}

// SourceIDFromSeed computes the ID of a source of the given kind holding the
// seed.
func SourceIDFromSeed(kind SourceKind, seed []byte) (SourceID, error) {
	body, err := hd.SourceIDBody(seed)
	if err != nil {
		return SourceID{}, fmt.Errorf("could not derive source identification key: %w", err)
	}
	return SourceID{Kind: kind, Body: body}, nil
}

// ParseSourceID parses the "kind:hex" text form of an ID.
func ParseSourceID(s string) (SourceID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return SourceID{}, failure.InvalidHex{
			Description: failure.NewDescription("factor source id must be of form kind:hash"),
			Input:       s,
		}
	}
	kind, err := ParseSourceKind(parts[0])
	if err != nil {
		return SourceID{}, err
	}
	body, err := keys.ParseHash(parts[1])
	if err != nil {
		return SourceID{}, err
	}
	return SourceID{Kind: kind, Body: body}, nil
}

func (s SourceID) String() string {
	return fmt.Sprintf("%s:%s", s.Kind, s.Body.Hex())
}

type sourceIDJSON struct {
	Kind SourceKind `json:"kind"`
	Body string     `json:"body"`
}

func (s SourceID) MarshalJSON() ([]byte, error) {
	return json.Marshal(sourceIDJSON{
		Kind: s.Kind,
		Body: s.Body.Hex(),
	})
}

func (s *SourceID) UnmarshalJSON(data []byte) error {
	var raw sourceIDJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("could not decode factor source id: %w", err)
	}
	kind, err := ParseSourceKind(string(raw.Kind))
	if err != nil {
		return err
	}
	body, err := keys.ParseHash(raw.Body)
	if err != nil {
		return fmt.Errorf("could not parse factor source id body: %w", err)
	}
	*s = SourceID{Kind: kind, Body: body}
	return nil
}
