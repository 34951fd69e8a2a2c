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

package deposit

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/optakt/wallet-kit/wallet/address"
)

// ThirdPartyDeposits is the on-ledger deposit policy of an account. Asset
// exceptions are unique per resource and depositors are unique per value.
// Both are always kept sorted by address.
//
// Deciding whether a given deposit is accepted is left to the ledger.
type ThirdPartyDeposits struct {
	rule       Rule
	exceptions []AssetException
	depositors []Depositor
}

// New returns a policy with the given rule and no exceptions or depositors.
func New(rule Rule) *ThirdPartyDeposits {
	t := ThirdPartyDeposits{
		rule:       rule,
		exceptions: []AssetException{},
		depositors: []Depositor{},
	}
	return &t
}

// Default returns the policy of a newly created account.
func Default() *ThirdPartyDeposits {
	return New(AcceptAll)
}

func (t *ThirdPartyDeposits) Rule() Rule {
	return t.rule
}

// SetRule replaces the general deposit rule. Unknown rules are rejected.
func (t *ThirdPartyDeposits) SetRule(rule Rule) error {
	_, err := ParseRule(string(rule))
	if err != nil {
		return err
	}
	t.rule = rule
	return nil
}

// UpsertAssetException sets the exception rule for a resource, replacing any
// existing exception for the same resource. The resource must be set and the
// rule must be known.
func (t *ThirdPartyDeposits) UpsertAssetException(resource address.ResourceAddress, rule ExceptionRule) error {
	if resource.IsZero() {
		return fmt.Errorf("missing asset exception resource")
	}
	_, err := ParseExceptionRule(string(rule))
	if err != nil {
		return err
	}

	for i, exception := range t.exceptions {
		if exception.Address == resource {
			t.exceptions[i].ExceptionRule = rule
			return nil
		}
	}

	t.exceptions = append(t.exceptions, AssetException{Address: resource, ExceptionRule: rule})
	sort.Slice(t.exceptions, func(i, j int) bool {
		return t.exceptions[i].Address.String() < t.exceptions[j].Address.String()
	})

	return nil
}

// RemoveAssetException removes the exception for the resource and reports
// whether one existed.
func (t *ThirdPartyDeposits) RemoveAssetException(resource address.ResourceAddress) bool {
	for i, exception := range t.exceptions {
		if exception.Address == resource {
			t.exceptions = append(t.exceptions[:i], t.exceptions[i+1:]...)
			return true
		}
	}
	return false
}

// AllowDepositor adds the depositor to the allow list. Adding a depositor
// twice is a no-op. Empty depositors are rejected.
func (t *ThirdPartyDeposits) AllowDepositor(depositor Depositor) error {
	err := depositor.validate()
	if err != nil {
		return err
	}

	key := depositor.key()
	for _, existing := range t.depositors {
		if existing.key() == key {
			return nil
		}
	}

	t.depositors = append(t.depositors, depositor)
	sort.Slice(t.depositors, func(i, j int) bool {
		return t.depositors[i].String() < t.depositors[j].String()
	})

	return nil
}

// RemoveDepositor removes the depositor and reports whether it was present.
func (t *ThirdPartyDeposits) RemoveDepositor(depositor Depositor) bool {
	key := depositor.key()
	for i, existing := range t.depositors {
		if existing.key() == key {
			t.depositors = append(t.depositors[:i], t.depositors[i+1:]...)
			return true
		}
	}
	return false
}

func (t *ThirdPartyDeposits) AssetExceptions() []AssetException {
	exceptions := make([]AssetException, len(t.exceptions))
	copy(exceptions, t.exceptions)
	return exceptions
}

func (t *ThirdPartyDeposits) Depositors() []Depositor {
	depositors := make([]Depositor, len(t.depositors))
	copy(depositors, t.depositors)
	return depositors
}

// Clone returns a deep copy of the policy. The clone of a nil policy is nil.
func (t *ThirdPartyDeposits) Clone() *ThirdPartyDeposits {
	if t == nil {
		return nil
	}
	c := ThirdPartyDeposits{
		rule:       t.rule,
		exceptions: t.AssetExceptions(),
		depositors: t.Depositors(),
	}
	return &c
}

type thirdPartyRecord struct {
	DepositRule         Rule             `json:"depositRule"`
	AssetsExceptionList []AssetException `json:"assetsExceptionList"`
	DepositorsAllowList []Depositor      `json:"depositorsAllowList"`
}

func (t *ThirdPartyDeposits) MarshalJSON() ([]byte, error) {
	record := thirdPartyRecord{
		DepositRule:         t.rule,
		AssetsExceptionList: t.AssetExceptions(),
		DepositorsAllowList: t.Depositors(),
	}
	return json.Marshal(record)
}

// UnmarshalJSON decodes a policy. Duplicate entries are merged and the sets
// are sorted, so any valid record decodes to a canonical policy.
func (t *ThirdPartyDeposits) UnmarshalJSON(data []byte) error {
	var record thirdPartyRecord
	err := json.Unmarshal(data, &record)
	if err != nil {
		return err
	}
	if record.DepositRule == "" {
		return fmt.Errorf("missing deposit rule")
	}

	decoded := New(record.DepositRule)
	for _, exception := range record.AssetsExceptionList {
		err = decoded.UpsertAssetException(exception.Address, exception.ExceptionRule)
		if err != nil {
			return fmt.Errorf("invalid asset exception: %w", err)
		}
	}
	for _, depositor := range record.DepositorsAllowList {
		err = decoded.AllowDepositor(depositor)
		if err != nil {
			return fmt.Errorf("invalid depositor: %w", err)
		}
	}
	*t = *decoded

	return nil
}
