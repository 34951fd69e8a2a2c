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

	"github.com/optakt/wallet-kit/wallet/address"
)

// Rule is the general policy of an account towards deposits made by third
// parties.
type Rule string

const (
	AcceptAll   Rule = "acceptAll"
	AcceptKnown Rule = "acceptKnown"
	DenyAll     Rule = "denyAll"
)

func ParseRule(s string) (Rule, error) {
	rule := Rule(s)
	switch rule {
	case AcceptAll, AcceptKnown, DenyAll:
		return rule, nil
	default:
		return "", fmt.Errorf("unknown deposit rule (rule: %s)", s)
	}
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("could not decode deposit rule: %w", err)
	}
	rule, err := ParseRule(s)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// ExceptionRule overrides the general rule for a specific resource.
type ExceptionRule string

const (
	Allow ExceptionRule = "allow"
	Deny  ExceptionRule = "deny"
)

func ParseExceptionRule(s string) (ExceptionRule, error) {
	rule := ExceptionRule(s)
	switch rule {
	case Allow, Deny:
		return rule, nil
	default:
		return "", fmt.Errorf("unknown exception rule (rule: %s)", s)
	}
}

func (e *ExceptionRule) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("could not decode exception rule: %w", err)
	}
	rule, err := ParseExceptionRule(s)
	if err != nil {
		return err
	}
	*e = rule
	return nil
}

// AssetException is a per-resource override of the deposit rule.
type AssetException struct {
	Address       address.ResourceAddress `json:"address"`
	ExceptionRule ExceptionRule           `json:"exceptionRule"`
}
