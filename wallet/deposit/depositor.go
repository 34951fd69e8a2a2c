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
	"strings"

	"github.com/optakt/wallet-kit/wallet/address"
)

// NonFungibleGlobalID identifies a single non-fungible token: the address of
// its resource and its local ID within that resource.
type NonFungibleGlobalID struct {
	Resource address.ResourceAddress
	LocalID  string
}

// ParseNonFungibleGlobalID decodes a global ID of the form
// `<resource address>:<local id>`. The local ID must be wrapped in one of the
// delimiter pairs `<>`, `##`, `[]` or `{}`.
func ParseNonFungibleGlobalID(s string) (NonFungibleGlobalID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return NonFungibleGlobalID{}, fmt.Errorf("missing local id in non-fungible global id (id: %s)", s)
	}
	resource, err := address.ParseResourceAddress(parts[0])
	if err != nil {
		return NonFungibleGlobalID{}, fmt.Errorf("could not parse resource of non-fungible global id: %w", err)
	}
	if resource.IsFungible() {
		return NonFungibleGlobalID{}, fmt.Errorf("resource of non-fungible global id is fungible (id: %s)", s)
	}
	err = checkLocalID(parts[1])
	if err != nil {
		return NonFungibleGlobalID{}, err
	}

	id := NonFungibleGlobalID{
		Resource: resource,
		LocalID:  parts[1],
	}

	return id, nil
}

func checkLocalID(local string) error {
	if len(local) < 3 {
		return fmt.Errorf("local id too short (local_id: %s)", local)
	}
	first, last := local[0], local[len(local)-1]
	switch {
	case first == '<' && last == '>':
	case first == '#' && last == '#':
	case first == '[' && last == ']':
	case first == '{' && last == '}':
	default:
		return fmt.Errorf("invalid local id delimiters (local_id: %s)", local)
	}
	return nil
}

func (n NonFungibleGlobalID) String() string {
	return n.Resource.String() + ":" + n.LocalID
}

// Depositor is an entry of the depositors allow list. It holds either a
// resource address or a non-fungible global ID.
type Depositor struct {
	resource    *address.ResourceAddress
	nonFungible *NonFungibleGlobalID
}

const (
	discriminatorResource    = "resourceAddress"
	discriminatorNonFungible = "nonFungibleGlobalID"
)

func DepositorFromResource(resource address.ResourceAddress) Depositor {
	return Depositor{resource: &resource}
}

func DepositorFromNonFungible(id NonFungibleGlobalID) Depositor {
	return Depositor{nonFungible: &id}
}

func (d Depositor) Resource() (address.ResourceAddress, bool) {
	if d.resource == nil {
		return address.ResourceAddress{}, false
	}
	return *d.resource, true
}

func (d Depositor) NonFungible() (NonFungibleGlobalID, bool) {
	if d.nonFungible == nil {
		return NonFungibleGlobalID{}, false
	}
	return *d.nonFungible, true
}

func (d Depositor) discriminator() string {
	if d.nonFungible != nil {
		return discriminatorNonFungible
	}
	return discriminatorResource
}

// String returns the value of the depositor, which is also its key in the
// allow list.
func (d Depositor) String() string {
	switch {
	case d.resource != nil:
		return d.resource.String()
	case d.nonFungible != nil:
		return d.nonFungible.String()
	default:
		return ""
	}
}

// validate checks that the depositor holds a value that can be encoded.
func (d Depositor) validate() error {
	switch {
	case d.resource != nil && d.nonFungible != nil:
		return fmt.Errorf("depositor holds both a resource and a non-fungible")
	case d.resource != nil:
		if d.resource.IsZero() {
			return fmt.Errorf("missing depositor resource")
		}
	case d.nonFungible != nil:
		if d.nonFungible.Resource.IsZero() {
			return fmt.Errorf("missing depositor non-fungible resource")
		}
		if d.nonFungible.Resource.IsFungible() {
			return fmt.Errorf("depositor non-fungible resource is fungible (resource: %s)", d.nonFungible.Resource)
		}
		err := checkLocalID(d.nonFungible.LocalID)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("missing depositor value")
	}
	return nil
}

// key uniquely identifies the depositor in the allow list.
func (d Depositor) key() string {
	return d.discriminator() + "/" + d.String()
}

type depositorRecord struct {
	Discriminator string `json:"discriminator"`
	Value         string `json:"value"`
}

func (d Depositor) MarshalJSON() ([]byte, error) {
	if d.resource == nil && d.nonFungible == nil {
		return nil, fmt.Errorf("can not encode empty depositor")
	}
	record := depositorRecord{
		Discriminator: d.discriminator(),
		Value:         d.String(),
	}
	return json.Marshal(record)
}

func (d *Depositor) UnmarshalJSON(data []byte) error {
	var record depositorRecord
	err := json.Unmarshal(data, &record)
	if err != nil {
		return fmt.Errorf("could not decode depositor: %w", err)
	}

	switch record.Discriminator {
	case discriminatorResource:
		resource, err := address.ParseResourceAddress(record.Value)
		if err != nil {
			return fmt.Errorf("could not decode depositor resource: %w", err)
		}
		*d = DepositorFromResource(resource)
	case discriminatorNonFungible:
		id, err := ParseNonFungibleGlobalID(record.Value)
		if err != nil {
			return fmt.Errorf("could not decode depositor non-fungible: %w", err)
		}
		*d = DepositorFromNonFungible(id)
	default:
		return fmt.Errorf("unknown depositor discriminator (discriminator: %s)", record.Discriminator)
	}

	return nil
}
