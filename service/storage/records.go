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

package storage

import (
	"encoding/json"
	"fmt"
)

// DocumentVersion is the version of the entity documents written by this
// library.
const DocumentVersion = 1

// document wraps the JSON record of an entity. Entities are stored in their
// interchange shape so that stored and exported records never diverge.
type document struct {
	Version uint8  `cbor:"1,keyasint"`
	Body    []byte `cbor:"2,keyasint"`
}

func newDocument(value json.Marshaler) (document, error) {
	body, err := value.MarshalJSON()
	if err != nil {
		return document{}, fmt.Errorf("could not encode document body: %w", err)
	}
	doc := document{
		Version: DocumentVersion,
		Body:    body,
	}
	return doc, nil
}

func (d document) decode(value json.Unmarshaler) error {
	if d.Version != DocumentVersion {
		return fmt.Errorf("unsupported document version (version: %d)", d.Version)
	}
	err := value.UnmarshalJSON(d.Body)
	if err != nil {
		return fmt.Errorf("could not decode document body: %w", err)
	}
	return nil
}
