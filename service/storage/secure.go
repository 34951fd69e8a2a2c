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
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"
)

// SecureStorage is a key/value store for opaque blobs, such as encrypted
// mnemonics, on top of the wallet database.
type SecureStorage struct {
	db  *badger.DB
	lib *Library
}

func NewSecureStorage(db *badger.DB, lib *Library) *SecureStorage {
	s := SecureStorage{
		db:  db,
		lib: lib,
	}

	return &s
}

// Load returns the data stored under the key, or nil if there is none.
func (s *SecureStorage) Load(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(s.lib.retrieve(EncodeKey(PrefixSecure, []byte(key)), &data))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load secure data: %w", err)
	}
	return data, nil
}

// Save stores the data under the key, replacing any previous data.
func (s *SecureStorage) Save(key string, data []byte) error {
	err := s.db.Update(s.lib.save(EncodeKey(PrefixSecure, []byte(key)), data))
	if err != nil {
		return fmt.Errorf("could not save secure data: %w", err)
	}
	return nil
}
