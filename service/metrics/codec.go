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

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/wallet-kit/wallet/factor"
)

const namespaceWallet = "wallet"

// Compressor is a codec that exposes its encoding and compression steps
// separately.
type Compressor interface {
	Encode(value interface{}) ([]byte, error)
	Compress(data []byte) ([]byte, error)
	Unmarshal(compressed []byte, value interface{}) error
}

// Codec wraps a compressor and records the encoded and compressed sizes of
// the values it marshals.
type Codec struct {
	Compressor
	original   *prometheus.CounterVec
	compressed *prometheus.CounterVec
}

func NewCodec(reg prometheus.Registerer, codec Compressor) *Codec {
	factory := promauto.With(reg)

	originalOpts := prometheus.CounterOpts{
		Name:      "encoded_bytes",
		Namespace: namespaceWallet,
		Help:      "number of bytes encoded before compression",
	}
	compressedOpts := prometheus.CounterOpts{
		Name:      "compressed_bytes",
		Namespace: namespaceWallet,
		Help:      "number of bytes written after compression",
	}

	c := Codec{
		Compressor: codec,
		original:   factory.NewCounterVec(originalOpts, []string{"category"}),
		compressed: factory.NewCounterVec(compressedOpts, []string{"category"}),
	}

	return &c
}

func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	data, err := c.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("could not encode value: %w", err)
	}
	compressed, err := c.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("could not compress data: %w", err)
	}
	name := "record"
	switch value.(type) {
	case uint32, *uint32:
		name = "index"
	case factor.Source, *factor.Source:
		name = "source"
	}
	c.original.WithLabelValues(name).Add(float64(len(data)))
	c.compressed.WithLabelValues(name).Add(float64(len(compressed)))
	return compressed, nil
}
