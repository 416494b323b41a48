// Copyright 2026 Blink Labs Software
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

package txnbuild

import (
	"fmt"

	"github.com/blinklabs-io/gostellar/xdr"
)

// SorobanDataBuilder assembles the resource data attached to a
// contract-invoking transaction, typically starting from simulation
// results
type SorobanDataBuilder struct {
	data xdr.SorobanTransactionData
}

// NewSorobanDataBuilder returns an empty builder
func NewSorobanDataBuilder() *SorobanDataBuilder {
	return &SorobanDataBuilder{}
}

// FromData seeds the builder from existing resource data
func (b *SorobanDataBuilder) FromData(
	data xdr.SorobanTransactionData,
) *SorobanDataBuilder {
	b.data = data
	return b
}

// FromBase64 seeds the builder from base64 XDR resource data, typically
// taken straight from a simulation response
func (b *SorobanDataBuilder) FromBase64(dataB64 string) error {
	var data xdr.SorobanTransactionData
	if err := xdr.DecodeBase64(dataB64, &data); err != nil {
		return fmt.Errorf("decoding resource data: %w", err)
	}
	b.data = data
	return nil
}

// SetReadOnly replaces the read-only footprint
func (b *SorobanDataBuilder) SetReadOnly(
	keys []xdr.LedgerKey,
) *SorobanDataBuilder {
	b.data.Resources.Footprint.ReadOnly = keys
	return b
}

// SetReadWrite replaces the read-write footprint
func (b *SorobanDataBuilder) SetReadWrite(
	keys []xdr.LedgerKey,
) *SorobanDataBuilder {
	b.data.Resources.Footprint.ReadWrite = keys
	return b
}

// SetResources sets the compute and I/O bounds
func (b *SorobanDataBuilder) SetResources(
	instructions uint32,
	readBytes uint32,
	writeBytes uint32,
) *SorobanDataBuilder {
	b.data.Resources.Instructions = instructions
	b.data.Resources.ReadBytes = readBytes
	b.data.Resources.WriteBytes = writeBytes
	return b
}

// SetResourceFee sets the fee covering the declared resources
func (b *SorobanDataBuilder) SetResourceFee(fee int64) *SorobanDataBuilder {
	b.data.ResourceFee = fee
	return b
}

// Build returns a copy of the assembled resource data
func (b *SorobanDataBuilder) Build() xdr.SorobanTransactionData {
	return b.data
}
