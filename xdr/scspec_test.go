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

package xdr_test

import (
	"testing"

	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScSpecEntryRoundTrip(t *testing.T) {
	testDefs := []struct {
		name  string
		entry xdr.ScSpecEntry
	}{
		{
			name: "function",
			entry: xdr.ScSpecEntry{
				Kind: xdr.ScSpecEntryFunctionV0,
				FunctionV0: &xdr.ScSpecFunctionV0{
					Name: "swap",
					Inputs: []xdr.ScSpecFunctionInputV0{
						{
							Name: "from",
							Type: xdr.SpecType(xdr.ScSpecTypeAddress),
						},
						{
							Name: "amounts",
							Type: xdr.SpecTypeVec(
								xdr.SpecType(xdr.ScSpecTypeI128),
							),
						},
					},
					Outputs: []xdr.ScSpecTypeDef{
						xdr.SpecTypeResult(
							xdr.SpecType(xdr.ScSpecTypeU64),
							xdr.SpecType(xdr.ScSpecTypeError),
						),
					},
				},
			},
		},
		{
			name: "struct",
			entry: xdr.ScSpecEntry{
				Kind: xdr.ScSpecEntryUdtStructV0,
				UdtStructV0: &xdr.ScSpecUdtStructV0{
					Name: "Price",
					Fields: []xdr.ScSpecUdtStructFieldV0{
						{
							Name: "amount",
							Type: xdr.SpecType(xdr.ScSpecTypeU64),
						},
						{
							Name: "decimals",
							Type: xdr.SpecTypeBytesN(4),
						},
					},
				},
			},
		},
		{
			name: "union",
			entry: xdr.ScSpecEntry{
				Kind: xdr.ScSpecEntryUdtUnionV0,
				UdtUnionV0: &xdr.ScSpecUdtUnionV0{
					Name: "OfferState",
					Cases: []xdr.ScSpecUdtUnionCaseV0{
						{
							Kind: xdr.ScSpecUdtUnionCaseVoidV0Kind,
							VoidCase: &xdr.ScSpecUdtUnionCaseVoidV0{
								Name: "Open",
							},
						},
						{
							Kind: xdr.ScSpecUdtUnionCaseTupleV0Kind,
							TupleCase: &xdr.ScSpecUdtUnionCaseTupleV0{
								Name: "Filled",
								Type: []xdr.ScSpecTypeDef{
									xdr.SpecType(xdr.ScSpecTypeU64),
									xdr.SpecTypeUdt("Price"),
								},
							},
						},
					},
				},
			},
		},
		{
			name: "enum",
			entry: xdr.ScSpecEntry{
				Kind: xdr.ScSpecEntryUdtEnumV0,
				UdtEnumV0: &xdr.ScSpecUdtEnumV0{
					Name: "Color",
					Cases: []xdr.ScSpecUdtEnumCaseV0{
						{Name: "Red", Value: 0},
						{Name: "Blue", Value: 2},
					},
				},
			},
		},
		{
			name: "error enum",
			entry: xdr.ScSpecEntry{
				Kind: xdr.ScSpecEntryUdtErrorEnumV0,
				UdtErrorEnumV0: &xdr.ScSpecUdtErrorEnumV0{
					Name: "ContractError",
					Cases: []xdr.ScSpecUdtEnumCaseV0{
						{Name: "NotAuthorized", Value: 1},
					},
				},
			},
		},
	}
	for _, testDef := range testDefs {
		data, err := xdr.Encode(&testDef.entry)
		require.NoError(t, err, testDef.name)
		var decoded xdr.ScSpecEntry
		require.NoError(t, xdr.Decode(data, &decoded), testDef.name)
		assert.Equal(t, testDef.entry, decoded, testDef.name)
	}
}

func TestScSpecEntryRejectsUnknownKind(t *testing.T) {
	entry := xdr.ScSpecEntry{
		Kind: xdr.ScSpecEntryFunctionV0,
		FunctionV0: &xdr.ScSpecFunctionV0{
			Name: "noop",
		},
	}
	data, err := xdr.Encode(&entry)
	require.NoError(t, err)
	// corrupt the kind discriminant
	data[3] = 99
	var decoded xdr.ScSpecEntry
	assert.Error(t, xdr.Decode(data, &decoded))
}

func TestScSpecTypeDefNestedRoundTrip(t *testing.T) {
	def := xdr.SpecTypeMap(
		xdr.SpecType(xdr.ScSpecTypeSymbol),
		xdr.SpecTypeOption(
			xdr.SpecTypeTuple(
				xdr.SpecType(xdr.ScSpecTypeU32),
				xdr.SpecTypeVec(xdr.SpecType(xdr.ScSpecTypeBytes)),
			),
		),
	)
	data, err := xdr.Encode(&def)
	require.NoError(t, err)
	var decoded xdr.ScSpecTypeDef
	require.NoError(t, xdr.Decode(data, &decoded))
	assert.Equal(t, def, decoded)
}
