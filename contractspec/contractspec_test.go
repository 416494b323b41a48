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

package contractspec_test

import (
	"math/big"
	"testing"

	"github.com/blinklabs-io/gostellar/contractspec"
	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() *contractspec.Spec {
	return contractspec.New([]xdr.ScSpecEntry{
		{
			Kind: xdr.ScSpecEntryFunctionV0,
			FunctionV0: &xdr.ScSpecFunctionV0{
				Name: "hello",
				Inputs: []xdr.ScSpecFunctionInputV0{
					{Name: "to", Type: xdr.SpecType(xdr.ScSpecTypeString)},
				},
				Outputs: []xdr.ScSpecTypeDef{
					xdr.SpecType(xdr.ScSpecTypeString),
				},
			},
		},
		{
			Kind: xdr.ScSpecEntryFunctionV0,
			FunctionV0: &xdr.ScSpecFunctionV0{
				Name: "transfer",
				Inputs: []xdr.ScSpecFunctionInputV0{
					{Name: "from", Type: xdr.SpecType(xdr.ScSpecTypeAddress)},
					{Name: "to", Type: xdr.SpecType(xdr.ScSpecTypeAddress)},
					{Name: "amount", Type: xdr.SpecType(xdr.ScSpecTypeI128)},
				},
			},
		},
		{
			Kind: xdr.ScSpecEntryUdtStructV0,
			UdtStructV0: &xdr.ScSpecUdtStructV0{
				Name: "Price",
				Fields: []xdr.ScSpecUdtStructFieldV0{
					{Name: "amount", Type: xdr.SpecType(xdr.ScSpecTypeU64)},
					{Name: "token", Type: xdr.SpecType(xdr.ScSpecTypeSymbol)},
				},
			},
		},
		{
			Kind: xdr.ScSpecEntryUdtStructV0,
			UdtStructV0: &xdr.ScSpecUdtStructV0{
				Name: "Point",
				Fields: []xdr.ScSpecUdtStructFieldV0{
					{Name: "0", Type: xdr.SpecType(xdr.ScSpecTypeU32)},
					{Name: "1", Type: xdr.SpecType(xdr.ScSpecTypeU32)},
				},
			},
		},
		{
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
							},
						},
					},
				},
			},
		},
		{
			Kind: xdr.ScSpecEntryUdtEnumV0,
			UdtEnumV0: &xdr.ScSpecUdtEnumV0{
				Name: "Color",
				Cases: []xdr.ScSpecUdtEnumCaseV0{
					{Name: "Red", Value: 0},
					{Name: "Green", Value: 1},
					{Name: "Blue", Value: 2},
				},
			},
		},
	})
}

func TestFuncArgsToSCVals(t *testing.T) {
	spec := testSpec()
	vals, err := spec.FuncArgsToSCVals("hello", map[string]any{"to": "Alice"})
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, xdr.ScString("Alice"), vals[0])
}

func TestFuncArgsToSCValsOrdering(t *testing.T) {
	spec := testSpec()
	from := test.Keypair(0x01).Address()
	to := test.Keypair(0x02).Address()
	vals, err := spec.FuncArgsToSCVals("transfer", map[string]any{
		"amount": 1000,
		"to":     to,
		"from":   from,
	})
	require.NoError(t, err)
	require.Len(t, vals, 3)
	// arguments come back in declaration order, not map order
	require.Equal(t, xdr.ScValTypeAddress, vals[0].Type)
	str, err := vals[0].Address.String()
	require.NoError(t, err)
	assert.Equal(t, from, str)
	require.Equal(t, xdr.ScValTypeI128, vals[2].Type)
	assert.Equal(t, xdr.Int128Parts{Hi: 0, Lo: 1000}, *vals[2].I128)
}

func TestFuncArgsErrors(t *testing.T) {
	spec := testSpec()
	_, err := spec.FuncArgsToSCVals("nonexistent", map[string]any{})
	assert.ErrorIs(t, err, contractspec.ErrFunctionNotFound)
	_, err = spec.FuncArgsToSCVals("hello", map[string]any{})
	assert.ErrorIs(t, err, contractspec.ErrMissingArgument)
	// a type entry is not callable
	_, err = spec.FuncArgsToSCVals("Price", map[string]any{})
	assert.ErrorIs(t, err, contractspec.ErrFunctionNotFound)
}

func TestNativeToSCValAddresses(t *testing.T) {
	spec := testSpec()
	addressType := xdr.SpecType(xdr.ScSpecTypeAddress)

	accountAddr := test.Keypair(0x01).Address()
	val, err := spec.NativeToSCVal(accountAddr, addressType)
	require.NoError(t, err)
	require.Equal(t, xdr.ScValTypeAddress, val.Type)
	assert.Equal(t, xdr.ScAddressTypeAccount, val.Address.Type)

	contractAddr := strkey.MustEncode(
		strkey.VersionByteContract,
		make([]byte, 32),
	)
	val, err = spec.NativeToSCVal(contractAddr, addressType)
	require.NoError(t, err)
	require.Equal(t, xdr.ScValTypeAddress, val.Type)
	assert.Equal(t, xdr.ScAddressTypeContract, val.Address.Type)

	_, err = spec.NativeToSCVal("not an address", addressType)
	assert.Error(t, err)
}

func TestNativeToSCValIntegers(t *testing.T) {
	spec := testSpec()
	testDefs := []struct {
		name        string
		value       any
		ty          xdr.ScSpecTypeDef
		expected    xdr.ScVal
		expectedErr bool
	}{
		{
			name:     "u32 from int",
			value:    42,
			ty:       xdr.SpecType(xdr.ScSpecTypeU32),
			expected: xdr.ScU32(42),
		},
		{
			name:     "u32 from string",
			value:    "42",
			ty:       xdr.SpecType(xdr.ScSpecTypeU32),
			expected: xdr.ScU32(42),
		},
		{
			name:        "u32 overflow",
			value:       int64(1) << 33,
			ty:          xdr.SpecType(xdr.ScSpecTypeU32),
			expectedErr: true,
		},
		{
			name:        "u32 negative",
			value:       -1,
			ty:          xdr.SpecType(xdr.ScSpecTypeU32),
			expectedErr: true,
		},
		{
			name:     "i32 negative",
			value:    -7,
			ty:       xdr.SpecType(xdr.ScSpecTypeI32),
			expected: xdr.ScI32(-7),
		},
		{
			name:     "u64 from uint64",
			value:    uint64(1) << 63,
			ty:       xdr.SpecType(xdr.ScSpecTypeU64),
			expected: xdr.ScU64(1 << 63),
		},
		{
			name:        "i64 overflow",
			value:       new(big.Int).Lsh(big.NewInt(1), 63),
			ty:          xdr.SpecType(xdr.ScSpecTypeI64),
			expectedErr: true,
		},
		{
			name:        "not a number",
			value:       3.14,
			ty:          xdr.SpecType(xdr.ScSpecTypeU32),
			expectedErr: true,
		},
	}
	for _, testDef := range testDefs {
		val, err := spec.NativeToSCVal(testDef.value, testDef.ty)
		if testDef.expectedErr {
			assert.Error(t, err, testDef.name)
			continue
		}
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.expected, val, testDef.name)
	}
}

func TestI128RoundTrip(t *testing.T) {
	spec := testSpec()
	i128 := xdr.SpecType(xdr.ScSpecTypeI128)
	for _, n := range []*big.Int{
		big.NewInt(0),
		big.NewInt(1000),
		big.NewInt(-1),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)),
		new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127)),
	} {
		val, err := spec.NativeToSCVal(n, i128)
		require.NoError(t, err, n.String())
		native, err := contractspec.SCValToNative(val)
		require.NoError(t, err, n.String())
		assert.Equal(t, 0, n.Cmp(native.(*big.Int)), n.String())
	}
	// one past either bound fails
	_, err := spec.NativeToSCVal(new(big.Int).Lsh(big.NewInt(1), 127), i128)
	assert.Error(t, err)
	_, err = spec.NativeToSCVal(
		new(big.Int).Neg(
			new(big.Int).Add(
				new(big.Int).Lsh(big.NewInt(1), 127),
				big.NewInt(1),
			),
		),
		i128,
	)
	assert.Error(t, err)
}

func TestNegativeI128Parts(t *testing.T) {
	parts, err := contractspec.I128PartsFromBig(big.NewInt(-1))
	require.NoError(t, err)
	// two's complement: all bits set
	assert.Equal(t, int64(-1), parts.Hi)
	assert.Equal(t, uint64(0xffffffffffffffff), parts.Lo)
}

func TestU256RoundTrip(t *testing.T) {
	spec := testSpec()
	u256 := xdr.SpecType(xdr.ScSpecTypeU256)
	n := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	val, err := spec.NativeToSCVal(n, u256)
	require.NoError(t, err)
	native, err := contractspec.SCValToNative(val)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Cmp(native.(*big.Int)))
	_, err = spec.NativeToSCVal(big.NewInt(-1), u256)
	assert.Error(t, err)
}

func TestNativeToSCValBytes(t *testing.T) {
	spec := testSpec()
	val, err := spec.NativeToSCVal(
		"deadbeef",
		xdr.SpecType(xdr.ScSpecTypeBytes),
	)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScBytes([]byte{0xde, 0xad, 0xbe, 0xef}), val)

	val, err = spec.NativeToSCVal([]byte{1, 2, 3, 4}, xdr.SpecTypeBytesN(4))
	require.NoError(t, err)
	assert.Equal(t, xdr.ScBytes([]byte{1, 2, 3, 4}), val)

	_, err = spec.NativeToSCVal([]byte{1, 2, 3}, xdr.SpecTypeBytesN(4))
	assert.Error(t, err)
	_, err = spec.NativeToSCVal("zz", xdr.SpecType(xdr.ScSpecTypeBytes))
	assert.Error(t, err)
}

func TestNativeToSCValOptionAndResult(t *testing.T) {
	spec := testSpec()
	option := xdr.SpecTypeOption(xdr.SpecType(xdr.ScSpecTypeU32))
	val, err := spec.NativeToSCVal(nil, option)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScVoid(), val)
	val, err = spec.NativeToSCVal(7, option)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScU32(7), val)

	result := xdr.SpecTypeResult(
		xdr.SpecType(xdr.ScSpecTypeString),
		xdr.SpecType(xdr.ScSpecTypeU32),
	)
	val, err = spec.NativeToSCVal("fine", result)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScString("fine"), val)
	val, err = spec.NativeToSCVal(contractspec.ResultErr{Value: 404}, result)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScU32(404), val)
}

func TestNativeToSCValVecAndTuple(t *testing.T) {
	spec := testSpec()
	vec := xdr.SpecTypeVec(xdr.SpecType(xdr.ScSpecTypeU32))
	val, err := spec.NativeToSCVal([]int{1, 2, 3}, vec)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScVecVal(xdr.ScU32(1), xdr.ScU32(2), xdr.ScU32(3)), val)
	_, err = spec.NativeToSCVal("not a slice", vec)
	assert.Error(t, err)

	tuple := xdr.SpecTypeTuple(
		xdr.SpecType(xdr.ScSpecTypeSymbol),
		xdr.SpecType(xdr.ScSpecTypeU32),
	)
	val, err = spec.NativeToSCVal([]any{"count", 5}, tuple)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScVecVal(xdr.ScSymbol("count"), xdr.ScU32(5)), val)
	_, err = spec.NativeToSCVal([]any{"count"}, tuple)
	assert.Error(t, err)
}

// Map entries sort by encoded key so the wire form is deterministic
// regardless of Go map iteration order
func TestNativeToSCValMapDeterminism(t *testing.T) {
	spec := testSpec()
	mapType := xdr.SpecTypeMap(
		xdr.SpecType(xdr.ScSpecTypeU32),
		xdr.SpecType(xdr.ScSpecTypeString),
	)
	input := map[int]string{3: "c", 1: "a", 2: "b"}
	expected := xdr.ScMapVal(
		xdr.ScMapEntry{Key: xdr.ScU32(1), Val: xdr.ScString("a")},
		xdr.ScMapEntry{Key: xdr.ScU32(2), Val: xdr.ScString("b")},
		xdr.ScMapEntry{Key: xdr.ScU32(3), Val: xdr.ScString("c")},
	)
	for i := 0; i < 8; i++ {
		val, err := spec.NativeToSCVal(input, mapType)
		require.NoError(t, err)
		assert.Equal(t, expected, val)
	}
}

func TestNativeToSCValStruct(t *testing.T) {
	spec := testSpec()
	priceType := xdr.SpecTypeUdt("Price")
	val, err := spec.NativeToSCVal(map[string]any{
		"amount": 150,
		"token":  "USD",
	}, priceType)
	require.NoError(t, err)
	// fields follow declaration order, keyed by symbol
	assert.Equal(t, xdr.ScMapVal(
		xdr.ScMapEntry{Key: xdr.ScSymbol("amount"), Val: xdr.ScU64(150)},
		xdr.ScMapEntry{Key: xdr.ScSymbol("token"), Val: xdr.ScSymbol("USD")},
	), val)

	_, err = spec.NativeToSCVal(map[string]any{"amount": 150}, priceType)
	assert.Error(t, err)
	_, err = spec.NativeToSCVal("not a map", priceType)
	assert.Error(t, err)
}

// A struct whose field names are all numeric converts from an ordered
// slice into a plain vec
func TestNativeToSCValTupleStruct(t *testing.T) {
	spec := testSpec()
	val, err := spec.NativeToSCVal([]any{4, 8}, xdr.SpecTypeUdt("Point"))
	require.NoError(t, err)
	assert.Equal(t, xdr.ScVecVal(xdr.ScU32(4), xdr.ScU32(8)), val)
	_, err = spec.NativeToSCVal([]any{4}, xdr.SpecTypeUdt("Point"))
	assert.Error(t, err)
}

func TestNativeToSCValUnion(t *testing.T) {
	spec := testSpec()
	unionType := xdr.SpecTypeUdt("OfferState")

	val, err := spec.NativeToSCVal(
		contractspec.UnionVal{Tag: "Open"},
		unionType,
	)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScVecVal(xdr.ScSymbol("Open")), val)

	// tag matching is case-insensitive but the declared name is emitted
	val, err = spec.NativeToSCVal(
		contractspec.UnionVal{Tag: "filled", Values: []any{99}},
		unionType,
	)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScVecVal(xdr.ScSymbol("Filled"), xdr.ScU64(99)), val)

	_, err = spec.NativeToSCVal(
		contractspec.UnionVal{Tag: "Open", Values: []any{1}},
		unionType,
	)
	assert.Error(t, err)
	_, err = spec.NativeToSCVal(
		contractspec.UnionVal{Tag: "Cancelled"},
		unionType,
	)
	assert.Error(t, err)
}

func TestNativeToSCValEnum(t *testing.T) {
	spec := testSpec()
	enumType := xdr.SpecTypeUdt("Color")

	val, err := spec.NativeToSCVal("Green", enumType)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScU32(1), val)

	val, err = spec.NativeToSCVal(2, enumType)
	require.NoError(t, err)
	assert.Equal(t, xdr.ScU32(2), val)

	_, err = spec.NativeToSCVal("Purple", enumType)
	assert.Error(t, err)
	_, err = spec.NativeToSCVal(9, enumType)
	assert.Error(t, err)
}

func TestNativeToSCValUnknownUdt(t *testing.T) {
	spec := testSpec()
	_, err := spec.NativeToSCVal(1, xdr.SpecTypeUdt("Mystery"))
	assert.ErrorIs(t, err, contractspec.ErrTypeNotFound)
}

// A prebuilt contract value passes through regardless of declared type
func TestNativeToSCValPassthrough(t *testing.T) {
	spec := testSpec()
	prebuilt := xdr.ScString("already converted")
	val, err := spec.NativeToSCVal(prebuilt, xdr.SpecType(xdr.ScSpecTypeU32))
	require.NoError(t, err)
	assert.Equal(t, prebuilt, val)
}

func TestSCValToNative(t *testing.T) {
	testDefs := []struct {
		name     string
		val      xdr.ScVal
		expected any
	}{
		{name: "bool", val: xdr.ScBool(true), expected: true},
		{name: "void", val: xdr.ScVoid(), expected: nil},
		{name: "u32", val: xdr.ScU32(7), expected: uint32(7)},
		{name: "i64", val: xdr.ScI64(-9), expected: int64(-9)},
		{
			name:     "bytes",
			val:      xdr.ScBytes([]byte{1, 2}),
			expected: []byte{1, 2},
		},
		{name: "string", val: xdr.ScString("hi"), expected: "hi"},
		{name: "symbol", val: xdr.ScSymbol("sym"), expected: "sym"},
		{
			name:     "vec",
			val:      xdr.ScVecVal(xdr.ScU32(1), xdr.ScString("x")),
			expected: []any{uint32(1), "x"},
		},
		{
			name: "map",
			val: xdr.ScMapVal(
				xdr.ScMapEntry{Key: xdr.ScSymbol("k"), Val: xdr.ScU32(1)},
			),
			expected: map[any]any{"k": uint32(1)},
		},
	}
	for _, testDef := range testDefs {
		native, err := contractspec.SCValToNative(testDef.val)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.expected, native, testDef.name)
	}
}

func TestSCValToNativeRejectsUnhashableMapKey(t *testing.T) {
	val := xdr.ScMapVal(
		xdr.ScMapEntry{
			Key: xdr.ScVecVal(xdr.ScU32(1)),
			Val: xdr.ScU32(2),
		},
	)
	_, err := contractspec.SCValToNative(val)
	assert.Error(t, err)
}

func TestSCValToNativeAddress(t *testing.T) {
	addr := test.Keypair(0x01).Address()
	scAddr, err := xdr.ScAddressFromString(addr)
	require.NoError(t, err)
	native, err := contractspec.SCValToNative(xdr.ScAddressVal(scAddr))
	require.NoError(t, err)
	assert.Equal(t, addr, native)
}
