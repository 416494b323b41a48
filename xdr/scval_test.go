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

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScValWireRoundTrip(t *testing.T) {
	address, err := xdr.ScAddressFromString(test.Keypair(0x01).Address())
	require.NoError(t, err)
	testDefs := []struct {
		name string
		val  xdr.ScVal
	}{
		{name: "bool", val: xdr.ScBool(true)},
		{name: "void", val: xdr.ScVoid()},
		{name: "u32", val: xdr.ScU32(42)},
		{name: "i32 negative", val: xdr.ScI32(-7)},
		{name: "u64", val: xdr.ScU64(1 << 63)},
		{name: "i64", val: xdr.ScI64(-1)},
		{name: "timepoint", val: xdr.ScTimepoint(1700000000)},
		{name: "duration", val: xdr.ScDuration(3600)},
		{name: "bytes", val: xdr.ScBytes([]byte{0xde, 0xad, 0xbe, 0xef})},
		{name: "string", val: xdr.ScString("hello")},
		{name: "symbol", val: xdr.ScSymbol("transfer")},
		{name: "address", val: xdr.ScAddressVal(address)},
		{
			name: "nested vec",
			val: xdr.ScVecVal(
				xdr.ScU32(1),
				xdr.ScVecVal(xdr.ScSymbol("inner")),
			),
		},
		{
			name: "map",
			val: xdr.ScMapVal(
				xdr.ScMapEntry{
					Key: xdr.ScSymbol("amount"),
					Val: xdr.ScI64(100),
				},
			),
		},
	}
	for _, testDef := range testDefs {
		data, err := xdr.Encode(&testDef.val)
		require.NoError(t, err, testDef.name)
		var decoded xdr.ScVal
		require.NoError(t, xdr.Decode(data, &decoded), testDef.name)
		assert.Equal(t, testDef.val, decoded, testDef.name)
	}
}

func TestScValRejectsUnknownType(t *testing.T) {
	var decoded xdr.ScVal
	// discriminant 99 is not a defined value type
	data := []byte{0x00, 0x00, 0x00, 0x63}
	assert.Error(t, xdr.Decode(data, &decoded))
}

// The address parser dispatches on which strkey kind validates, trying
// account before contract before muxed forms
func TestScAddressFromString(t *testing.T) {
	kp := test.Keypair(0x01)
	accountAddr := kp.Address()
	muxed := xdr.NewMuxedAccountWithID(kp.PublicKey(), 7)
	testDefs := []struct {
		name     string
		input    string
		addrType xdr.ScAddressType
	}{
		{
			name:     "account",
			input:    accountAddr,
			addrType: xdr.ScAddressTypeAccount,
		},
		{
			name:     "muxed",
			input:    muxed.Address(),
			addrType: xdr.ScAddressTypeMuxedAccount,
		},
	}
	for _, testDef := range testDefs {
		addr, err := xdr.ScAddressFromString(testDef.input)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.addrType, addr.Type, testDef.name)
		back, err := addr.String()
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.input, back, testDef.name)
	}
	_, err := xdr.ScAddressFromString("not an address")
	assert.Error(t, err)
}
