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
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetStringRoundTrip(t *testing.T) {
	issuerA := test.Keypair(0x01).Address()
	issuerB := test.Keypair(0x02).Address()
	testDefs := []struct {
		name      string
		canonical string
	}{
		{name: "native", canonical: "native"},
		{name: "alphanum4 short", canonical: "A:" + issuerA},
		{name: "alphanum4 full", canonical: "USDC:" + issuerA},
		{name: "alphanum12", canonical: "LONGASSET12:" + issuerB},
	}
	for _, testDef := range testDefs {
		asset, err := xdr.NewAsset(testDef.canonical)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.canonical, asset.String(), testDef.name)
		reparsed, err := xdr.NewAsset(asset.String())
		require.NoError(t, err, testDef.name)
		assert.True(t, asset.Equals(reparsed), testDef.name)
	}
}

func TestNewAssetRejectsMalformed(t *testing.T) {
	issuer := test.Keypair(0x01).Address()
	testDefs := []struct {
		name  string
		input string
	}{
		{name: "no separator", input: "USDC"},
		{name: "empty code", input: ":" + issuer},
		{name: "oversized code", input: "THIRTEENCHARS:" + issuer},
		{name: "lowercase code", input: "usdc:" + issuer},
		{name: "bad issuer", input: "USDC:GABC"},
	}
	for _, testDef := range testDefs {
		_, err := xdr.NewAsset(testDef.input)
		assert.Error(t, err, testDef.name)
	}
}

func TestNewCreditAssetSelectsRepresentation(t *testing.T) {
	issuer := test.Keypair(0x01).Address()
	short, err := xdr.NewCreditAsset("USDC", issuer)
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeAlphaNum4, short.Type)
	long, err := xdr.NewCreditAsset("USDCX", issuer)
	require.NoError(t, err)
	assert.Equal(t, xdr.AssetTypeAlphaNum12, long.Type)
}

// Compare must order native before alphanum4 before alphanum12, then by
// code bytes, then by issuer bytes
func TestAssetCompare(t *testing.T) {
	issuerA := test.Keypair(0x01).Address()
	issuerB := test.Keypair(0x02).Address()
	native := xdr.NewNativeAsset()
	a4a, err := xdr.NewCreditAsset("AAA", issuerA)
	require.NoError(t, err)
	a4b, err := xdr.NewCreditAsset("BBB", issuerA)
	require.NoError(t, err)
	a12, err := xdr.NewCreditAsset("AAAAAAAAAAAA", issuerA)
	require.NoError(t, err)
	ordered := []xdr.Asset{native, a4a, a4b, a12}
	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			got := ordered[i].Compare(ordered[j])
			switch {
			case i < j:
				assert.Negative(t, got, "expected %d < %d", i, j)
			case i > j:
				assert.Positive(t, got, "expected %d > %d", i, j)
			default:
				assert.Zero(t, got, "expected %d == %d", i, j)
			}
		}
	}
	// same code, different issuer
	sameCodeA, err := xdr.NewCreditAsset("USD", issuerA)
	require.NoError(t, err)
	sameCodeB, err := xdr.NewCreditAsset("USD", issuerB)
	require.NoError(t, err)
	assert.NotZero(t, sameCodeA.Compare(sameCodeB))
	assert.Equal(
		t,
		sameCodeA.Compare(sameCodeB),
		-sameCodeB.Compare(sameCodeA),
	)
}

// Contract id derivation must be deterministic per network and yield a
// valid contract address
func TestAssetContractID(t *testing.T) {
	issuer := test.Keypair(0x01).Address()
	asset, err := xdr.NewCreditAsset("USDC", issuer)
	require.NoError(t, err)
	testnetID, err := asset.ContractID(network.TestNetworkPassphrase)
	require.NoError(t, err)
	assert.True(t, strkey.IsValid(strkey.VersionByteContract, testnetID))
	again, err := asset.ContractID(network.TestNetworkPassphrase)
	require.NoError(t, err)
	assert.Equal(t, testnetID, again)
	publicID, err := asset.ContractID(network.PublicNetworkPassphrase)
	require.NoError(t, err)
	assert.NotEqual(t, testnetID, publicID)
	nativeID, err := xdr.NewNativeAsset().ContractID(
		network.TestNetworkPassphrase,
	)
	require.NoError(t, err)
	assert.NotEqual(t, testnetID, nativeID)
}

func TestAssetWireRoundTrip(t *testing.T) {
	issuer := test.Keypair(0x01).Address()
	credit, err := xdr.NewCreditAsset("USDC", issuer)
	require.NoError(t, err)
	testDefs := []struct {
		name  string
		asset xdr.Asset
	}{
		{name: "native", asset: xdr.NewNativeAsset()},
		{name: "credit", asset: credit},
	}
	for _, testDef := range testDefs {
		data, err := xdr.Encode(&testDef.asset)
		require.NoError(t, err, testDef.name)
		var decoded xdr.Asset
		require.NoError(t, xdr.Decode(data, &decoded), testDef.name)
		assert.True(t, testDef.asset.Equals(decoded), testDef.name)
	}
}
