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

package strkey_test

import (
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownVectorDefs = []struct {
	name    string
	version strkey.VersionByte
	payload []byte
	encoded string
}{
	{
		name:    "account id",
		version: strkey.VersionByteAccountID,
		payload: test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		),
		encoded: "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ",
	},
	{
		name:    "seed",
		version: strkey.VersionByteSeed,
		payload: test.DecodeHexString(
			"69a8c4cbb9f64e8a0757a8c5c5d8a35871f883eb08393171a7b08f7f83f9ccbe",
		),
		encoded: "SBU2RRGLXH3E5CQHTD3ODLDF2BWDCYUSSBLLZ5GNW7JXHDIYKXZWHXL7",
	},
}

func TestKnownVectors(t *testing.T) {
	for _, testDef := range knownVectorDefs {
		encoded, err := strkey.Encode(testDef.version, testDef.payload)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.encoded, encoded, testDef.name)
		decoded, err := strkey.Decode(testDef.version, testDef.encoded)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.payload, decoded, testDef.name)
	}
}

var roundTripDefs = []struct {
	name    string
	version strkey.VersionByte
	payload []byte
	prefix  byte
}{
	{
		name:    "account id",
		version: strkey.VersionByteAccountID,
		payload: test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		),
		prefix: 'G',
	},
	{
		name:    "seed",
		version: strkey.VersionByteSeed,
		payload: test.DecodeHexString(
			"69a8c4cbb9f64e8a0757a8c5c5d8a35871f883eb08393171a7b08f7f83f9ccbe",
		),
		prefix: 'S',
	},
	{
		name:    "muxed account",
		version: strkey.VersionByteMuxedAccount,
		payload: test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a" +
				"8000000000000000",
		),
		prefix: 'M',
	},
	{
		name:    "pre-auth tx",
		version: strkey.VersionBytePreAuthTx,
		payload: test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		),
		prefix: 'T',
	},
	{
		name:    "hash x",
		version: strkey.VersionByteHashX,
		payload: test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		),
		prefix: 'X',
	},
	{
		name:    "contract",
		version: strkey.VersionByteContract,
		payload: test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		),
		prefix: 'C',
	},
	{
		name:    "liquidity pool",
		version: strkey.VersionByteLiquidityPool,
		payload: test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		),
		prefix: 'L',
	},
	{
		name:    "claimable balance",
		version: strkey.VersionByteClaimableBalance,
		payload: test.DecodeHexString(
			"003f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		),
		prefix: 'B',
	},
}

func TestRoundTrip(t *testing.T) {
	for _, testDef := range roundTripDefs {
		encoded, err := strkey.Encode(testDef.version, testDef.payload)
		require.NoError(t, err, testDef.name)
		assert.Equal(
			t,
			testDef.prefix,
			encoded[0],
			"%s: unexpected prefix in %q",
			testDef.name,
			encoded,
		)
		assert.True(t, strkey.IsValid(testDef.version, encoded), testDef.name)
		decoded, err := strkey.Decode(testDef.version, encoded)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.payload, decoded, testDef.name)
	}
}

func TestEncodeRejectsWrongSize(t *testing.T) {
	for _, testDef := range roundTripDefs {
		_, err := strkey.Encode(testDef.version, testDef.payload[:len(testDef.payload)-1])
		assert.Error(t, err, testDef.name)
	}
}

func TestDecodeRejectsWrongVersion(t *testing.T) {
	for _, testDef := range roundTripDefs {
		wrongVersion := strkey.VersionByteHashX
		if testDef.version == wrongVersion {
			wrongVersion = strkey.VersionByteContract
		}
		encoded, err := strkey.Encode(testDef.version, testDef.payload)
		require.NoError(t, err, testDef.name)
		_, err = strkey.Decode(wrongVersion, encoded)
		assert.Error(t, err, testDef.name)
	}
}

// Flipping any single character must invalidate the string, either via
// the checksum or via the canonical re-encode comparison
func TestChecksumSensitivity(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	for _, testDef := range roundTripDefs {
		encoded, err := strkey.Encode(testDef.version, testDef.payload)
		require.NoError(t, err, testDef.name)
		for i := 0; i < len(encoded); i++ {
			flipped := []byte(encoded)
			if flipped[i] == alphabet[0] {
				flipped[i] = alphabet[1]
			} else {
				flipped[i] = alphabet[0]
			}
			assert.False(
				t,
				strkey.IsValid(testDef.version, string(flipped)),
				"%s: flipped position %d still valid",
				testDef.name,
				i,
			)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	malformedDefs := []struct {
		name    string
		version strkey.VersionByte
		input   string
	}{
		{
			name:    "empty string",
			version: strkey.VersionByteAccountID,
			input:   "",
		},
		{
			name:    "invalid base32 character",
			version: strkey.VersionByteAccountID,
			input:   "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSG0",
		},
		{
			name:    "truncated payload",
			version: strkey.VersionByteAccountID,
			input:   "GA7QYNF7SOWQ3GLR2BGMZEHX",
		},
		{
			name:    "lowercase input",
			version: strkey.VersionByteAccountID,
			input:   "ga7qynf7sowq3glr2bgmzehxavirza4kvwltjjfc7mgxua74p7ujvsgz",
		},
	}
	for _, testDef := range malformedDefs {
		_, err := strkey.Decode(testDef.version, testDef.input)
		assert.Error(t, err, testDef.name)
	}
}

func TestVersion(t *testing.T) {
	for _, testDef := range roundTripDefs {
		encoded, err := strkey.Encode(testDef.version, testDef.payload)
		require.NoError(t, err, testDef.name)
		version, err := strkey.Version(encoded)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, testDef.version, version, testDef.name)
	}
}

func TestMustEncodePanics(t *testing.T) {
	assert.Panics(t, func() {
		strkey.MustEncode(strkey.VersionByteAccountID, []byte{0x01})
	})
}

func TestSignedPayloadRoundTrip(t *testing.T) {
	var key [32]byte
	copy(key[:], test.DecodeHexString(
		"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
	))
	payloadDefs := []struct {
		name    string
		payload []byte
	}{
		{name: "4 bytes", payload: []byte{1, 2, 3, 4}},
		{name: "unpadded length", payload: []byte{1, 2, 3, 4, 5}},
		{name: "29 bytes", payload: make([]byte, 29)},
		{name: "64 bytes", payload: make([]byte, 64)},
	}
	for _, testDef := range payloadDefs {
		sp, err := strkey.NewSignedPayload(key, testDef.payload)
		require.NoError(t, err, testDef.name)
		encoded, err := sp.Encode()
		require.NoError(t, err, testDef.name)
		decoded, err := strkey.DecodeSignedPayload(encoded)
		require.NoError(t, err, testDef.name)
		assert.Equal(t, key, decoded.Ed25519, testDef.name)
		assert.Equal(t, testDef.payload, decoded.Payload, testDef.name)
	}
}

func TestSignedPayloadRejectsBadLength(t *testing.T) {
	var key [32]byte
	_, err := strkey.NewSignedPayload(key, nil)
	assert.Error(t, err)
	_, err = strkey.NewSignedPayload(key, make([]byte, 65))
	assert.Error(t, err)
}
