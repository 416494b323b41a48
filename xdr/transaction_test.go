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

func testTransaction(t *testing.T) xdr.Transaction {
	t.Helper()
	source := xdr.NewMuxedAccount(testPublicKeyBytes(0x01))
	destination, err := xdr.AccountIDFromAddress(
		test.Keypair(0x02).Address(),
	)
	require.NoError(t, err)
	memo, err := xdr.MemoText("test payment")
	require.NoError(t, err)
	return xdr.Transaction{
		SourceAccount: source,
		Fee:           100,
		SeqNum:        42,
		Cond: xdr.Preconditions{
			Type:       xdr.PreconditionTypeTime,
			TimeBounds: &xdr.TimeBounds{MinTime: 0, MaxTime: 1893456000},
		},
		Memo: memo,
		Operations: []xdr.Operation{
			{
				Body: xdr.OperationBody{
					Type: xdr.OperationTypeCreateAccount,
					CreateAccountOp: &xdr.CreateAccountOp{
						Destination:     destination,
						StartingBalance: 10_000_000,
					},
				},
			},
		},
	}
}

func TestTransactionEnvelopeRoundTrip(t *testing.T) {
	tx := testTransaction(t)
	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTx,
		V1: &xdr.TransactionV1Envelope{
			Tx: tx,
			Signatures: []xdr.DecoratedSignature{
				{Hint: [4]byte{1, 2, 3, 4}, Signature: make([]byte, 64)},
			},
		},
	}
	data, err := xdr.Encode(&env)
	require.NoError(t, err)
	var decoded xdr.TransactionEnvelope
	require.NoError(t, xdr.Decode(data, &decoded))
	assert.Equal(t, env, decoded)
	// base64 form round-trips too
	b64, err := xdr.EncodeBase64(&env)
	require.NoError(t, err)
	var fromB64 xdr.TransactionEnvelope
	require.NoError(t, xdr.DecodeBase64(b64, &fromB64))
	assert.Equal(t, env, fromB64)
}

func TestFeeBumpEnvelopeRoundTrip(t *testing.T) {
	tx := testTransaction(t)
	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTxFeeBump,
		FeeBump: &xdr.FeeBumpTransactionEnvelope{
			Tx: xdr.FeeBumpTransaction{
				FeeSource: xdr.NewMuxedAccount(testPublicKeyBytes(0x03)),
				Fee:       400,
				InnerTx: xdr.TransactionV1Envelope{
					Tx: tx,
				},
			},
		},
	}
	data, err := xdr.Encode(&env)
	require.NoError(t, err)
	var decoded xdr.TransactionEnvelope
	require.NoError(t, xdr.Decode(data, &decoded))
	assert.Equal(t, env, decoded)
}

// Upgrading a legacy transaction maps the bare key to a muxed source
// and the optional time bounds to the matching precondition variant
func TestTransactionV0Upgrade(t *testing.T) {
	key := testPublicKeyBytes(0x01)
	v0 := xdr.TransactionV0{
		SourceAccountEd25519: xdr.Uint256(key),
		Fee:                  200,
		SeqNum:               7,
		TimeBounds:           &xdr.TimeBounds{MinTime: 1, MaxTime: 2},
		Memo:                 xdr.MemoNone(),
		Operations: []xdr.Operation{
			{
				Body: xdr.OperationBody{
					Type:           xdr.OperationTypeBumpSequence,
					BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: 100},
				},
			},
		},
	}
	v1 := v0.V1()
	assert.Equal(t, xdr.NewMuxedAccount(key), v1.SourceAccount)
	assert.Equal(t, v0.Fee, v1.Fee)
	assert.Equal(t, v0.SeqNum, v1.SeqNum)
	assert.Equal(t, xdr.PreconditionTypeTime, v1.Cond.Type)
	assert.Equal(t, v0.TimeBounds, v1.Cond.TimeBounds)
	assert.Equal(t, v0.Operations, v1.Operations)

	noBounds := v0
	noBounds.TimeBounds = nil
	assert.Equal(t, xdr.PreconditionTypeNone, noBounds.V1().Cond.Type)
}

func TestMemoTextLimit(t *testing.T) {
	_, err := xdr.MemoText("this text is exactly 28 byte")
	assert.NoError(t, err)
	_, err = xdr.MemoText("this text is longer than 28 bytes")
	assert.Error(t, err)
}

func TestPreconditionsV2ExtraSignerLimit(t *testing.T) {
	key, err := xdr.SignerKeyFromAddress(test.Keypair(0x01).Address())
	require.NoError(t, err)
	cond := xdr.Preconditions{
		Type: xdr.PreconditionTypeV2,
		V2: &xdr.PreconditionsV2{
			ExtraSigners: []xdr.SignerKey{key, key, key},
		},
	}
	_, err = xdr.Encode(&cond)
	assert.Error(t, err)
}

func TestManageDataOpLimits(t *testing.T) {
	longName := make([]byte, 65)
	for i := range longName {
		longName[i] = 'a'
	}
	op := xdr.ManageDataOp{DataName: string(longName)}
	_, err := xdr.Encode(&op)
	assert.Error(t, err)
}

func TestSorobanAuthorizationEntryRoundTrip(t *testing.T) {
	contract, err := xdr.ScAddressFromString(
		"CA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUWDA",
	)
	if err != nil {
		// derive a valid contract address from raw bytes instead
		var hash xdr.Hash
		copy(hash[:], test.DecodeHexString(
			"3f0c34bf93ad0d9971d04ccc90f705511c838aad9734a4a2fb0d7a03fc7fe89a",
		))
		contract = xdr.ScAddress{
			Type:       xdr.ScAddressTypeContract,
			ContractId: &hash,
		}
	}
	signer, err := xdr.ScAddressFromString(test.Keypair(0x01).Address())
	require.NoError(t, err)
	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:                   signer,
				Nonce:                     12345,
				SignatureExpirationLedger: 500,
				Signature:                 xdr.ScVoid(),
			},
		},
		RootInvocation: xdr.SorobanAuthorizedInvocation{
			Function: xdr.SorobanAuthorizedFunction{
				Type: xdr.SorobanAuthorizedFunctionTypeContractFn,
				ContractFn: &xdr.InvokeContractArgs{
					ContractAddress: contract,
					FunctionName:    "transfer",
					Args:            []xdr.ScVal{xdr.ScI64(10)},
				},
			},
			SubInvocations: []xdr.SorobanAuthorizedInvocation{
				{
					Function: xdr.SorobanAuthorizedFunction{
						Type: xdr.SorobanAuthorizedFunctionTypeContractFn,
						ContractFn: &xdr.InvokeContractArgs{
							ContractAddress: contract,
							FunctionName:    "burn",
						},
					},
				},
			},
		},
	}
	data, err := xdr.Encode(&entry)
	require.NoError(t, err)
	var decoded xdr.SorobanAuthorizationEntry
	require.NoError(t, xdr.Decode(data, &decoded))
	assert.Equal(t, entry, decoded)
}
