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

package txnbuild_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/txnbuild"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBumpOp() txnbuild.Operation {
	return &txnbuild.BumpSequence{BumpTo: 1000}
}

// Building consumes the next sequence number and advances the account
func TestBuildAdvancesSequence(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 41)
	tx, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		Build()
	require.NoError(t, err)
	assert.Equal(t, int64(42), tx.SequenceNumber())
	assert.Equal(t, uint32(100), tx.Fee())
	assert.Equal(t, int64(42), account.Sequence)
}

// Building twice from the same builder yields distinct sequence numbers
// and mutates the account twice
func TestBuildIsNotIdempotent(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	builder := txnbuild.NewBuilder(account).AddOperation(testBumpOp())
	tx1, err := builder.Build()
	require.NoError(t, err)
	tx2, err := builder.Build()
	require.NoError(t, err)
	assert.Equal(t, int64(1), tx1.SequenceNumber())
	assert.Equal(t, int64(2), tx2.SequenceNumber())
	assert.Equal(t, int64(2), account.Sequence)
}

func TestBuildValidation(t *testing.T) {
	kp := test.Keypair(0x01)
	testDefs := []struct {
		name    string
		builder func() *txnbuild.Builder
	}{
		{
			name: "no operations",
			builder: func() *txnbuild.Builder {
				account := txnbuild.NewSimpleAccount(kp.Address(), 0)
				return txnbuild.NewBuilder(account)
			},
		},
		{
			name: "too many operations",
			builder: func() *txnbuild.Builder {
				account := txnbuild.NewSimpleAccount(kp.Address(), 0)
				builder := txnbuild.NewBuilder(account)
				for i := 0; i < 101; i++ {
					builder.AddOperation(testBumpOp())
				}
				return builder
			},
		},
		{
			name: "base fee below minimum",
			builder: func() *txnbuild.Builder {
				account := txnbuild.NewSimpleAccount(kp.Address(), 0)
				return txnbuild.NewBuilder(account).
					AddOperation(testBumpOp()).
					SetBaseFee(99)
			},
		},
		{
			name: "timeout conflicts with time bounds",
			builder: func() *txnbuild.Builder {
				account := txnbuild.NewSimpleAccount(kp.Address(), 0)
				return txnbuild.NewBuilder(account).
					AddOperation(testBumpOp()).
					SetTimeBounds(0, 100).
					SetTimeout(5 * time.Minute)
			},
		},
	}
	for _, testDef := range testDefs {
		_, err := testDef.builder().Build()
		assert.Error(t, err, testDef.name)
	}
}

// A failed build must not consume a sequence number
func TestFailedBuildLeavesSequence(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 41)
	_, err := txnbuild.NewBuilder(account).Build()
	require.Error(t, err)
	assert.Equal(t, int64(41), account.Sequence)
}

func TestSetMemoTwice(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	builder := txnbuild.NewBuilder(account)
	memo, err := xdr.MemoText("first")
	require.NoError(t, err)
	require.NoError(t, builder.SetMemo(memo))
	assert.Error(t, builder.SetMemo(xdr.MemoID(2)))
}

func TestSorobanDataFee(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	data := txnbuild.NewSorobanDataBuilder().
		SetResources(1_000_000, 500, 500).
		SetResourceFee(5000).
		Build()
	tx, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		SetSorobanData(data).
		Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(5100), tx.Fee())
	require.NotNil(t, tx.SorobanData())
	assert.Equal(t, int64(5000), tx.SorobanData().ResourceFee)
}

func TestSignAppendsWithoutDeduplication(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	tx, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		Build()
	require.NoError(t, err)
	passphrase := network.TestNetworkPassphrase
	require.NoError(t, tx.Sign(passphrase, kp))
	require.NoError(t, tx.Sign(passphrase, kp))
	sigs := tx.Signatures()
	require.Len(t, sigs, 2)
	assert.Equal(t, sigs[0], sigs[1])
	hash, err := tx.Hash(passphrase)
	require.NoError(t, err)
	assert.True(t, kp.Verify(hash[:], sigs[0].Signature))
}

// The signature base binds the network id, so hashes differ across
// networks
func TestHashBindsNetwork(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	tx, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		Build()
	require.NoError(t, err)
	testnetHash, err := tx.Hash(network.TestNetworkPassphrase)
	require.NoError(t, err)
	publicHash, err := tx.Hash(network.PublicNetworkPassphrase)
	require.NoError(t, err)
	assert.NotEqual(t, testnetHash, publicHash)
}

func TestEnvelopeBase64RoundTrip(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 7)
	memo, err := xdr.MemoText("round trip")
	require.NoError(t, err)
	builder := txnbuild.NewBuilder(account).
		AddOperation(&txnbuild.Payment{
			Destination: test.Keypair(0x02).Address(),
			Asset:       xdr.NewNativeAsset(),
			Amount:      5_000_000,
		}).
		SetTimeBounds(0, 1893456000)
	require.NoError(t, builder.SetMemo(memo))
	tx, err := builder.Build()
	require.NoError(t, err)
	require.NoError(t, tx.Sign(network.TestNetworkPassphrase, kp))
	b64, err := tx.Base64()
	require.NoError(t, err)
	generic, err := txnbuild.TransactionFromXDR(b64)
	require.NoError(t, err)
	decoded, ok := generic.Transaction()
	require.True(t, ok)
	assert.Equal(t, tx.SequenceNumber(), decoded.SequenceNumber())
	assert.Equal(t, tx.Fee(), decoded.Fee())
	assert.Equal(t, tx.Memo(), decoded.Memo())
	assert.Equal(t, tx.Signatures(), decoded.Signatures())
	reencoded, err := decoded.Base64()
	require.NoError(t, err)
	assert.Equal(t, b64, reencoded)
}

func TestFeeBumpFee(t *testing.T) {
	kp := test.Keypair(0x01)
	feeSource := test.Keypair(0x03)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	inner, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		Build()
	require.NoError(t, err)
	require.NoError(t, inner.Sign(network.TestNetworkPassphrase, kp))

	// fee = 200 * (1 inner op + 1) = 400
	bump, err := txnbuild.NewFeeBumpTransaction(feeSource.Address(), 200, inner)
	require.NoError(t, err)
	assert.Equal(t, int64(400), bump.Fee())
	// inner signatures are carried unchanged
	assert.Equal(
		t,
		inner.Signatures(),
		bump.InnerTransaction().Signatures(),
	)

	// base fee below the inner per-operation fee fails
	_, err = txnbuild.NewFeeBumpTransaction(feeSource.Address(), 50, inner)
	assert.Error(t, err)
}

func TestFeeBumpUpgradesLegacyEnvelope(t *testing.T) {
	kp := test.Keypair(0x01)
	v0 := xdr.TransactionV0{
		SourceAccountEd25519: xdr.Uint256(kp.PublicKey()),
		Fee:                  100,
		SeqNum:               5,
		Memo:                 xdr.MemoNone(),
		Operations: []xdr.Operation{
			{
				Body: xdr.OperationBody{
					Type:           xdr.OperationTypeBumpSequence,
					BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: 9},
				},
			},
		},
	}
	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTxV0,
		V0: &xdr.TransactionV0Envelope{
			Tx: v0,
			Signatures: []xdr.DecoratedSignature{
				{Hint: [4]byte{9, 9, 9, 9}, Signature: make([]byte, 64)},
			},
		},
	}
	b64, err := xdr.EncodeBase64(&env)
	require.NoError(t, err)
	generic, err := txnbuild.TransactionFromXDR(b64)
	require.NoError(t, err)
	inner, ok := generic.Transaction()
	require.True(t, ok)
	// decoded legacy transactions re-encode in legacy form
	reencoded, err := inner.Base64()
	require.NoError(t, err)
	assert.Equal(t, b64, reencoded)

	feeSource := test.Keypair(0x03)
	bump, err := txnbuild.NewFeeBumpTransaction(feeSource.Address(), 200, inner)
	require.NoError(t, err)
	// wrapping upgraded the inner envelope, keeping its signatures
	bumpEnv := bump.ToEnvelope()
	require.Equal(t, xdr.EnvelopeTypeTxFeeBump, bumpEnv.Type)
	assert.Equal(
		t,
		env.V0.Signatures,
		bumpEnv.FeeBump.Tx.InnerTx.Signatures,
	)
	assert.Equal(
		t,
		xdr.NewMuxedAccount(kp.PublicKey()),
		bumpEnv.FeeBump.Tx.InnerTx.Tx.SourceAccount,
	)
}

func TestFeeBumpSign(t *testing.T) {
	kp := test.Keypair(0x01)
	feeSource := test.Keypair(0x03)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	inner, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		Build()
	require.NoError(t, err)
	bump, err := txnbuild.NewFeeBumpTransaction(feeSource.Address(), 200, inner)
	require.NoError(t, err)
	passphrase := network.TestNetworkPassphrase
	require.NoError(t, bump.Sign(passphrase, feeSource))
	hash, err := bump.Hash(passphrase)
	require.NoError(t, err)
	sigs := bump.Signatures()
	require.Len(t, sigs, 1)
	assert.True(t, feeSource.Verify(hash[:], sigs[0].Signature))
	// fee bump and inner hashes differ (different envelope tags)
	innerHash, err := inner.Hash(passphrase)
	require.NoError(t, err)
	assert.NotEqual(t, innerHash, hash)
}

func TestSignWithSecretSeeds(t *testing.T) {
	kp := test.Keypair(0x01)
	seed, err := kp.Seed()
	require.NoError(t, err)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	tx, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		Build()
	require.NoError(t, err)
	passphrase := network.TestNetworkPassphrase
	require.NoError(t, tx.SignWithSecretSeeds(passphrase, seed))
	hash, err := tx.Hash(passphrase)
	require.NoError(t, err)
	sigs := tx.Signatures()
	require.Len(t, sigs, 1)
	assert.True(t, kp.Verify(hash[:], sigs[0].Signature))

	assert.Error(t, tx.SignWithSecretSeeds(passphrase, "not a seed"))
}

func TestAddSignatureBase64(t *testing.T) {
	kp := test.Keypair(0x01)
	account := txnbuild.NewSimpleAccount(kp.Address(), 0)
	tx, err := txnbuild.NewBuilder(account).
		AddOperation(testBumpOp()).
		Build()
	require.NoError(t, err)
	passphrase := network.TestNetworkPassphrase
	hash, err := tx.Hash(passphrase)
	require.NoError(t, err)
	sig, err := kp.Sign(hash[:])
	require.NoError(t, err)
	sigB64 := base64.StdEncoding.EncodeToString(sig)

	require.NoError(t, tx.AddSignatureBase64(passphrase, kp.Address(), sigB64))
	sigs := tx.Signatures()
	require.Len(t, sigs, 1)
	assert.Equal(t, kp.Hint(), sigs[0].Hint)

	// a signature from another key is rejected
	other := test.Keypair(0x02)
	err = tx.AddSignatureBase64(passphrase, other.Address(), sigB64)
	assert.Error(t, err)
	assert.Len(t, tx.Signatures(), 1)
}

func TestSorobanDataBuilderFromBase64(t *testing.T) {
	data := txnbuild.NewSorobanDataBuilder().
		SetResources(2_000_000, 100, 200).
		SetResourceFee(7500).
		Build()
	b64, err := xdr.EncodeBase64(&data)
	require.NoError(t, err)
	rebuilt := txnbuild.NewSorobanDataBuilder()
	require.NoError(t, rebuilt.FromBase64(b64))
	assert.Equal(t, data, rebuilt.Build())
	assert.Error(t, rebuilt.FromBase64("not base64 xdr"))
}

func TestOperationValidation(t *testing.T) {
	testDefs := []struct {
		name string
		op   txnbuild.Operation
	}{
		{
			name: "create account bad destination",
			op:   &txnbuild.CreateAccount{Destination: "bogus", Amount: 1},
		},
		{
			name: "create account zero balance",
			op: &txnbuild.CreateAccount{
				Destination: test.Keypair(0x02).Address(),
				Amount:      0,
			},
		},
		{
			name: "payment negative amount",
			op: &txnbuild.Payment{
				Destination: test.Keypair(0x02).Address(),
				Asset:       xdr.NewNativeAsset(),
				Amount:      -1,
			},
		},
		{
			name: "manage data oversized name",
			op: &txnbuild.ManageData{
				Name: string(make([]byte, 65)),
			},
		},
	}
	for _, testDef := range testDefs {
		assert.Error(t, testDef.op.Validate(), testDef.name)
	}
}
