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
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math"

	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/xdr"
)

// MinBaseFee is the network minimum per-operation fee
const MinBaseFee = 100

// Transaction is a built, signable transaction. It is immutable except
// for its signature list, which only ever grows. Wrapping it in a fee
// bump does not alter it.
type Transaction struct {
	tx         xdr.Transaction
	signatures []xdr.DecoratedSignature
	v0         *xdr.TransactionV0
}

// SourceAccount returns the transaction source
func (t *Transaction) SourceAccount() xdr.MuxedAccount {
	return t.tx.SourceAccount
}

// Fee returns the total fee
func (t *Transaction) Fee() uint32 {
	return t.tx.Fee
}

// SequenceNumber returns the consumed sequence number
func (t *Transaction) SequenceNumber() int64 {
	return t.tx.SeqNum
}

// Memo returns the attached memo
func (t *Transaction) Memo() xdr.Memo {
	return t.tx.Memo
}

// Operations returns the operation list in order
func (t *Transaction) Operations() []xdr.Operation {
	return t.tx.Operations
}

// SorobanData returns the attached resource data, if any
func (t *Transaction) SorobanData() *xdr.SorobanTransactionData {
	return t.tx.Ext.SorobanData
}

// Signatures returns a copy of the signature list
func (t *Transaction) Signatures() []xdr.DecoratedSignature {
	out := make([]xdr.DecoratedSignature, len(t.signatures))
	copy(out, t.signatures)
	return out
}

// SignatureBase returns the bytes every signature covers: the network id
// concatenated with the tagged transaction, XDR-encoded. Legacy
// transactions sign with the current tag, so upgrading an envelope does
// not invalidate signatures.
func (t *Transaction) SignatureBase(networkPassphrase string) ([]byte, error) {
	networkID, err := network.ID(networkPassphrase)
	if err != nil {
		return nil, err
	}
	payload := xdr.TransactionSignaturePayload{
		NetworkID: xdr.Hash(networkID),
		TaggedTransaction: xdr.TaggedTransaction{
			Type: xdr.EnvelopeTypeTx,
			Tx:   &t.tx,
		},
	}
	return xdr.Encode(&payload)
}

// Hash returns the SHA-256 of the signature base, which is also the
// transaction's network identifier
func (t *Transaction) Hash(networkPassphrase string) ([32]byte, error) {
	base, err := t.SignatureBase(networkPassphrase)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(base), nil
}

// Sign appends one decorated signature per keypair. Signatures are not
// deduplicated; signing twice with the same key appends two.
func (t *Transaction) Sign(
	networkPassphrase string,
	kps ...*keypair.KeyPair,
) error {
	hash, err := t.Hash(networkPassphrase)
	if err != nil {
		return err
	}
	for _, kp := range kps {
		sig, err := kp.SignDecorated(hash[:])
		if err != nil {
			return err
		}
		t.signatures = append(t.signatures, sig)
	}
	return nil
}

// SignWithSecretSeeds signs with keys given in their strkey seed form
func (t *Transaction) SignWithSecretSeeds(
	networkPassphrase string,
	seeds ...string,
) error {
	kps := make([]*keypair.KeyPair, len(seeds))
	for i, seed := range seeds {
		kp, err := keypair.FromSecretSeed(seed)
		if err != nil {
			return err
		}
		kps[i] = kp
	}
	return t.Sign(networkPassphrase, kps...)
}

// AddSignatureDecorated appends externally produced signatures
func (t *Transaction) AddSignatureDecorated(
	sigs ...xdr.DecoratedSignature,
) {
	t.signatures = append(t.signatures, sigs...)
}

// AddSignatureBase64 appends an externally produced signature given in
// base64, verifying it against the named public key before accepting it
func (t *Transaction) AddSignatureBase64(
	networkPassphrase string,
	publicKey string,
	signatureB64 string,
) error {
	kp, err := keypair.FromAccountID(publicKey)
	if err != nil {
		return fmt.Errorf("invalid public key %q: %w", publicKey, err)
	}
	sig, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return fmt.Errorf("invalid base64 signature: %w", err)
	}
	hash, err := t.Hash(networkPassphrase)
	if err != nil {
		return err
	}
	if !kp.Verify(hash[:], sig) {
		return fmt.Errorf(
			"signature does not verify against public key %q",
			publicKey,
		)
	}
	t.signatures = append(t.signatures, xdr.DecoratedSignature{
		Hint:      kp.Hint(),
		Signature: sig,
	})
	return nil
}

// ToEnvelope wraps the transaction and its signatures. A transaction
// decoded from a legacy envelope re-encodes in legacy form.
func (t *Transaction) ToEnvelope() xdr.TransactionEnvelope {
	if t.v0 != nil {
		return xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeTxV0,
			V0: &xdr.TransactionV0Envelope{
				Tx:         *t.v0,
				Signatures: t.signatures,
			},
		}
	}
	return xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTx,
		V1: &xdr.TransactionV1Envelope{
			Tx:         t.tx,
			Signatures: t.signatures,
		},
	}
}

// MarshalBinary returns the XDR encoding of the envelope
func (t *Transaction) MarshalBinary() ([]byte, error) {
	env := t.ToEnvelope()
	return xdr.Encode(&env)
}

// Base64 returns the base64 XDR encoding of the envelope
func (t *Transaction) Base64() (string, error) {
	env := t.ToEnvelope()
	return xdr.EncodeBase64(&env)
}

// FeeBumpTransaction wraps a signed transaction with a replacement fee
// paid by the fee source. The inner transaction is carried unchanged.
type FeeBumpTransaction struct {
	tx         xdr.FeeBumpTransaction
	signatures []xdr.DecoratedSignature
	inner      *Transaction
}

// NewFeeBumpTransaction wraps inner, paying baseFee per operation
// (counting the wrapper itself as one) plus the inner resource fee.
// The base fee must meet the network minimum and must not undercut the
// inner transaction's own per-operation fee. A legacy inner envelope is
// upgraded to the current form, keeping its signatures.
func NewFeeBumpTransaction(
	feeSource string,
	baseFee int64,
	inner *Transaction,
) (*FeeBumpTransaction, error) {
	if inner == nil {
		return nil, fmt.Errorf("inner transaction is required")
	}
	source, err := xdr.MuxedAccountFromAddress(feeSource)
	if err != nil {
		return nil, fmt.Errorf("invalid fee source %q: %w", feeSource, err)
	}
	if baseFee < MinBaseFee {
		return nil, fmt.Errorf(
			"base fee %d is below the network minimum %d",
			baseFee,
			MinBaseFee,
		)
	}
	numOps := int64(len(inner.tx.Operations))
	if numOps == 0 {
		return nil, fmt.Errorf("inner transaction has no operations")
	}
	var resourceFee int64
	if inner.tx.Ext.SorobanData != nil {
		resourceFee = inner.tx.Ext.SorobanData.ResourceFee
	}
	innerBaseFee := (int64(inner.tx.Fee) - resourceFee + numOps - 1) / numOps
	if baseFee < innerBaseFee {
		return nil, fmt.Errorf(
			"base fee %d is below the inner per-operation fee %d",
			baseFee,
			innerBaseFee,
		)
	}
	// the wrapper counts as one extra operation
	fee := baseFee*(numOps+1) + resourceFee
	innerCopy := *inner
	innerCopy.v0 = nil
	return &FeeBumpTransaction{
		tx: xdr.FeeBumpTransaction{
			FeeSource: source,
			Fee:       fee,
			InnerTx: xdr.TransactionV1Envelope{
				Tx:         innerCopy.tx,
				Signatures: innerCopy.signatures,
			},
		},
		inner: &innerCopy,
	}, nil
}

// FeeSource returns the account paying the replacement fee
func (t *FeeBumpTransaction) FeeSource() xdr.MuxedAccount {
	return t.tx.FeeSource
}

// Fee returns the total replacement fee
func (t *FeeBumpTransaction) Fee() int64 {
	return t.tx.Fee
}

// InnerTransaction returns the wrapped transaction
func (t *FeeBumpTransaction) InnerTransaction() *Transaction {
	return t.inner
}

// Signatures returns a copy of the fee source's signature list
func (t *FeeBumpTransaction) Signatures() []xdr.DecoratedSignature {
	out := make([]xdr.DecoratedSignature, len(t.signatures))
	copy(out, t.signatures)
	return out
}

// SignatureBase returns the bytes the fee source's signatures cover
func (t *FeeBumpTransaction) SignatureBase(
	networkPassphrase string,
) ([]byte, error) {
	networkID, err := network.ID(networkPassphrase)
	if err != nil {
		return nil, err
	}
	payload := xdr.TransactionSignaturePayload{
		NetworkID: xdr.Hash(networkID),
		TaggedTransaction: xdr.TaggedTransaction{
			Type:    xdr.EnvelopeTypeTxFeeBump,
			FeeBump: &t.tx,
		},
	}
	return xdr.Encode(&payload)
}

// Hash returns the SHA-256 of the signature base
func (t *FeeBumpTransaction) Hash(
	networkPassphrase string,
) ([32]byte, error) {
	base, err := t.SignatureBase(networkPassphrase)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(base), nil
}

// Sign appends one decorated signature per keypair
func (t *FeeBumpTransaction) Sign(
	networkPassphrase string,
	kps ...*keypair.KeyPair,
) error {
	hash, err := t.Hash(networkPassphrase)
	if err != nil {
		return err
	}
	for _, kp := range kps {
		sig, err := kp.SignDecorated(hash[:])
		if err != nil {
			return err
		}
		t.signatures = append(t.signatures, sig)
	}
	return nil
}

// ToEnvelope wraps the fee bump and its signatures
func (t *FeeBumpTransaction) ToEnvelope() xdr.TransactionEnvelope {
	return xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTxFeeBump,
		FeeBump: &xdr.FeeBumpTransactionEnvelope{
			Tx:         t.tx,
			Signatures: t.signatures,
		},
	}
}

// Base64 returns the base64 XDR encoding of the envelope
func (t *FeeBumpTransaction) Base64() (string, error) {
	env := t.ToEnvelope()
	return xdr.EncodeBase64(&env)
}

// GenericTransaction holds either a plain or a fee bump transaction,
// as decoded from an envelope
type GenericTransaction struct {
	simple  *Transaction
	feeBump *FeeBumpTransaction
}

// Transaction returns the plain transaction, if that is what was
// decoded
func (t *GenericTransaction) Transaction() (*Transaction, bool) {
	return t.simple, t.simple != nil
}

// FeeBump returns the fee bump transaction, if that is what was
// decoded
func (t *GenericTransaction) FeeBump() (*FeeBumpTransaction, bool) {
	return t.feeBump, t.feeBump != nil
}

// TransactionFromXDR decodes a base64 envelope into a transaction
func TransactionFromXDR(envelopeB64 string) (*GenericTransaction, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.DecodeBase64(envelopeB64, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	switch env.Type {
	case xdr.EnvelopeTypeTxV0:
		v0 := env.V0.Tx
		return &GenericTransaction{
			simple: &Transaction{
				tx:         v0.V1(),
				signatures: env.V0.Signatures,
				v0:         &v0,
			},
		}, nil
	case xdr.EnvelopeTypeTx:
		return &GenericTransaction{
			simple: &Transaction{
				tx:         env.V1.Tx,
				signatures: env.V1.Signatures,
			},
		}, nil
	case xdr.EnvelopeTypeTxFeeBump:
		inner := &Transaction{
			tx:         env.FeeBump.Tx.InnerTx.Tx,
			signatures: env.FeeBump.Tx.InnerTx.Signatures,
		}
		return &GenericTransaction{
			feeBump: &FeeBumpTransaction{
				tx:         env.FeeBump.Tx,
				signatures: env.FeeBump.Signatures,
				inner:      inner,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported envelope type %d", env.Type)
	}
}

func buildFee(baseFee int64, numOps int, resourceFee int64) (uint32, error) {
	fee := baseFee*int64(numOps) + resourceFee
	if fee > math.MaxUint32 {
		return 0, fmt.Errorf("total fee %d exceeds maximum %d", fee, math.MaxUint32)
	}
	return uint32(fee), nil
}
