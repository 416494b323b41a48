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

// Package sorobanauth signs contract authorization entries. Entries
// arrive unsigned from simulation; each identity named by address
// credentials signs the entry's invocation tree, producing a signature
// valid until a chosen ledger. Signing never mutates the caller's
// entry and never touches entries naming other identities, so
// independent parties can sign in any order.
package sorobanauth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/blinklabs-io/gostellar/xdr"
)

// ErrBadSignature is returned when a signer's output does not verify
// against its claimed identity. It indicates a corrupted preimage or a
// faulty signer implementation and fails the whole authorization.
var ErrBadSignature = errors.New(
	"sorobanauth: signature does not verify against signer identity",
)

// Signer is the capability that produces authorization signatures: it
// receives the 32-byte payload hash and returns the signing identity's
// account address together with the signature. Implementations may
// call out to remote signing services; cancellation and timeouts are
// the caller's concern, carried through ctx.
type Signer interface {
	SignAuthPayload(
		ctx context.Context,
		payload []byte,
	) (identity string, signature []byte, err error)
}

// KeypairSigner adapts a local keypair to the Signer capability
type KeypairSigner struct {
	kp *keypair.KeyPair
}

// NewKeypairSigner wraps a keypair holding a private key
func NewKeypairSigner(kp *keypair.KeyPair) *KeypairSigner {
	return &KeypairSigner{kp: kp}
}

func (s *KeypairSigner) SignAuthPayload(
	_ context.Context,
	payload []byte,
) (string, []byte, error) {
	sig, err := s.kp.Sign(payload)
	if err != nil {
		return "", nil, err
	}
	return s.kp.Address(), sig, nil
}

// cloneEntry deep-copies an authorization entry so signing never
// aliases the caller's data
func cloneEntry(
	entry xdr.SorobanAuthorizationEntry,
) (xdr.SorobanAuthorizationEntry, error) {
	var clone xdr.SorobanAuthorizationEntry
	err := copier.CopyWithOption(
		&clone,
		&entry,
		copier.Option{DeepCopy: true},
	)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, fmt.Errorf(
			"cloning authorization entry: %w",
			err,
		)
	}
	return clone, nil
}

// authPayloadHash builds and hashes the preimage an authorization
// signature covers
func authPayloadHash(
	networkPassphrase string,
	nonce int64,
	validUntilLedgerSeq uint32,
	invocation xdr.SorobanAuthorizedInvocation,
) ([32]byte, error) {
	networkID, err := network.ID(networkPassphrase)
	if err != nil {
		return [32]byte{}, err
	}
	preimage := xdr.HashIDPreimage{
		Type: xdr.EnvelopeTypeSorobanAuthorization,
		SorobanAuthorization: &xdr.HashIDPreimageSorobanAuthorization{
			NetworkID:                 xdr.Hash(networkID),
			Nonce:                     nonce,
			SignatureExpirationLedger: validUntilLedgerSeq,
			Invocation:                invocation,
		},
	}
	data, err := xdr.Encode(&preimage)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

// credentialSignature encodes a signature in the shape the ledger's
// account-authorization contract expects: a vec holding one map with
// public_key and signature byte entries
func credentialSignature(publicKey []byte, sig []byte) xdr.ScVal {
	return xdr.ScVecVal(xdr.ScMapVal(
		xdr.ScMapEntry{
			Key: xdr.ScSymbol("public_key"),
			Val: xdr.ScBytes(publicKey),
		},
		xdr.ScMapEntry{
			Key: xdr.ScSymbol("signature"),
			Val: xdr.ScBytes(sig),
		},
	))
}

// AuthorizeEntry signs an authorization entry with a local keypair and
// returns the signed copy. Entries without address credentials, and
// entries naming a different identity than the keypair, are returned
// as unchanged copies.
func AuthorizeEntry(
	ctx context.Context,
	entry xdr.SorobanAuthorizationEntry,
	kp *keypair.KeyPair,
	validUntilLedgerSeq uint32,
	networkPassphrase string,
) (xdr.SorobanAuthorizationEntry, error) {
	clone, err := cloneEntry(entry)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	creds := clone.Credentials.Address
	if clone.Credentials.Type != xdr.SorobanCredentialsTypeAddress ||
		creds == nil {
		return clone, nil
	}
	addr, err := creds.Address.String()
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	if addr != kp.Address() {
		return clone, nil
	}
	return AuthorizeEntryWithSigner(
		ctx,
		entry,
		NewKeypairSigner(kp),
		validUntilLedgerSeq,
		networkPassphrase,
	)
}

// AuthorizeEntryWithSigner signs an authorization entry through an
// abstract Signer capability. The caller's entry is never mutated.
// Entries without address credentials, and entries whose address does
// not match the identity the signer reports, are returned as unchanged
// copies. The returned signature is independently re-verified against
// the signer's claimed identity before being accepted.
func AuthorizeEntryWithSigner(
	ctx context.Context,
	entry xdr.SorobanAuthorizationEntry,
	signer Signer,
	validUntilLedgerSeq uint32,
	networkPassphrase string,
) (xdr.SorobanAuthorizationEntry, error) {
	clone, err := cloneEntry(entry)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	creds := clone.Credentials.Address
	if clone.Credentials.Type != xdr.SorobanCredentialsTypeAddress ||
		creds == nil {
		return clone, nil
	}
	addr, err := creds.Address.String()
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	hash, err := authPayloadHash(
		networkPassphrase,
		creds.Nonce,
		validUntilLedgerSeq,
		clone.RootInvocation,
	)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	identity, sig, err := signer.SignAuthPayload(ctx, hash[:])
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, fmt.Errorf(
			"signing authorization payload: %w",
			err,
		)
	}
	if identity != addr {
		// the signer is not the identity this entry names
		return clone, nil
	}
	verifier, err := keypair.FromAccountID(identity)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, fmt.Errorf(
			"invalid signer identity %q: %w",
			identity,
			err,
		)
	}
	if !verifier.Verify(hash[:], sig) {
		return xdr.SorobanAuthorizationEntry{}, fmt.Errorf(
			"%w: identity %q",
			ErrBadSignature,
			identity,
		)
	}
	publicKey, err := strkey.Decode(strkey.VersionByteAccountID, identity)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	creds.SignatureExpirationLedger = validUntilLedgerSeq
	creds.Signature = credentialSignature(publicKey, sig)
	return clone, nil
}

// AuthorizeInvocation builds and signs a brand-new authorization entry
// for an invocation tree with a local keypair, using a fresh random
// nonce
func AuthorizeInvocation(
	ctx context.Context,
	kp *keypair.KeyPair,
	validUntilLedgerSeq uint32,
	invocation xdr.SorobanAuthorizedInvocation,
	networkPassphrase string,
) (xdr.SorobanAuthorizationEntry, error) {
	return AuthorizeInvocationWithSigner(
		ctx,
		NewKeypairSigner(kp),
		kp.Address(),
		validUntilLedgerSeq,
		invocation,
		networkPassphrase,
	)
}

// AuthorizeInvocationWithSigner builds and signs a brand-new
// authorization entry for an invocation tree through an abstract
// Signer. signerAddress names the identity the entry's credentials
// will carry.
func AuthorizeInvocationWithSigner(
	ctx context.Context,
	signer Signer,
	signerAddress string,
	validUntilLedgerSeq uint32,
	invocation xdr.SorobanAuthorizedInvocation,
	networkPassphrase string,
) (xdr.SorobanAuthorizationEntry, error) {
	address, err := xdr.ScAddressFromString(signerAddress)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, fmt.Errorf(
			"invalid signer address %q: %w",
			signerAddress,
			err,
		)
	}
	nonce, err := randomNonce()
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:   address,
				Nonce:     nonce,
				Signature: xdr.ScVoid(),
			},
		},
		RootInvocation: invocation,
	}
	return AuthorizeEntryWithSigner(
		ctx,
		entry,
		signer,
		validUntilLedgerSeq,
		networkPassphrase,
	)
}

// randomNonce draws a replay-protection nonce from the system's
// entropy source; safe for concurrent use
func randomNonce() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("generating nonce: %w", err)
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
