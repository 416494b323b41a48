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

// Package keypair provides ed25519 signing identities addressed by
// their strkey forms: 'G' addresses for public keys and 'S' seeds for
// secrets. A KeyPair built from an address alone can verify but not
// sign.
package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/blinklabs-io/gostellar/xdr"
)

var (
	// ErrCannotSign is returned when signing is requested of a
	// verify-only keypair
	ErrCannotSign = errors.New("keypair: no secret seed, cannot sign")
	// ErrInvalidSeed is returned for malformed secret seed input
	ErrInvalidSeed = errors.New("keypair: invalid secret seed")
)

// KeyPair holds an ed25519 public key and, when built from a seed, the
// matching private key. The zero value is not usable; construct via
// Random, FromSecretSeed, FromRawSeed, FromAccountID or FromPublicKey.
type KeyPair struct {
	public  ed25519.PublicKey
	private ed25519.PrivateKey
}

// Random generates a new keypair from the system's entropy source
func Random() (*KeyPair, error) {
	var seed [ed25519.SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("keypair: reading entropy: %w", err)
	}
	return FromRawSeed(seed)
}

// FromSecretSeed builds a full keypair from an 'S' strkey seed
func FromSecretSeed(seed string) (*KeyPair, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	var rawSeed [ed25519.SeedSize]byte
	copy(rawSeed[:], raw)
	return FromRawSeed(rawSeed)
}

// FromRawSeed builds a full keypair from 32 raw seed bytes
func FromRawSeed(seed [ed25519.SeedSize]byte) (*KeyPair, error) {
	private := ed25519.NewKeyFromSeed(seed[:])
	public, ok := private.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("keypair: unexpected public key type")
	}
	return &KeyPair{public: public, private: private}, nil
}

// FromAccountID builds a verify-only keypair from a 'G' address
func FromAccountID(address string) (*KeyPair, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return nil, fmt.Errorf("keypair: invalid account id %q: %w", address, err)
	}
	return &KeyPair{public: ed25519.PublicKey(raw)}, nil
}

// FromPublicKey builds a verify-only keypair from 32 raw public key
// bytes
func FromPublicKey(public [ed25519.PublicKeySize]byte) *KeyPair {
	return &KeyPair{public: ed25519.PublicKey(public[:])}
}

// Address returns the 'G' strkey form of the public key
func (kp *KeyPair) Address() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, kp.public)
}

// Seed returns the 'S' strkey form of the secret seed
func (kp *KeyPair) Seed() (string, error) {
	if kp.private == nil {
		return "", ErrCannotSign
	}
	return strkey.Encode(strkey.VersionByteSeed, kp.private.Seed())
}

// PublicKey returns the raw public key bytes
func (kp *KeyPair) PublicKey() [ed25519.PublicKeySize]byte {
	var out [ed25519.PublicKeySize]byte
	copy(out[:], kp.public)
	return out
}

// Hint returns the last four bytes of the public key, used to match
// decorated signatures to signers
func (kp *KeyPair) Hint() [4]byte {
	var hint [4]byte
	copy(hint[:], kp.public[ed25519.PublicKeySize-4:])
	return hint
}

// CanSign reports whether the keypair holds a private key
func (kp *KeyPair) CanSign() bool {
	return kp.private != nil
}

// Equal compares public keys only
func (kp *KeyPair) Equal(other *KeyPair) bool {
	if other == nil {
		return false
	}
	return kp.public.Equal(other.public)
}

// Sign signs the input with the private key
func (kp *KeyPair) Sign(input []byte) ([]byte, error) {
	if kp.private == nil {
		return nil, ErrCannotSign
	}
	return ed25519.Sign(kp.private, input), nil
}

// SignDecorated signs the input and wraps the signature with the public
// key hint
func (kp *KeyPair) SignDecorated(input []byte) (xdr.DecoratedSignature, error) {
	sig, err := kp.Sign(input)
	if err != nil {
		return xdr.DecoratedSignature{}, err
	}
	return xdr.DecoratedSignature{
		Hint:      kp.Hint(),
		Signature: sig,
	}, nil
}

// Verify reports whether sig is a valid signature of input by this
// keypair's public key. Malformed signatures return false, never panic.
func (kp *KeyPair) Verify(input []byte, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(kp.public, input, sig)
}
