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

package xdr

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gostellar/strkey"
)

const (
	HashSize    = 32
	Uint256Size = 32
)

// Hash is a 32-byte SHA-256 digest
type Hash [HashSize]byte

func NewHash(data []byte) Hash {
	h := Hash{}
	copy(h[:], data)
	return h
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h *Hash) EncodeTo(e *Encoder) error {
	return e.EncodeFixedOpaque(h[:])
}

func (h *Hash) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(HashSize)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// Uint256 is a 32-byte fixed opaque, used for ed25519 key material
type Uint256 [Uint256Size]byte

func (u Uint256) Bytes() []byte {
	return u[:]
}

func (u *Uint256) EncodeTo(e *Encoder) error {
	return e.EncodeFixedOpaque(u[:])
}

func (u *Uint256) DecodeFrom(d *Decoder) error {
	b, err := d.DecodeFixedOpaque(Uint256Size)
	if err != nil {
		return err
	}
	copy(u[:], b)
	return nil
}

type PublicKeyType int32

const (
	PublicKeyTypeEd25519 PublicKeyType = 0
)

// PublicKey is the wire form of an account public key
type PublicKey struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

// AccountID identifies an account on the ledger
type AccountID = PublicKey

// NewAccountID wraps raw ed25519 public key bytes
func NewAccountID(ed25519 [32]byte) AccountID {
	key := Uint256(ed25519)
	return AccountID{Type: PublicKeyTypeEd25519, Ed25519: &key}
}

// AccountIDFromAddress parses a 'G' strkey
func AccountIDFromAddress(address string) (AccountID, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return AccountID{}, err
	}
	var key Uint256
	copy(key[:], raw)
	return AccountID{Type: PublicKeyTypeEd25519, Ed25519: &key}, nil
}

// Address returns the 'G' strkey form
func (k PublicKey) Address() string {
	if k.Ed25519 == nil {
		return ""
	}
	return strkey.MustEncode(strkey.VersionByteAccountID, k.Ed25519[:])
}

// Equals compares by key type and material
func (k PublicKey) Equals(other PublicKey) bool {
	if k.Type != other.Type {
		return false
	}
	if k.Ed25519 == nil || other.Ed25519 == nil {
		return k.Ed25519 == other.Ed25519
	}
	return *k.Ed25519 == *other.Ed25519
}

func (k *PublicKey) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(k.Type)); err != nil {
		return err
	}
	switch k.Type {
	case PublicKeyTypeEd25519:
		if k.Ed25519 == nil {
			return fmt.Errorf("xdr: public key has no ed25519 material")
		}
		return k.Ed25519.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown public key type %d", k.Type)
	}
}

func (k *PublicKey) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	k.Type = PublicKeyType(t)
	switch k.Type {
	case PublicKeyTypeEd25519:
		k.Ed25519 = new(Uint256)
		return k.Ed25519.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown public key type %d", t)
	}
}

type CryptoKeyType int32

const (
	CryptoKeyTypeEd25519              CryptoKeyType = 0
	CryptoKeyTypePreAuthTx            CryptoKeyType = 1
	CryptoKeyTypeHashX                CryptoKeyType = 2
	CryptoKeyTypeEd25519SignedPayload CryptoKeyType = 3
	CryptoKeyTypeMuxedEd25519         CryptoKeyType = 0x100
)

// MuxedAccountMed25519 carries a 64-bit multiplexing id alongside the
// underlying ed25519 key
type MuxedAccountMed25519 struct {
	ID      uint64
	Ed25519 Uint256
}

func (m *MuxedAccountMed25519) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint64(m.ID); err != nil {
		return err
	}
	return m.Ed25519.EncodeTo(e)
}

func (m *MuxedAccountMed25519) DecodeFrom(d *Decoder) error {
	var err error
	if m.ID, err = d.DecodeUint64(); err != nil {
		return err
	}
	return m.Ed25519.DecodeFrom(d)
}

// MuxedAccount is either a plain account key or a key plus a multiplexing
// id. The string form is 'M' only when an id is present, 'G' otherwise,
// and both forms round-trip exactly.
type MuxedAccount struct {
	Type     CryptoKeyType
	Ed25519  *Uint256
	Med25519 *MuxedAccountMed25519
}

// NewMuxedAccount wraps raw ed25519 key bytes as an unmultiplexed account
func NewMuxedAccount(ed25519 [32]byte) MuxedAccount {
	key := Uint256(ed25519)
	return MuxedAccount{Type: CryptoKeyTypeEd25519, Ed25519: &key}
}

// NewMuxedAccountWithID wraps key bytes plus a multiplexing id
func NewMuxedAccountWithID(ed25519 [32]byte, id uint64) MuxedAccount {
	return MuxedAccount{
		Type: CryptoKeyTypeMuxedEd25519,
		Med25519: &MuxedAccountMed25519{
			ID:      id,
			Ed25519: Uint256(ed25519),
		},
	}
}

// MuxedAccountFromAddress parses either a 'G' or 'M' strkey
func MuxedAccountFromAddress(address string) (MuxedAccount, error) {
	if strkey.IsValid(strkey.VersionByteAccountID, address) {
		raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
		if err != nil {
			return MuxedAccount{}, err
		}
		var key [32]byte
		copy(key[:], raw)
		return NewMuxedAccount(key), nil
	}
	raw, err := strkey.Decode(strkey.VersionByteMuxedAccount, address)
	if err != nil {
		return MuxedAccount{}, err
	}
	// 32-byte ed25519 key followed by the 8-byte big-endian id
	var key [32]byte
	copy(key[:], raw[:32])
	id := binary.BigEndian.Uint64(raw[32:40])
	return NewMuxedAccountWithID(key, id), nil
}

// Address returns the 'M' strkey form when a multiplexing id is present,
// 'G' form otherwise
func (m MuxedAccount) Address() string {
	switch m.Type {
	case CryptoKeyTypeEd25519:
		if m.Ed25519 == nil {
			return ""
		}
		return strkey.MustEncode(strkey.VersionByteAccountID, m.Ed25519[:])
	case CryptoKeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return ""
		}
		raw := make([]byte, 0, 40)
		raw = append(raw, m.Med25519.Ed25519[:]...)
		raw = binary.BigEndian.AppendUint64(raw, m.Med25519.ID)
		return strkey.MustEncode(strkey.VersionByteMuxedAccount, raw)
	default:
		return ""
	}
}

// ToAccountID strips any multiplexing id
func (m MuxedAccount) ToAccountID() (AccountID, error) {
	switch m.Type {
	case CryptoKeyTypeEd25519:
		if m.Ed25519 == nil {
			return AccountID{}, fmt.Errorf("xdr: muxed account has no ed25519 material")
		}
		return NewAccountID(*m.Ed25519), nil
	case CryptoKeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return AccountID{}, fmt.Errorf("xdr: muxed account has no med25519 material")
		}
		return NewAccountID(m.Med25519.Ed25519), nil
	default:
		return AccountID{}, fmt.Errorf("xdr: unknown muxed account type %d", m.Type)
	}
}

func (m *MuxedAccount) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(m.Type)); err != nil {
		return err
	}
	switch m.Type {
	case CryptoKeyTypeEd25519:
		if m.Ed25519 == nil {
			return fmt.Errorf("xdr: muxed account has no ed25519 material")
		}
		return m.Ed25519.EncodeTo(e)
	case CryptoKeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return fmt.Errorf("xdr: muxed account has no med25519 material")
		}
		return m.Med25519.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown muxed account type %d", m.Type)
	}
}

func (m *MuxedAccount) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	m.Type = CryptoKeyType(t)
	switch m.Type {
	case CryptoKeyTypeEd25519:
		m.Ed25519 = new(Uint256)
		return m.Ed25519.DecodeFrom(d)
	case CryptoKeyTypeMuxedEd25519:
		m.Med25519 = new(MuxedAccountMed25519)
		return m.Med25519.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown muxed account type %d", t)
	}
}

type SignerKeyType int32

const (
	SignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

// SignerKeyEd25519SignedPayload is the signed-payload signer variant
type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

func (p *SignerKeyEd25519SignedPayload) EncodeTo(e *Encoder) error {
	if len(p.Payload) > 64 {
		return fmt.Errorf(
			"xdr: signed payload is %d bytes, maximum is 64",
			len(p.Payload),
		)
	}
	if err := p.Ed25519.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeOpaque(p.Payload)
}

func (p *SignerKeyEd25519SignedPayload) DecodeFrom(d *Decoder) error {
	if err := p.Ed25519.DecodeFrom(d); err != nil {
		return err
	}
	payload, err := d.DecodeOpaque()
	if err != nil {
		return err
	}
	if len(payload) > 64 {
		return fmt.Errorf(
			"xdr: signed payload is %d bytes, maximum is 64",
			len(payload),
		)
	}
	p.Payload = payload
	return nil
}

// SignerKey is a key that can satisfy a transaction precondition or an
// account signer entry
type SignerKey struct {
	Type          SignerKeyType
	Ed25519       *Uint256
	PreAuthTx     *Uint256
	HashX         *Uint256
	SignedPayload *SignerKeyEd25519SignedPayload
}

// SignerKeyFromAddress parses any of the signer strkey kinds
// ('G', 'T', 'X', 'P')
func SignerKeyFromAddress(address string) (SignerKey, error) {
	version, err := strkey.Version(address)
	if err != nil {
		return SignerKey{}, err
	}
	switch version {
	case strkey.VersionByteAccountID:
		raw, err := strkey.Decode(version, address)
		if err != nil {
			return SignerKey{}, err
		}
		key := Uint256(NewHash(raw))
		return SignerKey{Type: SignerKeyTypeEd25519, Ed25519: &key}, nil
	case strkey.VersionBytePreAuthTx:
		raw, err := strkey.Decode(version, address)
		if err != nil {
			return SignerKey{}, err
		}
		key := Uint256(NewHash(raw))
		return SignerKey{Type: SignerKeyTypePreAuthTx, PreAuthTx: &key}, nil
	case strkey.VersionByteHashX:
		raw, err := strkey.Decode(version, address)
		if err != nil {
			return SignerKey{}, err
		}
		key := Uint256(NewHash(raw))
		return SignerKey{Type: SignerKeyTypeHashX, HashX: &key}, nil
	case strkey.VersionByteSignedPayload:
		sp, err := strkey.DecodeSignedPayload(address)
		if err != nil {
			return SignerKey{}, err
		}
		return SignerKey{
			Type: SignerKeyTypeEd25519SignedPayload,
			SignedPayload: &SignerKeyEd25519SignedPayload{
				Ed25519: Uint256(sp.Ed25519),
				Payload: sp.Payload,
			},
		}, nil
	default:
		return SignerKey{}, fmt.Errorf(
			"strkey: version byte %#x is not a signer key kind",
			byte(version),
		)
	}
}

// Address returns the strkey form of the signer key
func (k SignerKey) Address() (string, error) {
	switch k.Type {
	case SignerKeyTypeEd25519:
		if k.Ed25519 == nil {
			return "", fmt.Errorf("xdr: signer key has no ed25519 material")
		}
		return strkey.Encode(strkey.VersionByteAccountID, k.Ed25519[:])
	case SignerKeyTypePreAuthTx:
		if k.PreAuthTx == nil {
			return "", fmt.Errorf("xdr: signer key has no pre-auth-tx hash")
		}
		return strkey.Encode(strkey.VersionBytePreAuthTx, k.PreAuthTx[:])
	case SignerKeyTypeHashX:
		if k.HashX == nil {
			return "", fmt.Errorf("xdr: signer key has no hash-x material")
		}
		return strkey.Encode(strkey.VersionByteHashX, k.HashX[:])
	case SignerKeyTypeEd25519SignedPayload:
		if k.SignedPayload == nil {
			return "", fmt.Errorf("xdr: signer key has no signed payload")
		}
		sp, err := strkey.NewSignedPayload(
			[32]byte(k.SignedPayload.Ed25519),
			k.SignedPayload.Payload,
		)
		if err != nil {
			return "", err
		}
		return sp.Encode()
	default:
		return "", fmt.Errorf("xdr: unknown signer key type %d", k.Type)
	}
}

func (k *SignerKey) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(k.Type)); err != nil {
		return err
	}
	switch k.Type {
	case SignerKeyTypeEd25519:
		if k.Ed25519 == nil {
			return fmt.Errorf("xdr: signer key has no ed25519 material")
		}
		return k.Ed25519.EncodeTo(e)
	case SignerKeyTypePreAuthTx:
		if k.PreAuthTx == nil {
			return fmt.Errorf("xdr: signer key has no pre-auth-tx hash")
		}
		return k.PreAuthTx.EncodeTo(e)
	case SignerKeyTypeHashX:
		if k.HashX == nil {
			return fmt.Errorf("xdr: signer key has no hash-x material")
		}
		return k.HashX.EncodeTo(e)
	case SignerKeyTypeEd25519SignedPayload:
		if k.SignedPayload == nil {
			return fmt.Errorf("xdr: signer key has no signed payload")
		}
		return k.SignedPayload.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown signer key type %d", k.Type)
	}
}

func (k *SignerKey) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	k.Type = SignerKeyType(t)
	switch k.Type {
	case SignerKeyTypeEd25519:
		k.Ed25519 = new(Uint256)
		return k.Ed25519.DecodeFrom(d)
	case SignerKeyTypePreAuthTx:
		k.PreAuthTx = new(Uint256)
		return k.PreAuthTx.DecodeFrom(d)
	case SignerKeyTypeHashX:
		k.HashX = new(Uint256)
		return k.HashX.DecodeFrom(d)
	case SignerKeyTypeEd25519SignedPayload:
		k.SignedPayload = new(SignerKeyEd25519SignedPayload)
		return k.SignedPayload.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown signer key type %d", t)
	}
}

const maxSignatureSize = 64

// DecoratedSignature pairs a signature with a 4-byte hint identifying the
// signer (the last 4 bytes of the public key)
type DecoratedSignature struct {
	Hint      [4]byte
	Signature []byte
}

func (s *DecoratedSignature) EncodeTo(e *Encoder) error {
	if len(s.Signature) > maxSignatureSize {
		return fmt.Errorf(
			"xdr: signature is %d bytes, maximum is %d",
			len(s.Signature),
			maxSignatureSize,
		)
	}
	if err := e.EncodeFixedOpaque(s.Hint[:]); err != nil {
		return err
	}
	return e.EncodeOpaque(s.Signature)
}

func (s *DecoratedSignature) DecodeFrom(d *Decoder) error {
	hint, err := d.DecodeFixedOpaque(4)
	if err != nil {
		return err
	}
	copy(s.Hint[:], hint)
	sig, err := d.DecodeOpaque()
	if err != nil {
		return err
	}
	if len(sig) > maxSignatureSize {
		return fmt.Errorf(
			"xdr: signature is %d bytes, maximum is %d",
			len(sig),
			maxSignatureSize,
		)
	}
	s.Signature = sig
	return nil
}
