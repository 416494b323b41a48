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
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/strkey"
)

type AssetType int32

const (
	AssetTypeNative     AssetType = 0
	AssetTypeAlphaNum4  AssetType = 1
	AssetTypeAlphaNum12 AssetType = 2
	// AssetTypePoolShare only appears inside trustline assets
	AssetTypePoolShare AssetType = 3
)

// AlphaNum4 is a credit asset with a code of up to 4 characters
type AlphaNum4 struct {
	AssetCode [4]byte
	Issuer    AccountID
}

func (a *AlphaNum4) EncodeTo(e *Encoder) error {
	if err := e.EncodeFixedOpaque(a.AssetCode[:]); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AlphaNum4) DecodeFrom(d *Decoder) error {
	code, err := d.DecodeFixedOpaque(4)
	if err != nil {
		return err
	}
	copy(a.AssetCode[:], code)
	return a.Issuer.DecodeFrom(d)
}

// AlphaNum12 is a credit asset with a code of 5 to 12 characters
type AlphaNum12 struct {
	AssetCode [12]byte
	Issuer    AccountID
}

func (a *AlphaNum12) EncodeTo(e *Encoder) error {
	if err := e.EncodeFixedOpaque(a.AssetCode[:]); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AlphaNum12) DecodeFrom(d *Decoder) error {
	code, err := d.DecodeFixedOpaque(12)
	if err != nil {
		return err
	}
	copy(a.AssetCode[:], code)
	return a.Issuer.DecodeFrom(d)
}

// Asset is the native asset or a credit asset identified by code and
// issuer. Immutable once created.
type Asset struct {
	Type       AssetType
	AlphaNum4  *AlphaNum4
	AlphaNum12 *AlphaNum12
}

// NewNativeAsset returns the native asset
func NewNativeAsset() Asset {
	return Asset{Type: AssetTypeNative}
}

// NewCreditAsset builds a credit asset, selecting the 4- or 12-character
// representation from the code length
func NewCreditAsset(code string, issuer string) (Asset, error) {
	if err := validateAssetCode(code); err != nil {
		return Asset{}, err
	}
	issuerID, err := AccountIDFromAddress(issuer)
	if err != nil {
		return Asset{}, fmt.Errorf("invalid asset issuer %q: %w", issuer, err)
	}
	if len(code) <= 4 {
		a := &AlphaNum4{Issuer: issuerID}
		copy(a.AssetCode[:], code)
		return Asset{Type: AssetTypeAlphaNum4, AlphaNum4: a}, nil
	}
	a := &AlphaNum12{Issuer: issuerID}
	copy(a.AssetCode[:], code)
	return Asset{Type: AssetTypeAlphaNum12, AlphaNum12: a}, nil
}

// NewAsset parses the canonical string form: "native" or "CODE:ISSUER"
func NewAsset(canonical string) (Asset, error) {
	if canonical == "native" {
		return NewNativeAsset(), nil
	}
	code, issuer, found := strings.Cut(canonical, ":")
	if !found {
		return Asset{}, fmt.Errorf(
			"invalid asset %q: expected \"native\" or \"CODE:ISSUER\"",
			canonical,
		)
	}
	return NewCreditAsset(code, issuer)
}

func validateAssetCode(code string) error {
	if len(code) < 1 || len(code) > 12 {
		return fmt.Errorf(
			"invalid asset code %q: length %d outside range 1 to 12",
			code,
			len(code),
		)
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return fmt.Errorf(
				"invalid asset code %q: only uppercase letters and digits are allowed",
				code,
			)
		}
	}
	return nil
}

// Code returns the asset code with trailing NULs trimmed, or "" for the
// native asset
func (a Asset) Code() string {
	switch a.Type {
	case AssetTypeAlphaNum4:
		return strings.TrimRight(string(a.AlphaNum4.AssetCode[:]), "\x00")
	case AssetTypeAlphaNum12:
		return strings.TrimRight(string(a.AlphaNum12.AssetCode[:]), "\x00")
	default:
		return ""
	}
}

// Issuer returns the issuer address, or "" for the native asset
func (a Asset) Issuer() string {
	switch a.Type {
	case AssetTypeAlphaNum4:
		return a.AlphaNum4.Issuer.Address()
	case AssetTypeAlphaNum12:
		return a.AlphaNum12.Issuer.Address()
	default:
		return ""
	}
}

// String returns the canonical form accepted by NewAsset
func (a Asset) String() string {
	if a.Type == AssetTypeNative {
		return "native"
	}
	return a.Code() + ":" + a.Issuer()
}

// Equals compares assets structurally
func (a Asset) Equals(other Asset) bool {
	return a.Compare(other) == 0
}

// Compare defines the canonical asset order: native before alphanum4
// before alphanum12, then by code, then by issuer. Liquidity pool asset
// pairs must be sorted by this order.
func (a Asset) Compare(other Asset) int {
	if a.Type != other.Type {
		if a.Type < other.Type {
			return -1
		}
		return 1
	}
	if a.Type == AssetTypeNative {
		return 0
	}
	var codeA, codeB, issuerA, issuerB []byte
	switch a.Type {
	case AssetTypeAlphaNum4:
		codeA, codeB = a.AlphaNum4.AssetCode[:], other.AlphaNum4.AssetCode[:]
		issuerA = a.AlphaNum4.Issuer.Ed25519[:]
		issuerB = other.AlphaNum4.Issuer.Ed25519[:]
	case AssetTypeAlphaNum12:
		codeA, codeB = a.AlphaNum12.AssetCode[:], other.AlphaNum12.AssetCode[:]
		issuerA = a.AlphaNum12.Issuer.Ed25519[:]
		issuerB = other.AlphaNum12.Issuer.Ed25519[:]
	}
	if c := bytes.Compare(codeA, codeB); c != 0 {
		return c
	}
	return bytes.Compare(issuerA, issuerB)
}

// ContractID derives the deterministic contract address of the asset's
// built-in contract on the given network: the SHA-256 of the contract-id
// preimage (network id plus tagged asset), strkey-encoded as a 'C'
// address. Third parties locate the asset contract by this address, so
// the derivation must be bit-exact.
func (a Asset) ContractID(networkPassphrase string) (string, error) {
	networkID, err := network.ID(networkPassphrase)
	if err != nil {
		return "", err
	}
	asset := a
	preimage := HashIDPreimage{
		Type: EnvelopeTypeContractID,
		ContractID: &HashIDPreimageContractID{
			NetworkID: Hash(networkID),
			ContractIDPreimage: ContractIDPreimage{
				Type:      ContractIDPreimageTypeFromAsset,
				FromAsset: &asset,
			},
		},
	}
	data, err := Encode(&preimage)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(data)
	return strkey.Encode(strkey.VersionByteContract, digest[:])
}

func (a *Asset) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeAlphaNum4:
		if a.AlphaNum4 == nil {
			return fmt.Errorf("xdr: alphanum4 asset has no code/issuer")
		}
		return a.AlphaNum4.EncodeTo(e)
	case AssetTypeAlphaNum12:
		if a.AlphaNum12 == nil {
			return fmt.Errorf("xdr: alphanum12 asset has no code/issuer")
		}
		return a.AlphaNum12.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown asset type %d", a.Type)
	}
}

func (a *Asset) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeAlphaNum4:
		a.AlphaNum4 = new(AlphaNum4)
		return a.AlphaNum4.DecodeFrom(d)
	case AssetTypeAlphaNum12:
		a.AlphaNum12 = new(AlphaNum12)
		return a.AlphaNum12.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown asset type %d", t)
	}
}

// TrustLineAsset extends Asset with the liquidity pool share variant used
// in trustline ledger keys
type TrustLineAsset struct {
	Type            AssetType
	AlphaNum4       *AlphaNum4
	AlphaNum12      *AlphaNum12
	LiquidityPoolID *Hash
}

func (a *TrustLineAsset) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeAlphaNum4:
		if a.AlphaNum4 == nil {
			return fmt.Errorf("xdr: alphanum4 trustline asset has no code/issuer")
		}
		return a.AlphaNum4.EncodeTo(e)
	case AssetTypeAlphaNum12:
		if a.AlphaNum12 == nil {
			return fmt.Errorf("xdr: alphanum12 trustline asset has no code/issuer")
		}
		return a.AlphaNum12.EncodeTo(e)
	case AssetTypePoolShare:
		if a.LiquidityPoolID == nil {
			return fmt.Errorf("xdr: pool share trustline asset has no pool id")
		}
		return a.LiquidityPoolID.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown trustline asset type %d", a.Type)
	}
}

func (a *TrustLineAsset) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeAlphaNum4:
		a.AlphaNum4 = new(AlphaNum4)
		return a.AlphaNum4.DecodeFrom(d)
	case AssetTypeAlphaNum12:
		a.AlphaNum12 = new(AlphaNum12)
		return a.AlphaNum12.DecodeFrom(d)
	case AssetTypePoolShare:
		a.LiquidityPoolID = new(Hash)
		return a.LiquidityPoolID.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown trustline asset type %d", t)
	}
}
