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
	"fmt"

	"github.com/blinklabs-io/gostellar/strkey"
)

// ScValType tags the variants of the contract value representation
type ScValType int32

const (
	ScValTypeBool                      ScValType = 0
	ScValTypeVoid                      ScValType = 1
	ScValTypeError                     ScValType = 2
	ScValTypeU32                       ScValType = 3
	ScValTypeI32                       ScValType = 4
	ScValTypeU64                       ScValType = 5
	ScValTypeI64                       ScValType = 6
	ScValTypeTimepoint                 ScValType = 7
	ScValTypeDuration                  ScValType = 8
	ScValTypeU128                      ScValType = 9
	ScValTypeI128                      ScValType = 10
	ScValTypeU256                      ScValType = 11
	ScValTypeI256                      ScValType = 12
	ScValTypeBytes                     ScValType = 13
	ScValTypeString                    ScValType = 14
	ScValTypeSymbol                    ScValType = 15
	ScValTypeVec                       ScValType = 16
	ScValTypeMap                       ScValType = 17
	ScValTypeAddress                   ScValType = 18
	ScValTypeContractInstance          ScValType = 19
	ScValTypeLedgerKeyContractInstance ScValType = 20
	ScValTypeLedgerKeyNonce            ScValType = 21
)

const maxSymbolLen = 32

// UInt128Parts holds an unsigned 128-bit value as two 64-bit words
type UInt128Parts struct {
	Hi uint64
	Lo uint64
}

func (p *UInt128Parts) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint64(p.Hi); err != nil {
		return err
	}
	return e.EncodeUint64(p.Lo)
}

func (p *UInt128Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.Hi, err = d.DecodeUint64(); err != nil {
		return err
	}
	p.Lo, err = d.DecodeUint64()
	return err
}

// Int128Parts holds a signed 128-bit value in two's complement as a
// signed high word and unsigned low word
type Int128Parts struct {
	Hi int64
	Lo uint64
}

func (p *Int128Parts) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt64(p.Hi); err != nil {
		return err
	}
	return e.EncodeUint64(p.Lo)
}

func (p *Int128Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.Hi, err = d.DecodeInt64(); err != nil {
		return err
	}
	p.Lo, err = d.DecodeUint64()
	return err
}

// UInt256Parts holds an unsigned 256-bit value as four 64-bit words
type UInt256Parts struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (p *UInt256Parts) EncodeTo(e *Encoder) error {
	for _, w := range []uint64{p.HiHi, p.HiLo, p.LoHi, p.LoLo} {
		if err := e.EncodeUint64(w); err != nil {
			return err
		}
	}
	return nil
}

func (p *UInt256Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.HiHi, err = d.DecodeUint64(); err != nil {
		return err
	}
	if p.HiLo, err = d.DecodeUint64(); err != nil {
		return err
	}
	if p.LoHi, err = d.DecodeUint64(); err != nil {
		return err
	}
	p.LoLo, err = d.DecodeUint64()
	return err
}

// Int256Parts holds a signed 256-bit value in two's complement
type Int256Parts struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (p *Int256Parts) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt64(p.HiHi); err != nil {
		return err
	}
	for _, w := range []uint64{p.HiLo, p.LoHi, p.LoLo} {
		if err := e.EncodeUint64(w); err != nil {
			return err
		}
	}
	return nil
}

func (p *Int256Parts) DecodeFrom(d *Decoder) error {
	var err error
	if p.HiHi, err = d.DecodeInt64(); err != nil {
		return err
	}
	if p.HiLo, err = d.DecodeUint64(); err != nil {
		return err
	}
	if p.LoHi, err = d.DecodeUint64(); err != nil {
		return err
	}
	p.LoLo, err = d.DecodeUint64()
	return err
}

type ScErrorType int32

const (
	ScErrorTypeContract ScErrorType = 0
	ScErrorTypeWasmVM   ScErrorType = 1
	ScErrorTypeContext  ScErrorType = 2
	ScErrorTypeStorage  ScErrorType = 3
	ScErrorTypeObject   ScErrorType = 4
	ScErrorTypeCrypto   ScErrorType = 5
	ScErrorTypeEvents   ScErrorType = 6
	ScErrorTypeBudget   ScErrorType = 7
	ScErrorTypeValue    ScErrorType = 8
	ScErrorTypeAuth     ScErrorType = 9
)

type ScErrorCode int32

// ScError is a contract-layer error value: contract errors carry a
// user-defined code, the rest carry a well-known error code
type ScError struct {
	Type         ScErrorType
	ContractCode *uint32
	Code         *ScErrorCode
}

func (s *ScError) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(s.Type)); err != nil {
		return err
	}
	switch s.Type {
	case ScErrorTypeContract:
		if s.ContractCode == nil {
			return fmt.Errorf("xdr: contract error has no code")
		}
		return e.EncodeUint32(*s.ContractCode)
	case ScErrorTypeWasmVM, ScErrorTypeContext, ScErrorTypeStorage,
		ScErrorTypeObject, ScErrorTypeCrypto, ScErrorTypeEvents,
		ScErrorTypeBudget, ScErrorTypeValue, ScErrorTypeAuth:
		if s.Code == nil {
			return fmt.Errorf("xdr: error value has no code")
		}
		return e.EncodeInt32(int32(*s.Code))
	default:
		return fmt.Errorf("xdr: unknown error type %d", s.Type)
	}
}

func (s *ScError) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	s.Type = ScErrorType(t)
	switch s.Type {
	case ScErrorTypeContract:
		code, err := d.DecodeUint32()
		if err != nil {
			return err
		}
		s.ContractCode = &code
		return nil
	case ScErrorTypeWasmVM, ScErrorTypeContext, ScErrorTypeStorage,
		ScErrorTypeObject, ScErrorTypeCrypto, ScErrorTypeEvents,
		ScErrorTypeBudget, ScErrorTypeValue, ScErrorTypeAuth:
		code, err := d.DecodeInt32()
		if err != nil {
			return err
		}
		c := ScErrorCode(code)
		s.Code = &c
		return nil
	default:
		return fmt.Errorf("xdr: unknown error type %d", t)
	}
}

// ScVec is an ordered list of contract values
type ScVec []ScVal

func (v *ScVec) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint32(uint32(len(*v))); err != nil {
		return err
	}
	for i := range *v {
		if err := (*v)[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *ScVec) DecodeFrom(d *Decoder) error {
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	vec := ScVec(makeSlice[ScVal](n))
	for i := range vec {
		if err := vec[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	*v = vec
	return nil
}

// ScMapEntry is one key/value pair of a contract map
type ScMapEntry struct {
	Key ScVal
	Val ScVal
}

// ScMap is an ordered list of key/value pairs
type ScMap []ScMapEntry

func (m *ScMap) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint32(uint32(len(*m))); err != nil {
		return err
	}
	for i := range *m {
		if err := (*m)[i].Key.EncodeTo(e); err != nil {
			return err
		}
		if err := (*m)[i].Val.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *ScMap) DecodeFrom(d *Decoder) error {
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	entries := ScMap(makeSlice[ScMapEntry](n))
	for i := range entries {
		if err := entries[i].Key.DecodeFrom(d); err != nil {
			return err
		}
		if err := entries[i].Val.DecodeFrom(d); err != nil {
			return err
		}
	}
	*m = entries
	return nil
}

type ScAddressType int32

const (
	ScAddressTypeAccount          ScAddressType = 0
	ScAddressTypeContract         ScAddressType = 1
	ScAddressTypeMuxedAccount     ScAddressType = 2
	ScAddressTypeClaimableBalance ScAddressType = 3
	ScAddressTypeLiquidityPool    ScAddressType = 4
)

// MuxedEd25519Account is the muxed variant of a contract address
type MuxedEd25519Account struct {
	ID      uint64
	Ed25519 Uint256
}

func (m *MuxedEd25519Account) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint64(m.ID); err != nil {
		return err
	}
	return m.Ed25519.EncodeTo(e)
}

func (m *MuxedEd25519Account) DecodeFrom(d *Decoder) error {
	var err error
	if m.ID, err = d.DecodeUint64(); err != nil {
		return err
	}
	return m.Ed25519.DecodeFrom(d)
}

// ClaimableBalanceID identifies a claimable balance ledger entry
type ClaimableBalanceID struct {
	Type int32
	V0   *Hash
}

func (c *ClaimableBalanceID) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(c.Type); err != nil {
		return err
	}
	if c.Type != 0 || c.V0 == nil {
		return fmt.Errorf("xdr: unknown claimable balance id type %d", c.Type)
	}
	return c.V0.EncodeTo(e)
}

func (c *ClaimableBalanceID) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if t != 0 {
		return fmt.Errorf("xdr: unknown claimable balance id type %d", t)
	}
	c.Type = t
	c.V0 = new(Hash)
	return c.V0.DecodeFrom(d)
}

// ScAddress identifies an account, contract, muxed account, claimable
// balance or liquidity pool from contract code. Equality is structural
// over kind and bytes.
type ScAddress struct {
	Type             ScAddressType
	AccountId        *AccountID
	ContractId       *Hash
	MuxedAccount     *MuxedEd25519Account
	ClaimableBalance *ClaimableBalanceID
	LiquidityPool    *Hash
}

// ScAddressFromString parses any address strkey kind, trying account,
// contract, muxed account, claimable balance and liquidity pool in that
// priority order
func ScAddressFromString(address string) (ScAddress, error) {
	if raw, err := strkey.Decode(strkey.VersionByteAccountID, address); err == nil {
		id := NewAccountID([32]byte(raw))
		return ScAddress{Type: ScAddressTypeAccount, AccountId: &id}, nil
	}
	if raw, err := strkey.Decode(strkey.VersionByteContract, address); err == nil {
		h := NewHash(raw)
		return ScAddress{Type: ScAddressTypeContract, ContractId: &h}, nil
	}
	if raw, err := strkey.Decode(strkey.VersionByteMuxedAccount, address); err == nil {
		m := &MuxedEd25519Account{
			ID:      binary.BigEndian.Uint64(raw[32:40]),
			Ed25519: Uint256(NewHash(raw[:32])),
		}
		return ScAddress{Type: ScAddressTypeMuxedAccount, MuxedAccount: m}, nil
	}
	if raw, err := strkey.Decode(strkey.VersionByteClaimableBalance, address); err == nil {
		if raw[0] != 0 {
			return ScAddress{}, fmt.Errorf(
				"xdr: unknown claimable balance id type %d in %q",
				raw[0],
				address,
			)
		}
		h := NewHash(raw[1:])
		return ScAddress{
			Type:             ScAddressTypeClaimableBalance,
			ClaimableBalance: &ClaimableBalanceID{V0: &h},
		}, nil
	}
	if raw, err := strkey.Decode(strkey.VersionByteLiquidityPool, address); err == nil {
		h := NewHash(raw)
		return ScAddress{Type: ScAddressTypeLiquidityPool, LiquidityPool: &h}, nil
	}
	return ScAddress{}, fmt.Errorf("xdr: %q is not a valid address of any kind", address)
}

// String returns the strkey form of the address
func (a ScAddress) String() (string, error) {
	switch a.Type {
	case ScAddressTypeAccount:
		if a.AccountId == nil || a.AccountId.Ed25519 == nil {
			return "", fmt.Errorf("xdr: account address has no key material")
		}
		return strkey.Encode(strkey.VersionByteAccountID, a.AccountId.Ed25519[:])
	case ScAddressTypeContract:
		if a.ContractId == nil {
			return "", fmt.Errorf("xdr: contract address has no id")
		}
		return strkey.Encode(strkey.VersionByteContract, a.ContractId[:])
	case ScAddressTypeMuxedAccount:
		if a.MuxedAccount == nil {
			return "", fmt.Errorf("xdr: muxed address has no key material")
		}
		raw := make([]byte, 0, 40)
		raw = append(raw, a.MuxedAccount.Ed25519[:]...)
		raw = binary.BigEndian.AppendUint64(raw, a.MuxedAccount.ID)
		return strkey.Encode(strkey.VersionByteMuxedAccount, raw)
	case ScAddressTypeClaimableBalance:
		if a.ClaimableBalance == nil || a.ClaimableBalance.V0 == nil {
			return "", fmt.Errorf("xdr: claimable balance address has no id")
		}
		raw := append([]byte{0}, a.ClaimableBalance.V0[:]...)
		return strkey.Encode(strkey.VersionByteClaimableBalance, raw)
	case ScAddressTypeLiquidityPool:
		if a.LiquidityPool == nil {
			return "", fmt.Errorf("xdr: liquidity pool address has no id")
		}
		return strkey.Encode(strkey.VersionByteLiquidityPool, a.LiquidityPool[:])
	default:
		return "", fmt.Errorf("xdr: unknown address type %d", a.Type)
	}
}

// Equals compares addresses structurally over kind and bytes
func (a ScAddress) Equals(other ScAddress) bool {
	ours, err := Encode(&a)
	if err != nil {
		return false
	}
	theirs, err := Encode(&other)
	if err != nil {
		return false
	}
	return string(ours) == string(theirs)
}

func (a *ScAddress) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case ScAddressTypeAccount:
		if a.AccountId == nil {
			return fmt.Errorf("xdr: account address has no key material")
		}
		return a.AccountId.EncodeTo(e)
	case ScAddressTypeContract:
		if a.ContractId == nil {
			return fmt.Errorf("xdr: contract address has no id")
		}
		return a.ContractId.EncodeTo(e)
	case ScAddressTypeMuxedAccount:
		if a.MuxedAccount == nil {
			return fmt.Errorf("xdr: muxed address has no key material")
		}
		return a.MuxedAccount.EncodeTo(e)
	case ScAddressTypeClaimableBalance:
		if a.ClaimableBalance == nil {
			return fmt.Errorf("xdr: claimable balance address has no id")
		}
		return a.ClaimableBalance.EncodeTo(e)
	case ScAddressTypeLiquidityPool:
		if a.LiquidityPool == nil {
			return fmt.Errorf("xdr: liquidity pool address has no id")
		}
		return a.LiquidityPool.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown address type %d", a.Type)
	}
}

func (a *ScAddress) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	a.Type = ScAddressType(t)
	switch a.Type {
	case ScAddressTypeAccount:
		a.AccountId = new(AccountID)
		return a.AccountId.DecodeFrom(d)
	case ScAddressTypeContract:
		a.ContractId = new(Hash)
		return a.ContractId.DecodeFrom(d)
	case ScAddressTypeMuxedAccount:
		a.MuxedAccount = new(MuxedEd25519Account)
		return a.MuxedAccount.DecodeFrom(d)
	case ScAddressTypeClaimableBalance:
		a.ClaimableBalance = new(ClaimableBalanceID)
		return a.ClaimableBalance.DecodeFrom(d)
	case ScAddressTypeLiquidityPool:
		a.LiquidityPool = new(Hash)
		return a.LiquidityPool.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown address type %d", t)
	}
}

type ContractExecutableType int32

const (
	ContractExecutableTypeWasm         ContractExecutableType = 0
	ContractExecutableTypeStellarAsset ContractExecutableType = 1
)

// ContractExecutable references the code backing a contract instance
type ContractExecutable struct {
	Type     ContractExecutableType
	WasmHash *Hash
}

func (c *ContractExecutable) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(c.Type)); err != nil {
		return err
	}
	switch c.Type {
	case ContractExecutableTypeWasm:
		if c.WasmHash == nil {
			return fmt.Errorf("xdr: wasm executable has no hash")
		}
		return c.WasmHash.EncodeTo(e)
	case ContractExecutableTypeStellarAsset:
		return nil
	default:
		return fmt.Errorf("xdr: unknown executable type %d", c.Type)
	}
}

func (c *ContractExecutable) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	c.Type = ContractExecutableType(t)
	switch c.Type {
	case ContractExecutableTypeWasm:
		c.WasmHash = new(Hash)
		return c.WasmHash.DecodeFrom(d)
	case ContractExecutableTypeStellarAsset:
		return nil
	default:
		return fmt.Errorf("xdr: unknown executable type %d", t)
	}
}

// ScContractInstance pairs an executable with its instance storage
type ScContractInstance struct {
	Executable ContractExecutable
	Storage    *ScMap
}

func (c *ScContractInstance) EncodeTo(e *Encoder) error {
	if err := c.Executable.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeBool(c.Storage != nil); err != nil {
		return err
	}
	if c.Storage != nil {
		return c.Storage.EncodeTo(e)
	}
	return nil
}

func (c *ScContractInstance) DecodeFrom(d *Decoder) error {
	if err := c.Executable.DecodeFrom(d); err != nil {
		return err
	}
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		c.Storage = new(ScMap)
		return c.Storage.DecodeFrom(d)
	}
	c.Storage = nil
	return nil
}

// ScVal is the tagged-union contract value. Exactly one arm matching Type
// is set; Void, LedgerKeyContractInstance carry no payload.
type ScVal struct {
	Type      ScValType
	B         *bool
	Error     *ScError
	U32       *uint32
	I32       *int32
	U64       *uint64
	I64       *int64
	Timepoint *uint64
	Duration  *uint64
	U128      *UInt128Parts
	I128      *Int128Parts
	U256      *UInt256Parts
	I256      *Int256Parts
	Bytes     *[]byte
	Str       *string
	Sym       *string
	Vec       *ScVec
	Map       *ScMap
	Address   *ScAddress
	Instance  *ScContractInstance
	NonceKey  *int64
}

func (v *ScVal) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(v.Type)); err != nil {
		return err
	}
	switch v.Type {
	case ScValTypeBool:
		if v.B == nil {
			return fmt.Errorf("xdr: bool value has no payload")
		}
		return e.EncodeBool(*v.B)
	case ScValTypeVoid, ScValTypeLedgerKeyContractInstance:
		return nil
	case ScValTypeError:
		if v.Error == nil {
			return fmt.Errorf("xdr: error value has no payload")
		}
		return v.Error.EncodeTo(e)
	case ScValTypeU32:
		if v.U32 == nil {
			return fmt.Errorf("xdr: u32 value has no payload")
		}
		return e.EncodeUint32(*v.U32)
	case ScValTypeI32:
		if v.I32 == nil {
			return fmt.Errorf("xdr: i32 value has no payload")
		}
		return e.EncodeInt32(*v.I32)
	case ScValTypeU64:
		if v.U64 == nil {
			return fmt.Errorf("xdr: u64 value has no payload")
		}
		return e.EncodeUint64(*v.U64)
	case ScValTypeI64:
		if v.I64 == nil {
			return fmt.Errorf("xdr: i64 value has no payload")
		}
		return e.EncodeInt64(*v.I64)
	case ScValTypeTimepoint:
		if v.Timepoint == nil {
			return fmt.Errorf("xdr: timepoint value has no payload")
		}
		return e.EncodeUint64(*v.Timepoint)
	case ScValTypeDuration:
		if v.Duration == nil {
			return fmt.Errorf("xdr: duration value has no payload")
		}
		return e.EncodeUint64(*v.Duration)
	case ScValTypeU128:
		if v.U128 == nil {
			return fmt.Errorf("xdr: u128 value has no payload")
		}
		return v.U128.EncodeTo(e)
	case ScValTypeI128:
		if v.I128 == nil {
			return fmt.Errorf("xdr: i128 value has no payload")
		}
		return v.I128.EncodeTo(e)
	case ScValTypeU256:
		if v.U256 == nil {
			return fmt.Errorf("xdr: u256 value has no payload")
		}
		return v.U256.EncodeTo(e)
	case ScValTypeI256:
		if v.I256 == nil {
			return fmt.Errorf("xdr: i256 value has no payload")
		}
		return v.I256.EncodeTo(e)
	case ScValTypeBytes:
		if v.Bytes == nil {
			return fmt.Errorf("xdr: bytes value has no payload")
		}
		return e.EncodeOpaque(*v.Bytes)
	case ScValTypeString:
		if v.Str == nil {
			return fmt.Errorf("xdr: string value has no payload")
		}
		return e.EncodeString(*v.Str)
	case ScValTypeSymbol:
		if v.Sym == nil {
			return fmt.Errorf("xdr: symbol value has no payload")
		}
		if len(*v.Sym) > maxSymbolLen {
			return fmt.Errorf(
				"xdr: symbol %q is %d bytes, maximum is %d",
				*v.Sym,
				len(*v.Sym),
				maxSymbolLen,
			)
		}
		return e.EncodeString(*v.Sym)
	case ScValTypeVec:
		// The vec arm is optional on the wire
		if err := e.EncodeBool(v.Vec != nil); err != nil {
			return err
		}
		if v.Vec != nil {
			return v.Vec.EncodeTo(e)
		}
		return nil
	case ScValTypeMap:
		if err := e.EncodeBool(v.Map != nil); err != nil {
			return err
		}
		if v.Map != nil {
			return v.Map.EncodeTo(e)
		}
		return nil
	case ScValTypeAddress:
		if v.Address == nil {
			return fmt.Errorf("xdr: address value has no payload")
		}
		return v.Address.EncodeTo(e)
	case ScValTypeContractInstance:
		if v.Instance == nil {
			return fmt.Errorf("xdr: contract instance value has no payload")
		}
		return v.Instance.EncodeTo(e)
	case ScValTypeLedgerKeyNonce:
		if v.NonceKey == nil {
			return fmt.Errorf("xdr: nonce key value has no payload")
		}
		return e.EncodeInt64(*v.NonceKey)
	default:
		return fmt.Errorf("xdr: unknown value type %d", v.Type)
	}
}

func (v *ScVal) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*v = ScVal{Type: ScValType(t)}
	switch v.Type {
	case ScValTypeBool:
		b, err := d.DecodeBool()
		if err != nil {
			return err
		}
		v.B = &b
		return nil
	case ScValTypeVoid, ScValTypeLedgerKeyContractInstance:
		return nil
	case ScValTypeError:
		v.Error = new(ScError)
		return v.Error.DecodeFrom(d)
	case ScValTypeU32:
		u, err := d.DecodeUint32()
		if err != nil {
			return err
		}
		v.U32 = &u
		return nil
	case ScValTypeI32:
		i, err := d.DecodeInt32()
		if err != nil {
			return err
		}
		v.I32 = &i
		return nil
	case ScValTypeU64:
		u, err := d.DecodeUint64()
		if err != nil {
			return err
		}
		v.U64 = &u
		return nil
	case ScValTypeI64:
		i, err := d.DecodeInt64()
		if err != nil {
			return err
		}
		v.I64 = &i
		return nil
	case ScValTypeTimepoint:
		u, err := d.DecodeUint64()
		if err != nil {
			return err
		}
		v.Timepoint = &u
		return nil
	case ScValTypeDuration:
		u, err := d.DecodeUint64()
		if err != nil {
			return err
		}
		v.Duration = &u
		return nil
	case ScValTypeU128:
		v.U128 = new(UInt128Parts)
		return v.U128.DecodeFrom(d)
	case ScValTypeI128:
		v.I128 = new(Int128Parts)
		return v.I128.DecodeFrom(d)
	case ScValTypeU256:
		v.U256 = new(UInt256Parts)
		return v.U256.DecodeFrom(d)
	case ScValTypeI256:
		v.I256 = new(Int256Parts)
		return v.I256.DecodeFrom(d)
	case ScValTypeBytes:
		b, err := d.DecodeOpaque()
		if err != nil {
			return err
		}
		v.Bytes = &b
		return nil
	case ScValTypeString:
		s, err := d.DecodeString()
		if err != nil {
			return err
		}
		v.Str = &s
		return nil
	case ScValTypeSymbol:
		s, err := d.DecodeString()
		if err != nil {
			return err
		}
		if len(s) > maxSymbolLen {
			return fmt.Errorf(
				"xdr: symbol %q is %d bytes, maximum is %d",
				s,
				len(s),
				maxSymbolLen,
			)
		}
		v.Sym = &s
		return nil
	case ScValTypeVec:
		present, err := d.DecodeBool()
		if err != nil {
			return err
		}
		if present {
			v.Vec = new(ScVec)
			return v.Vec.DecodeFrom(d)
		}
		return nil
	case ScValTypeMap:
		present, err := d.DecodeBool()
		if err != nil {
			return err
		}
		if present {
			v.Map = new(ScMap)
			return v.Map.DecodeFrom(d)
		}
		return nil
	case ScValTypeAddress:
		v.Address = new(ScAddress)
		return v.Address.DecodeFrom(d)
	case ScValTypeContractInstance:
		v.Instance = new(ScContractInstance)
		return v.Instance.DecodeFrom(d)
	case ScValTypeLedgerKeyNonce:
		i, err := d.DecodeInt64()
		if err != nil {
			return err
		}
		v.NonceKey = &i
		return nil
	default:
		return fmt.Errorf("xdr: unknown value type %d", t)
	}
}

// Constructors for the common value variants

func ScBool(b bool) ScVal {
	return ScVal{Type: ScValTypeBool, B: &b}
}

func ScVoid() ScVal {
	return ScVal{Type: ScValTypeVoid}
}

func ScU32(v uint32) ScVal {
	return ScVal{Type: ScValTypeU32, U32: &v}
}

func ScI32(v int32) ScVal {
	return ScVal{Type: ScValTypeI32, I32: &v}
}

func ScU64(v uint64) ScVal {
	return ScVal{Type: ScValTypeU64, U64: &v}
}

func ScI64(v int64) ScVal {
	return ScVal{Type: ScValTypeI64, I64: &v}
}

func ScTimepoint(v uint64) ScVal {
	return ScVal{Type: ScValTypeTimepoint, Timepoint: &v}
}

func ScDuration(v uint64) ScVal {
	return ScVal{Type: ScValTypeDuration, Duration: &v}
}

func ScBytes(b []byte) ScVal {
	return ScVal{Type: ScValTypeBytes, Bytes: &b}
}

func ScString(s string) ScVal {
	return ScVal{Type: ScValTypeString, Str: &s}
}

func ScSymbol(s string) ScVal {
	return ScVal{Type: ScValTypeSymbol, Sym: &s}
}

func ScVecVal(vals ...ScVal) ScVal {
	vec := ScVec(vals)
	return ScVal{Type: ScValTypeVec, Vec: &vec}
}

func ScMapVal(entries ...ScMapEntry) ScVal {
	m := ScMap(entries)
	return ScVal{Type: ScValTypeMap, Map: &m}
}

func ScAddressVal(a ScAddress) ScVal {
	return ScVal{Type: ScValTypeAddress, Address: &a}
}
