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
	"fmt"
)

// InvokeContractArgs names a contract function and its call arguments
type InvokeContractArgs struct {
	ContractAddress ScAddress
	FunctionName    string
	Args            []ScVal
}

func (a *InvokeContractArgs) EncodeTo(e *Encoder) error {
	if err := a.ContractAddress.EncodeTo(e); err != nil {
		return err
	}
	if len(a.FunctionName) > maxSymbolLen {
		return fmt.Errorf(
			"xdr: function name %q is %d bytes, maximum is %d",
			a.FunctionName,
			len(a.FunctionName),
			maxSymbolLen,
		)
	}
	if err := e.EncodeString(a.FunctionName); err != nil {
		return err
	}
	if err := e.EncodeUint32(uint32(len(a.Args))); err != nil {
		return err
	}
	for i := range a.Args {
		if err := a.Args[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (a *InvokeContractArgs) DecodeFrom(d *Decoder) error {
	if err := a.ContractAddress.DecodeFrom(d); err != nil {
		return err
	}
	name, err := d.DecodeString()
	if err != nil {
		return err
	}
	a.FunctionName = name
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	a.Args = makeSlice[ScVal](n)
	for i := range a.Args {
		if err := a.Args[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

type ContractIDPreimageType int32

const (
	ContractIDPreimageTypeFromAddress ContractIDPreimageType = 0
	ContractIDPreimageTypeFromAsset   ContractIDPreimageType = 1
)

// ContractIDPreimageFromAddress derives a contract id from a deployer
// address and salt
type ContractIDPreimageFromAddress struct {
	Address ScAddress
	Salt    Uint256
}

func (p *ContractIDPreimageFromAddress) EncodeTo(e *Encoder) error {
	if err := p.Address.EncodeTo(e); err != nil {
		return err
	}
	return p.Salt.EncodeTo(e)
}

func (p *ContractIDPreimageFromAddress) DecodeFrom(d *Decoder) error {
	if err := p.Address.DecodeFrom(d); err != nil {
		return err
	}
	return p.Salt.DecodeFrom(d)
}

// ContractIDPreimage is the tagged input to contract id derivation
type ContractIDPreimage struct {
	Type        ContractIDPreimageType
	FromAddress *ContractIDPreimageFromAddress
	FromAsset   *Asset
}

func (p *ContractIDPreimage) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(p.Type)); err != nil {
		return err
	}
	switch p.Type {
	case ContractIDPreimageTypeFromAddress:
		if p.FromAddress == nil {
			return fmt.Errorf("xdr: contract id preimage has no address")
		}
		return p.FromAddress.EncodeTo(e)
	case ContractIDPreimageTypeFromAsset:
		if p.FromAsset == nil {
			return fmt.Errorf("xdr: contract id preimage has no asset")
		}
		return p.FromAsset.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown contract id preimage type %d", p.Type)
	}
}

func (p *ContractIDPreimage) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	p.Type = ContractIDPreimageType(t)
	switch p.Type {
	case ContractIDPreimageTypeFromAddress:
		p.FromAddress = new(ContractIDPreimageFromAddress)
		return p.FromAddress.DecodeFrom(d)
	case ContractIDPreimageTypeFromAsset:
		p.FromAsset = new(Asset)
		return p.FromAsset.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown contract id preimage type %d", t)
	}
}

// CreateContractArgs deploys an executable at a derived contract id
type CreateContractArgs struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
}

func (a *CreateContractArgs) EncodeTo(e *Encoder) error {
	if err := a.ContractIDPreimage.EncodeTo(e); err != nil {
		return err
	}
	return a.Executable.EncodeTo(e)
}

func (a *CreateContractArgs) DecodeFrom(d *Decoder) error {
	if err := a.ContractIDPreimage.DecodeFrom(d); err != nil {
		return err
	}
	return a.Executable.DecodeFrom(d)
}

// CreateContractArgsV2 additionally passes constructor arguments
type CreateContractArgsV2 struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
	ConstructorArgs    []ScVal
}

func (a *CreateContractArgsV2) EncodeTo(e *Encoder) error {
	if err := a.ContractIDPreimage.EncodeTo(e); err != nil {
		return err
	}
	if err := a.Executable.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(uint32(len(a.ConstructorArgs))); err != nil {
		return err
	}
	for i := range a.ConstructorArgs {
		if err := a.ConstructorArgs[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (a *CreateContractArgsV2) DecodeFrom(d *Decoder) error {
	if err := a.ContractIDPreimage.DecodeFrom(d); err != nil {
		return err
	}
	if err := a.Executable.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	a.ConstructorArgs = makeSlice[ScVal](n)
	for i := range a.ConstructorArgs {
		if err := a.ConstructorArgs[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

type HostFunctionType int32

const (
	HostFunctionTypeInvokeContract   HostFunctionType = 0
	HostFunctionTypeCreateContract   HostFunctionType = 1
	HostFunctionTypeUploadWasm       HostFunctionType = 2
	HostFunctionTypeCreateContractV2 HostFunctionType = 3
)

// HostFunction selects what an invoke-host-function operation performs
type HostFunction struct {
	Type             HostFunctionType
	InvokeContract   *InvokeContractArgs
	CreateContract   *CreateContractArgs
	Wasm             *[]byte
	CreateContractV2 *CreateContractArgsV2
}

func (h *HostFunction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(h.Type)); err != nil {
		return err
	}
	switch h.Type {
	case HostFunctionTypeInvokeContract:
		if h.InvokeContract == nil {
			return fmt.Errorf("xdr: host function has no invoke args")
		}
		return h.InvokeContract.EncodeTo(e)
	case HostFunctionTypeCreateContract:
		if h.CreateContract == nil {
			return fmt.Errorf("xdr: host function has no create args")
		}
		return h.CreateContract.EncodeTo(e)
	case HostFunctionTypeUploadWasm:
		if h.Wasm == nil {
			return fmt.Errorf("xdr: host function has no wasm payload")
		}
		return e.EncodeOpaque(*h.Wasm)
	case HostFunctionTypeCreateContractV2:
		if h.CreateContractV2 == nil {
			return fmt.Errorf("xdr: host function has no create v2 args")
		}
		return h.CreateContractV2.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown host function type %d", h.Type)
	}
}

func (h *HostFunction) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	h.Type = HostFunctionType(t)
	switch h.Type {
	case HostFunctionTypeInvokeContract:
		h.InvokeContract = new(InvokeContractArgs)
		return h.InvokeContract.DecodeFrom(d)
	case HostFunctionTypeCreateContract:
		h.CreateContract = new(CreateContractArgs)
		return h.CreateContract.DecodeFrom(d)
	case HostFunctionTypeUploadWasm:
		wasm, err := d.DecodeOpaque()
		if err != nil {
			return err
		}
		h.Wasm = &wasm
		return nil
	case HostFunctionTypeCreateContractV2:
		h.CreateContractV2 = new(CreateContractArgsV2)
		return h.CreateContractV2.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown host function type %d", t)
	}
}

type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeContractFn             SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeCreateContractHostFn   SorobanAuthorizedFunctionType = 1
	SorobanAuthorizedFunctionTypeCreateContractV2HostFn SorobanAuthorizedFunctionType = 2
)

// SorobanAuthorizedFunction is the call a credential holder approves
type SorobanAuthorizedFunction struct {
	Type                   SorobanAuthorizedFunctionType
	ContractFn             *InvokeContractArgs
	CreateContractHostFn   *CreateContractArgs
	CreateContractV2HostFn *CreateContractArgsV2
}

func (f *SorobanAuthorizedFunction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(f.Type)); err != nil {
		return err
	}
	switch f.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		if f.ContractFn == nil {
			return fmt.Errorf("xdr: authorized function has no invoke args")
		}
		return f.ContractFn.EncodeTo(e)
	case SorobanAuthorizedFunctionTypeCreateContractHostFn:
		if f.CreateContractHostFn == nil {
			return fmt.Errorf("xdr: authorized function has no create args")
		}
		return f.CreateContractHostFn.EncodeTo(e)
	case SorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		if f.CreateContractV2HostFn == nil {
			return fmt.Errorf("xdr: authorized function has no create v2 args")
		}
		return f.CreateContractV2HostFn.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown authorized function type %d", f.Type)
	}
}

func (f *SorobanAuthorizedFunction) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	f.Type = SorobanAuthorizedFunctionType(t)
	switch f.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		f.ContractFn = new(InvokeContractArgs)
		return f.ContractFn.DecodeFrom(d)
	case SorobanAuthorizedFunctionTypeCreateContractHostFn:
		f.CreateContractHostFn = new(CreateContractArgs)
		return f.CreateContractHostFn.DecodeFrom(d)
	case SorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		f.CreateContractV2HostFn = new(CreateContractArgsV2)
		return f.CreateContractV2HostFn.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown authorized function type %d", t)
	}
}

// SorobanAuthorizedInvocation is a function call plus the nested calls it
// triggers; authorization is granted over the whole tree as a unit
type SorobanAuthorizedInvocation struct {
	Function       SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

func (i *SorobanAuthorizedInvocation) EncodeTo(e *Encoder) error {
	if err := i.Function.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(uint32(len(i.SubInvocations))); err != nil {
		return err
	}
	for idx := range i.SubInvocations {
		if err := i.SubInvocations[idx].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (i *SorobanAuthorizedInvocation) DecodeFrom(d *Decoder) error {
	if err := i.Function.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	i.SubInvocations = makeSlice[SorobanAuthorizedInvocation](n)
	for idx := range i.SubInvocations {
		if err := i.SubInvocations[idx].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeAddress       SorobanCredentialsType = 1
)

// SorobanAddressCredentials authorize an invocation on behalf of an
// address: the nonce prevents replay, the expiration ledger bounds the
// signature's validity and the signature itself is a contract value
type SorobanAddressCredentials struct {
	Address                   ScAddress
	Nonce                     int64
	SignatureExpirationLedger uint32
	Signature                 ScVal
}

func (c *SorobanAddressCredentials) EncodeTo(e *Encoder) error {
	if err := c.Address.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(c.Nonce); err != nil {
		return err
	}
	if err := e.EncodeUint32(c.SignatureExpirationLedger); err != nil {
		return err
	}
	return c.Signature.EncodeTo(e)
}

func (c *SorobanAddressCredentials) DecodeFrom(d *Decoder) error {
	var err error
	if err = c.Address.DecodeFrom(d); err != nil {
		return err
	}
	if c.Nonce, err = d.DecodeInt64(); err != nil {
		return err
	}
	if c.SignatureExpirationLedger, err = d.DecodeUint32(); err != nil {
		return err
	}
	return c.Signature.DecodeFrom(d)
}

// SorobanCredentials are either implicit (transaction source account) or
// address-based
type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address *SorobanAddressCredentials
}

func (c *SorobanCredentials) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(c.Type)); err != nil {
		return err
	}
	switch c.Type {
	case SorobanCredentialsTypeSourceAccount:
		return nil
	case SorobanCredentialsTypeAddress:
		if c.Address == nil {
			return fmt.Errorf("xdr: address credentials have no payload")
		}
		return c.Address.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown credentials type %d", c.Type)
	}
}

func (c *SorobanCredentials) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	c.Type = SorobanCredentialsType(t)
	switch c.Type {
	case SorobanCredentialsTypeSourceAccount:
		return nil
	case SorobanCredentialsTypeAddress:
		c.Address = new(SorobanAddressCredentials)
		return c.Address.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown credentials type %d", t)
	}
}

// SorobanAuthorizationEntry asserts that the credential holder approves
// the root invocation tree. Signing fills in the credentials' signature
// and never alters the invocation tree.
type SorobanAuthorizationEntry struct {
	Credentials    SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

func (a *SorobanAuthorizationEntry) EncodeTo(e *Encoder) error {
	if err := a.Credentials.EncodeTo(e); err != nil {
		return err
	}
	return a.RootInvocation.EncodeTo(e)
}

func (a *SorobanAuthorizationEntry) DecodeFrom(d *Decoder) error {
	if err := a.Credentials.DecodeFrom(d); err != nil {
		return err
	}
	return a.RootInvocation.DecodeFrom(d)
}

// HashIDPreimageContractID is hashed to derive a contract id
type HashIDPreimageContractID struct {
	NetworkID          Hash
	ContractIDPreimage ContractIDPreimage
}

func (p *HashIDPreimageContractID) EncodeTo(e *Encoder) error {
	if err := p.NetworkID.EncodeTo(e); err != nil {
		return err
	}
	return p.ContractIDPreimage.EncodeTo(e)
}

func (p *HashIDPreimageContractID) DecodeFrom(d *Decoder) error {
	if err := p.NetworkID.DecodeFrom(d); err != nil {
		return err
	}
	return p.ContractIDPreimage.DecodeFrom(d)
}

// HashIDPreimageSorobanAuthorization is hashed to produce the payload an
// authorization signature covers
type HashIDPreimageSorobanAuthorization struct {
	NetworkID                 Hash
	Nonce                     int64
	SignatureExpirationLedger uint32
	Invocation                SorobanAuthorizedInvocation
}

func (p *HashIDPreimageSorobanAuthorization) EncodeTo(e *Encoder) error {
	if err := p.NetworkID.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(p.Nonce); err != nil {
		return err
	}
	if err := e.EncodeUint32(p.SignatureExpirationLedger); err != nil {
		return err
	}
	return p.Invocation.EncodeTo(e)
}

func (p *HashIDPreimageSorobanAuthorization) DecodeFrom(d *Decoder) error {
	var err error
	if err = p.NetworkID.DecodeFrom(d); err != nil {
		return err
	}
	if p.Nonce, err = d.DecodeInt64(); err != nil {
		return err
	}
	if p.SignatureExpirationLedger, err = d.DecodeUint32(); err != nil {
		return err
	}
	return p.Invocation.DecodeFrom(d)
}

// HashIDPreimage is the tagged input to the protocol's derived hashes
type HashIDPreimage struct {
	Type                 EnvelopeType
	ContractID           *HashIDPreimageContractID
	SorobanAuthorization *HashIDPreimageSorobanAuthorization
}

func (p *HashIDPreimage) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(p.Type)); err != nil {
		return err
	}
	switch p.Type {
	case EnvelopeTypeContractID:
		if p.ContractID == nil {
			return fmt.Errorf("xdr: hash id preimage has no contract id body")
		}
		return p.ContractID.EncodeTo(e)
	case EnvelopeTypeSorobanAuthorization:
		if p.SorobanAuthorization == nil {
			return fmt.Errorf("xdr: hash id preimage has no authorization body")
		}
		return p.SorobanAuthorization.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unsupported hash id preimage type %d", p.Type)
	}
}

func (p *HashIDPreimage) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	p.Type = EnvelopeType(t)
	switch p.Type {
	case EnvelopeTypeContractID:
		p.ContractID = new(HashIDPreimageContractID)
		return p.ContractID.DecodeFrom(d)
	case EnvelopeTypeSorobanAuthorization:
		p.SorobanAuthorization = new(HashIDPreimageSorobanAuthorization)
		return p.SorobanAuthorization.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unsupported hash id preimage type %d", t)
	}
}

type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeConfigSetting    LedgerEntryType = 8
	LedgerEntryTypeTtl              LedgerEntryType = 9
)

type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

type LedgerKeyAccount struct {
	AccountID AccountID
}

type LedgerKeyTrustline struct {
	AccountID AccountID
	Asset     TrustLineAsset
}

type LedgerKeyContractData struct {
	Contract   ScAddress
	Key        ScVal
	Durability ContractDataDurability
}

type LedgerKeyContractCode struct {
	Hash Hash
}

type LedgerKeyTtl struct {
	KeyHash Hash
}

// LedgerKey identifies one ledger entry in a footprint. Only the entry
// kinds a contract invocation can touch are supported.
type LedgerKey struct {
	Type         LedgerEntryType
	Account      *LedgerKeyAccount
	Trustline    *LedgerKeyTrustline
	ContractData *LedgerKeyContractData
	ContractCode *LedgerKeyContractCode
	Ttl          *LedgerKeyTtl
}

func (k *LedgerKey) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(k.Type)); err != nil {
		return err
	}
	switch k.Type {
	case LedgerEntryTypeAccount:
		if k.Account == nil {
			return fmt.Errorf("xdr: account ledger key has no body")
		}
		return k.Account.AccountID.EncodeTo(e)
	case LedgerEntryTypeTrustline:
		if k.Trustline == nil {
			return fmt.Errorf("xdr: trustline ledger key has no body")
		}
		if err := k.Trustline.AccountID.EncodeTo(e); err != nil {
			return err
		}
		return k.Trustline.Asset.EncodeTo(e)
	case LedgerEntryTypeContractData:
		if k.ContractData == nil {
			return fmt.Errorf("xdr: contract data ledger key has no body")
		}
		if err := k.ContractData.Contract.EncodeTo(e); err != nil {
			return err
		}
		if err := k.ContractData.Key.EncodeTo(e); err != nil {
			return err
		}
		return e.EncodeInt32(int32(k.ContractData.Durability))
	case LedgerEntryTypeContractCode:
		if k.ContractCode == nil {
			return fmt.Errorf("xdr: contract code ledger key has no body")
		}
		return k.ContractCode.Hash.EncodeTo(e)
	case LedgerEntryTypeTtl:
		if k.Ttl == nil {
			return fmt.Errorf("xdr: ttl ledger key has no body")
		}
		return k.Ttl.KeyHash.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unsupported ledger key type %d", k.Type)
	}
}

func (k *LedgerKey) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	k.Type = LedgerEntryType(t)
	switch k.Type {
	case LedgerEntryTypeAccount:
		k.Account = new(LedgerKeyAccount)
		return k.Account.AccountID.DecodeFrom(d)
	case LedgerEntryTypeTrustline:
		k.Trustline = new(LedgerKeyTrustline)
		if err := k.Trustline.AccountID.DecodeFrom(d); err != nil {
			return err
		}
		return k.Trustline.Asset.DecodeFrom(d)
	case LedgerEntryTypeContractData:
		k.ContractData = new(LedgerKeyContractData)
		if err := k.ContractData.Contract.DecodeFrom(d); err != nil {
			return err
		}
		if err := k.ContractData.Key.DecodeFrom(d); err != nil {
			return err
		}
		durability, err := d.DecodeInt32()
		if err != nil {
			return err
		}
		k.ContractData.Durability = ContractDataDurability(durability)
		return nil
	case LedgerEntryTypeContractCode:
		k.ContractCode = new(LedgerKeyContractCode)
		return k.ContractCode.Hash.DecodeFrom(d)
	case LedgerEntryTypeTtl:
		k.Ttl = new(LedgerKeyTtl)
		return k.Ttl.KeyHash.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unsupported ledger key type %d", t)
	}
}

// LedgerFootprint declares the ledger entries an invocation reads and
// writes
type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

func (f *LedgerFootprint) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint32(uint32(len(f.ReadOnly))); err != nil {
		return err
	}
	for i := range f.ReadOnly {
		if err := f.ReadOnly[i].EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeUint32(uint32(len(f.ReadWrite))); err != nil {
		return err
	}
	for i := range f.ReadWrite {
		if err := f.ReadWrite[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *LedgerFootprint) DecodeFrom(d *Decoder) error {
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	f.ReadOnly = makeSlice[LedgerKey](n)
	for i := range f.ReadOnly {
		if err := f.ReadOnly[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	n, err = d.DecodeUint32()
	if err != nil {
		return err
	}
	f.ReadWrite = makeSlice[LedgerKey](n)
	for i := range f.ReadWrite {
		if err := f.ReadWrite[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// SorobanResources bounds the compute and I/O an invocation may consume
type SorobanResources struct {
	Footprint    LedgerFootprint
	Instructions uint32
	ReadBytes    uint32
	WriteBytes   uint32
}

func (r *SorobanResources) EncodeTo(e *Encoder) error {
	if err := r.Footprint.EncodeTo(e); err != nil {
		return err
	}
	for _, v := range []uint32{r.Instructions, r.ReadBytes, r.WriteBytes} {
		if err := e.EncodeUint32(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *SorobanResources) DecodeFrom(d *Decoder) error {
	var err error
	if err = r.Footprint.DecodeFrom(d); err != nil {
		return err
	}
	if r.Instructions, err = d.DecodeUint32(); err != nil {
		return err
	}
	if r.ReadBytes, err = d.DecodeUint32(); err != nil {
		return err
	}
	r.WriteBytes, err = d.DecodeUint32()
	return err
}

// ExtensionPoint is a reserved extension slot; only the empty variant is
// defined
type ExtensionPoint struct {
	V int32
}

func (x *ExtensionPoint) EncodeTo(e *Encoder) error {
	if x.V != 0 {
		return fmt.Errorf("xdr: unknown extension point version %d", x.V)
	}
	return e.EncodeInt32(x.V)
}

func (x *ExtensionPoint) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if v != 0 {
		return fmt.Errorf("xdr: unknown extension point version %d", v)
	}
	x.V = v
	return nil
}

// SorobanTransactionData is the resource envelope attached to a
// contract-invoking transaction: its footprint, resource bounds and the
// portion of the fee paying for them
type SorobanTransactionData struct {
	Ext         ExtensionPoint
	Resources   SorobanResources
	ResourceFee int64
}

func (s *SorobanTransactionData) EncodeTo(e *Encoder) error {
	if err := s.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := s.Resources.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt64(s.ResourceFee)
}

func (s *SorobanTransactionData) DecodeFrom(d *Decoder) error {
	if err := s.Ext.DecodeFrom(d); err != nil {
		return err
	}
	if err := s.Resources.DecodeFrom(d); err != nil {
		return err
	}
	fee, err := d.DecodeInt64()
	if err != nil {
		return err
	}
	s.ResourceFee = fee
	return nil
}
