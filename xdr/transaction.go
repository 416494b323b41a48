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

type EnvelopeType int32

const (
	EnvelopeTypeTxV0                 EnvelopeType = 0
	EnvelopeTypeScp                  EnvelopeType = 1
	EnvelopeTypeTx                   EnvelopeType = 2
	EnvelopeTypeAuth                 EnvelopeType = 3
	EnvelopeTypeScpValue             EnvelopeType = 4
	EnvelopeTypeTxFeeBump            EnvelopeType = 5
	EnvelopeTypeOpID                 EnvelopeType = 6
	EnvelopeTypePoolRevokeOpID       EnvelopeType = 7
	EnvelopeTypeContractID           EnvelopeType = 8
	EnvelopeTypeSorobanAuthorization EnvelopeType = 9
)

type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

const maxMemoTextLen = 28

// Memo attaches a small piece of metadata to a transaction
type Memo struct {
	Type    MemoType
	Text    *string
	ID      *uint64
	Hash    *Hash
	RetHash *Hash
}

// MemoNone returns the empty memo
func MemoNone() Memo {
	return Memo{Type: MemoTypeNone}
}

// MemoText builds a text memo. The text must be at most 28 bytes.
func MemoText(text string) (Memo, error) {
	if len(text) > maxMemoTextLen {
		return Memo{}, fmt.Errorf(
			"memo text %q is %d bytes, maximum is %d",
			text,
			len(text),
			maxMemoTextLen,
		)
	}
	return Memo{Type: MemoTypeText, Text: &text}, nil
}

// MemoID builds a numeric memo
func MemoID(id uint64) Memo {
	return Memo{Type: MemoTypeID, ID: &id}
}

// MemoHash builds a hash memo
func MemoHash(h Hash) Memo {
	return Memo{Type: MemoTypeHash, Hash: &h}
}

// MemoReturn builds a return-hash memo
func MemoReturn(h Hash) Memo {
	return Memo{Type: MemoTypeReturn, RetHash: &h}
}

func (m *Memo) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(m.Type)); err != nil {
		return err
	}
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		if m.Text == nil {
			return fmt.Errorf("xdr: text memo has no text")
		}
		if len(*m.Text) > maxMemoTextLen {
			return fmt.Errorf(
				"xdr: memo text is %d bytes, maximum is %d",
				len(*m.Text),
				maxMemoTextLen,
			)
		}
		return e.EncodeString(*m.Text)
	case MemoTypeID:
		if m.ID == nil {
			return fmt.Errorf("xdr: id memo has no id")
		}
		return e.EncodeUint64(*m.ID)
	case MemoTypeHash:
		if m.Hash == nil {
			return fmt.Errorf("xdr: hash memo has no hash")
		}
		return m.Hash.EncodeTo(e)
	case MemoTypeReturn:
		if m.RetHash == nil {
			return fmt.Errorf("xdr: return memo has no hash")
		}
		return m.RetHash.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown memo type %d", m.Type)
	}
}

func (m *Memo) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*m = Memo{Type: MemoType(t)}
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		text, err := d.DecodeString()
		if err != nil {
			return err
		}
		if len(text) > maxMemoTextLen {
			return fmt.Errorf(
				"xdr: memo text is %d bytes, maximum is %d",
				len(text),
				maxMemoTextLen,
			)
		}
		m.Text = &text
		return nil
	case MemoTypeID:
		id, err := d.DecodeUint64()
		if err != nil {
			return err
		}
		m.ID = &id
		return nil
	case MemoTypeHash:
		m.Hash = new(Hash)
		return m.Hash.DecodeFrom(d)
	case MemoTypeReturn:
		m.RetHash = new(Hash)
		return m.RetHash.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown memo type %d", t)
	}
}

// TimeBounds restricts validity to a unix-time window. A zero MaxTime
// means no upper bound.
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

func (t *TimeBounds) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint64(t.MinTime); err != nil {
		return err
	}
	return e.EncodeUint64(t.MaxTime)
}

func (t *TimeBounds) DecodeFrom(d *Decoder) error {
	var err error
	if t.MinTime, err = d.DecodeUint64(); err != nil {
		return err
	}
	t.MaxTime, err = d.DecodeUint64()
	return err
}

// LedgerBounds restricts validity to a ledger sequence window. A zero
// MaxLedger means no upper bound.
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

func (l *LedgerBounds) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint32(l.MinLedger); err != nil {
		return err
	}
	return e.EncodeUint32(l.MaxLedger)
}

func (l *LedgerBounds) DecodeFrom(d *Decoder) error {
	var err error
	if l.MinLedger, err = d.DecodeUint32(); err != nil {
		return err
	}
	l.MaxLedger, err = d.DecodeUint32()
	return err
}

type PreconditionType int32

const (
	PreconditionTypeNone PreconditionType = 0
	PreconditionTypeTime PreconditionType = 1
	PreconditionTypeV2   PreconditionType = 2
)

const maxExtraSigners = 2

// PreconditionsV2 carries the full validity condition set
type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *int64
	MinSeqAge       uint64
	MinSeqLedgerGap uint32
	ExtraSigners    []SignerKey
}

func (p *PreconditionsV2) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(p.TimeBounds != nil); err != nil {
		return err
	}
	if p.TimeBounds != nil {
		if err := p.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(p.LedgerBounds != nil); err != nil {
		return err
	}
	if p.LedgerBounds != nil {
		if err := p.LedgerBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(p.MinSeqNum != nil); err != nil {
		return err
	}
	if p.MinSeqNum != nil {
		if err := e.EncodeInt64(*p.MinSeqNum); err != nil {
			return err
		}
	}
	if err := e.EncodeUint64(p.MinSeqAge); err != nil {
		return err
	}
	if err := e.EncodeUint32(p.MinSeqLedgerGap); err != nil {
		return err
	}
	if len(p.ExtraSigners) > maxExtraSigners {
		return fmt.Errorf(
			"xdr: %d extra signers, maximum is %d",
			len(p.ExtraSigners),
			maxExtraSigners,
		)
	}
	if err := e.EncodeUint32(uint32(len(p.ExtraSigners))); err != nil {
		return err
	}
	for i := range p.ExtraSigners {
		if err := p.ExtraSigners[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (p *PreconditionsV2) DecodeFrom(d *Decoder) error {
	hasTimeBounds, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if hasTimeBounds {
		p.TimeBounds = new(TimeBounds)
		if err := p.TimeBounds.DecodeFrom(d); err != nil {
			return err
		}
	}
	hasLedgerBounds, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if hasLedgerBounds {
		p.LedgerBounds = new(LedgerBounds)
		if err := p.LedgerBounds.DecodeFrom(d); err != nil {
			return err
		}
	}
	hasMinSeqNum, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if hasMinSeqNum {
		minSeqNum, err := d.DecodeInt64()
		if err != nil {
			return err
		}
		p.MinSeqNum = &minSeqNum
	}
	if p.MinSeqAge, err = d.DecodeUint64(); err != nil {
		return err
	}
	if p.MinSeqLedgerGap, err = d.DecodeUint32(); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	if n > maxExtraSigners {
		return fmt.Errorf(
			"xdr: %d extra signers, maximum is %d",
			n,
			maxExtraSigners,
		)
	}
	p.ExtraSigners = makeSlice[SignerKey](n)
	for i := range p.ExtraSigners {
		if err := p.ExtraSigners[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// Preconditions gate transaction validity. The None variant carries
// nothing, Time carries plain time bounds and V2 carries the full set.
type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

func (p *Preconditions) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(p.Type)); err != nil {
		return err
	}
	switch p.Type {
	case PreconditionTypeNone:
		return nil
	case PreconditionTypeTime:
		if p.TimeBounds == nil {
			return fmt.Errorf("xdr: time preconditions have no time bounds")
		}
		return p.TimeBounds.EncodeTo(e)
	case PreconditionTypeV2:
		if p.V2 == nil {
			return fmt.Errorf("xdr: v2 preconditions have no body")
		}
		return p.V2.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown precondition type %d", p.Type)
	}
}

func (p *Preconditions) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*p = Preconditions{Type: PreconditionType(t)}
	switch p.Type {
	case PreconditionTypeNone:
		return nil
	case PreconditionTypeTime:
		p.TimeBounds = new(TimeBounds)
		return p.TimeBounds.DecodeFrom(d)
	case PreconditionTypeV2:
		p.V2 = new(PreconditionsV2)
		return p.V2.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown precondition type %d", t)
	}
}

type OperationType int32

const (
	OperationTypeCreateAccount      OperationType = 0
	OperationTypePayment            OperationType = 1
	OperationTypeManageData         OperationType = 10
	OperationTypeBumpSequence       OperationType = 11
	OperationTypeInvokeHostFunction OperationType = 24
	OperationTypeExtendFootprintTtl OperationType = 25
	OperationTypeRestoreFootprint   OperationType = 26
)

// CreateAccountOp funds a new account with a starting balance
type CreateAccountOp struct {
	Destination     AccountID
	StartingBalance int64
}

func (o *CreateAccountOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt64(o.StartingBalance)
}

func (o *CreateAccountOp) DecodeFrom(d *Decoder) error {
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	balance, err := d.DecodeInt64()
	if err != nil {
		return err
	}
	o.StartingBalance = balance
	return nil
}

// PaymentOp sends an amount of an asset to a destination
type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

func (o *PaymentOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt64(o.Amount)
}

func (o *PaymentOp) DecodeFrom(d *Decoder) error {
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Asset.DecodeFrom(d); err != nil {
		return err
	}
	amount, err := d.DecodeInt64()
	if err != nil {
		return err
	}
	o.Amount = amount
	return nil
}

const maxDataEntryLen = 64

// ManageDataOp sets, updates or (with a nil value) removes a named data
// entry on the source account
type ManageDataOp struct {
	DataName  string
	DataValue *[]byte
}

func (o *ManageDataOp) EncodeTo(e *Encoder) error {
	if len(o.DataName) > maxDataEntryLen {
		return fmt.Errorf(
			"xdr: data name %q is %d bytes, maximum is %d",
			o.DataName,
			len(o.DataName),
			maxDataEntryLen,
		)
	}
	if err := e.EncodeString(o.DataName); err != nil {
		return err
	}
	if err := e.EncodeBool(o.DataValue != nil); err != nil {
		return err
	}
	if o.DataValue != nil {
		if len(*o.DataValue) > maxDataEntryLen {
			return fmt.Errorf(
				"xdr: data value is %d bytes, maximum is %d",
				len(*o.DataValue),
				maxDataEntryLen,
			)
		}
		return e.EncodeOpaque(*o.DataValue)
	}
	return nil
}

func (o *ManageDataOp) DecodeFrom(d *Decoder) error {
	name, err := d.DecodeString()
	if err != nil {
		return err
	}
	if len(name) > maxDataEntryLen {
		return fmt.Errorf(
			"xdr: data name is %d bytes, maximum is %d",
			len(name),
			maxDataEntryLen,
		)
	}
	o.DataName = name
	hasValue, err := d.DecodeBool()
	if err != nil {
		return err
	}
	o.DataValue = nil
	if hasValue {
		value, err := d.DecodeOpaque()
		if err != nil {
			return err
		}
		if len(value) > maxDataEntryLen {
			return fmt.Errorf(
				"xdr: data value is %d bytes, maximum is %d",
				len(value),
				maxDataEntryLen,
			)
		}
		o.DataValue = &value
	}
	return nil
}

// BumpSequenceOp raises the source account's sequence number
type BumpSequenceOp struct {
	BumpTo int64
}

func (o *BumpSequenceOp) EncodeTo(e *Encoder) error {
	return e.EncodeInt64(o.BumpTo)
}

func (o *BumpSequenceOp) DecodeFrom(d *Decoder) error {
	bumpTo, err := d.DecodeInt64()
	if err != nil {
		return err
	}
	o.BumpTo = bumpTo
	return nil
}

// InvokeHostFunctionOp runs a host function together with the
// authorization entries approving its invocation tree
type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

func (o *InvokeHostFunctionOp) EncodeTo(e *Encoder) error {
	if err := o.HostFunction.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(uint32(len(o.Auth))); err != nil {
		return err
	}
	for i := range o.Auth {
		if err := o.Auth[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *InvokeHostFunctionOp) DecodeFrom(d *Decoder) error {
	if err := o.HostFunction.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	o.Auth = makeSlice[SorobanAuthorizationEntry](n)
	for i := range o.Auth {
		if err := o.Auth[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return nil
}

// ExtendFootprintTtlOp extends the time to live of the entries in the
// transaction's read-only footprint
type ExtendFootprintTtlOp struct {
	Ext      ExtensionPoint
	ExtendTo uint32
}

func (o *ExtendFootprintTtlOp) EncodeTo(e *Encoder) error {
	if err := o.Ext.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeUint32(o.ExtendTo)
}

func (o *ExtendFootprintTtlOp) DecodeFrom(d *Decoder) error {
	if err := o.Ext.DecodeFrom(d); err != nil {
		return err
	}
	extendTo, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	o.ExtendTo = extendTo
	return nil
}

// RestoreFootprintOp restores archived entries named in the
// transaction's read-write footprint
type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

func (o *RestoreFootprintOp) EncodeTo(e *Encoder) error {
	return o.Ext.EncodeTo(e)
}

func (o *RestoreFootprintOp) DecodeFrom(d *Decoder) error {
	return o.Ext.DecodeFrom(d)
}

// OperationBody is the tagged per-kind payload of an operation
type OperationBody struct {
	Type                 OperationType
	CreateAccountOp      *CreateAccountOp
	PaymentOp            *PaymentOp
	ManageDataOp         *ManageDataOp
	BumpSequenceOp       *BumpSequenceOp
	InvokeHostFunctionOp *InvokeHostFunctionOp
	ExtendFootprintTtlOp *ExtendFootprintTtlOp
	RestoreFootprintOp   *RestoreFootprintOp
}

func (b *OperationBody) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(b.Type)); err != nil {
		return err
	}
	switch b.Type {
	case OperationTypeCreateAccount:
		if b.CreateAccountOp == nil {
			return fmt.Errorf("xdr: create account operation has no body")
		}
		return b.CreateAccountOp.EncodeTo(e)
	case OperationTypePayment:
		if b.PaymentOp == nil {
			return fmt.Errorf("xdr: payment operation has no body")
		}
		return b.PaymentOp.EncodeTo(e)
	case OperationTypeManageData:
		if b.ManageDataOp == nil {
			return fmt.Errorf("xdr: manage data operation has no body")
		}
		return b.ManageDataOp.EncodeTo(e)
	case OperationTypeBumpSequence:
		if b.BumpSequenceOp == nil {
			return fmt.Errorf("xdr: bump sequence operation has no body")
		}
		return b.BumpSequenceOp.EncodeTo(e)
	case OperationTypeInvokeHostFunction:
		if b.InvokeHostFunctionOp == nil {
			return fmt.Errorf("xdr: invoke host function operation has no body")
		}
		return b.InvokeHostFunctionOp.EncodeTo(e)
	case OperationTypeExtendFootprintTtl:
		if b.ExtendFootprintTtlOp == nil {
			return fmt.Errorf("xdr: extend footprint ttl operation has no body")
		}
		return b.ExtendFootprintTtlOp.EncodeTo(e)
	case OperationTypeRestoreFootprint:
		if b.RestoreFootprintOp == nil {
			return fmt.Errorf("xdr: restore footprint operation has no body")
		}
		return b.RestoreFootprintOp.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unsupported operation type %d", b.Type)
	}
}

func (b *OperationBody) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*b = OperationBody{Type: OperationType(t)}
	switch b.Type {
	case OperationTypeCreateAccount:
		b.CreateAccountOp = new(CreateAccountOp)
		return b.CreateAccountOp.DecodeFrom(d)
	case OperationTypePayment:
		b.PaymentOp = new(PaymentOp)
		return b.PaymentOp.DecodeFrom(d)
	case OperationTypeManageData:
		b.ManageDataOp = new(ManageDataOp)
		return b.ManageDataOp.DecodeFrom(d)
	case OperationTypeBumpSequence:
		b.BumpSequenceOp = new(BumpSequenceOp)
		return b.BumpSequenceOp.DecodeFrom(d)
	case OperationTypeInvokeHostFunction:
		b.InvokeHostFunctionOp = new(InvokeHostFunctionOp)
		return b.InvokeHostFunctionOp.DecodeFrom(d)
	case OperationTypeExtendFootprintTtl:
		b.ExtendFootprintTtlOp = new(ExtendFootprintTtlOp)
		return b.ExtendFootprintTtlOp.DecodeFrom(d)
	case OperationTypeRestoreFootprint:
		b.RestoreFootprintOp = new(RestoreFootprintOp)
		return b.RestoreFootprintOp.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unsupported operation type %d", t)
	}
}

// Operation is a single instruction in a transaction, optionally acting
// on behalf of an account other than the transaction source
type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

func (o *Operation) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(o.SourceAccount != nil); err != nil {
		return err
	}
	if o.SourceAccount != nil {
		if err := o.SourceAccount.EncodeTo(e); err != nil {
			return err
		}
	}
	return o.Body.EncodeTo(e)
}

func (o *Operation) DecodeFrom(d *Decoder) error {
	hasSource, err := d.DecodeBool()
	if err != nil {
		return err
	}
	o.SourceAccount = nil
	if hasSource {
		o.SourceAccount = new(MuxedAccount)
		if err := o.SourceAccount.DecodeFrom(d); err != nil {
			return err
		}
	}
	return o.Body.DecodeFrom(d)
}

// TransactionExt optionally attaches contract resource data
type TransactionExt struct {
	V           int32
	SorobanData *SorobanTransactionData
}

func (x *TransactionExt) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(x.V); err != nil {
		return err
	}
	switch x.V {
	case 0:
		return nil
	case 1:
		if x.SorobanData == nil {
			return fmt.Errorf("xdr: transaction ext v1 has no resource data")
		}
		return x.SorobanData.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unknown transaction ext version %d", x.V)
	}
}

func (x *TransactionExt) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*x = TransactionExt{V: v}
	switch v {
	case 0:
		return nil
	case 1:
		x.SorobanData = new(SorobanTransactionData)
		return x.SorobanData.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unknown transaction ext version %d", v)
	}
}

const maxTxOperations = 100

// Transaction is the current transaction form: a source account and
// sequence number, a total fee, validity preconditions, a memo and up
// to 100 operations
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        int64
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           TransactionExt
}

func (t *Transaction) EncodeTo(e *Encoder) error {
	if err := t.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(t.Fee); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.SeqNum); err != nil {
		return err
	}
	if err := t.Cond.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Memo.EncodeTo(e); err != nil {
		return err
	}
	if len(t.Operations) > maxTxOperations {
		return fmt.Errorf(
			"xdr: %d operations, maximum is %d",
			len(t.Operations),
			maxTxOperations,
		)
	}
	if err := e.EncodeUint32(uint32(len(t.Operations))); err != nil {
		return err
	}
	for i := range t.Operations {
		if err := t.Operations[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return t.Ext.EncodeTo(e)
}

func (t *Transaction) DecodeFrom(d *Decoder) error {
	var err error
	if err = t.SourceAccount.DecodeFrom(d); err != nil {
		return err
	}
	if t.Fee, err = d.DecodeUint32(); err != nil {
		return err
	}
	if t.SeqNum, err = d.DecodeInt64(); err != nil {
		return err
	}
	if err = t.Cond.DecodeFrom(d); err != nil {
		return err
	}
	if err = t.Memo.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	if n > maxTxOperations {
		return fmt.Errorf(
			"xdr: %d operations, maximum is %d",
			n,
			maxTxOperations,
		)
	}
	t.Operations = makeSlice[Operation](n)
	for i := range t.Operations {
		if err := t.Operations[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	return t.Ext.DecodeFrom(d)
}

// TransactionV0 is the legacy form that identifies the source account by
// a bare ed25519 key and supports only time-bound preconditions
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  uint32
	SeqNum               int64
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation
	Ext                  int32
}

func (t *TransactionV0) EncodeTo(e *Encoder) error {
	if err := t.SourceAccountEd25519.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(t.Fee); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.SeqNum); err != nil {
		return err
	}
	if err := e.EncodeBool(t.TimeBounds != nil); err != nil {
		return err
	}
	if t.TimeBounds != nil {
		if err := t.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := t.Memo.EncodeTo(e); err != nil {
		return err
	}
	if len(t.Operations) > maxTxOperations {
		return fmt.Errorf(
			"xdr: %d operations, maximum is %d",
			len(t.Operations),
			maxTxOperations,
		)
	}
	if err := e.EncodeUint32(uint32(len(t.Operations))); err != nil {
		return err
	}
	for i := range t.Operations {
		if err := t.Operations[i].EncodeTo(e); err != nil {
			return err
		}
	}
	if t.Ext != 0 {
		return fmt.Errorf("xdr: unknown transaction v0 ext version %d", t.Ext)
	}
	return e.EncodeInt32(t.Ext)
}

func (t *TransactionV0) DecodeFrom(d *Decoder) error {
	var err error
	if err = t.SourceAccountEd25519.DecodeFrom(d); err != nil {
		return err
	}
	if t.Fee, err = d.DecodeUint32(); err != nil {
		return err
	}
	if t.SeqNum, err = d.DecodeInt64(); err != nil {
		return err
	}
	hasTimeBounds, err := d.DecodeBool()
	if err != nil {
		return err
	}
	t.TimeBounds = nil
	if hasTimeBounds {
		t.TimeBounds = new(TimeBounds)
		if err := t.TimeBounds.DecodeFrom(d); err != nil {
			return err
		}
	}
	if err = t.Memo.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeUint32()
	if err != nil {
		return err
	}
	if n > maxTxOperations {
		return fmt.Errorf(
			"xdr: %d operations, maximum is %d",
			n,
			maxTxOperations,
		)
	}
	t.Operations = makeSlice[Operation](n)
	for i := range t.Operations {
		if err := t.Operations[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	ext, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if ext != 0 {
		return fmt.Errorf("xdr: unknown transaction v0 ext version %d", ext)
	}
	t.Ext = ext
	return nil
}

// V1 converts the legacy transaction to the current form, mapping the
// bare key to an ed25519 muxed account and the optional time bounds to
// the matching precondition variant
func (t *TransactionV0) V1() Transaction {
	tx := Transaction{
		SourceAccount: NewMuxedAccount(t.SourceAccountEd25519),
		Fee:        t.Fee,
		SeqNum:     t.SeqNum,
		Memo:       t.Memo,
		Operations: t.Operations,
	}
	if t.TimeBounds != nil {
		bounds := *t.TimeBounds
		tx.Cond = Preconditions{
			Type:       PreconditionTypeTime,
			TimeBounds: &bounds,
		}
	}
	return tx
}

const maxEnvelopeSignatures = 20

func encodeSignatures(e *Encoder, sigs []DecoratedSignature) error {
	if len(sigs) > maxEnvelopeSignatures {
		return fmt.Errorf(
			"xdr: %d signatures, maximum is %d",
			len(sigs),
			maxEnvelopeSignatures,
		)
	}
	if err := e.EncodeUint32(uint32(len(sigs))); err != nil {
		return err
	}
	for i := range sigs {
		if err := sigs[i].EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeSignatures(d *Decoder) ([]DecoratedSignature, error) {
	n, err := d.DecodeUint32()
	if err != nil {
		return nil, err
	}
	if n > maxEnvelopeSignatures {
		return nil, fmt.Errorf(
			"xdr: %d signatures, maximum is %d",
			n,
			maxEnvelopeSignatures,
		)
	}
	sigs := makeSlice[DecoratedSignature](n)
	for i := range sigs {
		if err := sigs[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return sigs, nil
}

// TransactionV0Envelope pairs a legacy transaction with its signatures
type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature
}

func (env *TransactionV0Envelope) EncodeTo(e *Encoder) error {
	if err := env.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, env.Signatures)
}

func (env *TransactionV0Envelope) DecodeFrom(d *Decoder) error {
	if err := env.Tx.DecodeFrom(d); err != nil {
		return err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	env.Signatures = sigs
	return nil
}

// TransactionV1Envelope pairs a transaction with its signatures
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

func (env *TransactionV1Envelope) EncodeTo(e *Encoder) error {
	if err := env.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, env.Signatures)
}

func (env *TransactionV1Envelope) DecodeFrom(d *Decoder) error {
	if err := env.Tx.DecodeFrom(d); err != nil {
		return err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	env.Signatures = sigs
	return nil
}

// FeeBumpTransaction wraps a signed transaction and replaces its fee.
// The fee source pays the new fee; the inner transaction is carried
// unchanged, signatures included.
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       int64
	InnerTx   TransactionV1Envelope
	Ext       int32
}

func (t *FeeBumpTransaction) EncodeTo(e *Encoder) error {
	if err := t.FeeSource.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.Fee); err != nil {
		return err
	}
	// the inner envelope is itself tagged
	if err := e.EncodeInt32(int32(EnvelopeTypeTx)); err != nil {
		return err
	}
	if err := t.InnerTx.EncodeTo(e); err != nil {
		return err
	}
	if t.Ext != 0 {
		return fmt.Errorf("xdr: unknown fee bump ext version %d", t.Ext)
	}
	return e.EncodeInt32(t.Ext)
}

func (t *FeeBumpTransaction) DecodeFrom(d *Decoder) error {
	var err error
	if err = t.FeeSource.DecodeFrom(d); err != nil {
		return err
	}
	if t.Fee, err = d.DecodeInt64(); err != nil {
		return err
	}
	innerType, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if EnvelopeType(innerType) != EnvelopeTypeTx {
		return fmt.Errorf(
			"xdr: unsupported inner transaction type %d",
			innerType,
		)
	}
	if err := t.InnerTx.DecodeFrom(d); err != nil {
		return err
	}
	ext, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if ext != 0 {
		return fmt.Errorf("xdr: unknown fee bump ext version %d", ext)
	}
	t.Ext = ext
	return nil
}

// FeeBumpTransactionEnvelope pairs a fee bump with the fee source's
// signatures
type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

func (env *FeeBumpTransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := env.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeSignatures(e, env.Signatures)
}

func (env *FeeBumpTransactionEnvelope) DecodeFrom(d *Decoder) error {
	if err := env.Tx.DecodeFrom(d); err != nil {
		return err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return err
	}
	env.Signatures = sigs
	return nil
}

// TransactionEnvelope is the tagged union of all envelope forms
type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

func (env *TransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(env.Type)); err != nil {
		return err
	}
	switch env.Type {
	case EnvelopeTypeTxV0:
		if env.V0 == nil {
			return fmt.Errorf("xdr: v0 envelope has no transaction")
		}
		return env.V0.EncodeTo(e)
	case EnvelopeTypeTx:
		if env.V1 == nil {
			return fmt.Errorf("xdr: v1 envelope has no transaction")
		}
		return env.V1.EncodeTo(e)
	case EnvelopeTypeTxFeeBump:
		if env.FeeBump == nil {
			return fmt.Errorf("xdr: fee bump envelope has no transaction")
		}
		return env.FeeBump.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unsupported envelope type %d", env.Type)
	}
}

func (env *TransactionEnvelope) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*env = TransactionEnvelope{Type: EnvelopeType(t)}
	switch env.Type {
	case EnvelopeTypeTxV0:
		env.V0 = new(TransactionV0Envelope)
		return env.V0.DecodeFrom(d)
	case EnvelopeTypeTx:
		env.V1 = new(TransactionV1Envelope)
		return env.V1.DecodeFrom(d)
	case EnvelopeTypeTxFeeBump:
		env.FeeBump = new(FeeBumpTransactionEnvelope)
		return env.FeeBump.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unsupported envelope type %d", t)
	}
}

// TaggedTransaction selects the transaction form being signed
type TaggedTransaction struct {
	Type    EnvelopeType
	Tx      *Transaction
	FeeBump *FeeBumpTransaction
}

func (t *TaggedTransaction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(t.Type)); err != nil {
		return err
	}
	switch t.Type {
	case EnvelopeTypeTx:
		if t.Tx == nil {
			return fmt.Errorf("xdr: tagged transaction has no transaction")
		}
		return t.Tx.EncodeTo(e)
	case EnvelopeTypeTxFeeBump:
		if t.FeeBump == nil {
			return fmt.Errorf("xdr: tagged transaction has no fee bump")
		}
		return t.FeeBump.EncodeTo(e)
	default:
		return fmt.Errorf("xdr: unsupported tagged transaction type %d", t.Type)
	}
}

func (t *TaggedTransaction) DecodeFrom(d *Decoder) error {
	typ, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*t = TaggedTransaction{Type: EnvelopeType(typ)}
	switch t.Type {
	case EnvelopeTypeTx:
		t.Tx = new(Transaction)
		return t.Tx.DecodeFrom(d)
	case EnvelopeTypeTxFeeBump:
		t.FeeBump = new(FeeBumpTransaction)
		return t.FeeBump.DecodeFrom(d)
	default:
		return fmt.Errorf("xdr: unsupported tagged transaction type %d", typ)
	}
}

// TransactionSignaturePayload is the structure whose hash every
// transaction signature covers. Binding the network id prevents
// signatures from replaying across networks.
type TransactionSignaturePayload struct {
	NetworkID         Hash
	TaggedTransaction TaggedTransaction
}

func (p *TransactionSignaturePayload) EncodeTo(e *Encoder) error {
	if err := p.NetworkID.EncodeTo(e); err != nil {
		return err
	}
	return p.TaggedTransaction.EncodeTo(e)
}

func (p *TransactionSignaturePayload) DecodeFrom(d *Decoder) error {
	if err := p.NetworkID.DecodeFrom(d); err != nil {
		return err
	}
	return p.TaggedTransaction.DecodeFrom(d)
}
