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
	"fmt"
	"time"

	"github.com/blinklabs-io/gostellar/xdr"
)

// Builder accumulates the pieces of a transaction and assembles them
// with Build. Build consumes a sequence number from the account, so
// building twice from the same builder produces two distinct
// transactions and advances the account twice.
type Builder struct {
	account         Account
	baseFee         int64
	operations      []Operation
	memo            *xdr.Memo
	timeBounds      *xdr.TimeBounds
	timeout         time.Duration
	ledgerBounds    *xdr.LedgerBounds
	minSeqNum       *int64
	minSeqAge       uint64
	minSeqLedgerGap uint32
	extraSigners    []xdr.SignerKey
	sorobanData     *xdr.SorobanTransactionData
}

// NewBuilder returns a builder drawing sequence numbers from account,
// at the minimum base fee
func NewBuilder(account Account) *Builder {
	return &Builder{
		account: account,
		baseFee: MinBaseFee,
	}
}

// SetBaseFee sets the per-operation fee
func (b *Builder) SetBaseFee(baseFee int64) *Builder {
	b.baseFee = baseFee
	return b
}

// AddOperation appends an operation
func (b *Builder) AddOperation(op Operation) *Builder {
	b.operations = append(b.operations, op)
	return b
}

// SetMemo attaches the memo. A transaction carries at most one; setting
// a second is an error.
func (b *Builder) SetMemo(memo xdr.Memo) error {
	if b.memo != nil {
		return fmt.Errorf("memo already set")
	}
	b.memo = &memo
	return nil
}

// SetTimeBounds sets an explicit validity window. Mutually exclusive
// with SetTimeout; the conflict is reported by Build.
func (b *Builder) SetTimeBounds(minTime, maxTime uint64) *Builder {
	b.timeBounds = &xdr.TimeBounds{MinTime: minTime, MaxTime: maxTime}
	return b
}

// SetTimeout sets a validity window ending the given duration after
// Build is called. Mutually exclusive with SetTimeBounds.
func (b *Builder) SetTimeout(timeout time.Duration) *Builder {
	b.timeout = timeout
	return b
}

// SetLedgerBounds restricts validity to a ledger sequence window
func (b *Builder) SetLedgerBounds(minLedger, maxLedger uint32) *Builder {
	b.ledgerBounds = &xdr.LedgerBounds{
		MinLedger: minLedger,
		MaxLedger: maxLedger,
	}
	return b
}

// SetMinSequenceNumber relaxes the sequence precondition to any source
// sequence at or above seqNum
func (b *Builder) SetMinSequenceNumber(seqNum int64) *Builder {
	b.minSeqNum = &seqNum
	return b
}

// SetMinSequenceAge requires the source sequence to be at least the
// given number of seconds old
func (b *Builder) SetMinSequenceAge(seconds uint64) *Builder {
	b.minSeqAge = seconds
	return b
}

// SetMinSequenceLedgerGap requires the source sequence to be at least
// the given number of ledgers old
func (b *Builder) SetMinSequenceLedgerGap(gap uint32) *Builder {
	b.minSeqLedgerGap = gap
	return b
}

// AddExtraSigner requires an additional signature; at most two are
// allowed
func (b *Builder) AddExtraSigner(key xdr.SignerKey) *Builder {
	b.extraSigners = append(b.extraSigners, key)
	return b
}

// SetSorobanData attaches contract resource data. Its resource fee is
// added to the built transaction's fee.
func (b *Builder) SetSorobanData(data xdr.SorobanTransactionData) *Builder {
	b.sorobanData = &data
	return b
}

func (b *Builder) usesV2Preconditions() bool {
	return b.ledgerBounds != nil ||
		b.minSeqNum != nil ||
		b.minSeqAge > 0 ||
		b.minSeqLedgerGap > 0 ||
		len(b.extraSigners) > 0
}

func (b *Builder) buildPreconditions() (xdr.Preconditions, error) {
	timeBounds := b.timeBounds
	if b.timeout > 0 {
		if timeBounds != nil {
			return xdr.Preconditions{}, fmt.Errorf(
				"timeout and explicit time bounds are mutually exclusive",
			)
		}
		timeBounds = &xdr.TimeBounds{
			MinTime: 0,
			MaxTime: uint64(time.Now().Add(b.timeout).Unix()),
		}
	}
	if b.usesV2Preconditions() {
		if len(b.extraSigners) > 2 {
			return xdr.Preconditions{}, fmt.Errorf(
				"%d extra signers, maximum is 2",
				len(b.extraSigners),
			)
		}
		return xdr.Preconditions{
			Type: xdr.PreconditionTypeV2,
			V2: &xdr.PreconditionsV2{
				TimeBounds:      timeBounds,
				LedgerBounds:    b.ledgerBounds,
				MinSeqNum:       b.minSeqNum,
				MinSeqAge:       b.minSeqAge,
				MinSeqLedgerGap: b.minSeqLedgerGap,
				ExtraSigners:    b.extraSigners,
			},
		}, nil
	}
	if timeBounds != nil {
		return xdr.Preconditions{
			Type:       xdr.PreconditionTypeTime,
			TimeBounds: timeBounds,
		}, nil
	}
	return xdr.Preconditions{Type: xdr.PreconditionTypeNone}, nil
}

// Build validates the accumulated pieces, consumes the account's next
// sequence number and returns the assembled transaction. The account's
// counter is advanced as a side effect.
func (b *Builder) Build() (*Transaction, error) {
	if len(b.operations) == 0 {
		return nil, fmt.Errorf("transaction has no operations")
	}
	if len(b.operations) > 100 {
		return nil, fmt.Errorf(
			"transaction has %d operations, maximum is 100",
			len(b.operations),
		)
	}
	if b.baseFee < MinBaseFee {
		return nil, fmt.Errorf(
			"base fee %d is below the network minimum %d",
			b.baseFee,
			MinBaseFee,
		)
	}
	cond, err := b.buildPreconditions()
	if err != nil {
		return nil, err
	}
	ops := make([]xdr.Operation, len(b.operations))
	for i, op := range b.operations {
		built, err := op.BuildXDR()
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		ops[i] = built
	}
	source, err := xdr.MuxedAccountFromAddress(b.account.GetAccountID())
	if err != nil {
		return nil, fmt.Errorf("invalid source account: %w", err)
	}
	var resourceFee int64
	ext := xdr.TransactionExt{V: 0}
	if b.sorobanData != nil {
		resourceFee = b.sorobanData.ResourceFee
		data := *b.sorobanData
		ext = xdr.TransactionExt{V: 1, SorobanData: &data}
	}
	fee, err := buildFee(b.baseFee, len(ops), resourceFee)
	if err != nil {
		return nil, err
	}
	memo := xdr.MemoNone()
	if b.memo != nil {
		memo = *b.memo
	}
	seqNum, err := b.account.IncrementSequenceNumber()
	if err != nil {
		return nil, fmt.Errorf("advancing sequence number: %w", err)
	}
	return &Transaction{
		tx: xdr.Transaction{
			SourceAccount: source,
			Fee:           fee,
			SeqNum:        seqNum,
			Cond:          cond,
			Memo:          memo,
			Operations:    ops,
			Ext:           ext,
		},
	}, nil
}
