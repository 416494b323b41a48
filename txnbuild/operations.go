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

	"github.com/blinklabs-io/gostellar/xdr"
)

// Operation is a transaction instruction that can validate itself and
// produce its wire form
type Operation interface {
	Validate() error
	BuildXDR() (xdr.Operation, error)
}

func sourceAccountPtr(source string) (*xdr.MuxedAccount, error) {
	if source == "" {
		return nil, nil
	}
	muxed, err := xdr.MuxedAccountFromAddress(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source account %q: %w", source, err)
	}
	return &muxed, nil
}

// CreateAccount funds a new account with a starting balance
type CreateAccount struct {
	Destination   string
	Amount        int64
	SourceAccount string
}

func (op *CreateAccount) Validate() error {
	if _, err := xdr.AccountIDFromAddress(op.Destination); err != nil {
		return fmt.Errorf("invalid destination %q: %w", op.Destination, err)
	}
	if op.Amount <= 0 {
		return fmt.Errorf("starting balance %d must be positive", op.Amount)
	}
	return nil
}

func (op *CreateAccount) BuildXDR() (xdr.Operation, error) {
	if err := op.Validate(); err != nil {
		return xdr.Operation{}, err
	}
	destination, err := xdr.AccountIDFromAddress(op.Destination)
	if err != nil {
		return xdr.Operation{}, err
	}
	source, err := sourceAccountPtr(op.SourceAccount)
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{
		SourceAccount: source,
		Body: xdr.OperationBody{
			Type: xdr.OperationTypeCreateAccount,
			CreateAccountOp: &xdr.CreateAccountOp{
				Destination:     destination,
				StartingBalance: op.Amount,
			},
		},
	}, nil
}

// Payment sends an amount of an asset to a destination account
type Payment struct {
	Destination   string
	Asset         xdr.Asset
	Amount        int64
	SourceAccount string
}

func (op *Payment) Validate() error {
	if _, err := xdr.MuxedAccountFromAddress(op.Destination); err != nil {
		return fmt.Errorf("invalid destination %q: %w", op.Destination, err)
	}
	if op.Amount <= 0 {
		return fmt.Errorf("payment amount %d must be positive", op.Amount)
	}
	return nil
}

func (op *Payment) BuildXDR() (xdr.Operation, error) {
	if err := op.Validate(); err != nil {
		return xdr.Operation{}, err
	}
	destination, err := xdr.MuxedAccountFromAddress(op.Destination)
	if err != nil {
		return xdr.Operation{}, err
	}
	source, err := sourceAccountPtr(op.SourceAccount)
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{
		SourceAccount: source,
		Body: xdr.OperationBody{
			Type: xdr.OperationTypePayment,
			PaymentOp: &xdr.PaymentOp{
				Destination: destination,
				Asset:       op.Asset,
				Amount:      op.Amount,
			},
		},
	}, nil
}

// ManageData sets or, with a nil value, removes a named data entry on
// the source account
type ManageData struct {
	Name          string
	Value         []byte
	SourceAccount string
}

func (op *ManageData) Validate() error {
	if op.Name == "" {
		return fmt.Errorf("data entry name must not be empty")
	}
	if len(op.Name) > 64 {
		return fmt.Errorf(
			"data entry name %q is %d bytes, maximum is 64",
			op.Name,
			len(op.Name),
		)
	}
	if len(op.Value) > 64 {
		return fmt.Errorf(
			"data entry value is %d bytes, maximum is 64",
			len(op.Value),
		)
	}
	return nil
}

func (op *ManageData) BuildXDR() (xdr.Operation, error) {
	if err := op.Validate(); err != nil {
		return xdr.Operation{}, err
	}
	source, err := sourceAccountPtr(op.SourceAccount)
	if err != nil {
		return xdr.Operation{}, err
	}
	body := &xdr.ManageDataOp{DataName: op.Name}
	if op.Value != nil {
		value := op.Value
		body.DataValue = &value
	}
	return xdr.Operation{
		SourceAccount: source,
		Body: xdr.OperationBody{
			Type:         xdr.OperationTypeManageData,
			ManageDataOp: body,
		},
	}, nil
}

// BumpSequence raises the source account's sequence number
type BumpSequence struct {
	BumpTo        int64
	SourceAccount string
}

func (op *BumpSequence) Validate() error {
	if op.BumpTo < 0 {
		return fmt.Errorf("bump target %d must not be negative", op.BumpTo)
	}
	return nil
}

func (op *BumpSequence) BuildXDR() (xdr.Operation, error) {
	if err := op.Validate(); err != nil {
		return xdr.Operation{}, err
	}
	source, err := sourceAccountPtr(op.SourceAccount)
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{
		SourceAccount: source,
		Body: xdr.OperationBody{
			Type:           xdr.OperationTypeBumpSequence,
			BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: op.BumpTo},
		},
	}, nil
}

// InvokeHostFunction runs a contract host function with its
// authorization entries
type InvokeHostFunction struct {
	HostFunction  xdr.HostFunction
	Auth          []xdr.SorobanAuthorizationEntry
	SourceAccount string
}

func (op *InvokeHostFunction) Validate() error {
	switch op.HostFunction.Type {
	case xdr.HostFunctionTypeInvokeContract,
		xdr.HostFunctionTypeCreateContract,
		xdr.HostFunctionTypeUploadWasm,
		xdr.HostFunctionTypeCreateContractV2:
		return nil
	default:
		return fmt.Errorf(
			"unknown host function type %d",
			op.HostFunction.Type,
		)
	}
}

func (op *InvokeHostFunction) BuildXDR() (xdr.Operation, error) {
	if err := op.Validate(); err != nil {
		return xdr.Operation{}, err
	}
	source, err := sourceAccountPtr(op.SourceAccount)
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{
		SourceAccount: source,
		Body: xdr.OperationBody{
			Type: xdr.OperationTypeInvokeHostFunction,
			InvokeHostFunctionOp: &xdr.InvokeHostFunctionOp{
				HostFunction: op.HostFunction,
				Auth:         op.Auth,
			},
		},
	}, nil
}

// ExtendFootprintTtl extends the time to live of the entries in the
// transaction's read-only footprint
type ExtendFootprintTtl struct {
	ExtendTo      uint32
	SourceAccount string
}

func (op *ExtendFootprintTtl) Validate() error {
	return nil
}

func (op *ExtendFootprintTtl) BuildXDR() (xdr.Operation, error) {
	source, err := sourceAccountPtr(op.SourceAccount)
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{
		SourceAccount: source,
		Body: xdr.OperationBody{
			Type: xdr.OperationTypeExtendFootprintTtl,
			ExtendFootprintTtlOp: &xdr.ExtendFootprintTtlOp{
				ExtendTo: op.ExtendTo,
			},
		},
	}, nil
}

// RestoreFootprint restores archived entries named in the transaction's
// read-write footprint
type RestoreFootprint struct {
	SourceAccount string
}

func (op *RestoreFootprint) Validate() error {
	return nil
}

func (op *RestoreFootprint) BuildXDR() (xdr.Operation, error) {
	source, err := sourceAccountPtr(op.SourceAccount)
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{
		SourceAccount: source,
		Body: xdr.OperationBody{
			Type:               xdr.OperationTypeRestoreFootprint,
			RestoreFootprintOp: &xdr.RestoreFootprintOp{},
		},
	}, nil
}
