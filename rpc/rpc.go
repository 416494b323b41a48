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

// Package rpc declares the transport capability the rest of the module
// consumes but does not implement. Implementations talk to a network
// node; every result they return is untrusted input and must be
// validated like user input.
package rpc

import (
	"context"

	"github.com/blinklabs-io/gostellar/xdr"
)

// TransactionStatus is the lifecycle state a submitted transaction
// reports
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusSuccess   TransactionStatus = "SUCCESS"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusNotFound  TransactionStatus = "NOT_FOUND"
	TransactionStatusDuplicate TransactionStatus = "DUPLICATE"
)

// SubmitTransactionResult reports the outcome of a submission
type SubmitTransactionResult struct {
	Status TransactionStatus
	Hash   xdr.Hash
	// ErrorResult carries the node's XDR error payload when the
	// submission was rejected
	ErrorResult []byte
}

// GetTransactionResult reports the state of a previously submitted
// transaction
type GetTransactionResult struct {
	Status      TransactionStatus
	Ledger      uint32
	Envelope    *xdr.TransactionEnvelope
	ResultValue *xdr.ScVal
}

// SimulateTransactionResult carries what a simulated invocation needs
// to become submittable: the unsigned authorization entries, the
// resource footprint and the minimum resource fee
type SimulateTransactionResult struct {
	Auth           []xdr.SorobanAuthorizationEntry
	SorobanData    xdr.SorobanTransactionData
	MinResourceFee int64
	ReturnValue    *xdr.ScVal
	LatestLedger   uint32
}

// Client is the transport capability boundary. The core never performs
// network I/O itself; retry and backoff policy belong to
// implementations of this interface.
type Client interface {
	SubmitTransaction(
		ctx context.Context,
		envelopeB64 string,
	) (SubmitTransactionResult, error)
	GetTransaction(
		ctx context.Context,
		hash xdr.Hash,
	) (GetTransactionResult, error)
	SimulateTransaction(
		ctx context.Context,
		envelopeB64 string,
	) (SimulateTransactionResult, error)
	GetLatestLedger(ctx context.Context) (uint32, error)
}
