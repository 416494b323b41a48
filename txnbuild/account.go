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

// Account is the sequence-number source a transaction builder draws
// from. Implementations hold the only mutable state in this package.
type Account interface {
	GetAccountID() string
	GetSequenceNumber() (int64, error)
	IncrementSequenceNumber() (int64, error)
}

// SimpleAccount is an in-memory Account. It is owned by a single
// caller; concurrent use from multiple builders requires external
// synchronization.
type SimpleAccount struct {
	AccountID string
	Sequence  int64
}

// NewSimpleAccount returns an account at the given sequence number
func NewSimpleAccount(accountID string, sequence int64) *SimpleAccount {
	return &SimpleAccount{AccountID: accountID, Sequence: sequence}
}

func (a *SimpleAccount) GetAccountID() string {
	return a.AccountID
}

func (a *SimpleAccount) GetSequenceNumber() (int64, error) {
	return a.Sequence, nil
}

// IncrementSequenceNumber advances and returns the sequence number
func (a *SimpleAccount) IncrementSequenceNumber() (int64, error) {
	a.Sequence++
	return a.Sequence, nil
}

// SetSequenceNumber overwrites the sequence number, typically after a
// fresh fetch from the network
func (a *SimpleAccount) SetSequenceNumber(sequence int64) {
	a.Sequence = sequence
}
