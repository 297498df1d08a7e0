package service

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/AnTengye/accreditation/model"
)

// ErrMissingData is returned when no contract data set has been loaded
var ErrMissingData = errors.New("data not loaded")

// ContractStore holds the full contract set. It is filled once and never mutated,
// so concurrent readers need no locking.
type ContractStore struct {
	contracts []model.Contract
}

// NewContractStore copies contracts into a new store. A nil slice means the data set
// was never supplied and yields ErrMissingData; an empty slice is a valid, empty set.
func NewContractStore(contracts []model.Contract) (*ContractStore, error) {
	if contracts == nil {
		return nil, ErrMissingData
	}
	s := &ContractStore{contracts: slices.Clone(contracts)}
	slog.Info("contract store initialized", "contracts", len(s.contracts))
	return s, nil
}

// All returns a copy of the full set in load order
func (s *ContractStore) All() []model.Contract {
	return slices.Clone(s.contracts)
}

// Get returns the contract at position i of the full set
func (s *ContractStore) Get(i int) (model.Contract, bool) {
	if i < 0 || i >= len(s.contracts) {
		return model.Contract{}, false
	}
	return s.contracts[i], true
}

// Count returns the number of contracts in the store
func (s *ContractStore) Count() int {
	return len(s.contracts)
}

// view exposes the backing slice to the read-only pipeline in this package
func (s *ContractStore) view() []model.Contract {
	return s.contracts
}
