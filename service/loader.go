package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/AnTengye/accreditation/model"
	"github.com/go-playground/validator/v10"
)

// Source opens the raw contract data set
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// FileSource reads the data set from the local filesystem
type FileSource struct {
	Path string
}

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, s.Path)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s FileSource) Name() string {
	return s.Path
}

var validate = validator.New()

// LoadContracts decodes a JSON array of contracts. The legacy script form
// `const contractsData = [...];` is accepted as well. Records failing validation
// are skipped with a warning; a null or absent array is ErrMissingData.
func LoadContracts(r io.Reader) ([]model.Contract, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data set: %w", err)
	}

	payload, err := extractArray(data)
	if err != nil {
		return nil, err
	}

	var raw []model.Contract
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode data set: %w", err)
	}
	if raw == nil {
		return nil, ErrMissingData
	}

	contracts := make([]model.Contract, 0, len(raw))
	for i, c := range raw {
		if err := validate.Struct(c); err != nil {
			slog.Warn("skipping invalid contract", "index", i, "error", err)
			continue
		}
		if c.EndDate.Raw != "" && !c.EndDate.Valid {
			slog.Warn("unparseable end date", "index", i, "end_date", c.EndDate.Raw)
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

func extractArray(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrMissingData
	}
	if trimmed[0] == '[' || bytes.Equal(trimmed, []byte("null")) {
		return trimmed, nil
	}

	start := bytes.IndexByte(trimmed, '[')
	end := bytes.LastIndexByte(trimmed, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no contract array found", ErrMissingData)
	}
	return trimmed[start : end+1], nil
}

// LoadStore reads and validates the data set from src into a new store
func LoadStore(ctx context.Context, src Source) (*ContractStore, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	contracts, err := LoadContracts(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}

	slog.Info("contract data set loaded", "source", src.Name(), "contracts", len(contracts))
	return NewContractStore(contracts)
}
