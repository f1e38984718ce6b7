package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"contest_client/internal/common"
	"contest_client/internal/domain/model"
)

// ErrNoIdentity is returned when no participant has been persisted yet.
var ErrNoIdentity = errors.New("no stored identity")

// IdentityStore is the durable client-side storage for the participant
// identity. It is keyed globally, not per contest, and overwritten on
// each join.
type IdentityStore interface {
	Load(ctx context.Context) (*model.Participant, error)
	Save(ctx context.Context, p *model.Participant) error
}

// FileStore keeps the identity in a small JSON document on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (*model.Participant, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoIdentity
		}
		return nil, common.Errorf("failed to read identity file %s: %w", s.path, err)
	}
	var p model.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, common.Errorf("failed to parse identity file %s: %w", s.path, err)
	}
	return &p, nil
}

func (s *FileStore) Save(ctx context.Context, p *model.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return common.Errorf("failed to marshal identity: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return common.Errorf("failed to write identity file %s: %w", s.path, err)
	}
	return nil
}
