package node

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
)

// History remembers the most recent submissions in memory.
type History struct {
	cache *lru.Cache[uuid.UUID, api.SubmissionRecord]
}

func NewHistory(size int) (*History, error) {
	cache, err := lru.New[uuid.UUID, api.SubmissionRecord](size)
	if err != nil {
		return nil, xerrors.Errorf("creating submission history: %w", err)
	}
	return &History{cache: cache}, nil
}

func (h *History) Add(rec api.SubmissionRecord) {
	h.cache.Add(rec.ID, rec)
}

// List returns the remembered submissions, newest first.
func (h *History) List() []api.SubmissionRecord {
	return lo.Reverse(h.cache.Values())
}

func (h *History) Get(id uuid.UUID) (api.SubmissionRecord, bool) {
	return h.cache.Peek(id)
}
