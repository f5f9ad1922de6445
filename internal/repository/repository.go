package repository

import (
	"context"

	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

type Filter struct {
	Limit  int
	Status *string
}

// LookupRepository stores the audit trail of finished sessions.
type LookupRepository interface {
	Add(ctx context.Context, l *models.Lookup) error
	ListLookups(ctx context.Context, opts Filter) ([]models.Lookup, error)
}
