package usecase

import (
	"context"

	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/internal/ledger"
	"go-jobhunt-backend/internal/search"
	"go-jobhunt-backend/pkg/logger"
)

type searchUsecase struct {
	ledger *ledger.Ledger
}

func NewSearchUsecase(l *ledger.Ledger) domain.SearchUsecase {
	return &searchUsecase{ledger: l}
}

// Search returns the mock catalogue and records every listing not yet
// in the ledger. Duplicate URLs are skipped silently; callers only see
// the appended count.
func (u *searchUsecase) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	listings := search.Listings(params)

	added, err := u.ledger.Append(listings)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Search ingested listings",
		"role", params.Role, "location", params.Location,
		"results", len(listings), "added", added)

	return &domain.SearchResult{Listings: listings, Added: added}, nil
}
