package services

import (
	"context"
	"strings"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/internal/models"
)

const DefaultPerPage = 10

type transactionQueryStore interface {
	Query(ctx context.Context, q dto.TransactionQuery, handle func(*models.Transaction) error) error
}

type transactionService struct {
	txs transactionQueryStore
}

func NewTransactionService(txs transactionQueryStore) *transactionService {
	return &transactionService{txs: txs}
}

// List returns one page of transactions matching args.Search, plus pagination
// metadata computed over the full filtered set. Page and perPage below 1
// coerce to 1 and DefaultPerPage. Results follow the store's stream order,
// which is stable, so identical inputs yield identical pages.
func (s *transactionService) List(ctx context.Context, args dto.ListArgs) (dto.ListResult, error) {
	page := args.Page
	if page < 1 {
		page = 1
	}
	perPage := args.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	skip := (page - 1) * perPage
	needle := strings.ToLower(args.Search)

	total := 0
	data := make([]models.Transaction, 0, perPage)
	err := s.txs.Query(ctx, dto.TransactionQuery{}, func(tx *models.Transaction) error {
		if !matchesSearch(tx, needle) {
			return nil
		}
		if total >= skip && len(data) < perPage {
			data = append(data, *tx)
		}
		total++
		return nil
	})
	if err != nil {
		return dto.ListResult{}, err
	}

	return dto.ListResult{
		Data: data,
		Metadata: dto.PageMetadata{
			CurrentPage:  page,
			PerPage:      perPage,
			TotalRecords: total,
			TotalPages:   (total + perPage - 1) / perPage,
		},
	}, nil
}

// matchesSearch reports whether needle (already lowercased) is a substring of
// the transaction's title or description. An empty needle matches everything.
func matchesSearch(tx *models.Transaction, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Title), needle) ||
		strings.Contains(strings.ToLower(tx.Description), needle)
}
