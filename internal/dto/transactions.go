package dto

import (
	"time"

	"github.com/txdash/transactions-dashboard/internal/models"
)

// TransactionQuery is the store-level filter. Date bounds form a half-open
// interval [DateFrom, DateTo).
type TransactionQuery struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

type ListArgs struct {
	Search  string
	Page    int
	PerPage int
}

type PageMetadata struct {
	CurrentPage  int `json:"currentPage"`
	PerPage      int `json:"perPage"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

type ListResult struct {
	Data     []models.Transaction `json:"data"`
	Metadata PageMetadata         `json:"metadata"`
}
