package models

import (
	"time"
)

// Transaction is the single persisted record type: an item for sale with its
// sale status and amount. The document ID doubles as TransactionID.
type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"id"`
	Title         string    `firestore:"title" json:"title"`
	Description   string    `firestore:"description" json:"description"`
	Price         float64   `firestore:"price" json:"price"`
	Sold          bool      `firestore:"sold" json:"sold"`
	SaleAmount    float64   `firestore:"saleAmount" json:"saleAmount"`
	Category      string    `firestore:"category" json:"category,omitempty"`
	Date          time.Time `firestore:"date" json:"date"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
