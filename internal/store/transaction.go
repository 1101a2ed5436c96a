package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/internal/errs"
	"github.com/txdash/transactions-dashboard/internal/models"
)

const transactionCollection = "transactions"

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection(transactionCollection)
}

// Query streams every transaction matching q through handle. Unfiltered
// queries are ordered by document ID so pagination over the stream is
// deterministic; date-filtered queries must order by date instead
// (Firestore requires the first order-by to match the range field).
func (s *transactionStore) Query(ctx context.Context, q dto.TransactionQuery, handle func(*models.Transaction) error) error {
	query := s.collection().Query
	if q.DateFrom != nil {
		query = query.Where("date", ">=", *q.DateFrom)
	}
	if q.DateTo != nil {
		query = query.Where("date", "<", *q.DateTo)
	}
	if q.DateFrom == nil && q.DateTo == nil {
		query = query.OrderBy(firestore.DocumentID, firestore.Asc)
	} else {
		query = query.OrderBy("date", firestore.Asc)
	}

	it := query.Documents(ctx)
	defer it.Stop()

	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			// A cancelled request (e.g. a superseded dashboard fetch) is not
			// a store failure.
			if status.Code(err) == codes.Canceled && ctx.Err() != nil {
				return ctx.Err()
			}
			return errs.NewDatabaseError("read", "failed to stream transactions", err)
		}

		var tx models.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		if err := handle(&tx); err != nil {
			return err
		}
	}
}

// UpsertBatch writes transactions through a BulkWriter. Used by the seed
// process only; no API endpoint mutates the collection.
func (s *transactionStore) UpsertBatch(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(txs))
	now := time.Now()

	for _, t := range txs {
		t.UpdatedAt = now
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.Date.IsZero() {
			t.Date = now
		}

		// Full overwrite: MergeAll is only valid for map data, and the
		// seeder owns every field of the record anyway.
		doc := s.collection().Doc(t.TransactionID)
		job, err := bw.Set(doc, t)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("write", "failed to schedule transaction write", err)
		}
		jobs = append(jobs, job)
	}

	// Flush and close the writer, then wait on each job for errors.
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("write", "failed to write transaction", err)
		}
	}

	return nil
}
