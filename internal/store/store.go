// Package store is the client used by the employee-facing containers to
// reach the remote bills API.
package store

import (
	"context"
	"io"

	"expense-bills-backend/internal/models"
)

// FileRef is what the store hands back after a proof upload: the id of
// the bill shell it created plus where the stored file lives.
type FileRef struct {
	BillID   string `json:"id"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	Key      string `json:"key"`
}

// CreatePayload carries the proof file bytes and the submitting
// employee's email.
type CreatePayload struct {
	FileName    string
	ContentType string
	Email       string
	Content     io.Reader
}

// UpdatePayload carries the JSON-serialized bill record and the id of
// the bill shell to fill in.
type UpdatePayload struct {
	Data     []byte
	Selector string
}

type BillsClient interface {
	List(ctx context.Context) ([]models.Bill, error)
	Create(ctx context.Context, p CreatePayload) (*FileRef, error)
	Update(ctx context.Context, p UpdatePayload) (*models.Bill, error)
}

type Store interface {
	Bills() BillsClient
}
