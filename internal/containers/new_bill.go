package containers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"expense-bills-backend/internal/models"
	"expense-bills-backend/internal/session"
	"expense-bills-backend/internal/store"
)

// InvalidFileTypeMessage is the alert raised on a bad proof selection.
// The exact wording is a contract surface.
const InvalidFileTypeMessage = "Invalid file type. Please upload a JPG, JPEG, or PNG image."

var (
	// ErrInvalidFileType reports a rejected proof selection.
	ErrInvalidFileType = errors.New("invalid proof file type")
	// ErrNoProof reports a form submission with no uploaded proof to
	// correlate against.
	ErrNoProof = errors.New("no proof file has been uploaded")
)

// File is a locally selected proof file.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// FormFields are the values read from the new-bill form on submit.
type FormFields struct {
	Type       string
	Name       string
	Amount     float64
	Date       string
	Vat        string
	Pct        int
	Commentary string
}

// PendingUpload is the stored result of a proof upload, kept until the
// form is submitted or another file replaces it.
type PendingUpload struct {
	BillID   string
	FileURL  string
	FileName string
}

// NewBill drives the new-bill submission workflow: validate the proof
// selection, upload it right away, then fill in the created bill on
// form submit.
//
// All methods are meant for a single event-driven goroutine. Upload and
// submission are independent operations and are not serialized:
// submitting while an upload is still in flight fails with ErrNoProof.
type NewBill struct {
	store      store.Store
	onNavigate NavigateFunc
	alerter    Alerter
	user       session.UserContext
	log        *slog.Logger

	pending *PendingUpload
}

func NewNewBill(s store.Store, onNavigate NavigateFunc, alerter Alerter, user session.UserContext, log *slog.Logger) *NewBill {
	if log == nil {
		log = slog.Default()
	}
	return &NewBill{store: s, onNavigate: onNavigate, alerter: alerter, user: user, log: log}
}

// HandleChangeFile validates the selected proof and uploads it. An
// invalid selection clears any previous one and alerts the user; an
// upload failure is logged and the user may reselect to retry.
func (n *NewBill) HandleChangeFile(ctx context.Context, file File) error {
	if !models.AllowedProofType(file.ContentType, file.Name) {
		n.pending = nil
		if n.alerter != nil {
			n.alerter.Alert(InvalidFileTypeMessage)
		}
		return ErrInvalidFileType
	}

	ref, err := n.store.Bills().Create(ctx, store.CreatePayload{
		FileName:    file.Name,
		ContentType: file.ContentType,
		Email:       n.user.Email,
		Content:     file.Content,
	})
	if err != nil {
		n.log.Error("uploading proof file", "file", file.Name, "err", err)
		n.pending = nil
		return fmt.Errorf("uploading proof file: %w", err)
	}

	n.pending = &PendingUpload{
		BillID:   ref.BillID,
		FileURL:  ref.FileURL,
		FileName: file.Name,
	}
	return nil
}

// FileName reports the currently selected proof file, "" when none.
func (n *NewBill) FileName() string {
	if n.pending == nil {
		return ""
	}
	return n.pending.FileName
}

// HandleSubmit assembles the bill from the form fields and the uploaded
// proof reference and sends it as an update of the bill shell created
// at upload time. On success it navigates back to the bills list; on
// failure it logs and leaves the form state untouched for a retry.
func (n *NewBill) HandleSubmit(ctx context.Context, fields FormFields) error {
	if n.pending == nil || n.pending.BillID == "" {
		n.log.Error("submitting bill without an uploaded proof")
		return ErrNoProof
	}

	pct := fields.Pct
	if pct == 0 {
		pct = 20
	}

	bill := models.Bill{
		Email:      n.user.Email,
		Type:       fields.Type,
		Name:       fields.Name,
		Date:       fields.Date,
		Amount:     fields.Amount,
		Vat:        fields.Vat,
		Pct:        pct,
		Commentary: fields.Commentary,
		Status:     models.StatusPending,
		FileURL:    n.pending.FileURL,
		FileName:   n.pending.FileName,
	}

	data, err := json.Marshal(bill)
	if err != nil {
		return fmt.Errorf("serializing bill: %w", err)
	}

	if _, err := n.store.Bills().Update(ctx, store.UpdatePayload{
		Data:     data,
		Selector: n.pending.BillID,
	}); err != nil {
		n.log.Error("submitting bill", "billId", n.pending.BillID, "err", err)
		return fmt.Errorf("submitting bill: %w", err)
	}

	n.pending = nil
	if n.onNavigate != nil {
		n.onNavigate(RouteBills)
	}
	return nil
}
