package containers

import (
	"context"
	"log/slog"

	"expense-bills-backend/internal/format"
	"expense-bills-backend/internal/models"
	"expense-bills-backend/internal/store"
)

// DisplayBill is a bill with its date and status formatted for display.
type DisplayBill models.Bill

// BillsList fetches an employee's bills and prepares them for display.
// It does not order them; ordering is a rendering concern of the view.
type BillsList struct {
	store      store.Store
	onNavigate NavigateFunc
	modal      ModalPresenter
	log        *slog.Logger
}

func NewBillsList(s store.Store, onNavigate NavigateFunc, modal ModalPresenter, log *slog.Logger) *BillsList {
	if log == nil {
		log = slog.Default()
	}
	return &BillsList{store: s, onNavigate: onNavigate, modal: modal, log: log}
}

// GetBills lists the stored bills and formats each record's date and
// status. A record with a malformed date keeps its raw date and still
// gets its status label. List failures propagate with the store's
// message ("Erreur 404", "Erreur 500") so the view can render it.
func (b *BillsList) GetBills(ctx context.Context) ([]DisplayBill, error) {
	bills, err := b.store.Bills().List(ctx)
	if err != nil {
		b.log.Error("fetching bills", "err", err)
		return nil, err
	}

	out := make([]DisplayBill, 0, len(bills))
	for _, bill := range bills {
		bill.Date = format.FormatDate(bill.Date)
		bill.Status = format.FormatStatus(bill.Status)
		out = append(out, DisplayBill(bill))
	}
	return out, nil
}

// HandleClickNewBill navigates to the new-bill form.
func (b *BillsList) HandleClickNewBill() {
	if b.onNavigate != nil {
		b.onNavigate(RouteNewBill)
	}
}

// HandleClickIconEye opens the proof image of a bill in the modal.
func (b *BillsList) HandleClickIconEye(billURL string) {
	if b.modal != nil {
		b.modal.Show(billURL)
	}
}
