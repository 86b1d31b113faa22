package containers

import (
	"context"
	"log/slog"

	"expense-bills-backend/internal/models"
	"expense-bills-backend/internal/store"
)

// mockBillsClient scripts the store responses and records the calls.
type mockBillsClient struct {
	listFn   func(ctx context.Context) ([]models.Bill, error)
	createFn func(ctx context.Context, p store.CreatePayload) (*store.FileRef, error)
	updateFn func(ctx context.Context, p store.UpdatePayload) (*models.Bill, error)

	createCalls int
	updateCalls int
	lastCreate  store.CreatePayload
	lastUpdate  store.UpdatePayload
}

func (m *mockBillsClient) List(ctx context.Context) ([]models.Bill, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockBillsClient) Create(ctx context.Context, p store.CreatePayload) (*store.FileRef, error) {
	m.createCalls++
	m.lastCreate = p
	if m.createFn == nil {
		return &store.FileRef{}, nil
	}
	return m.createFn(ctx, p)
}

func (m *mockBillsClient) Update(ctx context.Context, p store.UpdatePayload) (*models.Bill, error) {
	m.updateCalls++
	m.lastUpdate = p
	if m.updateFn == nil {
		return &models.Bill{}, nil
	}
	return m.updateFn(ctx, p)
}

type mockStore struct {
	bills *mockBillsClient
}

func (m *mockStore) Bills() store.BillsClient { return m.bills }

type spyAlerter struct {
	messages []string
}

func (a *spyAlerter) Alert(message string) { a.messages = append(a.messages, message) }

type spyModal struct {
	shown []string
}

func (m *spyModal) Show(url string) { m.shown = append(m.shown, url) }

// spyLogHandler captures log records so tests can assert that failures
// were logged.
type spyLogHandler struct {
	records []slog.Record
}

func (h *spyLogHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *spyLogHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *spyLogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *spyLogHandler) WithGroup(string) slog.Handler      { return h }

func (h *spyLogHandler) errorCount() int {
	n := 0
	for _, r := range h.records {
		if r.Level == slog.LevelError {
			n++
		}
	}
	return n
}

func spyLogger() (*slog.Logger, *spyLogHandler) {
	h := &spyLogHandler{}
	return slog.New(h), h
}
