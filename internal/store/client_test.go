package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expense-bills-backend/internal/models"
)

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bills" {
			t.Errorf("path = %q, expected /api/bills", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "a@a" {
			t.Errorf("email query = %q, expected a@a", got)
		}
		json.NewEncoder(w).Encode([]models.Bill{
			{Date: "2024-12-01", Status: "pending"},
		})
	}))
	defer srv.Close()

	bills, err := NewClient(srv.URL, "a@a").Bills().List(context.Background())
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(bills) != 1 || bills[0].Date != "2024-12-01" || bills[0].Status != "pending" {
		t.Errorf("List() = %+v, expected the served bill", bills)
	}
}

func TestClientListErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected string
	}{
		{"not found", http.StatusNotFound, "Erreur 404"},
		{"server error", http.StatusInternalServerError, "Erreur 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "a@a").Bills().List(context.Background())
			if err == nil {
				t.Fatal("List() returned nil error, expected failure")
			}
			if err.Error() != tt.expected {
				t.Errorf("error = %q, expected %q", err.Error(), tt.expected)
			}
		})
	}
}

func TestClientCreateSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, expected POST", r.Method)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("no file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "proof.png" {
			t.Errorf("filename = %q, expected proof.png", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("file content type = %q, expected image/png", ct)
		}
		if email := r.FormValue("email"); email != "employee@test.tld" {
			t.Errorf("email field = %q, expected employee@test.tld", email)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":       "47qAXb6fIm2zOKkLzMro",
			"fileUrl":  "https://localhost:3456/uploads/proof.png",
			"fileName": "proof.png",
			"key":      "abc123",
		})
	}))
	defer srv.Close()

	ref, err := NewClient(srv.URL, "employee@test.tld").Bills().Create(context.Background(), CreatePayload{
		FileName:    "proof.png",
		ContentType: "image/png",
		Email:       "employee@test.tld",
		Content:     strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if ref.BillID != "47qAXb6fIm2zOKkLzMro" {
		t.Errorf("BillID = %q, expected the served id", ref.BillID)
	}
	if ref.FileURL != "https://localhost:3456/uploads/proof.png" {
		t.Errorf("FileURL = %q, expected the served URL", ref.FileURL)
	}
}

func TestClientUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %q, expected PUT", r.Method)
		}
		if r.URL.Path != "/api/bills/bill-1" {
			t.Errorf("path = %q, expected /api/bills/bill-1", r.URL.Path)
		}
		var payload models.Bill
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("body is not a bill: %v", err)
		}
		payload.Status = models.StatusPending
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	data, _ := json.Marshal(models.Bill{Name: "repas", Status: models.StatusPending})
	bill, err := NewClient(srv.URL, "a@a").Bills().Update(context.Background(), UpdatePayload{
		Data:     data,
		Selector: "bill-1",
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if bill.Name != "repas" || bill.Status != models.StatusPending {
		t.Errorf("Update() = %+v, expected the echoed bill", bill)
	}
}

func TestClientUpdateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bill not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "a@a").Bills().Update(context.Background(), UpdatePayload{Selector: "missing"})
	if err == nil {
		t.Fatal("Update() returned nil error, expected failure")
	}
	if err.Error() != "Erreur 404" {
		t.Errorf("error = %q, expected %q", err.Error(), "Erreur 404")
	}
}
