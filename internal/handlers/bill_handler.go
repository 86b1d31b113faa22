package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"expense-bills-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BillStore is the slice of the repository the handlers need.
// *repository.BillRepository satisfies it.
type BillStore interface {
	ListByEmail(email string) ([]models.Bill, error)
	ListAll() ([]models.Bill, error)
	GetByID(id uuid.UUID) (*models.Bill, error)
	Create(bill *models.Bill) error
	Save(bill *models.Bill) error
	LogAction(entry *models.BillAuditLog) error
}

type BillHandler struct {
	bills     BillStore
	uploadDir string
	baseURL   string
	log       *slog.Logger
}

func NewBillHandler(bills BillStore, uploadDir, baseURL string, log *slog.Logger) *BillHandler {
	return &BillHandler{bills: bills, uploadDir: uploadDir, baseURL: baseURL, log: log}
}

// List returns the bills of one employee, or every bill when no email
// filter is given.
func (h *BillHandler) List(c *gin.Context) {
	email := c.Query("email")

	var (
		bills []models.Bill
		err   error
	)
	if email != "" {
		bills, err = h.bills.ListByEmail(email)
	} else {
		bills, err = h.bills.ListAll()
	}
	if err != nil {
		h.log.Error("listing bills", "email", email, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot list bills"})
		return
	}

	c.JSON(http.StatusOK, bills)
}

func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill ID"})
		return
	}

	bill, err := h.bills.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
		return
	}

	c.JSON(http.StatusOK, bill)
}

// Create receives the proof upload (multipart file + employee email),
// persists the file and creates the bill shell the final submission
// will fill in.
func (h *BillHandler) Create(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	email := c.PostForm("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	filename := filepath.Base(header.Filename)
	if !models.AllowedProofType(header.Header.Get("Content-Type"), filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported proof file type"})
		return
	}
	if header.Size > models.MaxProofSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proof file too large"})
		return
	}

	key := uuid.New().String()
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.log.Error("creating upload dir", "dir", h.uploadDir, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot store proof file"})
		return
	}

	dst, err := os.Create(filepath.Join(h.uploadDir, key+"-"+filename))
	if err != nil {
		h.log.Error("creating proof file", "key", key, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot store proof file"})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, models.MaxProofSizeBytes)); err != nil {
		h.log.Error("writing proof file", "key", key, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot store proof file"})
		return
	}

	bill := &models.Bill{
		ID:        uuid.New(),
		Email:     email,
		FileName:  filename,
		FileKey:   key,
		FileURL:   fmt.Sprintf("%s/uploads/%s-%s", h.baseURL, key, filename),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.bills.Create(bill); err != nil {
		h.log.Error("creating bill shell", "email", email, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot create bill"})
		return
	}

	h.audit(bill.ID, "created", email, gin.H{"fileName": filename, "key": key})

	c.JSON(http.StatusCreated, gin.H{
		"id":       bill.ID,
		"fileUrl":  bill.FileURL,
		"fileName": bill.FileName,
		"key":      bill.FileKey,
	})
}

type updateBillPayload struct {
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Vat        string  `json:"vat"`
	Pct        int     `json:"pct"`
	Commentary string  `json:"commentary"`
	Status     string  `json:"status"`
	FileURL    string  `json:"fileUrl"`
	FileName   string  `json:"fileName"`
}

// Update fills in the bill created at upload time with the submitted
// form fields.
func (h *BillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill ID"})
		return
	}

	var payload updateBillPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	bill, err := h.bills.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
		return
	}

	bill.Type = payload.Type
	bill.Name = payload.Name
	bill.Date = payload.Date
	bill.Amount = payload.Amount
	bill.Vat = payload.Vat
	bill.Pct = payload.Pct
	bill.Commentary = payload.Commentary
	bill.Status = payload.Status
	if payload.Email != "" {
		bill.Email = payload.Email
	}
	if payload.FileURL != "" {
		bill.FileURL = payload.FileURL
	}
	if payload.FileName != "" {
		bill.FileName = payload.FileName
	}
	bill.UpdatedAt = time.Now()

	if err := h.bills.Save(bill); err != nil {
		h.log.Error("updating bill", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot update bill"})
		return
	}

	h.audit(bill.ID, "updated", bill.Email, payload)

	c.JSON(http.StatusOK, bill)
}

func (h *BillHandler) audit(billID uuid.UUID, action, performedBy string, details any) {
	raw, err := json.Marshal(details)
	if err != nil {
		raw = nil
	}
	entry := &models.BillAuditLog{
		ID:          uuid.New(),
		BillID:      billID,
		Action:      action,
		PerformedBy: performedBy,
		Details:     datatypes.JSON(raw),
		CreatedAt:   time.Now(),
	}
	if err := h.bills.LogAction(entry); err != nil {
		h.log.Error("writing audit log", "billId", billID, "action", action, "err", err)
	}
}
