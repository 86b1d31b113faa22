package repository

import (
	"expense-bills-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

// Expose DB if needed
func (r *BillRepository) DB() *gorm.DB {
	return r.db
}

// ListByEmail returns all bills submitted by one employee.
func (r *BillRepository) ListByEmail(email string) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Where("email = ?", email).Find(&bills).Error
	return bills, err
}

// ListAll returns every stored bill, for the admin listing.
func (r *BillRepository) ListAll() ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.Find(&bills).Error
	return bills, err
}

// GetByID fetch a single bill by ID
func (r *BillRepository) GetByID(id uuid.UUID) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.First(&bill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *BillRepository) Create(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

func (r *BillRepository) Save(bill *models.Bill) error {
	return r.db.Save(bill).Error
}

// LogAction records an audit row alongside a bill mutation.
func (r *BillRepository) LogAction(entry *models.BillAuditLog) error {
	return r.db.Create(entry).Error
}
