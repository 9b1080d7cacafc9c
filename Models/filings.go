package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PersonNatural  = "Natural"
	PersonJuridica = "Juridica"
)

// TaxFiling is one client's monthly tax-compliance checklist row. Rows are
// keyed by (ClientName, Period); duplicates are prevented by an existence
// check before insert, not by a storage constraint, so older databases with
// stray duplicates keep loading.
type TaxFiling struct {
	ID                     uint           `json:"id" gorm:"primarykey"`
	CreatedAt              time.Time      `json:"-"`
	UpdatedAt              time.Time      `json:"-"`
	DeletedAt              gorm.DeletedAt `json:"-" gorm:"index"`
	ClientName             string         `json:"clientName" gorm:"index:idx_tax_client_period"`
	PersonType             string         `json:"personType"` // Natural or Juridica
	Period                 string         `json:"period" gorm:"index:idx_tax_client_period"`
	Collaborator           string         `json:"collaborator"`
	Comment                string         `json:"comment"`
	DocumentsRequested     bool           `json:"documentsRequested"`
	DocumentsProvided      bool           `json:"documentsProvided"`
	ReturnsFiled           bool           `json:"returnsFiled"`
	PaymentOrdersDelivered bool           `json:"paymentOrdersDelivered"`
	DeliveredOn            string         `json:"deliveredOn"`
}

func (TaxFiling) TableName() string {
	return "tax_filings"
}

// PayrollFiling mirrors TaxFiling for the monthly payroll checklist.
type PayrollFiling struct {
	ID                     uint           `json:"id" gorm:"primarykey"`
	CreatedAt              time.Time      `json:"-"`
	UpdatedAt              time.Time      `json:"-"`
	DeletedAt              gorm.DeletedAt `json:"-" gorm:"index"`
	ClientName             string         `json:"clientName" gorm:"index:idx_payroll_client_period"`
	PersonType             string         `json:"personType"`
	Period                 string         `json:"period" gorm:"index:idx_payroll_client_period"`
	Collaborator           string         `json:"collaborator"`
	Comment                string         `json:"comment"`
	PayrollDetail          bool           `json:"payrollDetail"`
	PayrollApproved        bool           `json:"payrollApproved"`
	PaymentOrdersDelivered bool           `json:"paymentOrdersDelivered"`
	DeliveredOn            string         `json:"deliveredOn"`
}

func (PayrollFiling) TableName() string {
	return "payroll_filings"
}
