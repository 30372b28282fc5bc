package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest alta de contrato. Exactamente uno de PersonID/CompanyID
// debe venir informado.
type CreateContractRequest struct {
	StartDate  time.Time       `json:"start_date"`
	EndDate    *time.Time      `json:"end_date"`
	CostAmount decimal.Decimal `json:"cost_amount"`
	PersonID   *string         `json:"person_id"`
	CompanyID  *string         `json:"company_id"`
}

// UpdateContractRequest actualización completa de contrato.
type UpdateContractRequest struct {
	ID         string          `json:"id"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    *time.Time      `json:"end_date"`
	CostAmount decimal.Decimal `json:"cost_amount"`
	UpdateDate time.Time       `json:"update_date"`
	PersonID   *string         `json:"person_id"`
	CompanyID  *string         `json:"company_id"`
}

// PatchContractRequest actualización parcial: los campos nil no se tocan.
type PatchContractRequest struct {
	ID         string           `json:"id"`
	StartDate  *time.Time       `json:"start_date"`
	EndDate    *time.Time       `json:"end_date"`
	CostAmount *decimal.Decimal `json:"cost_amount"`
	PersonID   *string          `json:"person_id"`
	CompanyID  *string          `json:"company_id"`
}

// ContractResponse representación de salida de un contrato.
type ContractResponse struct {
	ID           string          `json:"id"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	CostAmount   decimal.Decimal `json:"cost_amount"`
	PersonID     *string         `json:"person_id,omitempty"`
	CompanyID    *string         `json:"company_id,omitempty"`
	CreationDate time.Time       `json:"creation_date"`
	UpdateDate   time.Time       `json:"update_date"`
}

// ContractListResponse página de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CostTotalResponse total de costos de contratos vigentes de un dueño.
type CostTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}
