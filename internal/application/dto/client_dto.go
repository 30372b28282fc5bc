package dto

import "time"

// ClientInfoRequest datos de contacto de un cliente (alta y edición).
type ClientInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PatchClientInfoRequest edición parcial del perfil: los campos nil no se tocan.
// Active no está expuesto: un perfil dado de baja nunca vuelve a activarse.
type PatchClientInfoRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// ClientInfoResponse representación de salida del perfil de cliente.
type ClientInfoResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Active       bool      `json:"active"`
	CreationDate time.Time `json:"creation_date"`
	UpdateDate   time.Time `json:"update_date"`
}

// ClientInfoListResponse página de perfiles.
type ClientInfoListResponse struct {
	Items []ClientInfoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreatePersonRequest alta de persona junto con su perfil de cliente.
type CreatePersonRequest struct {
	BirthDate  time.Time         `json:"birth_date"`
	ClientInfo ClientInfoRequest `json:"client_info"`
}

// UpdatePersonRequest edición de persona. BirthDate no es editable por esta vía.
type UpdatePersonRequest struct {
	ID         string            `json:"id"`
	ClientInfo ClientInfoRequest `json:"client_info"`
}

// PatchPersonRequest edición parcial de persona (solo campos del perfil).
type PatchPersonRequest struct {
	ID         string                 `json:"id"`
	ClientInfo PatchClientInfoRequest `json:"client_info"`
}

// PersonResponse representación de salida de una persona con su perfil.
type PersonResponse struct {
	ID         string             `json:"id"`
	BirthDate  time.Time          `json:"birth_date"`
	ClientInfo ClientInfoResponse `json:"client_info"`
}

// PersonListResponse página de personas.
type PersonListResponse struct {
	Items []PersonResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateCompanyRequest alta de empresa junto con su perfil de cliente.
type CreateCompanyRequest struct {
	CompanyIdentifier string            `json:"company_identifier"`
	ClientInfo        ClientInfoRequest `json:"client_info"`
}

// UpdateCompanyRequest edición de empresa. CompanyIdentifier no es editable por esta vía.
type UpdateCompanyRequest struct {
	ID         string            `json:"id"`
	ClientInfo ClientInfoRequest `json:"client_info"`
}

// PatchCompanyRequest edición parcial de empresa (solo campos del perfil).
type PatchCompanyRequest struct {
	ID         string                 `json:"id"`
	ClientInfo PatchClientInfoRequest `json:"client_info"`
}

// CompanyResponse representación de salida de una empresa con su perfil.
type CompanyResponse struct {
	ID                string             `json:"id"`
	CompanyIdentifier string             `json:"company_identifier"`
	ClientInfo        ClientInfoResponse `json:"client_info"`
}

// CompanyListResponse página de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
