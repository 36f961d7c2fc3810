package dto

import "github.com/shopspring/decimal"

// NameRequest alta idempotente por nombre (responsables, clientes).
type NameRequest struct {
	Name string `json:"name"`
}

// RenameRequest renombrar en sitio.
type RenameRequest struct {
	Name    string `json:"name"`
	NewName string `json:"new_name"`
}

// NamedItemResponse registro de catálogo con nombre único y bandera de activo.
type NamedItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// WellRequest alta/edición de pozo.
type WellRequest struct {
	Name           string  `json:"name"`
	NewName        string  `json:"new_name,omitempty"` // solo edición
	Latitude       *string `json:"latitude,omitempty"`
	Longitude      *string `json:"longitude,omitempty"`
	WellTrajectory *string `json:"well_trajectory,omitempty"`
	WellFluid      *string `json:"well_fluid,omitempty"`
}

// WellResponse pozo del catálogo.
type WellResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       *string `json:"latitude,omitempty"`
	Longitude      *string `json:"longitude,omitempty"`
	WellTrajectory *string `json:"well_trajectory,omitempty"`
	WellFluid      *string `json:"well_fluid,omitempty"`
	IsActive       bool    `json:"is_active"`
}

// WellMapPoint pozo con coordenadas numéricas válidas, para la vista de mapa.
// Los pozos con coordenadas no parseables no aparecen en el mapa.
type WellMapPoint struct {
	Name       string          `json:"name"`
	Latitude   decimal.Decimal `json:"latitude"`
	Longitude  decimal.Decimal `json:"longitude"`
	Trajectory *string         `json:"well_trajectory,omitempty"`
	Fluid      *string         `json:"well_fluid,omitempty"`
}

// ToolTypeRequest alta/edición de un tipo de la taxonomía.
type ToolTypeRequest struct {
	Name        string `json:"name"`
	Application string `json:"application"`
}

// ToolTypeResponse tipo de la taxonomía.
type ToolTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Application string `json:"application"`
	IsActive    bool   `json:"is_active"`
}

// EquivalenceRequest cruce proveedor↔cliente de part numbers.
type EquivalenceRequest struct {
	SupplierPN        string `json:"supplier_pn"`
	ClientPN          string `json:"client_pn"`
	ClientDescription string `json:"client_description"`
}

// EquivalenceResponse cruce registrado.
type EquivalenceResponse struct {
	ID                string `json:"id"`
	SupplierPN        string `json:"supplier_pn"`
	ClientPN          string `json:"client_pn"`
	ClientDescription string `json:"client_description"`
}
