package dto

// HistoryRowResponse una fila del historial de movimientos.
type HistoryRowResponse struct {
	Date         string  `json:"date"`
	MovementType string  `json:"movement_type"`
	PartNumber   string  `json:"part_number"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Quantity     int     `json:"quantity"`
	Location     string  `json:"location"`
	Responsible  string  `json:"responsible"`
	SalesOrder   *string `json:"sales_order,omitempty"`
	Well         *string `json:"well,omitempty"`
}

// SearchRowResponse una fila del buscador de inventario.
type SearchRowResponse struct {
	ToolID       string  `json:"tool_id"`
	PartNumber   string  `json:"part_number"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Description  string  `json:"description"`
	SpecificType string  `json:"specific_type"`
	Location     string  `json:"location"`
	Date         string  `json:"date"`
	Well         *string `json:"well,omitempty"`
	SalesOrder   *string `json:"sales_order,omitempty"`
}

// StockReportRowResponse una fila del reporte consolidado de stock.
type StockReportRowResponse struct {
	PartNumber     string  `json:"part_number"`
	SerialNumber   *string `json:"serial_number,omitempty"`
	Description    string  `json:"description"`
	WarehouseStock int     `json:"warehouse_stock"`
	FieldStock     int     `json:"field_stock"`
	InstalledStock int     `json:"installed_stock"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión administrativa.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // minutos
}
