package dto

// ImportationItem una línea de importación. La categoría se deriva del serial:
// con serial es Unique, sin serial es stock fungible (Miscellaneous).
type ImportationItem struct {
	PartNumber   string            `json:"part_number"`
	SerialNumber *string           `json:"serial_number,omitempty"`
	Description  string            `json:"description"`
	Quantity     int               `json:"quantity"`
	Application  string            `json:"application"`
	SpecificType string            `json:"specific_type"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

// ImportationRequest body para POST /api/inventory/importations.
type ImportationRequest struct {
	SalesOrder  string            `json:"sales_order"`
	Responsible string            `json:"responsible"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Items       []ImportationItem `json:"items"`
}

// DispatchItem una línea de despacho a campo.
type DispatchItem struct {
	ToolID   string `json:"tool_id"`
	Quantity int    `json:"quantity"`
}

// DispatchRequest body para POST /api/inventory/dispatches.
type DispatchRequest struct {
	Responsible string         `json:"responsible"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Well        string         `json:"well"`
	Items       []DispatchItem `json:"items"`
}

// ReturnItem una línea de retorno a bodega; arrastra el pozo del despacho.
type ReturnItem struct {
	ToolID   string  `json:"tool_id"`
	Quantity int     `json:"quantity"`
	Well     *string `json:"well,omitempty"`
}

// ReturnRequest body para POST /api/inventory/returns.
type ReturnRequest struct {
	Responsible string       `json:"responsible"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Items       []ReturnItem `json:"items"`
}

// FieldStatusRequest body para POST /api/inventory/field-status.
// Status: Installed | RevertInstallation | Returned.
type FieldStatusRequest struct {
	ToolID      string `json:"tool_id"`
	Status      string `json:"status"`
	Responsible string `json:"responsible"`
	Date        string `json:"date"` // YYYY-MM-DD
	Quantity    int    `json:"quantity"`
	Well        string `json:"well"`
}

// StockLineResponse una línea de stock derivado.
type StockLineResponse struct {
	ToolID       string  `json:"tool_id"`
	DisplayName  string  `json:"display_name"`
	PartNumber   string  `json:"part_number"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	Well         *string `json:"well,omitempty"`
}

// ToolResponse detalle de una herramienta del registro.
type ToolResponse struct {
	ID           string            `json:"id"`
	PartNumber   string            `json:"part_number"`
	SerialNumber *string           `json:"serial_number,omitempty"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Application  string            `json:"application"`
	SpecificType string            `json:"specific_type"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	IsActive     bool              `json:"is_active"`
}
