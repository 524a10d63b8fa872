package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo 422: un único fallo de validación.
type ValidationErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Title      string `json:"title"`
	Field      string `json:"field"`
	FieldGroup string `json:"field_group"`
	Severity   string `json:"severity"`
}

// UnauthorizedResponse cuerpo 401 con la página a la que redirigir.
type UnauthorizedResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// HealthResponse estado del servicio y tamaño actual del catálogo en memoria.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Catalog  string `json:"catalog"`
	Stock    int    `json:"stock"`
	Packages int    `json:"packages"`
	Tracking int    `json:"tracking"`
}
