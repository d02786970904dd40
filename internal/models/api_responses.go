package models

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       any          `json:"data,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Filters    *ListFilter  `json:"filters,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// FieldError is a single validation failure, keyed by the payload field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination describes the page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes page metadata. Pages is ceil(total/limit); zero
// matching rows yield zero pages.
func NewPagination(page, limit int, total int64) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
