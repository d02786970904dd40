package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/bvqadmin/montos-api/internal/repository"
	"github.com/bvqadmin/montos-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// MontoStore is the data-access surface the handlers need. Implemented by
// *repository.MontoRepository.
type MontoStore interface {
	List(ctx context.Context, f models.ListFilter, page, limit int) ([]models.MontoColocado, models.Pagination, error)
	GetByRMV(ctx context.Context, rmv string) (*models.MontoColocado, error)
	Create(ctx context.Context, in *models.MontoInput) (*models.MontoColocado, error)
	Update(ctx context.Context, rmv string, in *models.MontoInput) (*models.MontoColocado, error)
	Delete(ctx context.Context, rmv string) (*models.MontoColocado, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// MontoHandler handles the /api/montos endpoints
type MontoHandler struct {
	store MontoStore
}

// NewMontoHandler creates a new MontoHandler
func NewMontoHandler(store MontoStore) *MontoHandler {
	return &MontoHandler{store: store}
}

const (
	defaultPage  = 1
	defaultLimit = 50
)

// listQuery carries the raw list query parameters. Everything is kept as a
// string and parsed explicitly so each bad value accumulates with the other
// violations instead of aborting on the first one.
type listQuery struct {
	EmiNombre  string
	RMV        string
	Emision    string
	FechaDesde string
	FechaHasta string
	Page       string
	Limit      string
}

// parsePagination applies the defaults and bounds: page >= 1, 1 <= limit <= 100.
func parsePagination(q listQuery) (page, limit int, fieldErrors []models.FieldError) {
	page, limit = defaultPage, defaultLimit
	if q.Page != "" {
		n, err := strconv.Atoi(q.Page)
		if err != nil || n < 1 {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "page", Message: "debe ser un número entero positivo",
			})
		} else {
			page = n
		}
	}
	if q.Limit != "" {
		n, err := strconv.Atoi(q.Limit)
		if err != nil || n < 1 || n > 100 {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "limit", Message: "debe ser un número entre 1 y 100",
			})
		} else {
			limit = n
		}
	}
	return page, limit, fieldErrors
}

// parseDateParam accepts RFC3339 or date-only values, mirroring FlexibleDate.
func parseDateParam(s string) (*time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}

// List handles GET /api/montos
// @Summary List issuance records
// @Description Lists MontoColoCadoPC records with optional filters and pagination, newest issuance date first.
// @Tags montos
// @Produce json
// @Param emi_nombre query string false "Issuer name, case-insensitive substring match"
// @Param rmv query string false "Exact RMV"
// @Param emision query string false "Exact issuance code"
// @Param fecha_desde query string false "Issuance date lower bound (YYYY-MM-DD)"
// @Param fecha_hasta query string false "Issuance date upper bound (YYYY-MM-DD)"
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size, 1-100" default(50)
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /montos [get]
func (h *MontoHandler) List(c *gin.Context) {
	q := listQuery{
		EmiNombre:  c.Query("emi_nombre"),
		RMV:        c.Query("rmv"),
		Emision:    c.Query("emision"),
		FechaDesde: c.Query("fecha_desde"),
		FechaHasta: c.Query("fecha_hasta"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	}
	page, limit, fieldErrors := parsePagination(q)

	// Empty filter values are stripped here: absent filters never reach the
	// repository.
	filter := models.ListFilter{
		EmiNombre: q.EmiNombre,
		RMV:       q.RMV,
		Emision:   q.Emision,
	}
	if q.FechaDesde != "" {
		t, ok := parseDateParam(q.FechaDesde)
		if !ok {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "fecha_desde", Message: "debe ser una fecha válida (ISO 8601)",
			})
		}
		filter.FechaDesde = t
	}
	if q.FechaHasta != "" {
		t, ok := parseDateParam(q.FechaHasta)
		if !ok {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "fecha_hasta", Message: "debe ser una fecha válida (ISO 8601)",
			})
		}
		filter.FechaHasta = t
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Errores de validación",
			Errors:  fieldErrors,
		})
		return
	}

	records, pagination, err := h.store.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	resp := models.APIResponse{
		Success:    true,
		Message:    "Registros obtenidos exitosamente",
		Data:       records,
		Pagination: &pagination,
	}
	if !filter.IsZero() {
		resp.Filters = &filter
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/montos/:rmv
// @Summary Get one issuance record
// @Tags montos
// @Produce json
// @Param rmv path string true "RMV registry identifier"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /montos/{rmv} [get]
func (h *MontoHandler) Get(c *gin.Context) {
	rmv := c.Param("rmv")
	if fieldErrors := validation.RMVParam(rmv); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Errores de validación",
			Errors:  fieldErrors,
		})
		return
	}

	record, err := h.store.GetByRMV(c.Request.Context(), rmv)
	if err != nil {
		if errors.Is(err, repository.ErrMontoNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Message: "Registro no encontrado",
			})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Registro obtenido exitosamente",
		Data:    record,
	})
}

// Create handles POST /api/montos
// @Summary Create an issuance record
// @Tags montos
// @Accept json
// @Produce json
// @Param record body models.MontoInput true "Record fields; RMV is required"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Router /montos [post]
func (h *MontoHandler) Create(c *gin.Context) {
	var input models.MontoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Cuerpo de la solicitud inválido",
			Error:   err.Error(),
		})
		return
	}

	fieldErrors := validation.Struct(&input)
	if input.RMV == nil || *input.RMV == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "RMV", Message: "es obligatorio",
		})
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Errores de validación",
			Errors:  fieldErrors,
		})
		return
	}

	record, err := h.store.Create(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, repository.ErrMissingRMV) || errors.Is(err, repository.ErrNoInsertableFields) {
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Success: false,
				Message: "No se proporcionaron datos válidos para insertar",
			})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Message: "Registro creado exitosamente",
		Data:    record,
	})
}

// Update handles PUT /api/montos/:rmv
// @Summary Partially update an issuance record
// @Description Applies only the supplied fields; RMV itself is immutable.
// @Tags montos
// @Accept json
// @Produce json
// @Param rmv path string true "RMV registry identifier"
// @Param record body models.MontoInput true "Fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /montos/{rmv} [put]
func (h *MontoHandler) Update(c *gin.Context) {
	rmv := c.Param("rmv")
	if fieldErrors := validation.RMVParam(rmv); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Errores de validación",
			Errors:  fieldErrors,
		})
		return
	}

	var input models.MontoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Cuerpo de la solicitud inválido",
			Error:   err.Error(),
		})
		return
	}

	if fieldErrors := validation.Struct(&input); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Errores de validación",
			Errors:  fieldErrors,
		})
		return
	}

	record, err := h.store.Update(c.Request.Context(), rmv, &input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMontoNotFound):
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Message: "Registro no encontrado",
			})
		case errors.Is(err, repository.ErrNoUpdatableFields):
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Success: false,
				Message: "No se proporcionaron datos válidos para actualizar",
			})
		default:
			c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Registro actualizado exitosamente",
		Data:    record,
	})
}

// Delete handles DELETE /api/montos/:rmv
// @Summary Delete an issuance record
// @Tags montos
// @Produce json
// @Param rmv path string true "RMV registry identifier"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /montos/{rmv} [delete]
func (h *MontoHandler) Delete(c *gin.Context) {
	rmv := c.Param("rmv")
	if fieldErrors := validation.RMVParam(rmv); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Errores de validación",
			Errors:  fieldErrors,
		})
		return
	}

	record, err := h.store.Delete(c.Request.Context(), rmv)
	if err != nil {
		if errors.Is(err, repository.ErrMontoNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Message: "Registro no encontrado",
			})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Registro eliminado exitosamente",
		Data:    record,
	})
}

// GetStats handles GET /api/montos/stats
// @Summary Aggregate statistics over issued amounts
// @Tags montos
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /montos/stats [get]
func (h *MontoHandler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Estadísticas obtenidas exitosamente",
		Data:    stats,
	})
}
