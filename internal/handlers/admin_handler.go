package handlers

import (
	"math"
	"net/http"

	"github.com/Artser/ProStore/internal/admin"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminHandler serves the database table viewer over the closed admin
// resource registry
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// RegisterAdminRoutes registers the table viewer routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/admin/tables", h.ListTables)
	g.GET("/admin/tables/:name", h.GetTableRows)
	g.POST("/admin/tables/:name", h.CreateRow)
	g.PUT("/admin/tables/:name", h.UpdateRow)
	g.DELETE("/admin/tables/:name", h.DeleteRow)
}

// tableInfo summarizes one browsable table
type tableInfo struct {
	Name      string `json:"name"`
	Table     string `json:"table"`
	Count     int64  `json:"count"`
	Available bool   `json:"available"`
}

// ListTables reports every registered resource with its row count
func (h *AdminHandler) ListTables(c echo.Context) error {
	infos := make([]tableInfo, 0, len(admin.Resources()))
	for _, res := range admin.Resources() {
		info := tableInfo{Name: res.Name, Table: res.Table}
		var count int64
		if err := h.db.Model(res.NewRecord()).Count(&count).Error; err != nil {
			log.Warn().Err(err).Str("table", res.Table).Msg("admin: table unavailable")
		} else {
			info.Count = count
			info.Available = true
		}
		infos = append(infos, info)
	}
	return c.JSON(http.StatusOK, echo.Map{"tables": infos})
}

// GetTableRows returns one page of rows in a stable key order
func (h *AdminHandler) GetTableRows(c echo.Context) error {
	res, ok := admin.Lookup(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown table")
	}

	page, limit := pageParams(c)

	var total int64
	if err := h.db.Model(res.NewRecord()).Count(&total).Error; err != nil {
		log.Error().Err(err).Str("table", res.Table).Msg("admin: count failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	rows := res.NewSlice()
	err := h.db.Model(res.NewRecord()).
		Order(res.OrderBy).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(rows).Error
	if err != nil {
		log.Error().Err(err).Str("table", res.Table).Msg("admin: list failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data": rows,
		"pagination": echo.Map{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// CreateRow inserts a row bound into the resource's typed schema
func (h *AdminHandler) CreateRow(c echo.Context) error {
	res, ok := admin.Lookup(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown table")
	}

	record := res.NewRecord()
	if err := c.Bind(record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := h.db.Create(record).Error; err != nil {
		log.Error().Err(err).Str("table", res.Table).Msg("admin: create failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusCreated, record)
}

// UpdateRow updates the row identified by the id query parameter
func (h *AdminHandler) UpdateRow(c echo.Context) error {
	res, ok := admin.Lookup(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown table")
	}
	if !res.HasID {
		return echo.NewHTTPError(http.StatusBadRequest, "Table has no single-column id")
	}

	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id query parameter is required")
	}

	record := res.NewRecord()
	if err := c.Bind(record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result := h.db.Model(res.NewRecord()).Where("id = ?", id).Updates(record)
	if result.Error != nil {
		log.Error().Err(result.Error).Str("table", res.Table).Msg("admin: update failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Row not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// DeleteRow removes the row identified by the id query parameter
func (h *AdminHandler) DeleteRow(c echo.Context) error {
	res, ok := admin.Lookup(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown table")
	}
	if !res.HasID {
		return echo.NewHTTPError(http.StatusBadRequest, "Table has no single-column id")
	}

	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id query parameter is required")
	}

	result := h.db.Where("id = ?", id).Delete(res.NewRecord())
	if result.Error != nil {
		log.Error().Err(result.Error).Str("table", res.Table).Msg("admin: delete failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Row not found")
	}

	return c.NoContent(http.StatusNoContent)
}
