package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AnTengye/accreditation/config"
	"github.com/AnTengye/accreditation/middleware"
	"github.com/AnTengye/accreditation/pkg/logger"
	"github.com/AnTengye/accreditation/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dash *service.Dashboard
	cfg  *config.Config
}

// NewDashboardHandler serves the dashboard views of dash. A nil dash means the
// data set could not be loaded and every view answers 503.
func NewDashboardHandler(dash *service.Dashboard, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{dash: dash, cfg: cfg}
}

// RegisterRoutes mounts the read-only dashboard API on rg
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(h.requireData())

	rg.GET("/stats", middleware.View("dashboard"), h.Stats)
	rg.GET("/charts", middleware.View("dashboard"), h.Charts)
	rg.GET("/counts/:field", middleware.View("counts"), h.Counts)
	rg.GET("/groups/:field", middleware.View("groups"), h.Groups)
	rg.GET("/specializations", middleware.View("specializations"), h.Specializations)
	rg.GET("/contracts", middleware.View("contracts"), h.Contracts)
	rg.GET("/contracts/:index", middleware.View("contract"), h.Contract)
	rg.GET("/timeline", middleware.View("timeline"), h.Timeline)
	rg.GET("/facets", middleware.View("contracts"), h.Facets)
}

func (h *DashboardHandler) requireData() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.dash == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": service.ErrMissingData.Error()})
			return
		}
		c.Next()
	}
}

// Stats returns the end date distribution over the time buckets
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.Stats())
}

// Charts returns the rankings shown on the dashboard view
func (h *DashboardHandler) Charts(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.Charts())
}

// Counts returns the value counts of one field, ranked and optionally capped
func (h *DashboardHandler) Counts(c *gin.Context) {
	field, ok := h.field(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("cap"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cap must be a non-negative integer"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, h.dash.Counts(field, limit))
}

// Groups returns one card per distinct value of the field, optionally narrowed
// by a case-insensitive search over the group key
func (h *DashboardHandler) Groups(c *gin.Context) {
	field, ok := h.field(c)
	if !ok {
		return
	}
	search := c.Query("search")

	switch field {
	case service.FieldUniversity:
		c.JSON(http.StatusOK, gin.H{"field": field, "groups": h.dash.Universities(search)})
	case service.FieldDepartment:
		c.JSON(http.StatusOK, gin.H{"field": field, "groups": h.dash.Departments(search)})
	case service.FieldProgram:
		c.JSON(http.StatusOK, gin.H{"field": field, "groups": h.dash.Specializations(search, "")})
	default:
		groups := service.SearchGroups(h.dash.Groups(field).Ordered, search)
		rows := make([]service.FacetCount, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, service.FacetCount{Value: g.Key, Count: len(g.Contracts)})
		}
		c.JSON(http.StatusOK, gin.H{"field": field, "groups": rows})
	}
}

// Specializations returns the program cards of one category slug
func (h *DashboardHandler) Specializations(c *gin.Context) {
	category := c.DefaultQuery("category", service.All)
	search := c.Query("search")

	department := service.All
	if category != "" && category != service.All {
		dept, ok := h.cfg.Category(category)
		if !ok {
			logger.Debug(c.Request.Context(), "unknown specialization category", "category", category)
			c.JSON(http.StatusOK, gin.H{"category": category, "specializations": []service.SpecializationSummary{}})
			return
		}
		department = dept
	}

	c.JSON(http.StatusOK, gin.H{
		"category":        category,
		"specializations": h.dash.Specializations(search, department),
	})
}

// Contracts returns the filtered contracts view
func (h *DashboardHandler) Contracts(c *gin.Context) {
	var filter service.ContractFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.dash.Contracts(filter))
}

// Contract returns a single contract by its index in the full data set
func (h *DashboardHandler) Contract(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	row, ok := h.dash.Contract(index)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, row)
}

// Timeline returns the contracts of one time bucket grouped by end date
func (h *DashboardHandler) Timeline(c *gin.Context) {
	filter, err := service.ParseTimelineFilter(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.dash.Timeline(filter))
}

// Facets returns the options of the contract filter selects
func (h *DashboardHandler) Facets(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.Facets())
}

func (h *DashboardHandler) field(c *gin.Context) (service.Field, bool) {
	field, err := service.ParseField(c.Param("field"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUnknownField) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return "", false
	}
	return field, true
}
