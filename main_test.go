package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnTengye/accreditation/config"
	"github.com/AnTengye/accreditation/model"
	"github.com/AnTengye/accreditation/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const sampleTSV = "Yes\t1/10/24\t80%\tNo\t\tScheduled\t3/3/25\tEngineering\tComputer Science\tKing Saud University\tBachelor\tAccredited\t1/1/20\t6/30/25\n" +
	"\t\t\t\t\t\t\tHealth\tNursing\tQassim University\tMaster\t\t9/1/21\t\n" +
	"broken\tline\n"

func TestConvertTSV(t *testing.T) {
	data, result, err := convertTSV(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, result.InvalidLines)

	contracts, err := service.LoadContracts(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	assert.Equal(t, "King Saud University", contracts[0].University)
	assert.Equal(t, "2025-06-30", contracts[0].EndDate.String())
	assert.False(t, contracts[1].EndDate.Valid)
}

func TestPrintSummary(t *testing.T) {
	_, result, err := convertTSV(strings.NewReader(sampleTSV))
	require.NoError(t, err)

	var out bytes.Buffer
	printSummary(&out, service.Summarize(result.Contracts, 10))

	text := out.String()
	assert.Contains(t, text, "Total contracts: 2")
	assert.Contains(t, text, "Universities: 2")
	assert.Contains(t, text, " 1. King Saud University: 1")
	assert.Contains(t, text, "first half 2025:  1")
	assert.Contains(t, text, "unknown:          1")
}

func TestRouterWithoutData(t *testing.T) {
	router := newRouter(config.Default(), nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, false, health["data"])

	req = httptest.NewRequest("GET", "/api/stats", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterWithData(t *testing.T) {
	store, err := service.NewContractStore([]model.Contract{
		{University: "King Saud University", Management: "Engineering", Program: "Computer Science", EndDate: model.ParseDate("2025-06-30")},
	})
	require.NoError(t, err)
	dash, err := service.NewDashboard(store)
	require.NoError(t, err)

	router := newRouter(config.Default(), dash)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"contracts":1`)

	req = httptest.NewRequest("GET", "/api/stats", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))

	var stats service.TimePeriodStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.H1_2025)
	assert.Equal(t, 1, stats.Total)
}

func TestDataSource(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Path = "testdata.json"

	src, err := dataSource(cfg)
	require.NoError(t, err)
	assert.Equal(t, service.FileSource{Path: "testdata.json"}, src)

	cfg.Data.Source = "ftp"
	_, err = dataSource(cfg)
	assert.Error(t, err)
}
