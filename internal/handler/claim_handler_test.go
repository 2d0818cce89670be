package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zoh007/claims-management-system/internal/domain"
	"github.com/Zoh007/claims-management-system/internal/handler"
	"github.com/Zoh007/claims-management-system/internal/port"
	"github.com/Zoh007/claims-management-system/internal/service"
	"github.com/Zoh007/claims-management-system/mocks"
)

func getRequest(h gin.HandlerFunc, path string, params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, path, http.NoBody)
	c.Params = params
	h(c)
	return w
}

func TestClaimHandler_List_PassesFilter(t *testing.T) {
	mockSvc := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockSvc)

	expectedFilter := port.ClaimFilter{Search: "roe", Status: "Denied", Insurer: "Acme"}
	mockSvc.On("List", mock.Anything, expectedFilter, 2, 10).Return(&service.ClaimPage{
		Claims:   []service.ClaimSummary{},
		Total:    0,
		Page:     2,
		PageSize: 10,
	}, nil)

	w := getRequest(h.List, "/api/v1/claims?search=roe&status=Denied&insurer=Acme&page=2&page_size=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestClaimHandler_Get_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockSvc)

	mockSvc.On("Get", mock.Anything, "99999").Return(nil, domain.ErrNotFound)

	w := getRequest(h.Get, "/api/v1/claims/99999", gin.Params{{Key: "claimID", Value: "99999"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestClaimHandler_Export_CSV(t *testing.T) {
	mockSvc := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockSvc)

	claims := []domain.Claim{{
		ID:           uuid.New(),
		ClaimID:      "30001",
		PatientName:  "Jane Roe",
		InsurerName:  "Acme",
		BilledAmount: decimal.RequireFromString("100.00"),
		PaidAmount:   decimal.Zero,
		Status:       domain.StatusDenied,
	}}
	mockSvc.On("ExportData", mock.Anything).Return(claims, map[string]*domain.ClaimDetail{}, nil)

	w := getRequest(h.Export, "/api/v1/claims/export?format=csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	body := w.Body.Bytes()
	// BOM prefix, then the header row.
	require.True(t, len(body) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3])
	assert.Contains(t, w.Body.String(), "Claim ID|Patient Name")
	assert.Contains(t, w.Body.String(), "30001|Jane Roe|Acme|100.00|0.00|100.00|Denied")
}

func TestClaimHandler_Export_UnknownFormat(t *testing.T) {
	mockSvc := new(mocks.MockClaimService)
	h := handler.NewClaimHandler(mockSvc)

	mockSvc.On("ExportData", mock.Anything).Return([]domain.Claim{}, map[string]*domain.ClaimDetail{}, nil)

	w := getRequest(h.Export, "/api/v1/claims/export?format=pdf", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
