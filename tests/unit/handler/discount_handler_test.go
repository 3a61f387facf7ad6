package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billingdesk/internal/domain"
	"billingdesk/internal/handler"
	"billingdesk/mocks"
)

func newDiscountHandler() (*handler.DiscountHandler, *mocks.MockDiscountService) {
	mockSvc := new(mocks.MockDiscountService)
	h := handler.NewDiscountHandler(mockSvc)
	return h, mockSvc
}

func jsonContext(w *httptest.ResponseRecorder, method string, body interface{}) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	payload, _ := json.Marshal(body)
	c.Request, _ = http.NewRequest(method, "/api/v1/tenant-discounts", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestDiscountHandler_List_Success(t *testing.T) {
	h, mockSvc := newDiscountHandler()

	mockSvc.On("GetAll", mock.Anything).Return(map[string]map[string]float64{
		"t-1": {"keepit|keepit backup": 10},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/tenant-discounts", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                      `json:"success"`
		Data    handler.DiscountsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.InDelta(t, 10.0, resp.Data.Discounts["t-1"]["keepit|keepit backup"], 1e-9)
}

func TestDiscountHandler_Upsert_Success(t *testing.T) {
	h, mockSvc := newDiscountHandler()

	rate := 12.5
	override := &domain.DiscountOverride{TenantID: "t-1", ProductKey: "keepit|keepit backup", Rate: 12.5}
	mockSvc.On("Set", mock.Anything, "t-1", "Keepit", "Keepit Backup", mock.MatchedBy(func(r *float64) bool {
		return r != nil && *r == rate
	})).Return(override, nil)

	w := httptest.NewRecorder()
	c := jsonContext(w, http.MethodPut, map[string]interface{}{
		"tenantId":    "t-1",
		"vendorName":  "Keepit",
		"productName": "Keepit Backup",
		"rate":        rate,
	})

	h.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDiscountHandler_Upsert_NullRateRemoves(t *testing.T) {
	h, mockSvc := newDiscountHandler()

	mockSvc.On("Set", mock.Anything, "t-1", "Keepit", "Keepit Backup", (*float64)(nil)).Return(nil, nil)

	w := httptest.NewRecorder()
	c := jsonContext(w, http.MethodPut, map[string]interface{}{
		"tenantId":    "t-1",
		"vendorName":  "Keepit",
		"productName": "Keepit Backup",
		"rate":        nil,
	})

	h.Upsert(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDiscountHandler_Upsert_MissingFields(t *testing.T) {
	h, mockSvc := newDiscountHandler()

	w := httptest.NewRecorder()
	c := jsonContext(w, http.MethodPut, map[string]interface{}{
		"tenantId": "t-1",
		// missing vendorName and productName
	})

	h.Upsert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Set")
}

func TestDiscountHandler_Delete_Success(t *testing.T) {
	h, mockSvc := newDiscountHandler()

	mockSvc.On("Remove", mock.Anything, "t-1", "Keepit", "Keepit Backup").Return(nil)

	w := httptest.NewRecorder()
	c := jsonContext(w, http.MethodDelete, map[string]interface{}{
		"tenantId":    "t-1",
		"vendorName":  "Keepit",
		"productName": "Keepit Backup",
	})

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDiscountHandler_Delete_MissingFields(t *testing.T) {
	h, mockSvc := newDiscountHandler()

	w := httptest.NewRecorder()
	c := jsonContext(w, http.MethodDelete, map[string]interface{}{})

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Remove")
}
