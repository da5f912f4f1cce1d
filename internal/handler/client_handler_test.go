package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ustva/internal/domain"
	"ustva/internal/handler"
	"ustva/internal/service"
	"ustva/mocks"
)

func newClientHandler() (*handler.ClientHandler, *mocks.MockClientService) {
	mockSvc := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockSvc)
	return h, mockSvc
}

// --- Register ---

func TestClientHandler_Register_Success(t *testing.T) {
	h, mockSvc := newClientHandler()

	mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(input service.RegisterClientInput) bool {
		return input.CompanyName == "Acme GmbH" && input.City == "Berlin"
	})).Return(&domain.Client{ID: uuid.New(), CompanyName: "Acme GmbH"}, nil)

	body, _ := json.Marshal(map[string]string{
		"company_name":  "Acme GmbH",
		"street":        "Hauptstrasse",
		"street_number": "1",
		"postcode":      "10115",
		"city":          "Berlin",
		"tax_number":    "12/345/67890",
		"vat_id":        "DE123456789",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "client_created", resp["status"])
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Register_MissingRequiredField(t *testing.T) {
	h, mockSvc := newClientHandler()

	body, _ := json.Marshal(map[string]string{
		"company_name": "Acme GmbH",
		// missing address fields and tax_number
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestClientHandler_Register_DuplicateName(t *testing.T) {
	h, mockSvc := newClientHandler()

	mockSvc.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterClientInput")).
		Return(nil, domain.ErrDuplicateCompanyName)

	body, _ := json.Marshal(map[string]string{
		"company_name":  "Acme GmbH",
		"street":        "Hauptstrasse",
		"street_number": "1",
		"postcode":      "10115",
		"city":          "Berlin",
		"tax_number":    "12/345/67890",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- List ---

func TestClientHandler_List_ReturnsArray(t *testing.T) {
	h, mockSvc := newClientHandler()

	mockSvc.On("List", mock.Anything).Return([]domain.Client{
		{ID: uuid.New(), CompanyName: "Acme GmbH"},
		{ID: uuid.New(), CompanyName: "Beispiel AG"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/clients", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.Client
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestClientHandler_List_EmptyIsArrayNotNull(t *testing.T) {
	h, mockSvc := newClientHandler()

	mockSvc.On("List", mock.Anything).Return([]domain.Client(nil), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/clients", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// --- Search ---

func TestClientHandler_Search_PassesQuery(t *testing.T) {
	h, mockSvc := newClientHandler()

	refID := uuid.New()
	mockSvc.On("Search", mock.Anything, "Acme").Return([]domain.ClientRef{
		{ID: refID, CompanyName: "Acme GmbH"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/clients/search?q=Acme", nil)

	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.ClientRef
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, refID, resp[0].ID)
	mockSvc.AssertExpectations(t)
}
