package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/catalog"
	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/services"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) Tree(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *mockCategoryService) Options(ctx context.Context, excludeID, languageID int64) ([]catalog.Option, error) {
	args := m.Called(ctx, excludeID, languageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Option), args.Error(1)
}

func (m *mockCategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryService) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryService) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryService) ReorderPositions(ctx context.Context, orderedIDs []int64) error {
	args := m.Called(ctx, orderedIDs)
	return args.Error(0)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = common.NewRequestValidator()
	return e
}

func TestGetOptionsRequiresLanguage(t *testing.T) {
	e := newEcho()
	h := NewCategoryHandlers(new(mockCategoryService))

	req := httptest.NewRequest(http.MethodGet, "/categories/options", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetOptions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestGetOptionsPassesExcludeID(t *testing.T) {
	e := newEcho()
	svc := new(mockCategoryService)
	svc.On("Options", mock.Anything, int64(2), int64(1)).Return([]catalog.Option{
		{Value: 1, Label: "A", Level: 1, FullURL: "a"},
		{Value: 2, Label: "A " + catalog.LabelSeparator + " B", Level: 2, FullURL: "a/b", Excluded: true},
	}, nil)
	h := NewCategoryHandlers(svc)

	req := httptest.NewRequest(http.MethodGet, "/categories/options?excludeId=2&languageId=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetOptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var options []catalog.Option
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	require.Len(t, options, 2)
	assert.True(t, options[1].Excluded)
	svc.AssertExpectations(t)
}

func TestDeleteCategoryConflictWhenChildrenExist(t *testing.T) {
	e := newEcho()
	svc := new(mockCategoryService)
	svc.On("Delete", mock.Anything, int64(5)).Return(services.ErrCategoryHasChildren)
	h := NewCategoryHandlers(svc)

	req := httptest.NewRequest(http.MethodDelete, "/categories/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, h.DeleteCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body.Error.Code)
}

func TestUpdateCategoryCyclicParent(t *testing.T) {
	e := newEcho()
	svc := new(mockCategoryService)
	svc.On("Update", mock.Anything, mock.Anything).Return(services.ErrCyclicParent)
	h := NewCategoryHandlers(svc)

	payload := `{"parent_id":3,"data":[{"language_id":1,"name":"A"}],"urls":[{"language_id":1,"url":"a"}]}`
	req := httptest.NewRequest(http.MethodPut, "/categories/1", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateCategory(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdatePositionsBindsOrderedIDs(t *testing.T) {
	e := newEcho()
	svc := new(mockCategoryService)
	svc.On("ReorderPositions", mock.Anything, []int64{3, 1, 2}).Return(nil)
	h := NewCategoryHandlers(svc)

	req := httptest.NewRequest(http.MethodPut, "/categories/positions", strings.NewReader(`{"ordered_ids":[3,1,2]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UpdatePositions(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetCategoryInvalidID(t *testing.T) {
	e := newEcho()
	h := NewCategoryHandlers(new(mockCategoryService))

	req := httptest.NewRequest(http.MethodGet, "/categories/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetCategory(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
