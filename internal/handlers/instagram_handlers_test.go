package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/catalog"
	"backoffice/internal/common"
	"backoffice/internal/models"
)

type mockInstagramRepository struct {
	mock.Mock
}

func (m *mockInstagramRepository) List(ctx context.Context, sort common.Sort, limit, offset int) ([]*models.InstagramLayout, error) {
	args := m.Called(ctx, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InstagramLayout), args.Error(1)
}

func (m *mockInstagramRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockInstagramRepository) GetByID(ctx context.Context, id int64) (*models.InstagramLayout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InstagramLayout), args.Error(1)
}

func (m *mockInstagramRepository) Create(ctx context.Context, l *models.InstagramLayout) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockInstagramRepository) Update(ctx context.Context, l *models.InstagramLayout) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockInstagramRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInstagramRepository) ListItems(ctx context.Context, layoutID int64) ([]*models.InstagramItem, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InstagramItem), args.Error(1)
}

func (m *mockInstagramRepository) GetItemPositions(ctx context.Context, layoutID int64) (map[int64]int, error) {
	args := m.Called(ctx, layoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *mockInstagramRepository) CreateItem(ctx context.Context, item *models.InstagramItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockInstagramRepository) UpdateItem(ctx context.Context, item *models.InstagramItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockInstagramRepository) DeleteItem(ctx context.Context, layoutID, itemID int64) error {
	args := m.Called(ctx, layoutID, itemID)
	return args.Error(0)
}

func (m *mockInstagramRepository) UpdateItemPositions(ctx context.Context, layoutID int64, updates []catalog.PositionUpdate) error {
	args := m.Called(ctx, layoutID, updates)
	return args.Error(0)
}

func TestInstagramUpdateItem(t *testing.T) {
	e := newEcho()
	repo := new(mockInstagramRepository)
	h := NewInstagramHandlers(repo)

	var saved *models.InstagramItem
	repo.On("UpdateItem", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*models.InstagramItem)
	}).Return(nil)

	body := `{"position":2,"url":"https://instagram.com/p/abc","image_key":"instagram/abc.jpg"}`
	req := httptest.NewRequest(http.MethodPut, "/instagram/5/items/9", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "itemId")
	c.SetParamValues("5", "9")

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saved)
	assert.Equal(t, int64(9), saved.ID)
	assert.Equal(t, int64(5), saved.LayoutID)
	assert.Equal(t, 2, saved.Position)
}

func TestInstagramUpdateItemMissingIsNotFound(t *testing.T) {
	e := newEcho()
	repo := new(mockInstagramRepository)
	h := NewInstagramHandlers(repo)

	repo.On("UpdateItem", mock.Anything, mock.Anything).Return(pgx.ErrNoRows)

	body := `{"position":0,"url":"https://instagram.com/p/abc","image_key":"instagram/abc.jpg"}`
	req := httptest.NewRequest(http.MethodPut, "/instagram/5/items/999", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "itemId")
	c.SetParamValues("5", "999")

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}
