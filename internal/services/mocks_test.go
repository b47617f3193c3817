package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"backoffice/internal/catalog"
	"backoffice/internal/common"
	"backoffice/internal/models"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) ListAll(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountChildren(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) UpdatePositions(ctx context.Context, updates []catalog.PositionUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateHierarchy(ctx context.Context, categories []*models.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

type MockCategoryProductRepository struct {
	mock.Mock
}

func (m *MockCategoryProductRepository) ListByCategory(ctx context.Context, categoryID int64, filter models.CategoryProductFilter) ([]*models.CategoryProduct, error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CategoryProduct), args.Error(1)
}

func (m *MockCategoryProductRepository) GetPositions(ctx context.Context, categoryID int64) (map[int64]int, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockCategoryProductRepository) UpdatePosition(ctx context.Context, categoryID, productID int64, position int) error {
	args := m.Called(ctx, categoryID, productID, position)
	return args.Error(0)
}

func (m *MockCategoryProductRepository) UpdatePositions(ctx context.Context, categoryID int64, updates []catalog.PositionUpdate) error {
	args := m.Called(ctx, categoryID, updates)
	return args.Error(0)
}

func (m *MockCategoryProductRepository) Attach(ctx context.Context, categoryID, productID int64, position int) error {
	args := m.Called(ctx, categoryID, productID, position)
	return args.Error(0)
}

func (m *MockCategoryProductRepository) Detach(ctx context.Context, categoryID, productID int64) error {
	args := m.Called(ctx, categoryID, productID)
	return args.Error(0)
}

func (m *MockCategoryProductRepository) BulkDetach(ctx context.Context, categoryID int64, productIDs []int64) error {
	args := m.Called(ctx, categoryID, productIDs)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, filter models.CategoryProductFilter, sort common.Sort, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter models.CategoryProductFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateStockByReference(ctx context.Context, reference string, stock int) (bool, error) {
	args := m.Called(ctx, reference, stock)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*models.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatusByNumber(ctx context.Context, number, status string) (bool, error) {
	args := m.Called(ctx, number, status)
	return args.Bool(0), args.Error(1)
}

type MockProcessRepository struct {
	mock.Mock
}

func (m *MockProcessRepository) Create(ctx context.Context, p *models.Process) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProcessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Process, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Process), args.Error(1)
}

func (m *MockProcessRepository) List(ctx context.Context, limit, offset int) ([]*models.Process, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Process), args.Error(1)
}

func (m *MockProcessRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProcessRepository) ClaimQueued(ctx context.Context, limit int) ([]*models.Process, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Process), args.Error(1)
}

func (m *MockProcessRepository) UpdateProgress(ctx context.Context, p *models.Process) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProcessRepository) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) error {
	args := m.Called(ctx, bucket, objectName, contentType, reader, size)
	return args.Error(0)
}

func (m *MockStorageService) Download(ctx context.Context, bucket, objectName string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucket, objectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorageService) Delete(ctx context.Context, bucket, objectName string) error {
	args := m.Called(ctx, bucket, objectName)
	return args.Error(0)
}

func (m *MockStorageService) PresignedURL(ctx context.Context, bucket, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucket, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) EnsureBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetCategoryTree(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCacheService) SetCategoryTree(ctx context.Context, tree []*models.Category, ttl time.Duration) error {
	args := m.Called(ctx, tree, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetCategoryOptions(ctx context.Context, excludeID, languageID int64) ([]catalog.Option, error) {
	args := m.Called(ctx, excludeID, languageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Option), args.Error(1)
}

func (m *MockCacheService) SetCategoryOptions(ctx context.Context, excludeID, languageID int64, options []catalog.Option, ttl time.Duration) error {
	args := m.Called(ctx, excludeID, languageID, options, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetLanguages(ctx context.Context) ([]*models.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Language), args.Error(1)
}

func (m *MockCacheService) SetLanguages(ctx context.Context, languages []*models.Language, ttl time.Duration) error {
	args := m.Called(ctx, languages, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateCategories(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateLanguages(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
