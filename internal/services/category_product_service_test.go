package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/catalog"
	"backoffice/internal/models"
)

func newCategoryProductServiceForTest() (CategoryProductService, *MockCategoryRepository, *MockCategoryProductRepository, *MockProductRepository) {
	categoryRepo := new(MockCategoryRepository)
	pivotRepo := new(MockCategoryProductRepository)
	productRepo := new(MockProductRepository)
	return NewCategoryProductService(categoryRepo, pivotRepo, productRepo), categoryRepo, pivotRepo, productRepo
}

func categoryProducts(ids ...int64) []*models.CategoryProduct {
	out := make([]*models.CategoryProduct, len(ids))
	for i, id := range ids {
		out[i] = &models.CategoryProduct{
			Product: models.Product{ID: id},
			Pivot:   models.Pivot{Position: i},
		}
	}
	return out
}

func TestCategoryProductUpdatePositionsWritesOnlyChangedRows(t *testing.T) {
	svc, _, pivotRepo, _ := newCategoryProductServiceForTest()
	pivotRepo.On("GetPositions", mock.Anything, int64(7)).Return(map[int64]int{
		10: 0, 20: 1, 30: 2, 40: 3,
	}, nil)
	pivotRepo.On("UpdatePositions", mock.Anything, int64(7), []catalog.PositionUpdate{
		{ID: 20, Position: 0},
		{ID: 10, Position: 1},
	}).Return(nil)

	// Swapping the first two leaves 30 and 40 untouched.
	changed, err := svc.UpdatePositions(context.Background(), 7, []int64{20, 10, 30, 40})

	require.NoError(t, err)
	assert.Len(t, changed, 2)
	pivotRepo.AssertExpectations(t)
}

func TestCategoryProductUpdatePositionsNoopWhenOrderUnchanged(t *testing.T) {
	svc, _, pivotRepo, _ := newCategoryProductServiceForTest()
	pivotRepo.On("GetPositions", mock.Anything, int64(7)).Return(map[int64]int{
		10: 0, 20: 1,
	}, nil)

	changed, err := svc.UpdatePositions(context.Background(), 7, []int64{10, 20})

	require.NoError(t, err)
	assert.Empty(t, changed)
	pivotRepo.AssertNotCalled(t, "UpdatePositions", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryProductUpdatePositionsRejectsForeignProduct(t *testing.T) {
	svc, _, pivotRepo, _ := newCategoryProductServiceForTest()
	pivotRepo.On("GetPositions", mock.Anything, int64(7)).Return(map[int64]int{10: 0}, nil)

	_, err := svc.UpdatePositions(context.Background(), 7, []int64{10, 99})

	assert.ErrorIs(t, err, ErrProductNotInCategory)
}

func TestCategoryProductReorder(t *testing.T) {
	svc, _, pivotRepo, _ := newCategoryProductServiceForTest()
	pivotRepo.On("ListByCategory", mock.Anything, int64(7), models.CategoryProductFilter{}).
		Return(categoryProducts(10, 20, 30, 40), nil)
	pivotRepo.On("GetPositions", mock.Anything, int64(7)).Return(map[int64]int{
		10: 0, 20: 1, 30: 2, 40: 3,
	}, nil)
	// Dragging index 0 to index 2 shifts 20 and 30 left.
	pivotRepo.On("UpdatePositions", mock.Anything, int64(7), []catalog.PositionUpdate{
		{ID: 20, Position: 0},
		{ID: 30, Position: 1},
		{ID: 10, Position: 2},
	}).Return(nil)

	require.NoError(t, svc.Reorder(context.Background(), 7, 0, 2))
	pivotRepo.AssertExpectations(t)
}

func TestCategoryProductReorderOutOfRange(t *testing.T) {
	svc, _, pivotRepo, _ := newCategoryProductServiceForTest()
	pivotRepo.On("ListByCategory", mock.Anything, int64(7), models.CategoryProductFilter{}).
		Return(categoryProducts(10, 20), nil)

	err := svc.Reorder(context.Background(), 7, 0, 5)

	assert.Error(t, err)
	pivotRepo.AssertNotCalled(t, "UpdatePositions", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryProductMoveRowUp(t *testing.T) {
	svc, _, pivotRepo, _ := newCategoryProductServiceForTest()
	// Two rows of three: [10 20 30] [40 50 60]; moving row 1 up swaps the rows.
	pivotRepo.On("ListByCategory", mock.Anything, int64(7), models.CategoryProductFilter{}).
		Return(categoryProducts(10, 20, 30, 40, 50, 60), nil)
	pivotRepo.On("GetPositions", mock.Anything, int64(7)).Return(map[int64]int{
		10: 0, 20: 1, 30: 2, 40: 3, 50: 4, 60: 5,
	}, nil)
	pivotRepo.On("UpdatePositions", mock.Anything, int64(7), []catalog.PositionUpdate{
		{ID: 40, Position: 0},
		{ID: 50, Position: 1},
		{ID: 60, Position: 2},
		{ID: 10, Position: 3},
		{ID: 20, Position: 4},
		{ID: 30, Position: 5},
	}).Return(nil)

	require.NoError(t, svc.MoveRow(context.Background(), 7, 1, 3, true))
	pivotRepo.AssertExpectations(t)
}

func TestCategoryProductAttachAppendsAtEnd(t *testing.T) {
	svc, categoryRepo, pivotRepo, productRepo := newCategoryProductServiceForTest()
	categoryRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Category{ID: 7}, nil)
	productRepo.On("GetByID", mock.Anything, int64(99)).Return(&models.Product{ID: 99}, nil)
	pivotRepo.On("GetPositions", mock.Anything, int64(7)).Return(map[int64]int{10: 0, 20: 1}, nil)
	pivotRepo.On("Attach", mock.Anything, int64(7), int64(99), 2).Return(nil)

	require.NoError(t, svc.Attach(context.Background(), 7, 99))
	pivotRepo.AssertExpectations(t)
}

func TestCategoryProductBulkDetachRequiresIDs(t *testing.T) {
	svc, _, pivotRepo, _ := newCategoryProductServiceForTest()

	err := svc.BulkDetach(context.Background(), 7, nil)

	assert.Error(t, err)
	pivotRepo.AssertNotCalled(t, "BulkDetach", mock.Anything, mock.Anything, mock.Anything)
}
