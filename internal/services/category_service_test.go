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

func int64Ptr(v int64) *int64 { return &v }

func newCategoryServiceForTest() (CategoryService, *MockCategoryRepository, *MockCacheService) {
	repo := new(MockCategoryRepository)
	cache := new(MockCacheService)
	return NewCategoryService(repo, cache), repo, cache
}

func TestCategoryServiceTreeCacheHit(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	cached := []*models.Category{{ID: 1, Level: 1}}
	cache.On("GetCategoryTree", mock.Anything).Return(cached, nil)

	tree, err := svc.Tree(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, tree)
	repo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestCategoryServiceTreeCacheMiss(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	cache.On("GetCategoryTree", mock.Anything).Return(nil, nil)
	cache.On("SetCategoryTree", mock.Anything, mock.Anything, categoryCacheTTL).Return(nil)
	repo.On("ListAll", mock.Anything).Return([]*models.Category{
		{ID: 1, Level: 1, Position: 0},
		{ID: 2, ParentID: int64Ptr(1), Level: 2, Position: 0},
	}, nil)

	tree, err := svc.Tree(context.Background())

	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, int64(2), tree[0].Children[0].ID)
	cache.AssertExpectations(t)
}

func TestCategoryServiceCreateDerivesLevelAndURLs(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	parent := &models.Category{
		ID:    1,
		Level: 2,
		URLs: []models.CategoryURL{
			{LanguageID: 1, URL: "shoes", FullURL: "men/shoes"},
			{LanguageID: 2, URL: "chaussures", FullURL: "hommes/chaussures"},
		},
	}
	repo.On("GetByID", mock.Anything, int64(1)).Return(parent, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	cache.On("InvalidateCategories", mock.Anything).Return(nil)

	category := &models.Category{
		ParentID: int64Ptr(1),
		URLs: []models.CategoryURL{
			{LanguageID: 1, URL: "boots"},
			{LanguageID: 2, URL: "bottes"},
		},
	}
	require.NoError(t, svc.Create(context.Background(), category))

	assert.Equal(t, 3, category.Level)
	assert.Equal(t, "men/shoes/boots", category.URLs[0].FullURL)
	assert.Equal(t, "hommes/chaussures/bottes", category.URLs[1].FullURL)
}

func TestCategoryServiceCreateRootLevelOne(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	cache.On("InvalidateCategories", mock.Anything).Return(nil)

	category := &models.Category{
		URLs: []models.CategoryURL{{LanguageID: 1, URL: "men"}},
	}
	require.NoError(t, svc.Create(context.Background(), category))

	assert.Equal(t, 1, category.Level)
	assert.Equal(t, "men", category.URLs[0].FullURL)
}

func TestCategoryServiceUpdateRejectsCyclicParent(t *testing.T) {
	svc, repo, _ := newCategoryServiceForTest()
	// 1 -> 2 -> 3; moving 1 under 3 would cycle.
	existing := &models.Category{ID: 1, Level: 1}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	repo.On("ListAll", mock.Anything).Return([]*models.Category{
		{ID: 1, Level: 1},
		{ID: 2, ParentID: int64Ptr(1), Level: 2},
		{ID: 3, ParentID: int64Ptr(2), Level: 3},
	}, nil)

	err := svc.Update(context.Background(), &models.Category{ID: 1, ParentID: int64Ptr(3)})

	assert.ErrorIs(t, err, ErrCyclicParent)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCategoryServiceUpdateRejectsSelfParent(t *testing.T) {
	svc, repo, _ := newCategoryServiceForTest()
	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Category{ID: 1, Level: 1}, nil)
	repo.On("ListAll", mock.Anything).Return([]*models.Category{{ID: 1, Level: 1}}, nil)

	err := svc.Update(context.Background(), &models.Category{ID: 1, ParentID: int64Ptr(1)})

	assert.ErrorIs(t, err, ErrCyclicParent)
}

func TestCategoryServiceUpdateReparentRecomputesSubtree(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	existing := &models.Category{ID: 2, ParentID: int64Ptr(1), Level: 2}
	repo.On("GetByID", mock.Anything, int64(2)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	cache.On("InvalidateCategories", mock.Anything).Return(nil)

	// First ListAll validates the move, second is the recompute reload; the
	// reload already reflects the new parent.
	preMove := []*models.Category{
		{ID: 1, Level: 1, URLs: []models.CategoryURL{{LanguageID: 1, URL: "a", FullURL: "a"}}},
		{ID: 2, ParentID: int64Ptr(1), Level: 2, URLs: []models.CategoryURL{{LanguageID: 1, URL: "b", FullURL: "a/b"}}},
		{ID: 3, ParentID: int64Ptr(2), Level: 3, URLs: []models.CategoryURL{{LanguageID: 1, URL: "c", FullURL: "a/b/c"}}},
		{ID: 4, Level: 1, URLs: []models.CategoryURL{{LanguageID: 1, URL: "d", FullURL: "d"}}},
	}
	postMove := []*models.Category{
		{ID: 1, Level: 1, URLs: []models.CategoryURL{{LanguageID: 1, URL: "a", FullURL: "a"}}},
		{ID: 2, ParentID: int64Ptr(4), Level: 2, URLs: []models.CategoryURL{{LanguageID: 1, URL: "b", FullURL: "a/b"}}},
		{ID: 3, ParentID: int64Ptr(2), Level: 3, URLs: []models.CategoryURL{{LanguageID: 1, URL: "c", FullURL: "a/b/c"}}},
		{ID: 4, Level: 1, URLs: []models.CategoryURL{{LanguageID: 1, URL: "d", FullURL: "d"}}},
	}
	repo.On("ListAll", mock.Anything).Return(preMove, nil).Once()
	repo.On("ListAll", mock.Anything).Return(postMove, nil).Once()

	var persisted []*models.Category
	repo.On("UpdateHierarchy", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).([]*models.Category)
	}).Return(nil)

	err := svc.Update(context.Background(), &models.Category{
		ID:       2,
		ParentID: int64Ptr(4),
		URLs:     []models.CategoryURL{{LanguageID: 1, URL: "b"}},
	})

	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.Equal(t, int64(2), persisted[0].ID)
	assert.Equal(t, 2, persisted[0].Level)
	assert.Equal(t, "d/b", persisted[0].URLs[0].FullURL)
	assert.Equal(t, int64(3), persisted[1].ID)
	assert.Equal(t, 3, persisted[1].Level)
	assert.Equal(t, "d/b/c", persisted[1].URLs[0].FullURL)
}

func TestCategoryServiceUpdateKeepsStoredLevelAndPosition(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	existing := &models.Category{
		ID:       7,
		ParentID: int64Ptr(1),
		Level:    2,
		Position: 5,
		URLs:     []models.CategoryURL{{LanguageID: 1, URL: "boots", FullURL: "men/boots"}},
	}
	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	cache.On("InvalidateCategories", mock.Anything).Return(nil)

	var saved *models.Category
	repo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*models.Category)
	}).Return(nil)

	// Same parent, same url segment: a content-only edit.
	err := svc.Update(context.Background(), &models.Category{
		ID:       7,
		ParentID: int64Ptr(1),
		Data:     []models.CategoryData{{LanguageID: 1, Name: "Winter boots"}},
		URLs:     []models.CategoryURL{{LanguageID: 1, URL: "boots"}},
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.Level)
	assert.Equal(t, 5, saved.Position)
	repo.AssertNotCalled(t, "UpdateHierarchy", mock.Anything, mock.Anything)
}

func TestCategoryServiceDeleteBlockedByChildren(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Category{ID: 1}, nil)
	repo.On("CountChildren", mock.Anything, int64(1)).Return(2, nil)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCategoryHasChildren)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "InvalidateCategories", mock.Anything)
}

func TestCategoryServiceDeleteLeaf(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Category{ID: 1}, nil)
	repo.On("CountChildren", mock.Anything, int64(1)).Return(0, nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	cache.On("InvalidateCategories", mock.Anything).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCategoryServiceReorderPositions(t *testing.T) {
	svc, repo, cache := newCategoryServiceForTest()
	repo.On("UpdatePositions", mock.Anything, []catalog.PositionUpdate{
		{ID: 30, Position: 0},
		{ID: 10, Position: 1},
		{ID: 20, Position: 2},
	}).Return(nil)
	cache.On("InvalidateCategories", mock.Anything).Return(nil)

	require.NoError(t, svc.ReorderPositions(context.Background(), []int64{30, 10, 20}))
	repo.AssertExpectations(t)
}

func TestCategoryServiceReorderPositionsRejectsDuplicates(t *testing.T) {
	svc, repo, _ := newCategoryServiceForTest()

	err := svc.ReorderPositions(context.Background(), []int64{1, 2, 1})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "UpdatePositions", mock.Anything, mock.Anything)
}
