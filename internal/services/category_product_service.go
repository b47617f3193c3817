package services

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/catalog"
	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

// ErrProductNotInCategory is returned when a position or detach operation
// names a product the category does not contain.
var ErrProductNotInCategory = errors.New("product is not assigned to this category")

type CategoryProductService interface {
	List(ctx context.Context, categoryID int64, filter models.CategoryProductFilter) ([]*models.CategoryProduct, error)
	UpdatePositions(ctx context.Context, categoryID int64, orderedProductIDs []int64) ([]catalog.PositionUpdate, error)
	UpdatePosition(ctx context.Context, categoryID, productID int64, position int) error
	Reorder(ctx context.Context, categoryID int64, fromIndex, toIndex int) error
	MoveRow(ctx context.Context, categoryID int64, rowIndex, columns int, up bool) error
	Attach(ctx context.Context, categoryID, productID int64) error
	Detach(ctx context.Context, categoryID, productID int64) error
	BulkDetach(ctx context.Context, categoryID int64, productIDs []int64) error
}

type categoryProductService struct {
	categoryRepo repositories.CategoryRepository
	pivotRepo    repositories.CategoryProductRepository
	productRepo  repositories.ProductRepository
}

func NewCategoryProductService(categoryRepo repositories.CategoryRepository,
	pivotRepo repositories.CategoryProductRepository,
	productRepo repositories.ProductRepository) CategoryProductService {
	return &categoryProductService{
		categoryRepo: categoryRepo,
		pivotRepo:    pivotRepo,
		productRepo:  productRepo,
	}
}

func (s *categoryProductService) List(ctx context.Context, categoryID int64, filter models.CategoryProductFilter) ([]*models.CategoryProduct, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.pivotRepo.ListByCategory(ctx, categoryID, filter)
}

// UpdatePositions renumbers the submitted order by array index, diffs it
// against the stored pivot positions and writes only the changed rows in one
// transaction. The returned slice is exactly what was persisted, so callers
// can see which rows actually moved.
func (s *categoryProductService) UpdatePositions(ctx context.Context, categoryID int64, orderedProductIDs []int64) ([]catalog.PositionUpdate, error) {
	if len(orderedProductIDs) == 0 {
		return nil, errors.New("ordered product id list is empty")
	}

	current, err := s.pivotRepo.GetPositions(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	for _, id := range orderedProductIDs {
		if _, ok := current[id]; !ok {
			return nil, fmt.Errorf("product %d: %w", id, ErrProductNotInCategory)
		}
	}

	changed := catalog.PositionDiff(orderedProductIDs, current)
	if len(changed) == 0 {
		return []catalog.PositionUpdate{}, nil
	}
	if err := s.pivotRepo.UpdatePositions(ctx, categoryID, changed); err != nil {
		return nil, err
	}
	return changed, nil
}

func (s *categoryProductService) UpdatePosition(ctx context.Context, categoryID, productID int64, position int) error {
	if position < 0 {
		return errors.New("position cannot be negative")
	}
	return s.pivotRepo.UpdatePosition(ctx, categoryID, productID, position)
}

// Reorder applies one drag-and-drop move to the stored order and persists
// the resulting diff.
func (s *categoryProductService) Reorder(ctx context.Context, categoryID int64, fromIndex, toIndex int) error {
	ids, err := s.orderedIDs(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := catalog.Move(ids, fromIndex, toIndex); err != nil {
		return err
	}
	_, err = s.UpdatePositions(ctx, categoryID, ids)
	return err
}

// MoveRow moves one visual grid row of columns products up or down.
func (s *categoryProductService) MoveRow(ctx context.Context, categoryID int64, rowIndex, columns int, up bool) error {
	ids, err := s.orderedIDs(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := catalog.MoveRow(ids, rowIndex, columns, up); err != nil {
		return err
	}
	_, err = s.UpdatePositions(ctx, categoryID, ids)
	return err
}

func (s *categoryProductService) orderedIDs(ctx context.Context, categoryID int64) ([]int64, error) {
	products, err := s.pivotRepo.ListByCategory(ctx, categoryID, models.CategoryProductFilter{})
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids, nil
}

// Attach places a product at the end of the category.
func (s *categoryProductService) Attach(ctx context.Context, categoryID, productID int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	current, err := s.pivotRepo.GetPositions(ctx, categoryID)
	if err != nil {
		return err
	}
	return s.pivotRepo.Attach(ctx, categoryID, productID, len(current))
}

func (s *categoryProductService) Detach(ctx context.Context, categoryID, productID int64) error {
	return s.pivotRepo.Detach(ctx, categoryID, productID)
}

func (s *categoryProductService) BulkDetach(ctx context.Context, categoryID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return errors.New("product id list is empty")
	}
	return s.pivotRepo.BulkDetach(ctx, categoryID, productIDs)
}
