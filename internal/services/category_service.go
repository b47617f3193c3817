package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"backoffice/internal/caching"
	"backoffice/internal/catalog"
	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

// Sentinel errors the handlers translate to HTTP statuses.
var (
	ErrCategoryHasChildren = errors.New("category has children and cannot be deleted")
	ErrCyclicParent        = errors.New("category cannot be moved under itself or one of its descendants")
	ErrParentNotFound      = errors.New("parent category not found")
)

const categoryCacheTTL = 15 * time.Minute

type CategoryService interface {
	Tree(ctx context.Context) ([]*models.Category, error)
	Options(ctx context.Context, excludeID, languageID int64) ([]catalog.Option, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
	ReorderPositions(ctx context.Context, orderedIDs []int64) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	cacheService caching.CacheService
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cacheService caching.CacheService) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		cacheService: cacheService,
	}
}

// Tree returns the nested category forest, cached until the next mutation.
func (s *categoryService) Tree(ctx context.Context) ([]*models.Category, error) {
	if cached, err := s.cacheService.GetCategoryTree(ctx); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("category tree cache read failed: %v", err)
	}

	flat, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	tree := catalog.BuildForest(flat)

	if err := s.cacheService.SetCategoryTree(ctx, tree, categoryCacheTTL); err != nil {
		log.Printf("category tree cache write failed: %v", err)
	}
	return tree, nil
}

// Options returns the flattened parent-selector list for the given language,
// with excludeID marked.
func (s *categoryService) Options(ctx context.Context, excludeID, languageID int64) ([]catalog.Option, error) {
	if cached, err := s.cacheService.GetCategoryOptions(ctx, excludeID, languageID); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("category options cache read failed: %v", err)
	}

	tree, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	options := catalog.Flatten(tree, excludeID, languageID)

	if err := s.cacheService.SetCategoryOptions(ctx, excludeID, languageID, options, categoryCacheTTL); err != nil {
		log.Printf("category options cache write failed: %v", err)
	}
	return options, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// Create inserts a category under its parent, deriving level and every
// language's full_url from the parent's url entries.
func (s *categoryService) Create(ctx context.Context, category *models.Category) error {
	if category.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(ctx, *category.ParentID)
		if err != nil {
			return ErrParentNotFound
		}
		category.Level = parent.Level + 1
		applyParentURLs(category, parent)
	} else {
		category.Level = 1
		applyParentURLs(category, nil)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update persists field changes. Changing the parent recomputes level and
// full_url for the whole subtree, for every language at once rather than
// only the language being edited, and rejects any move that would cycle.
func (s *categoryService) Update(ctx context.Context, category *models.Category) error {
	existing, err := s.categoryRepo.GetByID(ctx, category.ID)
	if err != nil {
		return err
	}

	// Level and position are derived state: reparenting recomputes level,
	// reordering owns position. An edit never carries either.
	category.Level = existing.Level
	category.Position = existing.Position

	reparented := !sameParent(existing.ParentID, category.ParentID)
	urlsChanged := !sameURLSegments(existing.URLs, category.URLs)

	if reparented && category.ParentID != nil {
		flat, err := s.categoryRepo.ListAll(ctx)
		if err != nil {
			return err
		}
		parents := make(map[int64]*int64, len(flat))
		for _, c := range flat {
			parents[c.ID] = c.ParentID
		}
		if catalog.IsDescendant(parents, category.ID, *category.ParentID) {
			return ErrCyclicParent
		}
		if _, ok := parents[*category.ParentID]; !ok {
			return ErrParentNotFound
		}
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return err
	}

	if reparented || urlsChanged {
		if err := s.recomputeSubtree(ctx, category.ID); err != nil {
			return fmt.Errorf("recompute subtree urls: %w", err)
		}
	}

	s.invalidate(ctx)
	return nil
}

// recomputeSubtree reloads the forest and rewrites level and full_url for
// the moved category and everything below it in one transaction.
func (s *categoryService) recomputeSubtree(ctx context.Context, rootID int64) error {
	flat, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	byID := make(map[int64]*models.Category, len(flat))
	for _, c := range flat {
		byID[c.ID] = c
	}
	catalog.BuildForest(flat)

	root, ok := byID[rootID]
	if !ok {
		return fmt.Errorf("category %d not found", rootID)
	}

	var parent *models.Category
	parentLevel := 0
	if root.ParentID != nil {
		parent = byID[*root.ParentID]
		if parent != nil {
			parentLevel = parent.Level
		}
	}

	var changed []*models.Category
	var walk func(node *models.Category, parent *models.Category, level int)
	walk = func(node *models.Category, parent *models.Category, level int) {
		node.Level = level
		applyParentURLs(node, parent)
		changed = append(changed, node)
		for _, child := range node.Children {
			walk(child, node, level+1)
		}
	}
	walk(root, parent, parentLevel+1)

	return s.categoryRepo.UpdateHierarchy(ctx, changed)
}

// Delete removes a childless category. Deletion of a category that still
// has children is blocked before any write happens.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	children, err := s.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrCategoryHasChildren
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ReorderPositions renumbers the given categories by their array index and
// persists the whole batch in one transaction. Either every position lands
// or none does; the stored order never half-applies.
func (s *categoryService) ReorderPositions(ctx context.Context, orderedIDs []int64) error {
	if len(orderedIDs) == 0 {
		return errors.New("ordered id list is empty")
	}
	seen := make(map[int64]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if seen[id] {
			return fmt.Errorf("category %d appears twice in the ordered list", id)
		}
		seen[id] = true
	}

	if err := s.categoryRepo.UpdatePositions(ctx, catalog.Renumber(orderedIDs)); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *categoryService) invalidate(ctx context.Context) {
	if err := s.cacheService.InvalidateCategories(ctx); err != nil {
		log.Printf("category cache invalidation failed: %v", err)
	}
}

// applyParentURLs recomputes full_url for every language entry of the
// category from the parent's matching entries.
func applyParentURLs(category *models.Category, parent *models.Category) {
	for i := range category.URLs {
		parentFull := ""
		if parent != nil {
			if pu := parent.URLFor(category.URLs[i].LanguageID); pu != nil {
				parentFull = pu.FullURL
			}
		}
		category.URLs[i].FullURL = catalog.FullURL(parentFull, category.URLs[i].URL)
	}
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameURLSegments(a, b []models.CategoryURL) bool {
	if len(a) != len(b) {
		return false
	}
	segments := make(map[int64]string, len(a))
	for _, u := range a {
		segments[u.LanguageID] = u.URL
	}
	for _, u := range b {
		if segments[u.LanguageID] != u.URL {
			return false
		}
	}
	return true
}
