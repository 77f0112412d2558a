package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/tree"
	"dalal-market/utils"
)

// CategoryInput describes a new category. An empty slug is derived from the name.
type CategoryInput struct {
	Name     string
	Slug     string
	ParentID string
}

// Slugify lowercases name and joins its letter and digit runs with hyphens
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// CreateCategory adds a category, optionally under an existing parent
func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Category{}, fmt.Errorf("service: %w - category name is required", marketerrors.ErrInvalidInput)
	}
	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return models.Category{}, fmt.Errorf("service: %w - cannot derive a slug from %q", marketerrors.ErrInvalidInput, name)
	}

	if in.ParentID != "" {
		_, lookup, err := s.categoryLookup(ctx)
		if err != nil {
			return models.Category{}, err
		}
		if err := tree.CheckParent("", in.ParentID, lookup); err != nil {
			return models.Category{}, fmt.Errorf("service: invalid parent %s: %w", in.ParentID, err)
		}
	}

	category := models.Category{
		CategoryID: utils.GenerateID(),
		Name:       name,
		Slug:       slug,
		ParentID:   in.ParentID,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("service: failed to create category %s: %w", slug, err)
	}
	return category, nil
}

// MoveCategory re-parents a category; an empty parentID makes it a root
func (s *CatalogService) MoveCategory(ctx context.Context, categoryID, parentID string) (models.Category, error) {
	byID, lookup, err := s.categoryLookup(ctx)
	if err != nil {
		return models.Category{}, err
	}
	category, ok := byID[categoryID]
	if !ok {
		return models.Category{}, fmt.Errorf("service: move category %s: %w", categoryID, marketerrors.ErrCategoryNotFound)
	}
	if err := tree.CheckParent(categoryID, parentID, lookup); err != nil {
		return models.Category{}, fmt.Errorf("service: move category %s under %s: %w", categoryID, parentID, err)
	}
	category.ParentID = parentID
	if err := s.categories.UpdateCategory(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("service: failed to update category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *CatalogService) summarize(ctx context.Context, c models.Category, lookup tree.Lookup) (models.CategorySummary, error) {
	path, err := tree.FullPath(c.CategoryID, lookup)
	if err != nil {
		return models.CategorySummary{}, fmt.Errorf("service: path of category %s: %w", c.CategoryID, err)
	}
	total, active, err := s.listings.CountListingsForCategory(ctx, c.CategoryID)
	if err != nil {
		return models.CategorySummary{}, fmt.Errorf("service: count listings of category %s: %w", c.CategoryID, err)
	}
	return models.CategorySummary{Category: c, FullPath: path, TotalListings: total, ActiveListings: active}, nil
}

// ListRootCategories returns top-level categories with listing counts, by name
func (s *CatalogService) ListRootCategories(ctx context.Context) ([]models.CategorySummary, error) {
	byID, lookup, err := s.categoryLookup(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.CategorySummary, 0)
	for _, c := range byID {
		if c.ParentID != "" {
			continue
		}
		summary, err := s.summarize(ctx, c, lookup)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetCategory returns a category page by slug: counts, children and its public listings
func (s *CatalogService) GetCategory(ctx context.Context, slug string) (models.CategoryPage, error) {
	category, err := s.categories.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return models.CategoryPage{}, fmt.Errorf("service: failed to get category %s: %w", slug, err)
	}
	byID, lookup, err := s.categoryLookup(ctx)
	if err != nil {
		return models.CategoryPage{}, err
	}
	summary, err := s.summarize(ctx, category, lookup)
	if err != nil {
		return models.CategoryPage{}, err
	}

	children := make([]models.Category, 0)
	for _, c := range byID {
		if c.ParentID == category.CategoryID {
			children = append(children, c)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })

	listings, err := s.listings.SearchListings(ctx, models.ListingFilter{
		CategoryID:   category.CategoryID,
		Statuses:     []models.ListingStatus{models.ListingActive},
		ApprovedOnly: true,
		Sort:         models.SortNewest,
	})
	if err != nil {
		return models.CategoryPage{}, fmt.Errorf("service: failed to list category %s listings: %w", slug, err)
	}
	return models.CategoryPage{CategorySummary: summary, Subcategories: children, Listings: listings}, nil
}

// CategoryPath returns the " > " joined path of a category
func (s *CatalogService) CategoryPath(ctx context.Context, categoryID string) (string, error) {
	_, lookup, err := s.categoryLookup(ctx)
	if err != nil {
		return "", err
	}
	path, err := tree.FullPath(categoryID, lookup)
	if err != nil {
		return "", fmt.Errorf("service: path of category %s: %w", categoryID, err)
	}
	return path, nil
}
