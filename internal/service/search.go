package service

import (
	"strings"

	"gorm.io/gorm"

	"estatedesk_backend/internal/model"
)

const (
	DefaultPageSize   = 9
	FeaturedHomeLimit = 6
)

// SearchParams is the multi-field search request for the public listing
// page. Every filter is optional; present filters combine with AND.
type SearchParams struct {
	SearchTerm   string   `query:"q"`
	PropertyType string   `query:"property_type"`
	City         string   `query:"city"`
	State        string   `query:"state"`
	MinPrice     *float64 `query:"min_price"`
	MaxPrice     *float64 `query:"max_price"`
	MinBedrooms  *int     `query:"min_bedrooms"`
	MinBathrooms *int     `query:"min_bathrooms"`
	SortBy       string   `query:"sort_by"`
	SortOrder    string   `query:"sort_order"`
	PageNumber   int      `query:"page"`
	PageSize     int      `query:"page_size"`
}

type SearchResult struct {
	Properties   []model.Property `json:"properties"`
	TotalResults int64            `json:"total_results"`
	TotalPages   int              `json:"total_pages"`
	PageNumber   int              `json:"page_number"`
	PageSize     int              `json:"page_size"`
}

// Facets are distinct-value lists for the filter sidebar, always
// computed over the full property set so filtering never narrows the
// available refinement options.
type Facets struct {
	PropertyTypes []string `json:"property_types"`
	Cities        []string `json:"cities"`
	States        []string `json:"states"`
}

// Sortable columns; anything else falls back to created_at desc.
var sortColumns = map[string]string{
	"Price":       "price",
	"Title":       "title",
	"CreatedDate": "created_at",
}

// SearchProperties filters Available listings, counts before
// pagination, then sorts and slices. A page past the end of the result
// set returns an empty slice rather than an error.
func SearchProperties(db *gorm.DB, params SearchParams) (*SearchResult, error) {
	query := db.Model(&model.Property{}).Where("status = ?", model.PropertyStatusAvailable)

	if term := strings.TrimSpace(params.SearchTerm); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ? OR LOWER(address) LIKE ?",
			like, like, like, like, like,
		)
	}

	if params.PropertyType != "" {
		query = query.Where("property_type = ?", params.PropertyType)
	}

	if params.City != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(params.City)+"%")
	}

	if params.State != "" {
		query = query.Where("state = ?", params.State)
	}

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}

	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	if params.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *params.MinBedrooms)
	}

	if params.MinBathrooms != nil {
		query = query.Where("bathrooms >= ?", *params.MinBathrooms)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	column, ok := sortColumns[params.SortBy]
	direction := "desc"
	if !ok {
		column = "created_at"
	} else if params.SortOrder == "asc" {
		direction = "asc"
	}

	page := params.PageNumber
	if page < 1 {
		page = 1
	}
	size := params.PageSize
	if size < 1 {
		size = DefaultPageSize
	}

	properties := []model.Property{}
	err := query.
		Order(column + " " + direction).
		Offset((page - 1) * size).
		Limit(size).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_images.display_order ASC")
		}).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &SearchResult{
		Properties:   properties,
		TotalResults: total,
		TotalPages:   totalPages,
		PageNumber:   page,
		PageSize:     size,
	}, nil
}

// PropertyFacets lists distinct types, cities and states over all
// properties, regardless of status or any active filter.
func PropertyFacets(db *gorm.DB) (*Facets, error) {
	facets := &Facets{
		PropertyTypes: []string{},
		Cities:        []string{},
		States:        []string{},
	}

	if err := db.Model(&model.Property{}).Distinct("property_type").
		Pluck("property_type", &facets.PropertyTypes).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Property{}).Distinct("city").Order("city ASC").
		Pluck("city", &facets.Cities).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Property{}).Distinct("state").Order("state ASC").
		Pluck("state", &facets.States).Error; err != nil {
		return nil, err
	}

	return facets, nil
}

// FeaturedProperties selects up to limit listings for the landing page:
// featured Available ones newest first, backfilled with the newest
// remaining Available listings. The featured block always comes first.
func FeaturedProperties(db *gorm.DB, limit int) ([]model.Property, error) {
	if limit <= 0 {
		limit = FeaturedHomeLimit
	}

	withImages := func(db *gorm.DB) *gorm.DB {
		return db.Order("property_images.display_order ASC")
	}

	featured := []model.Property{}
	err := db.Where("is_featured = ? AND status = ?", true, model.PropertyStatusAvailable).
		Order("created_at desc").
		Limit(limit).
		Preload("Images", withImages).
		Find(&featured).Error
	if err != nil {
		return nil, err
	}

	if len(featured) >= limit {
		return featured, nil
	}

	featuredIDs := make([]uint, 0, len(featured))
	for _, p := range featured {
		featuredIDs = append(featuredIDs, p.ID)
	}

	backfill := []model.Property{}
	query := db.Where("status = ?", model.PropertyStatusAvailable)
	if len(featuredIDs) > 0 {
		query = query.Where("id NOT IN ?", featuredIDs)
	}
	err = query.Order("created_at desc").
		Limit(limit - len(featured)).
		Preload("Images", withImages).
		Find(&backfill).Error
	if err != nil {
		return nil, err
	}

	return append(featured, backfill...), nil
}
