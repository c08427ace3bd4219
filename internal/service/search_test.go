package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatedesk_backend/internal/model"
)

func TestSearchPropertiesOnlyAvailable(t *testing.T) {
	db := newTestDB(t)

	createProperty(t, db, model.Property{Title: "Open house", Status: model.PropertyStatusAvailable})
	createProperty(t, db, model.Property{Title: "Gone", Status: model.PropertyStatusSold})
	createProperty(t, db, model.Property{Title: "Taken", Status: model.PropertyStatusRented})

	result, err := SearchProperties(db, SearchParams{})
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.TotalResults)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, "Open house", result.Properties[0].Title)
}

func TestSearchPropertiesFiltersCombineWithAnd(t *testing.T) {
	db := newTestDB(t)

	match := createProperty(t, db, model.Property{
		Title: "Lakeside cottage", City: "Madison", State: "WI",
		PropertyType: "House", Price: 300000, Bedrooms: 3, Bathrooms: 2,
	})
	// Each of these fails exactly one predicate
	createProperty(t, db, model.Property{
		Title: "Lakeside flat", City: "Madison", State: "WI",
		PropertyType: "Apartment", Price: 300000, Bedrooms: 3, Bathrooms: 2,
	})
	createProperty(t, db, model.Property{
		Title: "Lakeside cabin", City: "Madison", State: "WI",
		PropertyType: "House", Price: 800000, Bedrooms: 3, Bathrooms: 2,
	})
	createProperty(t, db, model.Property{
		Title: "Lakeside bungalow", City: "Madison", State: "WI",
		PropertyType: "House", Price: 300000, Bedrooms: 1, Bathrooms: 2,
	})

	result, err := SearchProperties(db, SearchParams{
		SearchTerm:   "lakeside",
		PropertyType: "House",
		City:         "Madison",
		State:        "WI",
		MinPrice:     floatPtr(100000),
		MaxPrice:     floatPtr(500000),
		MinBedrooms:  intPtr(2),
		MinBathrooms: intPtr(1),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.TotalResults)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, match.ID, result.Properties[0].ID)
}

func TestSearchTermMatchesAnyField(t *testing.T) {
	db := newTestDB(t)

	createProperty(t, db, model.Property{Title: "Greenwood estate", City: "Austin", State: "TX", Address: "9 Elm Rd"})
	createProperty(t, db, model.Property{Title: "Plain house", Description: "close to Greenwood park", City: "Austin", State: "TX", Address: "10 Elm Rd"})
	createProperty(t, db, model.Property{Title: "Other", City: "Greenwood", State: "TX", Address: "11 Elm Rd"})
	createProperty(t, db, model.Property{Title: "Unrelated", City: "Austin", State: "TX", Address: "5 Greenwood Ave"})
	createProperty(t, db, model.Property{Title: "No match", City: "Austin", State: "TX", Address: "6 Oak Ave"})

	result, err := SearchProperties(db, SearchParams{SearchTerm: "greenwood"})
	require.NoError(t, err)

	assert.EqualValues(t, 4, result.TotalResults)
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	db := newTestDB(t)

	createProperty(t, db, model.Property{Title: "Low", Price: 100000})
	createProperty(t, db, model.Property{Title: "High", Price: 200000})
	createProperty(t, db, model.Property{Title: "Below", Price: 99999})
	createProperty(t, db, model.Property{Title: "Above", Price: 200001})

	result, err := SearchProperties(db, SearchParams{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(200000),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 2, result.TotalResults)
}

func TestSearchTotalIndependentOfPagination(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 12; i++ {
		createProperty(t, db, model.Property{CreatedAt: daysAgo(i)})
	}

	for _, page := range []int{1, 2, 3, 50} {
		result, err := SearchProperties(db, SearchParams{PageNumber: page, PageSize: 5})
		require.NoError(t, err)
		assert.EqualValues(t, 12, result.TotalResults, "page %d", page)
		assert.Equal(t, 3, result.TotalPages, "page %d", page)
	}
}

func TestSearchPaginationSlices(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 7; i++ {
		createProperty(t, db, model.Property{CreatedAt: daysAgo(i)})
	}

	all, err := SearchProperties(db, SearchParams{PageSize: 100})
	require.NoError(t, err)
	require.Len(t, all.Properties, 7)

	page2, err := SearchProperties(db, SearchParams{PageNumber: 2, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, page2.Properties, 3)
	for i, p := range page2.Properties {
		assert.Equal(t, all.Properties[3+i].ID, p.ID)
	}

	// A page past the end is empty, not an error
	beyond, err := SearchProperties(db, SearchParams{PageNumber: 10, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Properties)
	assert.EqualValues(t, 7, beyond.TotalResults)
}

func TestSearchDefaultsNewestFirstPageSizeNine(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 11; i++ {
		createProperty(t, db, model.Property{CreatedAt: daysAgo(i)})
	}

	result, err := SearchProperties(db, SearchParams{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.PageNumber)
	assert.Equal(t, DefaultPageSize, result.PageSize)
	require.Len(t, result.Properties, 9)
	for i := 1; i < len(result.Properties); i++ {
		assert.False(t, result.Properties[i].CreatedAt.After(result.Properties[i-1].CreatedAt))
	}
}

func TestSearchSortByPriceReverses(t *testing.T) {
	db := newTestDB(t)

	for _, price := range []float64{500, 100, 900, 300, 700} {
		createProperty(t, db, model.Property{Price: price})
	}

	asc, err := SearchProperties(db, SearchParams{SortBy: "Price", SortOrder: "asc"})
	require.NoError(t, err)
	desc, err := SearchProperties(db, SearchParams{SortBy: "Price", SortOrder: "desc"})
	require.NoError(t, err)

	require.Len(t, asc.Properties, 5)
	require.Len(t, desc.Properties, 5)
	for i := range asc.Properties {
		assert.Equal(t, asc.Properties[i].ID, desc.Properties[len(desc.Properties)-1-i].ID)
	}
}

func TestSearchUnknownSortFallsBackToNewestFirst(t *testing.T) {
	db := newTestDB(t)

	oldest := createProperty(t, db, model.Property{Price: 1, CreatedAt: daysAgo(9)})
	newest := createProperty(t, db, model.Property{Price: 999, CreatedAt: daysAgo(1)})

	result, err := SearchProperties(db, SearchParams{SortBy: "Bogus", SortOrder: "asc"})
	require.NoError(t, err)

	require.Len(t, result.Properties, 2)
	assert.Equal(t, newest.ID, result.Properties[0].ID)
	assert.Equal(t, oldest.ID, result.Properties[1].ID)
}

func TestFacetsIgnoreFiltersAndStatus(t *testing.T) {
	db := newTestDB(t)

	createProperty(t, db, model.Property{PropertyType: "House", City: "Boston", State: "MA"})
	createProperty(t, db, model.Property{PropertyType: "Condo", City: "Austin", State: "TX", Status: model.PropertyStatusSold})
	createProperty(t, db, model.Property{PropertyType: "Land", City: "Chicago", State: "IL"})

	facets, err := PropertyFacets(db)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"House", "Condo", "Land"}, facets.PropertyTypes)
	assert.Equal(t, []string{"Austin", "Boston", "Chicago"}, facets.Cities)
	assert.Equal(t, []string{"IL", "MA", "TX"}, facets.States)

	// Facets do not change when a filter would narrow the result set
	result, err := SearchProperties(db, SearchParams{PropertyType: "House"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.TotalResults)

	again, err := PropertyFacets(db)
	require.NoError(t, err)
	assert.Equal(t, facets, again)
}

func TestFeaturedPropertiesEnoughFeatured(t *testing.T) {
	db := newTestDB(t)

	var featuredIDs []uint
	for i := 0; i < 8; i++ {
		p := createProperty(t, db, model.Property{IsFeatured: true, CreatedAt: daysAgo(i)})
		featuredIDs = append(featuredIDs, p.ID)
	}
	for i := 0; i < 3; i++ {
		createProperty(t, db, model.Property{CreatedAt: daysAgo(i)})
	}

	result, err := FeaturedProperties(db, 6)
	require.NoError(t, err)

	require.Len(t, result, 6)
	// Exactly the six newest featured ones, newest first
	for i, p := range result {
		assert.Equal(t, featuredIDs[i], p.ID)
		assert.True(t, p.IsFeatured)
	}
}

func TestFeaturedPropertiesBackfillsWithNewestRegular(t *testing.T) {
	db := newTestDB(t)

	feat1 := createProperty(t, db, model.Property{IsFeatured: true, CreatedAt: daysAgo(20)})
	feat2 := createProperty(t, db, model.Property{IsFeatured: true, CreatedAt: daysAgo(30)})

	var regularIDs []uint
	for i := 0; i < 10; i++ {
		p := createProperty(t, db, model.Property{CreatedAt: daysAgo(i)})
		regularIDs = append(regularIDs, p.ID)
	}

	result, err := FeaturedProperties(db, 6)
	require.NoError(t, err)

	require.Len(t, result, 6)
	// Featured block first, newest first, then the four newest regular
	assert.Equal(t, feat1.ID, result[0].ID)
	assert.Equal(t, feat2.ID, result[1].ID)
	for i := 0; i < 4; i++ {
		assert.Equal(t, regularIDs[i], result[2+i].ID)
	}
}

func TestFeaturedPropertiesSkipsUnavailable(t *testing.T) {
	db := newTestDB(t)

	createProperty(t, db, model.Property{IsFeatured: true, Status: model.PropertyStatusSold})
	available := createProperty(t, db, model.Property{IsFeatured: true})

	result, err := FeaturedProperties(db, 6)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, available.ID, result[0].ID)
}
