package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseline-tools/cockpit/internal/model"
)

func seedOneItem() Seed {
	return Seed{
		Queue: []model.QueueItem{{
			ID:             "itm-1",
			OriginalName:   "RAW NAME",
			NormalizedName: "Clean Name",
			CNPJ:           "12.345.678/0001-90",
			Confidence:     0.9,
			CreatedAt:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}},
		Categories:    []model.Category{{ID: "cat-1", Name: "Beverages"}},
		Subcategories: []model.Subcategory{{ID: "sub-1", Name: "Sodas", CategoryID: "cat-1"}},
		Suggestions: map[string][]model.Suggestion{
			"itm-1": {{ID: "sug-1", Name: "Clean Name", CategoryID: "cat-1", SubcategoryID: "sub-1", Similarity: 0.9}},
		},
	}
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestQueueEndpoint(t *testing.T) {
	router := NewServer(seedOneItem()).Router()

	rec := doJSON(t, router, http.MethodGet, "/queue", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []model.QueueItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "itm-1", items[0].ID)
}

func TestSuggestionsEndpointRequiresItemID(t *testing.T) {
	router := NewServer(seedOneItem()).Router()

	rec := doJSON(t, router, http.MethodGet, "/suggestions", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/suggestions?item_id=itm-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestions []model.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestions))
	assert.Len(t, suggestions, 1)
}

func TestSuggestionsForUnknownItemAreEmptyNotNull(t *testing.T) {
	router := NewServer(seedOneItem()).Router()

	rec := doJSON(t, router, http.MethodGet, "/suggestions?item_id=ghost", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSubcategoriesFilter(t *testing.T) {
	seed := seedOneItem()
	seed.Subcategories = append(seed.Subcategories, model.Subcategory{ID: "sub-2", Name: "Other", CategoryID: "cat-2"})
	router := NewServer(seed).Router()

	rec := doJSON(t, router, http.MethodGet, "/subcategories?category_id=cat-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var subcats []model.Subcategory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subcats))
	require.Len(t, subcats, 1)
	assert.Equal(t, "sub-1", subcats[0].ID)
}

func TestProcessRemovesItemAndReservesName(t *testing.T) {
	router := NewServer(seedOneItem()).Router()
	payload := model.SubmitPayload{ID: "itm-1", Name: "Final Name", CategoryID: "cat-1", SubcategoryID: "sub-1"}

	rec := doJSON(t, router, http.MethodPost, "/process", payload)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/queue", nil)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestProcessDuplicityIsCaseInsensitive(t *testing.T) {
	seed := seedOneItem()
	seed.Queue = append(seed.Queue, model.QueueItem{
		ID:   "itm-2",
		CNPJ: seed.Queue[0].CNPJ,
	})
	router := NewServer(seed).Router()

	first := model.SubmitPayload{ID: "itm-1", Name: "Final Name", CategoryID: "cat-1", SubcategoryID: "sub-1"}
	rec := doJSON(t, router, http.MethodPost, "/process", first)
	require.Equal(t, http.StatusNoContent, rec.Code)

	second := model.SubmitPayload{ID: "itm-2", Name: " FINAL name ", CategoryID: "cat-1", SubcategoryID: "sub-1"}
	rec = doJSON(t, router, http.MethodPost, "/process", second)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProcessValidation(t *testing.T) {
	router := NewServer(seedOneItem()).Router()

	rec := doJSON(t, router, http.MethodPost, "/process", model.SubmitPayload{ID: "itm-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/process", model.SubmitPayload{
		ID: "ghost", Name: "n", CategoryID: "c", SubcategoryID: "s",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProcessBatchValidatesBeforeMutating(t *testing.T) {
	seed := seedOneItem()
	seed.Queue = append(seed.Queue, model.QueueItem{ID: "itm-2", NormalizedName: "Second", CNPJ: seed.Queue[0].CNPJ})
	router := NewServer(seed).Router()

	// Second entry is invalid: nothing must be committed.
	rec := doJSON(t, router, http.MethodPost, "/process/batch", model.BatchSubmitPayload{
		Items: []model.BatchSubmitItem{
			{ID: "itm-1", CategoryID: "cat-1", SubcategoryID: "sub-1"},
			{ID: "ghost", CategoryID: "cat-1", SubcategoryID: "sub-1"},
		},
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/queue", nil)
	var items []model.QueueItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestDefaultSeedIsConsistent(t *testing.T) {
	seed := DefaultSeed()

	require.NotEmpty(t, seed.Queue)
	require.NotEmpty(t, seed.Categories)
	require.NotEmpty(t, seed.Subcategories)

	categories := make(map[string]bool, len(seed.Categories))
	for _, cat := range seed.Categories {
		categories[cat.ID] = true
	}
	// Every subcategory must reference an existing category.
	for _, sub := range seed.Subcategories {
		assert.True(t, categories[sub.CategoryID], "subcategory %s references unknown category", sub.ID)
	}
	// Every queue item has suggestions in the seed.
	for _, item := range seed.Queue {
		assert.NotEmpty(t, seed.Suggestions[item.ID])
	}
}
