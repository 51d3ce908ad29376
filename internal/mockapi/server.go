// Package mockapi provides an in-memory implementation of the cockpit backend
// for local development and integration tests. It serves seeded queue,
// taxonomy and suggestion data and simulates the duplicity rejection: a
// submitted name that already exists within the same CNPJ scope is refused
// with HTTP 409.
package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/model"
)

// Server holds the mock backend state. All state is process-local.
type Server struct {
	suggestions map[string][]model.Suggestion
	taken       map[string]bool
	queue       []model.QueueItem
	categories  []model.Category
	subcats     []model.Subcategory
	mu          sync.Mutex
}

// Seed is the initial data served by the mock backend.
type Seed struct {
	Suggestions   map[string][]model.Suggestion
	Queue         []model.QueueItem
	Categories    []model.Category
	Subcategories []model.Subcategory
}

// NewServer creates a mock backend over the given seed.
func NewServer(seed Seed) *Server {
	s := &Server{
		queue:       seed.Queue,
		categories:  seed.Categories,
		subcats:     seed.Subcategories,
		suggestions: seed.Suggestions,
		taken:       make(map[string]bool),
	}
	if s.suggestions == nil {
		s.suggestions = make(map[string][]model.Suggestion)
	}
	return s
}

// Router returns the HTTP routes of the mock backend.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/queue", s.handleQueue).Methods(http.MethodGet)
	r.HandleFunc("/suggestions", s.handleSuggestions).Methods(http.MethodGet)
	r.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)
	r.HandleFunc("/subcategories", s.handleSubcategories).Methods(http.MethodGet)
	r.HandleFunc("/process", s.handleProcess).Methods(http.MethodPost)
	r.HandleFunc("/process/batch", s.handleProcessBatch).Methods(http.MethodPost)
	return r
}

func (s *Server) handleQueue(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	items := make([]model.QueueItem, len(s.queue))
	copy(items, s.queue)
	s.mu.Unlock()

	writeJSON(w, items)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("item_id")
	if itemID == "" {
		http.Error(w, "item_id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	suggestions := s.suggestions[itemID]
	s.mu.Unlock()

	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}
	writeJSON(w, suggestions)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	categories := make([]model.Category, len(s.categories))
	copy(categories, s.categories)
	s.mu.Unlock()

	writeJSON(w, categories)
}

func (s *Server) handleSubcategories(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")

	s.mu.Lock()
	subcats := make([]model.Subcategory, 0, len(s.subcats))
	for _, sub := range s.subcats {
		if categoryID == "" || sub.CategoryID == categoryID {
			subcats = append(subcats, sub)
		}
	}
	s.mu.Unlock()

	writeJSON(w, subcats)
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var payload model.SubmitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.ID == "" || payload.Name == "" || payload.CategoryID == "" || payload.SubcategoryID == "" {
		http.Error(w, "id, name, category_id and subcategory_id are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findItem(payload.ID)
	if !ok {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if s.taken[nameKey(item.CNPJ, payload.Name)] {
		http.Error(w, "name already exists for this client", http.StatusConflict)
		return
	}

	s.commit(item, payload.Name)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProcessBatch(w http.ResponseWriter, r *http.Request) {
	var payload model.BatchSubmitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(payload.Items) == 0 {
		http.Error(w, "items are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before mutating anything.
	for _, entry := range payload.Items {
		item, ok := s.findItem(entry.ID)
		if !ok {
			http.Error(w, "item not found: "+entry.ID, http.StatusNotFound)
			return
		}
		if entry.CategoryID == "" || entry.SubcategoryID == "" {
			http.Error(w, "category_id and subcategory_id are required", http.StatusBadRequest)
			return
		}
		if entry.Name != "" && s.taken[nameKey(item.CNPJ, entry.Name)] {
			http.Error(w, "name already exists for this client: "+entry.Name, http.StatusConflict)
			return
		}
	}

	for _, entry := range payload.Items {
		if item, ok := s.findItem(entry.ID); ok {
			name := entry.Name
			if name == "" {
				name = item.NormalizedName
			}
			s.commit(item, name)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) findItem(id string) (model.QueueItem, bool) {
	for _, item := range s.queue {
		if item.ID == id {
			return item, true
		}
	}
	return model.QueueItem{}, false
}

// commit marks the name as taken for the item's client and drops the item
// from the pending queue. Callers must hold the lock.
func (s *Server) commit(item model.QueueItem, name string) {
	s.taken[nameKey(item.CNPJ, name)] = true
	for i, queued := range s.queue {
		if queued.ID == item.ID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			break
		}
	}
	delete(s.suggestions, item.ID)
}

func nameKey(cnpj, name string) string {
	return cnpj + "|" + strings.ToLower(strings.TrimSpace(name))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		common.LogError(err, "failed to encode response", nil)
	}
}
