// Package stubstore is a small in-process imitation of the store API, including its habit of
// answering 200 with a null body for missing resources and rejected logins.
//
// It exists so that the test harness itself can be tested without the network. The contract
// tests never use it: they always run against the real service.
package stubstore

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/fakestore-qa/store-contract-tests/storedef"

	"github.com/go-chi/chi/v5"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Store holds the data served by the stub. Created resources get an ID but, as with the real
// service, are not kept.
type Store struct {
	Products []storedef.Product
	Carts    []storedef.Cart
	Users    []storedef.User
	Token    string

	overrides map[string]http.Handler
	requests  []RecordedRequest
	lock      sync.Mutex
}

// RecordedRequest is what the stub saw of one incoming request.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// New returns a Store with a small, valid data set.
func New() *Store {
	return &Store{
		Products: SampleProducts(),
		Carts:    SampleCarts(),
		Users:    SampleUsers(),
		Token:    "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.stub",
	}
}

// Override replaces the response for one method and path, for tests that need the service to
// misbehave. The path is matched exactly against the decoded request path.
func (s *Store) Override(method, path string, handler http.Handler) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.overrides == nil {
		s.overrides = make(map[string]http.Handler)
	}
	s.overrides[method+" "+path] = handler
}

// Requests returns every request received so far, in order.
func (s *Store) Requests() []RecordedRequest {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// Handler returns the HTTP handler for the stub API.
func (s *Store) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recordAndOverride)

	r.Post("/auth/login", s.login)

	r.Get("/products", s.listProducts)
	r.Post("/products", s.addProduct)
	r.Get("/products/categories", s.listCategories)
	r.Get("/products/category/{category}", s.listProductsInCategory)
	r.Get("/products/{id}", s.getProduct)
	r.Put("/products/{id}", s.updateProduct)
	r.Delete("/products/{id}", s.deleteProduct)

	r.Get("/carts", s.listCarts)
	r.Post("/carts", s.addCart)

	return r
}

func (s *Store) recordAndOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := readBody(req)
		s.lock.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: req.Method,
			Path:   req.URL.Path,
			Header: req.Header.Clone(),
			Body:   body,
		})
		override := s.overrides[req.Method+" "+req.URL.Path]
		s.lock.Unlock()

		if override != nil {
			override.ServeHTTP(w, req)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (s *Store) login(w http.ResponseWriter, req *http.Request) {
	var params storedef.LoginRequest
	if !decodeRequest(w, req, &params) {
		return
	}
	for _, u := range s.Users {
		if u.Username != "" && u.Username == params.Username && u.Password == params.Password {
			writeJSON(w, storedef.LoginResponse{Token: ldvalue.NewOptionalString(s.Token)})
			return
		}
	}
	writeNull(w)
}

func (s *Store) listProducts(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, s.Products)
}

func (s *Store) listCategories(w http.ResponseWriter, req *http.Request) {
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range s.Products {
		if c, ok := p.Category.Get(); ok && !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	writeJSON(w, categories)
}

func (s *Store) listProductsInCategory(w http.ResponseWriter, req *http.Request) {
	category := chi.URLParam(req, "category")
	if unescaped, err := url.PathUnescape(category); err == nil {
		category = unescaped
	}
	matches := []storedef.Product{}
	for _, p := range s.Products {
		if p.Category.StringValue() == category {
			matches = append(matches, p)
		}
	}
	writeJSON(w, matches)
}

func (s *Store) getProduct(w http.ResponseWriter, req *http.Request) {
	if p, ok := s.findProduct(req); ok {
		writeJSON(w, p)
		return
	}
	writeNull(w)
}

func (s *Store) addProduct(w http.ResponseWriter, req *http.Request) {
	var params storedef.NewProduct
	if !decodeRequest(w, req, &params) {
		return
	}
	writeJSON(w, productFrom(len(s.Products)+1, params))
}

func (s *Store) updateProduct(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeNull(w)
		return
	}
	var params storedef.NewProduct
	if !decodeRequest(w, req, &params) {
		return
	}
	writeJSON(w, productFrom(id, params))
}

func (s *Store) deleteProduct(w http.ResponseWriter, req *http.Request) {
	s.getProduct(w, req)
}

func (s *Store) findProduct(req *http.Request) (storedef.Product, bool) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		return storedef.Product{}, false
	}
	for _, p := range s.Products {
		if p.ID.IntValue() == id && p.ID.IsDefined() {
			return p, true
		}
	}
	return storedef.Product{}, false
}

func (s *Store) listCarts(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, s.Carts)
}

func (s *Store) addCart(w http.ResponseWriter, req *http.Request) {
	var params storedef.NewCart
	if !decodeRequest(w, req, &params) {
		return
	}
	writeJSON(w, storedef.Cart{
		ID:       ldvalue.NewOptionalInt(len(s.Carts) + 1),
		UserID:   ldvalue.NewOptionalInt(params.UserID),
		Date:     ldvalue.NewOptionalString(params.Date),
		Products: params.Products,
	})
}

func productFrom(id int, params storedef.NewProduct) storedef.Product {
	return storedef.Product{
		ID:          ldvalue.NewOptionalInt(id),
		Title:       ldvalue.NewOptionalString(params.Title),
		Price:       params.Price,
		Description: params.Description,
		Category:    ldvalue.NewOptionalString(params.Category),
		Image:       params.Image,
	}
}

func decodeRequest(w http.ResponseWriter, req *http.Request, target interface{}) bool {
	body, err := readBody(req)
	if err == nil {
		err = json.Unmarshal(body, target)
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// The service sends its null bodies as JSON, with a 200 status.
func writeNull(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("null"))
}
