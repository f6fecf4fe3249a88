// Package mockstore serves a fixture Storefront GraphQL API. It backs the
// client tests and the -mock mode of the app.
package mockstore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"shopgrip/internal/domain"
)

// Store is an in-memory storefront
type Store struct {
	mu          sync.Mutex
	products    []domain.Product
	collections []domain.Collection
	slides      []domain.HeroSlide
	carts       map[string]*domain.Cart
	nextLine    int

	token    string
	latency  time.Duration
	failures map[string]int // top-level field -> HTTP status
	requests map[string]int // top-level field -> count
}

// Option configures a Store
type Option func(*Store)

// WithToken requires the storefront access token header
func WithToken(token string) Option {
	return func(s *Store) { s.token = token }
}

// WithLatency delays every response
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithFailure makes every request for a top-level field answer with status
func WithFailure(field string, status int) Option {
	return func(s *Store) { s.failures[field] = status }
}

// WithProducts replaces the fixture catalog
func WithProducts(products []domain.Product) Option {
	return func(s *Store) { s.products = products }
}

// New creates a store loaded with the default fixtures
func New(opts ...Option) *Store {
	s := &Store{
		products:    DefaultProducts(),
		collections: DefaultCollections(),
		slides:      DefaultSlides(),
		carts:       make(map[string]*domain.Cart),
		failures:    make(map[string]int),
		requests:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Requests returns how many requests hit a top-level field
func (s *Store) Requests(field string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[field]
}

// Handler returns the HTTP API
func (s *Store) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger)

	r.Route("/api/{version}", func(r chi.Router) {
		r.With(s.requireToken).Post("/graphql.json", s.handleGraphQL)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"request_id": r.Header.Get("X-Request-ID"),
			"path":       r.URL.Path,
		}).Debugf("mockstore served request in %v", time.Since(start))
	})
}

func (s *Store) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("X-Shopify-Storefront-Access-Token") != s.token {
			http.Error(w, "invalid storefront access token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

func (s *Store) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		writeErrors(w, fmt.Sprintf("parse error: %v", err))
		return
	}

	var op *ast.OperationDefinition
	if req.OperationName != "" {
		op = doc.Operations.ForName(req.OperationName)
	} else if len(doc.Operations) == 1 {
		op = doc.Operations[0]
	}
	if op == nil {
		writeErrors(w, "operation not found")
		return
	}

	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-r.Context().Done():
			return
		}
	}

	data := make(map[string]any)
	for _, sel := range op.SelectionSet {
		field, ok := sel.(*ast.Field)
		if !ok {
			continue
		}

		s.mu.Lock()
		s.requests[field.Name]++
		status := s.failures[field.Name]
		s.mu.Unlock()
		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}

		args := resolveArgs(field, req.Variables)
		value, err := s.resolve(field.Name, args)
		if err != nil {
			writeErrors(w, err.Error())
			return
		}
		data[field.Alias] = value
	}

	writeJSON(w, map[string]any{"data": data})
}

// resolveArgs evaluates a field's arguments against the request variables
func resolveArgs(field *ast.Field, vars map[string]any) map[string]any {
	args := make(map[string]any, len(field.Arguments))
	for _, arg := range field.Arguments {
		v, err := arg.Value.Value(vars)
		if err != nil {
			continue
		}
		args[arg.Name] = v
	}
	return args
}

func (s *Store) resolve(name string, args map[string]any) (any, error) {
	switch name {
	case "predictiveSearch":
		return s.predictiveSearch(stringArg(args, "query"), intArg(args, "limit", 10)), nil
	case "cartCreate":
		input, _ := args["input"].(map[string]any)
		return s.cartCreate(linesArg(input, "lines")), nil
	case "cartLinesAdd":
		return s.cartLinesAdd(stringArg(args, "cartId"), linesArg(args, "lines")), nil
	case "cart":
		return s.cart(stringArg(args, "id")), nil
	case "metaobjects":
		return s.metaobjects(stringArg(args, "type"), intArg(args, "first", 10)), nil
	case "collections":
		sortKey := stringArg(args, "sortKey")
		reverse, _ := args["reverse"].(bool)
		return s.collectionList(intArg(args, "first", 10), sortKey, reverse), nil
	case "products":
		return s.productList(intArg(args, "first", 10)), nil
	}
	return nil, fmt.Errorf("field %q is not supported by the mock storefront", name)
}

func (s *Store) predictiveSearch(term string, limit int) map[string]any {
	term = strings.ToLower(strings.TrimSpace(term))
	products := []any{}
	for _, p := range s.products {
		if term == "" || !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		if len(products) >= limit {
			break
		}
		entry := map[string]any{
			"id":                              p.ID,
			"handle":                          p.Handle,
			"title":                           p.Title,
			"selectedOrFirstAvailableVariant": nil,
		}
		if v, ok := p.FirstAvailableVariant(); ok {
			entry["selectedOrFirstAvailableVariant"] = map[string]any{
				"id":    v.ID,
				"image": imageJSON(v.Image),
				"price": moneyJSON(v.Price),
			}
		}
		products = append(products, entry)
	}
	return map[string]any{"products": products}
}

type lineInput struct {
	merchandiseID string
	quantity      int
}

func (s *Store) findVariant(id string) (domain.Product, domain.Variant, bool) {
	for _, p := range s.products {
		for _, v := range p.Variants {
			if v.ID == id {
				return p, v, true
			}
		}
	}
	return domain.Product{}, domain.Variant{}, false
}

// validateLines returns the user errors for a set of lines
func (s *Store) validateLines(lines []lineInput) []any {
	userErrors := []any{}
	if len(lines) == 0 {
		userErrors = append(userErrors, userError([]string{"lines"}, "At least one line is required."))
	}
	for i, l := range lines {
		if _, _, ok := s.findVariant(l.merchandiseID); !ok {
			userErrors = append(userErrors, userError(
				[]string{"lines", fmt.Sprint(i), "merchandiseId"},
				fmt.Sprintf("The merchandise with id %s does not exist.", l.merchandiseID)))
			continue
		}
		if l.quantity < 1 {
			userErrors = append(userErrors, userError(
				[]string{"lines", fmt.Sprint(i), "quantity"},
				"Quantity must be at least 1."))
		}
	}
	return userErrors
}

func (s *Store) cartCreate(lines []lineInput) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := s.validateLines(lines); len(errs) > 0 {
		return map[string]any{"cart": nil, "userErrors": errs}
	}
	id := "gid://shopify/Cart/" + uuid.NewString()
	cart := &domain.Cart{
		ID:          id,
		CheckoutURL: "https://checkout.example.com/cart/c/" + strings.TrimPrefix(id, "gid://shopify/Cart/"),
		Subtotal:    usd("0"),
	}
	s.carts[id] = cart
	s.addLines(cart, lines)
	return map[string]any{"cart": cartJSON(cart), "userErrors": []any{}}
}

func (s *Store) cartLinesAdd(cartID string, lines []lineInput) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return map[string]any{
			"cart":       nil,
			"userErrors": []any{userError([]string{"cartId"}, "The specified cart does not exist.")},
		}
	}
	if errs := s.validateLines(lines); len(errs) > 0 {
		return map[string]any{"cart": nil, "userErrors": errs}
	}
	s.addLines(cart, lines)
	return map[string]any{"cart": cartJSON(cart), "userErrors": []any{}}
}

// addLines merges lines into the cart, one line per merchandise
func (s *Store) addLines(cart *domain.Cart, lines []lineInput) {
	for _, in := range lines {
		p, v, _ := s.findVariant(in.merchandiseID)
		merged := false
		for i := range cart.Lines {
			if cart.Lines[i].MerchandiseID == v.ID {
				cart.Lines[i].Quantity += in.quantity
				merged = true
				break
			}
		}
		if !merged {
			s.nextLine++
			cart.Lines = append(cart.Lines, domain.CartLineItem{
				ID:            fmt.Sprintf("gid://shopify/CartLine/%d", s.nextLine),
				Quantity:      in.quantity,
				MerchandiseID: v.ID,
				ProductTitle:  p.Title,
				ProductHandle: p.Handle,
				VariantTitle:  v.Title,
			})
		}
	}

	cart.TotalQuantity = 0
	cart.Subtotal = usd("0")
	for i := range cart.Lines {
		_, v, _ := s.findVariant(cart.Lines[i].MerchandiseID)
		total := v.Price.Amount.Mul(decimalFromInt(cart.Lines[i].Quantity))
		cart.Lines[i].Total = domain.Money{Amount: total, CurrencyCode: v.Price.CurrencyCode}
		cart.TotalQuantity += cart.Lines[i].Quantity
		cart.Subtotal.Amount = cart.Subtotal.Amount.Add(total)
	}
}

func (s *Store) cart(id string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[id]
	if !ok {
		return nil
	}
	return cartJSON(cart)
}

func (s *Store) metaobjects(typ string, first int) map[string]any {
	nodes := []any{}
	if typ == "hero_swiper_content" {
		for i, slide := range s.slides {
			if i >= first {
				break
			}
			fields := []any{}
			keys := make([]string, 0, len(slide.Fields))
			for k := range slide.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fields = append(fields, map[string]any{"key": k, "value": slide.Fields[k]})
			}
			var media any
			if slide.MediaURL != "" {
				media = map[string]any{"reference": map[string]any{"image": map[string]any{"url": slide.MediaURL, "altText": ""}}}
			}
			nodes = append(nodes, map[string]any{
				"id":     slide.ID,
				"handle": slide.Handle,
				"media":  media,
				"fields": fields,
			})
		}
	}
	return map[string]any{"nodes": nodes}
}

func (s *Store) collectionList(first int, sortKey string, reverse bool) map[string]any {
	list := make([]domain.Collection, len(s.collections))
	copy(list, s.collections)
	switch sortKey {
	case "TITLE":
		sort.SliceStable(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	case "UPDATED_AT":
		// fixtures are stored newest first
		reverseCollections(list)
	}
	if reverse {
		reverseCollections(list)
	}
	nodes := []any{}
	for i, c := range list {
		if i >= first {
			break
		}
		nodes = append(nodes, map[string]any{
			"id":     c.ID,
			"handle": c.Handle,
			"title":  c.Title,
			"image":  imageJSON(c.Image),
		})
	}
	return map[string]any{"nodes": nodes}
}

func (s *Store) productList(first int) map[string]any {
	nodes := []any{}
	for i, p := range s.products {
		if i >= first {
			break
		}
		variants := []any{}
		for _, v := range p.Variants {
			variants = append(variants, map[string]any{
				"id":               v.ID,
				"title":            v.Title,
				"availableForSale": v.AvailableForSale,
				"price":            moneyJSON(v.Price),
				"image":            imageJSON(v.Image),
			})
		}
		nodes = append(nodes, map[string]any{
			"id":            p.ID,
			"handle":        p.Handle,
			"title":         p.Title,
			"featuredImage": imageJSON(p.FeaturedImage),
			"priceRange":    map[string]any{"minVariantPrice": moneyJSON(p.MinPrice)},
			"variants":      map[string]any{"nodes": variants},
		})
	}
	return map[string]any{"nodes": nodes}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("mockstore: failed to encode response: %v", err)
	}
}

func writeErrors(w http.ResponseWriter, messages ...string) {
	errs := make([]gqlError, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, gqlError{Message: m})
	}
	writeJSON(w, map[string]any{"data": nil, "errors": errs})
}
