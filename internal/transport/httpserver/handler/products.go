package handler

import (
	"net/http"
	"time"

	catalogdomain "garments-api/internal/domain/catalog"
	"github.com/go-chi/chi/v5"
)

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type createProductRequest struct {
	Name        string  `json:"name"`
	CategoryID  string  `json:"category_id"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Image       *string `json:"image"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type productResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  *string   `json:"description"`
	Price        float64   `json:"price"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type categoriesResponse struct {
	envelope
	Categories []categoryResponse `json:"categories"`
}

type productsResponse struct {
	envelope
	Products []productResponse `json:"products"`
}

type productDetailResponse struct {
	envelope
	Product productResponse `json:"product"`
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		h.fail(w, "products.list_categories", err, "Failed to fetch categories")
		return
	}
	items := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, categoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			CreatedAt:   category.CreatedAt,
			UpdatedAt:   category.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, categoriesResponse{envelope: ok(""), Categories: items})
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeRequest(w, r, &req, "name"); err != nil {
		h.fail(w, "products.create_category", err, "Failed to create category")
		return
	}

	category, err := h.Catalog.CreateCategory(r.Context(), catalogdomain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.fail(w, "products.create_category", err, "Failed to create category", "name", req.Name)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Category created successfully"), ID: category.ID})
}

// ListCategoryProducts answers GET /category/{id} with the products of that
// category. An unknown category yields an empty list.
func (h *Handlers) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	products, err := h.Catalog.ListProductsByCategory(r.Context(), id)
	if err != nil {
		h.fail(w, "products.list_by_category", err, "Failed to fetch products", "category_id", id)
		return
	}
	writeJSON(w, http.StatusOK, productsResponse{envelope: ok(""), Products: mapProducts(products)})
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	changes, err := decodeChanges(w, r)
	if err == nil {
		err = h.Catalog.UpdateCategory(r.Context(), id, changes)
	}
	if err != nil {
		h.fail(w, "products.update_category", err, "Failed to update category", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Category updated successfully"))
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Catalog.DeleteCategory(r.Context(), id); err != nil {
		h.fail(w, "products.delete_category", err, "Failed to delete category", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Category deleted successfully"))
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.ListProducts(r.Context())
	if err != nil {
		h.fail(w, "products.list", err, "Failed to fetch products")
		return
	}
	writeJSON(w, http.StatusOK, productsResponse{envelope: ok(""), Products: mapProducts(products)})
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeRequest(w, r, &req, "name", "category_id", "price"); err != nil {
		h.fail(w, "products.create", err, "Failed to create product")
		return
	}

	product, err := h.Catalog.CreateProduct(r.Context(), catalogdomain.CreateProductInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		h.fail(w, "products.create", err, "Failed to create product", "category_id", req.CategoryID)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Product created successfully"), ID: product.ID})
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := h.Catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, "products.get", err, "Failed to fetch product", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, productDetailResponse{envelope: ok(""), Product: mapProduct(*product)})
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	changes, err := decodeChanges(w, r)
	if err == nil {
		err = h.Catalog.UpdateProduct(r.Context(), id, changes)
	}
	if err != nil {
		h.fail(w, "products.update", err, "Failed to update product", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Product updated successfully"))
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Catalog.DeleteProduct(r.Context(), id); err != nil {
		h.fail(w, "products.delete", err, "Failed to delete product", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Product deleted successfully"))
}

func mapProducts(products []catalogdomain.ProductView) []productResponse {
	items := make([]productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, mapProduct(product))
	}
	return items
}

func mapProduct(product catalogdomain.ProductView) productResponse {
	return productResponse{
		ID:           product.ID,
		Name:         product.Name,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
		Description:  product.Description,
		Price:        product.Price,
		Image:        product.Image,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
