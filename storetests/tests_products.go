package storetests

import (
	"net/http"
	"strconv"

	"github.com/fakestore-qa/store-contract-tests/storedef"
	"github.com/fakestore-qa/store-contract-tests/validate"

	"github.com/stretchr/testify/assert"
)

const (
	productsPath   = "/products"
	categoriesPath = "/products/categories"
	categoryPath   = "/products/category/"
)

func productPath(id int) string {
	return productsPath + "/" + strconv.Itoa(id)
}

// productLabel identifies a product in a failure message, even if it has no ID.
func productLabel(p storedef.Product) string {
	if id, ok := p.ID.Get(); ok {
		return strconv.Itoa(id)
	}
	return "(no ID)"
}

func DoProductTests(t *T) {
	t.Run("get all products", func(t *T) {
		resp := t.Get(productsPath)
		validate.RequireStatus(t, resp, http.StatusOK)

		products := validate.RequireDecodeList[storedef.Product](t, resp)
		validate.Field(t, products, validate.NotEmptySlice[storedef.Product](), "products list")
		if len(products) > 0 {
			first := products[0]
			validate.Field(t, first.Title, validate.Present(), "title of first product")
			validate.Field(t, first.Price, validate.Positive[float64](), "price of first product")
			validate.Field(t, first.Category, validate.Present(), "category of first product")
		}

		validate.Latency(t, resp, t.LatencyBudgetMillis(), "GET %s", productsPath)
		t.Debug("retrieved %d products in %dms", len(products), validate.MeasureLatency(resp))
	})

	t.Run("get single product", func(t *T) {
		resp := t.Get(productPath(existingProductID))
		validate.RequireStatus(t, resp, http.StatusOK)

		product := validate.RequireDecode[storedef.Product](t, resp)
		validate.Field(t, product.ID, validate.HasInt(existingProductID), "product ID")
		validate.Field(t, product.Title, validate.Present(), "product title")
		validate.Field(t, product.Price, validate.Positive[float64](), "product price")
		if validate.Field(t, product.Rating, validate.NotNil[storedef.Rating](), "product rating") {
			validate.Field(t, product.Rating.Rate, validate.Between(0.0, 5.0), "product rating rate")
		}
	})

	t.Run("get categories", func(t *T) {
		resp := t.Get(categoriesPath)
		validate.RequireStatus(t, resp, http.StatusOK)

		categories := validate.RequireDecodeList[string](t, resp)
		validate.Field(t, categories, validate.NotEmptySlice[string](), "categories list")
		known := validate.OneOf(storedef.KnownCategories...)
		for _, category := range categories {
			validate.Field(t, category, known, "category")
		}
		t.Debug("retrieved categories: %v", categories)
	})

	t.Run("get products by category", func(t *T) {
		for _, category := range storedef.KnownCategories {
			category := category
			t.Run(category, func(t *T) { doGetProductsByCategory(t, category) })
		}
	})

	t.Run("add new product", func(t *T) {
		newProduct := qaTestProduct()
		resp := t.Post(productsPath, newProduct)
		validate.RequireStatus(t, resp, http.StatusOK)

		created := validate.RequireDecode[storedef.Product](t, resp)
		validate.Field(t, created.ID, validate.PresentInt(), "ID of created product")
		validate.Field(t, created.Title, validate.HasString(newProduct.Title), "title of created product")
		validate.Field(t, created.Price, validate.ApproxEquals(newProduct.Price, priceTolerance), "price of created product")
		t.Debug("product created with ID: %s", productLabel(created))
	})

	t.Run("update product", func(t *T) {
		updated := updatedTestProduct()
		resp := t.Put(productPath(existingProductID), updated)
		validate.RequireStatus(t, resp, http.StatusOK)

		result := validate.RequireDecode[storedef.Product](t, resp)
		validate.Field(t, result.ID, validate.HasInt(existingProductID), "ID of updated product")
		validate.Field(t, result.Title, validate.HasString(updated.Title), "title of updated product")
	})

	t.Run("delete product", func(t *T) {
		resp := t.Delete(productPath(existingProductID))
		validate.RequireStatus(t, resp, http.StatusOK)

		deleted := validate.RequireDecode[storedef.Product](t, resp)
		t.Debug("product deleted: %s", deleted.Title.StringValue())
	})

	t.Run("get non-existent product", func(t *T) {
		// The service answers 200 with a null body here rather than 404.
		resp := t.Get(productPath(nonExistentProductID))
		validate.RequireStatus(t, resp, http.StatusOK)
		validate.Null(t, resp, "response for non-existent product %d", nonExistentProductID)
	})

	t.Run("product data integrity", func(t *T) {
		resp := t.Get(productsPath)
		validate.Status(t, resp, http.StatusOK)

		products := validate.RequireDecodeList[storedef.Product](t, resp)
		for _, p := range products {
			id := productLabel(p)
			validate.Field(t, p.Title, validate.Present(), "title of product %s", id)
			validate.Field(t, p.Price, validate.Positive[float64](), "price of product %s", id)
			validate.Field(t, p.Category, validate.Present(), "category of product %s", id)
			if p.Rating != nil {
				validate.Field(t, p.Rating.Rate, validate.Between(0.0, 5.0), "rating rate of product %s", id)
				validate.Field(t, p.Rating.Count, validate.NonNegative[int](), "rating count of product %s", id)
			}
		}
		t.Debug("data integrity validated for %d products", len(products))
	})

	t.Run("performance", func(t *T) {
		var total int64
		for i := 0; i < performanceIterations; i++ {
			resp := t.Get(productsPath)
			validate.Status(t, resp, http.StatusOK, "request %d", i+1)
			elapsed := validate.MeasureLatency(resp)
			t.Debug("request %d completed in %dms", i+1, elapsed)
			total += elapsed
		}
		average := total / performanceIterations
		validate.Field(t, average, validate.LessThan(t.LatencyBudgetMillis()), "average response time in ms")
	})
}

// The category is used in the path exactly as given, including any spaces or apostrophes.
func doGetProductsByCategory(t *T, category string) {
	resp := t.Get(categoryPath + category)
	validate.RequireStatus(t, resp, http.StatusOK)

	products := validate.RequireDecodeList[storedef.Product](t, resp)
	validate.Field(t, products, validate.NotEmptySlice[storedef.Product](), "products in category %q", category)
	for _, p := range products {
		assert.Equal(t, category, p.Category.StringValue(), "product %s is in the wrong category", productLabel(p))
	}
	t.Debug("found %d products in category %q", len(products), category)
}
