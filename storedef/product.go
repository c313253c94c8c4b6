// Package storedef contains the shapes of the resources served by the store API.
//
// Fields that the service might leave out, and that tests need to tell apart from a zero
// value, use the optional types from ldvalue or a pointer. Decoding never fails just because
// such a field is missing; whether that matters is up to the test.
package storedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// Categories that the service is known to use, in the order its categories resource lists them.
const (
	CategoryElectronics    = "electronics"
	CategoryJewelery       = "jewelery"
	CategoryMensClothing   = "men's clothing"
	CategoryWomensClothing = "women's clothing"
)

var KnownCategories = []string{
	CategoryElectronics,
	CategoryJewelery,
	CategoryMensClothing,
	CategoryWomensClothing,
}

type Product struct {
	ID          ldvalue.OptionalInt    `json:"id"`
	Title       ldvalue.OptionalString `json:"title"`
	Price       float64                `json:"price"`
	Description string                 `json:"description"`
	Category    ldvalue.OptionalString `json:"category"`
	Image       string                 `json:"image"`
	Rating      *Rating                `json:"rating,omitempty"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// NewProduct is the request body for creating or replacing a product. It has no ID field,
// because IDs are assigned by the service.
type NewProduct struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}
