package storetests

import (
	"net/http"

	"github.com/fakestore-qa/store-contract-tests/storedef"
	"github.com/fakestore-qa/store-contract-tests/validate"
)

const cartsPath = "/carts"

func DoCartTests(t *T) {
	t.Run("get all carts", func(t *T) {
		resp := t.Get(cartsPath)
		validate.RequireStatus(t, resp, http.StatusOK)

		carts := validate.RequireDecodeList[storedef.Cart](t, resp)
		if !validate.Field(t, carts, validate.NotEmptySlice[storedef.Cart](), "carts list") {
			return
		}
		first := carts[0]
		validate.Field(t, first.ID, validate.PresentInt(), "id of first cart")
		validate.Field(t, first.UserID, validate.PresentInt(), "userId of first cart")
		validate.Field(t, first.Date, validate.Present(), "date of first cart")
		validate.Field(t, first.Products, validate.PresentSlice[storedef.CartItem](), "products of first cart")
		t.Debug("retrieved %d carts", len(carts))
	})

	t.Run("add new cart", func(t *T) {
		cart := newTestCart()
		validate.Field(t, cart.Products, validate.NotEmptySlice[storedef.CartItem](), "products of new cart")

		resp := t.Post(cartsPath, cart)
		validate.RequireStatus(t, resp, http.StatusOK)

		created := validate.RequireDecode[storedef.Cart](t, resp)
		validate.Field(t, created.ID, validate.PresentInt(), "ID of created cart")
		t.Debug("cart created with ID: %d", created.ID.IntValue())
	})
}
