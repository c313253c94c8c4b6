package storetests

import "github.com/fakestore-qa/store-contract-tests/storedef"

const (
	existingProductID    = 1
	nonExistentProductID = 999

	performanceIterations = 5

	// priceTolerance allows for the service echoing a price through a float conversion.
	priceTolerance = 0.01
)

var (
	invalidUser = storedef.User{Username: "invalid_user", Password: "wrong_password"}
	emptyUser   = storedef.User{}
)

func qaTestProduct() storedef.NewProduct {
	return storedef.NewProduct{
		Title:       "QA Test Product",
		Price:       29.99,
		Description: "This is a test product created by QA automation",
		Category:    storedef.CategoryElectronics,
		Image:       "https://i.pravatar.cc/300",
	}
}

func updatedTestProduct() storedef.NewProduct {
	return storedef.NewProduct{
		Title:       "Updated Test Product",
		Price:       39.99,
		Description: "This product has been updated by QA automation",
		Category:    storedef.CategoryElectronics,
		Image:       "https://i.pravatar.cc/400",
	}
}

func newTestCart() storedef.NewCart {
	return storedef.NewCart{
		UserID: 5,
		Date:   "2024-01-01",
		Products: []storedef.CartItem{
			{ProductID: 5, Quantity: 1},
			{ProductID: 1, Quantity: 5},
		},
	}
}
