package stubstore

import (
	"github.com/fakestore-qa/store-contract-tests/storedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// The values below are abbreviated from the public service's data.

func SampleProducts() []storedef.Product {
	return []storedef.Product{
		sampleProduct(1, "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops", 109.95,
			storedef.CategoryMensClothing, 3.9, 120),
		sampleProduct(2, "Mens Casual Premium Slim Fit T-Shirts", 22.3,
			storedef.CategoryMensClothing, 4.1, 259),
		sampleProduct(5, "John Hardy Women's Legends Naga Gold & Silver Dragon Station Chain Bracelet", 695,
			storedef.CategoryJewelery, 4.6, 400),
		sampleProduct(9, "WD 2TB Elements Portable External Hard Drive - USB 3.0", 64,
			storedef.CategoryElectronics, 3.3, 203),
		sampleProduct(15, "BIYLACLESEN Women's 3-in-1 Snowboard Jacket Winter Coats", 56.99,
			storedef.CategoryWomensClothing, 2.6, 235),
		sampleProduct(18, "MBJ Women's Solid Short Sleeve Boat Neck V", 9.85,
			storedef.CategoryWomensClothing, 4.7, 130),
	}
}

func sampleProduct(id int, title string, price float64, category string, rate float64, count int) storedef.Product {
	return storedef.Product{
		ID:          ldvalue.NewOptionalInt(id),
		Title:       ldvalue.NewOptionalString(title),
		Price:       price,
		Description: "sample description",
		Category:    ldvalue.NewOptionalString(category),
		Image:       "https://fakestoreapi.com/img/sample.jpg",
		Rating:      &storedef.Rating{Rate: rate, Count: count},
	}
}

func SampleCarts() []storedef.Cart {
	return []storedef.Cart{
		{
			ID:     ldvalue.NewOptionalInt(1),
			UserID: ldvalue.NewOptionalInt(1),
			Date:   ldvalue.NewOptionalString("2020-03-02T00:00:00.000Z"),
			Products: []storedef.CartItem{
				{ProductID: 1, Quantity: 4},
				{ProductID: 2, Quantity: 1},
			},
		},
		{
			ID:       ldvalue.NewOptionalInt(2),
			UserID:   ldvalue.NewOptionalInt(1),
			Date:     ldvalue.NewOptionalString("2020-01-02T00:00:00.000Z"),
			Products: []storedef.CartItem{{ProductID: 5, Quantity: 2}},
		},
	}
}

func SampleUsers() []storedef.User {
	return []storedef.User{
		{
			ID:       ldvalue.NewOptionalInt(2),
			Email:    "morrison@gmail.com",
			Username: "mor_2314",
			Password: "83r5^_",
			Name:     &storedef.UserName{Firstname: "david", Lastname: "morrison"},
			Address: &storedef.Address{
				City:        "kilcoole",
				Street:      "Lovers Ln",
				Number:      7267,
				Zipcode:     "12926-3874",
				Geolocation: &storedef.Geolocation{Lat: "-37.3159", Lng: "81.1496"},
			},
			Phone: "1-570-236-7033",
		},
	}
}
