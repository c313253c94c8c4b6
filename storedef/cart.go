package storedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

type Cart struct {
	ID       ldvalue.OptionalInt    `json:"id"`
	UserID   ldvalue.OptionalInt    `json:"userId"`
	Date     ldvalue.OptionalString `json:"date"`
	Products []CartItem             `json:"products"`
}

type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// NewCart is the request body for creating a cart.
type NewCart struct {
	UserID   int        `json:"userId"`
	Date     string     `json:"date"`
	Products []CartItem `json:"products"`
}
