package storedef

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductWithMissingFields(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"price":7.95}`), &p))

	assert.False(t, p.ID.IsDefined())
	assert.False(t, p.Title.IsDefined())
	assert.False(t, p.Category.IsDefined())
	assert.Nil(t, p.Rating)
	assert.Equal(t, 7.95, p.Price)
}

func TestProductWithEmptyTitleIsPresent(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"title":"","rating":{"rate":4.7,"count":500}}`), &p))

	assert.Equal(t, 3, p.ID.IntValue())
	assert.True(t, p.Title.IsDefined())
	assert.Equal(t, "", p.Title.StringValue())
	require.NotNil(t, p.Rating)
	assert.Equal(t, Rating{Rate: 4.7, Count: 500}, *p.Rating)
}

func TestNewProductHasNoID(t *testing.T) {
	data, err := json.Marshal(NewProduct{Title: "QA Test Product", Price: 99.99, Category: CategoryElectronics})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "id")
	assert.Equal(t, "QA Test Product", fields["title"])
}

func TestCartUsesCamelCaseKeys(t *testing.T) {
	var c Cart
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":11,"userId":1,"date":"2024-01-01","products":[{"productId":1,"quantity":2}]}`), &c))

	assert.Equal(t, 11, c.ID.IntValue())
	assert.Equal(t, 1, c.UserID.IntValue())
	assert.Equal(t, "2024-01-01", c.Date.StringValue())
	assert.Equal(t, []CartItem{{ProductID: 1, Quantity: 2}}, c.Products)

	data, err := json.Marshal(NewCart{UserID: 1, Date: "2024-01-01", Products: c.Products})
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":1,"date":"2024-01-01","products":[{"productId":1,"quantity":2}]}`, string(data))
}

func TestUserGeolocation(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"username":"mor_2314",
		"address":{"city":"kilcoole","number":7682,"geolocation":{"lat":"-37.3159","long":"81.1496"}}}`), &u))

	require.NotNil(t, u.Address)
	require.NotNil(t, u.Address.Geolocation)
	assert.Equal(t, Geolocation{Lat: "-37.3159", Lng: "81.1496"}, *u.Address.Geolocation)
	assert.Nil(t, u.Name)
}

func TestLoginFor(t *testing.T) {
	req := LoginFor(User{Username: "mor_2314", Password: "83r5^_", Email: "x@y"})
	assert.Equal(t, LoginRequest{Username: "mor_2314", Password: "83r5^_"}, req)
}

func TestLoginResponseWithoutToken(t *testing.T) {
	var r LoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	assert.False(t, r.Token.IsDefined())
}
