package storedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

type User struct {
	ID       ldvalue.OptionalInt `json:"id"`
	Email    string              `json:"email"`
	Username string              `json:"username"`
	Password string              `json:"password"`
	Name     *UserName           `json:"name,omitempty"`
	Address  *Address            `json:"address,omitempty"`
	Phone    string              `json:"phone"`
}

type UserName struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type Address struct {
	City        string       `json:"city"`
	Street      string       `json:"street"`
	Number      int          `json:"number"`
	Zipcode     string       `json:"zipcode"`
	Geolocation *Geolocation `json:"geolocation,omitempty"`
}

// Geolocation coordinates are strings in the service's data, e.g. "-37.3159".
type Geolocation struct {
	Lat string `json:"lat"`
	Lng string `json:"long"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginFor returns the login request for a user's credentials.
func LoginFor(u User) LoginRequest {
	return LoginRequest{Username: u.Username, Password: u.Password}
}

type LoginResponse struct {
	Token ldvalue.OptionalString `json:"token"`
}
