package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is everything we keep from one HTTP exchange. It is not modified after Execute
// returns it.
type Response struct {
	StatusCode int
	Header     http.Header

	// Elapsed is measured by Execute from just before the request was sent until the whole
	// body had been read.
	Elapsed time.Duration

	// RawBody is the body exactly as received (after any Content-Encoding was removed).
	RawBody string

	// Body is RawBody classified as null, valid JSON, or malformed.
	Body Body
}

func (r *Response) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}

// BodyKind says which variant a Body is.
type BodyKind int

const (
	// MalformedBody is a body that is not valid JSON, including an empty body.
	MalformedBody BodyKind = iota

	// NullBody is a body consisting of the JSON literal null. The service returns this, with a
	// 200 status, for failed logins and for missing resources.
	NullBody

	// JSONBody is any valid JSON value other than null.
	JSONBody
)

func (k BodyKind) String() string {
	switch k {
	case NullBody:
		return "null"
	case JSONBody:
		return "JSON"
	default:
		return "malformed"
	}
}

// Body is a response body as one of three variants: Null, JSON(value), or Malformed(raw).
// Validators switch on Kind instead of comparing strings.
type Body struct {
	kind  BodyKind
	value ldvalue.Value
	raw   []byte
}

// ParseBody classifies a raw response body.
func ParseBody(data []byte) Body {
	raw := append([]byte(nil), data...)
	if !json.Valid(raw) {
		return Body{kind: MalformedBody, raw: raw}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Body{kind: NullBody, value: ldvalue.Null(), raw: raw}
	}
	return Body{kind: JSONBody, value: ldvalue.Parse(raw), raw: raw}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

func (b Body) IsNull() bool {
	return b.kind == NullBody
}

func (b Body) IsJSON() bool {
	return b.kind == JSONBody
}

func (b Body) IsMalformed() bool {
	return b.kind == MalformedBody
}

// Value returns the parsed JSON value. It is ldvalue.Null() for the null and malformed variants.
func (b Body) Value() ldvalue.Value {
	if b.kind != JSONBody {
		return ldvalue.Null()
	}
	return b.value
}

// Raw returns the body bytes as received.
func (b Body) Raw() []byte {
	return b.raw
}

// Decode unmarshals the body into target. It is only meaningful for the JSON variant; callers
// that need the distinction between null and malformed should check Kind first.
func (b Body) Decode(target interface{}) error {
	return json.Unmarshal(b.raw, target)
}

func (b Body) String() string {
	return string(b.raw)
}
