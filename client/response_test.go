package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestParseBodyNull(t *testing.T) {
	for _, raw := range []string{"null", " null\n"} {
		b := ParseBody([]byte(raw))
		assert.Equal(t, NullBody, b.Kind(), raw)
		assert.True(t, b.IsNull())
		assert.Equal(t, ldvalue.Null(), b.Value())
	}
}

func TestParseBodyJSON(t *testing.T) {
	b := ParseBody([]byte(`[{"id":1},{"id":2}]`))
	assert.Equal(t, JSONBody, b.Kind())
	assert.True(t, b.IsJSON())
	assert.Equal(t, ldvalue.ArrayType, b.Value().Type())
	assert.Equal(t, 2, b.Value().Count())
}

func TestParseBodyJSONStringNullIsNotNull(t *testing.T) {
	b := ParseBody([]byte(`"null"`))
	assert.Equal(t, JSONBody, b.Kind())
	assert.Equal(t, "null", b.Value().StringValue())
}

func TestParseBodyMalformed(t *testing.T) {
	for _, raw := range []string{"", "<html>Not Found</html>", `{"id":`, "nul"} {
		b := ParseBody([]byte(raw))
		assert.Equal(t, MalformedBody, b.Kind(), raw)
		assert.True(t, b.IsMalformed())
		assert.Equal(t, raw, b.String())
	}
}

func TestParseBodyCopiesInput(t *testing.T) {
	data := []byte(`{"a":1}`)
	b := ParseBody(data)
	data[1] = 'x'
	assert.Equal(t, `{"a":1}`, string(b.Raw()))
}

func TestBodyKindString(t *testing.T) {
	assert.Equal(t, "null", NullBody.String())
	assert.Equal(t, "JSON", JSONBody.String())
	assert.Equal(t, "malformed", MalformedBody.String())
}
