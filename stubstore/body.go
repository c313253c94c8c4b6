package stubstore

import (
	"bytes"
	"io"
	"net/http"
)

// readBody reads the request body and puts it back, so that both the recorder and the
// handler can see it.
func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(data))
	return data, err
}
