package storetests

import (
	"net/http"

	"github.com/fakestore-qa/store-contract-tests/validate"
)

const smokeBodyPreviewLength = 100

func DoSmokeTests(t *T) {
	t.Run("simple GET", func(t *T) {
		resp := t.Get("/products")

		t.Debug("status code: %d", resp.StatusCode)
		t.Debug("response time: %dms", validate.MeasureLatency(resp))
		preview := resp.RawBody
		if len(preview) > smokeBodyPreviewLength {
			preview = preview[:smokeBodyPreviewLength] + "..."
		}
		t.Debug("response body: %s", preview)

		validate.Status(t, resp, http.StatusOK)
	})
}
