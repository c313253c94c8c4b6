package storetests

import (
	"github.com/fakestore-qa/store-contract-tests/framework"
)

// RunTestSuite runs every test, in a fixed order, and returns the results.
func RunTestSuite(
	params Params,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, &params)

		t.Run("smoke", DoSmokeTests)
		t.Run("authentication", DoAuthenticationTests)
		t.Run("products", DoProductTests)
		t.Run("carts", DoCartTests)
	})
}
