package api_test

import (
	"testing"

	"freshdispatch/internal/adapters/in/http/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := api.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "FreshDispatch API", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders/{orderId}/assign"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/couriers/{courierId}/available-orders"))
}
