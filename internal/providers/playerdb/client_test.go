package playerdb_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcwatch/mcwatch/internal/adapter"
	"github.com/mcwatch/mcwatch/internal/domain"
	"github.com/mcwatch/mcwatch/internal/mocks"
	"github.com/mcwatch/mcwatch/internal/providers/playerdb"
)

func newClient(t *testing.T) (*mocks.MockHTTPClient, playerdb.Client) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := playerdb.NewClient(mockHTTP, adapter.NewJSON(), "https://playerdb.co", "mcwatch/1.0")
	return mockHTTP, client
}

func TestPlayerDBClient_UUIDForName(t *testing.T) {
	mockHTTP, client := newClient(t)
	ctx := context.Background()

	expectedURL := "https://playerdb.co/api/player/minecraft/Alice"
	expectedHeaders := map[string]string{
		"User-Agent": "mcwatch/1.0",
		"Accept":     "application/json",
	}

	mockHTTP.EXPECT().
		Get(ctx, expectedURL, expectedHeaders).
		Return(&adapter.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"success":true,"data":{"player":{"id":"3b0c9d4e-8f1a-4b6c-9d2e-5f8a1b4c7d0e"}}}`),
		}, nil)

	uuid, found, err := client.UUIDForName(ctx, "Alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.PlayerUUID("3b0c9d4e8f1a4b6c9d2e5f8a1b4c7d0e"), uuid)
}

func TestPlayerDBClient_UUIDForName_UnknownName(t *testing.T) {
	mockHTTP, client := newClient(t)
	ctx := context.Background()

	// playerdb answers unknown names with a 400-level status
	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		Return(&adapter.Response{
			StatusCode: http.StatusBadRequest,
			Body:       []byte(`{"success":false,"code":"minecraft.invalid_username"}`),
		}, nil)

	uuid, found, err := client.UUIDForName(ctx, "NoSuchPlayer")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, uuid)
}

func TestPlayerDBClient_UUIDForName_SuccessFalseBody(t *testing.T) {
	mockHTTP, client := newClient(t)
	ctx := context.Background()

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		Return(&adapter.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(`{"success":false,"data":{}}`),
		}, nil)

	_, found, err := client.UUIDForName(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPlayerDBClient_Name(t *testing.T) {
	_, client := newClient(t)
	assert.Equal(t, "playerdb", client.Name())
}
