package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_WireNames(t *testing.T) {
	c := jsonCodec{}

	b, err := c.Marshal(&LoginResponse{AccessToken: "t", TokenType: "bearer"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"t","token_type":"bearer"}`, string(b))

	b, err = c.Marshal(&Audit{ID: 1, Name: "build", Status: "ok", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"build","status":"ok","created_at":"2026-01-02T03:04:05Z"}`, string(b))
}

func TestCodec_ListRequestOptionalFields(t *testing.T) {
	c := jsonCodec{}

	b, err := c.Marshal(&ListAuditsRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	var req ListAuditsRequest
	require.NoError(t, c.Unmarshal([]byte(`{"limit":0}`), &req))
	assert.Nil(t, req.Skip)
	require.NotNil(t, req.Limit)
	assert.Equal(t, 0, *req.Limit)
}

func TestCodec_EmptyAndBadPayloads(t *testing.T) {
	c := jsonCodec{}

	var ping PingRequest
	require.NoError(t, c.Unmarshal(nil, &ping))

	var reg RegisterRequest
	require.Error(t, c.Unmarshal([]byte(`{"username":`), &reg))
}
