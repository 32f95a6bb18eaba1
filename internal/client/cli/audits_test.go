package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/api"
	"github.com/dmitrijs2005/auditkeeper/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAudit_Success(t *testing.T) {
	stubInputs(t, nil, "build", "ok")
	fc := &fakeClient{loggedIn: true, addResp: &api.Audit{ID: 4}}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.AddAudit(context.Background()))
	assert.Equal(t, "build", fc.addName)
	assert.Equal(t, "ok", fc.addStatus)
	assert.Contains(t, out.String(), "Added audit 4")
}

func TestAddAudit_ExpiredSession(t *testing.T) {
	stubInputs(t, nil, "build", "ok")
	fc := &fakeClient{loggedIn: true, addErr: client.ErrUnauthorized}
	a, out := newTestApp(fc, "")
	a.userName = "alice"

	require.ErrorIs(t, a.AddAudit(context.Background()), client.ErrUnauthorized)
	assert.Equal(t, "", a.userName)
	assert.Contains(t, out.String(), "log in again")
}

func TestList_Args(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		skip      *int
		limit     *int
		expectErr bool
	}{
		{name: "defaults"},
		{name: "skip", args: []string{"20"}, skip: ptr(20)},
		{name: "skip and limit", args: []string{"20", "5"}, skip: ptr(20), limit: ptr(5)},
		{name: "not a number", args: []string{"x"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{}
			a, _ := newTestApp(fc, "")

			err := a.List(context.Background(), tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.skip, fc.listSkip)
			assert.Equal(t, tt.limit, fc.listLimit)
		})
	}
}

func TestList_PrintsTable(t *testing.T) {
	ts := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	fc := &fakeClient{listResp: []*api.Audit{{ID: 1, Name: "build", Status: "ok", CreatedAt: ts}}}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.List(context.Background(), nil))
	assert.Contains(t, out.String(), "build")
	assert.Contains(t, out.String(), "2026-10-15T09:00:00Z")
}

func TestList_EmptyAndError(t *testing.T) {
	a, out := newTestApp(&fakeClient{}, "")
	require.NoError(t, a.List(context.Background(), nil))
	assert.Contains(t, out.String(), "No audits")

	a, _ = newTestApp(&fakeClient{listErr: errors.New("down")}, "")
	require.Error(t, a.List(context.Background(), nil))
}

func ptr(n int) *int { return &n }
