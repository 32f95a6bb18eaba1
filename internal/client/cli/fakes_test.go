package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/api"
	"github.com/dmitrijs2005/auditkeeper/internal/client/config"
)

type fakeClient struct {
	loggedIn bool

	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	addName, addStatus string
	addResp            *api.Audit
	addErr             error

	listSkip, listLimit *int
	listResp            []*api.Audit
	listErr             error

	pingErr error
	closed  bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Register(_ context.Context, user string, pass []byte) (*api.User, error) {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &api.User{ID: 1, Username: user}, nil
}

func (f *fakeClient) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeClient) Logout()          { f.loggedIn = false }
func (f *fakeClient) IsLoggedIn() bool { return f.loggedIn }

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) AddAudit(_ context.Context, name, status string) (*api.Audit, error) {
	f.addName, f.addStatus = name, status
	return f.addResp, f.addErr
}

func (f *fakeClient) ListAudits(_ context.Context, skip, limit *int) ([]*api.Audit, error) {
	f.listSkip, f.listLimit = skip, limit
	return f.listResp, f.listErr
}

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{RequestTimeout: time.Second}
	return newApp(cfg, fc, strings.NewReader(input), out), out
}

// stubInputs feeds the given answers to successive text prompts and a fixed
// password to password prompts.
func stubInputs(t *testing.T, password []byte, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
}
