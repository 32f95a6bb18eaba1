package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/auditkeeper/internal/api"
	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.AuditKeeperClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

// accessTokenInterceptor attaches the stored token, if any, and forgets it
// once the server rejects it.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	token := s.token()
	if token == "" {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
	if status.Code(err) == codes.Unauthenticated && method == api.MethodCreateAudit {
		s.setToken("")
	}
	return err
}

func NewAuditKeeperClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewAuditKeeperClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, password []byte) (*api.User, error) {

	req := &api.RegisterRequest{Username: userName, Password: string(password)}

	user, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

// Login stores the issued access token for subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) error {

	req := &api.LoginRequest{Username: userName, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.setToken(resp.AccessToken)
	return nil
}

func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) IsLoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) AddAudit(ctx context.Context, name, auditStatus string) (*api.Audit, error) {
	if !s.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}

	audit, err := s.client.CreateAudit(ctx, &api.CreateAuditRequest{Name: name, Status: auditStatus})
	if err != nil {
		return nil, s.mapError(err)
	}
	return audit, nil
}

// ListAudits leaves nil skip or limit to the server defaults.
func (s *GRPCClient) ListAudits(ctx context.Context, skip, limit *int) ([]*api.Audit, error) {

	resp, err := s.client.ListAudits(ctx, &api.ListAuditsRequest{Skip: skip, Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Audits, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
