package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/auditkeeper/internal/api"
	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.User, error) {

	user, err := s.auth.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName, "request_id", requestIDFromContext(ctx))
	return toAPIUser(user), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {

	tokens, err := s.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.LoginResponse{AccessToken: tokens.AccessToken, TokenType: tokens.TokenType}, nil
}

func (s *GRPCServer) CreateAudit(ctx context.Context, req *api.CreateAuditRequest) (*api.Audit, error) {

	audit, err := s.audits.Create(ctx, req.Name, req.Status, accessTokenFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return toAPIAudit(audit), nil
}

func (s *GRPCServer) ListAudits(ctx context.Context, req *api.ListAuditsRequest) (*api.ListAuditsResponse, error) {

	skip, limit := 0, services.DefaultListLimit
	if req.Skip != nil {
		skip = *req.Skip
	}
	if req.Limit != nil {
		limit = *req.Limit
	}

	list, err := s.audits.List(ctx, skip, limit)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &api.ListAuditsResponse{Audits: make([]*api.Audit, 0, len(list))}
	for _, a := range list {
		resp.Audits = append(resp.Audits, toAPIAudit(a))
	}
	return resp, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {

	return &api.PingResponse{Status: "OK"}, nil

}

// toStatus maps service errors to gRPC statuses. Anything unexpected is
// logged and reported as a bare internal error.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrDuplicateUsername):
		return status.Error(codes.AlreadyExists, common.ErrDuplicateUsername.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, common.ErrUnauthenticated.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err, "request_id", requestIDFromContext(ctx))
	return status.Error(codes.Internal, "internal error")
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{ID: u.ID, Username: u.UserName}
}

func toAPIAudit(a *models.Audit) *api.Audit {
	return &api.Audit{ID: a.ID, Name: a.Name, Status: a.Status, CreatedAt: a.CreatedAt}
}
