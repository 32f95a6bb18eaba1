package grpc

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/api"
	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	accessTokenKey ctxKey = "accessToken"
	requestIDKey   ctxKey = "requestID"
)

// authenticatedMethods need a bearer token in the authorization metadata.
var authenticatedMethods = map[string]bool{
	api.MethodCreateAudit: true,
}

// bearerToken extracts the token from an "authorization: Bearer <t>"
// metadata entry. The scheme is matched case-insensitively.
func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return ""
	}
	scheme, token, ok := strings.Cut(values[0], " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

func accessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// accessTokenInterceptor rejects calls to authenticated methods that carry
// no bearer token and hands the token to the handler through the context.
// Validating it is left to the services.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if authenticatedMethods[info.FullMethod] {
		accessToken := bearerToken(ctx)
		if accessToken == "" {
			return nil, status.Error(codes.Unauthenticated, common.ErrUnauthenticated.Error())
		}
		ctx = context.WithValue(ctx, accessTokenKey, accessToken)
	}

	return handler(ctx, req)
}

// loggingInterceptor tags every call with a request id and logs its outcome.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, id)

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "grpc request",
		"request_id", id,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

// recoveryInterceptor turns a handler panic into codes.Internal so that only
// the failing call is affected.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "grpc handler panic",
				"request_id", requestIDFromContext(ctx),
				"method", info.FullMethod,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			resp, err = nil, status.Error(codes.Internal, common.ErrorInternal.Error())
		}
	}()

	return handler(ctx, req)
}
