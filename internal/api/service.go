// Package api defines the auditkeeper gRPC contract: request and response
// messages, the service descriptor and a typed client. Messages travel as
// JSON through a codec registered under CodecName.
package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "auditkeeper.v1.AuditKeeper"

// Full method names, as seen by interceptors in grpc.UnaryServerInfo.
const (
	MethodRegister    = "/" + ServiceName + "/Register"
	MethodLogin       = "/" + ServiceName + "/Login"
	MethodCreateAudit = "/" + ServiceName + "/CreateAudit"
	MethodListAudits  = "/" + ServiceName + "/ListAudits"
	MethodPing        = "/" + ServiceName + "/Ping"
)

// AuditKeeperServer is implemented by the server transport.
type AuditKeeperServer interface {
	Register(context.Context, *RegisterRequest) (*User, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	CreateAudit(context.Context, *CreateAuditRequest) (*Audit, error)
	ListAudits(context.Context, *ListAuditsRequest) (*ListAuditsResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

func RegisterAuditKeeperServer(s grpc.ServiceRegistrar, srv AuditKeeperServer) {
	s.RegisterService(&AuditKeeper_ServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(AuditKeeperServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuditKeeperServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuditKeeperServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var AuditKeeper_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuditKeeperServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(MethodRegister, AuditKeeperServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(MethodLogin, AuditKeeperServer.Login)},
		{MethodName: "CreateAudit", Handler: unaryHandler(MethodCreateAudit, AuditKeeperServer.CreateAudit)},
		{MethodName: "ListAudits", Handler: unaryHandler(MethodListAudits, AuditKeeperServer.ListAudits)},
		{MethodName: "Ping", Handler: unaryHandler(MethodPing, AuditKeeperServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auditkeeper/v1/auditkeeper.json",
}

// AuditKeeperClient is the typed client for AuditKeeperServer.
type AuditKeeperClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	CreateAudit(ctx context.Context, in *CreateAuditRequest, opts ...grpc.CallOption) (*Audit, error)
	ListAudits(ctx context.Context, in *ListAuditsRequest, opts ...grpc.CallOption) (*ListAuditsResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type auditKeeperClient struct {
	cc grpc.ClientConnInterface
}

func NewAuditKeeperClient(cc grpc.ClientConnInterface) AuditKeeperClient {
	return &auditKeeperClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *auditKeeperClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[User](ctx, c.cc, MethodRegister, in, opts)
}

func (c *auditKeeperClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *auditKeeperClient) CreateAudit(ctx context.Context, in *CreateAuditRequest, opts ...grpc.CallOption) (*Audit, error) {
	return invoke[Audit](ctx, c.cc, MethodCreateAudit, in, opts)
}

func (c *auditKeeperClient) ListAudits(ctx context.Context, in *ListAuditsRequest, opts ...grpc.CallOption) (*ListAuditsResponse, error) {
	return invoke[ListAuditsResponse](ctx, c.cc, MethodListAudits, in, opts)
}

func (c *auditKeeperClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}
