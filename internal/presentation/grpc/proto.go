package grpc

// proto.go defines the gRPC server interface for bib.claims.v1.ClaimsService.
// Messages travel with the JSON codec in codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bib.claims.v1.ClaimsService"

// Full method names, for clients invoking through grpc.ClientConn.Invoke.
const (
	MethodListClaims          = "/" + ServiceName + "/ListClaims"
	MethodGetClaim            = "/" + ServiceName + "/GetClaim"
	MethodApproveClaim        = "/" + ServiceName + "/ApproveClaim"
	MethodFlagClaim           = "/" + ServiceName + "/FlagClaim"
	MethodGetRiskDistribution = "/" + ServiceName + "/GetRiskDistribution"
)

// ClaimsServiceServer is the server API for ClaimsService.
type ClaimsServiceServer interface {
	ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error)
	GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error)
	ApproveClaim(context.Context, *ClaimActionRequest) (*ClaimActionResponse, error)
	FlagClaim(context.Context, *ClaimActionRequest) (*ClaimActionResponse, error)
	GetRiskDistribution(context.Context, *ListClaimsRequest) (*RiskDistributionResponse, error)
	mustEmbedUnimplementedClaimsServiceServer()
}

// UnimplementedClaimsServiceServer provides forward-compatible default implementations.
type UnimplementedClaimsServiceServer struct{}

func (UnimplementedClaimsServiceServer) ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClaims not implemented")
}
func (UnimplementedClaimsServiceServer) GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClaim not implemented")
}
func (UnimplementedClaimsServiceServer) ApproveClaim(context.Context, *ClaimActionRequest) (*ClaimActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveClaim not implemented")
}
func (UnimplementedClaimsServiceServer) FlagClaim(context.Context, *ClaimActionRequest) (*ClaimActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FlagClaim not implemented")
}
func (UnimplementedClaimsServiceServer) GetRiskDistribution(context.Context, *ListClaimsRequest) (*RiskDistributionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRiskDistribution not implemented")
}
func (UnimplementedClaimsServiceServer) mustEmbedUnimplementedClaimsServiceServer() {}

// RegisterClaimsServiceServer registers the ClaimsServiceServer with the gRPC server.
func RegisterClaimsServiceServer(s grpclib.ServiceRegistrar, srv ClaimsServiceServer) {
	s.RegisterService(&_ClaimsService_serviceDesc, srv)
}

var _ClaimsService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClaimsServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ListClaims", Handler: _ClaimsService_ListClaims_Handler},
		{MethodName: "GetClaim", Handler: _ClaimsService_GetClaim_Handler},
		{MethodName: "ApproveClaim", Handler: _ClaimsService_ApproveClaim_Handler},
		{MethodName: "FlagClaim", Handler: _ClaimsService_FlagClaim_Handler},
		{MethodName: "GetRiskDistribution", Handler: _ClaimsService_GetRiskDistribution_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _ClaimsService_ListClaims_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ListClaimsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ListClaims(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodListClaims}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ListClaims(ctx, req.(*ListClaimsRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ClaimsService_GetClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetClaimRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).GetClaim(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodGetClaim}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).GetClaim(ctx, req.(*GetClaimRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ClaimsService_ApproveClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ClaimActionRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ApproveClaim(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodApproveClaim}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ApproveClaim(ctx, req.(*ClaimActionRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ClaimsService_FlagClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ClaimActionRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).FlagClaim(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodFlagClaim}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).FlagClaim(ctx, req.(*ClaimActionRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ClaimsService_GetRiskDistribution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ListClaimsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).GetRiskDistribution(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodGetRiskDistribution}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).GetRiskDistribution(ctx, req.(*ListClaimsRequest))
	}
	return interceptor(ctx, req, info, handler)
}
