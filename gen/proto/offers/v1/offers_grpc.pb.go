// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: offers/v1/offers.proto

package offersv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	OffersService_GenerateOffer_FullMethodName = "/offers.v1.OffersService/GenerateOffer"
	OffersService_ConvertOffer_FullMethodName  = "/offers.v1.OffersService/ConvertOffer"
)

// OffersServiceClient is the client API for OffersService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type OffersServiceClient interface {
	// GenerateOffer runs the model pipeline and persists the
	// Work/Requirement/Offer chain atomically.
	GenerateOffer(ctx context.Context, in *GenerateOfferRequest, opts ...grpc.CallOption) (*GenerateOfferResponse, error)
	// ConvertOffer imports an already-priced legacy offer without invoking
	// the model.
	ConvertOffer(ctx context.Context, in *ConvertOfferRequest, opts ...grpc.CallOption) (*ConvertOfferResponse, error)
}

type offersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOffersServiceClient(cc grpc.ClientConnInterface) OffersServiceClient {
	return &offersServiceClient{cc}
}

func (c *offersServiceClient) GenerateOffer(ctx context.Context, in *GenerateOfferRequest, opts ...grpc.CallOption) (*GenerateOfferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateOfferResponse)
	err := c.cc.Invoke(ctx, OffersService_GenerateOffer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *offersServiceClient) ConvertOffer(ctx context.Context, in *ConvertOfferRequest, opts ...grpc.CallOption) (*ConvertOfferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConvertOfferResponse)
	err := c.cc.Invoke(ctx, OffersService_ConvertOffer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OffersServiceServer is the server API for OffersService service.
// All implementations must embed UnimplementedOffersServiceServer
// for forward compatibility.
type OffersServiceServer interface {
	// GenerateOffer runs the model pipeline and persists the
	// Work/Requirement/Offer chain atomically.
	GenerateOffer(context.Context, *GenerateOfferRequest) (*GenerateOfferResponse, error)
	// ConvertOffer imports an already-priced legacy offer without invoking
	// the model.
	ConvertOffer(context.Context, *ConvertOfferRequest) (*ConvertOfferResponse, error)
	mustEmbedUnimplementedOffersServiceServer()
}

// UnimplementedOffersServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOffersServiceServer struct{}

func (UnimplementedOffersServiceServer) GenerateOffer(context.Context, *GenerateOfferRequest) (*GenerateOfferResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateOffer not implemented")
}
func (UnimplementedOffersServiceServer) ConvertOffer(context.Context, *ConvertOfferRequest) (*ConvertOfferResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConvertOffer not implemented")
}
func (UnimplementedOffersServiceServer) mustEmbedUnimplementedOffersServiceServer() {}
func (UnimplementedOffersServiceServer) testEmbeddedByValue()                       {}

// UnsafeOffersServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OffersServiceServer will
// result in compilation errors.
type UnsafeOffersServiceServer interface {
	mustEmbedUnimplementedOffersServiceServer()
}

func RegisterOffersServiceServer(s grpc.ServiceRegistrar, srv OffersServiceServer) {
	// If the following call panics, it indicates UnimplementedOffersServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OffersService_ServiceDesc, srv)
}

func _OffersService_GenerateOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OffersServiceServer).GenerateOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OffersService_GenerateOffer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OffersServiceServer).GenerateOffer(ctx, req.(*GenerateOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OffersService_ConvertOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConvertOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OffersServiceServer).ConvertOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OffersService_ConvertOffer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OffersServiceServer).ConvertOffer(ctx, req.(*ConvertOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OffersService_ServiceDesc is the grpc.ServiceDesc for OffersService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OffersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "offers.v1.OffersService",
	HandlerType: (*OffersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateOffer",
			Handler:    _OffersService_GenerateOffer_Handler,
		},
		{
			MethodName: "ConvertOffer",
			Handler:    _OffersService_ConvertOffer_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "offers/v1/offers.proto",
}
