package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "savedata.v1alpha1.AccessoryService"

// Full method names
const (
	MethodGetSlots    = "/" + ServiceName + "/GetSlots"
	MethodEquipSlot   = "/" + ServiceName + "/EquipSlot"
	MethodUnequipSlot = "/" + ServiceName + "/UnequipSlot"
	MethodImportSave  = "/" + ServiceName + "/ImportSave"
	MethodExportSave  = "/" + ServiceName + "/ExportSave"
	MethodMigrateSave = "/" + ServiceName + "/MigrateSave"
)

// AccessoryServiceServer is the server API for the accessory roster service.
// Messages are protobuf well-known types; field names are listed on each handler.
type AccessoryServiceServer interface {
	GetSlots(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipSlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnequipSlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportSave(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportSave(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	MigrateSave(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterAccessoryServiceServer registers srv on s
func RegisterAccessoryServiceServer(s grpc.ServiceRegistrar, srv AccessoryServiceServer) {
	s.RegisterService(&AccessoryServiceDesc, srv)
}

// AccessoryServiceDesc describes the service for grpc.Server
var AccessoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccessoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetSlots", Handler: structHandler(MethodGetSlots, AccessoryServiceServer.GetSlots)},
		{MethodName: "EquipSlot", Handler: structHandler(MethodEquipSlot, AccessoryServiceServer.EquipSlot)},
		{MethodName: "UnequipSlot", Handler: structHandler(MethodUnequipSlot, AccessoryServiceServer.UnequipSlot)},
		{MethodName: "ImportSave", Handler: structHandler(MethodImportSave, AccessoryServiceServer.ImportSave)},
		{MethodName: "ExportSave", Handler: structHandler(MethodExportSave, AccessoryServiceServer.ExportSave)},
		{MethodName: "MigrateSave", Handler: structHandler(MethodMigrateSave, AccessoryServiceServer.MigrateSave)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "savedata/v1alpha1/accessory.proto",
}

// structHandler adapts a unary method taking a Struct request to grpc.MethodHandler
func structHandler[Resp any](
	fullMethod string,
	call func(AccessoryServiceServer, context.Context, *structpb.Struct) (Resp, error),
) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccessoryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(AccessoryServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AccessoryServiceClient is the client API for the accessory roster service
type AccessoryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAccessoryServiceClient creates a client over cc
func NewAccessoryServiceClient(cc grpc.ClientConnInterface) *AccessoryServiceClient {
	return &AccessoryServiceClient{cc: cc}
}

// GetSlots calls AccessoryService.GetSlots
func (c *AccessoryServiceClient) GetSlots(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invokeStruct(ctx, c.cc, MethodGetSlots, in, opts...)
}

// EquipSlot calls AccessoryService.EquipSlot
func (c *AccessoryServiceClient) EquipSlot(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invokeStruct(ctx, c.cc, MethodEquipSlot, in, opts...)
}

// UnequipSlot calls AccessoryService.UnequipSlot
func (c *AccessoryServiceClient) UnequipSlot(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invokeStruct(ctx, c.cc, MethodUnequipSlot, in, opts...)
}

// ImportSave calls AccessoryService.ImportSave
func (c *AccessoryServiceClient) ImportSave(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invokeStruct(ctx, c.cc, MethodImportSave, in, opts...)
}

// MigrateSave calls AccessoryService.MigrateSave
func (c *AccessoryServiceClient) MigrateSave(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invokeStruct(ctx, c.cc, MethodMigrateSave, in, opts...)
}

// ExportSave calls AccessoryService.ExportSave
func (c *AccessoryServiceClient) ExportSave(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, MethodExportSave, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func invokeStruct(ctx context.Context, cc grpc.ClientConnInterface, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
