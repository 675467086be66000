// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: pairing.proto

package pairing

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PairingEvent_Kind int32

const (
	PairingEvent_KIND_UNSPECIFIED PairingEvent_Kind = 0
	PairingEvent_KIND_SCANNED     PairingEvent_Kind = 1
	PairingEvent_KIND_CONFIRMED   PairingEvent_Kind = 2
	PairingEvent_KIND_CANCELLED   PairingEvent_Kind = 3
)

// Enum value maps for PairingEvent_Kind.
var (
	PairingEvent_Kind_name = map[int32]string{
		0: "KIND_UNSPECIFIED",
		1: "KIND_SCANNED",
		2: "KIND_CONFIRMED",
		3: "KIND_CANCELLED",
	}
	PairingEvent_Kind_value = map[string]int32{
		"KIND_UNSPECIFIED": 0,
		"KIND_SCANNED":     1,
		"KIND_CONFIRMED":   2,
		"KIND_CANCELLED":   3,
	}
)

func (x PairingEvent_Kind) Enum() *PairingEvent_Kind {
	p := new(PairingEvent_Kind)
	*p = x
	return p
}

func (x PairingEvent_Kind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PairingEvent_Kind) Descriptor() protoreflect.EnumDescriptor {
	return file_pairing_proto_enumTypes[0].Descriptor()
}

func (PairingEvent_Kind) Type() protoreflect.EnumType {
	return &file_pairing_proto_enumTypes[0]
}

func (x PairingEvent_Kind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PairingEvent_Kind.Descriptor instead.
func (PairingEvent_Kind) EnumDescriptor() ([]byte, []int) {
	return file_pairing_proto_rawDescGZIP(), []int{5, 0}
}

type ScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceUuid    string                 `protobuf:"bytes,1,opt,name=device_uuid,json=deviceUuid,proto3" json:"device_uuid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanRequest) Reset() {
	*x = ScanRequest{}
	mi := &file_pairing_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanRequest) ProtoMessage() {}

func (x *ScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pairing_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanRequest.ProtoReflect.Descriptor instead.
func (*ScanRequest) Descriptor() ([]byte, []int) {
	return file_pairing_proto_rawDescGZIP(), []int{0}
}

func (x *ScanRequest) GetDeviceUuid() string {
	if x != nil {
		return x.DeviceUuid
	}
	return ""
}

type ConfirmRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceUuid    string                 `protobuf:"bytes,1,opt,name=device_uuid,json=deviceUuid,proto3" json:"device_uuid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmRequest) Reset() {
	*x = ConfirmRequest{}
	mi := &file_pairing_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmRequest) ProtoMessage() {}

func (x *ConfirmRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pairing_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmRequest.ProtoReflect.Descriptor instead.
func (*ConfirmRequest) Descriptor() ([]byte, []int) {
	return file_pairing_proto_rawDescGZIP(), []int{1}
}

func (x *ConfirmRequest) GetDeviceUuid() string {
	if x != nil {
		return x.DeviceUuid
	}
	return ""
}

type CancelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceUuid    string                 `protobuf:"bytes,1,opt,name=device_uuid,json=deviceUuid,proto3" json:"device_uuid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelRequest) Reset() {
	*x = CancelRequest{}
	mi := &file_pairing_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelRequest) ProtoMessage() {}

func (x *CancelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pairing_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelRequest.ProtoReflect.Descriptor instead.
func (*CancelRequest) Descriptor() ([]byte, []int) {
	return file_pairing_proto_rawDescGZIP(), []int{2}
}

func (x *CancelRequest) GetDeviceUuid() string {
	if x != nil {
		return x.DeviceUuid
	}
	return ""
}

type PairingAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Published     bool                   `protobuf:"varint,1,opt,name=published,proto3" json:"published,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PairingAck) Reset() {
	*x = PairingAck{}
	mi := &file_pairing_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PairingAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PairingAck) ProtoMessage() {}

func (x *PairingAck) ProtoReflect() protoreflect.Message {
	mi := &file_pairing_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PairingAck.ProtoReflect.Descriptor instead.
func (*PairingAck) Descriptor() ([]byte, []int) {
	return file_pairing_proto_rawDescGZIP(), []int{3}
}

func (x *PairingAck) GetPublished() bool {
	if x != nil {
		return x.Published
	}
	return false
}

type WatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceUuid    string                 `protobuf:"bytes,1,opt,name=device_uuid,json=deviceUuid,proto3" json:"device_uuid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchRequest) Reset() {
	*x = WatchRequest{}
	mi := &file_pairing_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchRequest) ProtoMessage() {}

func (x *WatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pairing_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchRequest.ProtoReflect.Descriptor instead.
func (*WatchRequest) Descriptor() ([]byte, []int) {
	return file_pairing_proto_rawDescGZIP(), []int{4}
}

func (x *WatchRequest) GetDeviceUuid() string {
	if x != nil {
		return x.DeviceUuid
	}
	return ""
}

type PairingEvent struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Kind       PairingEvent_Kind      `protobuf:"varint,1,opt,name=kind,proto3,enum=ichat.pairing.v1.PairingEvent_Kind" json:"kind,omitempty"`
	DeviceUuid string                 `protobuf:"bytes,2,opt,name=device_uuid,json=deviceUuid,proto3" json:"device_uuid,omitempty"`
	// Only set on KIND_CONFIRMED; authenticates the paired viewer.
	Token         string `protobuf:"bytes,3,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PairingEvent) Reset() {
	*x = PairingEvent{}
	mi := &file_pairing_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PairingEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PairingEvent) ProtoMessage() {}

func (x *PairingEvent) ProtoReflect() protoreflect.Message {
	mi := &file_pairing_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PairingEvent.ProtoReflect.Descriptor instead.
func (*PairingEvent) Descriptor() ([]byte, []int) {
	return file_pairing_proto_rawDescGZIP(), []int{5}
}

func (x *PairingEvent) GetKind() PairingEvent_Kind {
	if x != nil {
		return x.Kind
	}
	return PairingEvent_KIND_UNSPECIFIED
}

func (x *PairingEvent) GetDeviceUuid() string {
	if x != nil {
		return x.DeviceUuid
	}
	return ""
}

func (x *PairingEvent) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

var File_pairing_proto protoreflect.FileDescriptor

const file_pairing_proto_rawDesc = "" +
	"\n" +
	"\rpairing.proto\x12\x10ichat.pairing.v1\".\n" +
	"\vScanRequest\x12\x1f\n" +
	"\vdevice_uuid\x18\x01 \x01(\tR\n" +
	"deviceUuid\"1\n" +
	"\x0eConfirmRequest\x12\x1f\n" +
	"\vdevice_uuid\x18\x01 \x01(\tR\n" +
	"deviceUuid\"0\n" +
	"\rCancelRequest\x12\x1f\n" +
	"\vdevice_uuid\x18\x01 \x01(\tR\n" +
	"deviceUuid\"*\n" +
	"\n" +
	"PairingAck\x12\x1c\n" +
	"\tpublished\x18\x01 \x01(\bR\tpublished\"/\n" +
	"\fWatchRequest\x12\x1f\n" +
	"\vdevice_uuid\x18\x01 \x01(\tR\n" +
	"deviceUuid\"\xd6\x01\n" +
	"\fPairingEvent\x127\n" +
	"\x04kind\x18\x01 \x01(\x0e2#.ichat.pairing.v1.PairingEvent.KindR\x04kind\x12\x1f\n" +
	"\vdevice_uuid\x18\x02 \x01(\tR\n" +
	"deviceUuid\x12\x14\n" +
	"\x05token\x18\x03 \x01(\tR\x05token\"V\n" +
	"\x04Kind\x12\x14\n" +
	"\x10KIND_UNSPECIFIED\x10\x00\x12\x10\n" +
	"\fKIND_SCANNED\x10\x01\x12\x12\n" +
	"\x0eKIND_CONFIRMED\x10\x02\x12\x12\n" +
	"\x0eKIND_CANCELLED\x10\x032\xb4\x02\n" +
	"\x0ePairingService\x12C\n" +
	"\x04Scan\x12\x1d.ichat.pairing.v1.ScanRequest\x1a\x1c.ichat.pairing.v1.PairingAck\x12I\n" +
	"\aConfirm\x12 .ichat.pairing.v1.ConfirmRequest\x1a\x1c.ichat.pairing.v1.PairingAck\x12G\n" +
	"\x06Cancel\x12\x1f.ichat.pairing.v1.CancelRequest\x1a\x1c.ichat.pairing.v1.PairingAck\x12I\n" +
	"\x05Watch\x12\x1e.ichat.pairing.v1.WatchRequest\x1a\x1e.ichat.pairing.v1.PairingEvent0\x01B\x15Z\x13ichat/proto/pairingb\x06proto3"

var (
	file_pairing_proto_rawDescOnce sync.Once
	file_pairing_proto_rawDescData []byte
)

func file_pairing_proto_rawDescGZIP() []byte {
	file_pairing_proto_rawDescOnce.Do(func() {
		file_pairing_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pairing_proto_rawDesc), len(file_pairing_proto_rawDesc)))
	})
	return file_pairing_proto_rawDescData
}

var file_pairing_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_pairing_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_pairing_proto_goTypes = []any{
	(PairingEvent_Kind)(0), // 0: ichat.pairing.v1.PairingEvent.Kind
	(*ScanRequest)(nil),    // 1: ichat.pairing.v1.ScanRequest
	(*ConfirmRequest)(nil), // 2: ichat.pairing.v1.ConfirmRequest
	(*CancelRequest)(nil),  // 3: ichat.pairing.v1.CancelRequest
	(*PairingAck)(nil),     // 4: ichat.pairing.v1.PairingAck
	(*WatchRequest)(nil),   // 5: ichat.pairing.v1.WatchRequest
	(*PairingEvent)(nil),   // 6: ichat.pairing.v1.PairingEvent
}
var file_pairing_proto_depIdxs = []int32{
	0, // 0: ichat.pairing.v1.PairingEvent.kind:type_name -> ichat.pairing.v1.PairingEvent.Kind
	1, // 1: ichat.pairing.v1.PairingService.Scan:input_type -> ichat.pairing.v1.ScanRequest
	2, // 2: ichat.pairing.v1.PairingService.Confirm:input_type -> ichat.pairing.v1.ConfirmRequest
	3, // 3: ichat.pairing.v1.PairingService.Cancel:input_type -> ichat.pairing.v1.CancelRequest
	5, // 4: ichat.pairing.v1.PairingService.Watch:input_type -> ichat.pairing.v1.WatchRequest
	4, // 5: ichat.pairing.v1.PairingService.Scan:output_type -> ichat.pairing.v1.PairingAck
	4, // 6: ichat.pairing.v1.PairingService.Confirm:output_type -> ichat.pairing.v1.PairingAck
	4, // 7: ichat.pairing.v1.PairingService.Cancel:output_type -> ichat.pairing.v1.PairingAck
	6, // 8: ichat.pairing.v1.PairingService.Watch:output_type -> ichat.pairing.v1.PairingEvent
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_pairing_proto_init() }
func file_pairing_proto_init() {
	if File_pairing_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pairing_proto_rawDesc), len(file_pairing_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_pairing_proto_goTypes,
		DependencyIndexes: file_pairing_proto_depIdxs,
		EnumInfos:         file_pairing_proto_enumTypes,
		MessageInfos:      file_pairing_proto_msgTypes,
	}.Build()
	File_pairing_proto = out.File
	file_pairing_proto_goTypes = nil
	file_pairing_proto_depIdxs = nil
}
