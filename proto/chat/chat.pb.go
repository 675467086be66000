// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: chat.proto

package chat

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type ChatLifecycleEvent_Kind int32

const (
	ChatLifecycleEvent_KIND_UNSPECIFIED   ChatLifecycleEvent_Kind = 0
	ChatLifecycleEvent_KIND_CREATED       ChatLifecycleEvent_Kind = 1
	ChatLifecycleEvent_KIND_OWNER_CHANGED ChatLifecycleEvent_Kind = 2
	ChatLifecycleEvent_KIND_NAME_CHANGED  ChatLifecycleEvent_Kind = 3
	ChatLifecycleEvent_KIND_DELETED       ChatLifecycleEvent_Kind = 4
)

// Enum value maps for ChatLifecycleEvent_Kind.
var (
	ChatLifecycleEvent_Kind_name = map[int32]string{
		0: "KIND_UNSPECIFIED",
		1: "KIND_CREATED",
		2: "KIND_OWNER_CHANGED",
		3: "KIND_NAME_CHANGED",
		4: "KIND_DELETED",
	}
	ChatLifecycleEvent_Kind_value = map[string]int32{
		"KIND_UNSPECIFIED":   0,
		"KIND_CREATED":       1,
		"KIND_OWNER_CHANGED": 2,
		"KIND_NAME_CHANGED":  3,
		"KIND_DELETED":       4,
	}
)

func (x ChatLifecycleEvent_Kind) Enum() *ChatLifecycleEvent_Kind {
	p := new(ChatLifecycleEvent_Kind)
	*p = x
	return p
}

func (x ChatLifecycleEvent_Kind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ChatLifecycleEvent_Kind) Descriptor() protoreflect.EnumDescriptor {
	return file_chat_proto_enumTypes[0].Descriptor()
}

func (ChatLifecycleEvent_Kind) Type() protoreflect.EnumType {
	return &file_chat_proto_enumTypes[0]
}

func (x ChatLifecycleEvent_Kind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ChatLifecycleEvent_Kind.Descriptor instead.
func (ChatLifecycleEvent_Kind) EnumDescriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{19, 0}
}

type Chat struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Id        int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name      string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	OwnerId   int64                  `protobuf:"varint,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Type      string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	// Per-caller unread counter; only populated by ListChats.
	UnreadCount   int32 `protobuf:"varint,6,opt,name=unread_count,json=unreadCount,proto3" json:"unread_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Chat) Reset() {
	*x = Chat{}
	mi := &file_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Chat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Chat) ProtoMessage() {}

func (x *Chat) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Chat.ProtoReflect.Descriptor instead.
func (*Chat) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{0}
}

func (x *Chat) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Chat) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Chat) GetOwnerId() int64 {
	if x != nil {
		return x.OwnerId
	}
	return 0
}

func (x *Chat) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Chat) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Chat) GetUnreadCount() int32 {
	if x != nil {
		return x.UnreadCount
	}
	return 0
}

type Message struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	ChatId        int64                  `protobuf:"varint,2,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	UserId        int64                  `protobuf:"varint,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Type          string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	Content       string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Message) Reset() {
	*x = Message{}
	mi := &file_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Message) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Message.ProtoReflect.Descriptor instead.
func (*Message) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{1}
}

func (x *Message) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Message) GetChatId() int64 {
	if x != nil {
		return x.ChatId
	}
	return 0
}

func (x *Message) GetUserId() int64 {
	if x != nil {
		return x.UserId
	}
	return 0
}

func (x *Message) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Message) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Message) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type CreateChatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MemberIds     []int64                `protobuf:"varint,1,rep,packed,name=member_ids,json=memberIds,proto3" json:"member_ids,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateChatRequest) Reset() {
	*x = CreateChatRequest{}
	mi := &file_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateChatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateChatRequest) ProtoMessage() {}

func (x *CreateChatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateChatRequest.ProtoReflect.Descriptor instead.
func (*CreateChatRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{2}
}

func (x *CreateChatRequest) GetMemberIds() []int64 {
	if x != nil {
		return x.MemberIds
	}
	return nil
}

func (x *CreateChatRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type RenameChatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        int64                  `protobuf:"varint,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenameChatRequest) Reset() {
	*x = RenameChatRequest{}
	mi := &file_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenameChatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenameChatRequest) ProtoMessage() {}

func (x *RenameChatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenameChatRequest.ProtoReflect.Descriptor instead.
func (*RenameChatRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{3}
}

func (x *RenameChatRequest) GetChatId() int64 {
	if x != nil {
		return x.ChatId
	}
	return 0
}

func (x *RenameChatRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ChatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Chat          *Chat                  `protobuf:"bytes,1,opt,name=chat,proto3" json:"chat,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatResponse) Reset() {
	*x = ChatResponse{}
	mi := &file_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatResponse) ProtoMessage() {}

func (x *ChatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatResponse.ProtoReflect.Descriptor instead.
func (*ChatResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{4}
}

func (x *ChatResponse) GetChat() *Chat {
	if x != nil {
		return x.Chat
	}
	return nil
}

type DropChatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        int64                  `protobuf:"varint,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DropChatRequest) Reset() {
	*x = DropChatRequest{}
	mi := &file_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DropChatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DropChatRequest) ProtoMessage() {}

func (x *DropChatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DropChatRequest.ProtoReflect.Descriptor instead.
func (*DropChatRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{5}
}

func (x *DropChatRequest) GetChatId() int64 {
	if x != nil {
		return x.ChatId
	}
	return 0
}

type DropChatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Dropped       bool                   `protobuf:"varint,1,opt,name=dropped,proto3" json:"dropped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DropChatResponse) Reset() {
	*x = DropChatResponse{}
	mi := &file_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DropChatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DropChatResponse) ProtoMessage() {}

func (x *DropChatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DropChatResponse.ProtoReflect.Descriptor instead.
func (*DropChatResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{6}
}

func (x *DropChatResponse) GetDropped() bool {
	if x != nil {
		return x.Dropped
	}
	return false
}

type ListChatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListChatsRequest) Reset() {
	*x = ListChatsRequest{}
	mi := &file_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListChatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListChatsRequest) ProtoMessage() {}

func (x *ListChatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListChatsRequest.ProtoReflect.Descriptor instead.
func (*ListChatsRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{7}
}

type MarkChatReadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        int64                  `protobuf:"varint,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkChatReadRequest) Reset() {
	*x = MarkChatReadRequest{}
	mi := &file_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkChatReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkChatReadRequest) ProtoMessage() {}

func (x *MarkChatReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkChatReadRequest.ProtoReflect.Descriptor instead.
func (*MarkChatReadRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{8}
}

func (x *MarkChatReadRequest) GetChatId() int64 {
	if x != nil {
		return x.ChatId
	}
	return 0
}

type MarkChatReadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marked        bool                   `protobuf:"varint,1,opt,name=marked,proto3" json:"marked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkChatReadResponse) Reset() {
	*x = MarkChatReadResponse{}
	mi := &file_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkChatReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkChatReadResponse) ProtoMessage() {}

func (x *MarkChatReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkChatReadResponse.ProtoReflect.Descriptor instead.
func (*MarkChatReadResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{9}
}

func (x *MarkChatReadResponse) GetMarked() bool {
	if x != nil {
		return x.Marked
	}
	return false
}

type ListChatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Chats         []*Chat                `protobuf:"bytes,1,rep,name=chats,proto3" json:"chats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListChatsResponse) Reset() {
	*x = ListChatsResponse{}
	mi := &file_chat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListChatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListChatsResponse) ProtoMessage() {}

func (x *ListChatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListChatsResponse.ProtoReflect.Descriptor instead.
func (*ListChatsResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{10}
}

func (x *ListChatsResponse) GetChats() []*Chat {
	if x != nil {
		return x.Chats
	}
	return nil
}

type SendMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        int64                  `protobuf:"varint,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_chat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{11}
}

func (x *SendMessageRequest) GetChatId() int64 {
	if x != nil {
		return x.ChatId
	}
	return 0
}

func (x *SendMessageRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type MessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       *Message               `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MessageResponse) Reset() {
	*x = MessageResponse{}
	mi := &file_chat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MessageResponse) ProtoMessage() {}

func (x *MessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MessageResponse.ProtoReflect.Descriptor instead.
func (*MessageResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{12}
}

func (x *MessageResponse) GetMessage() *Message {
	if x != nil {
		return x.Message
	}
	return nil
}

type ListMessagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        int64                  `protobuf:"varint,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	CursorId      *int64                 `protobuf:"varint,2,opt,name=cursor_id,json=cursorId,proto3,oneof" json:"cursor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMessagesRequest) Reset() {
	*x = ListMessagesRequest{}
	mi := &file_chat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMessagesRequest) ProtoMessage() {}

func (x *ListMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMessagesRequest.ProtoReflect.Descriptor instead.
func (*ListMessagesRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{13}
}

func (x *ListMessagesRequest) GetChatId() int64 {
	if x != nil {
		return x.ChatId
	}
	return 0
}

func (x *ListMessagesRequest) GetCursorId() int64 {
	if x != nil && x.CursorId != nil {
		return *x.CursorId
	}
	return 0
}

type ListMessagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*Message             `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMessagesResponse) Reset() {
	*x = ListMessagesResponse{}
	mi := &file_chat_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMessagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMessagesResponse) ProtoMessage() {}

func (x *ListMessagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMessagesResponse.ProtoReflect.Descriptor instead.
func (*ListMessagesResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{14}
}

func (x *ListMessagesResponse) GetMessages() []*Message {
	if x != nil {
		return x.Messages
	}
	return nil
}

type SubscribeMessagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeMessagesRequest) Reset() {
	*x = SubscribeMessagesRequest{}
	mi := &file_chat_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeMessagesRequest) ProtoMessage() {}

func (x *SubscribeMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeMessagesRequest.ProtoReflect.Descriptor instead.
func (*SubscribeMessagesRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{15}
}

type SubscribeChatMessagesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChatId        int64                  `protobuf:"varint,1,opt,name=chat_id,json=chatId,proto3" json:"chat_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeChatMessagesRequest) Reset() {
	*x = SubscribeChatMessagesRequest{}
	mi := &file_chat_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeChatMessagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeChatMessagesRequest) ProtoMessage() {}

func (x *SubscribeChatMessagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeChatMessagesRequest.ProtoReflect.Descriptor instead.
func (*SubscribeChatMessagesRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{16}
}

func (x *SubscribeChatMessagesRequest) GetChatId() int64 {
	if x != nil {
		return x.ChatId
	}
	return 0
}

type SubscribeChatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeChatsRequest) Reset() {
	*x = SubscribeChatsRequest{}
	mi := &file_chat_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeChatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeChatsRequest) ProtoMessage() {}

func (x *SubscribeChatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeChatsRequest.ProtoReflect.Descriptor instead.
func (*SubscribeChatsRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{17}
}

type ChatStreamEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ChatStreamEvent_Chat
	//	*ChatStreamEvent_Message
	Event         isChatStreamEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatStreamEvent) Reset() {
	*x = ChatStreamEvent{}
	mi := &file_chat_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatStreamEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatStreamEvent) ProtoMessage() {}

func (x *ChatStreamEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatStreamEvent.ProtoReflect.Descriptor instead.
func (*ChatStreamEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{18}
}

func (x *ChatStreamEvent) GetEvent() isChatStreamEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ChatStreamEvent) GetChat() *ChatLifecycleEvent {
	if x != nil {
		if x, ok := x.Event.(*ChatStreamEvent_Chat); ok {
			return x.Chat
		}
	}
	return nil
}

func (x *ChatStreamEvent) GetMessage() *NewMessageEvent {
	if x != nil {
		if x, ok := x.Event.(*ChatStreamEvent_Message); ok {
			return x.Message
		}
	}
	return nil
}

type isChatStreamEvent_Event interface {
	isChatStreamEvent_Event()
}

type ChatStreamEvent_Chat struct {
	Chat *ChatLifecycleEvent `protobuf:"bytes,1,opt,name=chat,proto3,oneof"`
}

type ChatStreamEvent_Message struct {
	Message *NewMessageEvent `protobuf:"bytes,2,opt,name=message,proto3,oneof"`
}

func (*ChatStreamEvent_Chat) isChatStreamEvent_Event() {}

func (*ChatStreamEvent_Message) isChatStreamEvent_Event() {}

type ChatLifecycleEvent struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Kind          ChatLifecycleEvent_Kind `protobuf:"varint,1,opt,name=kind,proto3,enum=ichat.chat.v1.ChatLifecycleEvent_Kind" json:"kind,omitempty"`
	Chat          *Chat                   `protobuf:"bytes,2,opt,name=chat,proto3" json:"chat,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatLifecycleEvent) Reset() {
	*x = ChatLifecycleEvent{}
	mi := &file_chat_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatLifecycleEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatLifecycleEvent) ProtoMessage() {}

func (x *ChatLifecycleEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatLifecycleEvent.ProtoReflect.Descriptor instead.
func (*ChatLifecycleEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{19}
}

func (x *ChatLifecycleEvent) GetKind() ChatLifecycleEvent_Kind {
	if x != nil {
		return x.Kind
	}
	return ChatLifecycleEvent_KIND_UNSPECIFIED
}

func (x *ChatLifecycleEvent) GetChat() *Chat {
	if x != nil {
		return x.Chat
	}
	return nil
}

type NewMessageEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       *Message               `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewMessageEvent) Reset() {
	*x = NewMessageEvent{}
	mi := &file_chat_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewMessageEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewMessageEvent) ProtoMessage() {}

func (x *NewMessageEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewMessageEvent.ProtoReflect.Descriptor instead.
func (*NewMessageEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{20}
}

func (x *NewMessageEvent) GetMessage() *Message {
	if x != nil {
		return x.Message
	}
	return nil
}

var File_chat_proto protoreflect.FileDescriptor

const file_chat_proto_rawDesc = "" +
	"\n" +
	"\n" +
	"chat.proto\x12\richat.chat.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xb7\x01\n" +
	"\x04Chat\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\x03R\aownerId\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12!\n" +
	"\funread_count\x18\x06 \x01(\x05R\vunreadCount\"\xb4\x01\n" +
	"\aMessage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x17\n" +
	"\achat_id\x18\x02 \x01(\x03R\x06chatId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\x03R\x06userId\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"F\n" +
	"\x11CreateChatRequest\x12\x1d\n" +
	"\n" +
	"member_ids\x18\x01 \x03(\x03R\tmemberIds\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"@\n" +
	"\x11RenameChatRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\x03R\x06chatId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"7\n" +
	"\fChatResponse\x12'\n" +
	"\x04chat\x18\x01 \x01(\v2\x13.ichat.chat.v1.ChatR\x04chat\"*\n" +
	"\x0fDropChatRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\x03R\x06chatId\",\n" +
	"\x10DropChatResponse\x12\x18\n" +
	"\adropped\x18\x01 \x01(\bR\adropped\"\x12\n" +
	"\x10ListChatsRequest\".\n" +
	"\x13MarkChatReadRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\x03R\x06chatId\".\n" +
	"\x14MarkChatReadResponse\x12\x16\n" +
	"\x06marked\x18\x01 \x01(\bR\x06marked\">\n" +
	"\x11ListChatsResponse\x12)\n" +
	"\x05chats\x18\x01 \x03(\v2\x13.ichat.chat.v1.ChatR\x05chats\"G\n" +
	"\x12SendMessageRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\x03R\x06chatId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"C\n" +
	"\x0fMessageResponse\x120\n" +
	"\amessage\x18\x01 \x01(\v2\x16.ichat.chat.v1.MessageR\amessage\"^\n" +
	"\x13ListMessagesRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\x03R\x06chatId\x12 \n" +
	"\tcursor_id\x18\x02 \x01(\x03H\x00R\bcursorId\x88\x01\x01B\f\n" +
	"\n" +
	"_cursor_id\"J\n" +
	"\x14ListMessagesResponse\x122\n" +
	"\bmessages\x18\x01 \x03(\v2\x16.ichat.chat.v1.MessageR\bmessages\"\x1a\n" +
	"\x18SubscribeMessagesRequest\"7\n" +
	"\x1cSubscribeChatMessagesRequest\x12\x17\n" +
	"\achat_id\x18\x01 \x01(\x03R\x06chatId\"\x17\n" +
	"\x15SubscribeChatsRequest\"\x8f\x01\n" +
	"\x0fChatStreamEvent\x127\n" +
	"\x04chat\x18\x01 \x01(\v2!.ichat.chat.v1.ChatLifecycleEventH\x00R\x04chat\x12:\n" +
	"\amessage\x18\x02 \x01(\v2\x1e.ichat.chat.v1.NewMessageEventH\x00R\amessageB\a\n" +
	"\x05event\"\xea\x01\n" +
	"\x12ChatLifecycleEvent\x12:\n" +
	"\x04kind\x18\x01 \x01(\x0e2&.ichat.chat.v1.ChatLifecycleEvent.KindR\x04kind\x12'\n" +
	"\x04chat\x18\x02 \x01(\v2\x13.ichat.chat.v1.ChatR\x04chat\"o\n" +
	"\x04Kind\x12\x14\n" +
	"\x10KIND_UNSPECIFIED\x10\x00\x12\x10\n" +
	"\fKIND_CREATED\x10\x01\x12\x16\n" +
	"\x12KIND_OWNER_CHANGED\x10\x02\x12\x15\n" +
	"\x11KIND_NAME_CHANGED\x10\x03\x12\x10\n" +
	"\fKIND_DELETED\x10\x04\"C\n" +
	"\x0fNewMessageEvent\x120\n" +
	"\amessage\x18\x01 \x01(\v2\x16.ichat.chat.v1.MessageR\amessage2\xea\x06\n" +
	"\vChatService\x12K\n" +
	"\n" +
	"CreateChat\x12 .ichat.chat.v1.CreateChatRequest\x1a\x1b.ichat.chat.v1.ChatResponse\x12K\n" +
	"\n" +
	"RenameChat\x12 .ichat.chat.v1.RenameChatRequest\x1a\x1b.ichat.chat.v1.ChatResponse\x12K\n" +
	"\bDropChat\x12\x1e.ichat.chat.v1.DropChatRequest\x1a\x1f.ichat.chat.v1.DropChatResponse\x12N\n" +
	"\tListChats\x12\x1f.ichat.chat.v1.ListChatsRequest\x1a .ichat.chat.v1.ListChatsResponse\x12W\n" +
	"\fMarkChatRead\x12\".ichat.chat.v1.MarkChatReadRequest\x1a#.ichat.chat.v1.MarkChatReadResponse\x12P\n" +
	"\vSendMessage\x12!.ichat.chat.v1.SendMessageRequest\x1a\x1e.ichat.chat.v1.MessageResponse\x12W\n" +
	"\fListMessages\x12\".ichat.chat.v1.ListMessagesRequest\x1a#.ichat.chat.v1.ListMessagesResponse\x12^\n" +
	"\x11SubscribeMessages\x12'.ichat.chat.v1.SubscribeMessagesRequest\x1a\x1e.ichat.chat.v1.ChatStreamEvent0\x01\x12f\n" +
	"\x15SubscribeChatMessages\x12+.ichat.chat.v1.SubscribeChatMessagesRequest\x1a\x1e.ichat.chat.v1.ChatStreamEvent0\x01\x12X\n" +
	"\x0eSubscribeChats\x12$.ichat.chat.v1.SubscribeChatsRequest\x1a\x1e.ichat.chat.v1.ChatStreamEvent0\x01B\x12Z\x10ichat/proto/chatb\x06proto3"

var (
	file_chat_proto_rawDescOnce sync.Once
	file_chat_proto_rawDescData []byte
)

func file_chat_proto_rawDescGZIP() []byte {
	file_chat_proto_rawDescOnce.Do(func() {
		file_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)))
	})
	return file_chat_proto_rawDescData
}

var file_chat_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_chat_proto_goTypes = []any{
	(ChatLifecycleEvent_Kind)(0),         // 0: ichat.chat.v1.ChatLifecycleEvent.Kind
	(*Chat)(nil),                         // 1: ichat.chat.v1.Chat
	(*Message)(nil),                      // 2: ichat.chat.v1.Message
	(*CreateChatRequest)(nil),            // 3: ichat.chat.v1.CreateChatRequest
	(*RenameChatRequest)(nil),            // 4: ichat.chat.v1.RenameChatRequest
	(*ChatResponse)(nil),                 // 5: ichat.chat.v1.ChatResponse
	(*DropChatRequest)(nil),              // 6: ichat.chat.v1.DropChatRequest
	(*DropChatResponse)(nil),             // 7: ichat.chat.v1.DropChatResponse
	(*ListChatsRequest)(nil),             // 8: ichat.chat.v1.ListChatsRequest
	(*MarkChatReadRequest)(nil),          // 9: ichat.chat.v1.MarkChatReadRequest
	(*MarkChatReadResponse)(nil),         // 10: ichat.chat.v1.MarkChatReadResponse
	(*ListChatsResponse)(nil),            // 11: ichat.chat.v1.ListChatsResponse
	(*SendMessageRequest)(nil),           // 12: ichat.chat.v1.SendMessageRequest
	(*MessageResponse)(nil),              // 13: ichat.chat.v1.MessageResponse
	(*ListMessagesRequest)(nil),          // 14: ichat.chat.v1.ListMessagesRequest
	(*ListMessagesResponse)(nil),         // 15: ichat.chat.v1.ListMessagesResponse
	(*SubscribeMessagesRequest)(nil),     // 16: ichat.chat.v1.SubscribeMessagesRequest
	(*SubscribeChatMessagesRequest)(nil), // 17: ichat.chat.v1.SubscribeChatMessagesRequest
	(*SubscribeChatsRequest)(nil),        // 18: ichat.chat.v1.SubscribeChatsRequest
	(*ChatStreamEvent)(nil),              // 19: ichat.chat.v1.ChatStreamEvent
	(*ChatLifecycleEvent)(nil),           // 20: ichat.chat.v1.ChatLifecycleEvent
	(*NewMessageEvent)(nil),              // 21: ichat.chat.v1.NewMessageEvent
	(*timestamppb.Timestamp)(nil),        // 22: google.protobuf.Timestamp
}
var file_chat_proto_depIdxs = []int32{
	22, // 0: ichat.chat.v1.Chat.created_at:type_name -> google.protobuf.Timestamp
	22, // 1: ichat.chat.v1.Message.created_at:type_name -> google.protobuf.Timestamp
	1,  // 2: ichat.chat.v1.ChatResponse.chat:type_name -> ichat.chat.v1.Chat
	1,  // 3: ichat.chat.v1.ListChatsResponse.chats:type_name -> ichat.chat.v1.Chat
	2,  // 4: ichat.chat.v1.MessageResponse.message:type_name -> ichat.chat.v1.Message
	2,  // 5: ichat.chat.v1.ListMessagesResponse.messages:type_name -> ichat.chat.v1.Message
	20, // 6: ichat.chat.v1.ChatStreamEvent.chat:type_name -> ichat.chat.v1.ChatLifecycleEvent
	21, // 7: ichat.chat.v1.ChatStreamEvent.message:type_name -> ichat.chat.v1.NewMessageEvent
	0,  // 8: ichat.chat.v1.ChatLifecycleEvent.kind:type_name -> ichat.chat.v1.ChatLifecycleEvent.Kind
	1,  // 9: ichat.chat.v1.ChatLifecycleEvent.chat:type_name -> ichat.chat.v1.Chat
	2,  // 10: ichat.chat.v1.NewMessageEvent.message:type_name -> ichat.chat.v1.Message
	3,  // 11: ichat.chat.v1.ChatService.CreateChat:input_type -> ichat.chat.v1.CreateChatRequest
	4,  // 12: ichat.chat.v1.ChatService.RenameChat:input_type -> ichat.chat.v1.RenameChatRequest
	6,  // 13: ichat.chat.v1.ChatService.DropChat:input_type -> ichat.chat.v1.DropChatRequest
	8,  // 14: ichat.chat.v1.ChatService.ListChats:input_type -> ichat.chat.v1.ListChatsRequest
	9,  // 15: ichat.chat.v1.ChatService.MarkChatRead:input_type -> ichat.chat.v1.MarkChatReadRequest
	12, // 16: ichat.chat.v1.ChatService.SendMessage:input_type -> ichat.chat.v1.SendMessageRequest
	14, // 17: ichat.chat.v1.ChatService.ListMessages:input_type -> ichat.chat.v1.ListMessagesRequest
	16, // 18: ichat.chat.v1.ChatService.SubscribeMessages:input_type -> ichat.chat.v1.SubscribeMessagesRequest
	17, // 19: ichat.chat.v1.ChatService.SubscribeChatMessages:input_type -> ichat.chat.v1.SubscribeChatMessagesRequest
	18, // 20: ichat.chat.v1.ChatService.SubscribeChats:input_type -> ichat.chat.v1.SubscribeChatsRequest
	5,  // 21: ichat.chat.v1.ChatService.CreateChat:output_type -> ichat.chat.v1.ChatResponse
	5,  // 22: ichat.chat.v1.ChatService.RenameChat:output_type -> ichat.chat.v1.ChatResponse
	7,  // 23: ichat.chat.v1.ChatService.DropChat:output_type -> ichat.chat.v1.DropChatResponse
	11, // 24: ichat.chat.v1.ChatService.ListChats:output_type -> ichat.chat.v1.ListChatsResponse
	10, // 25: ichat.chat.v1.ChatService.MarkChatRead:output_type -> ichat.chat.v1.MarkChatReadResponse
	13, // 26: ichat.chat.v1.ChatService.SendMessage:output_type -> ichat.chat.v1.MessageResponse
	15, // 27: ichat.chat.v1.ChatService.ListMessages:output_type -> ichat.chat.v1.ListMessagesResponse
	19, // 28: ichat.chat.v1.ChatService.SubscribeMessages:output_type -> ichat.chat.v1.ChatStreamEvent
	19, // 29: ichat.chat.v1.ChatService.SubscribeChatMessages:output_type -> ichat.chat.v1.ChatStreamEvent
	19, // 30: ichat.chat.v1.ChatService.SubscribeChats:output_type -> ichat.chat.v1.ChatStreamEvent
	21, // [21:31] is the sub-list for method output_type
	11, // [11:21] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_chat_proto_init() }
func file_chat_proto_init() {
	if File_chat_proto != nil {
		return
	}
	file_chat_proto_msgTypes[13].OneofWrappers = []any{}
	file_chat_proto_msgTypes[18].OneofWrappers = []any{
		(*ChatStreamEvent_Chat)(nil),
		(*ChatStreamEvent_Message)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chat_proto_goTypes,
		DependencyIndexes: file_chat_proto_depIdxs,
		EnumInfos:         file_chat_proto_enumTypes,
		MessageInfos:      file_chat_proto_msgTypes,
	}.Build()
	File_chat_proto = out.File
	file_chat_proto_goTypes = nil
	file_chat_proto_depIdxs = nil
}
