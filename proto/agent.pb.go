// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: agent.proto

package proto

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

type Message_Role int32

const (
	Message_ROLE_UNSPECIFIED Message_Role = 0
	Message_ROLE_SYSTEM      Message_Role = 1
	Message_ROLE_USER        Message_Role = 2
	Message_ROLE_ASSISTANT   Message_Role = 3
	Message_ROLE_TOOL        Message_Role = 4
)

// Enum value maps for Message_Role.
var (
	Message_Role_name = map[int32]string{
		0: "ROLE_UNSPECIFIED",
		1: "ROLE_SYSTEM",
		2: "ROLE_USER",
		3: "ROLE_ASSISTANT",
		4: "ROLE_TOOL",
	}
	Message_Role_value = map[string]int32{
		"ROLE_UNSPECIFIED": 0,
		"ROLE_SYSTEM":      1,
		"ROLE_USER":        2,
		"ROLE_ASSISTANT":   3,
		"ROLE_TOOL":        4,
	}
)

func (x Message_Role) Enum() *Message_Role {
	p := new(Message_Role)
	*p = x
	return p
}

func (x Message_Role) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Message_Role) Descriptor() protoreflect.EnumDescriptor {
	return file_agent_proto_enumTypes[0].Descriptor()
}

func (Message_Role) Type() protoreflect.EnumType {
	return &file_agent_proto_enumTypes[0]
}

func (x Message_Role) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Message_Role.Descriptor instead.
func (Message_Role) EnumDescriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{0, 0}
}

type Message struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          Message_Role           `protobuf:"varint,1,opt,name=role,proto3,enum=helmsman.agent.v1.Message_Role" json:"role,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	ToolName      string                 `protobuf:"bytes,3,opt,name=tool_name,json=toolName,proto3" json:"tool_name,omitempty"`
	ToolUseId     string                 `protobuf:"bytes,4,opt,name=tool_use_id,json=toolUseId,proto3" json:"tool_use_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Message) Reset() {
	*x = Message{}
	mi := &file_agent_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Message) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[0]
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
	return file_agent_proto_rawDescGZIP(), []int{0}
}

func (x *Message) GetRole() Message_Role {
	if x != nil {
		return x.Role
	}
	return Message_ROLE_UNSPECIFIED
}

func (x *Message) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Message) GetToolName() string {
	if x != nil {
		return x.ToolName
	}
	return ""
}

func (x *Message) GetToolUseId() string {
	if x != nil {
		return x.ToolUseId
	}
	return ""
}

type TurnRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SessionId      string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Messages       []*Message             `protobuf:"bytes,2,rep,name=messages,proto3" json:"messages,omitempty"`
	Model          string                 `protobuf:"bytes,3,opt,name=model,proto3" json:"model,omitempty"`
	AllowedTools   []string               `protobuf:"bytes,4,rep,name=allowed_tools,json=allowedTools,proto3" json:"allowed_tools,omitempty"`
	PermissionMode string                 `protobuf:"bytes,5,opt,name=permission_mode,json=permissionMode,proto3" json:"permission_mode,omitempty"`
	Cwd            string                 `protobuf:"bytes,6,opt,name=cwd,proto3" json:"cwd,omitempty"`
	Temperature    *float32               `protobuf:"fixed32,7,opt,name=temperature,proto3,oneof" json:"temperature,omitempty"`
	MaxTokens      *int32                 `protobuf:"varint,8,opt,name=max_tokens,json=maxTokens,proto3,oneof" json:"max_tokens,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *TurnRequest) Reset() {
	*x = TurnRequest{}
	mi := &file_agent_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TurnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TurnRequest) ProtoMessage() {}

func (x *TurnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TurnRequest.ProtoReflect.Descriptor instead.
func (*TurnRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{1}
}

func (x *TurnRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *TurnRequest) GetMessages() []*Message {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *TurnRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *TurnRequest) GetAllowedTools() []string {
	if x != nil {
		return x.AllowedTools
	}
	return nil
}

func (x *TurnRequest) GetPermissionMode() string {
	if x != nil {
		return x.PermissionMode
	}
	return ""
}

func (x *TurnRequest) GetCwd() string {
	if x != nil {
		return x.Cwd
	}
	return ""
}

func (x *TurnRequest) GetTemperature() float32 {
	if x != nil && x.Temperature != nil {
		return *x.Temperature
	}
	return 0
}

func (x *TurnRequest) GetMaxTokens() int32 {
	if x != nil && x.MaxTokens != nil {
		return *x.MaxTokens
	}
	return 0
}

type TextBlock struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	IsComplete    bool                   `protobuf:"varint,2,opt,name=is_complete,json=isComplete,proto3" json:"is_complete,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TextBlock) Reset() {
	*x = TextBlock{}
	mi := &file_agent_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TextBlock) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TextBlock) ProtoMessage() {}

func (x *TextBlock) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TextBlock.ProtoReflect.Descriptor instead.
func (*TextBlock) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{2}
}

func (x *TextBlock) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *TextBlock) GetIsComplete() bool {
	if x != nil {
		return x.IsComplete
	}
	return false
}

type ThinkingBlock struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	IsComplete    bool                   `protobuf:"varint,2,opt,name=is_complete,json=isComplete,proto3" json:"is_complete,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ThinkingBlock) Reset() {
	*x = ThinkingBlock{}
	mi := &file_agent_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ThinkingBlock) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ThinkingBlock) ProtoMessage() {}

func (x *ThinkingBlock) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ThinkingBlock.ProtoReflect.Descriptor instead.
func (*ThinkingBlock) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{3}
}

func (x *ThinkingBlock) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ThinkingBlock) GetIsComplete() bool {
	if x != nil {
		return x.IsComplete
	}
	return false
}

type ToolUseBlock struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ToolUseId     string                 `protobuf:"bytes,1,opt,name=tool_use_id,json=toolUseId,proto3" json:"tool_use_id,omitempty"`
	ToolName      string                 `protobuf:"bytes,2,opt,name=tool_name,json=toolName,proto3" json:"tool_name,omitempty"`
	InputJson     string                 `protobuf:"bytes,3,opt,name=input_json,json=inputJson,proto3" json:"input_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolUseBlock) Reset() {
	*x = ToolUseBlock{}
	mi := &file_agent_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolUseBlock) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolUseBlock) ProtoMessage() {}

func (x *ToolUseBlock) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolUseBlock.ProtoReflect.Descriptor instead.
func (*ToolUseBlock) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{4}
}

func (x *ToolUseBlock) GetToolUseId() string {
	if x != nil {
		return x.ToolUseId
	}
	return ""
}

func (x *ToolUseBlock) GetToolName() string {
	if x != nil {
		return x.ToolName
	}
	return ""
}

func (x *ToolUseBlock) GetInputJson() string {
	if x != nil {
		return x.InputJson
	}
	return ""
}

type ToolResultBlock struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ToolUseId string                 `protobuf:"bytes,1,opt,name=tool_use_id,json=toolUseId,proto3" json:"tool_use_id,omitempty"`
	Content   string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	IsError   bool                   `protobuf:"varint,3,opt,name=is_error,json=isError,proto3" json:"is_error,omitempty"`
	// Populated for file write/edit tools.
	FilePath      string `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	OldContent    string `protobuf:"bytes,5,opt,name=old_content,json=oldContent,proto3" json:"old_content,omitempty"`
	NewContent    string `protobuf:"bytes,6,opt,name=new_content,json=newContent,proto3" json:"new_content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolResultBlock) Reset() {
	*x = ToolResultBlock{}
	mi := &file_agent_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolResultBlock) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolResultBlock) ProtoMessage() {}

func (x *ToolResultBlock) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolResultBlock.ProtoReflect.Descriptor instead.
func (*ToolResultBlock) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{5}
}

func (x *ToolResultBlock) GetToolUseId() string {
	if x != nil {
		return x.ToolUseId
	}
	return ""
}

func (x *ToolResultBlock) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ToolResultBlock) GetIsError() bool {
	if x != nil {
		return x.IsError
	}
	return false
}

func (x *ToolResultBlock) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ToolResultBlock) GetOldContent() string {
	if x != nil {
		return x.OldContent
	}
	return ""
}

func (x *ToolResultBlock) GetNewContent() string {
	if x != nil {
		return x.NewContent
	}
	return ""
}

type Usage struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	PromptTokens     int64                  `protobuf:"varint,1,opt,name=prompt_tokens,json=promptTokens,proto3" json:"prompt_tokens,omitempty"`
	CompletionTokens int64                  `protobuf:"varint,2,opt,name=completion_tokens,json=completionTokens,proto3" json:"completion_tokens,omitempty"`
	CostUsd          float64                `protobuf:"fixed64,3,opt,name=cost_usd,json=costUsd,proto3" json:"cost_usd,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Usage) Reset() {
	*x = Usage{}
	mi := &file_agent_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Usage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Usage) ProtoMessage() {}

func (x *Usage) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Usage.ProtoReflect.Descriptor instead.
func (*Usage) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{6}
}

func (x *Usage) GetPromptTokens() int64 {
	if x != nil {
		return x.PromptTokens
	}
	return 0
}

func (x *Usage) GetCompletionTokens() int64 {
	if x != nil {
		return x.CompletionTokens
	}
	return 0
}

func (x *Usage) GetCostUsd() float64 {
	if x != nil {
		return x.CostUsd
	}
	return 0
}

type TurnComplete struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Usage         *Usage                 `protobuf:"bytes,1,opt,name=usage,proto3" json:"usage,omitempty"`
	StopReason    string                 `protobuf:"bytes,2,opt,name=stop_reason,json=stopReason,proto3" json:"stop_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TurnComplete) Reset() {
	*x = TurnComplete{}
	mi := &file_agent_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TurnComplete) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TurnComplete) ProtoMessage() {}

func (x *TurnComplete) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TurnComplete.ProtoReflect.Descriptor instead.
func (*TurnComplete) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{7}
}

func (x *TurnComplete) GetUsage() *Usage {
	if x != nil {
		return x.Usage
	}
	return nil
}

func (x *TurnComplete) GetStopReason() string {
	if x != nil {
		return x.StopReason
	}
	return ""
}

type AgentError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Retryable     bool                   `protobuf:"varint,2,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentError) Reset() {
	*x = AgentError{}
	mi := &file_agent_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentError) ProtoMessage() {}

func (x *AgentError) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentError.ProtoReflect.Descriptor instead.
func (*AgentError) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{8}
}

func (x *AgentError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *AgentError) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

type AgentChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to ChunkType:
	//
	//	*AgentChunk_Text
	//	*AgentChunk_Thinking
	//	*AgentChunk_ToolUse
	//	*AgentChunk_ToolResult
	//	*AgentChunk_Complete
	//	*AgentChunk_Error
	ChunkType     isAgentChunk_ChunkType `protobuf_oneof:"chunk_type"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentChunk) Reset() {
	*x = AgentChunk{}
	mi := &file_agent_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentChunk) ProtoMessage() {}

func (x *AgentChunk) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentChunk.ProtoReflect.Descriptor instead.
func (*AgentChunk) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{9}
}

func (x *AgentChunk) GetChunkType() isAgentChunk_ChunkType {
	if x != nil {
		return x.ChunkType
	}
	return nil
}

func (x *AgentChunk) GetText() *TextBlock {
	if x != nil {
		if x, ok := x.ChunkType.(*AgentChunk_Text); ok {
			return x.Text
		}
	}
	return nil
}

func (x *AgentChunk) GetThinking() *ThinkingBlock {
	if x != nil {
		if x, ok := x.ChunkType.(*AgentChunk_Thinking); ok {
			return x.Thinking
		}
	}
	return nil
}

func (x *AgentChunk) GetToolUse() *ToolUseBlock {
	if x != nil {
		if x, ok := x.ChunkType.(*AgentChunk_ToolUse); ok {
			return x.ToolUse
		}
	}
	return nil
}

func (x *AgentChunk) GetToolResult() *ToolResultBlock {
	if x != nil {
		if x, ok := x.ChunkType.(*AgentChunk_ToolResult); ok {
			return x.ToolResult
		}
	}
	return nil
}

func (x *AgentChunk) GetComplete() *TurnComplete {
	if x != nil {
		if x, ok := x.ChunkType.(*AgentChunk_Complete); ok {
			return x.Complete
		}
	}
	return nil
}

func (x *AgentChunk) GetError() *AgentError {
	if x != nil {
		if x, ok := x.ChunkType.(*AgentChunk_Error); ok {
			return x.Error
		}
	}
	return nil
}

type isAgentChunk_ChunkType interface {
	isAgentChunk_ChunkType()
}

type AgentChunk_Text struct {
	Text *TextBlock `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type AgentChunk_Thinking struct {
	Thinking *ThinkingBlock `protobuf:"bytes,2,opt,name=thinking,proto3,oneof"`
}

type AgentChunk_ToolUse struct {
	ToolUse *ToolUseBlock `protobuf:"bytes,3,opt,name=tool_use,json=toolUse,proto3,oneof"`
}

type AgentChunk_ToolResult struct {
	ToolResult *ToolResultBlock `protobuf:"bytes,4,opt,name=tool_result,json=toolResult,proto3,oneof"`
}

type AgentChunk_Complete struct {
	Complete *TurnComplete `protobuf:"bytes,5,opt,name=complete,proto3,oneof"`
}

type AgentChunk_Error struct {
	Error *AgentError `protobuf:"bytes,6,opt,name=error,proto3,oneof"`
}

func (*AgentChunk_Text) isAgentChunk_ChunkType() {}

func (*AgentChunk_Thinking) isAgentChunk_ChunkType() {}

func (*AgentChunk_ToolUse) isAgentChunk_ChunkType() {}

func (*AgentChunk_ToolResult) isAgentChunk_ChunkType() {}

func (*AgentChunk_Complete) isAgentChunk_ChunkType() {}

func (*AgentChunk_Error) isAgentChunk_ChunkType() {}

var File_agent_proto protoreflect.FileDescriptor

const file_agent_proto_rawDesc = "" +
	"\n" +
	"\vagent.proto\x12\x11helmsman.agent.v1\"\xf6\x01\n" +
	"\aMessage\x123\n" +
	"\x04role\x18\x01 \x01(\x0e2\x1f.helmsman.agent.v1.Message.RoleR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\x1b\n" +
	"\ttool_name\x18\x03 \x01(\tR\btoolName\x12\x1e\n" +
	"\vtool_use_id\x18\x04 \x01(\tR\ttoolUseId\"_\n" +
	"\x04Role\x12\x14\n" +
	"\x10ROLE_UNSPECIFIED\x10\x00\x12\x0f\n" +
	"\vROLE_SYSTEM\x10\x01\x12\r\n" +
	"\tROLE_USER\x10\x02\x12\x12\n" +
	"\x0eROLE_ASSISTANT\x10\x03\x12\r\n" +
	"\tROLE_TOOL\x10\x04\"\xc4\x02\n" +
	"\vTurnRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x126\n" +
	"\bmessages\x18\x02 \x03(\v2\x1a.helmsman.agent.v1.MessageR\bmessages\x12\x14\n" +
	"\x05model\x18\x03 \x01(\tR\x05model\x12#\n" +
	"\rallowed_tools\x18\x04 \x03(\tR\fallowedTools\x12'\n" +
	"\x0fpermission_mode\x18\x05 \x01(\tR\x0epermissionMode\x12\x10\n" +
	"\x03cwd\x18\x06 \x01(\tR\x03cwd\x12%\n" +
	"\vtemperature\x18\a \x01(\x02H\x00R\vtemperature\x88\x01\x01\x12\"\n" +
	"\n" +
	"max_tokens\x18\b \x01(\x05H\x01R\tmaxTokens\x88\x01\x01B\x0e\n" +
	"\f_temperatureB\r\n" +
	"\v_max_tokens\"F\n" +
	"\tTextBlock\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12\x1f\n" +
	"\vis_complete\x18\x02 \x01(\bR\n" +
	"isComplete\"J\n" +
	"\rThinkingBlock\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12\x1f\n" +
	"\vis_complete\x18\x02 \x01(\bR\n" +
	"isComplete\"j\n" +
	"\fToolUseBlock\x12\x1e\n" +
	"\vtool_use_id\x18\x01 \x01(\tR\ttoolUseId\x12\x1b\n" +
	"\ttool_name\x18\x02 \x01(\tR\btoolName\x12\x1d\n" +
	"\n" +
	"input_json\x18\x03 \x01(\tR\tinputJson\"\xc5\x01\n" +
	"\x0fToolResultBlock\x12\x1e\n" +
	"\vtool_use_id\x18\x01 \x01(\tR\ttoolUseId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\x19\n" +
	"\bis_error\x18\x03 \x01(\bR\aisError\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12\x1f\n" +
	"\vold_content\x18\x05 \x01(\tR\n" +
	"oldContent\x12\x1f\n" +
	"\vnew_content\x18\x06 \x01(\tR\n" +
	"newContent\"t\n" +
	"\x05Usage\x12#\n" +
	"\rprompt_tokens\x18\x01 \x01(\x03R\fpromptTokens\x12+\n" +
	"\x11completion_tokens\x18\x02 \x01(\x03R\x10completionTokens\x12\x19\n" +
	"\bcost_usd\x18\x03 \x01(\x01R\acostUsd\"_\n" +
	"\fTurnComplete\x12.\n" +
	"\x05usage\x18\x01 \x01(\v2\x18.helmsman.agent.v1.UsageR\x05usage\x12\x1f\n" +
	"\vstop_reason\x18\x02 \x01(\tR\n" +
	"stopReason\"D\n" +
	"\n" +
	"AgentError\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x1c\n" +
	"\tretryable\x18\x02 \x01(\bR\tretryable\"\x89\x03\n" +
	"\n" +
	"AgentChunk\x122\n" +
	"\x04text\x18\x01 \x01(\v2\x1c.helmsman.agent.v1.TextBlockH\x00R\x04text\x12>\n" +
	"\bthinking\x18\x02 \x01(\v2 .helmsman.agent.v1.ThinkingBlockH\x00R\bthinking\x12<\n" +
	"\btool_use\x18\x03 \x01(\v2\x1f.helmsman.agent.v1.ToolUseBlockH\x00R\atoolUse\x12E\n" +
	"\vtool_result\x18\x04 \x01(\v2\".helmsman.agent.v1.ToolResultBlockH\x00R\n" +
	"toolResult\x12=\n" +
	"\bcomplete\x18\x05 \x01(\v2\x1f.helmsman.agent.v1.TurnCompleteH\x00R\bcomplete\x125\n" +
	"\x05error\x18\x06 \x01(\v2\x1d.helmsman.agent.v1.AgentErrorH\x00R\x05errorB\f\n" +
	"\n" +
	"chunk_type2Z\n" +
	"\fAgentService\x12J\n" +
	"\aRunTurn\x12\x1e.helmsman.agent.v1.TurnRequest\x1a\x1d.helmsman.agent.v1.AgentChunk0\x01B'Z%github.com/helmsman-ai/helmsman/protob\x06proto3"

var (
	file_agent_proto_rawDescOnce sync.Once
	file_agent_proto_rawDescData []byte
)

func file_agent_proto_rawDescGZIP() []byte {
	file_agent_proto_rawDescOnce.Do(func() {
		file_agent_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_agent_proto_rawDesc), len(file_agent_proto_rawDesc)))
	})
	return file_agent_proto_rawDescData
}

var file_agent_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_agent_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_agent_proto_goTypes = []any{
	(Message_Role)(0),       // 0: helmsman.agent.v1.Message.Role
	(*Message)(nil),         // 1: helmsman.agent.v1.Message
	(*TurnRequest)(nil),     // 2: helmsman.agent.v1.TurnRequest
	(*TextBlock)(nil),       // 3: helmsman.agent.v1.TextBlock
	(*ThinkingBlock)(nil),   // 4: helmsman.agent.v1.ThinkingBlock
	(*ToolUseBlock)(nil),    // 5: helmsman.agent.v1.ToolUseBlock
	(*ToolResultBlock)(nil), // 6: helmsman.agent.v1.ToolResultBlock
	(*Usage)(nil),           // 7: helmsman.agent.v1.Usage
	(*TurnComplete)(nil),    // 8: helmsman.agent.v1.TurnComplete
	(*AgentError)(nil),      // 9: helmsman.agent.v1.AgentError
	(*AgentChunk)(nil),      // 10: helmsman.agent.v1.AgentChunk
}
var file_agent_proto_depIdxs = []int32{
	0,  // 0: helmsman.agent.v1.Message.role:type_name -> helmsman.agent.v1.Message.Role
	1,  // 1: helmsman.agent.v1.TurnRequest.messages:type_name -> helmsman.agent.v1.Message
	7,  // 2: helmsman.agent.v1.TurnComplete.usage:type_name -> helmsman.agent.v1.Usage
	3,  // 3: helmsman.agent.v1.AgentChunk.text:type_name -> helmsman.agent.v1.TextBlock
	4,  // 4: helmsman.agent.v1.AgentChunk.thinking:type_name -> helmsman.agent.v1.ThinkingBlock
	5,  // 5: helmsman.agent.v1.AgentChunk.tool_use:type_name -> helmsman.agent.v1.ToolUseBlock
	6,  // 6: helmsman.agent.v1.AgentChunk.tool_result:type_name -> helmsman.agent.v1.ToolResultBlock
	8,  // 7: helmsman.agent.v1.AgentChunk.complete:type_name -> helmsman.agent.v1.TurnComplete
	9,  // 8: helmsman.agent.v1.AgentChunk.error:type_name -> helmsman.agent.v1.AgentError
	2,  // 9: helmsman.agent.v1.AgentService.RunTurn:input_type -> helmsman.agent.v1.TurnRequest
	10, // 10: helmsman.agent.v1.AgentService.RunTurn:output_type -> helmsman.agent.v1.AgentChunk
	10, // [10:11] is the sub-list for method output_type
	9,  // [9:10] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_agent_proto_init() }
func file_agent_proto_init() {
	if File_agent_proto != nil {
		return
	}
	file_agent_proto_msgTypes[1].OneofWrappers = []any{}
	file_agent_proto_msgTypes[9].OneofWrappers = []any{
		(*AgentChunk_Text)(nil),
		(*AgentChunk_Thinking)(nil),
		(*AgentChunk_ToolUse)(nil),
		(*AgentChunk_ToolResult)(nil),
		(*AgentChunk_Complete)(nil),
		(*AgentChunk_Error)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_agent_proto_rawDesc), len(file_agent_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_agent_proto_goTypes,
		DependencyIndexes: file_agent_proto_depIdxs,
		EnumInfos:         file_agent_proto_enumTypes,
		MessageInfos:      file_agent_proto_msgTypes,
	}.Build()
	File_agent_proto = out.File
	file_agent_proto_goTypes = nil
	file_agent_proto_depIdxs = nil
}
