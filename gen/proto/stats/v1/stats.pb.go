// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: stats/v1/stats.proto

package statsv1

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

type UserStatistics struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Role          string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	IsSuperUser   bool                   `protobuf:"varint,5,opt,name=is_super_user,json=isSuperUser,proto3" json:"is_super_user,omitempty"`
	IsTenant      bool                   `protobuf:"varint,6,opt,name=is_tenant,json=isTenant,proto3" json:"is_tenant,omitempty"`
	ActivityCount int32                  `protobuf:"varint,7,opt,name=activity_count,json=activityCount,proto3" json:"activity_count,omitempty"`
	// RFC 3339; empty when the user has no recorded activity.
	LastActivity  string `protobuf:"bytes,8,opt,name=last_activity,json=lastActivity,proto3" json:"last_activity,omitempty"`
	InvitedBy     string `protobuf:"bytes,9,opt,name=invited_by,json=invitedBy,proto3" json:"invited_by,omitempty"`
	TrialEndsAt   string `protobuf:"bytes,10,opt,name=trial_ends_at,json=trialEndsAt,proto3" json:"trial_ends_at,omitempty"`
	CreatedAt     string `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserStatistics) Reset() {
	*x = UserStatistics{}
	mi := &file_stats_v1_stats_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserStatistics) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserStatistics) ProtoMessage() {}

func (x *UserStatistics) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserStatistics.ProtoReflect.Descriptor instead.
func (*UserStatistics) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{0}
}

func (x *UserStatistics) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UserStatistics) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UserStatistics) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *UserStatistics) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *UserStatistics) GetIsSuperUser() bool {
	if x != nil {
		return x.IsSuperUser
	}
	return false
}

func (x *UserStatistics) GetIsTenant() bool {
	if x != nil {
		return x.IsTenant
	}
	return false
}

func (x *UserStatistics) GetActivityCount() int32 {
	if x != nil {
		return x.ActivityCount
	}
	return 0
}

func (x *UserStatistics) GetLastActivity() string {
	if x != nil {
		return x.LastActivity
	}
	return ""
}

func (x *UserStatistics) GetInvitedBy() string {
	if x != nil {
		return x.InvitedBy
	}
	return ""
}

func (x *UserStatistics) GetTrialEndsAt() string {
	if x != nil {
		return x.TrialEndsAt
	}
	return ""
}

func (x *UserStatistics) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *UserStatistics) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetStatisticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatisticsRequest) Reset() {
	*x = GetStatisticsRequest{}
	mi := &file_stats_v1_stats_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsRequest) ProtoMessage() {}

func (x *GetStatisticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsRequest.ProtoReflect.Descriptor instead.
func (*GetStatisticsRequest) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{1}
}

type GetStatisticsResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Users           []*UserStatistics      `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	TotalUsers      int32                  `protobuf:"varint,2,opt,name=total_users,json=totalUsers,proto3" json:"total_users,omitempty"`
	TotalSuperUsers int32                  `protobuf:"varint,3,opt,name=total_super_users,json=totalSuperUsers,proto3" json:"total_super_users,omitempty"`
	TotalTenants    int32                  `protobuf:"varint,4,opt,name=total_tenants,json=totalTenants,proto3" json:"total_tenants,omitempty"`
	TotalWorkers    int32                  `protobuf:"varint,5,opt,name=total_workers,json=totalWorkers,proto3" json:"total_workers,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetStatisticsResponse) Reset() {
	*x = GetStatisticsResponse{}
	mi := &file_stats_v1_stats_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsResponse) ProtoMessage() {}

func (x *GetStatisticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsResponse.ProtoReflect.Descriptor instead.
func (*GetStatisticsResponse) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{2}
}

func (x *GetStatisticsResponse) GetUsers() []*UserStatistics {
	if x != nil {
		return x.Users
	}
	return nil
}

func (x *GetStatisticsResponse) GetTotalUsers() int32 {
	if x != nil {
		return x.TotalUsers
	}
	return 0
}

func (x *GetStatisticsResponse) GetTotalSuperUsers() int32 {
	if x != nil {
		return x.TotalSuperUsers
	}
	return 0
}

func (x *GetStatisticsResponse) GetTotalTenants() int32 {
	if x != nil {
		return x.TotalTenants
	}
	return 0
}

func (x *GetStatisticsResponse) GetTotalWorkers() int32 {
	if x != nil {
		return x.TotalWorkers
	}
	return 0
}

type HistoryEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	AiAgentType   string                 `protobuf:"bytes,3,opt,name=ai_agent_type,json=aiAgentType,proto3" json:"ai_agent_type,omitempty"`
	FileType      string                 `protobuf:"bytes,4,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	FileName      string                 `protobuf:"bytes,5,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HistoryEntry) Reset() {
	*x = HistoryEntry{}
	mi := &file_stats_v1_stats_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistoryEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistoryEntry) ProtoMessage() {}

func (x *HistoryEntry) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistoryEntry.ProtoReflect.Descriptor instead.
func (*HistoryEntry) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{3}
}

func (x *HistoryEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *HistoryEntry) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *HistoryEntry) GetAiAgentType() string {
	if x != nil {
		return x.AiAgentType
	}
	return ""
}

func (x *HistoryEntry) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *HistoryEntry) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *HistoryEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetUserActivityDetailsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserEmail     string                 `protobuf:"bytes,1,opt,name=user_email,json=userEmail,proto3" json:"user_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserActivityDetailsRequest) Reset() {
	*x = GetUserActivityDetailsRequest{}
	mi := &file_stats_v1_stats_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserActivityDetailsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserActivityDetailsRequest) ProtoMessage() {}

func (x *GetUserActivityDetailsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserActivityDetailsRequest.ProtoReflect.Descriptor instead.
func (*GetUserActivityDetailsRequest) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{4}
}

func (x *GetUserActivityDetailsRequest) GetUserEmail() string {
	if x != nil {
		return x.UserEmail
	}
	return ""
}

type GetUserActivityDetailsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	RecentActivity []*HistoryEntry        `protobuf:"bytes,1,rep,name=recent_activity,json=recentActivity,proto3" json:"recent_activity,omitempty"`
	OffersCount    int32                  `protobuf:"varint,2,opt,name=offers_count,json=offersCount,proto3" json:"offers_count,omitempty"`
	WorksCount     int32                  `protobuf:"varint,3,opt,name=works_count,json=worksCount,proto3" json:"works_count,omitempty"`
	BillingsCount  int32                  `protobuf:"varint,4,opt,name=billings_count,json=billingsCount,proto3" json:"billings_count,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetUserActivityDetailsResponse) Reset() {
	*x = GetUserActivityDetailsResponse{}
	mi := &file_stats_v1_stats_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserActivityDetailsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserActivityDetailsResponse) ProtoMessage() {}

func (x *GetUserActivityDetailsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserActivityDetailsResponse.ProtoReflect.Descriptor instead.
func (*GetUserActivityDetailsResponse) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{5}
}

func (x *GetUserActivityDetailsResponse) GetRecentActivity() []*HistoryEntry {
	if x != nil {
		return x.RecentActivity
	}
	return nil
}

func (x *GetUserActivityDetailsResponse) GetOffersCount() int32 {
	if x != nil {
		return x.OffersCount
	}
	return 0
}

func (x *GetUserActivityDetailsResponse) GetWorksCount() int32 {
	if x != nil {
		return x.WorksCount
	}
	return 0
}

func (x *GetUserActivityDetailsResponse) GetBillingsCount() int32 {
	if x != nil {
		return x.BillingsCount
	}
	return 0
}

type UpdateUserRoleRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// One of: superuser, tenant, worker.
	Role          string `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserRoleRequest) Reset() {
	*x = UpdateUserRoleRequest{}
	mi := &file_stats_v1_stats_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserRoleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserRoleRequest) ProtoMessage() {}

func (x *UpdateUserRoleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserRoleRequest.ProtoReflect.Descriptor instead.
func (*UpdateUserRoleRequest) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{6}
}

func (x *UpdateUserRoleRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdateUserRoleRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type UpdateUserRoleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateUserRoleResponse) Reset() {
	*x = UpdateUserRoleResponse{}
	mi := &file_stats_v1_stats_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateUserRoleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateUserRoleResponse) ProtoMessage() {}

func (x *UpdateUserRoleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_stats_v1_stats_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateUserRoleResponse.ProtoReflect.Descriptor instead.
func (*UpdateUserRoleResponse) Descriptor() ([]byte, []int) {
	return file_stats_v1_stats_proto_rawDescGZIP(), []int{7}
}

var File_stats_v1_stats_proto protoreflect.FileDescriptor

const file_stats_v1_stats_proto_rawDesc = "" +
	"\n" +
	"\x14stats/v1/stats.proto\x12\bstats.v1\"\xec\x02\n" +
	"\x0eUserStatistics\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\x12\"\n" +
	"\ris_super_user\x18\x05 \x01(\bR\visSuperUser\x12\x1b\n" +
	"\tis_tenant\x18\x06 \x01(\bR\bisTenant\x12%\n" +
	"\x0eactivity_count\x18\a \x01(\x05R\ractivityCount\x12#\n" +
	"\rlast_activity\x18\b \x01(\tR\flastActivity\x12\x1d\n" +
	"\n" +
	"invited_by\x18\t \x01(\tR\tinvitedBy\x12\"\n" +
	"\rtrial_ends_at\x18\n" +
	" \x01(\tR\vtrialEndsAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\x16\n" +
	"\x14GetStatisticsRequest\"\xde\x01\n" +
	"\x15GetStatisticsResponse\x12.\n" +
	"\x05users\x18\x01 \x03(\v2\x18.stats.v1.UserStatisticsR\x05users\x12\x1f\n" +
	"\vtotal_users\x18\x02 \x01(\x05R\n" +
	"totalUsers\x12*\n" +
	"\x11total_super_users\x18\x03 \x01(\x05R\x0ftotalSuperUsers\x12#\n" +
	"\rtotal_tenants\x18\x04 \x01(\x05R\ftotalTenants\x12#\n" +
	"\rtotal_workers\x18\x05 \x01(\x05R\ftotalWorkers\"\xb5\x01\n" +
	"\fHistoryEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\"\n" +
	"\rai_agent_type\x18\x03 \x01(\tR\vaiAgentType\x12\x1b\n" +
	"\tfile_type\x18\x04 \x01(\tR\bfileType\x12\x1b\n" +
	"\tfile_name\x18\x05 \x01(\tR\bfileName\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\">\n" +
	"\x1dGetUserActivityDetailsRequest\x12\x1d\n" +
	"\n" +
	"user_email\x18\x01 \x01(\tR\tuserEmail\"\xcc\x01\n" +
	"\x1eGetUserActivityDetailsResponse\x12?\n" +
	"\x0frecent_activity\x18\x01 \x03(\v2\x16.stats.v1.HistoryEntryR\x0erecentActivity\x12!\n" +
	"\foffers_count\x18\x02 \x01(\x05R\voffersCount\x12\x1f\n" +
	"\vworks_count\x18\x03 \x01(\x05R\n" +
	"worksCount\x12%\n" +
	"\x0ebillings_count\x18\x04 \x01(\x05R\rbillingsCount\"D\n" +
	"\x15UpdateUserRoleRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04role\x18\x02 \x01(\tR\x04role\"\x18\n" +
	"\x16UpdateUserRoleResponse2\xa2\x02\n" +
	"\fStatsService\x12P\n" +
	"\rGetStatistics\x12\x1e.stats.v1.GetStatisticsRequest\x1a\x1f.stats.v1.GetStatisticsResponse\x12k\n" +
	"\x16GetUserActivityDetails\x12'.stats.v1.GetUserActivityDetailsRequest\x1a(.stats.v1.GetUserActivityDetailsResponse\x12S\n" +
	"\x0eUpdateUserRole\x12\x1f.stats.v1.UpdateUserRoleRequest\x1a .stats.v1.UpdateUserRoleResponseB8Z6github.com/Zoli1212/awsflow/gen/proto/stats/v1;statsv1b\x06proto3"

var (
	file_stats_v1_stats_proto_rawDescOnce sync.Once
	file_stats_v1_stats_proto_rawDescData []byte
)

func file_stats_v1_stats_proto_rawDescGZIP() []byte {
	file_stats_v1_stats_proto_rawDescOnce.Do(func() {
		file_stats_v1_stats_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_stats_v1_stats_proto_rawDesc), len(file_stats_v1_stats_proto_rawDesc)))
	})
	return file_stats_v1_stats_proto_rawDescData
}

var file_stats_v1_stats_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_stats_v1_stats_proto_goTypes = []any{
	(*UserStatistics)(nil),                 // 0: stats.v1.UserStatistics
	(*GetStatisticsRequest)(nil),           // 1: stats.v1.GetStatisticsRequest
	(*GetStatisticsResponse)(nil),          // 2: stats.v1.GetStatisticsResponse
	(*HistoryEntry)(nil),                   // 3: stats.v1.HistoryEntry
	(*GetUserActivityDetailsRequest)(nil),  // 4: stats.v1.GetUserActivityDetailsRequest
	(*GetUserActivityDetailsResponse)(nil), // 5: stats.v1.GetUserActivityDetailsResponse
	(*UpdateUserRoleRequest)(nil),          // 6: stats.v1.UpdateUserRoleRequest
	(*UpdateUserRoleResponse)(nil),         // 7: stats.v1.UpdateUserRoleResponse
}
var file_stats_v1_stats_proto_depIdxs = []int32{
	0, // 0: stats.v1.GetStatisticsResponse.users:type_name -> stats.v1.UserStatistics
	3, // 1: stats.v1.GetUserActivityDetailsResponse.recent_activity:type_name -> stats.v1.HistoryEntry
	1, // 2: stats.v1.StatsService.GetStatistics:input_type -> stats.v1.GetStatisticsRequest
	4, // 3: stats.v1.StatsService.GetUserActivityDetails:input_type -> stats.v1.GetUserActivityDetailsRequest
	6, // 4: stats.v1.StatsService.UpdateUserRole:input_type -> stats.v1.UpdateUserRoleRequest
	2, // 5: stats.v1.StatsService.GetStatistics:output_type -> stats.v1.GetStatisticsResponse
	5, // 6: stats.v1.StatsService.GetUserActivityDetails:output_type -> stats.v1.GetUserActivityDetailsResponse
	7, // 7: stats.v1.StatsService.UpdateUserRole:output_type -> stats.v1.UpdateUserRoleResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_stats_v1_stats_proto_init() }
func file_stats_v1_stats_proto_init() {
	if File_stats_v1_stats_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_stats_v1_stats_proto_rawDesc), len(file_stats_v1_stats_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_stats_v1_stats_proto_goTypes,
		DependencyIndexes: file_stats_v1_stats_proto_depIdxs,
		MessageInfos:      file_stats_v1_stats_proto_msgTypes,
	}.Build()
	File_stats_v1_stats_proto = out.File
	file_stats_v1_stats_proto_goTypes = nil
	file_stats_v1_stats_proto_depIdxs = nil
}
