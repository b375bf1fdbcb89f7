// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: offers/v1/offers.proto

package offersv1

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

// OfferItem is one priced line on an offer. Monetary fields are whole
// currency units.
type OfferItem struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Name              string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Unit              string                 `protobuf:"bytes,2,opt,name=unit,proto3" json:"unit,omitempty"`
	Quantity          float64                `protobuf:"fixed64,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice         float64                `protobuf:"fixed64,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	MaterialUnitPrice float64                `protobuf:"fixed64,5,opt,name=material_unit_price,json=materialUnitPrice,proto3" json:"material_unit_price,omitempty"`
	WorkTotal         float64                `protobuf:"fixed64,6,opt,name=work_total,json=workTotal,proto3" json:"work_total,omitempty"`
	MaterialTotal     float64                `protobuf:"fixed64,7,opt,name=material_total,json=materialTotal,proto3" json:"material_total,omitempty"`
	TotalPrice        float64                `protobuf:"fixed64,8,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	Source            string                 `protobuf:"bytes,9,opt,name=source,proto3" json:"source,omitempty"`
	IsNew             bool                   `protobuf:"varint,10,opt,name=is_new,json=isNew,proto3" json:"is_new,omitempty"`
	Description       string                 `protobuf:"bytes,11,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *OfferItem) Reset() {
	*x = OfferItem{}
	mi := &file_offers_v1_offers_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OfferItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OfferItem) ProtoMessage() {}

func (x *OfferItem) ProtoReflect() protoreflect.Message {
	mi := &file_offers_v1_offers_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OfferItem.ProtoReflect.Descriptor instead.
func (*OfferItem) Descriptor() ([]byte, []int) {
	return file_offers_v1_offers_proto_rawDescGZIP(), []int{0}
}

func (x *OfferItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *OfferItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *OfferItem) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OfferItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *OfferItem) GetMaterialUnitPrice() float64 {
	if x != nil {
		return x.MaterialUnitPrice
	}
	return 0
}

func (x *OfferItem) GetWorkTotal() float64 {
	if x != nil {
		return x.WorkTotal
	}
	return 0
}

func (x *OfferItem) GetMaterialTotal() float64 {
	if x != nil {
		return x.MaterialTotal
	}
	return 0
}

func (x *OfferItem) GetTotalPrice() float64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

func (x *OfferItem) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *OfferItem) GetIsNew() bool {
	if x != nil {
		return x.IsNew
	}
	return false
}

func (x *OfferItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type GenerateOfferRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Free-text renovation requirement from the contractor.
	UserInput string `protobuf:"bytes,1,opt,name=user_input,json=userInput,proto3" json:"user_input,omitempty"`
	// Lines already on an in-progress offer; the model must not duplicate them.
	ExistingItems []*OfferItem `protobuf:"bytes,2,rep,name=existing_items,json=existingItems,proto3" json:"existing_items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateOfferRequest) Reset() {
	*x = GenerateOfferRequest{}
	mi := &file_offers_v1_offers_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateOfferRequest) ProtoMessage() {}

func (x *GenerateOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_offers_v1_offers_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateOfferRequest.ProtoReflect.Descriptor instead.
func (*GenerateOfferRequest) Descriptor() ([]byte, []int) {
	return file_offers_v1_offers_proto_rawDescGZIP(), []int{1}
}

func (x *GenerateOfferRequest) GetUserInput() string {
	if x != nil {
		return x.UserInput
	}
	return ""
}

func (x *GenerateOfferRequest) GetExistingItems() []*OfferItem {
	if x != nil {
		return x.ExistingItems
	}
	return nil
}

type GenerateOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Error         string                 `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	WorkId        string                 `protobuf:"bytes,3,opt,name=work_id,json=workId,proto3" json:"work_id,omitempty"`
	RequirementId string                 `protobuf:"bytes,4,opt,name=requirement_id,json=requirementId,proto3" json:"requirement_id,omitempty"`
	OfferId       string                 `protobuf:"bytes,5,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	Title         string                 `protobuf:"bytes,6,opt,name=title,proto3" json:"title,omitempty"`
	Location      string                 `protobuf:"bytes,7,opt,name=location,proto3" json:"location,omitempty"`
	CustomerName  string                 `protobuf:"bytes,8,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	EstimatedTime string                 `protobuf:"bytes,9,opt,name=estimated_time,json=estimatedTime,proto3" json:"estimated_time,omitempty"`
	OfferSummary  string                 `protobuf:"bytes,10,opt,name=offer_summary,json=offerSummary,proto3" json:"offer_summary,omitempty"`
	Items         []*OfferItem           `protobuf:"bytes,11,rep,name=items,proto3" json:"items,omitempty"`
	Questions     []string               `protobuf:"bytes,12,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateOfferResponse) Reset() {
	*x = GenerateOfferResponse{}
	mi := &file_offers_v1_offers_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateOfferResponse) ProtoMessage() {}

func (x *GenerateOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_offers_v1_offers_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateOfferResponse.ProtoReflect.Descriptor instead.
func (*GenerateOfferResponse) Descriptor() ([]byte, []int) {
	return file_offers_v1_offers_proto_rawDescGZIP(), []int{2}
}

func (x *GenerateOfferResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *GenerateOfferResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *GenerateOfferResponse) GetWorkId() string {
	if x != nil {
		return x.WorkId
	}
	return ""
}

func (x *GenerateOfferResponse) GetRequirementId() string {
	if x != nil {
		return x.RequirementId
	}
	return ""
}

func (x *GenerateOfferResponse) GetOfferId() string {
	if x != nil {
		return x.OfferId
	}
	return ""
}

func (x *GenerateOfferResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *GenerateOfferResponse) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *GenerateOfferResponse) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *GenerateOfferResponse) GetEstimatedTime() string {
	if x != nil {
		return x.EstimatedTime
	}
	return ""
}

func (x *GenerateOfferResponse) GetOfferSummary() string {
	if x != nil {
		return x.OfferSummary
	}
	return ""
}

func (x *GenerateOfferResponse) GetItems() []*OfferItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *GenerateOfferResponse) GetQuestions() []string {
	if x != nil {
		return x.Questions
	}
	return nil
}

type ConvertOfferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Location      string                 `protobuf:"bytes,2,opt,name=location,proto3" json:"location,omitempty"`
	CustomerName  string                 `protobuf:"bytes,3,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	EstimatedTime string                 `protobuf:"bytes,4,opt,name=estimated_time,json=estimatedTime,proto3" json:"estimated_time,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	OfferSummary  string                 `protobuf:"bytes,6,opt,name=offer_summary,json=offerSummary,proto3" json:"offer_summary,omitempty"`
	TotalPrice    float64                `protobuf:"fixed64,7,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	Items         []*OfferItem           `protobuf:"bytes,8,rep,name=items,proto3" json:"items,omitempty"`
	Notes         []string               `protobuf:"bytes,9,rep,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConvertOfferRequest) Reset() {
	*x = ConvertOfferRequest{}
	mi := &file_offers_v1_offers_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConvertOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConvertOfferRequest) ProtoMessage() {}

func (x *ConvertOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_offers_v1_offers_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConvertOfferRequest.ProtoReflect.Descriptor instead.
func (*ConvertOfferRequest) Descriptor() ([]byte, []int) {
	return file_offers_v1_offers_proto_rawDescGZIP(), []int{3}
}

func (x *ConvertOfferRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ConvertOfferRequest) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *ConvertOfferRequest) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *ConvertOfferRequest) GetEstimatedTime() string {
	if x != nil {
		return x.EstimatedTime
	}
	return ""
}

func (x *ConvertOfferRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ConvertOfferRequest) GetOfferSummary() string {
	if x != nil {
		return x.OfferSummary
	}
	return ""
}

func (x *ConvertOfferRequest) GetTotalPrice() float64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

func (x *ConvertOfferRequest) GetItems() []*OfferItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ConvertOfferRequest) GetNotes() []string {
	if x != nil {
		return x.Notes
	}
	return nil
}

type ConvertOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WorkId        string                 `protobuf:"bytes,1,opt,name=work_id,json=workId,proto3" json:"work_id,omitempty"`
	RequirementId string                 `protobuf:"bytes,2,opt,name=requirement_id,json=requirementId,proto3" json:"requirement_id,omitempty"`
	OfferId       string                 `protobuf:"bytes,3,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConvertOfferResponse) Reset() {
	*x = ConvertOfferResponse{}
	mi := &file_offers_v1_offers_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConvertOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConvertOfferResponse) ProtoMessage() {}

func (x *ConvertOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_offers_v1_offers_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConvertOfferResponse.ProtoReflect.Descriptor instead.
func (*ConvertOfferResponse) Descriptor() ([]byte, []int) {
	return file_offers_v1_offers_proto_rawDescGZIP(), []int{4}
}

func (x *ConvertOfferResponse) GetWorkId() string {
	if x != nil {
		return x.WorkId
	}
	return ""
}

func (x *ConvertOfferResponse) GetRequirementId() string {
	if x != nil {
		return x.RequirementId
	}
	return ""
}

func (x *ConvertOfferResponse) GetOfferId() string {
	if x != nil {
		return x.OfferId
	}
	return ""
}

var File_offers_v1_offers_proto protoreflect.FileDescriptor

const file_offers_v1_offers_proto_rawDesc = "" +
	"\n" +
	"\x16offers/v1/offers.proto\x12\toffers.v1\"\xd6\x02\n" +
	"\tOfferItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04unit\x18\x02 \x01(\tR\x04unit\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\x01R\tunitPrice\x12.\n" +
	"\x13material_unit_price\x18\x05 \x01(\x01R\x11materialUnitPrice\x12\x1d\n" +
	"\n" +
	"work_total\x18\x06 \x01(\x01R\tworkTotal\x12%\n" +
	"\x0ematerial_total\x18\a \x01(\x01R\rmaterialTotal\x12\x1f\n" +
	"\vtotal_price\x18\b \x01(\x01R\n" +
	"totalPrice\x12\x16\n" +
	"\x06source\x18\t \x01(\tR\x06source\x12\x15\n" +
	"\x06is_new\x18\n" +
	" \x01(\bR\x05isNew\x12 \n" +
	"\vdescription\x18\v \x01(\tR\vdescription\"r\n" +
	"\x14GenerateOfferRequest\x12\x1d\n" +
	"\n" +
	"user_input\x18\x01 \x01(\tR\tuserInput\x12;\n" +
	"\x0eexisting_items\x18\x02 \x03(\v2\x14.offers.v1.OfferItemR\rexistingItems\"\x8f\x03\n" +
	"\x15GenerateOfferResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error\x12\x17\n" +
	"\awork_id\x18\x03 \x01(\tR\x06workId\x12%\n" +
	"\x0erequirement_id\x18\x04 \x01(\tR\rrequirementId\x12\x19\n" +
	"\boffer_id\x18\x05 \x01(\tR\aofferId\x12\x14\n" +
	"\x05title\x18\x06 \x01(\tR\x05title\x12\x1a\n" +
	"\blocation\x18\a \x01(\tR\blocation\x12#\n" +
	"\rcustomer_name\x18\b \x01(\tR\fcustomerName\x12%\n" +
	"\x0eestimated_time\x18\t \x01(\tR\restimatedTime\x12#\n" +
	"\roffer_summary\x18\n" +
	" \x01(\tR\fofferSummary\x12*\n" +
	"\x05items\x18\v \x03(\v2\x14.offers.v1.OfferItemR\x05items\x12\x1c\n" +
	"\tquestions\x18\f \x03(\tR\tquestions\"\xbd\x02\n" +
	"\x13ConvertOfferRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12\x1a\n" +
	"\blocation\x18\x02 \x01(\tR\blocation\x12#\n" +
	"\rcustomer_name\x18\x03 \x01(\tR\fcustomerName\x12%\n" +
	"\x0eestimated_time\x18\x04 \x01(\tR\restimatedTime\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12#\n" +
	"\roffer_summary\x18\x06 \x01(\tR\fofferSummary\x12\x1f\n" +
	"\vtotal_price\x18\a \x01(\x01R\n" +
	"totalPrice\x12*\n" +
	"\x05items\x18\b \x03(\v2\x14.offers.v1.OfferItemR\x05items\x12\x14\n" +
	"\x05notes\x18\t \x03(\tR\x05notes\"q\n" +
	"\x14ConvertOfferResponse\x12\x17\n" +
	"\awork_id\x18\x01 \x01(\tR\x06workId\x12%\n" +
	"\x0erequirement_id\x18\x02 \x01(\tR\rrequirementId\x12\x19\n" +
	"\boffer_id\x18\x03 \x01(\tR\aofferId2\xb4\x01\n" +
	"\rOffersService\x12R\n" +
	"\rGenerateOffer\x12\x1f.offers.v1.GenerateOfferRequest\x1a .offers.v1.GenerateOfferResponse\x12O\n" +
	"\fConvertOffer\x12\x1e.offers.v1.ConvertOfferRequest\x1a\x1f.offers.v1.ConvertOfferResponseB:Z8github.com/Zoli1212/awsflow/gen/proto/offers/v1;offersv1b\x06proto3"

var (
	file_offers_v1_offers_proto_rawDescOnce sync.Once
	file_offers_v1_offers_proto_rawDescData []byte
)

func file_offers_v1_offers_proto_rawDescGZIP() []byte {
	file_offers_v1_offers_proto_rawDescOnce.Do(func() {
		file_offers_v1_offers_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_offers_v1_offers_proto_rawDesc), len(file_offers_v1_offers_proto_rawDesc)))
	})
	return file_offers_v1_offers_proto_rawDescData
}

var file_offers_v1_offers_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_offers_v1_offers_proto_goTypes = []any{
	(*OfferItem)(nil),             // 0: offers.v1.OfferItem
	(*GenerateOfferRequest)(nil),  // 1: offers.v1.GenerateOfferRequest
	(*GenerateOfferResponse)(nil), // 2: offers.v1.GenerateOfferResponse
	(*ConvertOfferRequest)(nil),   // 3: offers.v1.ConvertOfferRequest
	(*ConvertOfferResponse)(nil),  // 4: offers.v1.ConvertOfferResponse
}
var file_offers_v1_offers_proto_depIdxs = []int32{
	0, // 0: offers.v1.GenerateOfferRequest.existing_items:type_name -> offers.v1.OfferItem
	0, // 1: offers.v1.GenerateOfferResponse.items:type_name -> offers.v1.OfferItem
	0, // 2: offers.v1.ConvertOfferRequest.items:type_name -> offers.v1.OfferItem
	1, // 3: offers.v1.OffersService.GenerateOffer:input_type -> offers.v1.GenerateOfferRequest
	3, // 4: offers.v1.OffersService.ConvertOffer:input_type -> offers.v1.ConvertOfferRequest
	2, // 5: offers.v1.OffersService.GenerateOffer:output_type -> offers.v1.GenerateOfferResponse
	4, // 6: offers.v1.OffersService.ConvertOffer:output_type -> offers.v1.ConvertOfferResponse
	5, // [5:7] is the sub-list for method output_type
	3, // [3:5] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_offers_v1_offers_proto_init() }
func file_offers_v1_offers_proto_init() {
	if File_offers_v1_offers_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_offers_v1_offers_proto_rawDesc), len(file_offers_v1_offers_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_offers_v1_offers_proto_goTypes,
		DependencyIndexes: file_offers_v1_offers_proto_depIdxs,
		MessageInfos:      file_offers_v1_offers_proto_msgTypes,
	}.Build()
	File_offers_v1_offers_proto = out.File
	file_offers_v1_offers_proto_goTypes = nil
	file_offers_v1_offers_proto_depIdxs = nil
}
