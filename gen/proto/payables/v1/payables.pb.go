// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: payables/v1/payables.proto

package payablespb

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

type DocumentUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"` // raw NFe XML
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentUpload) Reset() {
	*x = DocumentUpload{}
	mi := &file_payables_v1_payables_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentUpload) ProtoMessage() {}

func (x *DocumentUpload) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentUpload.ProtoReflect.Descriptor instead.
func (*DocumentUpload) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{0}
}

func (x *DocumentUpload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *DocumentUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []*DocumentUpload      `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentsRequest) Reset() {
	*x = UploadDocumentsRequest{}
	mi := &file_payables_v1_payables_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentsRequest) ProtoMessage() {}

func (x *UploadDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentsRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentsRequest) GetFiles() []*DocumentUpload {
	if x != nil {
		return x.Files
	}
	return nil
}

type UploadError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadError) Reset() {
	*x = UploadError{}
	mi := &file_payables_v1_payables_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadError) ProtoMessage() {}

func (x *UploadError) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadError.ProtoReflect.Descriptor instead.
func (*UploadError) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{2}
}

func (x *UploadError) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *UploadError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type UploadDocumentsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Success        bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"` // true when at least one document was processed
	ProcessedCount uint32                 `protobuf:"varint,2,opt,name=processed_count,json=processedCount,proto3" json:"processed_count,omitempty"`
	ErrorCount     uint32                 `protobuf:"varint,3,opt,name=error_count,json=errorCount,proto3" json:"error_count,omitempty"`
	Errors         []*UploadError         `protobuf:"bytes,4,rep,name=errors,proto3" json:"errors,omitempty"`
	DocumentIds    []string               `protobuf:"bytes,5,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDocumentsResponse) Reset() {
	*x = UploadDocumentsResponse{}
	mi := &file_payables_v1_payables_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentsResponse) ProtoMessage() {}

func (x *UploadDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentsResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{3}
}

func (x *UploadDocumentsResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *UploadDocumentsResponse) GetProcessedCount() uint32 {
	if x != nil {
		return x.ProcessedCount
	}
	return 0
}

func (x *UploadDocumentsResponse) GetErrorCount() uint32 {
	if x != nil {
		return x.ErrorCount
	}
	return 0
}

func (x *UploadDocumentsResponse) GetErrors() []*UploadError {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *UploadDocumentsResponse) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

type FiscalDocument struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccessKey      string                 `protobuf:"bytes,2,opt,name=access_key,json=accessKey,proto3" json:"access_key,omitempty"`
	Number         string                 `protobuf:"bytes,3,opt,name=number,proto3" json:"number,omitempty"`
	Series         string                 `protobuf:"bytes,4,opt,name=series,proto3" json:"series,omitempty"`
	IssueDate      string                 `protobuf:"bytes,5,opt,name=issue_date,json=issueDate,proto3" json:"issue_date,omitempty"` // YYYY-MM-DD, empty when the source had none
	IssuerTaxId    string                 `protobuf:"bytes,6,opt,name=issuer_tax_id,json=issuerTaxId,proto3" json:"issuer_tax_id,omitempty"`
	IssuerName     string                 `protobuf:"bytes,7,opt,name=issuer_name,json=issuerName,proto3" json:"issuer_name,omitempty"`
	RecipientTaxId string                 `protobuf:"bytes,8,opt,name=recipient_tax_id,json=recipientTaxId,proto3" json:"recipient_tax_id,omitempty"`
	RecipientName  string                 `protobuf:"bytes,9,opt,name=recipient_name,json=recipientName,proto3" json:"recipient_name,omitempty"`
	TotalAmount    string                 `protobuf:"bytes,10,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"` // decimal string, 2 places
	IcmsAmount     string                 `protobuf:"bytes,11,opt,name=icms_amount,json=icmsAmount,proto3" json:"icms_amount,omitempty"`
	PisAmount      string                 `protobuf:"bytes,12,opt,name=pis_amount,json=pisAmount,proto3" json:"pis_amount,omitempty"`
	CofinsAmount   string                 `protobuf:"bytes,13,opt,name=cofins_amount,json=cofinsAmount,proto3" json:"cofins_amount,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *FiscalDocument) Reset() {
	*x = FiscalDocument{}
	mi := &file_payables_v1_payables_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FiscalDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FiscalDocument) ProtoMessage() {}

func (x *FiscalDocument) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FiscalDocument.ProtoReflect.Descriptor instead.
func (*FiscalDocument) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{4}
}

func (x *FiscalDocument) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FiscalDocument) GetAccessKey() string {
	if x != nil {
		return x.AccessKey
	}
	return ""
}

func (x *FiscalDocument) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

func (x *FiscalDocument) GetSeries() string {
	if x != nil {
		return x.Series
	}
	return ""
}

func (x *FiscalDocument) GetIssueDate() string {
	if x != nil {
		return x.IssueDate
	}
	return ""
}

func (x *FiscalDocument) GetIssuerTaxId() string {
	if x != nil {
		return x.IssuerTaxId
	}
	return ""
}

func (x *FiscalDocument) GetIssuerName() string {
	if x != nil {
		return x.IssuerName
	}
	return ""
}

func (x *FiscalDocument) GetRecipientTaxId() string {
	if x != nil {
		return x.RecipientTaxId
	}
	return ""
}

func (x *FiscalDocument) GetRecipientName() string {
	if x != nil {
		return x.RecipientName
	}
	return ""
}

func (x *FiscalDocument) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *FiscalDocument) GetIcmsAmount() string {
	if x != nil {
		return x.IcmsAmount
	}
	return ""
}

func (x *FiscalDocument) GetPisAmount() string {
	if x != nil {
		return x.PisAmount
	}
	return ""
}

func (x *FiscalDocument) GetCofinsAmount() string {
	if x != nil {
		return x.CofinsAmount
	}
	return ""
}

func (x *FiscalDocument) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *FiscalDocument) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Installment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	SupplierName  string                 `protobuf:"bytes,4,opt,name=supplier_name,json=supplierName,proto3" json:"supplier_name,omitempty"`
	Amount        string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`                  // decimal string, 2 places
	DueDate       string                 `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"` // YYYY-MM-DD
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`                  // OPEN | OVERDUE | PAID (OVERDUE is derived)
	Category      string                 `protobuf:"bytes,8,opt,name=category,proto3" json:"category,omitempty"`
	PaidAt        string                 `protobuf:"bytes,9,opt,name=paid_at,json=paidAt,proto3" json:"paid_at,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Installment) Reset() {
	*x = Installment{}
	mi := &file_payables_v1_payables_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Installment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Installment) ProtoMessage() {}

func (x *Installment) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Installment.ProtoReflect.Descriptor instead.
func (*Installment) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{5}
}

func (x *Installment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Installment) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Installment) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Installment) GetSupplierName() string {
	if x != nil {
		return x.SupplierName
	}
	return ""
}

func (x *Installment) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Installment) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Installment) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Installment) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Installment) GetPaidAt() string {
	if x != nil {
		return x.PaidAt
	}
	return ""
}

func (x *Installment) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Installment) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListInstallmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                  // optional: OPEN | OVERDUE | PAID
	Supplier      string                 `protobuf:"bytes,2,opt,name=supplier,proto3" json:"supplier,omitempty"`              // optional substring match
	DueFrom       string                 `protobuf:"bytes,3,opt,name=due_from,json=dueFrom,proto3" json:"due_from,omitempty"` // optional YYYY-MM-DD
	DueTo         string                 `protobuf:"bytes,4,opt,name=due_to,json=dueTo,proto3" json:"due_to,omitempty"`       // optional YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInstallmentsRequest) Reset() {
	*x = ListInstallmentsRequest{}
	mi := &file_payables_v1_payables_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInstallmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInstallmentsRequest) ProtoMessage() {}

func (x *ListInstallmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInstallmentsRequest.ProtoReflect.Descriptor instead.
func (*ListInstallmentsRequest) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{6}
}

func (x *ListInstallmentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListInstallmentsRequest) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ListInstallmentsRequest) GetDueFrom() string {
	if x != nil {
		return x.DueFrom
	}
	return ""
}

func (x *ListInstallmentsRequest) GetDueTo() string {
	if x != nil {
		return x.DueTo
	}
	return ""
}

type ListInstallmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Installments  []*Installment         `protobuf:"bytes,1,rep,name=installments,proto3" json:"installments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInstallmentsResponse) Reset() {
	*x = ListInstallmentsResponse{}
	mi := &file_payables_v1_payables_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInstallmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInstallmentsResponse) ProtoMessage() {}

func (x *ListInstallmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInstallmentsResponse.ProtoReflect.Descriptor instead.
func (*ListInstallmentsResponse) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{7}
}

func (x *ListInstallmentsResponse) GetInstallments() []*Installment {
	if x != nil {
		return x.Installments
	}
	return nil
}

type MarkPaidRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	InstallmentIds []string               `protobuf:"bytes,1,rep,name=installment_ids,json=installmentIds,proto3" json:"installment_ids,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MarkPaidRequest) Reset() {
	*x = MarkPaidRequest{}
	mi := &file_payables_v1_payables_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkPaidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkPaidRequest) ProtoMessage() {}

func (x *MarkPaidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkPaidRequest.ProtoReflect.Descriptor instead.
func (*MarkPaidRequest) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{8}
}

func (x *MarkPaidRequest) GetInstallmentIds() []string {
	if x != nil {
		return x.InstallmentIds
	}
	return nil
}

type MarkPaidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UpdatedCount  uint32                 `protobuf:"varint,1,opt,name=updated_count,json=updatedCount,proto3" json:"updated_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkPaidResponse) Reset() {
	*x = MarkPaidResponse{}
	mi := &file_payables_v1_payables_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkPaidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkPaidResponse) ProtoMessage() {}

func (x *MarkPaidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkPaidResponse.ProtoReflect.Descriptor instead.
func (*MarkPaidResponse) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{9}
}

func (x *MarkPaidResponse) GetUpdatedCount() uint32 {
	if x != nil {
		return x.UpdatedCount
	}
	return 0
}

type GetSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummaryRequest) Reset() {
	*x = GetSummaryRequest{}
	mi := &file_payables_v1_payables_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryRequest) ProtoMessage() {}

func (x *GetSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetSummaryRequest) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{10}
}

type StatusSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Count         uint32                 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	TotalAmount   string                 `protobuf:"bytes,3,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusSummary) Reset() {
	*x = StatusSummary{}
	mi := &file_payables_v1_payables_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusSummary) ProtoMessage() {}

func (x *StatusSummary) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusSummary.ProtoReflect.Descriptor instead.
func (*StatusSummary) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{11}
}

func (x *StatusSummary) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StatusSummary) GetCount() uint32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *StatusSummary) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

type GetSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summaries     []*StatusSummary       `protobuf:"bytes,1,rep,name=summaries,proto3" json:"summaries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummaryResponse) Reset() {
	*x = GetSummaryResponse{}
	mi := &file_payables_v1_payables_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryResponse) ProtoMessage() {}

func (x *GetSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetSummaryResponse) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{12}
}

func (x *GetSummaryResponse) GetSummaries() []*StatusSummary {
	if x != nil {
		return x.Summaries
	}
	return nil
}

type ExportInstallmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Supplier      string                 `protobuf:"bytes,2,opt,name=supplier,proto3" json:"supplier,omitempty"`
	DueFrom       string                 `protobuf:"bytes,3,opt,name=due_from,json=dueFrom,proto3" json:"due_from,omitempty"`
	DueTo         string                 `protobuf:"bytes,4,opt,name=due_to,json=dueTo,proto3" json:"due_to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInstallmentsRequest) Reset() {
	*x = ExportInstallmentsRequest{}
	mi := &file_payables_v1_payables_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInstallmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInstallmentsRequest) ProtoMessage() {}

func (x *ExportInstallmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInstallmentsRequest.ProtoReflect.Descriptor instead.
func (*ExportInstallmentsRequest) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{13}
}

func (x *ExportInstallmentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportInstallmentsRequest) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ExportInstallmentsRequest) GetDueFrom() string {
	if x != nil {
		return x.DueFrom
	}
	return ""
}

func (x *ExportInstallmentsRequest) GetDueTo() string {
	if x != nil {
		return x.DueTo
	}
	return ""
}

type ExportInstallmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInstallmentsResponse) Reset() {
	*x = ExportInstallmentsResponse{}
	mi := &file_payables_v1_payables_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInstallmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInstallmentsResponse) ProtoMessage() {}

func (x *ExportInstallmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInstallmentsResponse.ProtoReflect.Descriptor instead.
func (*ExportInstallmentsResponse) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{14}
}

func (x *ExportInstallmentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportInstallmentsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Issuer        string                 `protobuf:"bytes,1,opt,name=issuer,proto3" json:"issuer,omitempty"`                     // optional substring match
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // optional YYYY-MM-DD issue-date bound
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_payables_v1_payables_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{15}
}

func (x *ListDocumentsRequest) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *ListDocumentsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListDocumentsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*FiscalDocument      `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_payables_v1_payables_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{16}
}

func (x *ListDocumentsResponse) GetDocuments() []*FiscalDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IncludeRaw    bool                   `protobuf:"varint,2,opt,name=include_raw,json=includeRaw,proto3" json:"include_raw,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_payables_v1_payables_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{17}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetDocumentRequest) GetIncludeRaw() bool {
	if x != nil {
		return x.IncludeRaw
	}
	return false
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *FiscalDocument        `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	RawContent    string                 `protobuf:"bytes,2,opt,name=raw_content,json=rawContent,proto3" json:"raw_content,omitempty"` // original XML, only when include_raw
	Installments  []*Installment         `protobuf:"bytes,3,rep,name=installments,proto3" json:"installments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_payables_v1_payables_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payables_v1_payables_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_payables_v1_payables_proto_rawDescGZIP(), []int{18}
}

func (x *GetDocumentResponse) GetDocument() *FiscalDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetRawContent() string {
	if x != nil {
		return x.RawContent
	}
	return ""
}

func (x *GetDocumentResponse) GetInstallments() []*Installment {
	if x != nil {
		return x.Installments
	}
	return nil
}

var File_payables_v1_payables_proto protoreflect.FileDescriptor

const file_payables_v1_payables_proto_rawDesc = "" +
	"\n" +
	"\x1apayables/v1/payables.proto\x12\vpayables.v1\"F\n" +
	"\x0eDocumentUpload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"K\n" +
	"\x16UploadDocumentsRequest\x121\n" +
	"\x05files\x18\x01 \x03(\v2\x1b.payables.v1.DocumentUploadR\x05files\"?\n" +
	"\vUploadError\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xd2\x01\n" +
	"\x17UploadDocumentsResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12'\n" +
	"\x0fprocessed_count\x18\x02 \x01(\rR\x0eprocessedCount\x12\x1f\n" +
	"\verror_count\x18\x03 \x01(\rR\n" +
	"errorCount\x120\n" +
	"\x06errors\x18\x04 \x03(\v2\x18.payables.v1.UploadErrorR\x06errors\x12!\n" +
	"\fdocument_ids\x18\x05 \x03(\tR\vdocumentIds\"\xea\x03\n" +
	"\x0eFiscalDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"access_key\x18\x02 \x01(\tR\taccessKey\x12\x16\n" +
	"\x06number\x18\x03 \x01(\tR\x06number\x12\x16\n" +
	"\x06series\x18\x04 \x01(\tR\x06series\x12\x1d\n" +
	"\n" +
	"issue_date\x18\x05 \x01(\tR\tissueDate\x12\"\n" +
	"\rissuer_tax_id\x18\x06 \x01(\tR\vissuerTaxId\x12\x1f\n" +
	"\vissuer_name\x18\a \x01(\tR\n" +
	"issuerName\x12(\n" +
	"\x10recipient_tax_id\x18\b \x01(\tR\x0erecipientTaxId\x12%\n" +
	"\x0erecipient_name\x18\t \x01(\tR\rrecipientName\x12!\n" +
	"\ftotal_amount\x18\n" +
	" \x01(\tR\vtotalAmount\x12\x1f\n" +
	"\vicms_amount\x18\v \x01(\tR\n" +
	"icmsAmount\x12\x1d\n" +
	"\n" +
	"pis_amount\x18\f \x01(\tR\tpisAmount\x12#\n" +
	"\rcofins_amount\x18\r \x01(\tR\fcofinsAmount\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\tR\tupdatedAt\"\xc3\x02\n" +
	"\vInstallment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12#\n" +
	"\rsupplier_name\x18\x04 \x01(\tR\fsupplierName\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\tR\x06amount\x12\x19\n" +
	"\bdue_date\x18\x06 \x01(\tR\adueDate\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\b \x01(\tR\bcategory\x12\x17\n" +
	"\apaid_at\x18\t \x01(\tR\x06paidAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\x7f\n" +
	"\x17ListInstallmentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1a\n" +
	"\bsupplier\x18\x02 \x01(\tR\bsupplier\x12\x19\n" +
	"\bdue_from\x18\x03 \x01(\tR\adueFrom\x12\x15\n" +
	"\x06due_to\x18\x04 \x01(\tR\x05dueTo\"X\n" +
	"\x18ListInstallmentsResponse\x12<\n" +
	"\finstallments\x18\x01 \x03(\v2\x18.payables.v1.InstallmentR\finstallments\":\n" +
	"\x0fMarkPaidRequest\x12'\n" +
	"\x0finstallment_ids\x18\x01 \x03(\tR\x0einstallmentIds\"7\n" +
	"\x10MarkPaidResponse\x12#\n" +
	"\rupdated_count\x18\x01 \x01(\rR\fupdatedCount\"\x13\n" +
	"\x11GetSummaryRequest\"`\n" +
	"\rStatusSummary\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05count\x18\x02 \x01(\rR\x05count\x12!\n" +
	"\ftotal_amount\x18\x03 \x01(\tR\vtotalAmount\"N\n" +
	"\x12GetSummaryResponse\x128\n" +
	"\tsummaries\x18\x01 \x03(\v2\x1a.payables.v1.StatusSummaryR\tsummaries\"\x81\x01\n" +
	"\x19ExportInstallmentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1a\n" +
	"\bsupplier\x18\x02 \x01(\tR\bsupplier\x12\x19\n" +
	"\bdue_from\x18\x03 \x01(\tR\adueFrom\x12\x15\n" +
	"\x06due_to\x18\x04 \x01(\tR\x05dueTo\"L\n" +
	"\x1aExportInstallmentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"d\n" +
	"\x14ListDocumentsRequest\x12\x16\n" +
	"\x06issuer\x18\x01 \x01(\tR\x06issuer\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"R\n" +
	"\x15ListDocumentsResponse\x129\n" +
	"\tdocuments\x18\x01 \x03(\v2\x1b.payables.v1.FiscalDocumentR\tdocuments\"E\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vinclude_raw\x18\x02 \x01(\bR\n" +
	"includeRaw\"\xad\x01\n" +
	"\x13GetDocumentResponse\x127\n" +
	"\bdocument\x18\x01 \x01(\v2\x1b.payables.v1.FiscalDocumentR\bdocument\x12\x1f\n" +
	"\vraw_content\x18\x02 \x01(\tR\n" +
	"rawContent\x12<\n" +
	"\finstallments\x18\x03 \x03(\v2\x18.payables.v1.InstallmentR\finstallments2p\n" +
	"\x10IngestionService\x12\\\n" +
	"\x0fUploadDocuments\x12#.payables.v1.UploadDocumentsRequest\x1a$.payables.v1.UploadDocumentsResponse2\xf1\x02\n" +
	"\x0fPayablesService\x12_\n" +
	"\x10ListInstallments\x12$.payables.v1.ListInstallmentsRequest\x1a%.payables.v1.ListInstallmentsResponse\x12G\n" +
	"\bMarkPaid\x12\x1c.payables.v1.MarkPaidRequest\x1a\x1d.payables.v1.MarkPaidResponse\x12M\n" +
	"\n" +
	"GetSummary\x12\x1e.payables.v1.GetSummaryRequest\x1a\x1f.payables.v1.GetSummaryResponse\x12e\n" +
	"\x12ExportInstallments\x12&.payables.v1.ExportInstallmentsRequest\x1a'.payables.v1.ExportInstallmentsResponse2\xbc\x01\n" +
	"\x10DocumentsService\x12V\n" +
	"\rListDocuments\x12!.payables.v1.ListDocumentsRequest\x1a\".payables.v1.ListDocumentsResponse\x12P\n" +
	"\vGetDocument\x12\x1f.payables.v1.GetDocumentRequest\x1a .payables.v1.GetDocumentResponseBHZFgithub.com/evozago/fluxo-e-dre-sub001/gen/proto/payables/v1;payablespbb\x06proto3"

var (
	file_payables_v1_payables_proto_rawDescOnce sync.Once
	file_payables_v1_payables_proto_rawDescData []byte
)

func file_payables_v1_payables_proto_rawDescGZIP() []byte {
	file_payables_v1_payables_proto_rawDescOnce.Do(func() {
		file_payables_v1_payables_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_payables_v1_payables_proto_rawDesc), len(file_payables_v1_payables_proto_rawDesc)))
	})
	return file_payables_v1_payables_proto_rawDescData
}

var file_payables_v1_payables_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_payables_v1_payables_proto_goTypes = []any{
	(*DocumentUpload)(nil),             // 0: payables.v1.DocumentUpload
	(*UploadDocumentsRequest)(nil),     // 1: payables.v1.UploadDocumentsRequest
	(*UploadError)(nil),                // 2: payables.v1.UploadError
	(*UploadDocumentsResponse)(nil),    // 3: payables.v1.UploadDocumentsResponse
	(*FiscalDocument)(nil),             // 4: payables.v1.FiscalDocument
	(*Installment)(nil),                // 5: payables.v1.Installment
	(*ListInstallmentsRequest)(nil),    // 6: payables.v1.ListInstallmentsRequest
	(*ListInstallmentsResponse)(nil),   // 7: payables.v1.ListInstallmentsResponse
	(*MarkPaidRequest)(nil),            // 8: payables.v1.MarkPaidRequest
	(*MarkPaidResponse)(nil),           // 9: payables.v1.MarkPaidResponse
	(*GetSummaryRequest)(nil),          // 10: payables.v1.GetSummaryRequest
	(*StatusSummary)(nil),              // 11: payables.v1.StatusSummary
	(*GetSummaryResponse)(nil),         // 12: payables.v1.GetSummaryResponse
	(*ExportInstallmentsRequest)(nil),  // 13: payables.v1.ExportInstallmentsRequest
	(*ExportInstallmentsResponse)(nil), // 14: payables.v1.ExportInstallmentsResponse
	(*ListDocumentsRequest)(nil),       // 15: payables.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 16: payables.v1.ListDocumentsResponse
	(*GetDocumentRequest)(nil),         // 17: payables.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),        // 18: payables.v1.GetDocumentResponse
}
var file_payables_v1_payables_proto_depIdxs = []int32{
	0,  // 0: payables.v1.UploadDocumentsRequest.files:type_name -> payables.v1.DocumentUpload
	2,  // 1: payables.v1.UploadDocumentsResponse.errors:type_name -> payables.v1.UploadError
	5,  // 2: payables.v1.ListInstallmentsResponse.installments:type_name -> payables.v1.Installment
	11, // 3: payables.v1.GetSummaryResponse.summaries:type_name -> payables.v1.StatusSummary
	4,  // 4: payables.v1.ListDocumentsResponse.documents:type_name -> payables.v1.FiscalDocument
	4,  // 5: payables.v1.GetDocumentResponse.document:type_name -> payables.v1.FiscalDocument
	5,  // 6: payables.v1.GetDocumentResponse.installments:type_name -> payables.v1.Installment
	1,  // 7: payables.v1.IngestionService.UploadDocuments:input_type -> payables.v1.UploadDocumentsRequest
	6,  // 8: payables.v1.PayablesService.ListInstallments:input_type -> payables.v1.ListInstallmentsRequest
	8,  // 9: payables.v1.PayablesService.MarkPaid:input_type -> payables.v1.MarkPaidRequest
	10, // 10: payables.v1.PayablesService.GetSummary:input_type -> payables.v1.GetSummaryRequest
	13, // 11: payables.v1.PayablesService.ExportInstallments:input_type -> payables.v1.ExportInstallmentsRequest
	15, // 12: payables.v1.DocumentsService.ListDocuments:input_type -> payables.v1.ListDocumentsRequest
	17, // 13: payables.v1.DocumentsService.GetDocument:input_type -> payables.v1.GetDocumentRequest
	3,  // 14: payables.v1.IngestionService.UploadDocuments:output_type -> payables.v1.UploadDocumentsResponse
	7,  // 15: payables.v1.PayablesService.ListInstallments:output_type -> payables.v1.ListInstallmentsResponse
	9,  // 16: payables.v1.PayablesService.MarkPaid:output_type -> payables.v1.MarkPaidResponse
	12, // 17: payables.v1.PayablesService.GetSummary:output_type -> payables.v1.GetSummaryResponse
	14, // 18: payables.v1.PayablesService.ExportInstallments:output_type -> payables.v1.ExportInstallmentsResponse
	16, // 19: payables.v1.DocumentsService.ListDocuments:output_type -> payables.v1.ListDocumentsResponse
	18, // 20: payables.v1.DocumentsService.GetDocument:output_type -> payables.v1.GetDocumentResponse
	14, // [14:21] is the sub-list for method output_type
	7,  // [7:14] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_payables_v1_payables_proto_init() }
func file_payables_v1_payables_proto_init() {
	if File_payables_v1_payables_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_payables_v1_payables_proto_rawDesc), len(file_payables_v1_payables_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_payables_v1_payables_proto_goTypes,
		DependencyIndexes: file_payables_v1_payables_proto_depIdxs,
		MessageInfos:      file_payables_v1_payables_proto_msgTypes,
	}.Build()
	File_payables_v1_payables_proto = out.File
	file_payables_v1_payables_proto_goTypes = nil
	file_payables_v1_payables_proto_depIdxs = nil
}
