package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ActiveStatusFilter.
const (
	ActiveStatusFilterActive   ActiveStatusFilter = "Active"
	ActiveStatusFilterInactive ActiveStatusFilter = "Inactive"
)

// Defines values for ApprovalChangeStatus.
const (
	ApprovalChangeStatusApproved ApprovalChangeStatus = "Approved"
	ApprovalChangeStatusRejected ApprovalChangeStatus = "Rejected"
)

// Defines values for NewOrderPriority.
const (
	NewOrderPriorityHigh   NewOrderPriority = "High"
	NewOrderPriorityNormal NewOrderPriority = "Normal"
)

// Defines values for ListReadyOrdersParamsPriority.
const (
	ListReadyOrdersParamsPriorityHigh   ListReadyOrdersParamsPriority = "High"
	ListReadyOrdersParamsPriorityNormal ListReadyOrdersParamsPriority = "Normal"
)

// Defines values for ListDriversParamsApprovalStatus.
const (
	ListDriversParamsApprovalStatusApproved ListDriversParamsApprovalStatus = "Approved"
	ListDriversParamsApprovalStatusPending  ListDriversParamsApprovalStatus = "Pending"
	ListDriversParamsApprovalStatusRejected ListDriversParamsApprovalStatus = "Rejected"
)

// Defines values for UploadProofMultipartBodyKind.
const (
	UploadProofMultipartBodyKindPhoto     UploadProofMultipartBodyKind = "photo"
	UploadProofMultipartBodyKindSignature UploadProofMultipartBodyKind = "signature"
)

// ActiveChange defines model for ActiveChange.
type ActiveChange struct {
	Active bool `json:"active"`
}

// ApprovalChange defines model for ApprovalChange.
type ApprovalChange struct {
	Status ApprovalChangeStatus `json:"status"`
}

// ApprovalChangeStatus defines model for ApprovalChange.Status.
type ApprovalChangeStatus string

// Cancellation defines model for Cancellation.
type Cancellation struct {
	Reason *string `json:"reason,omitempty"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	AssignedAt        time.Time          `json:"assignedAt"`
	AssignedBy        string             `json:"assignedBy"`
	Center            string             `json:"center"`
	CompletedAt       *time.Time         `json:"completedAt,omitempty"`
	Driver            DriverSummary      `json:"driver"`
	Id                openapi_types.UUID `json:"id"`
	LastKnownPosition *Position          `json:"lastKnownPosition,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
	Order             OrderSummary       `json:"order"`
	PhotoUrl          *string            `json:"photoUrl,omitempty"`
	ProofTimestamp    *time.Time         `json:"proofTimestamp,omitempty"`
	SignatureUrl      *string            `json:"signatureUrl,omitempty"`
	Status            string             `json:"status"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	Vehicle           VehicleSummary     `json:"vehicle"`
	Verified          bool               `json:"verified"`
}

// DeliveryPage defines model for DeliveryPage.
type DeliveryPage struct {
	Data  []Delivery `json:"data"`
	Limit int        `json:"limit"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"`
	Total int64      `json:"total"`
}

// Driver defines model for Driver.
type Driver struct {
	ActiveStatus   string             `json:"activeStatus"`
	ApprovalStatus string             `json:"approvalStatus"`
	Center         string             `json:"center"`
	CreatedAt      time.Time          `json:"createdAt"`
	Email          *string            `json:"email,omitempty"`
	Id             openapi_types.UUID `json:"id"`
	Name           string             `json:"name"`
	Phone          *string            `json:"phone,omitempty"`
}

// DriverSummary defines model for DriverSummary.
type DriverSummary struct {
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Phone *string            `json:"phone,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int                     `json:"code"`
	Details *map[string]interface{} `json:"details,omitempty"`
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
}

// Location defines model for Location.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewDelivery defines model for NewDelivery.
type NewDelivery struct {
	DriverId  openapi_types.UUID `json:"driverId"`
	Notes     *string            `json:"notes,omitempty"`
	OrderId   openapi_types.UUID `json:"orderId"`
	VehicleId openapi_types.UUID `json:"vehicleId"`
}

// NewDriver defines model for NewDriver.
type NewDriver struct {
	Center string  `json:"center"`
	Email  *string `json:"email,omitempty"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Address      string            `json:"address"`
	Center       string            `json:"center"`
	Code         *string           `json:"code,omitempty"`
	CustomerName string            `json:"customerName"`
	Items        []NewOrderItem    `json:"items"`
	Priority     *NewOrderPriority `json:"priority,omitempty"`
}

// NewOrderPriority defines model for NewOrder.Priority.
type NewOrderPriority string

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductRef string `json:"productRef"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
}

// NewVehicle defines model for NewVehicle.
type NewVehicle struct {
	CapacityKg *int   `json:"capacityKg,omitempty"`
	Center     string `json:"center"`
	Model      string `json:"model"`
	Plate      string `json:"plate"`
}

// Order defines model for Order.
type Order struct {
	Address      string             `json:"address"`
	Center       string             `json:"center"`
	Code         string             `json:"code"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	CustomerName string             `json:"customerName"`
	Id           openapi_types.UUID `json:"id"`
	Items        []OrderItem        `json:"items"`
	Priority     string             `json:"priority"`
	Status       string             `json:"status"`
	Total        int64              `json:"total"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductRef string `json:"productRef"`
	Quantity   int    `json:"quantity"`
	Subtotal   int64  `json:"subtotal"`
	UnitPrice  int64  `json:"unitPrice"`
}

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	Address      string             `json:"address"`
	Code         string             `json:"code"`
	CustomerName string             `json:"customerName"`
	Id           openapi_types.UUID `json:"id"`
	Priority     string             `json:"priority"`
	Status       string             `json:"status"`
}

// Position defines model for Position.
type Position struct {
	Heading   *float64  `json:"heading,omitempty"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Speed     *float64  `json:"speed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PositionReport defines model for PositionReport.
type PositionReport struct {
	Heading   *float64   `json:"heading,omitempty"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	Speed     *float64   `json:"speed,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ProofLinks defines model for ProofLinks.
type ProofLinks struct {
	PhotoUrl     *string `json:"photoUrl,omitempty"`
	SignatureUrl *string `json:"signatureUrl,omitempty"`
}

// ProofUploaded defines model for ProofUploaded.
type ProofUploaded struct {
	Url string `json:"url"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Location *Location `json:"location,omitempty"`
	Note     *string   `json:"note,omitempty"`
	Status   string    `json:"status"`
}

// TimelineEvent defines model for TimelineEvent.
type TimelineEvent struct {
	Kind      string    `json:"kind"`
	Location  *Location `json:"location,omitempty"`
	Note      *string   `json:"note,omitempty"`
	Sequence  int       `json:"sequence"`
	Status    *string   `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Vehicle defines model for Vehicle.
type Vehicle struct {
	ActiveStatus string             `json:"activeStatus"`
	CapacityKg   int                `json:"capacityKg"`
	Center       string             `json:"center"`
	CreatedAt    time.Time          `json:"createdAt"`
	Id           openapi_types.UUID `json:"id"`
	Model        string             `json:"model"`
	Plate        string             `json:"plate"`
}

// VehicleSummary defines model for VehicleSummary.
type VehicleSummary struct {
	Id    openapi_types.UUID `json:"id"`
	Model string             `json:"model"`
	Plate string             `json:"plate"`
}

// Verification defines model for Verification.
type Verification struct {
	Verified bool `json:"verified"`
}

// ActiveStatusFilter defines model for ActiveStatusFilter.
type ActiveStatusFilter string

// CenterFilter defines model for CenterFilter.
type CenterFilter = string

// CenterRequired defines model for CenterRequired.
type CenterRequired = string

// DeliveryId defines model for DeliveryId.
type DeliveryId = openapi_types.UUID

// DriverId defines model for DriverId.
type DriverId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// Search defines model for Search.
type Search = string

// UserId defines model for UserId.
type UserId = string

// VehicleId defines model for VehicleId.
type VehicleId = openapi_types.UUID

// ListDeliveriesParams defines parameters for ListDeliveries.
type ListDeliveriesParams struct {
	Page      *int          `form:"page,omitempty" json:"page,omitempty"`
	Limit     *int          `form:"limit,omitempty" json:"limit,omitempty"`
	Center    *CenterFilter `form:"center,omitempty" json:"center,omitempty"`
	Status    *string       `form:"status,omitempty" json:"status,omitempty"`
	Search    *Search       `form:"search,omitempty" json:"search,omitempty"`
	StartDate *time.Time    `form:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time    `form:"endDate,omitempty" json:"endDate,omitempty"`
}

// AssignDeliveryParams defines parameters for AssignDelivery.
type AssignDeliveryParams struct {
	XUserID UserId `json:"X-User-ID"`
}

// AttachProofParams defines parameters for AttachProof.
type AttachProofParams struct {
	XUserID UserId `json:"X-User-ID"`
}

// UploadProofMultipartBody defines parameters for UploadProof.
type UploadProofMultipartBody struct {
	File openapi_types.File           `json:"file"`
	Kind UploadProofMultipartBodyKind `json:"kind"`
}

// UploadProofParams defines parameters for UploadProof.
type UploadProofParams struct {
	XUserID UserId `json:"X-User-ID"`
}

// UploadProofMultipartBodyKind defines parameters for UploadProof.
type UploadProofMultipartBodyKind string

// AdvanceDeliveryStatusParams defines parameters for AdvanceDeliveryStatus.
type AdvanceDeliveryStatusParams struct {
	XUserID UserId `json:"X-User-ID"`
}

// SetVerificationParams defines parameters for SetVerification.
type SetVerificationParams struct {
	XUserID UserId `json:"X-User-ID"`
}

// ListDriversParams defines parameters for ListDrivers.
type ListDriversParams struct {
	Center         *CenterFilter                    `form:"center,omitempty" json:"center,omitempty"`
	ApprovalStatus *ListDriversParamsApprovalStatus `form:"approvalStatus,omitempty" json:"approvalStatus,omitempty"`
	ActiveStatus   *ActiveStatusFilter              `form:"activeStatus,omitempty" json:"activeStatus,omitempty"`
	Search         *Search                          `form:"search,omitempty" json:"search,omitempty"`
}

// ListDriversParamsApprovalStatus defines parameters for ListDrivers.
type ListDriversParamsApprovalStatus string

// ListAvailableDriversParams defines parameters for ListAvailableDrivers.
type ListAvailableDriversParams struct {
	Center CenterRequired `form:"center" json:"center"`
}

// ListReadyOrdersParams defines parameters for ListReadyOrders.
type ListReadyOrdersParams struct {
	Center   *CenterFilter                  `form:"center,omitempty" json:"center,omitempty"`
	Priority *ListReadyOrdersParamsPriority `form:"priority,omitempty" json:"priority,omitempty"`
	Search   *Search                        `form:"search,omitempty" json:"search,omitempty"`
	From     *time.Time                     `form:"from,omitempty" json:"from,omitempty"`
	To       *time.Time                     `form:"to,omitempty" json:"to,omitempty"`
}

// ListReadyOrdersParamsPriority defines parameters for ListReadyOrders.
type ListReadyOrdersParamsPriority string

// CancelOrderParams defines parameters for CancelOrder.
type CancelOrderParams struct {
	XUserID UserId `json:"X-User-ID"`
}

// ListVehiclesParams defines parameters for ListVehicles.
type ListVehiclesParams struct {
	Center       *CenterFilter       `form:"center,omitempty" json:"center,omitempty"`
	ActiveStatus *ActiveStatusFilter `form:"activeStatus,omitempty" json:"activeStatus,omitempty"`
	Search       *Search             `form:"search,omitempty" json:"search,omitempty"`
}

// ListAvailableVehiclesParams defines parameters for ListAvailableVehicles.
type ListAvailableVehiclesParams struct {
	Center CenterRequired `form:"center" json:"center"`
}

// AssignDeliveryJSONRequestBody defines body for AssignDelivery for application/json ContentType.
type AssignDeliveryJSONRequestBody = NewDelivery

// AttachProofJSONRequestBody defines body for AttachProof for application/json ContentType.
type AttachProofJSONRequestBody = ProofLinks

// UploadProofMultipartRequestBody defines body for UploadProof for multipart/form-data ContentType.
type UploadProofMultipartRequestBody UploadProofMultipartBody

// AdvanceDeliveryStatusJSONRequestBody defines body for AdvanceDeliveryStatus for application/json ContentType.
type AdvanceDeliveryStatusJSONRequestBody = StatusChange

// SetVerificationJSONRequestBody defines body for SetVerification for application/json ContentType.
type SetVerificationJSONRequestBody = Verification

// RecordPositionJSONRequestBody defines body for RecordPosition for application/json ContentType.
type RecordPositionJSONRequestBody = PositionReport

// CreateDriverJSONRequestBody defines body for CreateDriver for application/json ContentType.
type CreateDriverJSONRequestBody = NewDriver

// SetDriverActiveJSONRequestBody defines body for SetDriverActive for application/json ContentType.
type SetDriverActiveJSONRequestBody = ActiveChange

// SetDriverApprovalJSONRequestBody defines body for SetDriverApproval for application/json ContentType.
type SetDriverApprovalJSONRequestBody = ApprovalChange

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// CancelOrderJSONRequestBody defines body for CancelOrder for application/json ContentType.
type CancelOrderJSONRequestBody = Cancellation

// CreateVehicleJSONRequestBody defines body for CreateVehicle for application/json ContentType.
type CreateVehicleJSONRequestBody = NewVehicle

// SetVehicleActiveJSONRequestBody defines body for SetVehicleActive for application/json ContentType.
type SetVehicleActiveJSONRequestBody = ActiveChange
