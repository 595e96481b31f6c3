package http

import (
	"time"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/application/usecases/queries"
	"amo/internal/core/domain/model/kernel"
)

// Request bodies. Validation tags cover the shape of the payload; business
// rules (state names, note length) are enforced by the domain.

type createAssetRequest struct {
	Name          string    `json:"name" validate:"required"`
	Specification string    `json:"specification"`
	CategoryID    string    `json:"categoryId" validate:"required,uuid"`
	State         string    `json:"state" validate:"required"`
	InstalledDate time.Time `json:"installedDate" validate:"required"`
}

type updateAssetRequest struct {
	Name          string    `json:"name" validate:"required"`
	Specification string    `json:"specification"`
	State         string    `json:"state" validate:"required"`
	InstalledDate time.Time `json:"installedDate" validate:"required"`
}

type setAssetStateRequest struct {
	State string `json:"state" validate:"required"`
}

type createAssignmentRequest struct {
	AssetID      string    `json:"assetId" validate:"required,uuid"`
	UserID       string    `json:"userId" validate:"required,uuid"`
	AssignedDate time.Time `json:"assignedDate" validate:"required"`
	Note         string    `json:"note" validate:"max=1000"`
}

type updateAssignmentRequest struct {
	AssetID      string    `json:"assetId" validate:"required,uuid"`
	UserID       string    `json:"userId" validate:"required,uuid"`
	AssignedDate time.Time `json:"assignedDate" validate:"required"`
	Note         string    `json:"note" validate:"max=1000"`
}

type createReturnRequestRequest struct {
	AssignmentID string `json:"assignmentId" validate:"required,uuid"`
}

// Response bodies. kernel.UUID has no JSON form, so every ID is rendered as
// its canonical string here.

type pagedResponse[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

type assetResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Specification string    `json:"specification"`
	Location      string    `json:"location"`
	CategoryID    string    `json:"categoryId"`
	CategoryName  string    `json:"categoryName,omitempty"`
	State         string    `json:"state"`
	InstalledDate time.Time `json:"installedDate"`
	CreatedDate   time.Time `json:"createdDate"`
	UpdatedDate   time.Time `json:"updatedDate"`
}

func toAssetResponse(r *commands.AssetResult) assetResponse {
	return assetResponse{
		ID:            r.ID.String(),
		Code:          r.Code,
		Name:          r.Name,
		Specification: r.Specification,
		Location:      r.Location,
		CategoryID:    r.CategoryID.String(),
		State:         r.StateName,
		InstalledDate: r.InstalledDate,
		CreatedDate:   r.CreatedDate,
		UpdatedDate:   r.UpdatedDate,
	}
}

func toFoundAssetResponse(r queries.FindAssetsQueryResponse) assetResponse {
	return assetResponse{
		ID:            r.ID.String(),
		Code:          r.Code,
		Name:          r.Name,
		Specification: r.Specification,
		Location:      r.Location,
		CategoryID:    r.CategoryID.String(),
		CategoryName:  r.CategoryName,
		State:         r.StateName,
		InstalledDate: r.InstalledDate,
		CreatedDate:   r.CreatedDate,
		UpdatedDate:   r.UpdatedDate,
	}
}

type assignmentResponse struct {
	ID              string     `json:"id"`
	AssetID         string     `json:"assetId"`
	AssetCode       string     `json:"assetCode,omitempty"`
	AssetName       string     `json:"assetName,omitempty"`
	UserID          string     `json:"userId"`
	CreatorID       string     `json:"creatorId"`
	AssignedDate    time.Time  `json:"assignedDate"`
	Note            string     `json:"note"`
	State           string     `json:"state"`
	ReturnRequestID *string    `json:"returnRequestId,omitempty"`
}

func toAssignmentResponse(r *commands.AssignmentResult) assignmentResponse {
	return assignmentResponse{
		ID:           r.ID.String(),
		AssetID:      r.AssetID.String(),
		UserID:       r.UserID.String(),
		CreatorID:    r.CreatorID.String(),
		AssignedDate: r.AssignedDate,
		Note:         r.Note,
		State:        r.StateName,
	}
}

func toFoundAssignmentResponse(r queries.FindAssignmentsQueryResponse) assignmentResponse {
	return assignmentResponse{
		ID:              r.ID.String(),
		AssetID:         r.AssetID.String(),
		AssetCode:       r.AssetCode,
		AssetName:       r.AssetName,
		UserID:          r.UserID.String(),
		CreatorID:       r.CreatorID.String(),
		AssignedDate:    r.AssignedDate,
		Note:            r.Note,
		State:           r.StateName,
		ReturnRequestID: uuidString(r.ReturnRequestID),
	}
}

type returnRequestResponse struct {
	ID            string     `json:"id"`
	AssignmentID  string     `json:"assignmentId,omitempty"`
	AssetCode     string     `json:"assetCode,omitempty"`
	AssetName     string     `json:"assetName,omitempty"`
	AssignedDate  *time.Time `json:"assignedDate,omitempty"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	UserRequestID string     `json:"userRequestId"`
	UserAcceptID  *string    `json:"userAcceptId,omitempty"`
	State         string     `json:"state"`
}

func toReturnRequestResponse(r *commands.ReturnRequestResult) returnRequestResponse {
	return returnRequestResponse{
		ID:            r.ID.String(),
		AssignmentID:  r.AssignmentID.String(),
		ReturnDate:    r.ReturnDate,
		UserRequestID: r.UserRequestID.String(),
		UserAcceptID:  uuidString(r.UserAcceptID),
		State:         r.StateName,
	}
}

func toFoundReturnRequestResponse(r queries.FindReturnRequestsQueryResponse) returnRequestResponse {
	assignedDate := r.AssignedDate
	return returnRequestResponse{
		ID:            r.ID.String(),
		AssetCode:     r.AssetCode,
		AssetName:     r.AssetName,
		AssignedDate:  &assignedDate,
		ReturnDate:    r.ReturnDate,
		UserRequestID: r.UserRequestID.String(),
		UserAcceptID:  uuidString(r.UserAcceptID),
		State:         r.StateName,
	}
}

type assignmentHistoryResponse struct {
	AssignedDate     time.Time  `json:"assignedDate"`
	ReturnDate       *time.Time `json:"returnDate,omitempty"`
	UserAssignedByID string     `json:"userAssignedById"`
	UserAssignedToID string     `json:"userAssignedToId"`
}

func toAssignmentHistoryResponse(r queries.AssignmentHistoryQueryResponse) assignmentHistoryResponse {
	return assignmentHistoryResponse{
		AssignedDate:     r.AssignedDate,
		ReturnDate:       r.ReturnDate,
		UserAssignedByID: r.UserAssignedByID.String(),
		UserAssignedToID: r.UserAssignedToID.String(),
	}
}

type myAssignmentResponse struct {
	ID                 string    `json:"id"`
	AssetID            string    `json:"assetId"`
	AssetCode          string    `json:"assetCode"`
	AssetName          string    `json:"assetName"`
	AssetSpecification string    `json:"assetSpecification"`
	CategoryName       string    `json:"categoryName"`
	AssignedDate       time.Time `json:"assignedDate"`
	Note               string    `json:"note"`
	State              string    `json:"state"`
}

func toMyAssignmentResponse(r queries.MyAssignmentsQueryResponse) myAssignmentResponse {
	return myAssignmentResponse{
		ID:                 r.ID.String(),
		AssetID:            r.AssetID.String(),
		AssetCode:          r.AssetCode,
		AssetName:          r.AssetName,
		AssetSpecification: r.AssetSpecification,
		CategoryName:       r.CategoryName,
		AssignedDate:       r.AssignedDate,
		Note:               r.Note,
		State:              r.StateName,
	}
}

type reportLineResponse struct {
	CategoryName      string `json:"categoryName"`
	Total             int    `json:"total"`
	Available         int    `json:"available"`
	NotAvailable      int    `json:"notAvailable"`
	Assigned          int    `json:"assigned"`
	WaitingForRecycle int    `json:"waitingForRecycle"`
	Recycled          int    `json:"recycled"`
}

type selectOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type filterOptionsResponse struct {
	Categories []selectOptionResponse `json:"categories"`
	States     []selectOptionResponse `json:"states"`
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func mapItems[In any, Out any](items []In, f func(In) Out) []Out {
	if items == nil {
		return nil
	}
	out := make([]Out, len(items))
	for i, item := range items {
		out[i] = f(item)
	}
	return out
}
