package commands

import (
	"time"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/domain/model/request"
)

// AssetResult is the projection of an asset returned by asset commands.
type AssetResult struct {
	ID            kernel.UUID
	Code          string
	Name          string
	Specification string
	Location      string
	CategoryID    kernel.UUID
	State         asset.State
	StateName     string
	InstalledDate time.Time
	CreatedDate   time.Time
	UpdatedDate   time.Time
}

func newAssetResult(a *asset.Asset) *AssetResult {
	return &AssetResult{
		ID:            a.ID(),
		Code:          a.Code(),
		Name:          a.Name(),
		Specification: a.Specification(),
		Location:      a.Location(),
		CategoryID:    a.CategoryID(),
		State:         a.State(),
		StateName:     a.State().DisplayName(),
		InstalledDate: a.InstalledDate(),
		CreatedDate:   a.CreatedDate(),
		UpdatedDate:   a.UpdatedDate(),
	}
}

// AssignmentResult is the projection of an assignment returned by assignment commands.
type AssignmentResult struct {
	ID           kernel.UUID
	AssetID      kernel.UUID
	UserID       kernel.UUID
	CreatorID    kernel.UUID
	AssignedDate time.Time
	Note         string
	State        assignment.State
	StateName    string
}

func newAssignmentResult(a *assignment.Assignment) *AssignmentResult {
	return &AssignmentResult{
		ID:           a.ID(),
		AssetID:      a.AssetID(),
		UserID:       a.UserID(),
		CreatorID:    a.CreatorID(),
		AssignedDate: a.AssignedDate(),
		Note:         a.Note(),
		State:        a.State(),
		StateName:    a.State().DisplayName(),
	}
}

// ReturnRequestResult is the projection of a return request returned by
// return-request commands.
type ReturnRequestResult struct {
	ID            kernel.UUID
	AssignmentID  kernel.UUID
	UserRequestID kernel.UUID
	UserAcceptID  *kernel.UUID
	ReturnDate    *time.Time
	State         request.State
	StateName     string
}

func newReturnRequestResult(r *request.ReturnRequest) *ReturnRequestResult {
	return &ReturnRequestResult{
		ID:            r.ID(),
		AssignmentID:  r.AssignmentID(),
		UserRequestID: r.UserRequestID(),
		UserAcceptID:  r.UserAcceptID(),
		ReturnDate:    r.ReturnDate(),
		State:         r.State(),
		StateName:     r.State().DisplayName(),
	}
}
