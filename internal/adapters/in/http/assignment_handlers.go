package http

import (
	"net/http"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/application/usecases/queries"
	"amo/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// FindAssignments handles GET /api/v1/assignments - a filtered, sorted page
// of live assignments. A name search also matches assignees resolved through
// the user directory.
func (s *Server) FindAssignments(ctx echo.Context) error {
	page, limit, err := pagingParams(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	assignedDate, err := dateParam(ctx, "assignedDate")
	if err != nil {
		return errorJSON(ctx, err)
	}

	keySearch := ctx.QueryParam("keySearch")
	query, err := queries.NewFindAssignmentsQuery(
		keySearch,
		s.resolveUserFilter(ctx, keySearch),
		ctx.QueryParam("states"),
		assignedDate,
		ctx.QueryParam("orderProperty"),
		boolParam(ctx, "desc"),
		page,
		limit,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.findAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse[assignmentResponse]{
		Items:       mapItems(result.Items, toFoundAssignmentResponse),
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		TotalItems:  result.TotalItems,
	})
}

// CreateAssignment handles POST /api/v1/assignments - assigns an asset to a
// user.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var body createAssignmentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	creatorID, err := callerID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	assetID, err := kernel.UUIDFromString(body.AssetID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateAssignmentCommand(
		kernel.NewUUID(),
		assetID,
		userID,
		creatorID,
		body.AssignedDate,
		body.Note,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAssignmentResponse(result))
}

// UpdateAssignment handles PUT /api/v1/assignments/:id - updates a pending
// assignment; a changed asset reference swaps both assets' states.
func (s *Server) UpdateAssignment(ctx echo.Context) error {
	assignmentID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body updateAssignmentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	assetID, err := kernel.UUIDFromString(body.AssetID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateAssignmentCommand(assignmentID, assetID, userID, body.AssignedDate, body.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.updateAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignmentResponse(result))
}

// AcceptAssignment handles PATCH /api/v1/assignments/:id/accept - the
// assignee confirms receipt. Accepting twice is a no-op.
func (s *Server) AcceptAssignment(ctx echo.Context) error {
	assignmentID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAcceptAssignmentCommand(assignmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.acceptAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if result == nil {
		// already accepted
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, toAssignmentResponse(result))
}

// DeleteAssignment handles DELETE /api/v1/assignments/:id - withdraws an
// assignment and frees its asset.
func (s *Server) DeleteAssignment(ctx echo.Context) error {
	assignmentID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewDeleteAssignmentCommand(assignmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.deleteAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMyAssignments handles GET /api/v1/assignments/my - the caller's own
// active assignments up to today.
func (s *Server) GetMyAssignments(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewMyAssignmentsQuery(userID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.myAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapItems(result, toMyAssignmentResponse))
}
