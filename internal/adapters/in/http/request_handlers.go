package http

import (
	"net/http"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/application/usecases/queries"
	"amo/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// FindReturnRequests handles GET /api/v1/return-requests - a filtered, sorted
// page of return requests. A name search also matches requesting or accepting
// users resolved through the user directory.
func (s *Server) FindReturnRequests(ctx echo.Context) error {
	page, limit, err := pagingParams(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	returnDate, err := dateParam(ctx, "returnDate")
	if err != nil {
		return errorJSON(ctx, err)
	}

	keySearch := ctx.QueryParam("keySearch")
	query, err := queries.NewFindReturnRequestsQuery(
		keySearch,
		s.resolveUserFilter(ctx, keySearch),
		ctx.QueryParam("states"),
		returnDate,
		ctx.QueryParam("orderProperty"),
		boolParam(ctx, "desc"),
		page,
		limit,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.findReturnRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse[returnRequestResponse]{
		Items:       mapItems(result.Items, toFoundReturnRequestResponse),
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		TotalItems:  result.TotalItems,
	})
}

// CreateReturnRequest handles POST /api/v1/return-requests - the caller asks
// to return an assigned asset.
func (s *Server) CreateReturnRequest(ctx echo.Context) error {
	var body createReturnRequestRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	userRequestID, err := callerID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	assignmentID, err := kernel.UUIDFromString(body.AssignmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateReturnRequestCommand(kernel.NewUUID(), assignmentID, userRequestID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.createReturnRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toReturnRequestResponse(result))
}

// AcceptReturnRequest handles PATCH /api/v1/return-requests/:id/accept - an
// admin completes the return: the request closes, the assignment is retired
// and the asset becomes available again.
func (s *Server) AcceptReturnRequest(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	userAcceptID, err := callerID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAcceptReturnRequestCommand(requestID, userAcceptID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.acceptReturnRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReturnRequestResponse(result))
}

// CancelReturnRequest handles DELETE /api/v1/return-requests/:id - withdraws
// a pending return request; the assignment stays live.
func (s *Server) CancelReturnRequest(ctx echo.Context) error {
	requestID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCancelReturnRequestCommand(requestID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.cancelReturnRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
