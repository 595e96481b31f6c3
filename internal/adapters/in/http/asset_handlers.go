package http

import (
	"net/http"
	"strconv"
	"time"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/application/usecases/queries"
	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// FindAssets handles GET /api/v1/assets - a filtered, sorted page of assets
// within the caller's location.
func (s *Server) FindAssets(ctx echo.Context) error {
	location, err := callerLocation(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	page, limit, err := pagingParams(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewFindAssetsQuery(
		location,
		ctx.QueryParam("keySearch"),
		ctx.QueryParam("category"),
		ctx.QueryParam("states"),
		boolParam(ctx, "mustBeAvailable"),
		ctx.QueryParam("orderProperty"),
		boolParam(ctx, "desc"),
		page,
		limit,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.findAssetsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pagedResponse[assetResponse]{
		Items:       mapItems(result.Items, toFoundAssetResponse),
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
		TotalItems:  result.TotalItems,
	})
}

// CreateAsset handles POST /api/v1/assets - registers a new asset in the
// caller's location.
func (s *Server) CreateAsset(ctx echo.Context) error {
	var body createAssetRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	location, err := callerLocation(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	creatorID, err := callerID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	categoryID, err := kernel.UUIDFromString(body.CategoryID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	state, err := asset.ParseState(body.State)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateAssetCommand(
		kernel.NewUUID(),
		body.Name,
		body.Specification,
		location,
		categoryID,
		state,
		body.InstalledDate,
		creatorID,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.createAssetHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAssetResponse(result))
}

// UpdateAsset handles PUT /api/v1/assets/:id - modifies the mutable fields of
// an asset.
func (s *Server) UpdateAsset(ctx echo.Context) error {
	assetID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body updateAssetRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	state, err := asset.ParseState(body.State)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateAssetCommand(assetID, body.Name, body.Specification, body.InstalledDate, state)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.updateAssetHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssetResponse(result))
}

// SetAssetState handles PATCH /api/v1/assets/:id/state - overwrites the
// asset's state.
func (s *Server) SetAssetState(ctx echo.Context) error {
	assetID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body setAssetStateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	state, err := asset.ParseState(body.State)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSetAssetStateCommand(assetID, state)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.setAssetStateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssetResponse(result))
}

// DeleteAsset handles DELETE /api/v1/assets/:id - removes an asset that no
// assignment references.
func (s *Server) DeleteAsset(ctx echo.Context) error {
	assetID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewDeleteAssetCommand(assetID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.deleteAssetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignmentHistory handles GET /api/v1/assets/:id/history - the three most
// recent assignments of an asset.
func (s *Server) GetAssignmentHistory(ctx echo.Context) error {
	assetID, err := pathID(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewAssignmentHistoryQuery(assetID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	history, err := s.assignmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mapItems(history, toAssignmentHistoryResponse))
}

// GetAssetReport handles GET /api/v1/assets/report - per-category state counts
// for the caller's location.
func (s *Server) GetAssetReport(ctx echo.Context) error {
	location, err := callerLocation(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewAssetReportQuery(location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	report, err := s.assetReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]reportLineResponse, len(report))
	for i, line := range report {
		response[i] = reportLineResponse{
			CategoryName:      line.CategoryName,
			Total:             line.Total,
			Available:         line.Available,
			NotAvailable:      line.NotAvailable,
			Assigned:          line.Assigned,
			WaitingForRecycle: line.WaitingForRecycle,
			Recycled:          line.Recycled,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFilterOptions handles GET /api/v1/assets/filter-options - the category
// and state select lists for the asset search form.
func (s *Server) GetFilterOptions(ctx echo.Context) error {
	options, err := s.filterOptionsHandler.Handle(ctx.Request().Context(), queries.NewFilterOptionsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	toOption := func(o queries.SelectOption) selectOptionResponse {
		return selectOptionResponse{ID: o.ID, Name: o.Name}
	}

	return ctx.JSON(http.StatusOK, filterOptionsResponse{
		Categories: mapItems(options.Categories, toOption),
		States:     mapItems(options.States, toOption),
	})
}

// pagingParams parses the page and limit query parameters. Absent values fall
// through to the query layer's defaults.
func pagingParams(ctx echo.Context) (int, int, error) {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
		page = parsed
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
		limit = parsed
	}

	return page, limit, nil
}

func boolParam(ctx echo.Context, name string) bool {
	value, _ := strconv.ParseBool(ctx.QueryParam(name))
	return value
}

// dateParam parses an optional yyyy-mm-dd query parameter.
func dateParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &parsed, nil
}
