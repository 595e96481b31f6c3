// Package http is the inbound HTTP adapter. It binds echo routes to the
// command and query handlers, translates the error taxonomy to HTTP statuses,
// and resolves user-directory lookups for the combined search filters.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/application/usecases/queries"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/ports"
	"amo/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Headers carrying the caller's identity context. The gateway in front of
// this service validates the JWT and forwards the claims as plain headers.
const (
	headerUserID   = "X-User-Id"
	headerLocation = "X-User-Location"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createAssetHandler         commands.CreateAssetCommandHandler
	updateAssetHandler         commands.UpdateAssetCommandHandler
	setAssetStateHandler       commands.SetAssetStateCommandHandler
	deleteAssetHandler         commands.DeleteAssetCommandHandler
	createAssignmentHandler    commands.CreateAssignmentCommandHandler
	updateAssignmentHandler    commands.UpdateAssignmentCommandHandler
	acceptAssignmentHandler    commands.AcceptAssignmentCommandHandler
	deleteAssignmentHandler    commands.DeleteAssignmentCommandHandler
	createReturnRequestHandler commands.CreateReturnRequestCommandHandler
	acceptReturnRequestHandler commands.AcceptReturnRequestCommandHandler
	cancelReturnRequestHandler commands.CancelReturnRequestCommandHandler

	// Query handlers
	findAssetsHandler         queries.FindAssetsQueryHandler
	findAssignmentsHandler    queries.FindAssignmentsQueryHandler
	findReturnRequestsHandler queries.FindReturnRequestsQueryHandler
	assignmentHistoryHandler  queries.AssignmentHistoryQueryHandler
	myAssignmentsHandler      queries.MyAssignmentsQueryHandler
	assetReportHandler        queries.AssetReportQueryHandler
	filterOptionsHandler      queries.FilterOptionsQueryHandler

	userDirectory ports.UserDirectory
	validate      *validator.Validate
	logger        *slog.Logger
}

// Handlers bundles the use-case handlers wired into the server.
type Handlers struct {
	CreateAsset         commands.CreateAssetCommandHandler
	UpdateAsset         commands.UpdateAssetCommandHandler
	SetAssetState       commands.SetAssetStateCommandHandler
	DeleteAsset         commands.DeleteAssetCommandHandler
	CreateAssignment    commands.CreateAssignmentCommandHandler
	UpdateAssignment    commands.UpdateAssignmentCommandHandler
	AcceptAssignment    commands.AcceptAssignmentCommandHandler
	DeleteAssignment    commands.DeleteAssignmentCommandHandler
	CreateReturnRequest commands.CreateReturnRequestCommandHandler
	AcceptReturnRequest commands.AcceptReturnRequestCommandHandler
	CancelReturnRequest commands.CancelReturnRequestCommandHandler

	FindAssets         queries.FindAssetsQueryHandler
	FindAssignments    queries.FindAssignmentsQueryHandler
	FindReturnRequests queries.FindReturnRequestsQueryHandler
	AssignmentHistory  queries.AssignmentHistoryQueryHandler
	MyAssignments      queries.MyAssignmentsQueryHandler
	AssetReport        queries.AssetReportQueryHandler
	FilterOptions      queries.FilterOptionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The user directory may be nil in deployments without an identity
// service; name search then matches asset columns only.
func NewServer(handlers Handlers, userDirectory ports.UserDirectory, logger *slog.Logger) *Server {
	return &Server{
		createAssetHandler:         handlers.CreateAsset,
		updateAssetHandler:         handlers.UpdateAsset,
		setAssetStateHandler:       handlers.SetAssetState,
		deleteAssetHandler:         handlers.DeleteAsset,
		createAssignmentHandler:    handlers.CreateAssignment,
		updateAssignmentHandler:    handlers.UpdateAssignment,
		acceptAssignmentHandler:    handlers.AcceptAssignment,
		deleteAssignmentHandler:    handlers.DeleteAssignment,
		createReturnRequestHandler: handlers.CreateReturnRequest,
		acceptReturnRequestHandler: handlers.AcceptReturnRequest,
		cancelReturnRequestHandler: handlers.CancelReturnRequest,
		findAssetsHandler:          handlers.FindAssets,
		findAssignmentsHandler:     handlers.FindAssignments,
		findReturnRequestsHandler:  handlers.FindReturnRequests,
		assignmentHistoryHandler:   handlers.AssignmentHistory,
		myAssignmentsHandler:       handlers.MyAssignments,
		assetReportHandler:         handlers.AssetReport,
		filterOptionsHandler:       handlers.FilterOptions,
		userDirectory:              userDirectory,
		validate:                   validator.New(),
		logger:                     logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/assets", s.FindAssets)
	api.POST("/assets", s.CreateAsset)
	api.GET("/assets/report", s.GetAssetReport)
	api.GET("/assets/filter-options", s.GetFilterOptions)
	api.PUT("/assets/:id", s.UpdateAsset)
	api.PATCH("/assets/:id/state", s.SetAssetState)
	api.DELETE("/assets/:id", s.DeleteAsset)
	api.GET("/assets/:id/history", s.GetAssignmentHistory)

	api.GET("/assignments", s.FindAssignments)
	api.POST("/assignments", s.CreateAssignment)
	api.GET("/assignments/my", s.GetMyAssignments)
	api.PUT("/assignments/:id", s.UpdateAssignment)
	api.PATCH("/assignments/:id/accept", s.AcceptAssignment)
	api.DELETE("/assignments/:id", s.DeleteAssignment)

	api.GET("/return-requests", s.FindReturnRequests)
	api.POST("/return-requests", s.CreateReturnRequest)
	api.PATCH("/return-requests/:id/accept", s.AcceptReturnRequest)
	api.DELETE("/return-requests/:id", s.CancelReturnRequest)
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorJSON maps the application error taxonomy to HTTP statuses.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// callerID reads the authenticated user's ID from the identity headers.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerUserID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(headerUserID + " header")
	}
	return kernel.UUIDFromString(raw)
}

// callerLocation reads the administrator's location partition from the
// identity headers.
func callerLocation(ctx echo.Context) (string, error) {
	location := ctx.Request().Header.Get(headerLocation)
	if location == "" {
		return "", errs.NewValueIsRequiredError(headerLocation + " header")
	}
	return location, nil
}

// bearerToken extracts the bearer credential forwarded to the user directory.
func bearerToken(ctx echo.Context) string {
	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimPrefix(auth, "Bearer ")
}

// resolveUserFilter turns a name search into the matching set of directory
// user IDs. A directory outage degrades the search to asset columns only
// instead of failing the request.
func (s *Server) resolveUserFilter(ctx echo.Context, keySearch string) []kernel.UUID {
	if keySearch == "" || s.userDirectory == nil {
		return nil
	}

	users, err := s.userDirectory.ListUsers(ctx.Request().Context(), bearerToken(ctx))
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(),
			"User directory lookup failed, searching asset columns only", "error", err)
		return nil
	}

	needle := strings.ToLower(keySearch)
	var ids []kernel.UUID
	for _, u := range users {
		if !strings.Contains(strings.ToLower(u.FullName), needle) &&
			!strings.Contains(strings.ToLower(u.UserName), needle) {
			continue
		}
		id, err := kernel.UUIDFromString(u.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}
