package http

import (
	"errors"
	"io"
	"net/http"
	"path"
	"time"

	"fleetlog/internal/core/application/usecases/commands"
	"fleetlog/internal/core/application/usecases/queries"
	"fleetlog/internal/core/domain/model/kernel"
	"fleetlog/internal/core/domain/model/routelog"
	"fleetlog/internal/core/domain/model/vehicle"
	"fleetlog/internal/core/ports"
	"fleetlog/internal/generated/servers"
	"fleetlog/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultExpiryWindowDays = 30

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createVehicleHandler       commands.CreateVehicleCommandHandler
	updateVehicleHandler       commands.UpdateVehicleCommandHandler
	deleteVehicleHandler       commands.DeleteVehicleCommandHandler
	changeVehicleStatusHandler commands.ChangeVehicleStatusCommandHandler
	startRouteLogHandler       commands.StartRouteLogCommandHandler
	transferRouteLogHandler    commands.TransferRouteLogCommandHandler
	finishRouteLogHandler      commands.FinishRouteLogCommandHandler

	// Query handlers
	getAllVehiclesHandler        queries.GetAllVehiclesQueryHandler
	getVehicleHandler            queries.GetVehicleQueryHandler
	getActiveRouteLogHandler     queries.GetActiveRouteLogQueryHandler
	getRouteLogsByVehicleHandler queries.GetRouteLogsByVehicleQueryHandler
	getAllRouteLogsHandler       queries.GetAllRouteLogsQueryHandler
	getExpiringDocumentsHandler  queries.GetExpiringDocumentsQueryHandler

	blobStore ports.BlobStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createVehicleHandler commands.CreateVehicleCommandHandler,
	updateVehicleHandler commands.UpdateVehicleCommandHandler,
	deleteVehicleHandler commands.DeleteVehicleCommandHandler,
	changeVehicleStatusHandler commands.ChangeVehicleStatusCommandHandler,
	startRouteLogHandler commands.StartRouteLogCommandHandler,
	transferRouteLogHandler commands.TransferRouteLogCommandHandler,
	finishRouteLogHandler commands.FinishRouteLogCommandHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
	getVehicleHandler queries.GetVehicleQueryHandler,
	getActiveRouteLogHandler queries.GetActiveRouteLogQueryHandler,
	getRouteLogsByVehicleHandler queries.GetRouteLogsByVehicleQueryHandler,
	getAllRouteLogsHandler queries.GetAllRouteLogsQueryHandler,
	getExpiringDocumentsHandler queries.GetExpiringDocumentsQueryHandler,
	blobStore ports.BlobStore,
) *Server {
	return &Server{
		createVehicleHandler:         createVehicleHandler,
		updateVehicleHandler:         updateVehicleHandler,
		deleteVehicleHandler:         deleteVehicleHandler,
		changeVehicleStatusHandler:   changeVehicleStatusHandler,
		startRouteLogHandler:         startRouteLogHandler,
		transferRouteLogHandler:      transferRouteLogHandler,
		finishRouteLogHandler:        finishRouteLogHandler,
		getAllVehiclesHandler:        getAllVehiclesHandler,
		getVehicleHandler:            getVehicleHandler,
		getActiveRouteLogHandler:     getActiveRouteLogHandler,
		getRouteLogsByVehicleHandler: getRouteLogsByVehicleHandler,
		getAllRouteLogsHandler:       getAllRouteLogsHandler,
		getExpiringDocumentsHandler:  getExpiringDocumentsHandler,
		blobStore:                    blobStore,
	}
}

// GetVehicles handles GET /api/v1/vehicles - retrieves all vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	query := queries.NewGetAllVehiclesQuery()

	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleReadModelToResponse(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body servers.NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	plate, err := kernel.NewPlate(body.Plate)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), plate,
		stringValue(body.Brand), stringValue(body.Model), intValue(body.Year),
		documentsFromRequest(body.Documents),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	veh, err := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vehicleToResponse(veh))
}

// GetVehicleById handles GET /api/v1/vehicles/{vehicleId}.
func (s *Server) GetVehicleById(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernel.UUIDFromString(vehicleId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetVehicleQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	v, err := s.getVehicleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleReadModelToResponse(v))
}

// UpdateVehicle handles PUT /api/v1/vehicles/{vehicleId}.
func (s *Server) UpdateVehicle(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernel.UUIDFromString(vehicleId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewVehicle
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	plate, err := kernel.NewPlate(body.Plate)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateVehicleCommand(
		id, plate,
		stringValue(body.Brand), stringValue(body.Model), intValue(body.Year),
		documentsFromRequest(body.Documents),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	veh, err := s.updateVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleToResponse(veh))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{vehicleId}.
// Rejected while the vehicle has an active route log.
func (s *Server) DeleteVehicle(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernel.UUIDFromString(vehicleId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeVehicleStatus handles PATCH /api/v1/vehicles/{vehicleId}/status.
func (s *Server) ChangeVehicleStatus(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernel.UUIDFromString(vehicleId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := vehicle.StatusFromString(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeVehicleStatusCommand(id, target)
	if err != nil {
		return writeError(ctx, err)
	}

	veh, err := s.changeVehicleStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleToResponse(veh))
}

// StartRouteLog handles POST /api/v1/vehicles/{vehicleId}/route-logs -
// the driver takes custody of the vehicle.
func (s *Server) StartRouteLog(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernel.UUIDFromString(vehicleId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.StartRouteLogRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartRouteLogCommand(
		kernel.NewUUID(), id,
		body.DriverName, body.StartMileage,
		stringValue(body.NotesStart), sliceValue(body.ImagesStart),
		time.Now(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	log, err := s.startRouteLogHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, routeLogToResponse(log))
}

// TransferRouteLog handles POST /api/v1/route-logs/{logId}/transfer -
// custody moves to another driver without returning the vehicle. The log
// being closed is addressed by its own ID, so a stale retry cannot close
// the successor leg.
func (s *Server) TransferRouteLog(ctx echo.Context, logId servers.RouteLogId) error {
	id, err := kernel.UUIDFromString(logId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.TransferRouteLogRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransferRouteLogCommand(
		kernel.NewUUID(), id,
		body.NewDriverName, body.EndMileage,
		stringValue(body.NotesEnd), sliceValue(body.ImagesEnd),
		time.Now(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	closed, successor, err := s.transferRouteLogHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.TransferResult{
		ClosedLog: routeLogToResponse(closed),
		NewLog:    routeLogToResponse(successor),
	})
}

// FinishRouteLog handles POST /api/v1/route-logs/{logId}/finish -
// the driver returns the vehicle and the addressed log closes.
func (s *Server) FinishRouteLog(ctx echo.Context, logId servers.RouteLogId) error {
	id, err := kernel.UUIDFromString(logId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.FinishRouteLogRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFinishRouteLogCommand(
		id, body.EndMileage,
		stringValue(body.NotesEnd), sliceValue(body.ImagesEnd),
		stringValue(body.ReceiverName),
		time.Now(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	log, err := s.finishRouteLogHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeLogToResponse(log))
}

// GetActiveRouteLog handles GET /api/v1/vehicles/{vehicleId}/route-logs/active.
func (s *Server) GetActiveRouteLog(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernel.UUIDFromString(vehicleId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetActiveRouteLogQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	log, err := s.getActiveRouteLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, routeLogReadModelToResponse(log))
}

// GetRouteLogsByVehicle handles GET /api/v1/vehicles/{vehicleId}/route-logs -
// the full custody history, most recent first.
func (s *Server) GetRouteLogsByVehicle(ctx echo.Context, vehicleId servers.VehicleId) error {
	id, err := kernel.UUIDFromString(vehicleId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRouteLogsByVehicleQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	logs, err := s.getRouteLogsByVehicleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.RouteLog, len(logs))
	for i, log := range logs {
		response[i] = routeLogReadModelToResponse(log)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRouteLogs handles GET /api/v1/route-logs with optional status and
// driver name filters.
func (s *Server) GetRouteLogs(ctx echo.Context, params servers.GetRouteLogsParams) error {
	status := ""
	if params.Status != nil {
		status = string(*params.Status)
	}
	driverName := ""
	if params.DriverName != nil {
		driverName = *params.DriverName
	}

	query, err := queries.NewGetAllRouteLogsQuery(status, driverName)
	if err != nil {
		return writeError(ctx, err)
	}

	logs, err := s.getAllRouteLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.RouteLog, len(logs))
	for i, log := range logs {
		response[i] = routeLogReadModelToResponse(log)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetExpiringDocuments handles GET /api/v1/documents/expiring.
func (s *Server) GetExpiringDocuments(ctx echo.Context, params servers.GetExpiringDocumentsParams) error {
	days := defaultExpiryWindowDays
	if params.Days != nil {
		days = *params.Days
	}

	query, err := queries.NewGetExpiringDocumentsQuery(time.Now().AddDate(0, 0, days))
	if err != nil {
		return writeError(ctx, err)
	}

	documents, err := s.getExpiringDocumentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.ExpiringDocument, len(documents))
	for i, doc := range documents {
		response[i] = servers.ExpiringDocument{
			VehicleId: doc.VehicleID.Bytes(),
			Plate:     doc.Plate,
			Document:  doc.Document,
			ExpiresAt: doc.ExpiresAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UploadImage handles POST /api/v1/uploads - stores a route log photo and
// returns the URI callers put into imagesStart/imagesEnd.
func (s *Server) UploadImage(ctx echo.Context) error {
	content, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return badRequest(ctx, "Failed to read request body")
	}

	uri, err := s.blobStore.Put(ctx.Request().Context(), content, ctx.Request().Header.Get(echo.HeaderContentType))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Upload{Uri: uri})
}

// GetUpload handles GET /api/v1/uploads/{fileName} - serves a stored photo.
func (s *Server) GetUpload(ctx echo.Context, fileName string) error {
	content, err := s.blobStore.Get(ctx.Request().Context(), "/uploads/"+fileName)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, contentTypeFor(fileName), content)
}

// writeError maps the application error taxonomy onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrDuplicatePlate),
		errors.Is(err, errs.ErrCustodyConflict),
		errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func vehicleToResponse(veh *vehicle.Vehicle) servers.Vehicle {
	response := servers.Vehicle{
		Id:        veh.ID().Bytes(),
		Plate:     veh.Plate().String(),
		Status:    servers.VehicleStatus(veh.Status().String()),
		Brand:     optionalString(veh.Brand()),
		Model:     optionalString(veh.Model()),
		Year:      optionalInt(veh.Year()),
		Documents: documentsToResponse(veh.Documents()),
	}

	if logID := veh.ActiveRouteLogID(); logID != nil {
		id := logID.Bytes()
		response.ActiveRouteLogId = &id
	}

	return response
}

func vehicleReadModelToResponse(v queries.VehicleQueryResponse) servers.Vehicle {
	response := servers.Vehicle{
		Id:     v.ID.Bytes(),
		Plate:  v.Plate,
		Status: servers.VehicleStatus(v.Status),
		Brand:  optionalString(v.Brand),
		Model:  optionalString(v.Model),
		Year:   optionalInt(v.Year),
		Documents: documentsToResponse(vehicle.DocumentDates{
			CirculationPermit: v.CirculationPermit,
			TechnicalReview:   v.TechnicalReview,
			Insurance:         v.Insurance,
			GasesReview:       v.GasesReview,
		}),
	}

	if v.ActiveRouteLogID != nil {
		id := v.ActiveRouteLogID.Bytes()
		response.ActiveRouteLogId = &id
	}

	return response
}

func routeLogToResponse(log *routelog.RouteLog) servers.RouteLog {
	return servers.RouteLog{
		Id:           log.ID().Bytes(),
		VehicleId:    log.VehicleID().Bytes(),
		Status:       servers.RouteLogStatus(log.Status().String()),
		DriverName:   log.DriverName(),
		StartMileage: log.StartMileage(),
		EndMileage:   log.EndMileage(),
		StartDate:    log.StartDate(),
		EndDate:      log.EndDate(),
		NotesStart:   optionalString(log.NotesStart()),
		NotesEnd:     optionalString(log.NotesEnd()),
		ImagesStart:  optionalSlice(log.ImagesStart()),
		ImagesEnd:    optionalSlice(log.ImagesEnd()),
		ReceiverName: log.ReceiverName(),
		TransferTo:   log.TransferTo(),
	}
}

func routeLogReadModelToResponse(log queries.RouteLogQueryResponse) servers.RouteLog {
	return servers.RouteLog{
		Id:           log.ID.Bytes(),
		VehicleId:    log.VehicleID.Bytes(),
		Status:       servers.RouteLogStatus(log.Status),
		DriverName:   log.DriverName,
		StartMileage: log.StartMileage,
		EndMileage:   log.EndMileage,
		StartDate:    log.StartDate,
		EndDate:      log.EndDate,
		NotesStart:   optionalString(log.NotesStart),
		NotesEnd:     optionalString(log.NotesEnd),
		ImagesStart:  optionalSlice(log.ImagesStart),
		ImagesEnd:    optionalSlice(log.ImagesEnd),
		ReceiverName: log.ReceiverName,
		TransferTo:   log.TransferTo,
	}
}

func documentsFromRequest(documents *servers.VehicleDocuments) vehicle.DocumentDates {
	if documents == nil {
		return vehicle.DocumentDates{}
	}

	return vehicle.DocumentDates{
		CirculationPermit: timeValue(documents.CirculationPermitExpiry),
		TechnicalReview:   timeValue(documents.TechnicalReviewExpiry),
		Insurance:         timeValue(documents.InsuranceExpiry),
		GasesReview:       timeValue(documents.GasesReviewExpiry),
	}
}

func documentsToResponse(documents vehicle.DocumentDates) *servers.VehicleDocuments {
	response := servers.VehicleDocuments{
		CirculationPermitExpiry: optionalTime(documents.CirculationPermit),
		TechnicalReviewExpiry:   optionalTime(documents.TechnicalReview),
		InsuranceExpiry:         optionalTime(documents.Insurance),
		GasesReviewExpiry:       optionalTime(documents.GasesReview),
	}

	if response.CirculationPermitExpiry == nil && response.TechnicalReviewExpiry == nil &&
		response.InsuranceExpiry == nil && response.GasesReviewExpiry == nil {
		return nil
	}

	return &response
}

func contentTypeFor(fileName string) string {
	switch path.Ext(fileName) {
	case ".jpg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func sliceValue(s *[]string) []string {
	if s == nil {
		return nil
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(i int) *int {
	if i == 0 {
		return nil
	}
	return &i
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func optionalSlice(s []string) *[]string {
	if len(s) == 0 {
		return nil
	}
	return &s
}
