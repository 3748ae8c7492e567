package http

import (
	"net/http"
	"time"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/application/usecases/queries"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/shipment"
	"picking/internal/core/domain/model/stats"
	"picking/internal/core/domain/model/task"

	"github.com/labstack/echo/v4"
)

// operatorHeader carries the acting operator's identity. Authentication is
// the gateway's concern; this service only needs to know who is acting.
const operatorHeader = "X-Operator-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	deps Dependencies
}

// Dependencies bundles the command and query handlers the server routes to.
type Dependencies struct {
	IngestShipment           commands.IngestShipmentCommandHandler
	AcquireLock              commands.AcquireLockCommandHandler
	HeartbeatLock            commands.HeartbeatLockCommandHandler
	ReleaseLock              commands.ReleaseLockCommandHandler
	AdminResetTask           commands.AdminResetTaskCommandHandler
	MarkTaskCollected        commands.MarkTaskCollectedCommandHandler
	ConfirmTask              commands.ConfirmTaskCommandHandler
	ReassignTasks            commands.ReassignTasksCommandHandler
	RecomputeGapMetrics      commands.RecomputeGapMetricsCommandHandler
	RecomputeRanks           commands.RecomputeRanksCommandHandler
	RecomputeTodayEfficiency commands.RecomputeTodayEfficiencyCommandHandler
	HardDeleteShipment       commands.HardDeleteShipmentCommandHandler

	GetOperatorPerformance queries.GetOperatorPerformanceQueryHandler
	GetZoneActiveTasks     queries.GetZoneActiveTasksQueryHandler
	GetPositionDifficulty  queries.GetPositionDifficultyQueryHandler
	GetShipmentProgress    queries.GetShipmentProgressQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/shipments", s.IngestShipment)
	api.GET("/shipments/:id/progress", s.GetShipmentProgress)

	api.POST("/tasks/:id/lock", s.AcquireLock)
	api.POST("/tasks/:id/heartbeat", s.HeartbeatLock)
	api.POST("/tasks/:id/release", s.ReleaseLock)
	api.POST("/tasks/:id/collected", s.MarkTaskCollected)
	api.POST("/tasks/:id/confirm", s.ConfirmTask)

	api.GET("/operators/:id/performance", s.GetOperatorPerformance)
	api.GET("/zones/active-tasks", s.GetZoneActiveTasks)
	api.GET("/positions/difficulty", s.GetPositionDifficulty)

	admin := api.Group("/admin")
	admin.POST("/tasks/reassign", s.ReassignTasks)
	admin.POST("/tasks/:id/reset", s.AdminResetTask)
	admin.DELETE("/shipments/:id", s.HardDeleteShipment)
	admin.POST("/recompute/gap-metrics", s.RecomputeGapMetrics)
	admin.POST("/recompute/ranks", s.RecomputeRanks)
	admin.POST("/recompute/today-efficiency", s.RecomputeTodayEfficiency)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// IngestShipment handles POST /api/v1/shipments.
func (s *Server) IngestShipment(ctx echo.Context) error {
	var req ingestShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	lines := make([]commands.IngestLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, commands.IngestLine{
			SKU:      l.SKU,
			Name:     l.Name,
			Quantity: l.Quantity,
			Unit:     l.Unit,
			Location: l.Location,
			ZoneHint: l.ZoneHint,
		})
	}

	cmd, err := commands.NewIngestShipmentCommand(req.Number, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	shipmentID, err := s.deps.IngestShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ingestShipmentResponse{
		ShipmentID: shipmentID.String(),
	})
}

// AcquireLock handles POST /api/v1/tasks/:id/lock.
func (s *Server) AcquireLock(ctx echo.Context) error {
	taskID, operatorID, err := s.taskAndOperator(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcquireLockCommand(taskID, operatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	outcome, err := s.deps.AcquireLock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, acquireLockResponse{
		Outcome: acquireOutcomeString(outcome),
	})
}

// HeartbeatLock handles POST /api/v1/tasks/:id/heartbeat.
func (s *Server) HeartbeatLock(ctx echo.Context) error {
	taskID, operatorID, err := s.taskAndOperator(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewHeartbeatLockCommand(taskID, operatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deps.HeartbeatLock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseLock handles POST /api/v1/tasks/:id/release.
func (s *Server) ReleaseLock(ctx echo.Context) error {
	taskID, operatorID, err := s.taskAndOperator(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReleaseLockCommand(taskID, operatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deps.ReleaseLock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkTaskCollected handles POST /api/v1/tasks/:id/collected.
func (s *Server) MarkTaskCollected(ctx echo.Context) error {
	taskID, operatorID, err := s.taskAndOperator(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req markCollectedRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	collected, err := parseQuantities(req.Lines)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var dictatorID *kernel.UUID
	if req.DictatorID != "" {
		id, idErr := kernel.UUIDFromString(req.DictatorID)
		if idErr != nil {
			return respondBadRequest(ctx, "invalid dictator id")
		}
		dictatorID = &id
	}

	cmd, err := commands.NewMarkTaskCollectedCommand(taskID, operatorID, collected, dictatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deps.MarkTaskCollected.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmTask handles POST /api/v1/tasks/:id/confirm.
func (s *Server) ConfirmTask(ctx echo.Context) error {
	taskID, operatorID, err := s.taskAndOperator(ctx)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	var req confirmTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	confirmed, err := parseQuantities(req.Lines)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmTaskCommand(taskID, operatorID, confirmed)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deps.ConfirmTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignTasks handles POST /api/v1/admin/tasks/reassign.
func (s *Server) ReassignTasks(ctx echo.Context) error {
	var req reassignTasksRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	taskIDs := make([]kernel.UUID, 0, len(req.TaskIDs))
	for _, raw := range req.TaskIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid task id: "+raw)
		}
		taskIDs = append(taskIDs, id)
	}

	collectorID, err := optionalIDParam(req.CollectorID)
	if err != nil {
		return respondBadRequest(ctx, "invalid collector id")
	}
	checkerID, err := optionalIDParam(req.CheckerID)
	if err != nil {
		return respondBadRequest(ctx, "invalid checker id")
	}
	dictatorID, err := optionalIDParam(req.DictatorID)
	if err != nil {
		return respondBadRequest(ctx, "invalid dictator id")
	}

	cmd, err := commands.NewReassignTasksCommand(taskIDs, collectorID, checkerID, dictatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.deps.ReassignTasks.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResultResponse(result))
}

// AdminResetTask handles POST /api/v1/admin/tasks/:id/reset.
func (s *Server) AdminResetTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid task id")
	}

	cmd, err := commands.NewAdminResetTaskCommand(taskID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deps.AdminResetTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HardDeleteShipment handles DELETE /api/v1/admin/shipments/:id.
func (s *Server) HardDeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewHardDeleteShipmentCommand(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deps.HardDeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecomputeGapMetrics handles POST /api/v1/admin/recompute/gap-metrics.
func (s *Server) RecomputeGapMetrics(ctx echo.Context) error {
	var req recomputeGapMetricsRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecomputeGapMetricsCommand(req.Limit)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.deps.RecomputeGapMetrics.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResultResponse(result))
}

// RecomputeRanks handles POST /api/v1/admin/recompute/ranks.
func (s *Server) RecomputeRanks(ctx echo.Context) error {
	var req recomputeRanksRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var period stats.Period
	switch req.Period {
	case "day":
		period = stats.PeriodDay
	case "month":
		period = stats.PeriodMonth
	default:
		return respondBadRequest(ctx, "period must be day or month")
	}

	cmd, err := commands.NewRecomputeRanksCommand(period)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.deps.RecomputeRanks.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResultResponse(result))
}

// RecomputeTodayEfficiency handles POST /api/v1/admin/recompute/today-efficiency.
func (s *Server) RecomputeTodayEfficiency(ctx echo.Context) error {
	cmd := commands.NewRecomputeTodayEfficiencyCommand()

	result, err := s.deps.RecomputeTodayEfficiency.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResultResponse(result))
}

// GetOperatorPerformance handles GET /api/v1/operators/:id/performance.
// The window defaults to the current UTC day when from/to are absent.
func (s *Server) GetOperatorPerformance(ctx echo.Context) error {
	operatorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid operator id")
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	if raw := ctx.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return respondBadRequest(ctx, "invalid from timestamp")
		}
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return respondBadRequest(ctx, "invalid to timestamp")
		}
	}

	query, err := queries.NewGetOperatorPerformanceQuery(operatorID, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	totals, err := s.deps.GetOperatorPerformance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]operatorPerformanceResponse, 0, len(totals))
	for _, t := range totals {
		response = append(response, operatorPerformanceResponse{
			Role:          task.Role(t.Role).String(),
			Tasks:         t.Tasks,
			Positions:     t.Positions,
			Units:         t.Units,
			PickTimeSec:   t.PickTimeSec,
			GapTimeSec:    t.GapTimeSec,
			AvgEfficiency: t.AvgEfficiency,
			Points:        t.Points,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetZoneActiveTasks handles GET /api/v1/zones/active-tasks.
func (s *Server) GetZoneActiveTasks(ctx echo.Context) error {
	query := queries.NewGetZoneActiveTasksQuery()

	zones, err := s.deps.GetZoneActiveTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]zoneActiveTasksResponse, 0, len(zones))
	for _, z := range zones {
		response = append(response, zoneActiveTasksResponse{
			Zone:          kernel.Zone(z.Zone).String(),
			Assigned:      z.Assigned,
			AwaitingCheck: z.AwaitingCheck,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPositionDifficulty handles GET /api/v1/positions/difficulty.
func (s *Server) GetPositionDifficulty(ctx echo.Context) error {
	minSamples := 5
	if raw := ctx.QueryParam("minSamples"); raw != "" {
		parsed, err := parsePositiveInt(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid minSamples")
		}
		minSamples = parsed
	}

	query, err := queries.NewGetPositionDifficultyQuery(minSamples)
	if err != nil {
		return respondError(ctx, err)
	}

	positions, err := s.deps.GetPositionDifficulty.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]positionDifficultyResponse, 0, len(positions))
	for _, p := range positions {
		response = append(response, positionDifficultyResponse(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentProgress handles GET /api/v1/shipments/:id/progress.
func (s *Server) GetShipmentProgress(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentProgressQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	progress, err := s.deps.GetShipmentProgress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	tasks := make([]shipmentProgressTaskResponse, 0, len(progress.Tasks))
	for _, t := range progress.Tasks {
		tasks = append(tasks, shipmentProgressTaskResponse{
			TaskID:      t.TaskID.String(),
			Zone:        kernel.Zone(t.Zone).String(),
			Status:      task.Status(t.Status).String(),
			Positions:   t.Positions,
			CollectorID: optionalIDString(t.CollectorID),
			CheckerID:   optionalIDString(t.CheckerID),
		})
	}

	return ctx.JSON(http.StatusOK, shipmentProgressResponse{
		ShipmentID:  progress.ShipmentID.String(),
		Number:      progress.Number,
		Status:      shipment.Status(progress.Status).String(),
		ConfirmedAt: progress.ConfirmedAt,
		Tasks:       tasks,
	})
}

func (s *Server) taskAndOperator(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errInvalidTaskID
	}

	raw := ctx.Request().Header.Get(operatorHeader)
	if raw == "" {
		return kernel.UUID{}, kernel.UUID{}, errMissingOperator
	}
	operatorID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errInvalidOperator
	}

	return taskID, operatorID, nil
}

func parseQuantities(lines []lineQuantityRequest) (map[kernel.UUID]int, error) {
	quantities := make(map[kernel.UUID]int, len(lines))
	for _, l := range lines {
		id, err := kernel.UUIDFromString(l.LineID)
		if err != nil {
			return nil, errInvalidLineID
		}
		quantities[id] = l.Quantity
	}
	return quantities, nil
}

func optionalIDParam(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func acquireOutcomeString(outcome commands.AcquireOutcome) string {
	switch outcome {
	case commands.OutcomeAlreadyOwned:
		return "alreadyOwned"
	case commands.OutcomeSuperseded:
		return "superseded"
	case commands.OutcomeAcquired:
	}
	return "acquired"
}
