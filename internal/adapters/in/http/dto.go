package http

import (
	"time"
)

// Request and response bodies of the HTTP API. Kept as plain structs with
// JSON tags; the domain model never leaks through this boundary.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ingestLineRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Location string `json:"location"`
	ZoneHint int    `json:"zoneHint,omitempty"`
}

type ingestShipmentRequest struct {
	Number string              `json:"number"`
	Lines  []ingestLineRequest `json:"lines"`
}

type ingestShipmentResponse struct {
	ShipmentID string `json:"shipmentId"`
}

type acquireLockResponse struct {
	Outcome string `json:"outcome"`
}

type lineQuantityRequest struct {
	LineID   string `json:"lineId"`
	Quantity int    `json:"quantity"`
}

type markCollectedRequest struct {
	Lines      []lineQuantityRequest `json:"lines"`
	DictatorID string                `json:"dictatorId,omitempty"`
}

type confirmTaskRequest struct {
	Lines []lineQuantityRequest `json:"lines"`
}

type reassignTasksRequest struct {
	TaskIDs     []string `json:"taskIds"`
	CollectorID string   `json:"collectorId,omitempty"`
	CheckerID   string   `json:"checkerId,omitempty"`
	DictatorID  string   `json:"dictatorId,omitempty"`
}

type recomputeGapMetricsRequest struct {
	Limit int `json:"limit,omitempty"`
}

type recomputeRanksRequest struct {
	Period string `json:"period"`
}

type batchResultResponse struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`
}

type operatorPerformanceResponse struct {
	Role          string  `json:"role"`
	Tasks         int     `json:"tasks"`
	Positions     int     `json:"positions"`
	Units         int     `json:"units"`
	PickTimeSec   int64   `json:"pickTimeSec"`
	GapTimeSec    int64   `json:"gapTimeSec"`
	AvgEfficiency float64 `json:"avgEfficiency"`
	Points        float64 `json:"points"`
}

type zoneActiveTasksResponse struct {
	Zone          string `json:"zone"`
	Assigned      int    `json:"assigned"`
	AwaitingCheck int    `json:"awaitingCheck"`
}

type positionDifficultyResponse struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Samples       int     `json:"samples"`
	AvgSecPerUnit float64 `json:"avgSecPerUnit"`
}

type shipmentProgressTaskResponse struct {
	TaskID      string  `json:"taskId"`
	Zone        string  `json:"zone"`
	Status      string  `json:"status"`
	Positions   int     `json:"positions"`
	CollectorID *string `json:"collectorId,omitempty"`
	CheckerID   *string `json:"checkerId,omitempty"`
}

type shipmentProgressResponse struct {
	ShipmentID  string                         `json:"shipmentId"`
	Number      string                         `json:"number"`
	Status      string                         `json:"status"`
	ConfirmedAt *time.Time                     `json:"confirmedAt,omitempty"`
	Tasks       []shipmentProgressTaskResponse `json:"tasks"`
}
