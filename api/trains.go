package api

import (
	"net/http"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-gonic/gin"
)

type TrainHandler struct {
	service trains.TrainUseCase
}

type trainResponse struct {
	TrainID         string `json:"trainId"`
	From            string `json:"from"`
	To              string `json:"to"`
	DepartureTime   string `json:"departureTime"`
	ArrivalTime     string `json:"arrivalTime"`
	DaysOfOperation string `json:"daysOfOperation"`
}

func NewTrainHandler(service trains.TrainUseCase) *TrainHandler {
	return &TrainHandler{service: service}
}

func (h *TrainHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
}

func (h *TrainHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, toTrainResponses(h.service.List(c.Request.Context())))
}

func (h *TrainHandler) search(c *gin.Context) {
	// Only absent parameters are rejected; empty values fall through to an empty result.
	from, hasFrom := c.GetQuery("from")
	to, hasTo := c.GetQuery("to")
	date, hasDate := c.GetQuery("date")
	if !hasFrom || !hasTo || !hasDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters: from, to, and date"})
		return
	}

	results := h.service.Search(c.Request.Context(), from, to, date)
	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no trains found for the selected route and date"})
		return
	}
	c.JSON(http.StatusOK, toTrainResponses(results))
}

func toTrainResponses(routes []domain.TrainRoute) []trainResponse {
	resp := make([]trainResponse, 0, len(routes))
	for _, t := range routes {
		resp = append(resp, trainResponse{
			TrainID:         t.TrainID,
			From:            t.Origin,
			To:              t.Destination,
			DepartureTime:   t.DepartureTime,
			ArrivalTime:     t.ArrivalTime,
			DaysOfOperation: t.OperatingDays,
		})
	}
	return resp
}
