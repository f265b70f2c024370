package api

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/rs/zerolog/log"
)

const bookingNotFoundHTML = "<html><body><h2>Booking not found</h2></body></html>"

var bookingPage = template.Must(template.New("booking").Parse(`<html><body>` +
	`<h2>Booking Confirmation</h2>` +
	`<p><strong>Booking ID:</strong> {{.BookingID}}</p>` +
	`<p><strong>Name:</strong> {{.Name}}</p>` +
	`<p><strong>Email:</strong> {{.Email}}</p>` +
	`<p><strong>From:</strong> {{.From}}</p>` +
	`<p><strong>To:</strong> {{.To}}</p>` +
	`<p><strong>Travel Date:</strong> {{.TravelDate}}</p>` +
	`<p><strong>Train:</strong> {{.TrainID}}</p>` +
	`</body></html>`))

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	From       string `json:"from" binding:"required"`
	To         string `json:"to" binding:"required"`
	TravelDate string `json:"travelDate" binding:"required"`
	TrainID    string `json:"trainId" binding:"required"`
}

type bookingResponse struct {
	BookingID  string `json:"bookingId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	From       string `json:"from"`
	To         string `json:"to"`
	TravelDate string `json:"travelDate"`
	TrainID    string `json:"trainId"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/all", h.list)
	router.GET("/html/:id", h.html)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		PassengerName:  req.Name,
		PassengerEmail: req.Email,
		Origin:         req.From,
		Destination:    req.To,
		TravelDate:     req.TravelDate,
		TrainID:        req.TrainID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRoute) || errors.Is(err, domain.ErrRouteUnavailableOnDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("create booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrBookingNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) list(c *gin.Context) {
	all := h.service.ListBookings(c.Request.Context())
	resp := make([]bookingResponse, 0, len(all))
	for i := range all {
		resp = append(resp, toBookingResponse(&all[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) html(c *gin.Context) {
	found, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(bookingNotFoundHTML))
		return
	}
	c.Render(http.StatusOK, render.HTML{Template: bookingPage, Data: toBookingResponse(found)})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	if !h.service.CancelBooking(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrBookingNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		BookingID:  b.ID,
		Name:       b.PassengerName,
		Email:      b.PassengerEmail,
		From:       b.Origin,
		To:         b.Destination,
		TravelDate: b.TravelDate,
		TrainID:    b.TrainID,
	}
}
