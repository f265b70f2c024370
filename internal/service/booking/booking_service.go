package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/metrics"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) bool
	ListBookings(ctx context.Context) []domain.Booking
}

// RouteValidator is the part of the schedule the ledger checks requests against.
type RouteValidator interface {
	RouteExists(origin, destination string) bool
	IsAvailableOn(origin, destination, travelDate string) bool
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	routes             RouteValidator
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	publishTimeout     time.Duration
	newID              func() string
}

// DefaultPublishTimeout bounds the event writes done inside a create or cancel.
const DefaultPublishTimeout = 2 * time.Second

type CreateBookingInput struct {
	PassengerName  string
	PassengerEmail string
	Origin         string
	Destination    string
	TravelDate     string
	TrainID        string
}

type BookingServiceOption func(*BookingService)

// WithEvents publishes booking lifecycle events to bookingTopic.
func WithEvents(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishTimeout overrides DefaultPublishTimeout. Non-positive values are ignored.
func WithPublishTimeout(timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	routes RouteValidator,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		routes:         routes,
		publishTimeout: DefaultPublishTimeout,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if !s.routes.RouteExists(input.Origin, input.Destination) {
		metrics.BookingsRejected.WithLabelValues("invalid_route").Inc()
		log.Debug().Str("from", input.Origin).Str("to", input.Destination).Msg("booking rejected: unknown route")
		return nil, domain.ErrInvalidRoute
	}
	if !s.routes.IsAvailableOn(input.Origin, input.Destination, input.TravelDate) {
		metrics.BookingsRejected.WithLabelValues("unavailable_on_date").Inc()
		log.Debug().Str("from", input.Origin).Str("to", input.Destination).Str("date", input.TravelDate).
			Msg("booking rejected: route does not run on date")
		return nil, domain.ErrRouteUnavailableOnDate
	}

	var booking domain.Booking
	if err := copier.Copy(&booking, &input); err != nil {
		return nil, fmt.Errorf("copy booking request: %w", err)
	}
	booking.ID = s.newID()

	if err := s.bookings.Create(ctx, &booking); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}
	metrics.BookingsCreated.Inc()
	log.Info().Str("booking_id", booking.ID).Str("train_id", booking.TrainID).Str("date", booking.TravelDate).Msg("booking created")

	if err := s.publish(ctx, kafka.EventBookingCreated, &booking); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking_created event")
	}
	return &booking, nil
}

// GetBooking looks id up exactly; it returns domain.ErrBookingNotFound when absent.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// CancelBooking removes the booking and reports whether it existed.
func (s *BookingService) CancelBooking(ctx context.Context, id string) bool {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return false
	}
	if !s.bookings.Delete(ctx, id) {
		return false
	}
	metrics.BookingsCancelled.Inc()
	log.Info().Str("booking_id", id).Msg("booking cancelled")

	if err := s.publish(ctx, kafka.EventBookingCancelled, current); err != nil {
		log.Warn().Err(err).Str("booking_id", id).Msg("failed to publish booking_cancelled event")
	}
	return true
}

func (s *BookingService) ListBookings(ctx context.Context) []domain.Booking {
	return s.bookings.List(ctx)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		TrainID:    booking.TrainID,
		From:       booking.Origin,
		To:         booking.Destination,
		TravelDate: booking.TravelDate,
		Name:       booking.PassengerName,
		Email:      booking.PassengerEmail,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
