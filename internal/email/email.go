package email

import (
	"context"

	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Sender delivers booking notifications. Delivery is a log line for now.
type Sender struct {
	logger zerolog.Logger
}

func NewSender() *Sender {
	return &Sender{logger: log.With().Str("component", "email").Logger()}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.Info().
		Str("to", event.Email).
		Str("type", event.Type).
		Str("booking_id", event.BookingID).
		Str("train_id", event.TrainID).
		Str("travel_date", event.TravelDate).
		Msgf("send email to %s about %s", event.Email, event.Type)
	return nil
}
