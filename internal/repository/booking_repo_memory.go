package repository

import (
	"context"
	"sync"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) bool
	List(ctx context.Context) []domain.Booking
}

// MemoryBookingRepository keeps bookings in process memory. Every method is
// atomic on its own; nothing spans calls.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	order    []string
}

func NewBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]domain.Booking)}
}

// NewSeededBookingRepository returns a store holding the two demo bookings.
func NewSeededBookingRepository(ctx context.Context) (*MemoryBookingRepository, error) {
	repo := NewBookingRepository()
	for _, b := range DemoBookings() {
		if err := repo.Create(ctx, &b); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// DemoBookings are written straight to the store and skip schedule validation.
func DemoBookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:             uuid.NewString(),
			PassengerName:  "Alice Tremblay",
			PassengerEmail: "alice@example.ca",
			Origin:         "Montreal",
			Destination:    "Quebec City",
			TravelDate:     "2025-06-01",
			TrainID:        "T001",
		},
		{
			ID:             uuid.NewString(),
			PassengerName:  "John Singh",
			PassengerEmail: "john@example.ca",
			Origin:         "Toronto",
			Destination:    "Ottawa",
			TravelDate:     "2025-06-10",
			TrainID:        "T003",
		},
	}
}

func (r *MemoryBookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return domain.ErrDuplicateBooking
	}
	r.bookings[booking.ID] = *booking
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *MemoryBookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

// Delete reports whether a booking was removed. Of several concurrent deletes
// of the same id exactly one returns true.
func (r *MemoryBookingRepository) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return false
	}
	delete(r.bookings, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *MemoryBookingRepository) List(_ context.Context) []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]domain.Booking, 0, len(r.order))
	for _, id := range r.order {
		bookings = append(bookings, r.bookings[id])
	}
	return bookings
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
