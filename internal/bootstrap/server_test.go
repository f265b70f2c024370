package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingJSON struct {
	BookingID  string `json:"bookingId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	From       string `json:"from"`
	To         string `json:"to"`
	TravelDate string `json:"travelDate"`
	TrainID    string `json:"trainId"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := repository.LoadTrainCatalog("")
	require.NoError(t, err)
	bookings, err := repository.NewSeededBookingRepository(context.Background())
	require.NoError(t, err)

	cfg := config.Default()
	cfg.HTTP.Swagger = true

	return NewRouter(cfg,
		trains.NewTrainService(catalog, nil),
		booking.NewBookingService(bookings, catalog),
	)
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRouter_Trains(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/trains", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 16)
	assert.Equal(t, "T001", list[0]["trainId"])
	assert.Equal(t, "Mon-Fri", list[0]["daysOfOperation"])
}

func TestRouter_Search(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name string
		path string
		code int
	}{
		{name: "Monday", path: "/trains/search?from=Montreal&to=Quebec%20City&date=2025-06-02", code: http.StatusOK},
		{name: "Tuesday", path: "/trains/search?from=Montreal&to=Quebec%20City&date=2025-06-03", code: http.StatusNotFound},
		{name: "Bad date", path: "/trains/search?from=Montreal&to=Toronto&date=not-a-date", code: http.StatusNotFound},
		{name: "Missing date", path: "/trains/search?from=Montreal&to=Toronto", code: http.StatusBadRequest},
		{name: "Empty from", path: "/trains/search?from=&to=Toronto&date=2025-06-02", code: http.StatusNotFound},
		{name: "Clamped day", path: "/trains/search?from=Montreal&to=Quebec%20City&date=2025-02-30", code: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, tc.path, "")
			assert.Equal(t, tc.code, w.Code, w.Body.String())
		})
	}
}

func TestRouter_SeededBookings(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/bookings/all", "")
	require.Equal(t, http.StatusOK, w.Code)

	var all []bookingJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, "Alice Tremblay", all[0].Name)
	assert.Equal(t, "John Singh", all[1].Name)
}

func TestRouter_BookingLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/bookings",
		`{"name":"Marie Roy","email":"marie@example.ca","from":"Montreal","to":"Quebec City","travelDate":"2025-06-02","trainId":"T001"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created bookingJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.BookingID)
	assert.Equal(t, "Marie Roy", created.Name)
	assert.Equal(t, "T001", created.TrainID)

	w = do(t, router, http.MethodGet, "/bookings/"+created.BookingID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var found bookingJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Equal(t, created, found)

	w = do(t, router, http.MethodGet, "/bookings/html/"+created.BookingID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.BookingID)

	w = do(t, router, http.MethodGet, "/bookings/all", "")
	var all []bookingJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	w = do(t, router, http.MethodDelete, "/bookings/"+created.BookingID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodDelete, "/bookings/"+created.BookingID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodGet, "/bookings/"+created.BookingID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_BookingRejected(t *testing.T) {
	router := newTestRouter(t)

	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "Tuesday on Mon-Fri",
			body:    `{"name":"A","email":"a@example.ca","from":"Montreal","to":"Quebec City","travelDate":"2025-06-03","trainId":"T001"}`,
			message: "no train available for this route on the selected date",
		},
		{
			name:    "Unknown route",
			body:    `{"name":"A","email":"a@example.ca","from":"Nowhere","to":"Nowhere2","travelDate":"2025-06-02","trainId":"T001"}`,
			message: "no train available for this route",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/bookings", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.message, resp["error"])
		})
	}
}

func TestRouter_Docs(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/docs/swagger.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodGet, "/trains/search?from=Montreal&to=Toronto&date=2025-06-02", "")

	w := do(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "railbooking_train_searches_total")
}

func TestRun_StopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1:0"

	catalog, err := repository.LoadTrainCatalog("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg, trains.NewTrainService(catalog, nil), booking.NewBookingService(repository.NewBookingRepository(), catalog))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := config.Default()
	cfg.HTTP.Address = lis.Addr().String()

	catalog, err := repository.LoadTrainCatalog("")
	require.NoError(t, err)

	err = Run(context.Background(), cfg, trains.NewTrainService(catalog, nil), booking.NewBookingService(repository.NewBookingRepository(), catalog))
	assert.Error(t, err)
}
