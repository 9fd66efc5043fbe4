//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/httptest"
	"room-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	bookingURL      = "/api/bookings/%s"
	cancelURL       = "/api/bookings/%s/cancel"
	paymentsURL     = "/api/bookings/%s/payments"
	paymentWaitURL  = "/api/bookings/%s/payment/wait"
	placeURL        = "/api/places/%s"
	bookedSlotsURL  = "/api/places/%s/booked-slots?date=%s"
	availabilityURL = "/api/places/%s/availability"
	quoteURL        = "/api/places/%s/quote"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func slots(s ...reqdto.SlotRequest) []reqdto.SlotRequest { return s }

func slot(date, start, end string) reqdto.SlotRequest {
	return reqdto.SlotRequest{Date: date, StartTime: start, EndTime: end}
}

func (s *BookingSuite) createBooking(placeID uuid.UUID, token string, sl []reqdto.SlotRequest) *resdto.CreateBookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
		reqdto.CreateBookingRequest{PlaceID: placeID, Slots: sl}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.CreateBookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return &created
}

// =============================================================================
// Booking lifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("create, pay and read back a booking", func() {
		t := s.T()
		placeID := dbtest.CreateTestPlace(t, s.DB, dbtest.DefaultPlace())
		_, token := s.Tokens.NewUser(t)

		created := s.createBooking(placeID, token, slots(
			slot("2030-06-10", "08:00", "18:00"),
			slot("2030-06-11", "09:00", "11:00"),
		))
		require.Equal(t, "pending", created.Status)
		require.Equal(t, 12, created.TotalHours)
		require.Equal(t, int64(9000+2*1500+2*1500), created.TotalPrice.Amount)
		require.Equal(t, 2, dbtest.CountBookingSlots(t, s.DB, created.ID))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentsURL, created.ID),
			reqdto.RecordPaymentRequest{Method: "card", PaymentID: "pi_" + uuid.NewString()}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		status, paymentStatus := dbtest.BookingState(t, s.DB, created.ID)
		require.Equal(t, "confirmed", status)
		require.Equal(t, "paid", paymentStatus)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))

		want := resdto.BookingResponse{
			ID:            created.ID,
			PlaceID:       placeID,
			PlaceName:     "Studio A",
			Status:        "confirmed",
			PaymentStatus: "paid",
			PaymentMethod: "card",
			TotalHours:    12,
			Slots: []resdto.BookingSlotResponse{
				{Date: "2030-06-10", StartTime: "08:00", EndTime: "18:00", Hours: 10, PriceType: "1 full day + 2h"},
				{Date: "2030-06-11", StartTime: "09:00", EndTime: "11:00", Hours: 2, PriceType: "2h"},
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "PaymentID", "PaidAt", "TotalPrice", "CreatedAt", "UpdatedAt"),
			cmpopts.IgnoreFields(resdto.BookingSlotResponse{}, "Price"),
		}
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentWaitURL, created.ID)+"?immediate=true", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var outcome resdto.PaymentOutcomeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &outcome))
		require.True(t, outcome.IsPaid)
		require.Equal(t, 1, outcome.Attempts)
	})

	s.Run("someone else cannot read or cancel the booking", func() {
		t := s.T()
		placeID := dbtest.CreateTestPlace(t, s.DB, dbtest.DefaultPlace())
		_, owner := s.Tokens.NewUser(t)
		_, stranger := s.Tokens.NewUser(t)

		created := s.createBooking(placeID, owner, slots(slot("2030-06-10", "09:00", "10:00")))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("unauthenticated requests are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")

		userID := uuid.New()
		expired := s.Tokens.CreateExpiredToken(t, userID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// Availability and conflicts
// =============================================================================

func (s *BookingSuite) TestConflicts() {
	s.Run("overlapping and cooldown slots are refused until the booking is canceled", func() {
		t := s.T()
		fixture := dbtest.DefaultPlace()
		fixture.CooldownMinutes = 30
		placeID := dbtest.CreateTestPlace(t, s.DB, fixture)
		_, first := s.Tokens.NewUser(t)
		_, second := s.Tokens.NewUser(t)

		created := s.createBooking(placeID, first, slots(slot("2030-06-10", "09:00", "11:00")))

		// 11:00 starts inside the 30 minute cooldown
		body := reqdto.CreateBookingRequest{PlaceID: placeID, Slots: slots(slot("2030-06-10", "11:00", "12:00"))}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, second)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(availabilityURL, placeID),
			reqdto.SlotsRequest{Slots: body.Slots}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var avail resdto.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &avail))
		require.False(t, avail.Available)
		require.Len(t, avail.Conflicts, 1)
		require.Equal(t, "11:30", avail.Conflicts[0].CooldownUntil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, first)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, second)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("concurrent requests for the same slot book it once", func() {
		t := s.T()
		placeID := dbtest.CreateTestPlace(t, s.DB, dbtest.DefaultPlace())
		body := reqdto.CreateBookingRequest{PlaceID: placeID, Slots: slots(slot("2030-06-12", "10:00", "12:00"))}

		const workers = 5
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			_, token := s.Tokens.NewUser(t)
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, token).Code
			}()
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
			} else {
				require.Equal(t, http.StatusConflict, c)
			}
		}
		require.Equal(t, 1, created)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookedSlotsURL, placeID, "2030-06-12"), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var booked []resdto.BookedSlotResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &booked))
		require.Len(t, booked, 1)
	})
}

// =============================================================================
// Places and listing
// =============================================================================

func (s *BookingSuite) TestPlaceAndList() {
	s.Run("place details and quote", func() {
		t := s.T()
		placeID := dbtest.CreateTestPlace(t, s.DB, dbtest.DefaultPlace())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(placeURL, placeID), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var place resdto.PlaceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &place))
		require.Equal(t, "Studio A", place.Name)
		require.Equal(t, int64(1500), place.HourlyRate.Amount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quoteURL, placeID),
			reqdto.SlotsRequest{Slots: slots(slot("2030-06-10", "00:00", "24:00"))}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var quote resdto.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
		require.Equal(t, 24, quote.TotalHours)
		require.Equal(t, int64(3*9000), quote.TotalPrice.Amount)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(placeURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("listing pages through own bookings only", func() {
		t := s.T()
		placeID := dbtest.CreateTestPlace(t, s.DB, dbtest.DefaultPlace())
		_, token := s.Tokens.NewUser(t)
		_, other := s.Tokens.NewUser(t)

		var want []uuid.UUID
		for day := 10; day < 15; day++ {
			created := s.createBooking(placeID, token, slots(slot(fmt.Sprintf("2030-07-%02d", day), "09:00", "10:00")))
			want = append([]uuid.UUID{created.ID}, want...)
		}
		s.createBooking(placeID, other, slots(slot("2030-07-20", "09:00", "10:00")))

		var got []uuid.UUID
		url := bookingsURL + "?limit=2"
		for pages := 0; pages < 10; pages++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var page resdto.BookingListResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
			for _, it := range page.Items {
				got = append(got, it.ID)
			}
			if page.NextCursor == "" {
				break
			}
			url = bookingsURL + "?limit=2&after=" + page.NextCursor
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("listing mismatch (-want +got):\n%s", diff)
		}
	})
}
