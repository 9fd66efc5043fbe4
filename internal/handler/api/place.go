package api

import (
	"net/http"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaceHandler struct {
	cmds commands.BookingCommands
	q    queries.PlaceQueries
}

func NewPlaceHandler(cmds commands.BookingCommands, q queries.PlaceQueries) *PlaceHandler {
	return &PlaceHandler{cmds: cmds, q: q}
}

// @Summary Get place
// @Description Get a bookable place with its pricing
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} resdto.PlaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /places/{id} [get]
func (h *PlaceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load place")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlaceView(view))
}

// @Summary List booked slots
// @Description Booked slots of a place for one day, canceled bookings excluded
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookedSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /places/{id}/booked-slots [get]
func (h *PlaceHandler) BookedSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	items, err := h.q.BookedSlots(c.Request.Context(), id, date)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load booked slots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedSlots(items))
}

// @Summary Quote
// @Description Price a selection of slots without booking them
// @Tags places
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Param request body reqdto.SlotsRequest true "Selected slots"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /places/{id}/quote [post]
func (h *PlaceHandler) Quote(c *gin.Context) {
	id, inputs, ok := bindPlaceSlots(c)
	if !ok {
		return
	}
	result, err := h.cmds.Quote(c.Request.Context(), id, inputs)
	if err != nil {
		abortWithUsecaseError(c, err, "Quote failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(result))
}

// @Summary Check availability
// @Description Check a selection of slots against existing bookings and their cooldown
// @Tags places
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Param request body reqdto.SlotsRequest true "Selected slots"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /places/{id}/availability [post]
func (h *PlaceHandler) Availability(c *gin.Context) {
	id, inputs, ok := bindPlaceSlots(c)
	if !ok {
		return
	}
	result, err := h.cmds.CheckAvailability(c.Request.Context(), id, inputs)
	if err != nil {
		abortWithUsecaseError(c, err, "Availability check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

func bindPlaceSlots(c *gin.Context) (uuid.UUID, []commands.SlotInput, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, nil, false
	}
	var req reqdto.SlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return uuid.Nil, nil, false
	}
	inputs, err := req.ToInputs()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return uuid.Nil, nil, false
	}
	return id, inputs, true
}
