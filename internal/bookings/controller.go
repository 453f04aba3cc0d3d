package bookings

import (
	"errors"
	"net/http"
	"sort"

	"github.com/KoIa247/SeatingApp/internal/seatmap"
	"github.com/KoIa247/SeatingApp/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetBookings returns the occupancy snapshot for one show instance.
func (c *Controller) GetBookings(ctx *gin.Context) {
	eventDate := ctx.Query("event_date")
	if eventDate == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "event_date is required", nil, "missing event_date")
		return
	}

	bookings, err := c.service.GetBookings(ctx.Request.Context(), eventDate, ctx.Query("event_time"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) ListInstances(ctx *gin.Context) {
	instances, err := c.service.ListInstances(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list show instances", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Show instances retrieved successfully", instances, nil)
}

func (c *Controller) GetOccupancy(ctx *gin.Context) {
	eventDate := ctx.Query("event_date")
	if eventDate == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "event_date is required", nil, "missing event_date")
		return
	}

	occupancy, err := c.service.GetOccupancy(ctx.Request.Context(), eventDate, ctx.Query("event_time"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get occupancy", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Occupancy retrieved successfully", occupancy, nil)
}

// GetSeatRoles exposes the role legend to the grid UI.
func (c *Controller) GetSeatRoles(ctx *gin.Context) {
	roles := make([]SeatRoleResponse, 0, len(seatmap.RoleColors))
	for role, color := range seatmap.RoleColors {
		roles = append(roles, SeatRoleResponse{Role: role, Color: color})
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Role < roles[j].Role })

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat roles retrieved successfully", roles, nil)
}

func (c *Controller) AssignSeat(ctx *gin.Context) {
	var req AssignSeatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.AssignSeat(ctx.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidSeatType) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to assign seat", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat assigned successfully", booking, nil)
}

func (c *Controller) AssignSeats(ctx *gin.Context) {
	var req AssignSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	bookings, err := c.service.AssignSeats(ctx.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidSeatType) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to assign seats", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats assigned successfully", bookings, nil)
}

func (c *Controller) RemoveSeat(ctx *gin.Context) {
	seatNumber := ctx.Query("seat_number")
	eventDate := ctx.Query("event_date")
	eventTime := ctx.Query("event_time")
	if seatNumber == "" || eventDate == "" || eventTime == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "seat_number, event_date and event_time are required", nil, "missing query parameters")
		return
	}

	if err := c.service.RemoveSeat(ctx.Request.Context(), seatNumber, eventDate, eventTime); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking deleted successfully", nil, nil)
}

func (c *Controller) ClearInstance(ctx *gin.Context) {
	eventDate := ctx.Query("event_date")
	eventTime := ctx.Query("event_time")
	if eventDate == "" || eventTime == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "event_date and event_time are required", nil, "missing query parameters")
		return
	}

	if err := c.service.ClearInstance(ctx.Request.Context(), eventDate, eventTime); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to clear bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "All bookings for instance deleted", nil, nil)
}
