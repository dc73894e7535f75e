package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ustazlink/survey-backend/internal/config"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/response"
	"github.com/ustazlink/survey-backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	cfg              *config.Config
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, cfg: cfg}
}

// Students godoc
// GET /api/v1/admin/analytics/students
func (h *AnalyticsHandler) Students(c *gin.Context) {
	report, err := h.analyticsService.StudentAnalytics(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// Teachers godoc
// GET /api/v1/admin/analytics/teachers
func (h *AnalyticsHandler) Teachers(c *gin.Context) {
	report, err := h.analyticsService.TeacherAnalytics(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// Summary godoc
// GET /api/v1/admin/analytics/summary
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	report, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// Filtered godoc
// GET /api/v1/admin/analytics/filtered?gender=...&age_range=...&min_price=...
func (h *AnalyticsHandler) Filtered(c *gin.Context) {
	filter, ok := parseAnalyticsFilter(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.FilteredAnalytics(c.Request.Context(), *filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// Users godoc
// GET /api/v1/admin/analytics/users?user_type=all&search=...&page=1
func (h *AnalyticsHandler) Users(c *gin.Context) {
	filter, ok := parseAnalyticsFilter(c)
	if !ok {
		return
	}

	userType := c.DefaultQuery("user_type", "all")
	switch userType {
	case "all", "student", "teacher":
	default:
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.cfg.DefaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > 500 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	report, err := h.analyticsService.UserList(c.Request.Context(), service.UserListFilter{
		UserType:         userType,
		Gender:           filter.Gender,
		AgeRange:         filter.AgeRange,
		MinPrice:         filter.MinPrice,
		MaxPrice:         filter.MaxPrice,
		Frequency:        filter.Frequency,
		SessionLength:    filter.SessionLength,
		PlatformInterest: filter.PlatformInterest,
		Search:           c.Query("search"),
		Page:             page,
		PageSize:         pageSize,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"users": report.Users}, &response.Pagination{
		Page:       report.Page,
		PerPage:    report.PageSize,
		TotalItems: report.Total,
		TotalPages: report.TotalPages,
	})
}

// parseAnalyticsFilter reads the shared filter query params. On a malformed
// value it writes the error response and returns ok=false.
func parseAnalyticsFilter(c *gin.Context) (*service.AnalyticsFilter, bool) {
	var filter service.AnalyticsFilter

	if raw := c.Query("gender"); raw != "" {
		gender := model.Gender(raw)
		if gender != model.GenderMale && gender != model.GenderFemale {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return nil, false
		}
		filter.Gender = &gender
	}
	if raw := c.Query("age_range"); raw != "" {
		ageRange := model.AgeRange(raw)
		if !validAgeRange(ageRange) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return nil, false
		}
		filter.AgeRange = &ageRange
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return nil, false
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return nil, false
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("frequency"); raw != "" {
		frequency := model.Frequency(raw)
		switch frequency {
		case model.FrequencyOnceWeek, model.FrequencyTwiceWeek, model.FrequencyMore:
		default:
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return nil, false
		}
		filter.Frequency = &frequency
	}
	if raw := c.Query("session_length"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || !validSessionLength(v) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return nil, false
		}
		filter.SessionLength = &v
	}
	if raw := c.Query("platform_interest"); raw != "" {
		interest := service.PlatformInterestFilter(raw)
		if interest != service.InterestWilling && interest != service.InterestNotWilling {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return nil, false
		}
		filter.PlatformInterest = &interest
	}

	return &filter, true
}

func validAgeRange(a model.AgeRange) bool {
	for _, known := range model.AgeRanges {
		if a == known {
			return true
		}
	}
	return false
}

func validSessionLength(v int) bool {
	for _, known := range model.SessionLengths {
		if v == known {
			return true
		}
	}
	return false
}
