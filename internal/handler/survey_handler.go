package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/ustazlink/survey-backend/internal/model"
	"github.com/ustazlink/survey-backend/internal/repository"
	"github.com/ustazlink/survey-backend/internal/response"
	"github.com/ustazlink/survey-backend/internal/service"
	"github.com/ustazlink/survey-backend/internal/validator"
)

type SurveyHandler struct {
	surveyService *service.SurveyService
}

func NewSurveyHandler(surveyService *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

// SubmitStudent godoc
// POST /api/v1/surveys/student
func (h *SurveyHandler) SubmitStudent(c *gin.Context) {
	var req model.CreateStudentSurveyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	survey, fieldErrs, err := h.surveyService.SubmitStudent(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			response.Fail(c, http.StatusConflict, response.ErrDuplicatePhone)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if fieldErrs != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fieldErrs)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"survey": survey})
}

// SubmitTeacher godoc
// POST /api/v1/surveys/teacher
func (h *SurveyHandler) SubmitTeacher(c *gin.Context) {
	var req model.CreateTeacherSurveyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	survey, fieldErrs, err := h.surveyService.SubmitTeacher(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			response.Fail(c, http.StatusConflict, response.ErrDuplicatePhone)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if fieldErrs != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fieldErrs)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"survey": survey})
}

// ListStudents godoc
// GET /api/v1/surveys/student
func (h *SurveyHandler) ListStudents(c *gin.Context) {
	surveys, err := h.surveyService.ListStudents(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if surveys == nil {
		surveys = []model.StudentSurvey{}
	}
	response.Success(c, http.StatusOK, gin.H{"surveys": surveys})
}

// ListTeachers godoc
// GET /api/v1/surveys/teacher
func (h *SurveyHandler) ListTeachers(c *gin.Context) {
	surveys, err := h.surveyService.ListTeachers(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if surveys == nil {
		surveys = []model.TeacherSurvey{}
	}
	response.Success(c, http.StatusOK, gin.H{"surveys": surveys})
}

// GetStudent godoc
// GET /api/v1/surveys/student/:id
func (h *SurveyHandler) GetStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	survey, err := h.surveyService.GetStudent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"survey": survey})
}

// GetTeacher godoc
// GET /api/v1/surveys/teacher/:id
func (h *SurveyHandler) GetTeacher(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	survey, err := h.surveyService.GetTeacher(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"survey": survey})
}

// CheckPhone godoc
// GET /api/v1/surveys/{student,teacher}/check-phone?phone=...
//
// Lets the frontend flag a duplicate before the user fills the whole form.
// Registered per survey type so the path stays static next to /:id.
// A missing or malformed phone is a 400; the reasons ride in the body.
func (h *SurveyHandler) CheckPhone(surveyType model.SurveyType) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.surveyService.CheckPhone(c.Request.Context(), surveyType, c.Query("phone"))
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if !result.Valid {
			response.Success(c, http.StatusBadRequest, result)
			return
		}
		response.Success(c, http.StatusOK, result)
	}
}
