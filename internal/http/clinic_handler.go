package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/service"
)

// ClinicHandler agrupa informes, recetas, directorio de médicos y citas.
type ClinicHandler struct {
	logger        *zap.Logger
	reports       *service.ReportService
	prescriptions *service.PrescriptionService
	doctors       *service.DoctorDirectory
	appointments  *service.AppointmentService
}

func NewClinicHandler(
	logger *zap.Logger,
	reports *service.ReportService,
	prescriptions *service.PrescriptionService,
	doctors *service.DoctorDirectory,
	appointments *service.AppointmentService,
) *ClinicHandler {
	return &ClinicHandler{
		logger:        logger,
		reports:       reports,
		prescriptions: prescriptions,
		doctors:       doctors,
		appointments:  appointments,
	}
}

// AnalyzeReport maneja POST /reports/analyze.
func (h *ClinicHandler) AnalyzeReport(c *gin.Context) {
	var req domain.ReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.reports.Analyze(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReport):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
		default:
			h.logger.Error("report analysis failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze report"})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

// Diseases maneja GET /reports/diseases.
func (h *ClinicHandler) Diseases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diseases": h.reports.Diseases()})
}

// Knowledge maneja GET /reports/knowledge?q=.
func (h *ClinicHandler) Knowledge(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"articles": h.reports.Knowledge(c.Query("q"))})
}

// AnalyzePrescription maneja POST /prescriptions/analyze (multipart, campo "file").
func (h *ClinicHandler) AnalyzePrescription(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	upload := service.PrescriptionUpload{
		Name:        file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	}
	res, err := h.prescriptions.Analyze(c.Request.Context(), upload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFileType), errors.Is(err, service.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
		default:
			h.logger.Error("prescription analysis failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze prescription"})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

// Doctors maneja GET /doctors?specialty=&location=.
func (h *ClinicHandler) Doctors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"doctors":     h.doctors.Search(c.Query("specialty"), c.Query("location")),
		"specialties": h.doctors.Specialties(),
	})
}

// Doctor maneja GET /doctors/:id.
func (h *ClinicHandler) Doctor(c *gin.Context) {
	doc, err := h.doctors.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AppointmentSlots maneja GET /appointments/slots.
func (h *ClinicHandler) AppointmentSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": service.AppointmentSlots})
}

// ListAppointments maneja GET /appointments.
func (h *ClinicHandler) ListAppointments(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	upcoming, past, err := h.appointments.List(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list appointments failed", zap.String("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

// BookAppointment maneja POST /appointments. date va como YYYY-MM-DD.
func (h *ClinicHandler) BookAppointment(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req struct {
		DoctorID  string `json:"doctor_id"`
		Specialty string `json:"specialty"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Type      string `json:"type"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid appointment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var date time.Time
	if s := strings.TrimSpace(req.Date); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = d
	}

	appt, err := h.appointments.Book(c.Request.Context(), claims.UserID, service.AppointmentRequest{
		DoctorID:  req.DoctorID,
		Specialty: req.Specialty,
		Date:      date,
		Time:      req.Time,
		Type:      domain.AppointmentType(strings.TrimSpace(req.Type)),
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAppointment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		case errors.Is(err, service.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("book appointment failed", zap.String("user_id", claims.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// CancelAppointment maneja POST /appointments/:id/cancel.
func (h *ClinicHandler) CancelAppointment(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	appt, err := h.appointments.Cancel(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		case errors.Is(err, service.ErrAppointmentClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("cancel appointment failed", zap.String("user_id", claims.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
