package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hospital-queue-server/internal/middleware"
	"hospital-queue-server/internal/queue"
	"hospital-queue-server/internal/store"
	"hospital-queue-server/internal/utils"
)

// QueueHandler exposes the queue engine over HTTP: booking, doctor actions
// and queue views. Audit persistence happens here, outside the engine's
// critical section.
type QueueHandler struct {
	Engine *queue.Engine
	Store  *store.Appointments
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(engine *queue.Engine, appointments *store.Appointments) *QueueHandler {
	return &QueueHandler{Engine: engine, Store: appointments}
}

// BookAppointmentRequest represents the request body for booking.
type BookAppointmentRequest struct {
	PatientID    string `json:"patientId" binding:"required"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

// BookAppointment handles booking with automatic doctor assignment.
func (h *QueueHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.Engine.Book(c.Request.Context(), req.PatientID, req.DepartmentID)
	if err != nil {
		respondQueueError(c, err)
		return
	}

	if err := h.Store.Save(c.Request.Context(), &appt); err != nil {
		utils.InternalServerError(c, "Appointment "+appt.Token+" queued but audit record failed: "+err.Error())
		return
	}

	utils.Created(c, "Appointment booked successfully", appt)
}

// CallNext handles a doctor calling the next patient from their queue.
func (h *QueueHandler) CallNext(c *gin.Context) {
	doctorID := c.Param("id")
	authedID, exists := middleware.GetDoctorIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor not authenticated")
		return
	}
	if doctorID != authedID {
		utils.Forbidden(c, "Doctors can only call patients from their own queue")
		return
	}

	appt, err := h.Engine.CallNext(doctorID)
	if err != nil {
		respondQueueError(c, err)
		return
	}

	if err := h.Store.Update(c.Request.Context(), &appt); err != nil {
		utils.InternalServerError(c, "Patient called but audit record failed: "+err.Error())
		return
	}

	utils.Success(c, "Patient called", appt)
}

// CompleteAppointment handles finishing an in-progress consultation.
func (h *QueueHandler) CompleteAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	appt, err := h.Engine.Complete(appointmentID)
	if err != nil {
		respondQueueError(c, err)
		return
	}

	if err := h.Store.Update(c.Request.Context(), &appt); err != nil {
		utils.InternalServerError(c, "Appointment completed but audit record failed: "+err.Error())
		return
	}

	utils.Success(c, "Appointment completed", appt)
}

// CancelAppointment handles cancelling a waiting appointment.
func (h *QueueHandler) CancelAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	appt, err := h.Engine.Cancel(appointmentID)
	if err != nil {
		respondQueueError(c, err)
		return
	}

	if err := h.Store.Update(c.Request.Context(), &appt); err != nil {
		utils.InternalServerError(c, "Appointment cancelled but audit record failed: "+err.Error())
		return
	}

	utils.Success(c, "Appointment cancelled", appt)
}

// GetQueue handles fetching the queue across all doctors.
func (h *QueueHandler) GetQueue(c *gin.Context) {
	utils.Success(c, "Queue fetched successfully", h.Engine.QueueSnapshot(""))
}

// GetDoctorQueue handles fetching one doctor's queue in service order.
func (h *QueueHandler) GetDoctorQueue(c *gin.Context) {
	doctorID := c.Param("id")
	utils.Success(c, "Queue fetched successfully", h.Engine.QueueSnapshot(doctorID))
}

// GetDashboardStats handles fetching today's aggregate queue figures.
func (h *QueueHandler) GetDashboardStats(c *gin.Context) {
	utils.Success(c, "Stats fetched successfully", h.Engine.DashboardStats())
}

// respondQueueError maps engine errors onto HTTP responses.
func respondQueueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queue.ErrUnknownPatient):
		utils.NotFound(c, "Patient not found")
	case errors.Is(err, queue.ErrUnknownDepartment):
		utils.NotFound(c, "Department not found")
	case errors.Is(err, queue.ErrNotFound):
		utils.NotFound(c, "Appointment not found")
	case errors.Is(err, queue.ErrNoCapacity):
		utils.Conflict(c, "No doctor in this department has remaining capacity today")
	case errors.Is(err, queue.ErrEmptyQueue):
		utils.Conflict(c, "No patients are waiting in this queue")
	case errors.Is(err, queue.ErrAlreadyInProgress):
		utils.Conflict(c, "Finish the current consultation before calling the next patient")
	case errors.Is(err, queue.ErrInvalidState):
		utils.Conflict(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}
