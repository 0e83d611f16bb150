package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chrmotors/complaint-service/internal/errs"
	"github.com/chrmotors/complaint-service/internal/model"
	"github.com/chrmotors/complaint-service/internal/service"
	"github.com/chrmotors/complaint-service/internal/validate"
	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	svc        *service.ComplaintService
	production bool
}

func NewComplaintHandler(svc *service.ComplaintService, production bool) *ComplaintHandler {
	return &ComplaintHandler{svc: svc, production: production}
}

// complaintRequest is the flattened submission body: complaint, vehicle and
// customer fields in one object.
type complaintRequest struct {
	ComplaintType        string `json:"complaintType"`
	Priority             string `json:"priority"`
	ComplaintTitle       string `json:"complaintTitle"`
	ComplaintDescription string `json:"complaintDescription"`
	DesiredResolution    string `json:"desiredResolution"`

	VehicleModel           string `json:"vehicleModel"`
	VehicleYear            string `json:"vehicleYear"`
	VinNumber              string `json:"vinNumber"`
	PurchaseDate           string `json:"purchaseDate"`
	DealerName             string `json:"dealerName"`
	PreviousServiceHistory string `json:"previousServiceHistory"`

	Name            string `json:"name"`
	Email           string `json:"email"`
	ContactNumber   string `json:"contactNumber"`
	AlternateNumber string `json:"alternateNumber"`
	Address         string `json:"address"`
}

// failBody is the generic failure response; raw error text only outside
// production.
func (h *ComplaintHandler) failBody(err error) gin.H {
	body := gin.H{
		"success": false,
		"message": "Failed to submit, please try again or contact us directly",
	}
	if !h.production && err != nil {
		body["error"] = err.Error()
	}
	return body
}

// Submit handles POST /api/complaint. A parse failure is the only error the
// caller ever sees from this path; every downstream step is best-effort.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, h.failBody(err))
		return
	}
	if fieldErrs := validate.Complaint(validate.ComplaintInput{
		Name:                 req.Name,
		Email:                req.Email,
		ContactNumber:        req.ContactNumber,
		ComplaintType:        req.ComplaintType,
		Priority:             req.Priority,
		ComplaintTitle:       req.ComplaintTitle,
		ComplaintDescription: req.ComplaintDescription,
		VehicleModel:         req.VehicleModel,
	}); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please correct the highlighted fields",
			"errors":  fieldErrs,
		})
		return
	}

	rec := service.NewComplaint(&model.Complaint{
		ComplaintType:          req.ComplaintType,
		Priority:               model.Priority(req.Priority),
		ComplaintTitle:         req.ComplaintTitle,
		ComplaintDescription:   req.ComplaintDescription,
		DesiredResolution:      req.DesiredResolution,
		VehicleModel:           req.VehicleModel,
		VehicleYear:            req.VehicleYear,
		VinNumber:              req.VinNumber,
		PurchaseDate:           req.PurchaseDate,
		DealerName:             req.DealerName,
		PreviousServiceHistory: req.PreviousServiceHistory,
		Name:                   req.Name,
		Email:                  req.Email,
		ContactNumber:          req.ContactNumber,
		AlternateNumber:        req.AlternateNumber,
		Address:                req.Address,
	})
	h.svc.SubmitComplaint(c.Request.Context(), rec)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Your complaint has been submitted successfully",
		"complaintId": rec.ComplaintID,
	})
}

// Get handles GET /api/complaints/:id (lookup by tracking ID).
func (h *ComplaintHandler) Get(c *gin.Context) {
	rec, err := h.svc.GetByComplaintID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "complaint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch complaint"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// List handles GET /api/complaints with optional filters and pagination.
func (h *ComplaintHandler) List(c *gin.Context) {
	filter := make(map[string]interface{})
	if v := c.Query("status"); v != "" {
		filter["status = ?"] = v
	}
	if v := c.Query("priority"); v != "" {
		filter["priority = ?"] = v
	}
	if v := c.Query("email"); v != "" {
		filter["email = ?"] = v
	}
	if v := c.Query("vehicle_model"); v != "" {
		filter["vehicle_model = ?"] = v
	}

	limit := 0
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	items, total, err := h.svc.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to list complaints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"complaints": items,
		"total":      total,
	})
}
