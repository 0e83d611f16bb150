package handler

import (
	"net/http"

	"github.com/chrmotors/complaint-service/internal/model"
	"github.com/chrmotors/complaint-service/internal/service"
	"github.com/chrmotors/complaint-service/internal/validate"
	"github.com/gin-gonic/gin"
)

type testDriveRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contactNumber"`
	VehicleModel   string `json:"vehicleModel"`
	PreferredDate  string `json:"preferredDate"`
	PreferredTime  string `json:"preferredTime"`
	DealerLocation string `json:"dealerLocation"`
	Message        string `json:"message"`
}

// SubmitTestDrive handles POST /api/test-drive with the same contract shape
// as the complaint endpoint.
func (h *ComplaintHandler) SubmitTestDrive(c *gin.Context) {
	var req testDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, h.failBody(err))
		return
	}
	if fieldErrs := validate.TestDrive(validate.TestDriveInput{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		VehicleModel:  req.VehicleModel,
		PreferredDate: req.PreferredDate,
	}); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please correct the highlighted fields",
			"errors":  fieldErrs,
		})
		return
	}

	rec := service.NewTestDrive(&model.TestDriveRequest{
		Name:           req.Name,
		Email:          req.Email,
		ContactNumber:  req.ContactNumber,
		VehicleModel:   req.VehicleModel,
		PreferredDate:  req.PreferredDate,
		PreferredTime:  req.PreferredTime,
		DealerLocation: req.DealerLocation,
		Message:        req.Message,
	})
	h.svc.SubmitTestDrive(c.Request.Context(), rec)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Your test drive request has been submitted successfully",
		"bookingId": rec.BookingID,
	})
}
