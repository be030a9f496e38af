package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smartbizsa/backend/internal/invoice/domain"
	tenantdomain "github.com/smartbizsa/backend/internal/tenant/domain"
)

type generateInvoiceRequest struct {
	BusinessID string                   `json:"business_id"`
	ClientName string                   `json:"client_name"`
	ClientVAT  string                   `json:"client_vat"`
	Items      []invoicedomain.LineItem `json:"items"`
	DueDate    string                   `json:"due_date"`
}

func (s *Server) handleGenerateInvoice(c *gin.Context) {
	var req generateInvoiceRequest
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.ClientName) == "" || len(req.Items) == 0 {
		AbortWithError(c, badRequest("Missing required fields: client_name and items are required"))
		return
	}

	businessID := req.BusinessID
	if businessID == "" {
		businessID = tenantdomain.DefaultBusinessID
	}

	gen := invoicedomain.GenerateRequest{
		BusinessID: businessID,
		ClientName: req.ClientName,
		Items:      req.Items,
	}
	if req.ClientVAT != "" {
		vat := req.ClientVAT
		gen.ClientVAT = &vat
	}
	if req.DueDate != "" {
		due, err := parseDate(req.DueDate)
		if err != nil {
			AbortWithError(c, badRequest("Invalid due_date format"))
			return
		}
		gen.DueDate = &due
	}

	view, err := s.invoiceSvc.Generate(c.Request.Context(), gen)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (s *Server) handleListInvoices(c *gin.Context) {
	views, err := s.invoiceSvc.List(c.Request.Context(), c.Param("business_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if views == nil {
		views = []invoicedomain.View{}
	}
	c.JSON(http.StatusOK, gin.H{"invoices": views})
}

func (s *Server) handleGetInvoice(c *gin.Context) {
	view, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleInvoicePDF(c *gin.Context) {
	pdf, filename, err := s.invoiceSvc.RenderPDF(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// parseDate accepts a bare date or a full timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
