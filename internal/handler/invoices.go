package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bonison01/invoice-cargo/internal/apierror"
	"github.com/bonison01/invoice-cargo/internal/dto"
	"github.com/bonison01/invoice-cargo/internal/service"
)

type InvoicesHandler struct{ svc service.InvoiceService }

func NewInvoicesHandler(svc service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Saves the invoice header and its delivery items; amounts and aggregates are computed server-side.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body dto.SaveInvoiceRequest true "Invoice data"
// @Success      201  {object} dto.InvoiceResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/invoices [post]
func (h *InvoicesHandler) CreateInvoice(c *gin.Context) {
	var req dto.SaveInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Replaces the invoice header and its delivery items. A stored PDF path is invalidated.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id   path string                 true "Invoice UUID"
// @Param        body body dto.SaveInvoiceRequest true "Invoice data"
// @Success      200  {object} dto.InvoiceResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/invoices/{id} [put]
func (h *InvoicesHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SaveInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetInvoice godoc
// @Summary      Fetch an invoice
// @Description  Returns the invoice header joined with its delivery items.
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [get]
func (h *InvoicesHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Returns a paginated list filtered by payment status and invoice date.
// @Tags         invoices
// @Produce      json
// @Param        date   query string false "Invoice date YYYY-MM-DD"
// @Param        status query string false "paid | pending | all"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 50)"
// @Success      200    {object} dto.InvoiceListResponse
// @Failure      400    {object} apierror.APIError
// @Router       /v1/invoices [get]
func (h *InvoicesHandler) ListInvoices(c *gin.Context) {
	var filter dto.InvoiceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not list invoices"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Param        id path string true "Invoice UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [delete]
func (h *InvoicesHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Download the invoice PDF
// @Description  Renders the two-copy invoice document and returns it as an attachment.
// @Tags         invoices
// @Produce      application/pdf
// @Param        id path string true "Invoice UUID"
// @Success      200
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id}/pdf [get]
func (h *InvoicesHandler) ExportPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, filename, err := h.svc.ExportPDF(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

// SendPDF godoc
// @Summary      Email the invoice PDF to the receiver
// @Description  Queues an async job that renders the PDF, stores it and mails it to the receiver's email.
// @Tags         invoices
// @Param        id path string true "Invoice UUID"
// @Success      202
// @Failure      400 {object} apierror.APIError
// @Router       /v1/invoices/{id}/send [post]
func (h *InvoicesHandler) SendPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.SendPDF(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid invoice id"))
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
}
