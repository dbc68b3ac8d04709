package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/customer-crm/internal/domain/customer"
	"github.com/BruksfildServices01/customer-crm/internal/dto"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/httpresp"
	ucCustomer "github.com/BruksfildServices01/customer-crm/internal/usecase/customer"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	list   *ucCustomer.ListCustomers
	create *ucCustomer.CreateCustomer
	get    *ucCustomer.GetCustomer
	update *ucCustomer.UpdateCustomer
	delete *ucCustomer.DeleteCustomer
}

func NewCustomerHandler(
	list *ucCustomer.ListCustomers,
	create *ucCustomer.CreateCustomer,
	get *ucCustomer.GetCustomer,
	update *ucCustomer.UpdateCustomer,
	del *ucCustomer.DeleteCustomer,
) *CustomerHandler {
	return &CustomerHandler{
		list:   list,
		create: create,
		get:    get,
		update: update,
		delete: del,
	}
}

type CustomerListResponse struct {
	Customers httpresp.Paginator[dto.CustomerListItem] `json:"customers"`
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	filter := domain.ListFilter{Page: queryPage(c)}

	// search applies whenever the parameter is present, even empty
	if search, ok := c.GetQuery("search"); ok {
		filter.Search = &search
	}

	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			// no category can match a non-numeric id
			id = 0
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	out, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, CustomerListResponse{
		Customers: httpresp.NewPaginator(out.Items, out.Total, out.Page, out.PerPage),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.create.Execute(c.Request.Context(), customerInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, customer)
}

// ======================================================
// SHOW
// ======================================================

func (h *CustomerHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	detail, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, detail)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.update.Execute(c.Request.Context(), id, customerInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, customer)
}

// ======================================================
// DELETE
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Customer deleted successfully")
}

func customerInput(req dto.CustomerRequest) ucCustomer.Input {
	return ucCustomer.Input{
		Name:        req.Name.Value,
		Reference:   req.Reference.Value,
		CategoryID:  req.CategoryID.Value,
		StartDate:   req.StartDate.Value,
		Description: req.Description.Value,
		Invalid:     req.InvalidFields(),
	}
}
