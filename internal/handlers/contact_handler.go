package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/customer-crm/internal/dto"
	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/httpresp"
	ucContact "github.com/BruksfildServices01/customer-crm/internal/usecase/contact"
)

// ======================================================
// HANDLER
// ======================================================

type ContactHandler struct {
	list   *ucContact.ListContacts
	create *ucContact.CreateContact
	get    *ucContact.GetContact
	update *ucContact.UpdateContact
	delete *ucContact.DeleteContact
}

func NewContactHandler(
	list *ucContact.ListContacts,
	create *ucContact.CreateContact,
	get *ucContact.GetContact,
	update *ucContact.UpdateContact,
	del *ucContact.DeleteContact,
) *ContactHandler {
	return &ContactHandler{
		list:   list,
		create: create,
		get:    get,
		update: update,
		delete: del,
	}
}

// ======================================================
// LIST (owned by a customer)
// ======================================================

func (h *ContactHandler) List(c *gin.Context) {
	customerID, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	contacts, err := h.list.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, contacts)
}

// ======================================================
// CREATE (owned by a customer)
// ======================================================

func (h *ContactHandler) Create(c *gin.Context) {
	customerID, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.create.Execute(c.Request.Context(), customerID, contactInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, contact)
}

// ======================================================
// SHOW
// ======================================================

func (h *ContactHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id", "contact")
	if !ok {
		return
	}

	contact, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, contact)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "contact")
	if !ok {
		return
	}

	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.update.Execute(c.Request.Context(), id, contactInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, contact)
}

// ======================================================
// DELETE
// ======================================================

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "contact")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Contact deleted successfully")
}

func contactInput(req dto.ContactRequest) ucContact.Input {
	return ucContact.Input{
		FirstName: req.FirstName.Value,
		LastName:  req.LastName.Value,
		Invalid:   req.InvalidFields(),
	}
}
