package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/customer-crm/internal/httperr"
	"github.com/BruksfildServices01/customer-crm/internal/httpresp"
	ucCategory "github.com/BruksfildServices01/customer-crm/internal/usecase/category"
)

type CategoryHandler struct {
	list *ucCategory.ListCategories
}

func NewCategoryHandler(list *ucCategory.ListCategories) *CategoryHandler {
	return &CategoryHandler{list: list}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, categories)
}
