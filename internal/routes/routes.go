package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/customer-crm/internal/config"
	"github.com/BruksfildServices01/customer-crm/internal/handlers"
	infraRepo "github.com/BruksfildServices01/customer-crm/internal/infra/repository"
	"github.com/BruksfildServices01/customer-crm/internal/middleware"
	ucCategory "github.com/BruksfildServices01/customer-crm/internal/usecase/category"
	ucContact "github.com/BruksfildServices01/customer-crm/internal/usecase/contact"
	ucCustomer "github.com/BruksfildServices01/customer-crm/internal/usecase/customer"
)

// NewRouter builds the engine with the global middleware chain, the
// health check and every API route.
func NewRouter(db *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(cfg.CORS.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, db, cfg, log)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA
	// ======================================================
	categoryRepo := infraRepo.NewCategoryGormRepository(db)
	customerRepo := infraRepo.NewCustomerGormRepository(db, cfg.Search.CaseSensitive)
	contactRepo := infraRepo.NewContactGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	listCategoriesUC := ucCategory.NewListCategories(categoryRepo, log)

	listCustomersUC := ucCustomer.NewListCustomers(customerRepo, log)
	createCustomerUC := ucCustomer.NewCreateCustomer(customerRepo, log)
	getCustomerUC := ucCustomer.NewGetCustomer(customerRepo, log)
	updateCustomerUC := ucCustomer.NewUpdateCustomer(customerRepo, log)
	deleteCustomerUC := ucCustomer.NewDeleteCustomer(customerRepo, log)

	listContactsUC := ucContact.NewListContacts(contactRepo, log)
	createContactUC := ucContact.NewCreateContact(contactRepo, log)
	getContactUC := ucContact.NewGetContact(contactRepo, log)
	updateContactUC := ucContact.NewUpdateContact(contactRepo, log)
	deleteContactUC := ucContact.NewDeleteContact(contactRepo, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	categoryHandler := handlers.NewCategoryHandler(listCategoriesUC)

	customerHandler := handlers.NewCustomerHandler(
		listCustomersUC,
		createCustomerUC,
		getCustomerUC,
		updateCustomerUC,
		deleteCustomerUC,
	)

	contactHandler := handlers.NewContactHandler(
		listContactsUC,
		createContactUC,
		getContactUC,
		updateContactUC,
		deleteContactUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/customers", customerHandler.List)
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers/:id", customerHandler.Show)
		api.PUT("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)

		api.GET("/categories", categoryHandler.List)

		api.GET("/customers/:id/contacts", contactHandler.List)
		api.POST("/customers/:id/contacts", contactHandler.Create)
		api.GET("/contacts/:id", contactHandler.Show)
		api.PUT("/contacts/:id", contactHandler.Update)
		api.DELETE("/contacts/:id", contactHandler.Delete)
	}
}
