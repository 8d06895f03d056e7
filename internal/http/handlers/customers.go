package handlers

import (
	"net/http"

	"travelcenter/internal/domain/models"
	"travelcenter/internal/http/middleware"
	"travelcenter/internal/services"

	"github.com/gin-gonic/gin"
)

func customerService(c *gin.Context) services.CustomerService {
	return services.CustomerService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/customers
func GetCustomers(c *gin.Context) {
	customers, err := customerService(c).ListCustomers()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GET /api/customers/:id
func GetCustomerByID(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	customer, err := customerService(c).GetCustomerByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// POST /api/customers
func CreateCustomer(c *gin.Context) {
	var req models.CustomerInput
	if !BindJSONOrError(c, &req) {
		return
	}
	customer, err := customerService(c).AddCustomer(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "customer created successfully", "customer": customer})
}

// PUT /api/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req models.CustomerInput
	if !BindJSONOrError(c, &req) {
		return
	}
	customer, err := customerService(c).UpdateCustomer(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer updated successfully", "customer": customer})
}

// DELETE /api/customers/:id
func DeleteCustomer(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := customerService(c).DeleteCustomer(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted successfully"})
}
