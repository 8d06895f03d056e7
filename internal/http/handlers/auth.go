package handlers

import (
	"net/http"

	"travelcenter/internal/domain/models"
	"travelcenter/internal/http/middleware"
	"travelcenter/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.CustomerService{RequestID: middleware.GetRequestID(c)}
	customer, err := svc.Login(req.Code, req.Password)
	if err != nil {
		// one generic response for every failure mode
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
		return
	}

	token, err := middleware.NewCustomerToken(customer.ID, customer.Code)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "login successful",
		"token":    token,
		"customer": customer,
	})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req models.CustomerInput
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.CustomerService{RequestID: middleware.GetRequestID(c)}
	customer, err := svc.Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "registration successful",
		"customer": customer,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	svc := services.CustomerService{RequestID: middleware.GetRequestID(c)}
	customer, err := svc.GetCustomerByID(middleware.GetCustomerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
