package product

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nkaewam/storefront/internal/api/request"
	"github.com/nkaewam/storefront/internal/models"
)

// Handler handles HTTP requests for product operations
type Handler struct {
	service *Service
}

// ProvideHandler creates a new product handler
func ProvideHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetProducts retrieves all products
// @Summary Get all products
// @Description Get every product in catalog order
// @Tags products
// @Produce json
// @Success 200 {object} models.Response{data=[]models.ProductResponse}
// @Failure 500 {object} models.Response
// @Router /product/all [get]
func (h *Handler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(models.Success(products))
}

// GetProduct retrieves a product by ID
// @Summary Get product by ID
// @Description Get a specific product by its ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.ProductResponse}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /product/{id} [get]
func (h *Handler) GetProduct(c *fiber.Ctx) error {
	var params models.ProductIDParams
	if err := request.ParseParams(c, &params); err != nil {
		return err
	}

	product, err := h.service.GetProduct(c.UserContext(), params.ID)
	if err != nil {
		return err
	}

	return c.JSON(models.Success(product))
}

// CreateProduct creates a new product
// @Summary Create a new product
// @Description Create a new product in the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product creation data"
// @Success 201 {object} models.Response{data=models.ProductResponse}
// @Failure 400 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /product [post]
func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := request.ParseBody(c, &req); err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.Success(product))
}

// UpdateProduct updates an existing product
// @Summary Update product
// @Description Update one or more fields of an existing product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Product update data"
// @Success 200 {object} models.Response{data=models.ProductResponse}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /product/{id} [put]
func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	var params models.ProductIDParams
	if err := request.ParseParams(c, &params); err != nil {
		return err
	}

	var req models.UpdateProductRequest
	if err := request.ParseBody(c, &req); err != nil {
		return err
	}
	if req.IsEmpty() {
		return request.Invalid("At least one field must be provided")
	}

	product, err := h.service.UpdateProduct(c.UserContext(), params.ID, &req)
	if err != nil {
		return err
	}

	return c.JSON(models.Success(product))
}

// DeleteProduct deletes a product
// @Summary Delete product
// @Description Delete a product from the catalog
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /product/{id} [delete]
func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	var params models.ProductIDParams
	if err := request.ParseParams(c, &params); err != nil {
		return err
	}

	if err := h.service.DeleteProduct(c.UserContext(), params.ID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CheckStock checks product stock availability
// @Summary Check product stock
// @Description Check if enough stock is available for a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param quantity query int true "Quantity to check"
// @Success 200 {object} models.Response{data=models.StockResponse}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /product/{id}/stock [get]
func (h *Handler) CheckStock(c *fiber.Ctx) error {
	var params models.ProductIDParams
	if err := request.ParseParams(c, &params); err != nil {
		return err
	}

	quantity := c.QueryInt("quantity", 0)
	if quantity <= 0 {
		return request.Invalid("quantity must be a positive integer")
	}

	available, err := h.service.CheckStock(c.UserContext(), params.ID, quantity)
	if err != nil {
		return err
	}

	return c.JSON(models.Success(models.StockResponse{
		Available: available,
		Requested: quantity,
	}))
}
