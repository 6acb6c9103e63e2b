package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nkaewam/storefront/internal/api/request"
	"github.com/nkaewam/storefront/internal/models"
)

// Handler handles HTTP requests for cart operations
type Handler struct {
	service *Service
}

// ProvideHandler creates a new cart handler
func ProvideHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetItems retrieves the cart
// @Summary Get cart items
// @Description Get every line in the cart
// @Tags cart
// @Produce json
// @Success 200 {object} models.Response{data=[]models.CartItemResponse}
// @Failure 500 {object} models.Response
// @Router /cart/all [get]
func (h *Handler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.GetItems(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(models.Success(items))
}

// AddItem adds a product to the cart
// @Summary Add item to cart
// @Description Add a product to the cart. Fails if the product is already in the cart.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.AddItemToCartRequest true "Cart line"
// @Success 201 {object} models.Response{data=models.CartItemResponse}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /cart [post]
func (h *Handler) AddItem(c *fiber.Ctx) error {
	var req models.AddItemToCartRequest
	if err := request.ParseBody(c, &req); err != nil {
		return err
	}

	item, err := h.service.AddItem(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.Success(item))
}

// UpdateItemQuantity changes the quantity of a cart line
// @Summary Update cart item quantity
// @Description Replace the quantity of a product already in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.UpdateItemQuantityRequest true "Cart line"
// @Success 200 {object} models.Response{data=models.CartItemResponse}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 409 {object} models.Response
// @Router /cart [patch]
func (h *Handler) UpdateItemQuantity(c *fiber.Ctx) error {
	var req models.UpdateItemQuantityRequest
	if err := request.ParseBody(c, &req); err != nil {
		return err
	}

	item, err := h.service.UpdateItemQuantity(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.JSON(models.Success(item))
}

// RemoveItem removes a product from the cart
// @Summary Remove cart item
// @Description Remove the cart line of a product
// @Tags cart
// @Param productId path string true "Product ID"
// @Success 204
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /cart/{productId} [delete]
func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	var params models.CartItemParams
	if err := request.ParseParams(c, &params); err != nil {
		return err
	}

	if err := h.service.RemoveItem(c.UserContext(), params.ProductID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
