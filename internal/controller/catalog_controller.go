// FILE: internal/controller/catalog_controller.go
// Read-only catalog endpoints: products, reviews, traceability.
package controller

import (
	"net/url"

	"freshcart-be/internal/dto"
	"freshcart-be/internal/pkg/serverutils"
	"freshcart-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(api fiber.Router)
}

type catalogController struct{}

func NewCatalogController() ICatalogController {
	return &catalogController{}
}

func (c *catalogController) RegisterRoutes(api fiber.Router) {
	products := api.Group("/products")

	// Static routes before the :name wildcard.
	products.Get("/quick-replenish", c.GetQuickReplenish)
	products.Get("/", c.GetProducts)
	products.Get("/:name/reviews", c.GetReviews)
	products.Get("/:name/trace", c.GetTrace)
}

func (c *catalogController) GetProducts(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Products retrieved", catalog.Products()))
}

func (c *catalogController) GetQuickReplenish(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Quick replenishment retrieved", catalog.QuickReplenish()))
}

// GetReviews returns the review list for a product. Unknown names yield
// an empty list, never an error.
func (c *catalogController) GetReviews(ctx *fiber.Ctx) error {
	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid product name"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Reviews retrieved", catalog.Reviews(name)))
}

// GetTrace returns the traceability view for a product: completeness
// score, the supply-chain timeline and the reviews.
func (c *catalogController) GetTrace(ctx *fiber.Ctx) error {
	name, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid product name"))
	}

	product, ok := catalog.FindByName(name)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Product not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Traceability retrieved", dto.ProductTraceResponse{
		ProductName:       product.Name,
		TraceCompleteness: product.TraceCompleteness,
		Timeline:          catalog.TraceTimeline(),
		Reviews:           catalog.Reviews(product.Name),
	}))
}
