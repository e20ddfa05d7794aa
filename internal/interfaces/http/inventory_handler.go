package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/multibodega-api/internal/application/dto"
	"github.com/jhoicas/multibodega-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del motor de inventario.
// Toda la lógica vive en la fachada; aquí solo parseo y mapeo de errores.
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ReportStock godoc
// @Summary      Reportar stock de un producto en una bodega
// @Description  Reemplaza la cantidad vigente del par (producto, bodega); no suma.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id           path  int                     true  "ID del producto"
// @Param        warehouseId  path  int                     true  "ID de la bodega"
// @Param        body         body  dto.ReportStockRequest  true  "cantidad observada (>= 0)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/inventory/{warehouseId} [put]
func (h *InventoryHandler) ReportStock(c *fiber.Ctx) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	warehouseID, err := parseID(c, "warehouseId")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ReportStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.ReportStock(c.Context(), productID, warehouseID, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventario actualizado"})
}

// GetProductView godoc
// @Summary      Vista de stock de un producto
// @Description  Producto con su total agregado y el desglose por bodega,
//	calculados en tiempo de consulta.
// @Tags         inventory
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/inventory [get]
func (h *InventoryHandler) GetProductView(c *fiber.Ctx) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.svc.GetProductView(c.Context(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// GetWarehouseView godoc
// @Summary      Vista de inventario de una bodega
// @Tags         inventory
// @Produce      json
// @Param        id  path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseStockView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/inventory [get]
func (h *InventoryHandler) GetWarehouseView(c *fiber.Ctx) error {
	warehouseID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.svc.GetWarehouseView(c.Context(), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// GetLowStock godoc
// @Summary      Clasificación de bajo stock
// @Description  Todos los productos con su señal de bajo stock, ordenados de más
//	agotado a menos. threshold aplica a todos los productos de la llamada;
//	sin threshold cada producto usa su propio reorder_level.
// @Tags         inventory
// @Produce      json
// @Param        threshold  query  int  false  "Umbral global (>= 0)"
// @Success      200  {object}  dto.LowStockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/low-stock [get]
func (h *InventoryHandler) GetLowStock(c *fiber.Ctx) error {
	items, err := h.svc.GetLowStock(c.Context(), c.Query("threshold"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LowStockListResponse{Items: items, Total: len(items)})
}
