package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/dto"
	"github.com/jhoicas/stockpilot-api/internal/application/qr"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/qrpng"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/qrsvg"
)

// QRHandler normaliza el estilo y delega el render del código QR.
type QRHandler struct{}

// NewQRHandler construye el handler.
func NewQRHandler() *QRHandler { return &QRHandler{} }

// Render godoc
// @Summary      Renderizar un código QR estilizado
// @Description  Normaliza colores hex (con o sin #, 3 o 6 dígitos) y recorta
//               los rangos numéricos; la codificación QR se delega en la
//               librería externa. format=png|svg (png por defecto).
// @Tags         qr
// @Accept       json
// @Produce      image/png
// @Param        format  query  string  false  "png | svg"
// @Param        body    body   dto.QRRenderRequest  true  "Estilo del código"
// @Success      200  {string}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/qr/render [post]
func (h *QRHandler) Render(c *fiber.Ctx) error {
	var in dto.QRRenderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	style, err := qr.Normalize(in)
	if err != nil {
		return respondError(c, err)
	}

	name := "qr_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	if c.Query("format", "png") == "svg" {
		data, err := qrsvg.Render(style)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`.svg"`)
		return c.Send(data)
	}

	data, err := qrpng.Render(style)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`.png"`)
	return c.Send(data)
}
