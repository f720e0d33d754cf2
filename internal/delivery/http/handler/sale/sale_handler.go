package sale

import (
	"github.com/gofiber/fiber/v2"

	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

type Handler struct {
	uc *saleuc.Usecase
}

func New(uc *saleuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in saleuc.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, autoPay, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}

	resp := fiber.Map{"sale": out}
	if autoPay != nil {
		resp["autoPayment"] = autoPay
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func mapErr(err error) error {
	switch err {
	case saleuc.ErrInvalidInput:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case saleuc.ErrNotFound:
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
