package payment

import (
	"github.com/gofiber/fiber/v2"

	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
)

type Handler struct {
	uc *paymentuc.Usecase
}

func New(uc *paymentuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in paymentuc.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
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
	case paymentuc.ErrInvalidInput:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case paymentuc.ErrNotFound:
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
