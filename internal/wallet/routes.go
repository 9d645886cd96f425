package wallet

import "github.com/gofiber/fiber/v2"

// RegisterRoutes exposes the ledger for the surrounding deposit system and
// for operators. The engine itself talks to the Service directly.
func RegisterRoutes(app fiber.Router, service *Service) {

	app.Post("/wallet/credit", func(c *fiber.Ctx) error {
		type Req struct {
			UID      int     `json:"uid"`
			Currency string  `json:"currency"`
			Amount   float64 `json:"amount"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		if err := service.Credit(r.UID, r.Currency, r.Amount); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "credited"})
	})

	app.Post("/wallet/debit", func(c *fiber.Ctx) error {
		type Req struct {
			UID      int     `json:"uid"`
			Currency string  `json:"currency"`
			Amount   float64 `json:"amount"`
		}
		var r Req
		if err := c.BodyParser(&r); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad request"})
		}
		ok, err := service.TryDebit(r.UID, r.Currency, r.Amount)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		if !ok {
			return c.Status(402).JSON(fiber.Map{"error": "insufficient funds"})
		}
		return c.JSON(fiber.Map{"status": "debited"})
	})

	app.Get("/wallet/balance/:uid/:currency", func(c *fiber.Ctx) error {
		uid, _ := c.ParamsInt("uid")
		b, err := service.Balance(uid, c.Params("currency"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "internal error"})
		}
		return c.JSON(fiber.Map{"balance": b})
	})
}
