package casino

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bx-casino/internal/fair"
)

func status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInsufficientFunds):
		return fiber.StatusPaymentRequired
	case errors.Is(err, ErrAlreadySettled), errors.Is(err, ErrRoundNotSettled):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	code := status(err)
	if code == fiber.StatusInternalServerError {
		// do not leak collaborator errors
		return c.Status(code).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// CommitmentCache stores published seed hashes keyed by round id.
type CommitmentCache interface {
	Put(roundID, hash string)
	Get(roundID string) (string, bool)
}

func RegisterRoutes(r fiber.Router, service *Service, lb *Leaderboard, commits CommitmentCache) {

	r.Post("/casino/bets", func(c *fiber.Ctx) error {
		type Req struct {
			Game       string          `json:"game"`
			Currency   string          `json:"currency"`
			Bet        float64         `json:"bet"`
			ClientSeed string          `json:"client_seed"`
			Dice       *DiceParams     `json:"dice"`
			Limbo      *LimboParams    `json:"limbo"`
			Mines      *MinesParams    `json:"mines"`
			Baccarat   *BaccaratParams `json:"baccarat"`
			Plinko     *PlinkoParams   `json:"plinko"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return fail(c, ErrInvalidInput)
		}

		uid, _ := c.Locals("uid").(int)

		result, err := service.PlaceBet(PlaceBetRequest{
			UID:        uid,
			Currency:   body.Currency,
			Game:       body.Game,
			Bet:        body.Bet,
			ClientSeed: body.ClientSeed,
			Dice:       body.Dice,
			Limbo:      body.Limbo,
			Mines:      body.Mines,
			Baccarat:   body.Baccarat,
			Plinko:     body.Plinko,
		})
		if err != nil {
			return fail(c, err)
		}
		commits.Put(result.RoundID, result.ServerSeedHash)
		return c.JSON(result)
	})

	r.Post("/casino/rounds/:id/action", func(c *fiber.Ctx) error {
		var act Action
		if err := c.BodyParser(&act); err != nil {
			return fail(c, ErrInvalidInput)
		}
		uid, _ := c.Locals("uid").(int)

		view, err := service.Act(uid, c.Params("id"), act)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(view)
	})

	r.Post("/casino/rounds/:id/resolve", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("uid").(int)

		view, err := service.Resolve(uid, c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(view)
	})

	r.Post("/casino/rounds/:id/settle", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("uid").(int)

		payout, err := service.Settle(uid, c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"payout": payout})
	})

	r.Get("/casino/rounds/:id", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("uid").(int)

		view, err := service.View(uid, c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(view)
	})

	r.Get("/casino/rounds/:id/commitment", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if hash, ok := commits.Get(id); ok {
			return c.JSON(fiber.Map{"round_id": id, "server_seed_hash": hash})
		}

		uid, _ := c.Locals("uid").(int)
		view, err := service.View(uid, id)
		if err != nil {
			return fail(c, err)
		}
		commits.Put(id, view.ServerSeedHash)
		return c.JSON(fiber.Map{"round_id": id, "server_seed_hash": view.ServerSeedHash})
	})

	r.Get("/casino/leaderboard", func(c *fiber.Ctx) error {
		n := c.QueryInt("n", 10)
		entries, err := lb.Top(n)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(entries)
	})

	// verify lets anyone replay a revealed round offline
	r.Post("/casino/verify", func(c *fiber.Ctx) error {
		type Req struct {
			fair.Proof
			Count int `json:"count"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return fail(c, ErrInvalidInput)
		}
		if body.Count <= 0 || body.Count > 512 {
			body.Count = 1
		}

		floats, ok := body.Proof.Replay(body.Count)
		return c.JSON(fiber.Map{
			"valid":  ok,
			"floats": floats,
		})
	})
}
