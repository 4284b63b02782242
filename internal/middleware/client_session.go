package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// ClientIDHeader carries the identity of a browser across requests.
const ClientIDHeader = "X-Client-ID"

const localClientID = "client_id"

const maxClientIDLen = 64

// ClientSession makes sure every request has a client id. A missing or oversized header gets
// a fresh uuid. The id is echoed back in the response header.
func ClientSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// fasthttp reuses the header buffer; the id outlives the request as a session key.
		id := utils.CopyString(c.Get(ClientIDHeader))
		if id == "" || len(id) > maxClientIDLen {
			id = uuid.New().String()
		}
		c.Locals(localClientID, id)
		c.Set(ClientIDHeader, id)
		return c.Next()
	}
}

// ClientID returns the id set by ClientSession.
func ClientID(c *fiber.Ctx) string {
	id, _ := c.Locals(localClientID).(string)
	return id
}
