package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ItemHandler     handlers.ItemHandler
	GroupHandler    handlers.GroupHandler
	ExternalHandler handlers.ExternalHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
	AllowOrigins    string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware(c.AllowOrigins))
	c.Auth()
	c.Items()
	c.Groups()
	c.External()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/items", c.Middleware.AuthMiddleware(c.JWTService))

	// "/shareable" must be registered before "/:id"
	items.Get("/shareable", c.ItemHandler.GetShareableItems)

	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)
	items.Post("/:id/claim", c.ItemHandler.ClaimItem)
	items.Post("/:id/image", c.ItemHandler.UploadItemImage)
}

func (c *Config) Groups() {
	groups := c.App.Group("/groups", c.Middleware.AuthMiddleware(c.JWTService))

	// "/invites" must be registered before "/:id"
	groups.Get("/invites", c.GroupHandler.GetInvites)
	groups.Post("/invites/:id/accept", c.GroupHandler.AcceptInvite)
	groups.Post("/invites/:id/decline", c.GroupHandler.DeclineInvite)

	groups.Post("", c.GroupHandler.CreateGroup)
	groups.Get("", c.GroupHandler.GetGroups)
	groups.Get("/:id/members", c.GroupHandler.GetMembers)
	groups.Post("/:id/invite", c.GroupHandler.InviteMember)
}

func (c *Config) External() {
	externalGroup := c.App.Group("/external", c.Middleware.AuthMiddleware(c.JWTService))
	externalGroup.Get("/search", c.ExternalHandler.SearchProducts)
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
