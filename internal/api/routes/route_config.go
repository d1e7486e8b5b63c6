package routes

import (
	"Sue-Backend/internal/api/handlers"
	"Sue-Backend/internal/middleware"
	"Sue-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	PantryHandler     handlers.PantryHandler
	GroceryHandler    handlers.GroceryHandler
	MealHandler       handlers.MealHandler
	ReminderHandler   handlers.ReminderHandler
	PreferenceHandler handlers.PreferenceHandler
	AssistantHandler  handlers.AssistantHandler
	ScanHandler       handlers.ScanHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Pantry()
	c.GroceryLists()
	c.MealPlans()
	c.Reminders()
	c.Preferences()
	c.Assistant()
	c.Scans()
	c.GuestRoute()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))
	pantry.Get("/stats", c.PantryHandler.GetPantryStats)
	pantry.Get("/expiring-soon", c.PantryHandler.GetExpiringSoon)

	pantry.Post("", c.PantryHandler.AddPantryItem)
	pantry.Get("", c.PantryHandler.GetPantryItems)
	pantry.Get("/:id", c.PantryHandler.GetPantryItemDetails)
	pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
}

func (c *Config) GroceryLists() {
	lists := c.App.Group("/api/v1/grocery-lists", c.Middleware.AuthMiddleware(c.JWTService))
	lists.Post("/compile", c.GroceryHandler.CompileLists)

	lists.Post("", c.GroceryHandler.CreateGroceryList)
	lists.Get("", c.GroceryHandler.GetGroceryLists)
	lists.Get("/:id", c.GroceryHandler.GetGroceryListDetails)
	lists.Put("/:id", c.GroceryHandler.UpdateGroceryList)
	lists.Delete("/:id", c.GroceryHandler.DeleteGroceryList)

	lists.Post("/:id/items", c.GroceryHandler.AddItem)
	lists.Delete("/:id/items", c.GroceryHandler.RemoveItem)
}

func (c *Config) MealPlans() {
	meals := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))
	meals.Get("/this-week", c.MealHandler.GetThisWeekMealPlans)

	meals.Post("", c.MealHandler.AddMealPlan)
	meals.Get("", c.MealHandler.GetMealPlans)
	meals.Put("/:id", c.MealHandler.UpdateMealPlan)
	meals.Delete("/:id", c.MealHandler.DeleteMealPlan)
}

func (c *Config) Reminders() {
	reminders := c.App.Group("/api/v1/reminders", c.Middleware.AuthMiddleware(c.JWTService))
	reminders.Post("/defrost", c.ReminderHandler.ScheduleDefrost)
	reminders.Post("/expiration", c.ReminderHandler.ScheduleExpiration)
	reminders.Get("/upcoming", c.ReminderHandler.GetUpcomingReminders)
	reminders.Delete("/:id", c.ReminderHandler.CancelReminder)
}

func (c *Config) Preferences() {
	preferences := c.App.Group("/api/v1/preferences", c.Middleware.AuthMiddleware(c.JWTService))
	preferences.Get("", c.PreferenceHandler.GetPreferences)
	preferences.Post("/allergies", c.PreferenceHandler.AddAllergy)
	preferences.Delete("/allergies", c.PreferenceHandler.RemoveAllergy)
	preferences.Post("/standard-items", c.PreferenceHandler.AddStandardItems)
	preferences.Put("/standard-items", c.PreferenceHandler.SetStandardItems)
}

func (c *Config) Assistant() {
	sue := c.App.Group("/api/v1/assistant", c.Middleware.AuthMiddleware(c.JWTService))
	sue.Post("/chat", c.AssistantHandler.Chat)
	sue.Post("/extract-ingredients", c.AssistantHandler.ExtractIngredients)
	sue.Post("/cooking-steps", c.AssistantHandler.GenerateCookingSteps)
	sue.Get("/use-up", c.AssistantHandler.SuggestUseUp)
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.AuthMiddleware(c.JWTService))
	scans.Post("/receipt", c.ScanHandler.ScanReceipt)
	scans.Post("/best-by", c.ScanHandler.ScanBestBy)
	scans.Post("/recipe", c.ScanHandler.ScanRecipeImage)
	scans.Post("/save-items", c.ScanHandler.SaveScannedItems)

	scans.Get("", c.ScanHandler.GetScans)
	scans.Get("/:id", c.ScanHandler.GetScanDetails)
}
