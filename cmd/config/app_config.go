package config

import (
	"Sue-Backend/internal/api/handlers"
	"Sue-Backend/internal/api/routes"
	"Sue-Backend/internal/middleware"
	"Sue-Backend/internal/utils"
	"Sue-Backend/internal/utils/storage"
	"Sue-Backend/pkg/assistant"
	"Sue-Backend/pkg/grocery"
	"Sue-Backend/pkg/jwt"
	"Sue-Backend/pkg/meal"
	"Sue-Backend/pkg/notification"
	"Sue-Backend/pkg/openai"
	"Sue-Backend/pkg/pantry"
	"Sue-Backend/pkg/preference"
	"Sue-Backend/pkg/reminder"
	"Sue-Backend/pkg/scan"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	aiClient := openai.NewClient()
	notifier := notification.NewMailNotifier()

	// Repository
	pantryRepository := pantry.NewPantryRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)
	mealRepository := meal.NewMealRepository(db)
	reminderRepository := reminder.NewReminderRepository(db)
	preferenceRepository := preference.NewPreferenceRepository(db)
	scanRepository := scan.NewScanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	pantryService := pantry.NewPantryService(pantryRepository)
	groceryService := grocery.NewGroceryService(groceryRepository)
	reminderService := reminder.NewReminderService(reminderRepository, notifier)
	mealService := meal.NewMealService(mealRepository, reminderService)
	preferenceService := preference.NewPreferenceService(preferenceRepository)
	assistantService := assistant.NewAssistantService(
		aiClient,
		pantryService,
		mealService,
		groceryService,
		preferenceService,
	)
	scanService := scan.NewScanService(scanRepository, pantryRepository, aiClient, s3)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	reminderHandler := handlers.NewReminderHandler(reminderService, validator)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		PantryHandler:     pantryHandler,
		GroceryHandler:    groceryHandler,
		MealHandler:       mealHandler,
		ReminderHandler:   reminderHandler,
		PreferenceHandler: preferenceHandler,
		AssistantHandler:  assistantHandler,
		ScanHandler:       scanHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
