package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Nasipbek2003/rentacar/controllers"
	"github.com/Nasipbek2003/rentacar/initializers"
	"github.com/Nasipbek2003/rentacar/middleware"
)

func init() {
	initializers.LoadEnvVariable()
	initializers.ConnectToDb()
	initializers.SyncDatabase()
	initializers.SeedDatabase()
}

func main() {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("CORS.ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// account
	app.Get("/register", controllers.RegisterForm)
	app.Post("/register", controllers.SignUp)
	app.Post("/login", controllers.Login)
	app.Get("/validate", middleware.RequireAuth, controllers.Validate)
	app.Get("/profile", middleware.RequireAuth, controllers.Profile)
	app.Post("/profile", middleware.RequireAuth, controllers.UpdateProfile)

	// catalog
	app.Get("/", controllers.ListCars)
	app.Get("/img/:name", controllers.GetImg)

	// car actions before the cosmetic slug route so "book" and co.
	// never match as a slug
	app.Get("/car/:id", middleware.OptionalAuth, controllers.CarDetail)
	app.Get("/car/:id/book", middleware.RequireAuth, controllers.BookCarForm)
	app.Post("/car/:id/book", middleware.RequireAuth, controllers.BookCar)
	app.Get("/car/:id/review", middleware.RequireAuth, controllers.ReviewForm)
	app.Post("/car/:id/review", middleware.RequireAuth, controllers.AddReview)
	app.All("/car/:id/favorite/toggle", middleware.RequireAuth, controllers.ToggleFavorite)
	app.Get("/car/:id/:slug", middleware.OptionalAuth, controllers.CarDetail)

	// caller-scoped listings
	app.Get("/order/:id/success", middleware.RequireAuth, controllers.OrderSuccess)
	app.Get("/orders/mine", middleware.RequireAuth, controllers.MyOrders)
	app.Get("/favorites/mine", middleware.RequireAuth, controllers.MyFavorites)

	app.Listen(":" + os.Getenv("PORT"))
}
