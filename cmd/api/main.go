package main

import (
	_ "truga_booking/docs"
	"truga_booking/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Truga Reservation API
// @version         1.0
// @description     Roof box rental reservation wizard and pricing service.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
