package main

import (
	_ "oficina_facil/docs"
	"oficina_facil/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OficinaFácil API
// @version         1.0
// @description     Workshop management (customers, vehicles, service orders, payments) backed by a Google Sheets spreadsheet with offline cache and sync.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
