package main

import (
	_ "chantierplus/docs"
	"chantierplus/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ChantierPlus Avenants API
// @version         1.0
// @description     Composition, signature and submission of contract amendments (avenants) on construction sites.

// @contact.name   ChantierPlus
// @contact.email  support@chantierplus.app

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
