package main

import (
	_ "illusphere_backend/docs"
	"illusphere_backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Illusphere Intake API
// @version         1.0
// @description     Service catalog and project intake backend (submissions + price estimates) backed by DynamoDB.

// @contact.name   API Support
// @contact.email  support@illusphere.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
