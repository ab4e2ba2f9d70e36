package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

func LoadEnvVariable() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading config from environment")
	}
}
