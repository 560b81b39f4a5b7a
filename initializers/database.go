package initializers

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectToDb() {
	var err error
	DB, err = gorm.Open(postgres.Open(os.Getenv("DB.URL")), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
}
