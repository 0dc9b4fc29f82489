package db

import (
	"fmt"
	"log"

	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/domain/audit"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/domain/request"
	"github.com/acceslab/acceslab-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate wires the join tables and runs AutoMigrate for the whole
// schema. Reference tables go first so foreign keys resolve.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.SetupJoinTable(&user.User{}, "Roles", &user.UserRole{}); err != nil {
		return err
	}
	if err := gormDB.SetupJoinTable(&user.User{}, "Programs", &user.UserProgram{}); err != nil {
		return err
	}
	return gormDB.AutoMigrate(
		&catalog.Role{},
		&catalog.IdentificationType{},
		&catalog.RequesterType{},
		&catalog.Faculty{},
		&catalog.Category{},
		&catalog.ServiceType{},
		&catalog.ServiceFrequency{},
		&catalog.Status{},
		&catalog.Program{},
		&catalog.Laboratory{},
		&catalog.Schedule{},
		&catalog.Object{},
		&catalog.Delivery{},
		&catalog.Return{},
		&user.User{},
		&user.UserRole{},
		&user.UserProgram{},
		&request.Request{},
		&request.Line{},
		&request.Participant{},
		&audit.Entry{},
	)
}

// InitWithGormDB swaps the package handle, used by tests that open
// their own connection.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
