package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	directoryModel "sigi_backend/internals/features/directory/model"
	hierarchyModel "sigi_backend/internals/features/institutions/hierarchy/model"
	institutionModel "sigi_backend/internals/features/institutions/institution/model"
	authModel "sigi_backend/internals/features/users/auth/model"
	userModel "sigi_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sigi&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync. Order matters: referenced tables first so
// the FK constraints can be created.
func Migrate() {
	if err := DB.AutoMigrate(
		&directoryModel.StateModel{},
		&directoryModel.MunicipalityModel{},
		&institutionModel.InstitutionTypeModel{},
		&institutionModel.InstitutionModel{},
		&hierarchyModel.RoleModel{},
		&hierarchyModel.RankModel{},
		&hierarchyModel.FunctionModel{},
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&authModel.TokenBlacklistModel{},
	); err != nil {
		log.Fatalf("[ERROR] auto-migrate failed: %v", err)
	}
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
