package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	IsProduction bool

	// Catalog ids the business logic relies on. Injected at startup so a
	// differently seeded catalog does not silently break role or status
	// checks.
	AdminRoleID          uint
	PendingStatusID      uint
	ApprovedStatusID     uint
	InUseStatusID        uint
	ReturnedStatusID     uint
	ReturnedLateStatusID uint
	RejectedStatusID     uint

	// Service type ids used by the reporting queries to tell reservations
	// from loans.
	ReservationServiceTypeID uint
	LoanServiceTypeID        uint

	SeedFile string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "acceslab")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "acceslab")
	ServerPort = getEnv("SERVER_PORT", "8080")
	IsProduction = getEnvBool("PRODUCTION", false)

	AdminRoleID = getEnvUint("ADMIN_ROLE_ID", 1)
	PendingStatusID = getEnvUint("PENDING_STATUS_ID", 1)
	ApprovedStatusID = getEnvUint("APPROVED_STATUS_ID", 2)
	InUseStatusID = getEnvUint("IN_USE_STATUS_ID", 3)
	ReturnedStatusID = getEnvUint("RETURNED_STATUS_ID", 4)
	ReturnedLateStatusID = getEnvUint("RETURNED_LATE_STATUS_ID", 5)
	RejectedStatusID = getEnvUint("REJECTED_STATUS_ID", 6)

	ReservationServiceTypeID = getEnvUint("RESERVATION_SERVICE_TYPE_ID", 21)
	LoanServiceTypeID = getEnvUint("LOAN_SERVICE_TYPE_ID", 1)

	SeedFile = getEnv("CATALOG_SEED_FILE", "")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "acceslab")
	MinioUseSSL = getEnvBool("MINIO_USE_SSL", false)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint) uint {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseUint(value, 10, 32); err == nil {
			return uint(parsed)
		}
	}
	return fallback
}
