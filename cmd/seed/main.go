package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-FleetService/internal/config"
	"github.com/m04kA/SMC-FleetService/internal/domain"
	busesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/buses"
	driversRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/drivers"
	routesRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/routes"
	shiftsRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/shifts"
	usersRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/users"
	"github.com/m04kA/SMC-FleetService/pkg/logger"
	"github.com/m04kA/SMC-FleetService/pkg/types"
)

const (
	seedDrivers = 100
	seedBuses   = 100
	seedRoutes  = 100
	seedShifts  = 100

	adminEmail    = "admin@fleet.local"
	adminPassword = "admin123"
)

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Christopher", "Karen", "Daniel", "Lisa", "Matthew", "Betty",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Moore", "Jackson", "Martin",
}

var places = []string{
	"Downtown", "Airport", "University", "Mall", "Hospital", "Stadium", "Beach", "Park",
	"Station", "Harbor", "Museum", "Library", "Market", "Plaza", "Riverside", "Lakeside",
	"Industrial Zone", "Business District", "Tech Park", "Waterfront",
}

var busCapacities = []int{25, 30, 35, 40, 45, 50, 55, 60}

func randomName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

func randomLicenseNumber(rng *rand.Rand) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return fmt.Sprintf("%c%c%04d",
		letters[rng.Intn(len(letters))], letters[rng.Intn(len(letters))], rng.Intn(10000))
}

func randomPlateNumber(rng *rand.Rand) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return fmt.Sprintf("%c%c%c-%03d",
		letters[rng.Intn(len(letters))], letters[rng.Intn(len(letters))],
		letters[rng.Intn(len(letters))], rng.Intn(1000))
}

func randomDate(rng *rand.Rand) time.Time {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 0, rng.Intn(365))
}

// randomTime дает время с шагом 15 минут
func randomTime(rng *rand.Rand) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(4)*15))
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Info("Starting database seeding...")

	// Чистим данные, справочник ролей оставляем
	_, err = db.ExecContext(ctx, `TRUNCATE shifts, user_roles, drivers, buses, routes, users RESTART IDENTITY CASCADE`)
	if err != nil {
		log.Fatal("Failed to truncate tables: %v", err)
	}

	// Справочник ролей: миграция его уже создает, но сидер работает и на чистой БД
	for _, role := range domain.Roles {
		if _, err := db.ExecContext(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role); err != nil {
			log.Fatal("Failed to seed role %s: %v", role, err)
		}
	}

	users := usersRepo.NewRepository(db)
	drivers := driversRepo.NewRepository(db)
	buses := busesRepo.NewRepository(db)
	routes := routesRepo.NewRepository(db)
	shifts := shiftsRepo.NewRepository(db)

	// Админская учетка для первого входа
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatal("Failed to hash admin password: %v", err)
	}

	admin, err := users.Create(ctx, &domain.User{
		Name:         "Fleet Admin",
		Age:          35,
		Email:        adminEmail,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Fatal("Failed to create admin user: %v", err)
	}
	if err := users.AssignRole(ctx, admin.ID, domain.RoleAdmin); err != nil {
		log.Fatal("Failed to assign admin role: %v", err)
	}
	log.Info("Seeded admin user %s (password: %s)", adminEmail, adminPassword)

	// Водители
	driverIDs := make([]int64, 0, seedDrivers)
	for i := 0; i < seedDrivers; i++ {
		driver, err := drivers.Create(ctx, &domain.Driver{
			Name:          randomName(rng),
			LicenseNumber: randomLicenseNumber(rng),
			Available:     rng.Float64() > 0.3,
		})
		if err != nil {
			log.Fatal("Failed to seed driver: %v", err)
		}
		driverIDs = append(driverIDs, driver.ID)
	}
	log.Info("Seeded %d drivers", len(driverIDs))

	// Автобусы
	busIDs := make([]int64, 0, seedBuses)
	for i := 0; i < seedBuses; i++ {
		bus, err := buses.Create(ctx, &domain.Bus{
			PlateNumber: randomPlateNumber(rng),
			Capacity:    busCapacities[rng.Intn(len(busCapacities))],
		})
		if err != nil {
			log.Fatal("Failed to seed bus: %v", err)
		}
		busIDs = append(busIDs, bus.ID)
	}
	log.Info("Seeded %d buses", len(busIDs))

	// Маршруты
	routeIDs := make([]int64, 0, seedRoutes)
	for i := 0; i < seedRoutes; i++ {
		origin := places[rng.Intn(len(places))]
		destination := places[rng.Intn(len(places))]
		for destination == origin {
			destination = places[rng.Intn(len(places))]
		}

		route, err := routes.Create(ctx, &domain.Route{
			Origin:                   origin,
			Destination:              destination,
			EstimatedDurationMinutes: 15 + rng.Intn(90),
		})
		if err != nil {
			log.Fatal("Failed to seed route: %v", err)
		}
		routeIDs = append(routeIDs, route.ID)
	}
	log.Info("Seeded %d routes", len(routeIDs))

	// Смены: без проверки конфликтов, как и исходный генератор
	for i := 0; i < seedShifts; i++ {
		_, err := shifts.Create(ctx, &domain.Shift{
			DriverID:  driverIDs[rng.Intn(len(driverIDs))],
			BusID:     busIDs[rng.Intn(len(busIDs))],
			RouteID:   routeIDs[rng.Intn(len(routeIDs))],
			ShiftDate: randomDate(rng),
			ShiftTime: randomTime(rng),
		})
		if err != nil {
			log.Fatal("Failed to seed shift: %v", err)
		}
	}
	log.Info("Seeded %d shifts", seedShifts)

	log.Info("Database seeding completed successfully")
}
