// cmd/seeduser/main.go: Crea/actualiza la cuenta admin del back office.
// Uso: ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./cmd/seeduser
package main

import (
	"fmt"
	"os"

	"amaru/internal/config"
	"amaru/internal/infra"
	"amaru/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	email := getenv("ADMIN_EMAIL", "admin@amaru.pe")
	password := getenv("ADMIN_PASSWORD", "amaru2024")
	nombre := getenv("ADMIN_NOMBRE", "Administrador")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt")
	}

	// NewDatabase migrates and seeds the user/admin roles.
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}

	u := model.Usuario{
		Email:        email,
		Nombre:       nombre,
		PasswordHash: string(hash),
		Rol:          model.RolAdmin,
		Activo:       true,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "nombre", "rol", "activo", "updated_at"}),
	}).Create(&u).Error
	if err != nil {
		log.Fatal().Err(err).Msg("upsert admin")
	}
	fmt.Printf("✅ Usuario '%s' creado/actualizado\n", email)
}
