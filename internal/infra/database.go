package infra

import (
	"fmt"

	"amaru/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and brings the schema
// up to date with RunMigrations.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// gormConfig turns driver errors into gorm sentinels, so a unique index
// violation surfaces as gorm.ErrDuplicatedKey.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}

// RunMigrations enables the uuid generator, runs AutoMigrate for every entity,
// then applies the patches AutoMigrate cannot express and seeds the roles.
// Every step is idempotent.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.UsuarioSinPassword{},
		&model.Categoria{},
		&model.Subcategoria{},
		&model.Profesor{},
		&model.Actividad{},
		&model.Premio{},
		&model.Servicio{},
		&model.Taller{},
		&model.Festival{},
		&model.Inscripcion{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return SeedRoles(db)
}

// applySchemaPatches adds the case-insensitive uniqueness and check
// constraints that GORM tags cannot describe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"categorias lower(nombre) unique",
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_categorias_nombre_lower ON categorias (lower(nombre))`},
		{"subcategorias lower(nombre) unique per categoria",
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_subcategorias_nombre_lower
			   ON subcategorias (categoria_id, lower(nombre))`},
		{"talleres cupo range", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_talleres_cupo') THEN
    ALTER TABLE talleres
      ADD CONSTRAINT chk_talleres_cupo CHECK (cupo_disponible >= 0 AND cupo_disponible <= cupo_total);
  END IF;
END $$`},
		{"talleres fechas", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_talleres_fechas') THEN
    ALTER TABLE talleres ADD CONSTRAINT chk_talleres_fechas CHECK (fecha_fin > fecha_inicio);
  END IF;
END $$`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}

// SeedRoles inserts the fixed roles when missing.
func SeedRoles(db *gorm.DB) error {
	for _, nombre := range []string{model.RolUser, model.RolAdmin} {
		rol := model.Rol{Nombre: nombre}
		if err := db.Where(model.Rol{Nombre: nombre}).FirstOrCreate(&rol).Error; err != nil {
			return fmt.Errorf("seed rol %q: %w", nombre, err)
		}
	}
	return nil
}
