package repository

import (
	"context"
	"testing"

	"amaru/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB builds statements without a server and records the last UPDATE.
func dryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=amaru dbname=amaru sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var last string
	err = db.Callback().Update().After("gorm:update").Register("test:capture", func(tx *gorm.DB) {
		last = tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...)
	})
	require.NoError(t, err)
	return db, &last
}

func TestActualizar_WritesOnlyNamedColumns(t *testing.T) {
	db, sql := dryRunDB(t)
	repo := NewTallerRepository(db)

	taller := &model.Taller{ID: uuid.New(), Nombre: "Marinera limeña", CupoTotal: 10, CupoDisponible: 10}
	_ = repo.Actualizar(context.Background(), taller, "nombre")

	assert.Contains(t, *sql, `UPDATE "talleres" SET`)
	assert.Contains(t, *sql, `"nombre"='Marinera limeña'`)
	assert.Contains(t, *sql, `"updated_at"=`)
	assert.NotContains(t, *sql, "cupo_disponible")
	assert.NotContains(t, *sql, "cupo_total")
	assert.Contains(t, *sql, taller.ID.String())
}

func TestActualizar_NoColumnsIsNoop(t *testing.T) {
	db, sql := dryRunDB(t)
	repo := NewCategoriaRepository(db)

	err := repo.Actualizar(context.Background(), &model.Categoria{ID: uuid.New()})
	assert.NoError(t, err)
	assert.Empty(t, *sql)
}

func TestAjustarCupoTotal_SingleStatementFromStoredValues(t *testing.T) {
	db, sql := dryRunDB(t)
	repo := NewTallerRepository(db)

	id := uuid.New()
	_ = repo.AjustarCupoTotal(context.Background(), id, 12)

	assert.Contains(t, *sql, `"cupo_disponible"=GREATEST(0, LEAST(cupo_disponible + 12 - cupo_total, 12))`)
	assert.Contains(t, *sql, `"cupo_total"=12`)
	assert.Contains(t, *sql, id.String())
}

func TestContiene_EscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"folklore": "%folklore%",
		"50%":      `%50\%%`,
		"a_b":      `%a\_b%`,
		`c:\x`:     `%c:\\x%`,
	}
	for in, want := range cases {
		assert.Equal(t, want, contiene(in), in)
	}
}
