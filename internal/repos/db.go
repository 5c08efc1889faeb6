package repos

import (
	"embed"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Single connection: keeps the pragma effective across the pool and
	// serializes writes so sqlite never returns SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if _, err = db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err = goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err = goose.Up(db.DB, "migrations"); err != nil {
		return nil, err
	}

	// Seed the recyclable-item catalog if the DB is empty
	if err = seedItems(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedItems inserts the fixed item catalog once (idempotent; safe to run
// every start). Items are read-only at runtime.
func seedItems(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM items`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting recyclable item catalog")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO items(image,title) VALUES
	  ('lampadas.svg','Lâmpadas'),
	  ('baterias.svg','Pilhas e Baterias'),
	  ('papeis.svg','Papéis e Papelão'),
	  ('eletronicos.svg','Resíduos Eletrônicos'),
	  ('organicos.svg','Resíduos Orgânicos'),
	  ('oleo.svg','Óleo de Cozinha')`)

	return tx.Commit()
}
