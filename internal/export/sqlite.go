package export

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"chefguide/internal/models"
)

//go:embed schema.sql
var schema string

// OpenSQLite opens the database at path with foreign keys enabled.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// WriteSQLite writes s to a fresh database at path, replacing any existing file.
func WriteSQLite(ctx context.Context, path string, s Snapshot) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old snapshot: %w", err)
	}

	db, err := OpenSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertSnapshot(ctx, tx, s); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func insertSnapshot(ctx context.Context, tx *sql.Tx, s Snapshot) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot (version, source, loaded_at, exported_at) VALUES (?, ?, ?, ?)`,
		s.Directory.Fingerprint,
		s.Directory.Source,
		s.Directory.LoadedAt.Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	chefStmt, err := tx.PrepareContext(ctx, `
        INSERT INTO chefs (id, season, category, name_ko, name_en, nickname, real_name_ko,
                           specialty, michelin, rank, note, position)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare chefs: %w", err)
	}
	defer chefStmt.Close()

	restStmt, err := tx.PrepareContext(ctx, `
        INSERT INTO restaurants (chef_id, position, name_ko, name_en, cuisine, address,
                                 reservation, michelin)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare restaurants: %w", err)
	}
	defer restStmt.Close()

	for i := range s.Chefs {
		c := &s.Chefs[i]

		_, err := chefStmt.ExecContext(ctx,
			c.ID, c.Season, string(c.Category), c.NameKo,
			nullable(c.NameEn), nullable(c.Nickname), nullable(c.RealNameKo),
			nullable(c.Specialty), nullable(c.Michelin), nullable(c.Rank), nullable(c.Note),
			i,
		)
		if err != nil {
			return fmt.Errorf("insert chef %s: %w", c.ID, err)
		}

		for j, r := range c.Restaurants {
			_, err := restStmt.ExecContext(ctx,
				c.ID, j, r.NameKo,
				nullable(r.NameEn), nullable(r.Cuisine), nullable(r.Address),
				nullable(r.Reservation), nullable(r.Michelin),
			)
			if err != nil {
				return fmt.Errorf("insert restaurant %d of %s: %w", j, c.ID, err)
			}
		}
	}

	return nil
}

// ReadSQLite loads the chefs stored by WriteSQLite, in their original order.
func ReadSQLite(ctx context.Context, path string) ([]models.Chef, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
        SELECT id, season, category, name_ko, name_en, nickname, real_name_ko,
               specialty, michelin, rank, note
        FROM chefs
        ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query chefs: %w", err)
	}
	defer rows.Close()

	var (
		chefs []models.Chef
		index = make(map[string]int)
	)

	for rows.Next() {
		var (
			c                                     models.Chef
			category                              string
			nameEn, nickname, realName, specialty sql.NullString
			michelin, rank, note                  sql.NullString
		)

		if err := rows.Scan(&c.ID, &c.Season, &category, &c.NameKo, &nameEn, &nickname,
			&realName, &specialty, &michelin, &rank, &note); err != nil {
			return nil, fmt.Errorf("scan chef: %w", err)
		}

		c.Category = models.Category(category)
		c.NameEn = nameEn.String
		c.Nickname = nickname.String
		c.RealNameKo = realName.String
		c.Specialty = specialty.String
		c.Michelin = michelin.String
		c.Rank = rank.String
		c.Note = note.String
		c.Restaurants = []models.Restaurant{}

		index[c.ID] = len(chefs)
		chefs = append(chefs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	rrows, err := db.QueryContext(ctx, `
        SELECT chef_id, name_ko, name_en, cuisine, address, reservation, michelin
        FROM restaurants
        ORDER BY chef_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rrows.Close()

	for rrows.Next() {
		var (
			chefID, nameKo                                  string
			nameEn, cuisine, address, reservation, michelin sql.NullString
		)

		if err := rrows.Scan(&chefID, &nameKo, &nameEn, &cuisine, &address, &reservation, &michelin); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}

		i, ok := index[chefID]
		if !ok {
			continue
		}

		chefs[i].Restaurants = append(chefs[i].Restaurants, models.Restaurant{
			NameKo:      nameKo,
			NameEn:      nameEn.String,
			Cuisine:     cuisine.String,
			Address:     address.String,
			Reservation: reservation.String,
			Michelin:    michelin.String,
		})
	}

	return chefs, rrows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
