package sqlite

import "database/sql"

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL UNIQUE,
    name TEXT NOT NULL,
    short_name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    region TEXT NOT NULL DEFAULT '',
    is_main INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS candidates (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL UNIQUE,
    name TEXT NOT NULL,
    image_url TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    region TEXT NOT NULL,
    website TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS vote_counts (
    category_id TEXT NOT NULL,
    candidate_id TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (category_id, candidate_id),
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
    FOREIGN KEY (candidate_id) REFERENCES candidates(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS dashboard_summary (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    unique_voters INTEGER NOT NULL DEFAULT 0,
    prize_pool REAL NOT NULL DEFAULT 0
);
`

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
