package storage

import "database/sql"

// Open opens the sqlite database backing the ledger. A single
// connection avoids SQLITE_BUSY on concurrent writes.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	return db, nil
}
