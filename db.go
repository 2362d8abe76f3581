package psxmc

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SaveDB is a catalog of scanned memory cards and the saves they hold,
// backed by sqlite.
type SaveDB struct {
	db *sql.DB
}

// OpenSaveDB opens the catalog at file, creating the schema if needed.
func OpenSaveDB(file string) (*SaveDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS card (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS save (card_id INTEGER NOT NULL, slot INTEGER NOT NULL, title TEXT NOT NULL, product_id TEXT, region TEXT, license TEXT, filesize INTEGER, icon_frames INTEGER, UNIQUE(card_id, slot), FOREIGN KEY(card_id) REFERENCES card(id))"); err != nil {
		return nil, err
	}

	return &SaveDB{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (db *SaveDB) Close() error {
	return db.db.Close()
}

// fingerprint hashes the card as it would be written to disk, checksums
// stamped, so two cards with the same content match regardless of any stale
// checksum bytes in the source file.
func fingerprint(m *MemCard) (string, error) {
	h := sha1.New()
	if err := m.Save(h); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

// AddCard indexes every allocated save slot of the card under path. A card
// already indexed with the same content is left alone; a changed card has
// its saves replaced.
func (db *SaveDB) AddCard(path string, m *MemCard) error {
	sha, err := fingerprint(m)
	if err != nil {
		return err
	}

	var id int64
	var prev string
	switch err := db.db.QueryRow("SELECT id, sha1 FROM card WHERE path = ?", path).Scan(&id, &prev); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO card (path, sha1) VALUES (?, ?)", path, sha)
		if err != nil {
			return err
		}
		if id, err = result.LastInsertId(); err != nil {
			return err
		}
	case nil:
		if prev == sha {
			return nil
		}
		if _, err := db.db.Exec("DELETE FROM save WHERE card_id = ?", id); err != nil {
			return err
		}
		if _, err := db.db.Exec("UPDATE card SET sha1 = ? WHERE id = ?", sha, id); err != nil {
			return err
		}
	default:
		return err
	}

	for slot := range m.Data {
		dir := &m.Info.DirFrames[slot]
		if dir.AllocState() != AllocFirst {
			continue
		}

		var product, region, license string
		if info, err := dir.RegionInfo(); err == nil {
			product = strings.TrimRight(info.Name, "\x00")
			region = info.Region.String()
			license = info.License.String()
		}

		if _, err := db.db.Exec("INSERT OR REPLACE INTO save (card_id, slot, title, product_id, region, license, filesize, icon_frames) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			id, slot, m.Data[slot].TitleFrame.DecodeTitle(), product, region, license, dir.Filesize, len(m.Data[slot].IconFrames)); err != nil {
			return err
		}
	}

	return nil
}

// SaveEntry is one catalogued save.
type SaveEntry struct {
	CardPath  string
	Slot      int
	Title     string
	ProductID string
	Region    string
	Filesize  uint32
}

// FindByTitle returns every catalogued save whose title contains term,
// compared case-insensitively.
func (db *SaveDB) FindByTitle(term string) ([]SaveEntry, error) {
	rows, err := db.db.Query("SELECT c.path, s.slot, s.title, s.product_id, s.region, s.filesize FROM save AS s JOIN card AS c ON s.card_id = c.id WHERE s.title LIKE ? ORDER BY c.path, s.slot", "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		if err := rows.Scan(&e.CardPath, &e.Slot, &e.Title, &e.ProductID, &e.Region, &e.Filesize); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
