package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lintel-tools/lintel/pkg/matrix"
	"github.com/lintel-tools/lintel/pkg/tree"
	"github.com/lintel-tools/lintel/pkg/types"
)

// Export writes the tree, findings, and matrix rows to a SQLite database
// at path. Any existing database file is removed first so every export is
// a fresh, self-consistent snapshot. All writes happen in one transaction.
func Export(path string, t *tree.Tree, findings []types.Finding, rows []matrix.Row) (snapshotID string, err error) {
	// Remove any previous export to guarantee a fresh schema.
	_ = os.Remove(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", fmt.Errorf("opening export database: %w", err)
	}
	defer db.Close()

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return "", fmt.Errorf("creating export schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating snapshot id: %w", err)
	}
	snapshotID = id.String()

	itemCount := 0
	for _, d := range t.Documents() {
		itemCount += d.Len()
	}
	if _, err := tx.Exec(
		`INSERT INTO snapshots (snapshot_id, created_at, document_count, item_count, finding_count)
		 VALUES (?, ?, ?, ?, ?)`,
		snapshotID, time.Now().UTC().Format(time.RFC3339), len(t.Documents()), itemCount, len(findings),
	); err != nil {
		return "", fmt.Errorf("inserting snapshot: %w", err)
	}

	if err := insertDocuments(tx, t); err != nil {
		return "", err
	}
	if err := insertFindings(tx, findings); err != nil {
		return "", err
	}
	if err := insertMatrix(tx, rows); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing export: %w", err)
	}
	return snapshotID, nil
}

func insertDocuments(tx *sql.Tx, t *tree.Tree) error {
	for dn, d := range t.Documents() {
		if _, err := tx.Exec(
			`INSERT INTO documents (prefix, parent, name, level, kind, position) VALUES (?, ?, ?, ?, ?, ?)`,
			d.Prefix, d.Parent, d.Name, d.Level, d.Classify(t.Kinds()), dn,
		); err != nil {
			return fmt.Errorf("inserting document %s: %w", d.Prefix, err)
		}
		for in, item := range d.Items() {
			if err := insertItem(tx, t, d, item, in); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertItem(tx *sql.Tx, t *tree.Tree, d *types.Document, item *types.Item, position int) error {
	if _, err := tx.Exec(
		`INSERT INTO items (item_id, prefix, text, stakeholder, prio, implemented, jira, fingerprint, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, d.Prefix, item.Text, item.Stakeholder, item.Prio,
		boolInt(item.Implemented), strings.Join(item.Jira, ","), item.Fingerprint(), position,
	); err != nil {
		return fmt.Errorf("inserting item %s: %w", item.ID, err)
	}
	for _, l := range item.Links {
		suspect := 0
		if target, err := t.ResolveLink(l.Target); err == nil && item.IsLinkSuspect(target) {
			suspect = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO links (from_id, to_id, fingerprint, suspect) VALUES (?, ?, ?, ?)`,
			item.ID, l.Target, l.Fingerprint, suspect,
		); err != nil {
			return fmt.Errorf("inserting link %s -> %s: %w", item.ID, l.Target, err)
		}
	}
	return nil
}

func insertFindings(tx *sql.Tx, findings []types.Finding) error {
	for n, f := range findings {
		if _, err := tx.Exec(
			`INSERT INTO findings (position, kind, item_id, target_id, detail) VALUES (?, ?, ?, ?, ?)`,
			n, f.Kind, f.ItemID, f.TargetID, f.Detail,
		); err != nil {
			return fmt.Errorf("inserting finding %d: %w", n, err)
		}
	}
	return nil
}

func insertMatrix(tx *sql.Tx, rows []matrix.Row) error {
	for n, row := range rows {
		var resultsJSON string
		if len(row.Results) > 0 {
			raw, err := json.Marshal(row.Results)
			if err != nil {
				return fmt.Errorf("encoding results for row %d: %w", n, err)
			}
			resultsJSON = string(raw)
		}
		if _, err := tx.Exec(
			`INSERT INTO matrix (position, use_case, requirement, test, results) VALUES (?, ?, ?, ?, ?)`,
			n, itemID(row.UseCase), itemID(row.Requirement), itemID(row.Test), resultsJSON,
		); err != nil {
			return fmt.Errorf("inserting matrix row %d: %w", n, err)
		}
	}
	return nil
}

func itemID(item *types.Item) any {
	if item == nil {
		return nil
	}
	return item.ID
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
