// Package sqlite exports a loaded tree, its validation findings, and its
// traceability matrix into a SQLite database for ad-hoc querying. Each
// export is a fresh database: the file is recreated and written in a
// single transaction, keyed by a snapshot row.
package sqlite

// Schema DDL for the export database.
const (
	createSnapshots = `CREATE TABLE snapshots (
    snapshot_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    document_count INTEGER NOT NULL,
    item_count INTEGER NOT NULL,
    finding_count INTEGER NOT NULL
);`

	createDocuments = `CREATE TABLE documents (
    prefix TEXT PRIMARY KEY,
    parent TEXT,
    name TEXT,
    level TEXT,
    kind TEXT NOT NULL,
    position INTEGER NOT NULL
);`

	createItems = `CREATE TABLE items (
    item_id TEXT PRIMARY KEY,
    prefix TEXT NOT NULL,
    text TEXT NOT NULL,
    stakeholder TEXT,
    prio INTEGER,
    implemented INTEGER NOT NULL,
    jira TEXT,
    fingerprint TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (prefix) REFERENCES documents(prefix)
);`

	createLinks = `CREATE TABLE links (
    from_id TEXT NOT NULL,
    to_id TEXT NOT NULL,
    fingerprint TEXT,
    suspect INTEGER NOT NULL,
    PRIMARY KEY (from_id, to_id),
    FOREIGN KEY (from_id) REFERENCES items(item_id)
);`

	createFindings = `CREATE TABLE findings (
    position INTEGER PRIMARY KEY,
    kind TEXT NOT NULL,
    item_id TEXT NOT NULL,
    target_id TEXT NOT NULL,
    detail TEXT NOT NULL
);`

	createMatrix = `CREATE TABLE matrix (
    position INTEGER PRIMARY KEY,
    use_case TEXT,
    requirement TEXT,
    test TEXT,
    results TEXT
);`
)

// schemaDDL lists the statements in creation order; items and links carry
// foreign keys and must follow documents and items respectively.
var schemaDDL = []string{
	createSnapshots,
	createDocuments,
	createItems,
	createLinks,
	createFindings,
	createMatrix,
}
