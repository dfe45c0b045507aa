package db

// SchemaSQL is the complete schema for fresh nitfix installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// it via GetSchemaSQL(); do not hardcode CREATE TABLE statements in test
// files, so repository code that references a missing column fails
// immediately with "no such column" at development time.
const SchemaSQL = `
-- Named JSON values (the saved-fix store and any other keyed state)
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Activity log (audit trail of staging and submission events per repository)
CREATE TABLE IF NOT EXISTS activity_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reponame TEXT NOT NULL,
	event TEXT NOT NULL CHECK(event IN ('staged', 'submitted', 'failed', 'cleaned')),
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_log_reponame ON activity_log(reponame);
`

// GetSchemaSQL returns the authoritative schema for test setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
