package store

const (
	selectMetadataValue = `SELECT value FROM metadata WHERE key = ?`

	upsertMetadataValue = `INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	deleteMetadataValue = `DELETE FROM metadata WHERE key = ?`
)
