package credential

const Schema = `
CREATE TABLE IF NOT EXISTS settings (
	name TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// apiKeyName is the settings row holding the generator key.
const apiKeyName = "gemini_api_key"
