package config

const (
	// MaxTitleLength is the maximum length for story and chapter titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxTitleLength = 255

	// MaxNameLength is the maximum length for character, location and
	// object names. Same bound as titles for consistency.
	MaxNameLength = 255

	// MaxCharacterAge bounds the optional character age field. Purely a
	// sanity bound; fictional ages run long.
	MaxCharacterAge = 100000
)
