package prompt

// Store persists the prompt library as a flat, human-editable JSON file.
type Store interface {
	// Load returns the stored library. A missing file yields the shipped
	// defaults; a malformed file is a configuration error naming the file.
	Load() (*Library, error)

	// Save inserts or updates one prompt and persists the whole library
	// atomically. It returns the updated library.
	Save(name, template string) (*Library, error)

	// List returns the prompt names in stored order.
	List() ([]string, error)
}
