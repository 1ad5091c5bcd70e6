package prompt

type implStore struct {
	path string
}

// NewStore creates a Store backed by the JSON file at path.
func NewStore(path string) Store {
	return &implStore{path: path}
}
