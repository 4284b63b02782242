package repositories

// StateRepository stores namespaced client state blobs. Load returns nil data and no error
// when nothing has been saved yet.
type StateRepository interface {
	Load(clientID, namespace string) ([]byte, error)
	Save(clientID, namespace string, data []byte) error
	Delete(clientID string) error
}
