package interfaces

// ILocalStore is keyed string storage that survives process restarts on the
// same device: the spreadsheet id, one cache blob per collection and the
// pending-operation list all live here.
type ILocalStore interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte) error
	Delete(key string) error
}
