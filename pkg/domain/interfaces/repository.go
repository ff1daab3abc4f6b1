package interfaces

// Repository defines the interface for transient session storage
type Repository interface {
	Session() SessionRepository
	Close() error
}
