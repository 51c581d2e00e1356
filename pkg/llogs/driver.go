package llogs

// Driver is a logging backend that owns a closable resource.
type Driver interface {
	Close() bool
}
