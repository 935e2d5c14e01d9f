package locks

// Locks is the operation surface of the locks client.
type Locks interface {
	Endpoint() string
	ManagementLocks() *ManagementLocksClient
	AuthorizationOperations() *AuthorizationOperationsClient
}

var _ Locks = (*Client)(nil)
