package appconfiguration

// AppConfiguration is the operation surface of an App Configuration store.
// *Client implements it; consumers depend on this interface so they can be
// tested against fakes.
type AppConfiguration interface {
	Endpoint() string

	GetKeys() *GetKeysRequest
	CheckKeys() *CheckKeysRequest

	GetKeyValues() *GetKeyValuesRequest
	CheckKeyValues() *CheckKeyValuesRequest
	GetKeyValue(key string) *GetKeyValueRequest
	PutKeyValue(key string) *PutKeyValueRequest
	DeleteKeyValue(key string) *DeleteKeyValueRequest
	CheckKeyValue(key string) *CheckKeyValueRequest

	GetLabels() *GetLabelsRequest
	CheckLabels() *CheckLabelsRequest

	PutLock(key string) *PutLockRequest
	DeleteLock(key string) *DeleteLockRequest

	GetRevisions() *GetRevisionsRequest
	CheckRevisions() *CheckRevisionsRequest
}

var _ AppConfiguration = (*Client)(nil)
