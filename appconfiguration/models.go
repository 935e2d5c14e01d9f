package appconfiguration

import "time"

// KeyValue is a configuration setting.
type KeyValue struct {
	Key          string            `json:"key,omitempty" yaml:"key"`
	Label        *string           `json:"label,omitempty" yaml:"label,omitempty"`
	ContentType  *string           `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Value        *string           `json:"value,omitempty" yaml:"value,omitempty"`
	LastModified *time.Time        `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
	Tags         map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Locked       *bool             `json:"locked,omitempty" yaml:"locked,omitempty"`
	ETag         *string           `json:"etag,omitempty" yaml:"etag,omitempty"`
}

// KeyValueListResult is one page of key-values.
type KeyValueListResult struct {
	Items    []KeyValue `json:"items,omitempty"`
	NextLink string     `json:"@nextLink,omitempty"`

	// SyncToken is the Sync-Token header of the page response.
	SyncToken string `json:"-"`
}

// GetNextLink returns the continuation link, "" on the last page.
func (r KeyValueListResult) GetNextLink() string { return r.NextLink }

// Key is a key name.
type Key struct {
	Name string `json:"name" yaml:"name"`
}

// KeyListResult is one page of keys.
type KeyListResult struct {
	Items     []Key  `json:"items,omitempty"`
	NextLink  string `json:"@nextLink,omitempty"`
	SyncToken string `json:"-"`
}

// GetNextLink returns the continuation link, "" on the last page.
func (r KeyListResult) GetNextLink() string { return r.NextLink }

// Label is a label name.
type Label struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// LabelListResult is one page of labels.
type LabelListResult struct {
	Items     []Label `json:"items,omitempty"`
	NextLink  string  `json:"@nextLink,omitempty"`
	SyncToken string  `json:"-"`
}

// GetNextLink returns the continuation link, "" on the last page.
func (r LabelListResult) GetNextLink() string { return r.NextLink }

// Error is the problem details body returned on failures.
type Error struct {
	Type   *string `json:"type,omitempty"`
	Title  *string `json:"title,omitempty"`
	Name   *string `json:"name,omitempty"`
	Detail *string `json:"detail,omitempty"`
	Status *int32  `json:"status,omitempty"`
}

// KeyValueFields names a field of KeyValue for $Select.
type KeyValueFields string

const (
	KeyValueFieldsKey          KeyValueFields = "key"
	KeyValueFieldsLabel        KeyValueFields = "label"
	KeyValueFieldsContentType  KeyValueFields = "content_type"
	KeyValueFieldsValue        KeyValueFields = "value"
	KeyValueFieldsLastModified KeyValueFields = "last_modified"
	KeyValueFieldsTags         KeyValueFields = "tags"
	KeyValueFieldsLocked       KeyValueFields = "locked"
	KeyValueFieldsEtag         KeyValueFields = "etag"
)

// PossibleKeyValueFieldsValues returns the possible values for the KeyValueFields const type.
func PossibleKeyValueFieldsValues() []KeyValueFields {
	return []KeyValueFields{
		KeyValueFieldsKey,
		KeyValueFieldsLabel,
		KeyValueFieldsContentType,
		KeyValueFieldsValue,
		KeyValueFieldsLastModified,
		KeyValueFieldsTags,
		KeyValueFieldsLocked,
		KeyValueFieldsEtag,
	}
}

// LabelFields names a field of Label for $Select.
type LabelFields string

const (
	LabelFieldsName LabelFields = "name"
)

// PossibleLabelFieldsValues returns the possible values for the LabelFields const type.
func PossibleLabelFieldsValues() []LabelFields {
	return []LabelFields{LabelFieldsName}
}
