// Where: internal/accountcfg/resolver.go
// What: Account configuration resolution and publication paths.
// Why: Republish per-account key/value data under a deterministic scheme.
package accountcfg

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/websmith/websmith/internal/meta"
	"github.com/websmith/websmith/internal/value"
)

// ErrSourceUnreadable indicates the config source could not be read.
var ErrSourceUnreadable = errors.New("config source unreadable")

// ErrSourceMalformed indicates the source is not a well-formed mapping
// from account id to configuration record.
var ErrSourceMalformed = errors.New("config source malformed")

// ErrAccountNotFound indicates the requested account id is absent from the
// source; the message lists the available ids.
var ErrAccountNotFound = errors.New("account not found")

// ErrKeyNotFound indicates a required lookup had no value and no default.
var ErrKeyNotFound = errors.New("config key not found")

// ErrEntryNotFound indicates a published entry was requested for a key
// that was never published.
var ErrEntryNotFound = errors.New("config entry not published")

// Entry is one published key/value pair with its fully-qualified path and
// generated identifier. Entries are created once at resolution time and
// never mutated.
type Entry struct {
	ID         string
	Path       string
	Key        string
	Value      value.Value
	Serialized string
}

// Resolution is the immutable result of resolving one account's record.
type Resolution struct {
	accountID string
	prefix    string
	keys      []string
	entries   map[string]Entry
}

// DefaultSourcePath is the config source read when none is given.
func DefaultSourcePath() string {
	return meta.DefaultContextPath
}

// DefaultPrefix returns the default publication prefix for an account.
func DefaultPrefix(accountID string) string {
	return meta.DefaultConfigPrefix + "/" + accountID
}

// ResolveFile reads the source document from path (the default source when
// path is empty) and resolves the selected account's record.
func ResolveFile(path, accountID, prefix string) (*Resolution, error) {
	if path == "" {
		path = DefaultSourcePath()
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	return Resolve(content, accountID, prefix)
}

// Resolve parses the source document and publishes one entry per key of
// the selected account's record, in the record's own key order.
func Resolve(source []byte, accountID, prefix string) (*Resolution, error) {
	document, err := value.DecodeJSON(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceMalformed, err)
	}
	accounts, ok := document.RecordValue()
	if !ok {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrSourceMalformed)
	}

	var record []value.Field
	available := make([]string, 0, len(accounts))
	found := false
	for _, account := range accounts {
		available = append(available, account.Key)
		if account.Key != accountID {
			continue
		}
		fields, ok := account.Value.RecordValue()
		if !ok {
			return nil, fmt.Errorf("%w: account %q is not an object", ErrSourceMalformed, accountID)
		}
		record = fields
		found = true
	}
	if !found {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrAccountNotFound, accountID, strings.Join(available, ", "))
	}

	if prefix == "" {
		prefix = DefaultPrefix(accountID)
	}
	prefix = strings.TrimRight(prefix, "/")

	resolution := &Resolution{
		accountID: accountID,
		prefix:    prefix,
		entries:   make(map[string]Entry, len(record)),
	}
	for _, field := range record {
		path := prefix + "/" + field.Key
		if _, exists := resolution.entries[field.Key]; !exists {
			resolution.keys = append(resolution.keys, field.Key)
		}
		resolution.entries[field.Key] = Entry{
			ID:         "entry:" + path,
			Path:       path,
			Key:        field.Key,
			Value:      field.Value,
			Serialized: field.Value.CanonicalText(),
		}
	}
	return resolution, nil
}

// AccountID returns the resolved account id.
func (r *Resolution) AccountID() string { return r.accountID }

// Prefix returns the publication prefix in effect.
func (r *Resolution) Prefix() string { return r.prefix }

// Keys returns the published keys in source-record order.
func (r *Resolution) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// HasKey reports whether a key was published.
func (r *Resolution) HasKey(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Value returns the raw, pre-serialization value for key. The second
// return mirrors optional-lookup semantics: a missing key is an absent
// result, not a failure.
func (r *Resolution) Value(key string) (value.Value, bool) {
	entry, ok := r.entries[key]
	if !ok {
		return value.Value{}, false
	}
	return entry.Value, true
}

// ValueOr returns the raw value for key, or the supplied default when the
// key was never published.
func (r *Resolution) ValueOr(key string, fallback value.Value) value.Value {
	if v, ok := r.Value(key); ok {
		return v
	}
	return fallback
}

// RequireValue returns the raw value for key or fails with ErrKeyNotFound.
// Use this when the caller cannot proceed without a value.
func (r *Resolution) RequireValue(key string) (value.Value, error) {
	v, ok := r.Value(key)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %q (account %s)", ErrKeyNotFound, key, r.accountID)
	}
	return v, nil
}

// Entry returns the published entry for key.
func (r *Resolution) Entry(key string) (Entry, error) {
	entry, ok := r.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q (account %s)", ErrEntryNotFound, key, r.accountID)
	}
	return entry, nil
}

// Entries returns all published entries in key order.
func (r *Resolution) Entries() []Entry {
	out := make([]Entry, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.entries[key])
	}
	return out
}
