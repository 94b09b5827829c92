// Package model defines the persisted entity structures.
//
// These are plain records mirroring the users and items tables.
// The column mapping lives in the repository SQL and the embedded
// migrations, not in struct tags.
package model

// User is a row in the users table.
//
// HashedPassword never crosses the API boundary; response shaping in the
// handler layer strips it.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	IsActive       bool
}

// Item is a row in the items table. Description is nullable.
//
// OwnerID references users.id. The relation is navigated explicitly via
// ItemRepository.ListByOwner, never through lazy attribute access.
type Item struct {
	ID          int64
	Title       string
	Description *string
	OwnerID     int64
}
