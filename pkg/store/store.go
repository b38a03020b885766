// Package store provides the synchronous key-value storage backend that
// every TerraQuest collection lives in. Values are JSON documents read and
// written wholesale; there are no partial updates and no transactions
// spanning keys. Concurrency control is the caller's job: the repositories
// serialise their read-modify-write cycles with a per-collection mutex.
//
// Three interchangeable drivers:
//
//	file   one JSON document per key under DATA_DIR (default)
//	redis  go-redis client, JSON-encoded values
//	sql    a single key/value table through GORM (sqlite, postgres,
//	       mysql or sqlserver, per DB_DRIVER)
package store

import (
	"fmt"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/database"
	"github.com/redis/go-redis/v9"
)

// Store is the storage contract shared by all drivers.
type Store interface {
	// Get reads the value under key into dest. The boolean reports whether
	// the key existed; a missing key is not an error.
	Get(key string, dest any) (bool, error)

	// Set writes value under key, replacing any previous value wholesale.
	Set(key string, value any) error

	// Remove deletes key. Removing a missing key is a no-op.
	Remove(key string) error
}

// Well-known collection keys. The terraquest_ prefix is kept from the
// original browser build so existing exports stay importable.
const (
	KeyUsers    = "terraquest_users"
	KeyBookings = "terraquest_bookings"
	KeyMessages = "terraquest_messages"
	KeySession  = "terraquest_session"
)

// Keys lists every persisted key, sequence counters included. Used by the
// backup command to snapshot the whole store.
func Keys() []string {
	return []string{
		KeyUsers, KeyUsers + "_seq",
		KeyBookings, KeyBookings + "_seq",
		KeyMessages, KeyMessages + "_seq",
		KeySession,
	}
}

// Connect builds the Store selected by STORE_DRIVER.
func Connect() (Store, error) {
	switch config.StoreDriver() {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		})
		return NewRedisStore(client)
	case "sql":
		if err := database.Connect(); err != nil {
			return nil, err
		}
		return NewSQLStore(database.DB)
	case "file":
		return NewFileStore(config.DataDir())
	default:
		return nil, fmt.Errorf("store: unknown driver %q", config.StoreDriver())
	}
}
