package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the persistence model for the users table.
//
// The unique index on email is what ultimately rejects duplicate
// registrations; the service-level existence check only selects the
// user-facing message. Schema:
//
//	CREATE TABLE users (
//	    id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    username      text NOT NULL,
//	    email         text NOT NULL,
//	    password_hash text NOT NULL,
//	    created_at    timestamptz NOT NULL DEFAULT now(),
//	    updated_at    timestamptz NOT NULL DEFAULT now()
//	);
//	CREATE UNIQUE INDEX users_email_key ON users (email);
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Username     string    `bun:"username,notnull"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
