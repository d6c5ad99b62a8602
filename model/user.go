package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"` // Argon2id hash, never serialized
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
