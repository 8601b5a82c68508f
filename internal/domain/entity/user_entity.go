package entity

import (
	"time"
)

// User is the identity behind profiles and posts.
// Password holds the bcrypt hash and never leaves the server.
type User struct {
	ID        string    `json:"_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Avatar    string    `json:"avatar" bson:"avatar"`
	CreatedAt time.Time `json:"date" bson:"date"`
}

// UserRef is the denormalised author snapshot embedded in profiles.
// Users are immutable after creation so the snapshot never goes stale.
type UserRef struct {
	ID     string `json:"_id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar" bson:"avatar"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
