package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// User defines the struct for the 'users' table
type User struct {
	UserID       int64  `json:"userId" db:"userId"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password"` // never serialized
}

// RefreshToken defines the struct for the 'refresh_tokens' table
type RefreshToken struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"userId" db:"userId"`
	Token  string `json:"-" db:"token"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

// bcryptCost matches the cost the rest of the stored hashes were
// generated with. Changing it only affects new hashes.
const bcryptCost = 10

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcryptCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
