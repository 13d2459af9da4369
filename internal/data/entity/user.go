package entity

import (
	"fmt"
	"time"
)

type AccountType string

const (
	AccountTypeAdmin   AccountType = "Admin"
	AccountTypeRegular AccountType = "Regular"
)

// Valid reports whether the value is one of the two known account types.
func (t AccountType) Valid() bool {
	return t == AccountTypeAdmin || t == AccountTypeRegular
}

type User struct {
	ID           int64       `db:"id"`
	FirstName    string      `db:"first_name"`
	LastName     string      `db:"last_name"`
	Email        string      `db:"email"`
	Mobile       string      `db:"mobile"`
	BirthDate    time.Time   `db:"birth_date"`
	PasswordHash string      `db:"password"`
	Role         AccountType `db:"account_type"`
}

func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (u *User) IsAdmin() bool {
	return u.Role == AccountTypeAdmin
}
