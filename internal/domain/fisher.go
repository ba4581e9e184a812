package domain

import "time"

type Fisher struct {
	ID             int64      `db:"id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	PersonalNumber string     `db:"personal_number"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	Address        *string    `db:"address"`
	Phone          *string    `db:"phone"`
	Email          *string    `db:"email"`
	IsActive       bool       `db:"is_active"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Inspector struct {
	ID          int64      `db:"id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	BadgeNumber string     `db:"badge_number"`
	Department  *string    `db:"department"`
	Phone       *string    `db:"phone"`
	Email       *string    `db:"email"`
	HireDate    *time.Time `db:"hire_date"`
	IsActive    bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
}
