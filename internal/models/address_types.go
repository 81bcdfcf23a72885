package models

import "time"

// Address defines the struct for the 'address' table
type Address struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"userId"`
	FullName    string    `json:"fullName" db:"fullName"`
	Phone       string    `json:"phone" db:"phone"`
	Pincode     string    `json:"pincode" db:"pincode"`
	State       string    `json:"state" db:"state"`
	City        string    `json:"city" db:"city"`
	HouseNo     string    `json:"houseNo" db:"houseNo"`
	AddressType string    `json:"addressType" db:"addressType"` // e.g. home, work
	CreatedAt   time.Time `json:"createdAt" db:"createdAt"`
}
