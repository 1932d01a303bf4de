package models

import "time"

type Employee struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:text;not null"`
	Email      string    `gorm:"type:text;not null;unique"`
	Department string    `gorm:"type:text;not null"`
	Position   string    `gorm:"type:text;not null"`
	Salary     float64   `gorm:"not null"`
	HireDate   string    `gorm:"type:text;not null"`
	Phone      *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
