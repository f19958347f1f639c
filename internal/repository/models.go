package repository

import "time"

// User is an account created through social login.
type User struct {
	ID            string    `gorm:"primaryKey;autoIncrement:false"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `gorm:"type:varchar(255)"`
	Provider      string    `gorm:"type:varchar(32);not null"`
	WalletAddress string    `gorm:"size:42"`
	CreatedAt     time.Time `gorm:"not null"`
}

// InternalTransfer is the resolved internal value movement of a transaction.
type InternalTransfer struct {
	TransactionHash string    `gorm:"size:66;primaryKey"` // lower-cased 0x + 64 hex chars
	Value           string    `gorm:"size:100;not null"`  // wei
	From            string    `gorm:"size:42"`
	To              string    `gorm:"size:42"`
	CreatedAt       time.Time `gorm:"not null"`
}
