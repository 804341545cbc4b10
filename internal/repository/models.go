package repository

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36);autoIncrement:false"`
	Username     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// History is one stored analysis outcome. The AI flag is derived from Result and
// is deliberately not a column.
type History struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36);autoIncrement:false"`
	UserID             string    `gorm:"type:varchar(36);not null;index"`
	ImageName          string    `gorm:"type:varchar(512);not null"`
	ImageURL           string    `gorm:"type:text"`
	Result             string    `gorm:"type:varchar(32);not null"`
	Confidence         int       `gorm:"not null;default:0"`
	PixelAnomalies     string    `gorm:"type:varchar(255)"`
	TextureConsistency string    `gorm:"type:varchar(255)"`
	LightingRealism    string    `gorm:"type:varchar(255)"`
	EdgeQuality        string    `gorm:"type:varchar(255)"`
	Timestamp          time.Time `gorm:"not null;index"`
	CreatedAt          time.Time `gorm:"not null"`
}
