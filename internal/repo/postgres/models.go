package postgres

import "time"

type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Phone        string
	Address      string
	WardNumber   string
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"index;not null"`
	Active       bool      `gorm:"not null;default:true"`
	Verified     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

type SchemeModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"index;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"index"`
	Eligibility string `gorm:"type:text"`
	Benefits    string `gorm:"type:text"`
	Documents   string `gorm:"type:text"`
	Active      bool   `gorm:"index;not null;default:true"`
	CreatedBy   string `gorm:"type:uuid"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (SchemeModel) TableName() string { return "schemes" }

type AnnouncementModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"type:text;not null"`
	Category  string `gorm:"index"`
	Views     int64  `gorm:"not null;default:0"`
	CreatedBy string `gorm:"type:uuid"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

type ApplicationModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	SchemeID    string `gorm:"type:uuid;index;not null"`
	ApplicantID string `gorm:"type:uuid;index;not null"`
	Details     string `gorm:"type:text"`
	Remarks     string `gorm:"type:text"`
	Status      string `gorm:"index;not null"`
	ReviewedBy  string `gorm:"type:uuid"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ApplicationModel) TableName() string { return "applications" }

type GrievanceModel struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	SubmitterID string `gorm:"type:uuid;index;not null"`
	Subject     string `gorm:"not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"index"`
	Status      string `gorm:"index;not null"`
	Response    string `gorm:"type:text"`
	AssigneeID  string `gorm:"type:uuid;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (GrievanceModel) TableName() string { return "grievances" }
