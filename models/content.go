package models

import (
	"time"
)

type ContentType string

const (
	ContentPhoto ContentType = "photo"
	ContentVideo ContentType = "video"
)

type Content struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string      `json:"title"`
	Description  string      `json:"description" gorm:"type:text"`
	Type         ContentType `json:"type" gorm:"type:varchar(10);not null"`
	FileURL      string      `json:"fileUrl" gorm:"type:text;not null"`
	FileKey      string      `json:"fileKey" gorm:"type:varchar(500);not null"`
	ThumbnailURL string      `json:"thumbnailUrl" gorm:"type:text"`
	MimeType     string      `json:"mimeType" gorm:"type:varchar(100)"`
	FileSize     int         `json:"fileSize"`
	IsPublic     bool        `json:"isPublic" gorm:"default:false"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (Content) TableName() string {
	return "content"
}

// ContentStats are the public aggregate counts shown on the landing page.
type ContentStats struct {
	Photos int64 `json:"photos"`
	Videos int64 `json:"videos"`
	Total  int64 `json:"total"`
}
