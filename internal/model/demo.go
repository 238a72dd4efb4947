package model

import "time"

// Demo represents a user-owned demo record in the database.
type Demo struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Type        string
	Content     string
	Thumbnail   string
	URL         string
	IsPublic    bool
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DemoRequest represents the body of demo create and update requests.
type DemoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
	IsPublic    bool   `json:"isPublic"`
}

// DemoResponse represents a demo in API responses.
type DemoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	URL         string    `json:"url,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UploadResponse represents a successful image upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
