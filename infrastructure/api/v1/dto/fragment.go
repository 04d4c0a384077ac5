// Package dto defines the JSON request and response shapes of the v1 API.
package dto

import "time"

// ListMeta carries pagination metadata for list responses.
type ListMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// FragmentData is the JSON shape of a fragment.
type FragmentData struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	CreatorID *int64     `json:"creator_id,omitempty"`
	OriginID  *int64     `json:"origin_id,omitempty"`
	FileName  string     `json:"file_name,omitempty"`
}

// FragmentResponse wraps a single fragment.
type FragmentResponse struct {
	Data FragmentData `json:"data"`
}

// FragmentListResponse wraps a page of fragments.
type FragmentListResponse struct {
	Data []FragmentData `json:"data"`
	Meta ListMeta       `json:"meta"`
}

// FragmentCreateRequest is the body of POST /fragments.
type FragmentCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RelationData is the JSON shape of a fragment relation.
type RelationData struct {
	ParentID      int64 `json:"parent_id"`
	ChildID       int64 `json:"child_id"`
	Priority      int   `json:"priority"`
	Bidirectional bool  `json:"bidirectional"`
}

// RelationListResponse wraps the relations of one fragment.
type RelationListResponse struct {
	Data []RelationData `json:"data"`
}
