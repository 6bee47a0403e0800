package models

import "time"

// IdempotencyKey stores the first completed response for a given request hash.
type IdempotencyKey struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Key            string     `json:"key" gorm:"size:128;uniqueIndex"` // header value
	RequestHash    string     `json:"requestHash" gorm:"size:64"`      // sha256 of method|path|body|principal
	Method         string     `json:"method" gorm:"size:10"`
	Path           string     `json:"path" gorm:"type:text"`
	Principal      string     `json:"principal" gorm:"size:128"`
	ResponseStatus int        `json:"responseStatus"`      // 0 => not completed yet
	ResponseBody   []byte     `json:"-" gorm:"type:bytea"` // raw response body (JSON)
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt"`
}
