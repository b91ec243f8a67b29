package models

import "time"

// Order statuses surfaced on the job list
const (
	OrderStatusActive     = "active"
	OrderStatusCorrection = "correction"
	OrderStatusDelivered  = "delivered"
)

// Order is a client job folder that employees pick work from. The job list
// endpoint exposes active and correction orders as-is.
type Order struct {
	ID         string    `json:"id"`
	ClientCode string    `json:"clientCode"`
	Folder     string    `json:"folder"`
	FolderPath string    `json:"folderPath"`
	Task       string    `json:"task"`
	ET         int64     `json:"et"`
	NOF        int64     `json:"nof"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
	UpdatedAt  time.Time `json:"-"`
}
