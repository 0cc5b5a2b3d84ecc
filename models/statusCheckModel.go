package models

import "time"

type StatusCheck struct {
	ID         string    `json:"id" bson:"id" validate:"required"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName *string `json:"client_name" validate:"required"`
}
