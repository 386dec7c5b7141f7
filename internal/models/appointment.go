package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a treatment with the slots it can be booked in on any date.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// Specialty is the name-only projection of an AppointmentOption.
type Specialty struct {
	Name string `bson:"name" json:"name"`
}

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	Patient         string             `bson:"patient" json:"patient"`
	Slot            string             `bson:"slot" json:"slot"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	Paid            PaidStatus         `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
