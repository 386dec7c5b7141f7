package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityPipeline joins every appointment option with the bookings for
// its treatment on date and drops the booked slots. $filter keeps the
// configured slot order, which $setDifference does not guarantee.
func AvailabilityPipeline(date string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: BookingsCollection},
			{Key: "localField", Value: "name"},
			{Key: "foreignField", Value: "treatment"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$appointmentDate", bson.D{{Key: "$literal", Value: date}}}},
					}},
				}}},
			}},
			{Key: "as", Value: "booked"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "booked", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$booked"},
				{Key: "as", Value: "book"},
				{Key: "in", Value: "$$book.slot"},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$slots"},
				{Key: "as", Value: "slot"},
				{Key: "cond", Value: bson.D{{Key: "$not", Value: bson.A{
					bson.D{{Key: "$in", Value: bson.A{"$$slot", "$booked"}}},
				}}}},
			}}}},
		}}},
	}
}
