package models

// Ack is the envelope returned by every write, independent of HTTP status.
// The counters are pointers so that an insert does not report a zero
// deletedCount and so on.
type Ack struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"insertedId,omitempty"`
	MatchedCount  *int64 `json:"matchedCount,omitempty"`
	ModifiedCount *int64 `json:"modifiedCount,omitempty"`
	DeletedCount  *int64 `json:"deletedCount,omitempty"`
	Message       string `json:"message,omitempty"`
}

func InsertAck(id string) Ack {
	return Ack{Acknowledged: true, InsertedID: id}
}

func UpdateAck(matched, modified int64) Ack {
	return Ack{Acknowledged: true, MatchedCount: &matched, ModifiedCount: &modified}
}

func DeleteAck(deleted int64) Ack {
	return Ack{Acknowledged: true, DeletedCount: &deleted}
}

// Rejected is a write that was refused without touching the store.
func Rejected(message string) Ack {
	return Ack{Acknowledged: false, Message: message}
}
