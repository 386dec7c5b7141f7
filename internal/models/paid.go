package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// PaidStatus is the payment state of a booking. On the wire and in the
// database it is either absent, the string "pending" or the boolean true.
type PaidStatus string

const (
	PaidUnset   PaidStatus = ""
	PaidPending PaidStatus = "pending"
	PaidTrue    PaidStatus = "true"
)

func (p PaidStatus) IsZero() bool { return p == PaidUnset }

func (p PaidStatus) MarshalJSON() ([]byte, error) {
	switch p {
	case PaidTrue:
		return []byte("true"), nil
	case PaidPending:
		return []byte(`"pending"`), nil
	case PaidUnset:
		return []byte("null"), nil
	}
	return nil, fmt.Errorf("unknown paid status %q", string(p))
}

func (p *PaidStatus) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	status, err := paidFrom(v)
	if err != nil {
		return err
	}
	*p = status
	return nil
}

func (p PaidStatus) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch p {
	case PaidTrue:
		return bson.MarshalValue(true)
	case PaidPending:
		return bson.MarshalValue(string(PaidPending))
	case PaidUnset:
		return bsontype.Null, nil, nil
	}
	return 0, nil, fmt.Errorf("unknown paid status %q", string(p))
}

func (p *PaidStatus) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Boolean:
		if raw.Boolean() {
			*p = PaidTrue
		} else {
			*p = PaidUnset
		}
	case bsontype.String:
		status, err := paidFrom(raw.StringValue())
		if err != nil {
			return err
		}
		*p = status
	case bsontype.Null, bsontype.Undefined:
		*p = PaidUnset
	default:
		return fmt.Errorf("cannot decode paid status from bson %s", t)
	}
	return nil
}

func paidFrom(v any) (PaidStatus, error) {
	switch val := v.(type) {
	case nil:
		return PaidUnset, nil
	case bool:
		if val {
			return PaidTrue, nil
		}
		return PaidUnset, nil
	case string:
		switch val {
		case "":
			return PaidUnset, nil
		case "pending":
			return PaidPending, nil
		case "true":
			return PaidTrue, nil
		}
	}
	return PaidUnset, fmt.Errorf("invalid paid status %v", v)
}
